package store

import (
	"context"
	"fmt"

	"stayhub/internal/database"
	"stayhub/internal/model"
)

func CreatePayment(ctx context.Context, db database.Querier, p *model.Payment) (*model.Payment, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO payments (invoice_id, amount, method, reference, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		p.InvoiceID,
		p.Amount,
		p.Method,
		p.Reference,
		p.Status,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreatePayment: %w", err)
	}
	return p, nil
}

func ListPaymentsByInvoice(ctx context.Context, db database.Querier, invoiceID int) ([]model.Payment, error) {
	rows, err := db.Query(ctx,
		`SELECT id, invoice_id, amount, method, reference, status, created_at
		 FROM payments WHERE invoice_id = $1 ORDER BY created_at`,
		invoiceID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListPaymentsByInvoice: %w", err)
	}
	defer rows.Close()

	var payments []model.Payment
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(
			&p.ID,
			&p.InvoiceID,
			&p.Amount,
			&p.Method,
			&p.Reference,
			&p.Status,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListPaymentsByInvoice: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListPaymentsByInvoice: %w", err)
	}
	return payments, nil
}

// SumPaymentsByInvoice 回傳發票已收款總額
func SumPaymentsByInvoice(ctx context.Context, db database.Querier, invoiceID int) (float64, error) {
	row := db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE invoice_id = $1`,
		invoiceID,
	)
	var sum float64
	if err := row.Scan(&sum); err != nil {
		return 0, fmt.Errorf("SumPaymentsByInvoice: %w", err)
	}
	return sum, nil
}
