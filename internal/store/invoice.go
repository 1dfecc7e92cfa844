package store

import (
	"context"
	"fmt"
	"time"

	"stayhub/internal/database"
	"stayhub/internal/model"
)

func scanInvoice(row interface{ Scan(...any) error }, inv *model.Invoice) error {
	return row.Scan(
		&inv.ID,
		&inv.BookingID,
		&inv.Subtotal,
		&inv.Tax,
		&inv.Total,
		&inv.Paid,
		&inv.PaidAt,
		&inv.CreatedAt,
	)
}

func CreateInvoice(ctx context.Context, db database.Querier, inv *model.Invoice) (*model.Invoice, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO invoices (booking_id, subtotal, tax, total)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		inv.BookingID,
		inv.Subtotal,
		inv.Tax,
		inv.Total,
	)
	if err := row.Scan(&inv.ID, &inv.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateInvoice: %w", err)
	}
	return inv, nil
}

func GetInvoiceByID(ctx context.Context, db database.Querier, invoiceID int) (*model.Invoice, error) {
	row := db.QueryRow(ctx,
		`SELECT id, booking_id, subtotal, tax, total, paid, paid_at, created_at
		 FROM invoices WHERE id = $1`,
		invoiceID,
	)
	inv := &model.Invoice{}
	if err := scanInvoice(row, inv); err != nil {
		return nil, fmt.Errorf("GetInvoiceByID: %w", err)
	}
	return inv, nil
}

// GetInvoiceByIDForUpdate 以 FOR UPDATE 鎖定發票列，付款流程用來防止併發超付
func GetInvoiceByIDForUpdate(ctx context.Context, db database.Querier, invoiceID int) (*model.Invoice, error) {
	row := db.QueryRow(ctx,
		`SELECT id, booking_id, subtotal, tax, total, paid, paid_at, created_at
		 FROM invoices WHERE id = $1 FOR UPDATE`,
		invoiceID,
	)
	inv := &model.Invoice{}
	if err := scanInvoice(row, inv); err != nil {
		return nil, fmt.Errorf("GetInvoiceByIDForUpdate: %w", err)
	}
	return inv, nil
}

func GetInvoiceByBookingID(ctx context.Context, db database.Querier, bookingID int) (*model.Invoice, error) {
	row := db.QueryRow(ctx,
		`SELECT id, booking_id, subtotal, tax, total, paid, paid_at, created_at
		 FROM invoices WHERE booking_id = $1`,
		bookingID,
	)
	inv := &model.Invoice{}
	if err := scanInvoice(row, inv); err != nil {
		return nil, fmt.Errorf("GetInvoiceByBookingID: %w", err)
	}
	return inv, nil
}

func MarkInvoicePaid(ctx context.Context, db database.Querier, invoiceID int, paidAt time.Time) error {
	_, err := db.Exec(ctx,
		`UPDATE invoices SET paid = TRUE, paid_at = $1 WHERE id = $2`,
		paidAt,
		invoiceID,
	)
	if err != nil {
		return fmt.Errorf("MarkInvoicePaid: %w", err)
	}
	return nil
}
