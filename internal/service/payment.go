package service

import (
	"context"
	"errors"

	"stayhub/internal/database"
	"stayhub/internal/model"
	"stayhub/internal/store"
)

var (
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrInvalidAmount   = errors.New("payment amount must be positive")
	ErrExceedsInvoice  = errors.New("payment would exceed the invoice total")
)

// 測試可覆寫以下變數
var (
	getInvoiceForUpdate = store.GetInvoiceByIDForUpdate
	sumPayments         = store.SumPaymentsByInvoice
	insertPayment       = store.CreatePayment
	markInvoicePaid     = store.MarkInvoicePaid
)

// PayInvoice 記錄一筆付款。發票列以 FOR UPDATE 鎖定，
// 交易內檢查「已收款總額 + 本次金額 ≤ 發票總額」，收齊後標記已付。
func PayInvoice(ctx context.Context, db database.DB, invoiceID int, amount float64, method string) (*model.Payment, *model.Invoice, error) {
	if amount <= 0 {
		return nil, nil, ErrInvalidAmount
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback(ctx)

	invoice, err := getInvoiceForUpdate(ctx, tx, invoiceID)
	if err != nil {
		return nil, nil, ErrInvoiceNotFound
	}

	paid, err := sumPayments(ctx, tx, invoiceID)
	if err != nil {
		return nil, nil, err
	}
	if Round2(paid+amount) > invoice.Total {
		return nil, nil, ErrExceedsInvoice
	}

	payment := &model.Payment{
		InvoiceID: invoiceID,
		Amount:    amount,
		Method:    method,
		Reference: uuidNewString(),
		Status:    model.PaymentPaid,
	}
	if _, err := insertPayment(ctx, tx, payment); err != nil {
		return nil, nil, err
	}

	if Round2(paid+amount) >= invoice.Total {
		now := timeNow()
		if err := markInvoicePaid(ctx, tx, invoiceID, now); err != nil {
			return nil, nil, err
		}
		invoice.Paid = true
		invoice.PaidAt = &now
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, err
	}
	return payment, invoice, nil
}
