package model

import "time"

const PaymentPaid = "paid"

type Payment struct {
	ID        int       `db:"id" json:"id"`
	InvoiceID int       `db:"invoice_id" json:"invoice_id"`
	Amount    float64   `db:"amount" json:"amount"`
	Method    string    `db:"method" json:"method"`
	Reference string    `db:"reference" json:"reference"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
