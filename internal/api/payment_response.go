package api

import "time"

// swagger:model api.PaymentResponse
type PaymentResponse struct {
	ID        int       `json:"id" example:"1"`
	InvoiceID int       `json:"invoice_id" example:"1"`
	Amount    float64   `json:"amount" example:"100"`
	Method    string    `json:"method" example:"card"`
	Reference string    `json:"reference" example:"9f0c6fd2-0b37-4f3a-8f1c-2f1a3b6f9d2e"`
	Status    string    `json:"status" example:"paid"`
	CreatedAt time.Time `json:"created_at"`
}
