package api

import "time"

// swagger:model api.InvoiceResponse
type InvoiceResponse struct {
	ID        int               `json:"id" example:"1"`
	BookingID int               `json:"booking_id" example:"1"`
	Subtotal  float64           `json:"subtotal" example:"300"`
	Tax       float64           `json:"tax" example:"30"`
	Total     float64           `json:"total" example:"330"`
	Paid      bool              `json:"paid" example:"false"`
	PaidAt    *time.Time        `json:"paid_at,omitempty"`
	Balance   float64           `json:"balance" example:"230"`
	Payments  []PaymentResponse `json:"payments"`
	CreatedAt time.Time         `json:"created_at"`
}
