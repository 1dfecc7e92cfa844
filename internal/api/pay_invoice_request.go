package api

// swagger:model api.PayInvoiceRequest
type PayInvoiceRequest struct {
	Amount float64 `form:"amount" validate:"required,gt=0" example:"100"`
	Method string  `form:"method" validate:"required" example:"card"`
}
