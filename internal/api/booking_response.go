package api

import "time"

// swagger:model api.BookingResponse
type BookingResponse struct {
	ID          int       `json:"id" example:"1"`
	UserID      int       `json:"user_id" example:"1"`
	RoomID      int       `json:"room_id" example:"1"`
	CheckIn     string    `json:"check_in" example:"2026-06-01"`
	CheckOut    string    `json:"check_out" example:"2026-06-04"`
	Nights      int       `json:"nights" example:"3"`
	NightlyRate float64   `json:"nightly_rate" example:"130"`
	Subtotal    float64   `json:"subtotal" example:"390"`
	Tax         float64   `json:"tax" example:"39"`
	Total       float64   `json:"total" example:"429"`
	Status      string    `json:"status" example:"pending"`
	CreatedAt   time.Time `json:"created_at"`
}
