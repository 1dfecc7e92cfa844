package api

// swagger:model api.CreateBookingRequest
type CreateBookingRequest struct {
	RoomID   int    `form:"room_id" validate:"required,gt=0" example:"1"`
	CheckIn  string `form:"check_in" validate:"required,datetime=2006-01-02" example:"2026-06-01"`
	CheckOut string `form:"check_out" validate:"required,datetime=2006-01-02" example:"2026-06-04"`
}
