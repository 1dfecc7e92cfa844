package api

// swagger:model api.SearchRoomsRequest
type SearchRoomsRequest struct {
	CheckIn  string  `query:"check_in" validate:"required,datetime=2006-01-02" example:"2026-06-01"`
	CheckOut string  `query:"check_out" validate:"required,datetime=2006-01-02" example:"2026-06-04"`
	RoomType string  `query:"room_type" example:"double"`
	MaxPrice float64 `query:"max_price" validate:"omitempty,gt=0" example:"150"`
}
