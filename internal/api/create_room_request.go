package api

// swagger:model api.CreateRoomRequest
type CreateRoomRequest struct {
	Number      string  `form:"number" validate:"required" example:"101"`
	Type        string  `form:"type" validate:"required" example:"double"`
	BaseRate    float64 `form:"base_rate" validate:"required,gt=0" example:"100"`
	Description string  `form:"description" example:"Double room with sea view"`
}
