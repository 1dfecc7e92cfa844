package api

// swagger:model api.UpdateRoomRequest
type UpdateRoomRequest struct {
	Type        string  `form:"type" validate:"required" example:"suite"`
	BaseRate    float64 `form:"base_rate" validate:"required,gt=0" example:"180"`
	Description string  `form:"description" example:"Corner suite"`
}
