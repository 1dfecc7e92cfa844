package api

// swagger:model api.SetRoomAvailabilityRequest
type SetRoomAvailabilityRequest struct {
	Available bool `form:"available" example:"false"`
}
