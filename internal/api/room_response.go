package api

import "time"

// swagger:model api.RoomResponse
type RoomResponse struct {
	ID          int       `json:"id" example:"1"`
	Number      string    `json:"number" example:"101"`
	Type        string    `json:"type" example:"double"`
	BaseRate    float64   `json:"base_rate" example:"100"`
	NightlyRate float64   `json:"nightly_rate,omitempty" example:"130"`
	Available   bool      `json:"available" example:"true"`
	Description string    `json:"description,omitempty" example:"Double room with sea view"`
	CreatedAt   time.Time `json:"created_at"`
}
