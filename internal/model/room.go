package model

import "time"

type Room struct {
	ID          int       `db:"id" json:"id"`
	Number      string    `db:"number" json:"number"`
	Type        string    `db:"type" json:"type"`
	BaseRate    float64   `db:"base_rate" json:"base_rate"`
	Available   bool      `db:"available" json:"available"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
