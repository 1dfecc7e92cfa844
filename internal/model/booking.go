package model

import "time"

// 訂房狀態
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Booking 代表一筆訂房，價格明細在建立當下即定案
type Booking struct {
	ID          int       `db:"id" json:"id"`
	UserID      int       `db:"user_id" json:"user_id"`
	RoomID      int       `db:"room_id" json:"room_id"`
	CheckIn     time.Time `db:"check_in" json:"check_in"`
	CheckOut    time.Time `db:"check_out" json:"check_out"`
	Nights      int       `db:"nights" json:"nights"`
	NightlyRate float64   `db:"nightly_rate" json:"nightly_rate"`
	Subtotal    float64   `db:"subtotal" json:"subtotal"`
	Tax         float64   `db:"tax" json:"tax"`
	Total       float64   `db:"total" json:"total"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
