package model

import "time"

// Invoice 於訂房確認時建立，金額欄位之後不再變動
type Invoice struct {
	ID        int        `db:"id" json:"id"`
	BookingID int        `db:"booking_id" json:"booking_id"`
	Subtotal  float64    `db:"subtotal" json:"subtotal"`
	Tax       float64    `db:"tax" json:"tax"`
	Total     float64    `db:"total" json:"total"`
	Paid      bool       `db:"paid" json:"paid"`
	PaidAt    *time.Time `db:"paid_at" json:"paid_at,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}
