package store

import (
	"context"
	"fmt"
	"time"

	"stayhub/internal/database"
	"stayhub/internal/model"
)

func scanBooking(row interface{ Scan(...any) error }, b *model.Booking) error {
	return row.Scan(
		&b.ID,
		&b.UserID,
		&b.RoomID,
		&b.CheckIn,
		&b.CheckOut,
		&b.Nights,
		&b.NightlyRate,
		&b.Subtotal,
		&b.Tax,
		&b.Total,
		&b.Status,
		&b.CreatedAt,
	)
}

const bookingColumns = `id, user_id, room_id, check_in, check_out, nights,
	 nightly_rate, subtotal, tax, total, status, created_at`

func CreateBooking(ctx context.Context, db database.Querier, b *model.Booking) (*model.Booking, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO bookings
		 (user_id, room_id, check_in, check_out, nights, nightly_rate, subtotal, tax, total, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at`,
		b.UserID,
		b.RoomID,
		b.CheckIn,
		b.CheckOut,
		b.Nights,
		b.NightlyRate,
		b.Subtotal,
		b.Tax,
		b.Total,
		b.Status,
	)
	if err := row.Scan(&b.ID, &b.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateBooking: %w", err)
	}
	return b, nil
}

func GetBookingByID(ctx context.Context, db database.Querier, bookingID int) (*model.Booking, error) {
	row := db.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`,
		bookingID,
	)
	b := &model.Booking{}
	if err := scanBooking(row, b); err != nil {
		return nil, fmt.Errorf("GetBookingByID: %w", err)
	}
	return b, nil
}

// GetBookingByIDForUpdate 以 FOR UPDATE 鎖定訂房列，供確認與取消流程使用
func GetBookingByIDForUpdate(ctx context.Context, db database.Querier, bookingID int) (*model.Booking, error) {
	row := db.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`,
		bookingID,
	)
	b := &model.Booking{}
	if err := scanBooking(row, b); err != nil {
		return nil, fmt.Errorf("GetBookingByIDForUpdate: %w", err)
	}
	return b, nil
}

func ListBookingsByUser(ctx context.Context, db database.Querier, userID int) ([]model.Booking, error) {
	rows, err := db.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings
		 WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListBookingsByUser: %w", err)
	}
	defer rows.Close()

	var bookings []model.Booking
	for rows.Next() {
		var b model.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, fmt.Errorf("ListBookingsByUser: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListBookingsByUser: %w", err)
	}
	return bookings, nil
}

// ListBookings 列出全部訂房，後台用，新的在前
func ListBookings(ctx context.Context, db database.Querier) ([]model.Booking, error) {
	rows, err := db.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListBookings: %w", err)
	}
	defer rows.Close()

	var bookings []model.Booking
	for rows.Next() {
		var b model.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, fmt.Errorf("ListBookings: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListBookings: %w", err)
	}
	return bookings, nil
}

func UpdateBookingStatus(ctx context.Context, db database.Querier, bookingID int, status string) error {
	_, err := db.Exec(ctx,
		`UPDATE bookings SET status = $1 WHERE id = $2`,
		status,
		bookingID,
	)
	if err != nil {
		return fmt.Errorf("UpdateBookingStatus: %w", err)
	}
	return nil
}

// RoomHasOverlap 檢查房間在指定區間是否存在已確認的重疊訂房，
// 區間 [a,b) 與 [c,d) 重疊 iff a < d 且 c < b。
// excludeBookingID 用來在確認流程中排除自己，傳 0 表示不排除。
func RoomHasOverlap(ctx context.Context, db database.Querier, roomID int, checkIn, checkOut time.Time, excludeBookingID int) (bool, error) {
	row := db.QueryRow(ctx,
		`SELECT EXISTS (
		     SELECT 1 FROM bookings
		     WHERE room_id = $1
		       AND id <> $4
		       AND status = 'confirmed'
		       AND check_in < $3
		       AND $2 < check_out
		 )`,
		roomID,
		checkIn,
		checkOut,
		excludeBookingID,
	)
	var overlap bool
	if err := row.Scan(&overlap); err != nil {
		return false, fmt.Errorf("RoomHasOverlap: %w", err)
	}
	return overlap, nil
}
