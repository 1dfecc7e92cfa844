package service

import (
	"context"
	"errors"
	"time"

	"stayhub/internal/database"
	"stayhub/internal/model"
	"stayhub/internal/store"
)

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomUnavailable  = errors.New("room unavailable for the requested dates")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrBookingNotOwned  = errors.New("booking belongs to another user")
	ErrBookingNotActive = errors.New("booking is not in a state that allows this action")
)

// 測試可覆寫以下變數
var (
	getRoomForUpdate    = store.GetRoomByIDForUpdate
	roomHasOverlap      = store.RoomHasOverlap
	insertBooking       = store.CreateBooking
	getBookingForUpdate = store.GetBookingByIDForUpdate
	setBookingStatus    = store.UpdateBookingStatus
	insertInvoice       = store.CreateInvoice
)

// CreateBooking 在單一交易內完成「讀取、檢查、寫入」：
// 先以 FOR UPDATE 鎖定房間列，再檢查已確認訂房的日期重疊，
// 通過後以入住月份的季節價寫入一筆 pending 訂房。
func CreateBooking(ctx context.Context, db database.DB, userID, roomID int, checkIn, checkOut time.Time) (*model.Booking, error) {
	if !checkIn.Before(checkOut) {
		return nil, ErrInvalidStay
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	room, err := getRoomForUpdate(ctx, tx, roomID)
	if err != nil {
		return nil, ErrRoomNotFound
	}
	if !room.Available {
		return nil, ErrRoomUnavailable
	}

	overlap, err := roomHasOverlap(ctx, tx, roomID, checkIn, checkOut, 0)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, ErrRoomUnavailable
	}

	quote, err := QuoteStay(room.BaseRate, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	booking := &model.Booking{
		UserID:      userID,
		RoomID:      roomID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Nights:      quote.Nights,
		NightlyRate: quote.NightlyRate,
		Subtotal:    quote.Subtotal,
		Tax:         quote.Tax,
		Total:       quote.Total,
		Status:      model.BookingPending,
	}
	if _, err := insertBooking(ctx, tx, booking); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return booking, nil
}

// ConfirmBooking 由館方確認 pending 訂房並開立發票。
// pending 訂房彼此不互擋，重疊衝突在這裡重新檢查一次後定案。
func ConfirmBooking(ctx context.Context, db database.DB, bookingID int) (*model.Booking, *model.Invoice, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback(ctx)

	booking, err := getBookingForUpdate(ctx, tx, bookingID)
	if err != nil {
		return nil, nil, ErrBookingNotFound
	}
	if booking.Status != model.BookingPending {
		return nil, nil, ErrBookingNotActive
	}

	// 鎖定房間列，與 CreateBooking 用同一把鎖序列化重疊判斷
	if _, err := getRoomForUpdate(ctx, tx, booking.RoomID); err != nil {
		return nil, nil, ErrRoomNotFound
	}
	overlap, err := roomHasOverlap(ctx, tx, booking.RoomID, booking.CheckIn, booking.CheckOut, booking.ID)
	if err != nil {
		return nil, nil, err
	}
	if overlap {
		return nil, nil, ErrRoomUnavailable
	}

	if err := setBookingStatus(ctx, tx, booking.ID, model.BookingConfirmed); err != nil {
		return nil, nil, err
	}
	booking.Status = model.BookingConfirmed

	invoice := &model.Invoice{
		BookingID: booking.ID,
		Subtotal:  booking.Subtotal,
		Tax:       booking.Tax,
		Total:     booking.Total,
	}
	if _, err := insertInvoice(ctx, tx, invoice); err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, err
	}
	return booking, invoice, nil
}

// CancelBooking 取消訂房。房客只能取消自己仍在 pending 的訂房，
// 館方可取消任何尚未取消的訂房。取消後該區間立即釋出，
// 重疊檢查只看 confirmed，不需要額外釋放步驟。
func CancelBooking(ctx context.Context, db database.DB, bookingID int, requester model.User) (*model.Booking, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	booking, err := getBookingForUpdate(ctx, tx, bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	if booking.Status == model.BookingCancelled {
		return nil, ErrBookingNotActive
	}
	if !requester.IsStaff() {
		if booking.UserID != requester.ID {
			return nil, ErrBookingNotOwned
		}
		if booking.Status != model.BookingPending {
			return nil, ErrBookingNotActive
		}
	}

	if err := setBookingStatus(ctx, tx, booking.ID, model.BookingCancelled); err != nil {
		return nil, err
	}
	booking.Status = model.BookingCancelled

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return booking, nil
}
