package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"stayhub/internal/database"
	"stayhub/internal/model"

	"github.com/stretchr/testify/require"
)

func beginFake(t *testing.T, commit *bool) func(ctx context.Context) (database.Tx, error) {
	return func(ctx context.Context) (database.Tx, error) {
		return &database.FakeTx{
			CommitFn: func(ctx context.Context) error {
				if commit != nil {
					*commit = true
				}
				return nil
			},
		}, nil
	}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	in := date(2025, time.October, 1)
	out := date(2025, time.October, 4)

	t.Run("invalid stay", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		_, err := CreateBooking(ctx, &database.FakeDB{}, 1, 2, out, in)
		require.ErrorIs(t, err, ErrInvalidStay)
	})

	t.Run("begin error", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		db := &database.FakeDB{BeginFn: func(context.Context) (database.Tx, error) { return nil, errors.New("begin") }}
		_, err := CreateBooking(ctx, db, 1, 2, in, out)
		require.Error(t, err)
	})

	t.Run("room not found", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getRoomForUpdate = func(context.Context, database.Querier, int) (*model.Room, error) {
			return nil, errors.New("no rows")
		}
		db := &database.FakeDB{BeginFn: beginFake(t, nil)}
		_, err := CreateBooking(ctx, db, 1, 2, in, out)
		require.ErrorIs(t, err, ErrRoomNotFound)
	})

	t.Run("room flagged unavailable", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getRoomForUpdate = func(context.Context, database.Querier, int) (*model.Room, error) {
			return &model.Room{ID: 2, Available: false}, nil
		}
		db := &database.FakeDB{BeginFn: beginFake(t, nil)}
		_, err := CreateBooking(ctx, db, 1, 2, in, out)
		require.ErrorIs(t, err, ErrRoomUnavailable)
	})

	t.Run("overlap", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getRoomForUpdate = func(context.Context, database.Querier, int) (*model.Room, error) {
			return &model.Room{ID: 2, Available: true, BaseRate: 100}, nil
		}
		roomHasOverlap = func(_ context.Context, _ database.Querier, roomID int, a, b time.Time, excl int) (bool, error) {
			require.Equal(t, 2, roomID)
			require.Equal(t, 0, excl)
			return true, nil
		}
		db := &database.FakeDB{BeginFn: beginFake(t, nil)}
		_, err := CreateBooking(ctx, db, 1, 2, in, out)
		require.ErrorIs(t, err, ErrRoomUnavailable)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getRoomForUpdate = func(context.Context, database.Querier, int) (*model.Room, error) {
			return &model.Room{ID: 2, Available: true, BaseRate: 100}, nil
		}
		roomHasOverlap = func(context.Context, database.Querier, int, time.Time, time.Time, int) (bool, error) {
			return false, nil
		}
		insertBooking = func(_ context.Context, _ database.Querier, b *model.Booking) (*model.Booking, error) {
			b.ID = 9
			return b, nil
		}
		committed := false
		db := &database.FakeDB{BeginFn: beginFake(t, &committed)}
		b, err := CreateBooking(ctx, db, 1, 2, in, out)
		require.NoError(t, err)
		require.True(t, committed)
		require.Equal(t, 9, b.ID)
		require.Equal(t, model.BookingPending, b.Status)
		require.Equal(t, 3, b.Nights)
		require.Equal(t, 300.0, b.Subtotal)
		require.Equal(t, 30.0, b.Tax)
		require.Equal(t, 330.0, b.Total)
	})

	// 訂了 10/1–10/5 之後再訂 10/3–10/6 必須失敗
	t.Run("jan example", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		confirmed := struct{ in, out time.Time }{date(2026, time.January, 1), date(2026, time.January, 5)}
		getRoomForUpdate = func(context.Context, database.Querier, int) (*model.Room, error) {
			return &model.Room{ID: 101, Available: true, BaseRate: 100}, nil
		}
		roomHasOverlap = func(_ context.Context, _ database.Querier, _ int, a, b time.Time, _ int) (bool, error) {
			return confirmed.in.Before(b) && a.Before(confirmed.out), nil
		}
		db := &database.FakeDB{BeginFn: beginFake(t, nil)}
		_, err := CreateBooking(ctx, db, 1, 101, date(2026, time.January, 3), date(2026, time.January, 6))
		require.ErrorIs(t, err, ErrRoomUnavailable)
	})
}

func TestConfirmBooking(t *testing.T) {
	ctx := context.Background()

	pending := func() *model.Booking {
		return &model.Booking{
			ID: 4, UserID: 1, RoomID: 2,
			CheckIn: date(2025, time.October, 1), CheckOut: date(2025, time.October, 4),
			Nights: 3, Subtotal: 300, Tax: 30, Total: 330,
			Status: model.BookingPending,
		}
	}

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getBookingForUpdate = func(context.Context, database.Querier, int) (*model.Booking, error) {
			return nil, errors.New("no rows")
		}
		db := &database.FakeDB{BeginFn: beginFake(t, nil)}
		_, _, err := ConfirmBooking(ctx, db, 4)
		require.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("not pending", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		b := pending()
		b.Status = model.BookingConfirmed
		getBookingForUpdate = func(context.Context, database.Querier, int) (*model.Booking, error) { return b, nil }
		db := &database.FakeDB{BeginFn: beginFake(t, nil)}
		_, _, err := ConfirmBooking(ctx, db, 4)
		require.ErrorIs(t, err, ErrBookingNotActive)
	})

	t.Run("conflict on re-check", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getBookingForUpdate = func(context.Context, database.Querier, int) (*model.Booking, error) { return pending(), nil }
		getRoomForUpdate = func(context.Context, database.Querier, int) (*model.Room, error) {
			return &model.Room{ID: 2, Available: true}, nil
		}
		roomHasOverlap = func(_ context.Context, _ database.Querier, _ int, _, _ time.Time, excl int) (bool, error) {
			require.Equal(t, 4, excl)
			return true, nil
		}
		db := &database.FakeDB{BeginFn: beginFake(t, nil)}
		_, _, err := ConfirmBooking(ctx, db, 4)
		require.ErrorIs(t, err, ErrRoomUnavailable)
	})

	t.Run("success creates invoice", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getBookingForUpdate = func(context.Context, database.Querier, int) (*model.Booking, error) { return pending(), nil }
		getRoomForUpdate = func(context.Context, database.Querier, int) (*model.Room, error) {
			return &model.Room{ID: 2, Available: true}, nil
		}
		roomHasOverlap = func(context.Context, database.Querier, int, time.Time, time.Time, int) (bool, error) {
			return false, nil
		}
		var statusSet string
		setBookingStatus = func(_ context.Context, _ database.Querier, id int, status string) error {
			require.Equal(t, 4, id)
			statusSet = status
			return nil
		}
		insertInvoice = func(_ context.Context, _ database.Querier, inv *model.Invoice) (*model.Invoice, error) {
			inv.ID = 11
			return inv, nil
		}
		committed := false
		db := &database.FakeDB{BeginFn: beginFake(t, &committed)}
		b, inv, err := ConfirmBooking(ctx, db, 4)
		require.NoError(t, err)
		require.True(t, committed)
		require.Equal(t, model.BookingConfirmed, b.Status)
		require.Equal(t, model.BookingConfirmed, statusSet)
		require.Equal(t, 11, inv.ID)
		require.Equal(t, 4, inv.BookingID)
		require.Equal(t, 300.0, inv.Subtotal)
		require.Equal(t, 30.0, inv.Tax)
		require.Equal(t, 330.0, inv.Total)
		require.Equal(t, inv.Total, inv.Subtotal+inv.Tax)
	})
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()
	guest := model.User{ID: 1, Role: model.RoleGuest}
	staff := model.User{ID: 99, Role: model.RoleStaff}

	booking := func(status string) *model.Booking {
		return &model.Booking{ID: 4, UserID: 1, RoomID: 2, Status: status}
	}

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getBookingForUpdate = func(context.Context, database.Querier, int) (*model.Booking, error) {
			return nil, errors.New("no rows")
		}
		db := &database.FakeDB{BeginFn: beginFake(t, nil)}
		_, err := CancelBooking(ctx, db, 4, guest)
		require.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("already cancelled", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getBookingForUpdate = func(context.Context, database.Querier, int) (*model.Booking, error) {
			return booking(model.BookingCancelled), nil
		}
		db := &database.FakeDB{BeginFn: beginFake(t, nil)}
		_, err := CancelBooking(ctx, db, 4, staff)
		require.ErrorIs(t, err, ErrBookingNotActive)
	})

	t.Run("guest cannot cancel others", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getBookingForUpdate = func(context.Context, database.Querier, int) (*model.Booking, error) {
			return booking(model.BookingPending), nil
		}
		db := &database.FakeDB{BeginFn: beginFake(t, nil)}
		_, err := CancelBooking(ctx, db, 4, model.User{ID: 2, Role: model.RoleGuest})
		require.ErrorIs(t, err, ErrBookingNotOwned)
	})

	t.Run("guest cannot cancel confirmed", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getBookingForUpdate = func(context.Context, database.Querier, int) (*model.Booking, error) {
			return booking(model.BookingConfirmed), nil
		}
		db := &database.FakeDB{BeginFn: beginFake(t, nil)}
		_, err := CancelBooking(ctx, db, 4, guest)
		require.ErrorIs(t, err, ErrBookingNotActive)
	})

	t.Run("guest cancels own pending", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getBookingForUpdate = func(context.Context, database.Querier, int) (*model.Booking, error) {
			return booking(model.BookingPending), nil
		}
		setBookingStatus = func(_ context.Context, _ database.Querier, id int, status string) error {
			require.Equal(t, model.BookingCancelled, status)
			return nil
		}
		committed := false
		db := &database.FakeDB{BeginFn: beginFake(t, &committed)}
		b, err := CancelBooking(ctx, db, 4, guest)
		require.NoError(t, err)
		require.True(t, committed)
		require.Equal(t, model.BookingCancelled, b.Status)
	})

	t.Run("staff cancels confirmed", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getBookingForUpdate = func(context.Context, database.Querier, int) (*model.Booking, error) {
			return booking(model.BookingConfirmed), nil
		}
		setBookingStatus = func(context.Context, database.Querier, int, string) error { return nil }
		db := &database.FakeDB{BeginFn: beginFake(t, nil)}
		b, err := CancelBooking(ctx, db, 4, staff)
		require.NoError(t, err)
		require.Equal(t, model.BookingCancelled, b.Status)
	})
}
