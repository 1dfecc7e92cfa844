package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stayhub/internal/database"
	"stayhub/internal/middleware"
	"stayhub/internal/model"
	"stayhub/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func sampleBooking(id int, status string) *model.Booking {
	return &model.Booking{
		ID:       id,
		UserID:   1,
		RoomID:   2,
		CheckIn:  time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, time.October, 4, 0, 0, 0, 0, time.UTC),
		Nights:   3, NightlyRate: 100, Subtotal: 300, Tax: 30, Total: 330,
		Status: status,
	}
}

func newBookingCtx(e *echo.Echo, id string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/admin/bookings/"+id, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	c.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: 9, Role: model.RoleStaff})
	return c, rec
}

func TestListBookingsHandler(t *testing.T) {
	e := echo.New()
	t.Cleanup(restore)
	listBookings = func(context.Context, database.Querier) ([]model.Booking, error) {
		return []model.Booking{*sampleBooking(8, model.BookingPending)}, nil
	}
	req := httptest.NewRequest(http.MethodGet, "/admin/bookings", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, ListBookingsHandler(&database.FakeDB{})(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"id":8`)
}

func TestConfirmBookingHandler(t *testing.T) {
	e := echo.New()

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		confirmBooking = func(context.Context, database.DB, int) (*model.Booking, *model.Invoice, error) {
			return nil, nil, service.ErrBookingNotFound
		}
		ctx, rec := newBookingCtx(e, "8")
		require.NoError(t, ConfirmBookingHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("overlap conflict maps to 409", func(t *testing.T) {
		t.Cleanup(restore)
		confirmBooking = func(context.Context, database.DB, int) (*model.Booking, *model.Invoice, error) {
			return nil, nil, service.ErrRoomUnavailable
		}
		ctx, rec := newBookingCtx(e, "8")
		require.NoError(t, ConfirmBookingHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("not pending maps to 409", func(t *testing.T) {
		t.Cleanup(restore)
		confirmBooking = func(context.Context, database.DB, int) (*model.Booking, *model.Invoice, error) {
			return nil, nil, service.ErrBookingNotActive
		}
		ctx, rec := newBookingCtx(e, "8")
		require.NoError(t, ConfirmBookingHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		confirmBooking = func(_ context.Context, _ database.DB, id int) (*model.Booking, *model.Invoice, error) {
			require.Equal(t, 8, id)
			return sampleBooking(8, model.BookingConfirmed), &model.Invoice{ID: 3, BookingID: 8}, nil
		}
		ctx, rec := newBookingCtx(e, "8")
		require.NoError(t, ConfirmBookingHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"status":"confirmed"`)
	})
}

func TestCancelBookingHandler(t *testing.T) {
	e := echo.New()

	t.Run("already cancelled maps to 409", func(t *testing.T) {
		t.Cleanup(restore)
		cancelBooking = func(context.Context, database.DB, int, model.User) (*model.Booking, error) {
			return nil, service.ErrBookingNotActive
		}
		ctx, rec := newBookingCtx(e, "8")
		require.NoError(t, CancelBookingHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("staff cancels a confirmed booking", func(t *testing.T) {
		t.Cleanup(restore)
		cancelBooking = func(_ context.Context, _ database.DB, id int, requester model.User) (*model.Booking, error) {
			require.Equal(t, 8, id)
			require.True(t, requester.IsStaff())
			return sampleBooking(8, model.BookingCancelled), nil
		}
		ctx, rec := newBookingCtx(e, "8")
		require.NoError(t, CancelBookingHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"status":"cancelled"`)
	})
}
