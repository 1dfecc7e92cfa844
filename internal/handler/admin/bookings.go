package admin

import (
	"errors"
	"net/http"
	"strconv"

	"stayhub/internal/api"
	"stayhub/internal/database"
	"stayhub/internal/middleware"
	"stayhub/internal/model"
	"stayhub/internal/service"
	"stayhub/internal/store"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// 測試可覆寫以下變數
var (
	listBookings   = store.ListBookings
	confirmBooking = service.ConfirmBooking
	cancelBooking  = service.CancelBooking
)

func pgUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func toBookingResponse(b *model.Booking) api.BookingResponse {
	return api.BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		RoomID:      b.RoomID,
		CheckIn:     b.CheckIn.Format(dateLayout),
		CheckOut:    b.CheckOut.Format(dateLayout),
		Nights:      b.Nights,
		NightlyRate: b.NightlyRate,
		Subtotal:    b.Subtotal,
		Tax:         b.Tax,
		Total:       b.Total,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
	}
}

// @Summary     List all bookings
// @Description 後台訂房總覽，新的在前
// @Tags        admin
// @Produce     json
// @Success     200 {array}  api.BookingResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/bookings [get]
func ListBookingsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		bookings, err := listBookings(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		resp := make([]api.BookingResponse, 0, len(bookings))
		for i := range bookings {
			resp = append(resp, toBookingResponse(&bookings[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Confirm a pending booking
// @Description 重新檢查日期重疊後定案訂房並開立發票
// @Tags        admin
// @Produce     json
// @Param       id path int true "訂房 ID"
// @Success     200 {object} api.BookingResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse "非 pending 或日期衝突"
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/bookings/{id}/confirm [post]
func ConfirmBookingHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid booking ID"})
		}

		booking, _, err := confirmBooking(c.Request().Context(), db, id)
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: err.Error()})
		case errors.Is(err, service.ErrBookingNotActive), errors.Is(err, service.ErrRoomUnavailable):
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: err.Error()})
		case err != nil:
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, toBookingResponse(booking))
	}
}

// @Summary     Cancel any booking
// @Description 館方取消任何尚未取消的訂房
// @Tags        admin
// @Produce     json
// @Param       id path int true "訂房 ID"
// @Success     200 {object} api.BookingResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse "已是取消狀態"
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/bookings/{id}/cancel [post]
func CancelBookingHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid booking ID"})
		}

		booking, err := cancelBooking(c.Request().Context(), db, id, model.User{ID: claims.UserID, Role: claims.Role})
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: err.Error()})
		case errors.Is(err, service.ErrBookingNotActive):
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: err.Error()})
		case err != nil:
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, toBookingResponse(booking))
	}
}
