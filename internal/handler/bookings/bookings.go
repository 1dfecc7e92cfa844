package bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"stayhub/internal/api"
	"stayhub/internal/database"
	"stayhub/internal/middleware"
	"stayhub/internal/model"
	"stayhub/internal/service"
	"stayhub/internal/store"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// 測試可覆寫以下變數
var (
	createBooking      = service.CreateBooking
	cancelBooking      = service.CancelBooking
	getBookingByID     = store.GetBookingByID
	listBookingsByUser = store.ListBookingsByUser
)

func toResponse(b *model.Booking) api.BookingResponse {
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

func claimsFrom(c echo.Context) (*service.CustomClaims, bool) {
	claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
	return claims, ok
}

// @Summary     Create a booking
// @Description 建立 pending 訂房並回傳完整報價，日期重疊或房間停售回 409
// @Tags        bookings
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       room_id   formData int    true "房間 ID"
// @Param       check_in  formData string true "入住日 (YYYY-MM-DD)"
// @Param       check_out formData string true "退房日 (YYYY-MM-DD)"
// @Success     201 {object} api.BookingResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse "館方帳號不可訂房"
// @Failure     404 {object} api.ErrorResponse "房間不存在"
// @Failure     409 {object} api.ErrorResponse "區間不可訂"
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /bookings [post]
func CreateBookingHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := claimsFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		if claims.IsStaff() {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "staff accounts cannot book rooms"})
		}

		var req api.CreateBookingRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		checkIn, err := time.Parse(dateLayout, req.CheckIn)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid check_in date"})
		}
		checkOut, err := time.Parse(dateLayout, req.CheckOut)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid check_out date"})
		}

		booking, err := createBooking(c.Request().Context(), db, claims.UserID, req.RoomID, checkIn, checkOut)
		switch {
		case errors.Is(err, service.ErrInvalidStay):
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		case errors.Is(err, service.ErrRoomNotFound):
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: err.Error()})
		case errors.Is(err, service.ErrRoomUnavailable):
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: err.Error()})
		case err != nil:
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusCreated, toResponse(booking))
	}
}

// @Summary     List my bookings
// @Description 列出目前使用者的全部訂房，新的在前
// @Tags        bookings
// @Produce     json
// @Success     200 {array}  api.BookingResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /bookings [get]
func ListMyBookingsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := claimsFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		bookings, err := listBookingsByUser(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		resp := make([]api.BookingResponse, 0, len(bookings))
		for i := range bookings {
			resp = append(resp, toResponse(&bookings[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a booking
// @Description 取得單筆訂房，僅限本人或館方
// @Tags        bookings
// @Produce     json
// @Param       id path int true "訂房 ID"
// @Success     200 {object} api.BookingResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /bookings/{id} [get]
func GetBookingHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := claimsFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid booking ID"})
		}
		booking, err := getBookingByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "booking not found"})
		}
		if booking.UserID != claims.UserID && !claims.IsStaff() {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "not your booking"})
		}
		return c.JSON(http.StatusOK, toResponse(booking))
	}
}

// @Summary     Cancel my booking
// @Description 房客取消自己仍在 pending 的訂房，取消後區間立即釋出
// @Tags        bookings
// @Produce     json
// @Param       id path int true "訂房 ID"
// @Success     200 {object} api.BookingResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse "非 pending 狀態"
// @Security    ApiKeyAuth
// @Router      /bookings/{id}/cancel [post]
func CancelBookingHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := claimsFrom(c)
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
		case errors.Is(err, service.ErrBookingNotOwned):
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: err.Error()})
		case errors.Is(err, service.ErrBookingNotActive):
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: err.Error()})
		case err != nil:
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, toResponse(booking))
	}
}
