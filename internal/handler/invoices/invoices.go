package invoices

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

	"github.com/labstack/echo/v4"
)

// 測試可覆寫以下變數
var (
	payInvoice            = service.PayInvoice
	getInvoiceByID        = store.GetInvoiceByID
	getBookingByID        = store.GetBookingByID
	listPaymentsByInvoice = store.ListPaymentsByInvoice
)

func toPaymentResponse(p model.Payment) api.PaymentResponse {
	return api.PaymentResponse{
		ID:        p.ID,
		InvoiceID: p.InvoiceID,
		Amount:    p.Amount,
		Method:    p.Method,
		Reference: p.Reference,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
	}
}

// ownsInvoice 透過發票對應的訂房判斷存取權：本人或館方
func ownsInvoice(c echo.Context, db database.DB, inv *model.Invoice, claims *service.CustomClaims) (bool, error) {
	if claims.IsStaff() {
		return true, nil
	}
	booking, err := getBookingByID(c.Request().Context(), db, inv.BookingID)
	if err != nil {
		return false, err
	}
	return booking.UserID == claims.UserID, nil
}

// @Summary     Get an invoice with its payments
// @Description 取得發票、既有付款與剩餘應付金額，僅限訂房本人或館方
// @Tags        invoices
// @Produce     json
// @Param       id path int true "發票 ID"
// @Success     200 {object} api.InvoiceResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /invoices/{id} [get]
func GetInvoiceHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid invoice ID"})
		}

		invoice, err := getInvoiceByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "invoice not found"})
		}
		owns, err := ownsInvoice(c, db, invoice, claims)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if !owns {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "not your invoice"})
		}

		payments, err := listPaymentsByInvoice(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		paid := 0.0
		resp := api.InvoiceResponse{
			ID:        invoice.ID,
			BookingID: invoice.BookingID,
			Subtotal:  invoice.Subtotal,
			Tax:       invoice.Tax,
			Total:     invoice.Total,
			Paid:      invoice.Paid,
			PaidAt:    invoice.PaidAt,
			Payments:  make([]api.PaymentResponse, 0, len(payments)),
			CreatedAt: invoice.CreatedAt,
		}
		for _, p := range payments {
			paid += p.Amount
			resp.Payments = append(resp.Payments, toPaymentResponse(p))
		}
		resp.Balance = service.Round2(invoice.Total - paid)
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Pay an invoice
// @Description 記錄一筆付款；付款總額不得超過發票總額，收齊後發票標記為已付
// @Tags        invoices
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       id     path     int    true "發票 ID"
// @Param       amount formData number true "付款金額"
// @Param       method formData string true "付款方式"
// @Success     201 {object} api.PaymentResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     422 {object} api.ErrorResponse "超過發票總額"
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /invoices/{id}/payments [post]
func PayInvoiceHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid invoice ID"})
		}

		var req api.PayInvoiceRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		invoice, err := getInvoiceByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "invoice not found"})
		}
		owns, err := ownsInvoice(c, db, invoice, claims)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if !owns {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "not your invoice"})
		}

		payment, _, err := payInvoice(c.Request().Context(), db, id, req.Amount, req.Method)
		switch {
		case errors.Is(err, service.ErrInvoiceNotFound):
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: err.Error()})
		case errors.Is(err, service.ErrInvalidAmount):
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		case errors.Is(err, service.ErrExceedsInvoice):
			return c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Message: err.Error()})
		case err != nil:
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusCreated, toPaymentResponse(*payment))
	}
}
