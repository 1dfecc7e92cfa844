package router

import (
	"github.com/labstack/echo/v4"

	"stayhub/internal/cache"
	"stayhub/internal/database"
	"stayhub/internal/handler"
	"stayhub/internal/handler/admin"
	"stayhub/internal/handler/auth"
	"stayhub/internal/handler/bookings"
	"stayhub/internal/handler/invoices"
	"stayhub/internal/handler/rooms"
	"stayhub/internal/middleware"
	"stayhub/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool) {
	api := e.Group("/api")

	requireAuth := middleware.RequireAuth(rdb)
	requireStaff := middleware.RequireStaff(rdb)

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(db), requireAuth)

	// 註冊與登入登出
	api.POST("/auth/register", auth.RegisterHandler(db))
	api.POST("/auth/login", auth.LoginHandler(db, rdb))
	api.POST("/auth/logout", auth.LogoutHandler(rdb), requireAuth)

	// 房客端房間查詢
	api.GET("/rooms", rooms.ListRoomsHandler(db, rdb), requireAuth)
	api.GET("/rooms/search", rooms.SearchRoomsHandler(db), requireAuth)

	// 房客端訂房與帳務
	apiBookings := api.Group("/bookings", requireAuth)
	apiBookings.POST("", bookings.CreateBookingHandler(db))
	apiBookings.GET("", bookings.ListMyBookingsHandler(db))
	apiBookings.GET("/:id", bookings.GetBookingHandler(db))
	apiBookings.POST("/:id/cancel", bookings.CancelBookingHandler(db))

	apiInvoices := api.Group("/invoices", requireAuth)
	apiInvoices.GET("/:id", invoices.GetInvoiceHandler(db))
	apiInvoices.POST("/:id/payments", invoices.PayInvoiceHandler(db))

	// 館方後台
	apiAdmin := api.Group("/admin", requireStaff)
	apiAdmin.GET("/rooms", admin.ListRoomsHandler(db))
	apiAdmin.POST("/rooms", admin.CreateRoomHandler(db, rdb, wp))
	apiAdmin.PUT("/rooms/:id", admin.UpdateRoomHandler(db, rdb, wp))
	apiAdmin.DELETE("/rooms/:id", admin.DeleteRoomHandler(db, rdb, wp))
	apiAdmin.PATCH("/rooms/:id/availability", admin.SetRoomAvailabilityHandler(db, rdb, wp))
	apiAdmin.GET("/bookings", admin.ListBookingsHandler(db))
	apiAdmin.POST("/bookings/:id/confirm", admin.ConfirmBookingHandler(db))
	apiAdmin.POST("/bookings/:id/cancel", admin.CancelBookingHandler(db))
}
