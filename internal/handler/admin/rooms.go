package admin

import (
	"context"
	"net/http"
	"strconv"

	"stayhub/internal/api"
	"stayhub/internal/cache"
	"stayhub/internal/database"
	"stayhub/internal/handler/rooms"
	"stayhub/internal/model"
	"stayhub/internal/store"
	"stayhub/internal/worker"

	"github.com/labstack/echo/v4"
)

// 測試可覆寫以下變數
var (
	createRoom          = store.CreateRoom
	getRoomByID         = store.GetRoomByID
	listRooms           = store.ListRooms
	updateRoom          = store.UpdateRoom
	deleteRoom          = store.DeleteRoom
	setRoomAvailability = store.SetRoomAvailability
	countActiveBookings = store.CountActiveBookings
	refreshListing      = rooms.RefreshListing
)

// scheduleRefresh 把房況快取重建丟給 worker pool，不佔用請求路徑
func scheduleRefresh(db database.DB, rdb cache.Cache, wp worker.Pool) {
	wp.Submit(func() {
		_ = refreshListing(context.Background(), db, rdb)
	})
}

func toRoomResponse(r *model.Room) api.RoomResponse {
	return api.RoomResponse{
		ID:          r.ID,
		Number:      r.Number,
		Type:        r.Type,
		BaseRate:    r.BaseRate,
		Available:   r.Available,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
}

// @Summary     List all rooms
// @Description 列出全部房間，含停售中的
// @Tags        admin
// @Produce     json
// @Success     200 {array}  api.RoomResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/rooms [get]
func ListRoomsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		all, err := listRooms(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		resp := make([]api.RoomResponse, 0, len(all))
		for i := range all {
			resp = append(resp, toRoomResponse(&all[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Create a room
// @Description 新增房間，房號不可重複
// @Tags        admin
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       number      formData string true  "房號"
// @Param       type        formData string true  "房型"
// @Param       base_rate   formData number true  "基礎夜價"
// @Param       description formData string false "描述"
// @Success     201 {object} api.RoomResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse "房號已存在"
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/rooms [post]
func CreateRoomHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateRoomRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		room, err := createRoom(c.Request().Context(), db, &model.Room{
			Number:      req.Number,
			Type:        req.Type,
			BaseRate:    req.BaseRate,
			Available:   true,
			Description: req.Description,
		})
		if err != nil {
			if pgUniqueViolation(err) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "room number already exists"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		scheduleRefresh(db, rdb, wp)
		return c.JSON(http.StatusCreated, toRoomResponse(room))
	}
}

// @Summary     Update a room
// @Description 更新房型、基礎夜價與描述；既有訂房保留建立當下的價格
// @Tags        admin
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       id          path     int    true  "房間 ID"
// @Param       type        formData string true  "房型"
// @Param       base_rate   formData number true  "基礎夜價"
// @Param       description formData string false "描述"
// @Success     200 {object} api.RoomResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/rooms/{id} [put]
func UpdateRoomHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid room ID"})
		}

		var req api.UpdateRoomRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		room, err := getRoomByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "room not found"})
		}
		room.Type = req.Type
		room.BaseRate = req.BaseRate
		room.Description = req.Description
		if err := updateRoom(c.Request().Context(), db, room); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		scheduleRefresh(db, rdb, wp)
		return c.JSON(http.StatusOK, toRoomResponse(room))
	}
}

// @Summary     Delete a room
// @Description 刪除房間；仍有 pending 或 confirmed 訂房時拒絕
// @Tags        admin
// @Produce     json
// @Param       id path int true "房間 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse "房間仍有有效訂房"
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/rooms/{id} [delete]
func DeleteRoomHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid room ID"})
		}

		active, err := countActiveBookings(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if active > 0 {
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "room still has active bookings"})
		}

		if err := deleteRoom(c.Request().Context(), db, id); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		scheduleRefresh(db, rdb, wp)
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Set room availability
// @Description 切換房間可訂狀態，維護用開關，獨立於訂房狀態
// @Tags        admin
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       id        path     int     true "房間 ID"
// @Param       available formData boolean true "是否可訂"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/rooms/{id}/availability [patch]
func SetRoomAvailabilityHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid room ID"})
		}

		var req api.SetRoomAvailabilityRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}

		if _, err := getRoomByID(c.Request().Context(), db, id); err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "room not found"})
		}
		if err := setRoomAvailability(c.Request().Context(), db, id, req.Available); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		scheduleRefresh(db, rdb, wp)
		return c.NoContent(http.StatusNoContent)
	}
}
