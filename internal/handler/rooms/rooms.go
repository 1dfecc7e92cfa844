package rooms

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"stayhub/internal/api"
	"stayhub/internal/cache"
	"stayhub/internal/database"
	"stayhub/internal/middleware"
	"stayhub/internal/model"
	"stayhub/internal/service"
	"stayhub/internal/store"

	"github.com/labstack/echo/v4"
)

const (
	listingCacheKey = "rooms:listing"
	listingCacheTTL = 60 * time.Second
)

const dateLayout = "2006-01-02"

// 測試可覆寫以下變數
var (
	listAvailableRooms = store.ListAvailableRooms
	listFreeRooms      = store.ListFreeRooms
	timeNow            = time.Now
)

func toResponse(r model.Room, nightly float64) api.RoomResponse {
	return api.RoomResponse{
		ID:          r.ID,
		Number:      r.Number,
		Type:        r.Type,
		BaseRate:    r.BaseRate,
		NightlyRate: nightly,
		Available:   r.Available,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
}

// BuildListing 組出可訂房間清單，附上今日季節價
func BuildListing(ctx context.Context, db database.Querier) ([]api.RoomResponse, error) {
	rooms, err := listAvailableRooms(ctx, db)
	if err != nil {
		return nil, err
	}
	month := timeNow().Month()
	resp := make([]api.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		resp = append(resp, toResponse(r, service.NightlyRate(r.BaseRate, month)))
	}
	return resp, nil
}

// RefreshListing 重算清單並寫回 Redis。
// 後台房間異動後由 worker pool 呼叫，讓請求路徑不用等快取重建。
func RefreshListing(ctx context.Context, db database.Querier, rdb cache.Cache) error {
	listing, err := BuildListing(ctx, db)
	if err != nil {
		return err
	}
	data, err := json.Marshal(listing)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, listingCacheKey, data, listingCacheTTL).Err()
}

// @Summary     List available rooms
// @Description 列出目前可訂的房間與今日房價，結果快取於 Redis 60 秒
// @Tags        rooms
// @Produce     json
// @Success     200 {array}  api.RoomResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /rooms [get]
func ListRoomsHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if cached, err := rdb.Get(ctx, listingCacheKey).Result(); err == nil {
			return c.JSONBlob(http.StatusOK, []byte(cached))
		}

		listing, err := BuildListing(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if data, err := json.Marshal(listing); err == nil {
			// 快取寫入失敗不影響回應
			rdb.Set(ctx, listingCacheKey, data, listingCacheTTL)
		}
		return c.JSON(http.StatusOK, listing)
	}
}

// @Summary     Search rooms free for a date range
// @Description 搜尋指定區間內無已確認訂房重疊的可訂房間，可依房型與夜價上限過濾
// @Tags        rooms
// @Produce     json
// @Param       check_in  query string true  "入住日 (YYYY-MM-DD)"
// @Param       check_out query string true  "退房日 (YYYY-MM-DD)"
// @Param       room_type query string false "房型"
// @Param       max_price query number false "夜價上限 (以入住月份季節價計)"
// @Success     200 {array}  api.RoomResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse "館方帳號不可搜尋"
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /rooms/search [get]
func SearchRoomsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		if claims.IsStaff() {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "staff accounts cannot search rooms"})
		}

		var req api.SearchRoomsRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid query parameters"})
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
		if !checkIn.Before(checkOut) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: service.ErrInvalidStay.Error()})
		}

		rooms, err := listFreeRooms(c.Request().Context(), db, checkIn, checkOut)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		month := checkIn.Month()
		resp := make([]api.RoomResponse, 0, len(rooms))
		for _, r := range rooms {
			if req.RoomType != "" && r.Type != req.RoomType {
				continue
			}
			nightly := service.NightlyRate(r.BaseRate, month)
			if req.MaxPrice > 0 && nightly > req.MaxPrice {
				continue
			}
			resp = append(resp, toResponse(r, nightly))
		}
		return c.JSON(http.StatusOK, resp)
	}
}
