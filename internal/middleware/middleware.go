package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"stayhub/internal/cache"
	"stayhub/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// 測試可覆寫以下變數
var (
	verifyAccessToken = service.VerifyAccessToken
	getSession        = service.GetSession
)

func extractClaims(c echo.Context) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	claims, err := verifyAccessToken(parts[1])
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
	}
	return claims, nil
}

// RequireAuth 驗證 JWT 並確認其 sid 仍存在於 Redis，
// 讓登出後的令牌即刻失效。
func RequireAuth(rdb cache.Cache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c)
			if err != nil {
				return err
			}
			if _, err := getSession(c.Request().Context(), rdb, claims.SessionID); err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired or revoked")
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// RequireStaff 在 RequireAuth 之上再要求館方人員角色
func RequireStaff(rdb cache.Cache) echo.MiddlewareFunc {
	auth := RequireAuth(rdb)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return auth(func(c echo.Context) error {
			claims := c.Get(ContextUserKey).(*service.CustomClaims)
			if !claims.IsStaff() {
				return echo.NewHTTPError(http.StatusForbidden, "staff privileges required")
			}
			return next(c)
		})
	}
}
