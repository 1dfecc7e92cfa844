package router

import (
	"net/http"
	"testing"

	"stayhub/internal/cache"
	"stayhub/internal/database"
	"stayhub/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, worker.NewPool(1))

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /api/ping",
		http.MethodPost + " /api/auth/register",
		http.MethodPost + " /api/auth/login",
		http.MethodPost + " /api/auth/logout",
		http.MethodGet + " /api/rooms",
		http.MethodGet + " /api/rooms/search",
		http.MethodPost + " /api/bookings",
		http.MethodGet + " /api/bookings",
		http.MethodGet + " /api/bookings/:id",
		http.MethodPost + " /api/bookings/:id/cancel",
		http.MethodGet + " /api/invoices/:id",
		http.MethodPost + " /api/invoices/:id/payments",
		http.MethodGet + " /api/admin/rooms",
		http.MethodPost + " /api/admin/rooms",
		http.MethodPut + " /api/admin/rooms/:id",
		http.MethodDelete + " /api/admin/rooms/:id",
		http.MethodPatch + " /api/admin/rooms/:id/availability",
		http.MethodGet + " /api/admin/bookings",
		http.MethodPost + " /api/admin/bookings/:id/confirm",
		http.MethodPost + " /api/admin/bookings/:id/cancel",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}
