package health

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"propnest-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthJSON(t *testing.T) {
	_, rdb := testRedis(t)
	h := &Handlers{Rdb: rdb, DB: okPinger{}}
	app := fiber.New()
	app.Get("/health/json", h.JSON)

	req := httptest.NewRequest("GET", "/health/json", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "propnest-api", result["service"])
	assert.Equal(t, "ok", result["status"])
	_, hasTraffic := result["traffic"]
	assert.True(t, hasTraffic)
}

func TestHealthReset_RequiresKey(t *testing.T) {
	mr, rdb := testRedis(t)
	mr.Set(middleware.KeyReqTotal, "5")

	h := &Handlers{Rdb: rdb, HealthAdminKey: "sekrit"}
	app := fiber.New()
	app.Get("/health/reset", h.Reset)

	req := httptest.NewRequest("GET", "/health/reset", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest("GET", "/health/reset?key=sekrit", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.False(t, mr.Exists(middleware.KeyReqTotal))
}

func TestHealthErrors_ReadsLog(t *testing.T) {
	mr, rdb := testRedis(t)
	mr.Lpush(middleware.KeyErrorLog, `{"path":"/api/x","status":500}`)

	h := &Handlers{Rdb: rdb}
	app := fiber.New()
	app.Get("/health/errors", h.Errors)

	req := httptest.NewRequest("GET", "/health/errors", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var entries []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "/api/x", entries[0]["path"])
}
