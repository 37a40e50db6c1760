package app

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"propnest-backend/internal/config"
	"propnest-backend/internal/database"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testApp(t *testing.T) *fiber.App {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	cfg := &config.Config{
		Env:      "test",
		RedisURL: "redis://" + mr.Addr(),
	}
	app, rdb, err := CreateAppWithDB(cfg, db)
	require.NoError(t, err)
	t.Cleanup(func() { rdb.Close() })
	return app
}

func TestRoutes_WrongMethodIs405(t *testing.T) {
	app := testApp(t)

	for _, route := range []struct{ method, path string }{
		{"GET", "/api/properties/create"},
		{"DELETE", "/api/properties/list"},
		{"PUT", "/api/forum/posts"},
		{"GET", "/api/forum/react"},
		{"GET", "/api/users/signup"},
		{"POST", "/api/auth/me"},
		{"GET", "/api/auth/logout"},
	} {
		req := httptest.NewRequest(route.method, route.path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode, "%s %s", route.method, route.path)

		var result map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "Method not allowed", result["message"])
	}
}

func TestRoutes_ProtectedWithoutSessionIs401(t *testing.T) {
	app := testApp(t)

	for _, route := range []struct{ method, path string }{
		{"POST", "/api/properties/create"},
		{"GET", "/api/properties/favorites"},
		{"POST", "/api/properties/archive"},
		{"POST", "/api/forum/posts"},
		{"POST", "/api/builders/create"},
	} {
		req := httptest.NewRequest(route.method, route.path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "%s %s", route.method, route.path)

		var result map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "Unauthorized", result["message"])
	}
}

func TestRoutes_PublicReads(t *testing.T) {
	app := testApp(t)

	for _, path := range []string{
		"/api/properties/list",
		"/api/forum/posts",
		"/api/projects/list",
		"/health/json",
	} {
		req := httptest.NewRequest("GET", path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
	}
}

func TestRoutes_UnknownPathIs404(t *testing.T) {
	app := testApp(t)
	req := httptest.NewRequest("GET", "/api/nope", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
