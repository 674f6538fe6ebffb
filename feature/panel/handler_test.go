package panel

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"easy-ftp/core/apperr"
	"easy-ftp/core/ftpserver"
	"easy-ftp/core/settings"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, fixture) {
	t.Helper()
	f := setupService(t, lanSource())
	app := fiber.New()
	NewHandler(f.service, zap.NewNop()).RegisterRoutes(app)
	return app, f
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestHandleStart(t *testing.T) {
	app, f := setupTestApp(t)
	root := t.TempDir()
	want := settings.ServerConfig{RootDir: root, Username: "u", Password: "p", Port: 2121}

	f.server.On("Start", mock.Anything, want).Return("ftp://192.168.1.20:2121", nil)

	body, _ := json.Marshal(map[string]any{
		"RootDir":  root,
		"Username": "u",
		"Password": "p",
		"Port":     "2121",
	})
	status, out := doJSON(t, app, "POST", "/api/server/start", string(body))

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ftp://192.168.1.20:2121", out["address"])
}

func TestHandleStartErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"AlreadyRunning", apperr.New(apperr.KindAlreadyRunning, "start server", nil), fiber.StatusConflict, "already_running"},
		{"AddressInUse", apperr.New(apperr.KindAddressInUse, "start server", errors.New("bind: address already in use")), fiber.StatusConflict, "address_in_use"},
		{"PermissionDenied", apperr.New(apperr.KindPermissionDenied, "start server", errors.New("bind: permission denied")), fiber.StatusForbidden, "permission_denied"},
		{"EngineFailure", apperr.New(apperr.KindEngineFailure, "start server", errors.New("boom")), fiber.StatusInternalServerError, "engine_failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, f := setupTestApp(t)
			root := t.TempDir()
			f.server.On("Start", mock.Anything, mock.Anything).Return("", tt.err)

			body, _ := json.Marshal(settings.ServerConfig{RootDir: root, Username: "u", Password: "p", Port: 2121})
			status, out := doJSON(t, app, "POST", "/api/server/start", string(body))

			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, out["code"])
			assert.NotContains(t, out["error"], "boom")
		})
	}
}

func TestHandleStartInvalid(t *testing.T) {
	app, f := setupTestApp(t)

	tests := []struct {
		name string
		body string
	}{
		{"Malformed", `{"RootDir":`},
		{"BadPort", `{"RootDir":"/tmp","Port":"abc"}`},
		{"MissingRoot", `{"RootDir":"/definitely/not/here","Username":"u","Password":"p","Port":2121}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, out := doJSON(t, app, "POST", "/api/server/start", tt.body)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, "invalid_config", out["code"])
		})
	}
	f.server.AssertNotCalled(t, "Start", mock.Anything, mock.Anything)
}

func TestHandleStop(t *testing.T) {
	app, f := setupTestApp(t)
	f.server.On("Stop", mock.Anything).Return(nil)

	status, out := doJSON(t, app, "POST", "/api/server/stop", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "stopped", out["status"])
}

func TestHandleStopWhileStartInFlight(t *testing.T) {
	app, f := setupTestApp(t)
	root := t.TempDir()

	release := make(chan time.Time)
	f.server.On("Start", mock.Anything, mock.Anything).
		WaitUntil(release).
		Return("ftp://192.168.1.20:2121", nil)

	body, _ := json.Marshal(settings.ServerConfig{RootDir: root, Username: "u", Password: "p", Port: 2121})
	started := make(chan int, 1)
	go func() {
		req := httptest.NewRequest("POST", "/api/server/start", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		if err != nil {
			started <- 0
			return
		}
		resp.Body.Close()
		started <- resp.StatusCode
	}()

	require.Eventually(t, func() bool {
		return len(f.service.tasks) == 1
	}, 5*time.Second, 10*time.Millisecond)

	status, out := doJSON(t, app, "POST", "/api/server/stop", "")
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "busy", out["code"])
	f.server.AssertNotCalled(t, "Stop", mock.Anything)

	close(release)
	select {
	case code := <-started:
		assert.Equal(t, fiber.StatusOK, code)
	case <-time.After(5 * time.Second):
		t.Fatal("start request did not finish")
	}
}

func TestHandleStatus(t *testing.T) {
	app, f := setupTestApp(t)
	started := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	f.server.On("Snapshot").Return(ftpserver.Status{
		State:     ftpserver.Running,
		Running:   true,
		Address:   "ftp://192.168.1.20:2121",
		StartedAt: &started,
		Sessions:  2,
	})

	status, out := doJSON(t, app, "GET", "/api/server/status", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "running", out["state"])
	assert.Equal(t, true, out["running"])
	assert.Equal(t, "ftp://192.168.1.20:2121", out["address"])
	assert.Equal(t, float64(2), out["sessions"])
	assert.Equal(t, "2026-01-02T03:04:05Z", out["started_at"])
}

func TestHandleAddress(t *testing.T) {
	app, f := setupTestApp(t)
	f.server.On("CurrentAddress").Return("")

	status, out := doJSON(t, app, "GET", "/api/server/address", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "", out["address"])
}

func TestHandleConfigRoundTrip(t *testing.T) {
	app, _ := setupTestApp(t)

	status, out := doJSON(t, app, "GET", "/api/config", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(2121), out["Port"])
	assert.Equal(t, false, out["AutoStart"])

	status, out = doJSON(t, app, "PUT", "/api/config", `{"RootDir":"/srv/ftp","Username":"u","Password":"p","Port":"2222"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "saved", out["status"])

	status, out = doJSON(t, app, "GET", "/api/config", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "/srv/ftp", out["RootDir"])
	assert.Equal(t, float64(2222), out["Port"])

	status, out = doJSON(t, app, "PUT", "/api/config", `{"RootDir":"/srv/ftp","Username":"u","Port":2222}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "invalid_config", out["code"])
}

func TestHandleDefaultConfig(t *testing.T) {
	app, _ := setupTestApp(t)

	status, out := doJSON(t, app, "GET", "/api/config/default", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "admin", out["Username"])
	assert.Equal(t, "123456", out["Password"])
	assert.Equal(t, float64(2121), out["Port"])
}

func TestHandleAutoStart(t *testing.T) {
	app, f := setupTestApp(t)

	f.registrar.On("Enable").Return(nil)
	f.registrar.On("IsEnabled").Return(true, nil)

	status, out := doJSON(t, app, "PUT", "/api/autostart", `{"enabled":true}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, out["enabled"])

	status, out = doJSON(t, app, "GET", "/api/autostart", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, out["enabled"])
}

func TestHandleAutoStartDenied(t *testing.T) {
	app, f := setupTestApp(t)
	f.registrar.On("Disable").Return(apperr.New(apperr.KindPermissionDenied, "remove autostart entry", errors.New("access denied")))

	status, out := doJSON(t, app, "PUT", "/api/autostart", `{"enabled":false}`)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "permission_denied", out["code"])
	assert.Equal(t, "Permission denied", out["error"])
}

func TestHandleNetwork(t *testing.T) {
	app, _ := setupTestApp(t)

	status, out := doJSON(t, app, "GET", "/api/network", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "192.168.1.20", out["primary"])
	assert.Len(t, out["candidates"], 1)
}

func TestHandleNetworkNotFound(t *testing.T) {
	f := setupService(t, fakeSource{})
	app := fiber.New()
	NewHandler(f.service, nil).RegisterRoutes(app)

	status, out := doJSON(t, app, "GET", "/api/network", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "not_found", out["code"])
}

func TestLoader(t *testing.T) {
	f := setupService(t, lanSource())
	feature := NewFeature(f.service, NewHandler(f.service, zap.NewNop()))

	assert.Equal(t, "panel", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.Same(t, f.service, feature.Service())

	app := fiber.New()
	assert.NoError(t, feature.Load(app))
}
