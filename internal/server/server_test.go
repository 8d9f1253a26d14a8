package server

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"prompt-manager/internal/bootstrap"
	"prompt-manager/internal/config"
	"prompt-manager/internal/constant"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		App: config.AppConfig{
			Port:               "0",
			Environment:        "test",
			LogFilePath:        filepath.Join(dir, "app.log"),
			NoticeLogFilePath:  filepath.Join(dir, "notice.log"),
			CorsAllowedOrigins: "*",
			NoticeTopic:        "TEST_NOTICES",
		},
		Storage: config.StorageConfig{
			Driver: constant.StorageDriverMemory,
			Key:    constant.StorageKeyPrompts,
		},
	}

	container, err := bootstrap.NewContainer(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { container.Close() })

	return New(cfg, container)
}

func TestServer_Routes(t *testing.T) {
	app := newTestServer(t).GetApp()

	req := httptest.NewRequest(fiber.MethodPost, "/api/prompt/v1/save", strings.NewReader(`{"title":"Hello","content":"World"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/api/prompt/v1", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Prompts []struct {
				Title string `json:"title"`
			} `json:"prompts"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data.Prompts, 1)
	assert.Equal(t, "Hello", body.Data.Prompts[0].Title)
}

func TestServer_UnknownPromptCopy(t *testing.T) {
	app := newTestServer(t).GetApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/api/prompt/v1/missing/select", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/api/prompt/v1/copy", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
