//go:build !integration

package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/postage-comparator/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func fileConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Server: config.ServerConfig{
			Port:           "0",
			RequestTimeout: 5 * time.Second,
		},
		Storage: config.StorageConfig{
			Driver:  config.StorageDriverFile,
			DataDir: t.TempDir(),
		},
		Quote: config.QuoteConfig{
			Currency:         "AUD",
			DefaultCountry:   "AU",
			VolumetricFactor: 0.25,
			Providers:        []string{"rules"},
		},
	}
}

func TestInitializeApp(t *testing.T) {
	t.Setenv("LOG_LEVEL", "off")

	application, err := InitializeApp(fileConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, application.Close(context.Background())) })

	tests := []struct {
		name   string
		path   string
		status int
		body   string
	}{
		{name: "liveness", path: "/healthz", status: http.StatusOK, body: `{"status":"ok"}`},
		{name: "readiness probes file storage", path: "/readyz", status: http.StatusOK, body: `{"status":"ok","checks":{"storage":"ok"}}`},
		{name: "empty item catalog", path: "/api/items", status: http.StatusOK, body: `[]`},
		{name: "empty packaging catalog", path: "/api/packaging", status: http.StatusOK, body: `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			application.Router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestInitializeApp_OriginMissing(t *testing.T) {
	t.Setenv("LOG_LEVEL", "off")

	application, err := InitializeApp(fileConfig(t))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/settings/origin", nil)
	application.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
	assert.Equal(t, "Origin settings not found", body.Error.Message)
}

func TestInitializeApp_Errors(t *testing.T) {
	t.Setenv("LOG_LEVEL", "off")

	tests := []struct {
		name    string
		mutate  func(t *testing.T, cfg *config.Config)
		wantErr string
	}{
		{
			name:    "unknown carrier provider",
			mutate:  func(_ *testing.T, cfg *config.Config) { cfg.Quote.Providers = []string{"pigeon"} },
			wantErr: "no carrier provider enabled",
		},
		{
			name: "missing rate table file",
			mutate: func(t *testing.T, cfg *config.Config) {
				cfg.Quote.RateTableFile = filepath.Join(t.TempDir(), "missing.yaml")
			},
			wantErr: "read rate table",
		},
		{
			name: "data dir is a file",
			mutate: func(t *testing.T, cfg *config.Config) {
				path := filepath.Join(t.TempDir(), "taken")
				require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
				cfg.Storage.DataDir = filepath.Join(path, "data")
			},
			wantErr: "initialize storage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := fileConfig(t)
			tt.mutate(t, &cfg)

			application, err := InitializeApp(cfg)
			require.Error(t, err)
			assert.Nil(t, application)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApplication_CloseNil(t *testing.T) {
	var application *Application
	assert.NoError(t, application.Close(context.Background()))
}
