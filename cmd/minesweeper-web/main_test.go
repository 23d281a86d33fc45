package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/minesweeper/internal/config"
)

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{"-addr", ":9999", "-log-format", "json", "-session-idle", "10m", "-max-cells", "400"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 400, cfg.MaxCells)
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Minute, cfg.SessionIdle)

	_, err = parseFlags([]string{"-log-level", "chatty"}, io.Discard)
	assert.Error(t, err)

	_, err = parseFlags([]string{"-h"}, io.Discard)
	assert.ErrorIs(t, err, errHelp)
}

func TestRunHelpExitsCleanly(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, run(context.Background(), []string{"-h"}, out))
	assert.Contains(t, out.String(), "-presets")
}

func TestRunFailsOnBadPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`preset "a" {`), 0o600))
	err := run(context.Background(), []string{"-presets", path}, io.Discard)
	assert.Error(t, err)
}

func TestHandlerServesIndexAndAPI(t *testing.T) {
	cfg, err := config.NewConfig(config.Config{})
	require.NoError(t, err)
	var logs bytes.Buffer
	h, st, err := newHandler(cfg, slog.New(slog.NewTextHandler(&logs, nil)))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-preset="medium"`)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/new", bytes.NewBufferString(`{"preset":"hard"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, st.Len())
	assert.Contains(t, logs.String(), "path=/api/new")
	assert.Contains(t, logs.String(), "game created")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerAppliesCellLimit(t *testing.T) {
	cfg, err := config.NewConfig(config.Config{MaxCells: 100})
	require.NoError(t, err)
	h, st, err := newHandler(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/new", bytes.NewBufferString(`{"preset":"easy"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/new", bytes.NewBufferString(`{"preset":"hard"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 1, st.Len())
}

func TestRunStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx, []string{"-addr", "127.0.0.1:0"}, io.Discard) }()
	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}
