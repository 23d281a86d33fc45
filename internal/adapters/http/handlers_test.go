package httpadapter

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/generator"
	"svw.info/minesweeper/internal/hint"
	"svw.info/minesweeper/internal/infrastructure/storage"
	"svw.info/minesweeper/internal/usecase"
	"svw.info/minesweeper/internal/validator"
)

func newServer(t *testing.T, p generator.Placer) *httptest.Server {
	t.Helper()
	uc := usecase.NewService(p, storage.NewMemory(), validator.New(), hint.NewSinglePoint(), nil)
	mux := http.NewServeMux()
	New(uc, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, body string, out any) int {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestPresets(t *testing.T) {
	srv := newServer(t, generator.NewAuto())
	var resp presetsResp
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/api/presets", "", &resp))
	assert.Equal(t, "easy", resp.Default)
	assert.Len(t, resp.Presets, 3)
}

func TestGameFlow(t *testing.T) {
	srv := newServer(t, generator.Fixed{{X: 0, Y: 0}})

	var created gameResp
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodPost, "/api/new", `{"width":2,"height":1,"mines":1}`, &created))
	require.NotNil(t, created.Game)
	id := created.Game.ID
	assert.Equal(t, domain.Playing, created.Game.Board.Status)

	var moved gameResp
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodPost, "/api/reveal", `{"id":"`+id+`","x":1,"y":0}`, &moved))
	assert.True(t, moved.Game.Changed)
	assert.Equal(t, 1, moved.Game.Board.Cells[0][1].Adjacent)

	var hr hintResp
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodPost, "/api/hint", `{"id":"`+id+`"}`, &hr))
	require.True(t, hr.Found)
	assert.Equal(t, domain.HintMine, hr.Hint.Kind)

	require.Equal(t, http.StatusOK, call(t, srv, http.MethodPost, "/api/flag", `{"id":"`+id+`","x":0,"y":0}`, &moved))
	assert.Equal(t, domain.Won, moved.Game.Board.Status)

	var got map[string]any
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/api/game?id="+id, "", &got))
	game := got["game"].(map[string]any)
	assert.Equal(t, "won", game["board"].(map[string]any)["status"])

	var ab abandonResp
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodPost, "/api/abandon", `{"id":"`+id+`"}`, &ab))
	assert.True(t, ab.OK)
	assert.Equal(t, http.StatusNotFound, call(t, srv, http.MethodGet, "/api/game?id="+id, "", nil))
}

func TestErrorMapping(t *testing.T) {
	srv := newServer(t, generator.NewAuto())

	var resp gameResp
	assert.Equal(t, http.StatusBadRequest, call(t, srv, http.MethodPost, "/api/new", `{"width":2,"height":2,"mines":4}`, &resp))
	assert.Contains(t, resp.Error, "invalid board configuration")

	assert.Equal(t, http.StatusBadRequest, call(t, srv, http.MethodPost, "/api/new", `{"preset":`, nil))
	assert.Equal(t, http.StatusMethodNotAllowed, call(t, srv, http.MethodGet, "/api/new", "", nil))
	assert.Equal(t, http.StatusNotFound, call(t, srv, http.MethodPost, "/api/reveal", `{"id":"nope","x":0,"y":0}`, nil))
	assert.Equal(t, http.StatusBadRequest, call(t, srv, http.MethodPost, "/api/reveal", `{"id":"nope","x":0}`, nil))

	var created gameResp
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodPost, "/api/new", `{"preset":"easy","seed":3}`, &created))
	assert.Equal(t, http.StatusBadRequest, call(t, srv, http.MethodPost, "/api/flag", `{"id":"`+created.Game.ID+`","x":99,"y":0}`, nil))
	assert.Equal(t, http.StatusBadRequest, call(t, srv, http.MethodGet, "/api/game", "", nil))
}

func TestNewWithEmptyBodyUsesDefaultPreset(t *testing.T) {
	srv := newServer(t, generator.NewAuto())
	var resp gameResp
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodPost, "/api/new", "", &resp))
	assert.Equal(t, "easy", resp.Game.Preset)
	assert.Equal(t, 9, resp.Game.Board.Width)
}

func TestNewRejectsOversizedBoards(t *testing.T) {
	srv := newServer(t, generator.NewAuto())
	for _, body := range []string{
		`{"width":4611686018427387905,"height":4,"mines":0}`,
		`{"width":100000,"height":100000,"mines":0}`,
	} {
		var resp gameResp
		assert.Equal(t, http.StatusBadRequest, call(t, srv, http.MethodPost, "/api/new", body, &resp), body)
		assert.Contains(t, resp.Error, "invalid board configuration")
	}
}

func TestRequestBodyIsLimited(t *testing.T) {
	srv := newServer(t, generator.NewAuto())
	body := `{"preset":"` + strings.Repeat("a", 2*maxBodyBytes) + `"}`
	var resp gameResp
	assert.Equal(t, http.StatusBadRequest, call(t, srv, http.MethodPost, "/api/new", body, &resp))
	assert.Contains(t, resp.Error, "invalid JSON")
}

func TestPresetsWithoutConfiguration(t *testing.T) {
	mux := http.NewServeMux()
	New(&usecase.Service{}, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	var resp presetsResp
	assert.Equal(t, http.StatusInternalServerError, call(t, srv, http.MethodGet, "/api/presets", "", &resp))
	assert.NotEmpty(t, resp.Error)
}
