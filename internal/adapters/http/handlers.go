package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"svw.info/minesweeper/internal/ctxlog"
	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/usecase"
)

type Handler struct {
	UC     *usecase.Service
	Logger *slog.Logger
}

func New(uc *usecase.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{UC: uc, Logger: logger}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/presets", h.handlePresets)
	mux.HandleFunc("/api/new", h.handleNew)
	mux.HandleFunc("/api/reveal", h.handleReveal)
	mux.HandleFunc("/api/flag", h.handleFlag)
	mux.HandleFunc("/api/game", h.handleGame)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/abandon", h.handleAbandon)
}

func (h *Handler) ctx(r *http.Request) context.Context {
	return ctxlog.WithLogger(r.Context(), h.Logger.With("path", r.URL.Path))
}

func allow(w http.ResponseWriter, r *http.Request, method string) bool {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != method {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return false
	}
	return true
}

const maxBodyBytes = 1 << 12

// decode reads a JSON body; an empty body leaves v untouched.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidConfiguration), errors.Is(err, domain.ErrOutOfBounds):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(v)
}

// ---- Presets ----

type presetsResp struct {
	Presets []domain.Preset `json:"presets,omitempty"`
	Default string          `json:"default,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func (h *Handler) handlePresets(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	list, def, err := h.UC.ListPresets(r.Context())
	if err != nil {
		writeJSON(w, statusFor(err), presetsResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, presetsResp{Presets: list, Default: def})
}

// ---- New game ----

type newReq struct {
	Preset string `json:"preset,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Mines  int    `json:"mines,omitempty"`
	Seed   int64  `json:"seed,omitempty"`
}

type gameResp struct {
	Game  *usecase.Snapshot `json:"game,omitempty"`
	Error string            `json:"error,omitempty"`
}

func (h *Handler) handleNew(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req newReq
	if err := decode(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, gameResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	snap, err := h.UC.NewGame(h.ctx(r), usecase.NewGameRequest{
		Preset: req.Preset,
		Width:  req.Width,
		Height: req.Height,
		Mines:  req.Mines,
		Seed:   req.Seed,
	})
	if err != nil {
		writeJSON(w, statusFor(err), gameResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, gameResp{Game: &snap})
}

// ---- Reveal / Flag ----

type moveReq struct {
	ID string `json:"id"`
	X  *int   `json:"x"`
	Y  *int   `json:"y"`
}

func (h *Handler) handleReveal(w http.ResponseWriter, r *http.Request) {
	h.handleMove(w, r, h.UC.Reveal)
}

func (h *Handler) handleFlag(w http.ResponseWriter, r *http.Request) {
	h.handleMove(w, r, h.UC.ToggleFlag)
}

func (h *Handler) handleMove(w http.ResponseWriter, r *http.Request,
	act func(context.Context, string, domain.Coordinate) (usecase.Snapshot, error)) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req moveReq
	if err := decode(w, r, &req); err != nil || req.ID == "" || req.X == nil || req.Y == nil {
		writeJSON(w, http.StatusBadRequest, gameResp{Error: "invalid JSON or missing id/x/y"})
		return
	}
	snap, err := act(h.ctx(r), req.ID, domain.Coordinate{X: *req.X, Y: *req.Y})
	if err != nil {
		writeJSON(w, statusFor(err), gameResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, gameResp{Game: &snap})
}

// ---- Game ----

func (h *Handler) handleGame(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	id := r.URL.Query().Get("id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, gameResp{Error: "missing id"})
		return
	}
	snap, err := h.UC.Get(h.ctx(r), id)
	if err != nil {
		writeJSON(w, statusFor(err), gameResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, gameResp{Game: &snap})
}

// ---- Hint ----

type idReq struct {
	ID string `json:"id"`
}

type hintResp struct {
	Found bool         `json:"found"`
	Hint  *domain.Hint `json:"hint,omitempty"`
	Error string       `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req idReq
	if err := decode(w, r, &req); err != nil || req.ID == "" {
		writeJSON(w, http.StatusBadRequest, hintResp{Error: "invalid JSON or missing id"})
		return
	}
	hh, ok, err := h.UC.Hint(h.ctx(r), req.ID)
	if err != nil {
		writeJSON(w, statusFor(err), hintResp{Error: err.Error()})
		return
	}
	resp := hintResp{Found: ok}
	if ok {
		resp.Hint = &hh
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---- Abandon ----

type abandonResp struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleAbandon(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req idReq
	if err := decode(w, r, &req); err != nil || req.ID == "" {
		writeJSON(w, http.StatusBadRequest, abandonResp{Error: "invalid JSON or missing id"})
		return
	}
	if err := h.UC.Abandon(h.ctx(r), req.ID); err != nil {
		writeJSON(w, statusFor(err), abandonResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, abandonResp{OK: true})
}
