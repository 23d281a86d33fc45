package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "svw.info/minesweeper/internal/adapters/http"
	"svw.info/minesweeper/internal/config"
	"svw.info/minesweeper/internal/generator"
	"svw.info/minesweeper/internal/hint"
	"svw.info/minesweeper/internal/infrastructure/storage"
	"svw.info/minesweeper/internal/usecase"
	"svw.info/minesweeper/internal/validator"
	"svw.info/minesweeper/web"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration in a human-readable format.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// errHelp signals that usage was printed and the process should exit cleanly.
var errHelp = errors.New("help requested")

func parseFlags(args []string, out io.Writer) (*config.Config, error) {
	fs := flag.NewFlagSet("minesweeper-web", flag.ContinueOnError)
	fs.SetOutput(out)
	addr := fs.String("addr", ":8080", "listen address")
	presets := fs.String("presets", "", "presets file (.hcl, .yaml or .yml); built-in easy/medium/hard when empty")
	level := fs.String("log-level", "info", "debug|info|warn|error")
	format := fs.String("log-format", "text", "text|json")
	idle := fs.Duration("session-idle", time.Hour, "drop games untouched for this long")
	sweep := fs.Duration("sweep-interval", time.Minute, "how often idle games are dropped")
	maxCells := fs.Int("max-cells", config.DefaultMaxCells, "largest width*height a new game may have")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, errHelp
		}
		return nil, err
	}
	return config.NewConfig(config.Config{
		Addr:          *addr,
		PresetsPath:   *presets,
		LogLevel:      *level,
		LogFormat:     *format,
		SessionIdle:   *idle,
		SweepInterval: *sweep,
		MaxCells:      *maxCells,
	})
}

// newHandler wires providers → use cases → HTTP adapter.
func newHandler(cfg *config.Config, logger *slog.Logger) (http.Handler, *storage.Memory, error) {
	presets, err := config.LoadPresets(cfg.PresetsPath)
	if err != nil {
		return nil, nil, err
	}
	st := storage.NewMemory()
	uc := usecase.NewService(generator.NewAuto(), st, validator.New(), hint.NewSinglePoint(), presets)
	uc.MaxCells = cfg.MaxCells
	h := httpadapter.New(uc, logger)

	mux := http.NewServeMux()
	mux.Handle("/static/", web.Static("/static/"))
	mux.Handle("/", web.Index(presets.List))
	h.Register(mux)
	return requestLogger(logger, mux), st, nil
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cfg, err := parseFlags(args, out)
	if errors.Is(err, errHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	logger := cfg.NewLogger(out)
	slog.SetDefault(logger)

	handler, st, err := newHandler(cfg, logger)
	if err != nil {
		return err
	}
	go st.Janitor(ctx, cfg.SweepInterval, cfg.SessionIdle, func(n int) {
		logger.Info("idle games dropped", "count", n, "remaining", st.Len())
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Addr, "presets", cfg.PresetsPath)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			return err
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
