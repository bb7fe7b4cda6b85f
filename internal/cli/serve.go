package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/linealabs/code39/pkg/cache"
	apperrors "github.com/linealabs/code39/pkg/errors"
	"github.com/linealabs/code39/pkg/pipeline"
	"github.com/linealabs/code39/pkg/render"
)

const (
	defaultAddr = ":8340"

	// artifactTTL bounds how long rendered barcodes stay cached.
	artifactTTL = 24 * time.Hour

	shutdownTimeout = 5 * time.Second
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr    string // listen address
	noCache bool   // disable the artifact cache
}

// serveCommand creates the serve command running the HTTP surface.
// The server is a thin wrapper: it parses query parameters into a
// render configuration and delegates everything else to the pipeline.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve Code 39 barcodes over HTTP",
		Long: `Serve runs a small HTTP server exposing the generator:

  GET /barcode?text=CODE39&format=svg   render a barcode (text|svg)
  GET /chars                            list the supported repertoire

Geometry is controlled with module-width, bar-height, and quiet-zone
query parameters. Rendered artifacts are cached on disk; use --no-cache
to render every request fresh.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", defaultAddr, "listen address")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// runServe starts the HTTP server and blocks until ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	artifacts, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer artifacts.Close()

	srv := &http.Server{
		Addr:    opts.addr,
		Handler: newRouter(c, artifacts),
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Infof("Listening on %s", opts.addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		c.Logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	case err := <-errCh:
		return err
	}
}

// newRouter builds the chi router with request-ID logging middleware.
func newRouter(c *CLI, artifacts cache.Cache) http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger(c))

	r.Get("/barcode", barcodeHandler(artifacts))
	r.Get("/chars", charsHandler)

	return r
}

// requestLogger tags every request with a UUID and attaches a scoped
// logger to the request context.
func requestLogger(c *CLI) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			id := uuid.NewString()
			logger := c.Logger.With("request_id", id, "path", req.URL.Path)
			logger.Debug("Request received")

			w.Header().Set("X-Request-ID", id)
			next.ServeHTTP(w, req.WithContext(withLogger(req.Context(), logger)))
		})
	}
}

// barcodeHandler renders a barcode from query parameters.
// Validation and configuration errors map to 400; the structured
// message is returned verbatim so clients see the offending character.
func barcodeHandler(artifacts cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		logger := loggerFromContext(req.Context())

		cfg, err := configFromQuery(req)
		if err != nil {
			httpError(w, err)
			return
		}
		text := req.URL.Query().Get("text")

		key := cache.ArtifactKey(text, cfg)
		if data, hit, err := artifacts.Get(req.Context(), key); err == nil && hit {
			logger.Debug("Cache hit")
			writeBarcode(w, cfg.Format, data)
			return
		}

		out, err := pipeline.Generate(text, cfg)
		if err != nil {
			httpError(w, err)
			return
		}

		if err := artifacts.Set(req.Context(), key, []byte(out), artifactTTL); err != nil {
			logger.Warnf("Caching artifact: %v", err)
		}
		writeBarcode(w, cfg.Format, []byte(out))
	}
}

// charsHandler returns the supported repertoire as JSON.
func charsHandler(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string][]string{
		"characters": pipeline.SupportedCharacters(),
	})
}

// configFromQuery parses render settings from the request query.
// Absent parameters fall back to the documented defaults.
func configFromQuery(req *http.Request) (render.Config, error) {
	q := req.URL.Query()
	cfg := render.DefaultConfig()

	if format := q.Get("format"); format != "" {
		if err := render.ValidateFormat(format); err != nil {
			return cfg, err
		}
		cfg.Format = format
	}

	for _, p := range []struct {
		name string
		dst  *int
	}{
		{"module-width", &cfg.ModuleWidth},
		{"bar-height", &cfg.BarHeight},
		{"quiet-zone", &cfg.QuietZone},
	} {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, apperrors.New(apperrors.ErrCodeInvalidConfig, "invalid %s: %q", p.name, raw)
		}
		*p.dst = v
	}

	cfg.ApplyDefaults()
	return cfg, cfg.Validate()
}

// writeBarcode writes a rendered artifact with the right content type.
func writeBarcode(w http.ResponseWriter, format string, data []byte) {
	switch format {
	case render.FormatSVG:
		w.Header().Set("Content-Type", "image/svg+xml")
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}
	_, _ = w.Write(data)
}

// httpError maps structured errors to HTTP responses. Both data and
// configuration errors are the client's fault here; anything else is
// reported as a 500 carrying an INTERNAL_ERROR code.
func httpError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeInvalidCharacter, apperrors.ErrCodeInvalidConfig, apperrors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case apperrors.ErrCodeInternal:
	default:
		err = apperrors.Wrap(apperrors.ErrCodeInternal, err, "handling request")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": apperrors.UserMessage(err),
		"code":  string(apperrors.GetCode(err)),
	})
}
