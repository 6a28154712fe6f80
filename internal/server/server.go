// Package server exposes board generation and measurement over HTTP.
//
// Routes:
//
//	GET  /healthz          liveness check
//	GET  /version          build information
//	GET  /styles           generator styles
//	GET  /boards/{seed}    generate the board for seed
//	POST /boards           generate from a JSON request
//	POST /measure          measure a board supplied as JSON
//
// Every generating route accepts format=json|svg|png. All requests share one
// style selector, so in bag mode consecutive boards cycle through every
// style before any repeats, whichever client asked for them.
package server

import (
	"context"
	"math/rand/v2"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/config"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/layout"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/pipeline"
)

// MaxBodyBytes caps request bodies. Boards with thousands of objects stay
// well below it.
const MaxBodyBytes = 4 << 20

// Server serves the HTTP API.
type Server struct {
	cfg    config.Config
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a server around runner. When the runner has no selector, one
// is created in the configured mode and shared by all requests.
func New(cfg config.Config, runner *pipeline.Runner, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.Default()
	}
	if runner.Selector == nil {
		rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		sel, err := layout.NewSelectorMode(rng, cfg.Selector.Mode)
		if err != nil {
			return nil, err
		}
		runner.Selector = sel
	}
	if runner.MeasureTTL == 0 {
		runner.MeasureTTL = cfg.Cache.TTL
	}

	s := &Server{
		cfg:    cfg,
		runner: runner,
		logger: logger,
	}
	s.router = chi.NewRouter()
	SetupRouter(s.router, s)
	return s, nil
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on the configured address until ctx is cancelled,
// then drains in-flight requests for up to the shutdown timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", ln.Addr().String())
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	timeout := s.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != http.ErrServerClosed {
		return err
	}
	return nil
}

// baseOptions returns pipeline options carrying the configured sampler and
// constraints.
func (s *Server) baseOptions() pipeline.Options {
	c := s.cfg.Constraints
	return pipeline.Options{
		Resolution:  s.cfg.Sampler.Resolution,
		Constraints: &c,
		Workers:     s.cfg.Sampler.Workers,
		Logger:      s.logger,
	}
}
