// api/cmd/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/user-account-service/internal/bootstrap"
	"github.com/baechuer/user-account-service/internal/logger"
)

// How long in-flight requests get to finish once shutdown starts.
const shutdownGrace = 15 * time.Second

// httpServer is the slice of *http.Server that Run needs. Keeping it
// an interface lets the tests drive Run with a fake.
type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
	Close() error
	Addr() string
}

type realServer struct{ *http.Server }

func (r realServer) Addr() string { return r.Server.Addr }

// serverBuilder produces the server plus a cleanup for whatever the
// bootstrap opened (DB pool etc).
type serverBuilder func() (httpServer, func(), error)

// Run owns the process lifecycle: serve until a signal or a crash,
// then drain. The exit code is returned rather than os.Exit'ed so
// tests can assert on it.
func Run(build serverBuilder, sigCh <-chan os.Signal, lg zerolog.Logger) int {
	srv, cleanup, err := build()
	if err != nil {
		lg.Error().Err(err).Msg("bootstrap failed")
		return 1
	}
	defer cleanup()

	errCh := make(chan error, 1)
	go func() {
		lg.Info().Str("addr", srv.Addr()).Msg("user-account-service listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case sig := <-sigCh:
		lg.Info().Str("signal", sig.String()).Msg("draining on shutdown signal")

	case err := <-errCh:
		// No drain on a crash; exit non-zero and let the orchestrator
		// restart us.
		lg.Error().Err(err).Msg("http server failed")
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		lg.Error().Err(err).Msg("drain timed out, forcing close")
		_ = srv.Close()
	}

	lg.Info().Msg("stopped")
	return 0
}

func buildFromBootstrap() (httpServer, func(), error) {
	srv, cleanup, err := bootstrap.NewServer()
	if err != nil {
		return nil, nil, err
	}
	return realServer{srv}, cleanup, nil
}

func main() {
	logger.Init()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	os.Exit(Run(buildFromBootstrap, sigCh, zlog.Logger))
}
