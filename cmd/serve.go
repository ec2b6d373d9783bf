package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/davidbz/unitecon/internal/config"
	apihttp "github.com/davidbz/unitecon/internal/http"
	"github.com/davidbz/unitecon/internal/loader"
	"github.com/davidbz/unitecon/internal/observability"
	"github.com/davidbz/unitecon/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the calculator HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return buildContainer().Invoke(func(
				server *apihttp.Server,
				l *loader.Loader,
				kv store.Backend,
				cfg *config.ServerConfig,
			) error {
				defer kv.Close()
				defer l.Close()

				return serve(ctx, server, l, time.Duration(cfg.ShutdownTimeout)*time.Second)
			})
		},
	}
}

func serve(ctx context.Context, server *apihttp.Server, l *loader.Loader, shutdownTimeout time.Duration) error {
	logger := observability.FromContext(ctx)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if _, err := l.Refresh(gctx); err != nil && !errors.Is(err, context.Canceled) {
			// The failure is committed to the snapshot; the API still serves it.
			logger.Warn("initial catalog refresh failed", observability.Error(err))
		}
		return nil
	})

	g.Go(server.Start)

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
