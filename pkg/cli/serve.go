package cli

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/privacy-lab/tikun13/pkg/cli/config"
	httpctrl "github.com/privacy-lab/tikun13/pkg/controller/http"
	"github.com/privacy-lab/tikun13/pkg/service/worker"
	"github.com/privacy-lab/tikun13/pkg/usecase"
	"github.com/privacy-lab/tikun13/pkg/utils/logging"
	"github.com/privacy-lab/tikun13/pkg/webscan"
)

func cmdServe() *cli.Command {
	var addr string
	var sentryDSN string
	var scanTimeout time.Duration
	var scanProxy string
	var retention time.Duration
	var catalogCfg config.Catalog
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("TIKUN13_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN for error tracking",
			Sources:     cli.EnvVars("TIKUN13_SENTRY_DSN"),
			Destination: &sentryDSN,
		},
		&cli.DurationFlag{
			Name:        "scan-timeout",
			Usage:       "Timeout for a single website scan request",
			Value:       15 * time.Second,
			Sources:     cli.EnvVars("TIKUN13_SCAN_TIMEOUT"),
			Destination: &scanTimeout,
		},
		&cli.StringFlag{
			Name:        "scan-proxy",
			Usage:       "HTTP proxy URL used for website scans",
			Sources:     cli.EnvVars("TIKUN13_SCAN_PROXY"),
			Destination: &scanProxy,
		},
		&cli.DurationFlag{
			Name:        "retention",
			Usage:       "Delete stored assessments and scans older than this age (0 disables pruning)",
			Sources:     cli.EnvVars("TIKUN13_RETENTION"),
			Destination: &retention,
		},
	}

	// Add shared config flags
	flags = append(flags, catalogCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			cat, err := catalogCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load catalog")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			fetcherOpts := []webscan.FetcherOption{
				webscan.WithTimeout(scanTimeout),
			}
			if scanProxy != "" {
				if _, err := url.Parse(scanProxy); err != nil {
					return goerr.Wrap(err, "invalid scan proxy URL", goerr.V("proxy", scanProxy))
				}
				fetcherOpts = append(fetcherOpts, webscan.WithProxy(scanProxy))
				logging.Default().Info("Website scans routed through proxy", "proxy", scanProxy)
			}

			uc := usecase.New(repo, cat,
				usecase.WithFetcher(webscan.NewFetcher(fetcherOpts...)),
			)

			var retentionWorker *worker.RetentionWorker
			if retention > 0 {
				retentionWorker = worker.NewRetentionWorker(repo, retention, time.Hour)
				if err := retentionWorker.Start(ctx); err != nil {
					return goerr.Wrap(err, "failed to start retention worker")
				}
			}

			var handler http.Handler = httpctrl.New(uc)
			if sentryDSN != "" {
				if err := sentry.Init(sentry.ClientOptions{
					Dsn:     sentryDSN,
					Release: c.Root().Version,
				}); err != nil {
					return goerr.Wrap(err, "failed to initialize sentry")
				}
				defer sentry.Flush(2 * time.Second)

				handler = sentryhttp.New(sentryhttp.Options{
					Repanic: true,
				}).Handle(handler)
				logging.Default().Info("Sentry error tracking enabled")
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           handler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				if retentionWorker != nil {
					retentionWorker.Stop()
				}

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
