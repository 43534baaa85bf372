package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/doorap-lab/doorap/pkg/cli/config"
	httpctrl "github.com/doorap-lab/doorap/pkg/controller/http"
	"github.com/doorap-lab/doorap/pkg/service/checklist"
	"github.com/doorap-lab/doorap/pkg/service/worker"
	"github.com/doorap-lab/doorap/pkg/usecase"
	"github.com/doorap-lab/doorap/pkg/utils/logging"
	"github.com/doorap-lab/doorap/pkg/utils/safe"
)

func cmdServe() *cli.Command {
	var addr string
	var enableMetrics bool
	var repoCfg config.Repository
	var geminiCfg config.Gemini
	var engineCfg config.Engine

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("DOORAP_ADDR"),
			Destination: &addr,
		},
		&cli.BoolFlag{
			Name:        "metrics",
			Usage:       "Expose Prometheus metrics on /metrics",
			Value:       true,
			Sources:     cli.EnvVars("DOORAP_METRICS"),
			Destination: &enableMetrics,
		},
	}
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, engineCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := engineCfg.Load(); err != nil {
				return err
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			ucOpts := engineCfg.UseCaseOptions()

			llmClient, err := geminiCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure Gemini client")
			}
			if llmClient != nil {
				gen := checklist.New(llmClient, checklist.WithMaxSteps(engineCfg.ChecklistMaxSteps))
				ucOpts = append(ucOpts, usecase.WithChecklistGenerator(gen))
				logging.Default().Info("Emergency checklist generation enabled",
					"gemini", slog.GroupValue(geminiCfg.LogAttrs()...))
			} else {
				logging.Default().Info("Gemini not configured, emergency checklists will not be generated")
			}

			uc := usecase.New(repo, ucOpts...)

			refreshWorker := worker.NewNotificationRefreshWorker(uc, engineCfg.RefreshInterval())
			refreshWorker.Start(ctx)

			handler := httpctrl.New(uc, httpctrl.WithMetrics(enableMetrics))
			server := &http.Server{
				Addr:              addr,
				Handler:           handler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr, "metrics", enableMetrics)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				refreshWorker.Stop()
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				refreshWorker.Stop()

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
