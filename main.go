package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vainnor/spacex-dash/api"
	"github.com/vainnor/spacex-dash/collector"
	"github.com/vainnor/spacex-dash/config"
	"github.com/vainnor/spacex-dash/models"
	"github.com/vainnor/spacex-dash/report"
	"github.com/vainnor/spacex-dash/types"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "spacex-dash",
		Short:        "SpaceX launch records dashboard",
		SilenceUsage: true,
		RunE:         runServe,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Load the launch records and serve the dashboard",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	})
	rootCmd.AddCommand(newReportCmd())

	return rootCmd
}

func newReportCmd() *cobra.Command {
	var (
		site string
		low  float64
		high float64
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the launch outcome and payload tables for a view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ds, err := loadDataset(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			view := types.NewViewState(site, low, high)
			return report.Write(cmd.OutOrStdout(), ds.Records(), view)
		},
	}
	cmd.Flags().StringVar(&site, "site", models.AllSites, "launch site, or ALL")
	cmd.Flags().Float64Var(&low, "min", 0, "lowest payload mass (kg)")
	cmd.Flags().Float64Var(&high, "max", 10000, "highest payload mass (kg)")
	return cmd
}

func loadDataset(ctx context.Context, cfg config.Config) (*collector.Dataset, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()

	c := collector.NewCollector(
		collector.WithHTTPClient(&http.Client{Timeout: cfg.FetchTimeout}),
		collector.WithTable(cfg.DBTable),
	)
	return c.Load(ctx, cfg.DataSource)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	layout, err := config.LoadLayout(cfg.LayoutFile)
	if err != nil {
		return err
	}

	ds, err := loadDataset(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	limiter := api.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: api.NewRouter(ds, layout, limiter),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting dashboard server on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Printf("Failed to start server: %v", err)
		}
		return err
	case <-ctx.Done():
	}

	log.Printf("Shutting down dashboard server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
