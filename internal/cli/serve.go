package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dlfelps/bmi-calculator/internal/config"
	"github.com/dlfelps/bmi-calculator/internal/handlers"
)

func newServeCommand() *cobra.Command {
	v := config.New()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the BMI calculator web form",
		Example: `
bmi serve
bmi serve --port 9000
BMI_SERVER_PORT=9000 bmi serve
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}

	cmd.Flags().String("host", "", "Interface to listen on")
	cmd.Flags().Int("port", 8000, "Port to listen on")
	cmd.Flags().String("config", "", "Path to a config file (default: .bmi.yaml in ./ or $HOME)")
	_ = v.BindPFlag("server.host", cmd.Flags().Lookup("host"))
	_ = v.BindPFlag("server.port", cmd.Flags().Lookup("port"))
	_ = v.BindPFlag("config", cmd.Flags().Lookup("config"))

	return cmd
}

// serve runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully within the configured timeout.
func serve(ctx context.Context, cfg *config.Config) error {
	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: handlers.NewRouter(cfg.Form),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("BMI calculator starting on http://localhost:%d", cfg.Server.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
