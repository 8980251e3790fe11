package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"mindguard/internal/handlers"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(opts *rootOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx, opts.configFile)
			if err != nil {
				return err
			}
			defer a.Close()

			if port != 0 {
				a.cfg.Port = port
			}
			log.Printf("config: backend=%s data_dir=%s backup_keep=%d retention_days=%d min_forecast_days=%d",
				a.cfg.StorageBackend, a.cfg.DataDir, a.cfg.BackupKeep, a.cfg.RetentionDays, a.cfg.MinForecastDays)

			if a.cfg.RetentionDays > 0 {
				n, err := a.services.Privacy.Prune(ctx, a.cfg.DefaultUser, a.cfg.RetentionDays)
				if err != nil {
					return err
				}
				log.Printf("retention: pruned %d entries older than %d days", n, a.cfg.RetentionDays)
			}

			srv := &http.Server{
				Addr:              a.cfg.Addr(),
				Handler:           handlers.NewRouter(a.services, a.cfg.DefaultUser),
				ReadHeaderTimeout: 10 * time.Second,
			}
			return serve(ctx, srv)
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "listen port (overrides PORT)")
	return cmd
}

// serve runs srv until ctx is cancelled, then drains open requests.
func serve(ctx context.Context, srv *http.Server) error {
	errc := make(chan error, 1)
	go func() {
		log.Printf("mindguard listening on %s", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("internal/cli/serve.go serve: %w", err)
	case <-ctx.Done():
	}

	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("internal/cli/serve.go serve: shutdown: %w", err)
	}
	return nil
}
