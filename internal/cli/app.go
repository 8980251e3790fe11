package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"mindguard/internal/config"
	"mindguard/internal/handlers"
	"mindguard/internal/interventions"
	"mindguard/internal/storage"
	"mindguard/internal/usecases"
)

// app holds the stores and services shared by every command.
type app struct {
	cfg      *config.Config
	services handlers.Services
	pool     *pgxpool.Pool
}

func newApp(ctx context.Context, cfgFile string) (*app, error) {
	op := "internal/cli/app.go newApp"

	var files []string
	if cfgFile != "" {
		files = append(files, cfgFile)
	}
	cfg, err := config.New(files...)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}

	var checkins storage.CheckInRepository
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		if err := storage.Migrate(cfg.PostgresDSN); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("%s: unable to connect to db: %w", op, err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: unable to ping db: %w", op, err)
		}
		log.Println("connected to db successfully")

		a.pool = pool
		checkins = storage.NewPostgresCheckInStore(pool)
	default:
		checkins = storage.NewCheckInFileStore(cfg.DataDir, cfg.BackupKeep)
	}

	ivs := storage.NewInterventionStore(cfg.DataDir)
	snapshots := storage.NewModelStore(cfg.DataDir)

	a.services = handlers.Services{
		CheckIns:      usecases.NewCheckInService(checkins),
		Analysis:      usecases.NewAnalysisService(checkins, ivs),
		Forecast:      usecases.NewForecastService(checkins, snapshots, cfg.MinForecastDays),
		Interventions: usecases.NewInterventionService(checkins, ivs, interventions.NewEngine()),
		Privacy:       usecases.NewPrivacyService(checkins, ivs, snapshots),
	}
	return a, nil
}

func (a *app) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

// user falls back to the configured default user.
func (a *app) user(flag string) string {
	if flag != "" {
		return flag
	}
	return a.cfg.DefaultUser
}
