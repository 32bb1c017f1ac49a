package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/namefreezers/weather-console/internal/config"
	"github.com/namefreezers/weather-console/internal/repository"
	"github.com/namefreezers/weather-console/internal/services"
	"github.com/namefreezers/weather-console/internal/weather"
	"github.com/namefreezers/weather-console/internal/weather/types"
)

func main() {
	// 1) Load config (includes WATCH_CITIES / WATCH_SCHEDULE)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	// 2) Init logger
	logger, err := config.NewLogger(cfg.LogLevel, "info")
	if err != nil {
		log.Fatalf("cannot initialize logger: %v", err)
	}
	defer logger.Sync()

	if len(cfg.WatchCities) == 0 {
		logger.Fatal("WATCH_CITIES is required for the scheduler")
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal("scheduler stopped", zap.Error(err))
	}
}

// run owns the database handle so it is closed on every return path.
func run(cfg *config.Config, logger *zap.Logger) error {
	// 3) Open DB
	db, err := repository.OpenDB(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	// 4) Wire up repository, weather fetcher and lookup service
	weatherFetcher, err := weather.BuildFetcher(cfg, logger)
	if err != nil {
		return fmt.Errorf("initialize weather fetcher: %w", err)
	}
	lookupSvc := services.NewLookupService(weatherFetcher, repository.NewLookupRepository(db, logger), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5) Build cron (standard 5-field, minute resolution)
	c := cron.New()
	if _, err := c.AddFunc(cfg.WatchSchedule, func() {
		checkWatchList(ctx, lookupSvc, cfg.WatchCities, logger)
	}); err != nil {
		return fmt.Errorf("schedule %q: %w", cfg.WatchSchedule, err)
	}

	logger.Info("starting scheduler",
		zap.String("cronSpec", cfg.WatchSchedule),
		zap.Strings("cities", cfg.WatchCities),
	)
	c.Start()

	<-ctx.Done()
	logger.Info("shutting down scheduler")
	<-c.Stop().Done()
	return nil
}

// checkWatchList looks up every watched city once, one after another,
// and logs a summary line per city. It returns how many lookups succeeded.
func checkWatchList(ctx context.Context, svc services.LookupService, cities []string, logger *zap.Logger) int {
	ok := 0
	for _, city := range cities {
		if ctx.Err() != nil {
			return ok
		}

		rec, err := svc.Lookup(ctx, city)
		if err != nil {
			logger.Error("watched city lookup failed",
				zap.String("city", city),
				zap.Stringer("outcome", types.KindOf(err)),
				zap.Error(err))
			continue
		}

		s, err := rec.Summarize()
		if err != nil {
			logger.Warn("watched city response incomplete",
				zap.String("city", city), zap.Error(err))
			continue
		}

		ok++
		logger.Info("current weather",
			zap.String("city", s.City),
			zap.String("country", s.Country),
			zap.String("temp", s.Temp.String()),
			zap.String("feels_like", s.FeelsLike.String()),
			zap.String("humidity", s.Humidity.String()),
			zap.String("pressure", s.Pressure.String()),
			zap.String("description", s.Description),
			zap.String("wind_speed", s.WindSpeed.String()),
		)
	}
	return ok
}
