package app

import (
	"context"
	"fmt"
	"fxrates/internal/platform/db"
	httpserver "fxrates/internal/platform/http"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fxrates/internal/adapters"
	"fxrates/internal/adapters/cache"
	"fxrates/internal/adapters/httpclient"
	"fxrates/internal/adapters/jsonfile"
	"fxrates/internal/adapters/postgres"
	"fxrates/internal/api"
	"fxrates/internal/config"
	"fxrates/internal/loader"
	"fxrates/internal/metrics"
	"fxrates/internal/rate"
	"fxrates/internal/rate/handler"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Run wires the application components and serves HTTP until SIGINT/SIGTERM.
func Run() error {
	appCfg, err := initConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := openStore(ctx, appCfg.DbServer)
	if err != nil {
		return err
	}
	defer pool.Close()

	appMetrics := metrics.NewMetrics(prometheus.DefaultRegisterer)

	rateCache, closeCache, err := newCache(ctx, appCfg)
	if err != nil {
		logrus.WithError(err).Error("Failed to create cache")
		return err
	}
	defer closeCache()
	logrus.Infof("✅ %s cache ready", appCfg.Cache.Backend)

	// Repositories
	snapshotRepo := postgres.NewSnapshotRepository(pool)
	currencyRepo := postgres.NewCurrencyRepository(pool)

	// Services
	rateService := rate.NewService(snapshotRepo, currencyRepo, cache.NewInstrumented(rateCache, appMetrics), appCfg.Cache.TTL())

	// Handlers and router
	rateHandler := handler.NewRateHandler(rateService)
	router := api.NewRouter(rateHandler, appMetrics, prometheus.DefaultGatherer)

	logrus.Info("Starting http server")
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

// RunLoader imports the configured historical source once, then keeps re-importing
// on the configured interval until SIGINT/SIGTERM when the interval is positive.
func RunLoader() error {
	appCfg, err := initConfig()
	if err != nil {
		return err
	}
	if appCfg.Loader.Source == "" {
		return fmt.Errorf("loader source is required (LOADER_SOURCE)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := openStore(ctx, appCfg.DbServer)
	if err != nil {
		return err
	}
	defer pool.Close()

	names, err := jsonfile.ReadCurrencyNames(appCfg.Loader.NamesFile)
	if err != nil {
		logrus.WithError(err).Error("Failed to read currency names")
		return err
	}

	importer := loader.NewImporter(
		historicalSource(appCfg),
		postgres.NewSnapshotRepository(pool),
		postgres.NewCurrencyRepository(pool),
		names,
	)
	if _, err = importer.Import(ctx, uuid.NewString()); err != nil {
		logrus.WithError(err).Error("Initial import failed")
		return err
	}
	logrus.Info("✅ Initial import successful")

	if appCfg.Loader.Interval() <= 0 {
		return nil
	}

	scheduler := loader.NewScheduler(importer, appCfg.Loader.Interval())
	// Ensure scheduler stops before DB pool closes
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Infof("✅ Scheduler activation successful, re-importing every %s", appCfg.Loader.Interval())

	<-ctx.Done()
	return nil
}

func initConfig() (*config.AppConfig, error) {
	appCfg, err := config.Init()
	if err != nil {
		return nil, err
	}
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(appCfg.Logging.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")
	return appCfg, nil
}

// openStore connects to Postgres and applies pending migrations.
func openStore(ctx context.Context, cfg config.DbServer) (*pgxpool.Pool, error) {
	startupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	pool, err := db.CreatePoolAndPing(startupCtx, cfg)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return nil, err
	}
	logrus.Info("✅ Postgres connection successful")

	if err = db.Migrate(startupCtx, pool); err != nil {
		pool.Close()
		logrus.WithError(err).Error("Error applying migrations")
		return nil, err
	}
	logrus.Info("✅ Migrations applied")
	return pool, nil
}

// newCache builds the configured backend. An unreachable Redis is logged, not fatal:
// the service keeps answering from the store.
func newCache(ctx context.Context, appCfg *config.AppConfig) (adapters.Cache, func(), error) {
	if appCfg.Cache.Backend == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:         appCfg.Redis.Addr,
			Password:     appCfg.Redis.Password,
			DB:           appCfg.Redis.DB,
			DialTimeout:  appCfg.Redis.Timeout(),
			ReadTimeout:  appCfg.Redis.Timeout(),
			WriteTimeout: appCfg.Redis.Timeout(),
		})
		redisCache := cache.NewRedis(client, appCfg.Redis.Prefix)
		if pingErr := redisCache.Ping(ctx); pingErr != nil {
			logrus.WithError(pingErr).Warn("Redis is unreachable, requests will go to the store")
		}
		return redisCache, func() { _ = redisCache.Close() }, nil
	}

	memCache, err := cache.NewRistretto(appCfg.Cache.MaxItems)
	if err != nil {
		return nil, nil, err
	}
	return memCache, memCache.Close, nil
}

func historicalSource(appCfg *config.AppConfig) adapters.HistoricalSource {
	if appCfg.Loader.IsRemote() {
		timeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		return httpclient.NewHistoricalClient(&http.Client{Timeout: timeout}, appCfg.Loader.Source)
	}
	return jsonfile.NewHistoricalFile(appCfg.Loader.Source)
}
