package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fxswap/internal/adapters"
	"fxswap/internal/adapters/cache"
	"fxswap/internal/adapters/httpclient"
	"fxswap/internal/adapters/postgres"
	"fxswap/internal/api"
	"fxswap/internal/config"
	"fxswap/internal/conversion"
	"fxswap/internal/feed"
	"fxswap/internal/platform/db"
	httpserver "fxswap/internal/platform/http"
	"fxswap/internal/session"
	"fxswap/internal/session/handler"

	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and session janitor
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(appCfg.Logging.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect, migrations, redis ping)
	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	source, closeSource, err := newFeedSource(startupCtx, appCfg)
	if err != nil {
		return err
	}
	defer closeSource()

	feedCache, closeCache, err := newFeedCache(startupCtx, appCfg.Cache)
	if err != nil {
		return err
	}
	defer closeCache()

	// Services
	loader := feed.NewLoader(source, feedCache, appCfg.Cache.TTL())
	sessionService := session.NewService(loader, conversion.Options{
		FractionDigits: appCfg.Conversion.FractionDigits,
		DefaultAmount:  appCfg.Conversion.DefaultAmount,
	}, appCfg.Feed.LoadTimeout())
	// In-flight feed loads finish before the cache and source are closed
	defer sessionService.Wait()

	janitor := session.NewJanitor(sessionService, appCfg.Sessions.IdleTTL(), appCfg.Sessions.SweepInterval())
	defer func() {
		if shutDownErr := janitor.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Janitor shutdown error: %v", shutDownErr)
		}
	}()
	if startErr := janitor.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start session janitor")
		return startErr
	}
	logrus.Info("✅ Session janitor activation successful")

	// Handlers and router
	sessionHandler := handler.NewSessionHandler(sessionService)
	router := api.NewRouter(sessionHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

func newFeedSource(ctx context.Context, cfg *config.AppConfig) (adapters.FeedSource, func(), error) {
	switch cfg.Feed.Source {
	case config.FeedSourcePostgres:
		pool, err := db.CreatePoolAndPing(ctx, cfg.DbServer)
		if err != nil {
			logrus.WithError(err).Error("Error connecting to db")
			return nil, nil, err
		}
		logrus.Info("✅ Postgres connection successful")

		if err = db.Migrate(ctx, pool); err != nil {
			pool.Close()
			logrus.WithError(err).Error("Error applying migrations")
			return nil, nil, err
		}
		logrus.Info("✅ Migrations applied")
		return postgres.NewObservationRepository(pool), pool.Close, nil

	case config.FeedSourceHTTP:
		httpTimeout := time.Duration(cfg.HTTPClient.TimeoutSeconds) * time.Second
		if httpTimeout <= 0 {
			httpTimeout = 10 * time.Second
		}
		client := httpclient.NewPriceFeedClient(&http.Client{Timeout: httpTimeout}, cfg.Feed.URL)
		logrus.WithField("url", cfg.Feed.URL).Info("✅ Price feed client ready")
		return client, func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown feed source %q", cfg.Feed.Source)
	}
}

func newFeedCache(ctx context.Context, cfg config.Cache) (adapters.FeedCache, func(), error) {
	switch cfg.Backend {
	case config.CacheBackendRedis:
		c, err := cache.NewRedisFeedCache(ctx, cfg.Redis.Addr, cfg.Redis.Pass, cfg.Redis.DB)
		if err != nil {
			logrus.WithError(err).Error("Error connecting to redis")
			return nil, nil, err
		}
		logrus.Info("✅ Redis connection successful")
		return c, func() {
			if closeErr := c.Close(); closeErr != nil {
				logrus.Errorf("Redis close error: %v", closeErr)
			}
		}, nil

	case config.CacheBackendMemory:
		c, err := cache.NewFeedCache(cfg.MaxItems)
		if err != nil {
			return nil, nil, err
		}
		return c, c.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
