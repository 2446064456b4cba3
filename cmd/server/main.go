package main // Entry point package

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"

	"github.com/iliyamo/land-marketplace/internal/config"
	"github.com/iliyamo/land-marketplace/internal/handler"
	"github.com/iliyamo/land-marketplace/internal/log"
	"github.com/iliyamo/land-marketplace/internal/middleware"
	"github.com/iliyamo/land-marketplace/internal/queue"
	"github.com/iliyamo/land-marketplace/internal/repository"
	"github.com/iliyamo/land-marketplace/internal/router"
	"github.com/iliyamo/land-marketplace/internal/service"
	bValidator "github.com/iliyamo/land-marketplace/internal/validator"
)

func main() {
	envFile := pflag.String("env-file", ".env", "optional dotenv file loaded before reading the environment")
	backend := pflag.String("storage", "", "storage backend override: file, memory, redis, mysql or mongo")
	pflag.Parse()

	cfg := config.Load(*envFile)
	if *backend != "" {
		cfg.StorageBackend = *backend
	}
	if err := log.Configure(cfg.Env); err != nil {
		log.Log().WithError(err).Fatal("configure logger")
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb := config.NewRedisClient()
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}

	st, closeStorage, err := openStorage(ctx, cfg, rdb)
	if err != nil {
		log.Log().WithField("backend", cfg.StorageBackend).WithError(err).Fatal("open storage")
	}
	defer closeStorage()

	store := repository.NewListingStore(st)
	store.Load(ctx)

	browse := service.NewBrowseService(store, cfg.BrowseCacheTTL)
	defer browse.Stop()
	publisher := service.NewPublisher(cfg.RabbitMQURL)
	users := repository.NewUserRepo(cfg.BcryptCost)

	e := echo.New()
	e.HideBanner = true
	e.Validator = bValidator.NewCustomValidator(validator.New())
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb, cfg.JWTSecret))

	router.RegisterRoutes(e, store)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users), cfg.JWTSecret)
	router.RegisterPublic(e,
		handler.NewPublicHandler(browse, store),
		handler.NewInquiryHandler(store, publisher),
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb, store.Revision),
	)
	router.RegisterOwner(e, handler.NewOwnerHandler(store), store, cfg.JWTSecret)

	if cfg.QueueConsumer {
		consumer := queue.NewConsumer(cfg.RabbitMQURL, "logs")
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Log().WithError(err).Error("event consumer stopped")
			}
		}()
	}

	addr := ":" + cfg.Port
	go func() {
		log.Log().WithFields(log.Fields{"addr": addr, "env": cfg.Env, "storage": st.Name()}).Info("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Log().WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Log().WithError(err).Error("shutdown")
	}
	log.Log().Info("server stopped")
}
