package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Blac-guru/lenoxhill-healthcare/internal/auth"
	"github.com/Blac-guru/lenoxhill-healthcare/internal/cache"
	"github.com/Blac-guru/lenoxhill-healthcare/internal/config"
	"github.com/Blac-guru/lenoxhill-healthcare/internal/db"
	"github.com/Blac-guru/lenoxhill-healthcare/internal/handlers"
	"github.com/Blac-guru/lenoxhill-healthcare/internal/notifications"
	"github.com/Blac-guru/lenoxhill-healthcare/internal/store"
	"github.com/Blac-guru/lenoxhill-healthcare/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var dataStore store.Store
	if cfg.MongoURI != "" {
		client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			logger.Error("mongo connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer client.Disconnect(context.Background())

		if err := db.EnsureIndexes(ctx, cols); err != nil {
			logger.Error("index creation failed", slog.String("error", err.Error()))
			os.Exit(1)
		}

		mongoStore := store.NewMongoStore(cols)
		if err := mongoStore.SeedIfEmpty(ctx); err != nil {
			logger.Error("mongo seed failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		dataStore = mongoStore
		logger.Info("mongo store ready", slog.String("db", cfg.MongoDB))
	} else {
		dataStore = store.NewMemStore()
		logger.Info("memory store ready (no persistence across restarts)")
	}

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("redis connected")
		cacheStore = redisCache
	}

	var jwtManager *auth.Manager
	if cfg.JWTSecret != "" {
		jwtManager = &auth.Manager{
			Secret:     []byte(cfg.JWTSecret),
			AccessTTL:  time.Duration(cfg.AccessTTLMinutes) * time.Minute,
			RefreshTTL: time.Duration(cfg.RefreshTTLMinutes) * time.Minute,
			Issuer:     "lenoxhill-backend",
		}
	}

	server := &handlers.Server{
		Cfg:   cfg,
		Store: dataStore,
		Val:   validation.New(),
		Log:   logger,
		Cache: cacheStore,
	}

	mailer := notifications.NewBrevoClient(cfg.BrevoAPIKey, cfg.BrevoSenderEmail, cfg.BrevoSenderName, cfg.BrevoSandbox)
	if mailer == nil {
		logger.Info("brevo mailer disabled")
	} else {
		logger.Info("brevo mailer enabled", slog.String("sender", cfg.BrevoSenderEmail), slog.Bool("sandbox", cfg.BrevoSandbox))
		server.Mailer = mailer
	}

	r := handlers.NewRouter(server, jwtManager)

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}
