package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"logiless/internal/client/logiless"
	"logiless/internal/config"
	cronrunner "logiless/internal/cron"
	"logiless/internal/db"
	"logiless/internal/handler"
	"logiless/internal/job"
	"logiless/internal/kv"
	"logiless/internal/logger"
	gormrepository "logiless/internal/repository/gorm"
	"logiless/internal/service"
	"logiless/internal/tokenstore"
)

func main() {
	cfgPath := os.Getenv("LS_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("LS_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	dbConn, err := db.Open(cfg.DB)
	if err != nil {
		logger.Fatal("db open failed", zap.Error(err))
	}
	defer db.Close(dbConn)

	if err := db.SetTimezone(dbConn, cfg.DB.Timezone); err != nil {
		logger.Warn("failed to set timezone", zap.Error(err))
	}
	if err := db.AutoMigrate(dbConn); err != nil {
		logger.Fatal("auto-migrate failed", zap.Error(err))
	}

	rdb := kv.NewRedisClient(cfg.Redis)
	defer rdb.Close()

	tokens := tokenstore.New(kv.NewRedisStore(rdb), cfg.Sync.TokenKey)
	oauthHTTP := &http.Client{Timeout: cfg.Logiless.Timeout}
	tokenManager := logiless.NewTokenManager(
		oauthHTTP,
		tokens,
		cfg.Logiless.BaseURL,
		cfg.Logiless.ClientID,
		cfg.Logiless.ClientSecret,
		cfg.Logiless.RedirectURI,
	)
	apiHTTP := &http.Client{Timeout: cfg.Logiless.Timeout}
	apiClient := logiless.NewClient(
		apiHTTP,
		tokenManager,
		cfg.Logiless.BaseURL,
		cfg.Logiless.MerchantID,
		cfg.Logiless.PageLimit,
		cfg.Sync.Window,
	)

	store := gormrepository.New(dbConn.Gorm)
	syncService := &service.OrderSyncService{
		Store:         store,
		Client:        apiClient,
		Logger:        logger,
		FallbackSince: cfg.Sync.FallbackSince,
	}
	runner := &job.Runner{Logger: logger}
	syncJob := &job.OrderSyncPerformer{Service: syncService}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())

	healthHandler := &handler.HealthHandler{DB: dbConn.Gorm}
	healthHandler.Register(engine)
	authHandler := &handler.AuthHandler{
		Tokens:  tokenManager,
		AuthURL: cfg.Logiless.AuthURL,
		Logger:  logger,
	}
	authHandler.Register(engine)
	syncHandler := &handler.SyncHandler{
		Runner:    runner,
		Performer: syncJob,
		Repo:      store,
		Logger:    logger,
	}
	syncHandler.Register(engine)

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cronRunner := cronrunner.New(logger, ctx)
	if cfg.Cron.Enabled {
		// Scheduled runs always use the computed watermark.
		_, err := cronRunner.Add(cfg.Cron.OrderSync, func(ctx context.Context) {
			_, _ = runner.Run(ctx, syncJob, job.Params{})
		})
		if err != nil {
			logger.Warn("cron register order sync failed", zap.Error(err))
		}
		cronRunner.Start()
		defer cronRunner.Stop()
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
