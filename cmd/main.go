// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"dojo_path/internal/config"
	"dojo_path/internal/handlers"
	"dojo_path/internal/middleware"
	"dojo_path/internal/navigation"
	"dojo_path/internal/repository"
	"dojo_path/internal/service"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	// Configを読み込み (CONFIG_DIR で上書き可能)
	configDir := os.Getenv("CONFIG_DIR")
	if configDir == "" {
		configDir = "configs"
	}
	if err := config.LoadConfig(configDir); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}
	cfg := &config.Cfg

	logger := newLogger(cfg.Log.Level, tempLogger)
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	// 1. Database (GORM)
	db, err := repository.NewDB(cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// 2. Redis (未設定ならメモリ実装)
	rdb, err := repository.NewRedisClient(cfg.Redis, logger)
	if err != nil {
		slog.Error("Error initializing redis", slog.Any("error", err))
		os.Exit(1)
	}
	var (
		denylist service.TokenDenylist
		navStore navigation.Store
	)
	if rdb != nil {
		defer rdb.Close()
		denylist = service.NewRedisTokenDenylist(rdb)
		navStore = navigation.NewRedisStore(rdb, cfg.Navigation.TTL)
	} else {
		denylist = service.NewMemoryTokenDenylist()
		navStore = navigation.NewMemoryStore()
	}

	// 3. 外部サービス (メール・画像ストレージ)
	initCtx, cancelInit := context.WithTimeout(context.Background(), 15*time.Second)
	mailer, err := service.NewMailer(initCtx, cfg)
	if err != nil {
		cancelInit()
		slog.Error("Error initializing mailer", slog.Any("error", err))
		os.Exit(1)
	}
	storage, err := service.NewStorage(initCtx, cfg)
	cancelInit()
	if err != nil {
		slog.Error("Error initializing storage", slog.Any("error", err))
		os.Exit(1)
	}

	// 4. Dependency Injection
	userRepo := repository.NewGormUserRepository()
	identityRepo := repository.NewGormIdentityRepository()
	tokenRepo := repository.NewGormTokenRepository()
	legalRepo := repository.NewGormLegalRepository()
	catalogRepo := repository.NewGormCatalogRepository()
	progressRepo := repository.NewGormProgressRepository()
	profileRepo := repository.NewGormProfileRepository()

	authService := service.NewAuthService(db, service.AuthRepositories{
		User:     userRepo,
		Identity: identityRepo,
		Token:    tokenRepo,
		Legal:    legalRepo,
		Profile:  profileRepo,
		Progress: progressRepo,
	}, mailer, denylist, storage, navStore, cfg)
	catalogService := service.NewCatalogService(db, catalogRepo, progressRepo)
	progressService := service.NewProgressService(db, catalogRepo, progressRepo, profileRepo)
	profileService := service.NewProfileService(db, profileRepo, storage, cfg)
	navigationService := service.NewNavigationService(navStore, navigation.NewNavigator(cfg.Navigation.MaxHistory))

	// 認証ミドルウェアの選択
	requireUser := middleware.JWTAuthMiddleware(cfg, denylist)
	optionalUser := middleware.OptionalJWTAuthMiddleware(cfg, denylist)
	if !cfg.Auth.Enabled {
		slog.Warn("Authentication is DISABLED. Using X-User-ID header for development.")
		requireUser = middleware.DevUserContextMiddleware
		optionalUser = middleware.DevOptionalUserContextMiddleware
	}

	// CORS 設定 (設定ファイルから読み込んだ値を使用)
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
		Debug:            false,
	})

	uploadsDir := ""
	if strings.ToLower(cfg.Storage.Type) != "s3" {
		uploadsDir = cfg.Storage.LocalDir
	}

	// 5. Router
	r := handlers.NewRouter(handlers.RouterDeps{
		Logger:       logger,
		CORS:         corsHandler,
		Auth:         handlers.NewAuthHandler(authService),
		Catalog:      handlers.NewCatalogHandler(catalogService),
		Progress:     handlers.NewProgressHandler(progressService),
		Profile:      handlers.NewProfileHandler(profileService, cfg.Storage.MaxUploadMB),
		Navigation:   handlers.NewNavigationHandler(navigationService),
		Health:       handlers.NewHealthHandler(db, rdb),
		RequireUser:  requireUser,
		OptionalUser: optionalUser,
		UploadsDir:   uploadsDir,
	})

	// 6. Start Server
	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second, // 画像アップロードがあるので少し長め
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}

// newLogger は設定のログレベルと APP_ENV に応じてハンドラを選びます。dev なら tint、それ以外は JSON。
func newLogger(level string, tempLogger *slog.Logger) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		tempLogger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	return slog.New(handler)
}
