package repository

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"dojo_path/internal/config"
	"dojo_path/internal/model"

	slogGorm "github.com/orandin/slog-gorm"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB は PostgreSQL への GORM 接続を作成します
func NewDB(databaseURL string, appLogger *slog.Logger) (*gorm.DB, error) {

	// === slog を利用する GORM Logger の設定 ===
	var gormLogLevel gormlogger.LogLevel
	// 例: 環境変数 APP_ENV によって GORM のログレベルを切り替え
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	} else {
		gormLogLevel = gormlogger.Warn
	}

	// slog-gorm ロガーを作成 (slogGorm.Interface を返す)
	slogGormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond), // 遅いクエリの閾値を調整
	)

	finalGormLogger := slogGormLogger.LogMode(gormLogLevel)

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: finalGormLogger,
		// 一意制約違反などを gorm.ErrDuplicatedKey に変換する
		TranslateError: true,
	})
	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.Any("error", err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, err
	}

	// Pingで接続確認
	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close() // Ping失敗時はここでClose
		return nil, err
	}

	// コネクションプールの設定
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	appLogger.Info("Database connection established with GORM")
	return db, nil
}

// AllModels はマイグレーション対象のモデル一覧 (依存される側が先)
func AllModels() []interface{} {
	return []interface{}{
		&model.User{},
		&model.Identity{},
		&model.LegalAcceptance{},
		&model.UserVerificationToken{},
		&model.PasswordResetToken{},
		&model.EmailChangeToken{},
		&model.Profile{},
		&model.Discipline{},
		&model.Category{},
		&model.Technique{},
		&model.ProgressRecord{},
	}
}

// AutoMigrate はすべてのテーブルを作成・更新します
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("repository.AutoMigrate: %w", err)
	}
	return nil
}

// NewRedisClient は Redis に接続します。アドレスが空なら nil を返し、呼び出し側はメモリ実装に切り替えます。
func NewRedisClient(cfg config.RedisConfig, appLogger *slog.Logger) (*goredis.Client, error) {
	if cfg.Addr == "" {
		appLogger.Info("Redis address not configured, using in-memory stores")
		return nil, nil
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		appLogger.Error("Error pinging redis", slog.Any("error", err), slog.String("addr", cfg.Addr))
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	appLogger.Info("Redis connection established", slog.String("addr", cfg.Addr))
	return rdb, nil
}
