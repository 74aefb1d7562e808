package handlers

import (
	"context"
	"net/http"
	"time"

	"dojo_path/internal/middleware"
	"dojo_path/internal/webutil"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db  *gorm.DB
	rdb *goredis.Client // nil ならメモリ実装なので確認しない
}

func NewHealthHandler(db *gorm.DB, rdb *goredis.Client) *HealthHandler {
	return &HealthHandler{db: db, rdb: rdb}
}

// Health は DB (と Redis) に疎通できるかを返します
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := map[string]string{"database": "ok"}
	healthy := true

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		logger.Error("Health check failed: could not ping DB", "error", err)
		status["database"] = "unavailable"
		healthy = false
	}

	if h.rdb != nil {
		status["redis"] = "ok"
		if err := h.rdb.Ping(ctx).Err(); err != nil {
			logger.Error("Health check failed: could not ping redis", "error", err)
			status["redis"] = "unavailable"
			healthy = false
		}
	}

	code := http.StatusOK
	if !healthy {
		code = http.StatusServiceUnavailable
	}
	webutil.RespondWithJSON(w, code, status, logger)
}
