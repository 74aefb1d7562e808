package middleware

import (
	"context"
	"net/http"

	"dojo_path/internal/model"
	"dojo_path/internal/webutil"

	"github.com/google/uuid"
)

// DevUserHeader は開発・テスト時にユーザーを指定するヘッダー
const DevUserHeader = "X-User-ID"

// DevUserContextMiddleware は開発時用ミドルウェアです。
// X-User-ID ヘッダーからUUIDを抽出し、コンテキストに設定します。
// DBでのユーザー存在チェックは行いません。
func DevUserContextMiddleware(next http.Handler) http.Handler {
	return devUser(next, true)
}

// DevOptionalUserContextMiddleware はヘッダーが無ければ匿名として通します
func DevOptionalUserContextMiddleware(next http.Handler) http.Handler {
	return devUser(next, false)
}

func devUser(next http.Handler, required bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		raw := r.Header.Get(DevUserHeader)
		if raw == "" {
			if !required {
				next.ServeHTTP(w, r)
				return
			}
			logger.Warn("[DEV AUTH] Failed: X-User-ID header missing")
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-User-ID ヘッダーが必要です。", "", model.ErrUnauthorized))
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			logger.Warn("[DEV AUTH] Failed: Invalid X-User-ID format", "value", raw)
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-User-ID の形式が正しくありません。", "", model.ErrUnauthorized))
			return
		}

		logger.Debug("[DEV AUTH] User ID set to context (no validation)", "user_id", userID.String())
		ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
		ctx = WithLogAttrs(ctx, "user_id", userID.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
