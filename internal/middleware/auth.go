package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"dojo_path/internal/config"
	"dojo_path/internal/model"
	"dojo_path/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// RevocationChecker はログアウト済みトークン (jti) を判定します
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// tokenInfo は検証済みトークンから取り出した情報
type tokenInfo struct {
	userID uuid.UUID
	jti    string
	exp    time.Time
}

var errNoAuthHeader = errors.New("authorization header missing")

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証するミドルウェア
func JWTAuthMiddleware(cfg *config.Config, revoked RevocationChecker) func(http.Handler) http.Handler {
	return jwtMiddleware(cfg, revoked, true)
}

// OptionalJWTAuthMiddleware はトークンがあれば検証し、無ければ匿名のまま通します。
// 不正なトークンは匿名扱いにせず 401 を返します。
func OptionalJWTAuthMiddleware(cfg *config.Config, revoked RevocationChecker) func(http.Handler) http.Handler {
	return jwtMiddleware(cfg, revoked, false)
}

func jwtMiddleware(cfg *config.Config, revoked RevocationChecker, required bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			info, err := authenticate(r, cfg)
			if errors.Is(err, errNoAuthHeader) && !required {
				next.ServeHTTP(w, r)
				return
			}
			if errors.Is(err, errNoAuthHeader) {
				err = model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーが必要です。", "", model.ErrUnauthorized)
			}
			if err != nil {
				logger.Warn("JWT auth failed", "error", err)
				webutil.HandleError(w, logger, err)
				return
			}

			// 3. ログアウト済みトークンの確認
			if revoked != nil && info.jti != "" {
				isRevoked, err := revoked.IsRevoked(r.Context(), info.jti)
				if err != nil {
					logger.Error("Failed to check token revocation", "error", err)
					webutil.HandleError(w, logger, err)
					return
				}
				if isRevoked {
					logger.Warn("JWT auth failed: token revoked", "jti", info.jti)
					webutil.HandleError(w, logger, model.NewAppError("TOKEN_REVOKED", "ログアウト済みのトークンです。", "", model.ErrUnauthorized))
					return
				}
			}

			ctx := context.WithValue(r.Context(), model.UserIDKey, info.userID)
			ctx = context.WithValue(ctx, model.TokenIDKey, info.jti)
			ctx = context.WithValue(ctx, model.TokenExpKey, info.exp)
			ctx = WithLogAttrs(ctx, "user_id", info.userID.String())

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func authenticate(r *http.Request, cfg *config.Config) (*tokenInfo, error) {
	// 1. Authorization ヘッダーからトークンを取得
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, errNoAuthHeader
	}

	headerParts := strings.Split(authHeader, " ")
	if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
		return nil, model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーの形式が正しくありません。", "", model.ErrUnauthorized)
	}

	// 2. 署名と有効期限を検証
	token, err := jwt.Parse(headerParts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.JWT.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, model.NewAppError("INVALID_TOKEN", "トークンが無効です。", "", model.ErrUnauthorized)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, model.NewAppError("INVALID_TOKEN", "トークンが無効です。", "", model.ErrUnauthorized)
	}
	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, model.NewAppError("INVALID_TOKEN", "トークンにユーザー情報が含まれていません。", "", model.ErrUnauthorized)
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, model.NewAppError("INVALID_TOKEN", "トークンのユーザー情報が不正です。", "", model.ErrUnauthorized)
	}

	info := &tokenInfo{userID: userID}
	if jti, ok := claims["jti"].(string); ok {
		info.jti = jti
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.exp = exp.Time
	}
	return info, nil
}

// GetUserIDFromContext は認証済みユーザーIDを取得します。無ければ 401 相当のエラー。
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.UserIDKey).(uuid.UUID)
	if !ok || value == uuid.Nil {
		return uuid.Nil, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
	}
	return value, nil
}

// UserIDFromContext は任意認証のルートで使います。匿名なら ok=false。
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	value, ok := ctx.Value(model.UserIDKey).(uuid.UUID)
	return value, ok && value != uuid.Nil
}

// GetTokenFromContext はログアウト処理用に jti と有効期限を返します
func GetTokenFromContext(ctx context.Context) (jti string, exp time.Time, ok bool) {
	jti, ok = ctx.Value(model.TokenIDKey).(string)
	if !ok || jti == "" {
		return "", time.Time{}, false
	}
	exp, _ = ctx.Value(model.TokenExpKey).(time.Time)
	return jti, exp, true
}
