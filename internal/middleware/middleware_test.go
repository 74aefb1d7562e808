package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dojo_path/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRevocation struct {
	revoked map[string]bool
	err     error
}

func (s *stubRevocation) IsRevoked(_ context.Context, jti string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.revoked[jti], nil
}

func testConfig() *config.Config {
	return &config.Config{JWT: config.JWTConfig{SecretKey: "test-secret", AccessTokenTTL: time.Hour}}
}

func signToken(t *testing.T, secret string, sub string, jti string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": sub, "jti": jti, "exp": exp.Unix(), "iat": time.Now().Unix()}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

// echoUser はコンテキストのユーザーIDをボディに書くハンドラ
var echoUser = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	if id, ok := UserIDFromContext(r.Context()); ok {
		w.Write([]byte(id.String()))
		return
	}
	w.Write([]byte("anonymous"))
})

func TestJWTAuthMiddleware(t *testing.T) {
	cfg := testConfig()
	userID := uuid.New()
	valid := signToken(t, cfg.JWT.SecretKey, userID.String(), "jti-ok", time.Now().Add(time.Hour))

	tests := []struct {
		name       string
		header     string
		revoked    *stubRevocation
		wantStatus int
		wantBody   string
	}{
		{"有効なトークン", "Bearer " + valid, &stubRevocation{}, http.StatusOK, userID.String()},
		{"ヘッダー無し", "", &stubRevocation{}, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"形式不正", "Token " + valid, &stubRevocation{}, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"署名不一致", "Bearer " + signToken(t, "other", userID.String(), "x", time.Now().Add(time.Hour)), &stubRevocation{}, http.StatusUnauthorized, "INVALID_TOKEN"},
		{"期限切れ", "Bearer " + signToken(t, cfg.JWT.SecretKey, userID.String(), "x", time.Now().Add(-time.Hour)), &stubRevocation{}, http.StatusUnauthorized, "INVALID_TOKEN"},
		{"subjectがUUIDでない", "Bearer " + signToken(t, cfg.JWT.SecretKey, "nope", "x", time.Now().Add(time.Hour)), &stubRevocation{}, http.StatusUnauthorized, "INVALID_TOKEN"},
		{"ログアウト済み", "Bearer " + valid, &stubRevocation{revoked: map[string]bool{"jti-ok": true}}, http.StatusUnauthorized, "TOKEN_REVOKED"},
		{"失効確認の失敗", "Bearer " + valid, &stubRevocation{err: errors.New("redis down")}, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := JWTAuthMiddleware(cfg, tt.revoked)(echoUser)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantBody)
		})
	}
}

func TestOptionalJWTAuthMiddleware(t *testing.T) {
	cfg := testConfig()
	h := OptionalJWTAuthMiddleware(cfg, &stubRevocation{})(echoUser)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "anonymous", rr.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code, "不正なトークンは匿名にしない")
}

func TestGetTokenFromContext(t *testing.T) {
	cfg := testConfig()
	userID := uuid.New()
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signToken(t, cfg.JWT.SecretKey, userID.String(), "jti-123", exp)

	var gotJTI string
	var gotExp time.Time
	var gotOK bool
	h := JWTAuthMiddleware(cfg, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotJTI, gotExp, gotOK = GetTokenFromContext(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, gotOK)
	assert.Equal(t, "jti-123", gotJTI)
	assert.True(t, exp.Equal(gotExp))
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	_, err := GetUserIDFromContext(context.Background())
	assert.Error(t, err)
}

func TestDevUserContextMiddleware(t *testing.T) {
	userID := uuid.New()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(DevUserHeader, userID.String())
	DevUserContextMiddleware(echoUser).ServeHTTP(rr, req)
	assert.Equal(t, userID.String(), rr.Body.String())

	rr = httptest.NewRecorder()
	DevUserContextMiddleware(echoUser).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = httptest.NewRecorder()
	DevOptionalUserContextMiddleware(echoUser).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "anonymous", rr.Body.String())
}

func TestLoggingMiddleware_StoresLogger(t *testing.T) {
	base := slog.New(slog.NewTextHandler(io.Discard, nil))
	var got *slog.Logger
	h := LoggingMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetLogger(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.NotNil(t, got)
	assert.NotSame(t, slog.Default(), got)
}

func TestMaskBody(t *testing.T) {
	masked := maskBody([]byte(`{"email":"a@example.com","password":"secret123"}`))
	assert.Contains(t, masked, "a@example.com")
	assert.NotContains(t, masked, "secret123")
	assert.True(t, strings.Contains(masked, "[SENSITIVE]"))

	assert.Equal(t, "plain text", maskBody([]byte("plain text")))
	assert.Equal(t, "", maskBody(nil))
}
