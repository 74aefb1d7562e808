package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"dojo_path/internal/handlers"
	"dojo_path/internal/middleware"
	"dojo_path/internal/model"
	"dojo_path/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// testServer はサービス層をすべてモックにしたルーターです
type testServer struct {
	router     http.Handler
	auth       *mocks.AuthService
	catalog    *mocks.CatalogService
	progress   *mocks.ProgressService
	profile    *mocks.ProfileService
	navigation *mocks.NavigationService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	s := &testServer{
		auth:       mocks.NewAuthService(t),
		catalog:    mocks.NewCatalogService(t),
		progress:   mocks.NewProgressService(t),
		profile:    mocks.NewProfileService(t),
		navigation: mocks.NewNavigationService(t),
	}
	s.router = handlers.NewRouter(handlers.RouterDeps{
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Auth:         handlers.NewAuthHandler(s.auth),
		Catalog:      handlers.NewCatalogHandler(s.catalog),
		Progress:     handlers.NewProgressHandler(s.progress),
		Profile:      handlers.NewProfileHandler(s.profile, 1),
		Navigation:   handlers.NewNavigationHandler(s.navigation),
		RequireUser:  middleware.DevUserContextMiddleware,
		OptionalUser: middleware.DevOptionalUserContextMiddleware,
	})
	return s
}

// do はリクエストを送ります。body が string ならそのまま、それ以外は JSON にして送る。
func (s *testServer) do(t *testing.T, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func asUser(id uuid.UUID) map[string]string {
	return map[string]string{middleware.DevUserHeader: id.String()}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	return resp.Error
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst), "body: %s", rec.Body.String())
}
