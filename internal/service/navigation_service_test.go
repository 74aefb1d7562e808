package service_test

import (
	"context"
	"errors"
	"testing"

	"dojo_path/internal/model"
	"dojo_path/internal/navigation"
	"dojo_path/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigationService_Flow(t *testing.T) {
	store := navigation.NewMemoryStore()
	svc := service.NewNavigationService(store, navigation.NewNavigator(50))
	ctx := context.Background()
	key := uuid.NewString()

	cur, err := svc.Current(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, model.PageHome, cur.Current.Kind)
	assert.Equal(t, 0, cur.Depth)

	discID := uuid.New()
	resp, err := svc.Navigate(ctx, key, true, &model.NavigateRequest{Page: model.PageDiscipline, ID: &discID})
	require.NoError(t, err)
	assert.Equal(t, model.PageDiscipline, resp.Current.Kind)
	assert.Equal(t, 1, resp.Depth)
	assert.True(t, resp.ScrollToTop)
	assert.False(t, resp.Redirected)

	resp, err = svc.Back(ctx, key, true)
	require.NoError(t, err)
	assert.Equal(t, model.PageHome, resp.Current.Kind)
	assert.Equal(t, 0, resp.Depth)
	assert.True(t, resp.ScrollToTop)

	// 履歴が空なら戻ってもホーム
	resp, err = svc.Back(ctx, key, true)
	require.NoError(t, err)
	assert.Equal(t, model.PageHome, resp.Current.Kind)
}

func TestNavigationService_AnonymousRedirect(t *testing.T) {
	svc := service.NewNavigationService(navigation.NewMemoryStore(), navigation.NewNavigator(50))

	resp, err := svc.Navigate(context.Background(), "anon:abc", false, &model.NavigateRequest{Page: model.PageDashboard})
	require.NoError(t, err)
	assert.Equal(t, model.PageAuth, resp.Current.Kind)
	assert.True(t, resp.Redirected)
}

func TestNavigationService_InvalidRequests(t *testing.T) {
	svc := service.NewNavigationService(navigation.NewMemoryStore(), navigation.NewNavigator(50))
	ctx := context.Background()

	_, err := svc.Navigate(ctx, "k", true, &model.NavigateRequest{Page: "settings"})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	assert.Equal(t, "UNKNOWN_PAGE", appErrCode(t, err))

	_, err = svc.Navigate(ctx, "k", true, &model.NavigateRequest{Page: model.PageTechnique})
	require.Error(t, err)
	assert.Equal(t, "PAGE_ID_REQUIRED", appErrCode(t, err))
}

type failingStore struct{ navigation.Store }

func (failingStore) Load(context.Context, string) (model.NavigationState, bool, error) {
	return model.NavigationState{}, false, errors.New("redis down")
}

func TestNavigationService_StoreFailure(t *testing.T) {
	svc := service.NewNavigationService(failingStore{}, navigation.NewNavigator(50))

	_, err := svc.Current(context.Background(), "k")
	require.Error(t, err)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", appErrCode(t, err))
}
