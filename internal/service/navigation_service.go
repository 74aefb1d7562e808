//go:generate mockery --name NavigationService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"dojo_path/internal/middleware"
	"dojo_path/internal/model"
	"dojo_path/internal/navigation"
)

// NavigationService は利用者ごとの画面遷移状態を読み書きします。
// key はログイン中ならユーザーID、未ログインならセッションヘッダーから作られます。
type NavigationService interface {
	Current(ctx context.Context, key string) (*model.NavigationResponse, error)
	Navigate(ctx context.Context, key string, authenticated bool, req *model.NavigateRequest) (*model.NavigationResponse, error)
	Back(ctx context.Context, key string, authenticated bool) (*model.NavigationResponse, error)
}

type navigationService struct {
	store     navigation.Store
	navigator *navigation.Navigator
}

func NewNavigationService(store navigation.Store, navigator *navigation.Navigator) NavigationService {
	return &navigationService{store: store, navigator: navigator}
}

func (s *navigationService) Current(ctx context.Context, key string) (*model.NavigationResponse, error) {
	state, err := s.load(ctx, key)
	if err != nil {
		return nil, err
	}
	return toNavigationResponse(state, false), nil
}

func (s *navigationService) Navigate(ctx context.Context, key string, authenticated bool, req *model.NavigateRequest) (*model.NavigationResponse, error) {
	logger := middleware.GetLogger(ctx)

	state, err := s.load(ctx, key)
	if err != nil {
		return nil, err
	}
	res, err := s.navigator.Navigate(state, req.Page, req.ID, authenticated)
	if err != nil {
		switch {
		case errors.Is(err, navigation.ErrUnknownPage):
			return nil, model.NewAppError("UNKNOWN_PAGE", "不明な画面です。", "page", model.ErrInvalidInput)
		case errors.Is(err, navigation.ErrMissingID):
			return nil, model.NewAppError("PAGE_ID_REQUIRED", "この画面にはIDが必要です。", "id", model.ErrInvalidInput)
		}
		return nil, err
	}
	if err := s.save(ctx, key, res.State); err != nil {
		return nil, err
	}
	if res.Redirected {
		logger.Debug("Navigation redirected to auth", "requested", req.Page)
	}
	return toNavigationResponse(res.State, res.Redirected), nil
}

func (s *navigationService) Back(ctx context.Context, key string, authenticated bool) (*model.NavigationResponse, error) {
	state, err := s.load(ctx, key)
	if err != nil {
		return nil, err
	}
	res := s.navigator.Back(state, authenticated)
	if err := s.save(ctx, key, res.State); err != nil {
		return nil, err
	}
	return toNavigationResponse(res.State, res.Redirected), nil
}

func (s *navigationService) load(ctx context.Context, key string) (model.NavigationState, error) {
	state, found, err := s.store.Load(ctx, key)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to load navigation state", "error", err)
		return model.NavigationState{}, model.NewAppError("INTERNAL_SERVER_ERROR", "画面状態の取得に失敗しました。", "", err)
	}
	if !found {
		return navigation.Home(), nil
	}
	return state, nil
}

func (s *navigationService) save(ctx context.Context, key string, state model.NavigationState) error {
	if err := s.store.Save(ctx, key, state); err != nil {
		middleware.GetLogger(ctx).Error("Failed to save navigation state", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "画面状態の保存に失敗しました。", "", err)
	}
	return nil
}

// 画面が変わるたびにクライアントは先頭へスクロールする
func toNavigationResponse(state model.NavigationState, redirected bool) *model.NavigationResponse {
	return &model.NavigationResponse{
		Current:     state.Current,
		Depth:       len(state.History),
		Redirected:  redirected,
		ScrollToTop: true,
	}
}
