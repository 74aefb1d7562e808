package handlers_test

import (
	"net/http"
	"testing"

	"dojo_path/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogHandler_ListDisciplines(t *testing.T) {
	t.Run("空でも配列を返す", func(t *testing.T) {
		s := newTestServer(t)
		s.catalog.On("ListDisciplines", mock.Anything).Return(nil, nil).Once()

		rec := s.do(t, http.MethodGet, "/api/v1/disciplines", nil, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("一覧", func(t *testing.T) {
		s := newTestServer(t)
		s.catalog.On("ListDisciplines", mock.Anything).
			Return([]*model.Discipline{{DisciplineID: uuid.New(), Name: "Boxing", Slug: "boxing", IsActive: true}}, nil).Once()

		rec := s.do(t, http.MethodGet, "/api/v1/disciplines", nil, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp []model.Discipline
		decodeJSON(t, rec, &resp)
		require.Len(t, resp, 1)
		assert.Equal(t, "boxing", resp[0].Slug)
	})
}

func TestCatalogHandler_GetDiscipline(t *testing.T) {
	t.Run("UUIDならIDで検索", func(t *testing.T) {
		s := newTestServer(t)
		id := uuid.New()
		s.catalog.On("GetDiscipline", mock.Anything, id).
			Return(&model.DisciplineDetailResponse{Discipline: &model.Discipline{DisciplineID: id}}, nil).Once()

		rec := s.do(t, http.MethodGet, "/api/v1/disciplines/"+id.String(), nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("それ以外はスラッグ", func(t *testing.T) {
		s := newTestServer(t)
		s.catalog.On("GetDisciplineBySlug", mock.Anything, "muay-thai").
			Return(nil, model.NewAppError("DISCIPLINE_NOT_FOUND", "種目が見つかりません。", "", model.ErrNotFound)).Once()

		rec := s.do(t, http.MethodGet, "/api/v1/disciplines/muay-thai", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "DISCIPLINE_NOT_FOUND", decodeError(t, rec).Code)
	})
}

func TestCatalogHandler_GetCategory(t *testing.T) {
	categoryID := uuid.New()
	detail := &model.CategoryDetailResponse{
		Category: &model.Category{CategoryID: categoryID},
		Techniques: []model.TechniqueSummary{
			{TechniqueID: uuid.New(), OrderIndex: 1, Unlocked: true},
			{TechniqueID: uuid.New(), OrderIndex: 2, Unlocked: false},
		},
	}

	t.Run("匿名なら userID は nil", func(t *testing.T) {
		s := newTestServer(t)
		s.catalog.On("GetCategory", mock.Anything, (*uuid.UUID)(nil), categoryID).Return(detail, nil).Once()

		rec := s.do(t, http.MethodGet, "/api/v1/categories/"+categoryID.String(), nil, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp model.CategoryDetailResponse
		decodeJSON(t, rec, &resp)
		assert.True(t, resp.Techniques[0].Unlocked)
		assert.False(t, resp.Techniques[1].Unlocked)
	})

	t.Run("ログイン中はユーザーIDを渡す", func(t *testing.T) {
		s := newTestServer(t)
		userID := uuid.New()
		s.catalog.On("GetCategory", mock.Anything, mock.MatchedBy(func(id *uuid.UUID) bool {
			return id != nil && *id == userID
		}), categoryID).Return(detail, nil).Once()

		rec := s.do(t, http.MethodGet, "/api/v1/categories/"+categoryID.String(), nil, asUser(userID))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("スラッグ検索には種目が必要", func(t *testing.T) {
		s := newTestServer(t)
		rec := s.do(t, http.MethodGet, "/api/v1/categories/attacks", nil, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "discipline", decodeError(t, rec).Field)
	})

	t.Run("スラッグ検索", func(t *testing.T) {
		s := newTestServer(t)
		s.catalog.On("GetCategoryBySlug", mock.Anything, (*uuid.UUID)(nil), "boxing", "attacks").Return(detail, nil).Once()

		rec := s.do(t, http.MethodGet, "/api/v1/categories/attacks?discipline=boxing", nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("不正な X-User-ID は401", func(t *testing.T) {
		s := newTestServer(t)
		rec := s.do(t, http.MethodGet, "/api/v1/categories/"+categoryID.String(), nil, map[string]string{"X-User-ID": "not-a-uuid"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
