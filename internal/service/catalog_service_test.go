package service_test

import (
	"context"
	"errors"
	"testing"

	"dojo_path/internal/model"
	"dojo_path/internal/repository"
	repomocks "dojo_path/internal/repository/mocks"
	"dojo_path/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCatalogService(db *gorm.DB) service.CatalogService {
	return service.NewCatalogService(db, repository.NewGormCatalogRepository(), repository.NewGormProgressRepository())
}

func unlockedFlags(resp *model.CategoryDetailResponse) []bool {
	flags := make([]bool, 0, len(resp.Techniques))
	for _, t := range resp.Techniques {
		flags = append(flags, t.Unlocked)
	}
	return flags
}

func TestGetCategory_Anonymous(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db, 10, 20, 30)

	resp, err := newCatalogService(db).GetCategory(context.Background(), nil, f.category.CategoryID)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false}, unlockedFlags(resp))
	assert.Equal(t, 0, resp.CompletedCount)
	assert.Equal(t, float64(0), resp.ProgressPercent)
}

func TestGetCategory_WithProgress(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db, 10, 20, 30)
	userID := uuid.New()
	seedCompleted(t, db, userID, f.techniques[0].TechniqueID)

	resp, err := newCatalogService(db).GetCategory(context.Background(), &userID, f.category.CategoryID)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, false}, unlockedFlags(resp))
	assert.True(t, resp.Techniques[0].Completed)
	assert.False(t, resp.Techniques[1].Completed)
	assert.Equal(t, 1, resp.CompletedCount)
	assert.InDelta(t, 33.33, resp.ProgressPercent, 0.01)
}

func TestGetCategory_MissingPreviousIsLocked(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db, 10)
	gap := &model.Technique{TechniqueID: uuid.New(), CategoryID: f.category.CategoryID, Name: "Gap", OrderIndex: 3, XPReward: 5}
	require.NoError(t, db.Create(gap).Error)
	userID := uuid.New()
	seedCompleted(t, db, userID, f.techniques[0].TechniqueID)

	resp, err := newCatalogService(db).GetCategory(context.Background(), &userID, f.category.CategoryID)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, unlockedFlags(resp))
}

func TestGetCategoryBySlug(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db, 10, 20)
	svc := newCatalogService(db)
	ctx := context.Background()

	resp, err := svc.GetCategoryBySlug(ctx, nil, "boxing", "attacks")
	require.NoError(t, err)
	assert.Equal(t, f.category.CategoryID, resp.Category.CategoryID)
	assert.Len(t, resp.Techniques, 2)

	_, err = svc.GetCategoryBySlug(ctx, nil, "boxing", "defense")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Equal(t, "CATEGORY_NOT_FOUND", appErrCode(t, err))

	_, err = svc.GetCategoryBySlug(ctx, nil, "judo", "attacks")
	require.Error(t, err)
	assert.Equal(t, "DISCIPLINE_NOT_FOUND", appErrCode(t, err))
}

func TestDisciplines(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db, 10)
	svc := newCatalogService(db)
	ctx := context.Background()

	list, err := svc.ListDisciplines(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Boxing", list[0].Name)

	detail, err := svc.GetDiscipline(ctx, f.discipline.DisciplineID)
	require.NoError(t, err)
	require.Len(t, detail.Categories, 1)
	assert.Equal(t, "attacks", detail.Categories[0].Slug)

	detail, err = svc.GetDisciplineBySlug(ctx, "boxing")
	require.NoError(t, err)
	assert.Equal(t, f.discipline.DisciplineID, detail.Discipline.DisciplineID)

	_, err = svc.GetDiscipline(ctx, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestCatalogService_RepositoryErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("一覧取得の失敗は内部エラー", func(t *testing.T) {
		catalogRepo := repomocks.NewCatalogRepository(t)
		progressRepo := repomocks.NewProgressRepository(t)
		catalogRepo.On("ListDisciplines", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset")).Once()

		_, err := service.NewCatalogService(nil, catalogRepo, progressRepo).ListDisciplines(ctx)

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", appErr.Detail.Code)
	})

	t.Run("非公開のカテゴリは見つからない扱い", func(t *testing.T) {
		catalogRepo := repomocks.NewCatalogRepository(t)
		progressRepo := repomocks.NewProgressRepository(t)
		categoryID := uuid.New()
		catalogRepo.On("FindCategoryByID", mock.Anything, mock.Anything, categoryID).
			Return(&model.Category{CategoryID: categoryID, IsActive: false}, nil).Once()

		_, err := service.NewCatalogService(nil, catalogRepo, progressRepo).GetCategory(ctx, nil, categoryID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("進捗取得の失敗", func(t *testing.T) {
		catalogRepo := repomocks.NewCatalogRepository(t)
		progressRepo := repomocks.NewProgressRepository(t)
		categoryID := uuid.New()
		userID := uuid.New()
		catalogRepo.On("FindCategoryByID", mock.Anything, mock.Anything, categoryID).
			Return(&model.Category{CategoryID: categoryID, IsActive: true}, nil).Once()
		catalogRepo.On("ListTechniquesByCategory", mock.Anything, mock.Anything, categoryID).
			Return([]*model.Technique{{TechniqueID: uuid.New(), CategoryID: categoryID, OrderIndex: 1}}, nil).Once()
		progressRepo.On("CompletedTechniqueIDs", mock.Anything, mock.Anything, userID, &categoryID).
			Return(nil, errors.New("timeout")).Once()

		_, err := service.NewCatalogService(nil, catalogRepo, progressRepo).GetCategory(ctx, &userID, categoryID)
		require.Error(t, err)
		assert.NotErrorIs(t, err, model.ErrNotFound)
	})
}
