//go:generate mockery --name CatalogService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"dojo_path/internal/middleware"
	"dojo_path/internal/model"
	"dojo_path/internal/progression"
	"dojo_path/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CatalogService interface {
	ListDisciplines(ctx context.Context) ([]*model.Discipline, error)
	GetDiscipline(ctx context.Context, disciplineID uuid.UUID) (*model.DisciplineDetailResponse, error)
	GetDisciplineBySlug(ctx context.Context, slug string) (*model.DisciplineDetailResponse, error)
	// GetCategory は技一覧に解放・完了状態を付けて返します。userID が nil (匿名) なら順序1だけ解放。
	GetCategory(ctx context.Context, userID *uuid.UUID, categoryID uuid.UUID) (*model.CategoryDetailResponse, error)
	GetCategoryBySlug(ctx context.Context, userID *uuid.UUID, disciplineSlug, categorySlug string) (*model.CategoryDetailResponse, error)
}

type catalogService struct {
	db           *gorm.DB
	catalogRepo  repository.CatalogRepository
	progressRepo repository.ProgressRepository
}

func NewCatalogService(db *gorm.DB, catalogRepo repository.CatalogRepository, progressRepo repository.ProgressRepository) CatalogService {
	return &catalogService{db: db, catalogRepo: catalogRepo, progressRepo: progressRepo}
}

func (s *catalogService) ListDisciplines(ctx context.Context) ([]*model.Discipline, error) {
	disciplines, err := s.catalogRepo.ListDisciplines(ctx, s.db)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "種目の取得に失敗しました。", "", err)
	}
	return disciplines, nil
}

func (s *catalogService) GetDiscipline(ctx context.Context, disciplineID uuid.UUID) (*model.DisciplineDetailResponse, error) {
	d, err := s.catalogRepo.FindDisciplineByID(ctx, s.db, disciplineID)
	if err != nil {
		return nil, disciplineLookupError(err)
	}
	return s.disciplineDetail(ctx, d)
}

func (s *catalogService) GetDisciplineBySlug(ctx context.Context, slug string) (*model.DisciplineDetailResponse, error) {
	d, err := s.catalogRepo.FindDisciplineBySlug(ctx, s.db, slug)
	if err != nil {
		return nil, disciplineLookupError(err)
	}
	return s.disciplineDetail(ctx, d)
}

func (s *catalogService) disciplineDetail(ctx context.Context, d *model.Discipline) (*model.DisciplineDetailResponse, error) {
	if !d.IsActive {
		return nil, model.NewAppError("DISCIPLINE_NOT_FOUND", "種目が見つかりません。", "", model.ErrNotFound)
	}
	categories, err := s.catalogRepo.ListCategories(ctx, s.db, d.DisciplineID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "カテゴリの取得に失敗しました。", "", err)
	}
	if categories == nil {
		categories = []model.Category{}
	}
	return &model.DisciplineDetailResponse{Discipline: d, Categories: categories}, nil
}

func (s *catalogService) GetCategory(ctx context.Context, userID *uuid.UUID, categoryID uuid.UUID) (*model.CategoryDetailResponse, error) {
	c, err := s.catalogRepo.FindCategoryByID(ctx, s.db, categoryID)
	if err != nil {
		return nil, categoryLookupError(err)
	}
	return s.categoryDetail(ctx, userID, c)
}

func (s *catalogService) GetCategoryBySlug(ctx context.Context, userID *uuid.UUID, disciplineSlug, categorySlug string) (*model.CategoryDetailResponse, error) {
	d, err := s.catalogRepo.FindDisciplineBySlug(ctx, s.db, disciplineSlug)
	if err != nil {
		return nil, disciplineLookupError(err)
	}
	c, err := s.catalogRepo.FindCategoryBySlug(ctx, s.db, d.DisciplineID, categorySlug)
	if err != nil {
		return nil, categoryLookupError(err)
	}
	return s.categoryDetail(ctx, userID, c)
}

func (s *catalogService) categoryDetail(ctx context.Context, userID *uuid.UUID, c *model.Category) (*model.CategoryDetailResponse, error) {
	logger := middleware.GetLogger(ctx)
	if !c.IsActive {
		return nil, model.NewAppError("CATEGORY_NOT_FOUND", "カテゴリが見つかりません。", "", model.ErrNotFound)
	}

	techniques, err := s.catalogRepo.ListTechniquesByCategory(ctx, s.db, c.CategoryID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "技の取得に失敗しました。", "", err)
	}

	completed := progression.NewCompletedSet()
	if userID != nil {
		ids, err := s.progressRepo.CompletedTechniqueIDs(ctx, s.db, *userID, &c.CategoryID)
		if err != nil {
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の取得に失敗しました。", "", err)
		}
		completed = progression.NewCompletedSet(ids...)
	}

	summaries := make([]model.TechniqueSummary, 0, len(techniques))
	for _, t := range techniques {
		unlocked, missingPrevious := progression.Evaluate(t, techniques, completed)
		if missingPrevious {
			logger.Warn("Previous technique missing, treating as locked",
				"category_id", c.CategoryID, "technique_id", t.TechniqueID, "order_index", t.OrderIndex)
		}
		summaries = append(summaries, model.TechniqueSummary{
			TechniqueID: t.TechniqueID,
			Name:        t.Name,
			OrderIndex:  t.OrderIndex,
			XPReward:    t.XPReward,
			Unlocked:    unlocked,
			Completed:   completed.Has(t.TechniqueID),
		})
	}

	count, percent := progression.ProgressPercent(techniques, completed)
	return &model.CategoryDetailResponse{
		Category:        c,
		Techniques:      summaries,
		CompletedCount:  count,
		ProgressPercent: percent,
	}, nil
}

func disciplineLookupError(err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return model.NewAppError("DISCIPLINE_NOT_FOUND", "種目が見つかりません。", "", model.ErrNotFound)
	}
	return model.NewAppError("INTERNAL_SERVER_ERROR", "種目の取得に失敗しました。", "", err)
}

func categoryLookupError(err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return model.NewAppError("CATEGORY_NOT_FOUND", "カテゴリが見つかりません。", "", model.ErrNotFound)
	}
	return model.NewAppError("INTERNAL_SERVER_ERROR", "カテゴリの取得に失敗しました。", "", err)
}
