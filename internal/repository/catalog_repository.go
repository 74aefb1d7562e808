//go:generate mockery --name CatalogRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"dojo_path/internal/middleware"
	"dojo_path/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogRepository は種目・カテゴリ・技 (読み取り中心のマスタ) を扱います
type CatalogRepository interface {
	ListDisciplines(ctx context.Context, db *gorm.DB) ([]*model.Discipline, error)
	FindDisciplineByID(ctx context.Context, db *gorm.DB, disciplineID uuid.UUID) (*model.Discipline, error)
	FindDisciplineBySlug(ctx context.Context, db *gorm.DB, slug string) (*model.Discipline, error)
	ListCategories(ctx context.Context, db *gorm.DB, disciplineID uuid.UUID) ([]model.Category, error)
	FindCategoryByID(ctx context.Context, db *gorm.DB, categoryID uuid.UUID) (*model.Category, error)
	FindCategoryBySlug(ctx context.Context, db *gorm.DB, disciplineID uuid.UUID, slug string) (*model.Category, error)
	ListTechniquesByCategory(ctx context.Context, db *gorm.DB, categoryID uuid.UUID) ([]*model.Technique, error)
	FindTechniqueByID(ctx context.Context, db *gorm.DB, techniqueID uuid.UUID) (*model.Technique, error)
	// ListAllTechniques は種目・カテゴリ・技の表示順で全件返します (Category.Discipline をPreload)
	ListAllTechniques(ctx context.Context, db *gorm.DB) ([]*model.Technique, error)
	CountTechniques(ctx context.Context, db *gorm.DB) (int64, error)

	// 以下はシード投入用。自然キー (slug / 表示順) で既存行を探し、あれば更新します。
	UpsertDiscipline(ctx context.Context, db *gorm.DB, discipline *model.Discipline) error
	UpsertCategory(ctx context.Context, db *gorm.DB, category *model.Category) error
	UpsertTechnique(ctx context.Context, db *gorm.DB, technique *model.Technique) error
}

type gormCatalogRepository struct{}

func NewGormCatalogRepository() CatalogRepository {
	return &gormCatalogRepository{}
}

func (r *gormCatalogRepository) ListDisciplines(ctx context.Context, db *gorm.DB) ([]*model.Discipline, error) {
	logger := middleware.GetLogger(ctx)
	var disciplines []*model.Discipline
	if err := db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("order_index ASC, name ASC").
		Find(&disciplines).Error; err != nil {
		logger.Error("Error listing disciplines", "error", err)
		return nil, fmt.Errorf("gormCatalogRepository.ListDisciplines: %w", err)
	}
	return disciplines, nil
}

func (r *gormCatalogRepository) FindDisciplineByID(ctx context.Context, db *gorm.DB, disciplineID uuid.UUID) (*model.Discipline, error) {
	var d model.Discipline
	if err := db.WithContext(ctx).Where("discipline_id = ?", disciplineID).First(&d).Error; err != nil {
		return nil, r.notFoundOr(ctx, err, "FindDisciplineByID")
	}
	return &d, nil
}

func (r *gormCatalogRepository) FindDisciplineBySlug(ctx context.Context, db *gorm.DB, slug string) (*model.Discipline, error) {
	var d model.Discipline
	if err := db.WithContext(ctx).Where("slug = ?", slug).First(&d).Error; err != nil {
		return nil, r.notFoundOr(ctx, err, "FindDisciplineBySlug")
	}
	return &d, nil
}

func (r *gormCatalogRepository) ListCategories(ctx context.Context, db *gorm.DB, disciplineID uuid.UUID) ([]model.Category, error) {
	var categories []model.Category
	if err := db.WithContext(ctx).
		Where("discipline_id = ? AND is_active = ?", disciplineID, true).
		Order("order_index ASC").
		Find(&categories).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error listing categories", "error", err, "discipline_id", disciplineID.String())
		return nil, fmt.Errorf("gormCatalogRepository.ListCategories: %w", err)
	}
	return categories, nil
}

func (r *gormCatalogRepository) FindCategoryByID(ctx context.Context, db *gorm.DB, categoryID uuid.UUID) (*model.Category, error) {
	var c model.Category
	if err := db.WithContext(ctx).Where("category_id = ?", categoryID).First(&c).Error; err != nil {
		return nil, r.notFoundOr(ctx, err, "FindCategoryByID")
	}
	return &c, nil
}

func (r *gormCatalogRepository) FindCategoryBySlug(ctx context.Context, db *gorm.DB, disciplineID uuid.UUID, slug string) (*model.Category, error) {
	var c model.Category
	if err := db.WithContext(ctx).Where("discipline_id = ? AND slug = ?", disciplineID, slug).First(&c).Error; err != nil {
		return nil, r.notFoundOr(ctx, err, "FindCategoryBySlug")
	}
	return &c, nil
}

func (r *gormCatalogRepository) ListTechniquesByCategory(ctx context.Context, db *gorm.DB, categoryID uuid.UUID) ([]*model.Technique, error) {
	var techniques []*model.Technique
	if err := db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("order_index ASC").
		Find(&techniques).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error listing techniques", "error", err, "category_id", categoryID.String())
		return nil, fmt.Errorf("gormCatalogRepository.ListTechniquesByCategory: %w", err)
	}
	return techniques, nil
}

func (r *gormCatalogRepository) FindTechniqueByID(ctx context.Context, db *gorm.DB, techniqueID uuid.UUID) (*model.Technique, error) {
	var t model.Technique
	if err := db.WithContext(ctx).
		Preload("Category.Discipline").
		Where("technique_id = ?", techniqueID).
		First(&t).Error; err != nil {
		return nil, r.notFoundOr(ctx, err, "FindTechniqueByID")
	}
	return &t, nil
}

func (r *gormCatalogRepository) ListAllTechniques(ctx context.Context, db *gorm.DB) ([]*model.Technique, error) {
	var techniques []*model.Technique
	if err := db.WithContext(ctx).
		Preload("Category.Discipline").
		Joins("JOIN categories ON categories.category_id = techniques.category_id").
		Joins("JOIN disciplines ON disciplines.discipline_id = categories.discipline_id").
		Where("categories.is_active = ? AND disciplines.is_active = ?", true, true).
		Order("disciplines.order_index ASC, categories.order_index ASC, techniques.order_index ASC").
		Find(&techniques).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error listing all techniques", "error", err)
		return nil, fmt.Errorf("gormCatalogRepository.ListAllTechniques: %w", err)
	}
	return techniques, nil
}

func (r *gormCatalogRepository) CountTechniques(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Technique{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("gormCatalogRepository.CountTechniques: %w", err)
	}
	return count, nil
}

func (r *gormCatalogRepository) UpsertDiscipline(ctx context.Context, db *gorm.DB, discipline *model.Discipline) error {
	existing, err := r.FindDisciplineBySlug(ctx, db, discipline.Slug)
	switch {
	case err == nil:
		discipline.DisciplineID = existing.DisciplineID
		discipline.CreatedAt = existing.CreatedAt
	case errors.Is(err, model.ErrNotFound):
		if discipline.DisciplineID == uuid.Nil {
			discipline.DisciplineID = uuid.New()
		}
	default:
		return err
	}
	if err := db.WithContext(ctx).Save(discipline).Error; err != nil {
		return fmt.Errorf("gormCatalogRepository.UpsertDiscipline: %w", err)
	}
	return nil
}

func (r *gormCatalogRepository) UpsertCategory(ctx context.Context, db *gorm.DB, category *model.Category) error {
	existing, err := r.FindCategoryBySlug(ctx, db, category.DisciplineID, category.Slug)
	switch {
	case err == nil:
		category.CategoryID = existing.CategoryID
		category.CreatedAt = existing.CreatedAt
	case errors.Is(err, model.ErrNotFound):
		if category.CategoryID == uuid.Nil {
			category.CategoryID = uuid.New()
		}
	default:
		return err
	}
	if err := db.WithContext(ctx).Save(category).Error; err != nil {
		return fmt.Errorf("gormCatalogRepository.UpsertCategory: %w", err)
	}
	return nil
}

func (r *gormCatalogRepository) UpsertTechnique(ctx context.Context, db *gorm.DB, technique *model.Technique) error {
	var existing model.Technique
	err := db.WithContext(ctx).
		Where("category_id = ? AND order_index = ?", technique.CategoryID, technique.OrderIndex).
		First(&existing).Error
	switch {
	case err == nil:
		technique.TechniqueID = existing.TechniqueID
		technique.CreatedAt = existing.CreatedAt
	case errors.Is(err, gorm.ErrRecordNotFound):
		if technique.TechniqueID == uuid.Nil {
			technique.TechniqueID = uuid.New()
		}
	default:
		return fmt.Errorf("gormCatalogRepository.UpsertTechnique: %w", err)
	}
	if err := db.WithContext(ctx).Save(technique).Error; err != nil {
		return fmt.Errorf("gormCatalogRepository.UpsertTechnique: %w", err)
	}
	return nil
}

func (r *gormCatalogRepository) notFoundOr(ctx context.Context, err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ErrNotFound
	}
	middleware.GetLogger(ctx).Error("Error querying catalog", "error", err, "op", op)
	return fmt.Errorf("gormCatalogRepository.%s: %w", op, err)
}
