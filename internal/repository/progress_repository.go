//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dojo_path/internal/middleware"
	"dojo_path/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository interface {
	Create(ctx context.Context, tx *gorm.DB, progress *model.ProgressRecord) error
	FindByUserAndTechnique(ctx context.Context, db *gorm.DB, userID, techniqueID uuid.UUID) (*model.ProgressRecord, error)
	// EnsureExists は記録が無ければ作成し、既存または作成した記録を返します。同時アクセスでも重複しない。
	EnsureExists(ctx context.Context, db *gorm.DB, userID, techniqueID uuid.UUID) (*model.ProgressRecord, error)
	// FindByIDForUpdate はトランザクション内で行ロックを取って取得します
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, progressID uuid.UUID) (*model.ProgressRecord, error)
	UpdateSectionsRead(ctx context.Context, db *gorm.DB, progressID uuid.UUID, read model.SectionReadMap) error
	// MarkCompleted は未完了の記録だけを完了にします。更新した行が無ければ false。
	MarkCompleted(ctx context.Context, tx *gorm.DB, progressID uuid.UUID, completedAt time.Time) (bool, error)
	// CompletedTechniqueIDs はユーザーが完了した技IDを返します。categoryID が nil なら全カテゴリ。
	CompletedTechniqueIDs(ctx context.Context, db *gorm.DB, userID uuid.UUID, categoryID *uuid.UUID) ([]uuid.UUID, error)
	CountCompleted(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error)
	// RecentCompletions は完了日時の新しい順に limit 件返します (Technique をPreload)
	RecentCompletions(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.ProgressRecord, error)
	DeleteByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) error
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) Create(ctx context.Context, tx *gorm.DB, progress *model.ProgressRecord) error {
	logger := middleware.GetLogger(ctx)
	if progress.ProgressID == uuid.Nil {
		progress.ProgressID = uuid.New()
	}
	// JSON 列は NULL にしない
	if progress.SectionsRead.Data() == nil {
		progress.SectionsRead = datatypes.NewJSONType(model.SectionReadMap{})
	}
	if err := tx.WithContext(ctx).Create(progress).Error; err != nil {
		if isUniqueViolation(err) {
			return model.ErrConflict
		}
		logger.Error("Error creating progress record", "error", err,
			"user_id", progress.UserID.String(), "technique_id", progress.TechniqueID.String())
		return fmt.Errorf("gormProgressRepository.Create: %w", err)
	}
	return nil
}

func (r *gormProgressRepository) FindByUserAndTechnique(ctx context.Context, db *gorm.DB, userID, techniqueID uuid.UUID) (*model.ProgressRecord, error) {
	var progress model.ProgressRecord
	result := db.WithContext(ctx).Where("user_id = ? AND technique_id = ?", userID, techniqueID).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding progress record", "error", result.Error,
			"user_id", userID.String(), "technique_id", techniqueID.String())
		return nil, fmt.Errorf("gormProgressRepository.FindByUserAndTechnique: %w", result.Error)
	}
	return &progress, nil
}

func (r *gormProgressRepository) EnsureExists(ctx context.Context, db *gorm.DB, userID, techniqueID uuid.UUID) (*model.ProgressRecord, error) {
	progress := &model.ProgressRecord{
		ProgressID:   uuid.New(),
		UserID:       userID,
		TechniqueID:  techniqueID,
		SectionsRead: datatypes.NewJSONType(model.SectionReadMap{}),
	}
	// 一意制約違反はトランザクションを壊すので ON CONFLICT DO NOTHING で挿入する
	result := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}, {Name: "technique_id"}}, DoNothing: true}).
		Create(progress)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error ensuring progress record", "error", result.Error,
			"user_id", userID.String(), "technique_id", techniqueID.String())
		return nil, fmt.Errorf("gormProgressRepository.EnsureExists: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		middleware.GetLogger(ctx).Debug("Progress record created", "user_id", userID.String(), "technique_id", techniqueID.String())
		return progress, nil
	}
	return r.FindByUserAndTechnique(ctx, db, userID, techniqueID)
}

func (r *gormProgressRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, progressID uuid.UUID) (*model.ProgressRecord, error) {
	q := tx.WithContext(ctx)
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var progress model.ProgressRecord
	if err := q.Where("progress_id = ?", progressID).First(&progress).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error locking progress record", "error", err, "progress_id", progressID.String())
		return nil, fmt.Errorf("gormProgressRepository.FindByIDForUpdate: %w", err)
	}
	return &progress, nil
}

func (r *gormProgressRepository) UpdateSectionsRead(ctx context.Context, db *gorm.DB, progressID uuid.UUID, read model.SectionReadMap) error {
	result := db.WithContext(ctx).Model(&model.ProgressRecord{}).
		Where("progress_id = ?", progressID).
		Update("sections_read", datatypes.NewJSONType(read))
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error updating sections_read", "error", result.Error, "progress_id", progressID.String())
		return fmt.Errorf("gormProgressRepository.UpdateSectionsRead: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormProgressRepository) MarkCompleted(ctx context.Context, tx *gorm.DB, progressID uuid.UUID, completedAt time.Time) (bool, error) {
	result := tx.WithContext(ctx).Model(&model.ProgressRecord{}).
		Where("progress_id = ? AND completed = ?", progressID, false).
		Updates(map[string]interface{}{"completed": true, "completed_at": completedAt})
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error marking progress completed", "error", result.Error, "progress_id", progressID.String())
		return false, fmt.Errorf("gormProgressRepository.MarkCompleted: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *gormProgressRepository) CompletedTechniqueIDs(ctx context.Context, db *gorm.DB, userID uuid.UUID, categoryID *uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	q := db.WithContext(ctx).Model(&model.ProgressRecord{}).
		Where("user_progress.user_id = ? AND user_progress.completed = ?", userID, true)
	if categoryID != nil {
		q = q.Joins("JOIN techniques ON techniques.technique_id = user_progress.technique_id").
			Where("techniques.category_id = ?", *categoryID)
	}
	if err := q.Pluck("user_progress.technique_id", &ids).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error listing completed techniques", "error", err, "user_id", userID.String())
		return nil, fmt.Errorf("gormProgressRepository.CompletedTechniqueIDs: %w", err)
	}
	return ids, nil
}

func (r *gormProgressRepository) CountCompleted(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.ProgressRecord{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("gormProgressRepository.CountCompleted: %w", err)
	}
	return count, nil
}

func (r *gormProgressRepository) RecentCompletions(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.ProgressRecord, error) {
	var records []*model.ProgressRecord
	if err := db.WithContext(ctx).
		Preload("Technique").
		Where("user_id = ? AND completed = ? AND completed_at IS NOT NULL", userID, true).
		Order("completed_at DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error listing recent completions", "error", err, "user_id", userID.String())
		return nil, fmt.Errorf("gormProgressRepository.RecentCompletions: %w", err)
	}
	return records, nil
}

func (r *gormProgressRepository) DeleteByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) error {
	if err := db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.ProgressRecord{}).Error; err != nil {
		return fmt.Errorf("gormProgressRepository.DeleteByUserID: %w", err)
	}
	return nil
}
