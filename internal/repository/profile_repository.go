//go:generate mockery --name ProfileRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"dojo_path/internal/middleware"
	"dojo_path/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository interface {
	Create(ctx context.Context, db *gorm.DB, profile *model.Profile) error
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.Profile, error)
	// FindByUserIDForUpdate はトランザクション内で行ロックを取って取得します
	FindByUserIDForUpdate(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*model.Profile, error)
	UpdateFields(ctx context.Context, db *gorm.DB, userID uuid.UUID, fields map[string]interface{}) error
	UpdatePowerLevel(ctx context.Context, tx *gorm.DB, userID uuid.UUID, powerLevel int, rank string) error
	DeleteByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) error
}

type gormProfileRepository struct{}

func NewGormProfileRepository() ProfileRepository {
	return &gormProfileRepository{}
}

func (r *gormProfileRepository) Create(ctx context.Context, db *gorm.DB, profile *model.Profile) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Create(profile).Error; err != nil {
		if isUniqueViolation(err) {
			logger.Warn("Duplicate key error on create profile", "error", err, "user_id", profile.UserID.String())
			return model.ErrConflict
		}
		logger.Error("Error creating profile in DB", "error", err, "user_id", profile.UserID.String())
		return fmt.Errorf("gormProfileRepository.Create: %w", err)
	}
	return nil
}

func (r *gormProfileRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.Profile, error) {
	return r.find(ctx, db.WithContext(ctx), userID, "FindByUserID")
}

func (r *gormProfileRepository) FindByUserIDForUpdate(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*model.Profile, error) {
	q := tx.WithContext(ctx)
	// SQLite は FOR UPDATE を解釈しないので PostgreSQL のときだけ付ける
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return r.find(ctx, q, userID, "FindByUserIDForUpdate")
}

func (r *gormProfileRepository) find(ctx context.Context, q *gorm.DB, userID uuid.UUID, op string) (*model.Profile, error) {
	logger := middleware.GetLogger(ctx)
	var profile model.Profile
	if err := q.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding profile", "error", err, "user_id", userID.String())
		return nil, fmt.Errorf("gormProfileRepository.%s: %w", op, err)
	}
	return &profile, nil
}

func (r *gormProfileRepository) UpdateFields(ctx context.Context, db *gorm.DB, userID uuid.UUID, fields map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(fields) == 0 {
		return nil
	}
	result := db.WithContext(ctx).Model(&model.Profile{}).Where("user_id = ?", userID).Updates(fields)
	if result.Error != nil {
		logger.Error("Error updating profile", "error", result.Error, "user_id", userID.String())
		return fmt.Errorf("gormProfileRepository.UpdateFields: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormProfileRepository) UpdatePowerLevel(ctx context.Context, tx *gorm.DB, userID uuid.UUID, powerLevel int, rank string) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.Profile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{"power_level": powerLevel, "rank": rank})
	if result.Error != nil {
		logger.Error("Error updating power level", "error", result.Error, "user_id", userID.String())
		return fmt.Errorf("gormProfileRepository.UpdatePowerLevel: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormProfileRepository) DeleteByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) error {
	if err := db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Profile{}).Error; err != nil {
		return fmt.Errorf("gormProfileRepository.DeleteByUserID: %w", err)
	}
	return nil
}
