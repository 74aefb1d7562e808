//go:generate mockery --name LegalRepository --output ./mocks --outpkg mocks --case=underscore
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

// LegalRepository は免責事項への同意記録を扱います
type LegalRepository interface {
	Create(ctx context.Context, db *gorm.DB, acceptance *model.LegalAcceptance) error
	HasAccepted(ctx context.Context, db *gorm.DB, userID uuid.UUID, version string) (bool, error)
	DeleteByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) error
}

type gormLegalRepository struct{}

func NewGormLegalRepository() LegalRepository {
	return &gormLegalRepository{}
}

// Create は同意を記録します。同じバージョンへの再同意は無視します。
func (r *gormLegalRepository) Create(ctx context.Context, db *gorm.DB, acceptance *model.LegalAcceptance) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Create(acceptance).Error; err != nil {
		if isUniqueViolation(err) {
			logger.Debug("Legal acceptance already recorded", "user_id", acceptance.UserID.String(), "version", acceptance.WaiverVersion)
			return nil
		}
		logger.Error("Failed to record legal acceptance", "error", err, "user_id", acceptance.UserID.String())
		return fmt.Errorf("gormLegalRepository.Create: %w", err)
	}
	return nil
}

func (r *gormLegalRepository) HasAccepted(ctx context.Context, db *gorm.DB, userID uuid.UUID, version string) (bool, error) {
	var acceptance model.LegalAcceptance
	err := db.WithContext(ctx).Where("user_id = ? AND waiver_version = ?", userID, version).First(&acceptance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("gormLegalRepository.HasAccepted: %w", err)
	}
	return true, nil
}

func (r *gormLegalRepository) DeleteByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) error {
	if err := db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.LegalAcceptance{}).Error; err != nil {
		return fmt.Errorf("gormLegalRepository.DeleteByUserID: %w", err)
	}
	return nil
}
