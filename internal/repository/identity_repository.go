//go:generate mockery --name IdentityRepository --output ./mocks --outpkg mocks --case=underscore
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

type IdentityRepository interface {
	Create(ctx context.Context, db *gorm.DB, identity *model.Identity) error
	FindByProvider(ctx context.Context, db *gorm.DB, authProvider string, providerID string) (*model.Identity, error)
	FindLocalByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.Identity, error)
	UpdatePasswordHash(ctx context.Context, db *gorm.DB, userID uuid.UUID, hash string) error
	UpdateProviderID(ctx context.Context, db *gorm.DB, userID uuid.UUID, authProvider string, providerID string) error
	DeleteByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) error
}

type gormIdentityRepository struct{}

func NewGormIdentityRepository() IdentityRepository {
	return &gormIdentityRepository{}
}

func (r *gormIdentityRepository) Create(ctx context.Context, db *gorm.DB, identity *model.Identity) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Create(identity)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return model.ErrConflict
		}
		logger.Error(
			"Error creating identity in DB",
			"error", result.Error,
			"auth_provider", identity.AuthProvider,
			"provider_id", identity.ProviderID,
		)
		return fmt.Errorf("gormIdentityRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormIdentityRepository) FindByProvider(ctx context.Context, db *gorm.DB, authProvider string, providerID string) (*model.Identity, error) {
	logger := middleware.GetLogger(ctx)
	var identity model.Identity

	result := db.WithContext(ctx).
		Where("auth_provider = ? AND provider_id = ?", authProvider, providerID).
		First(&identity)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error(
			"Error finding identity by provider in DB",
			"error", result.Error,
			"auth_provider", authProvider,
			"provider_id", providerID,
		)
		return nil, fmt.Errorf("gormIdentityRepository.FindByProvider: %w", result.Error)
	}
	return &identity, nil
}

func (r *gormIdentityRepository) FindLocalByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.Identity, error) {
	logger := middleware.GetLogger(ctx)
	var identity model.Identity

	result := db.WithContext(ctx).
		Where("user_id = ? AND auth_provider = ?", userID, model.AuthProviderLocal).
		First(&identity)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding local identity", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormIdentityRepository.FindLocalByUserID: %w", result.Error)
	}
	return &identity, nil
}

func (r *gormIdentityRepository) UpdatePasswordHash(ctx context.Context, db *gorm.DB, userID uuid.UUID, hash string) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Model(&model.Identity{}).
		Where("user_id = ? AND auth_provider = ?", userID, model.AuthProviderLocal).
		Update("password_hash", hash)
	if result.Error != nil {
		logger.Error("Error updating password hash", "error", result.Error, "user_id", userID.String())
		return fmt.Errorf("gormIdentityRepository.UpdatePasswordHash: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormIdentityRepository) UpdateProviderID(ctx context.Context, db *gorm.DB, userID uuid.UUID, authProvider string, providerID string) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Model(&model.Identity{}).
		Where("user_id = ? AND auth_provider = ?", userID, authProvider).
		Update("provider_id", providerID)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return model.ErrConflict
		}
		logger.Error("Error updating identity provider id", "error", result.Error, "user_id", userID.String())
		return fmt.Errorf("gormIdentityRepository.UpdateProviderID: %w", result.Error)
	}
	return nil
}

func (r *gormIdentityRepository) DeleteByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Identity{}).Error; err != nil {
		logger.Error("Error deleting identities", "error", err, "user_id", userID.String())
		return fmt.Errorf("gormIdentityRepository.DeleteByUserID: %w", err)
	}
	return nil
}
