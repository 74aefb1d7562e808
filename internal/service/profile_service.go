//go:generate mockery --name ProfileService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"dojo_path/internal/config"
	"dojo_path/internal/middleware"
	"dojo_path/internal/model"
	"dojo_path/internal/progression"
	"dojo_path/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.ProfileResponse, error)
	// UpdateProfile は指定された項目だけを更新します。パワーレベルとランクは変更できない。
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdateProfileRequest) (*model.ProfileResponse, error)
	// UploadAvatar は画像を <user_id>/profile.<ext> に上書き保存し、公開URLをプロフィールに記録します
	UploadAvatar(ctx context.Context, userID uuid.UUID, contentType string, size int64, body io.Reader) (*model.ProfileResponse, error)
}

type profileService struct {
	db          *gorm.DB
	profileRepo repository.ProfileRepository
	storage     Storage
	cfg         *config.Config
}

func NewProfileService(db *gorm.DB, profileRepo repository.ProfileRepository, storage Storage, cfg *config.Config) ProfileService {
	return &profileService{db: db, profileRepo: profileRepo, storage: storage, cfg: cfg}
}

func (s *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, s.db, userID)
	if err != nil {
		return nil, profileLookupError(err)
	}
	return s.toResponse(profile), nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdateProfileRequest) (*model.ProfileResponse, error) {
	logger := middleware.GetLogger(ctx)

	fields := map[string]interface{}{}
	if req.FullName != nil {
		fields["full_name"] = strings.TrimSpace(*req.FullName)
	}
	if req.Weight != nil {
		fields["weight"] = *req.Weight
	}
	if req.Height != nil {
		fields["height"] = *req.Height
	}
	if req.ExperienceLevel != nil {
		fields["experience_level"] = *req.ExperienceLevel
	}
	if req.PreferredDiscipline != nil {
		fields["preferred_discipline"] = *req.PreferredDiscipline
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}

	if len(fields) > 0 {
		if err := s.profileRepo.UpdateFields(ctx, s.db, userID, fields); err != nil {
			return nil, profileLookupError(err)
		}
		logger.Info("Profile updated", "user_id", userID, "fields", len(fields))
	}
	return s.GetProfile(ctx, userID)
}

func (s *profileService) UploadAvatar(ctx context.Context, userID uuid.UUID, contentType string, size int64, body io.Reader) (*model.ProfileResponse, error) {
	logger := middleware.GetLogger(ctx)

	maxBytes := s.cfg.Storage.MaxUploadMB * 1024 * 1024
	if size > maxBytes {
		return nil, model.NewAppError("FILE_TOO_LARGE", fmt.Sprintf("画像サイズは%dMB以下にしてください。", s.cfg.Storage.MaxUploadMB), "file", model.ErrInvalidInput)
	}
	ext, ok := config.AllowedAvatarContentTypes[strings.ToLower(contentType)]
	if !ok {
		return nil, model.NewAppError("UNSUPPORTED_FILE_TYPE", "JPEG, PNG, GIF, WebP の画像を選択してください。", "file", model.ErrInvalidInput)
	}

	if _, err := s.profileRepo.FindByUserID(ctx, s.db, userID); err != nil {
		return nil, profileLookupError(err)
	}

	key := fmt.Sprintf("%s/profile.%s", userID, ext)
	url, err := s.storage.Put(ctx, key, contentType, body, size)
	if err != nil {
		return nil, model.NewAppError("UPLOAD_FAILED", "画像のアップロードに失敗しました。", "file", err)
	}
	// キーは上書きなのでキャッシュ対策にバージョンを付ける
	url = fmt.Sprintf("%s?v=%d", url, time.Now().Unix())

	if err := s.profileRepo.UpdateFields(ctx, s.db, userID, map[string]interface{}{"profile_picture_url": url}); err != nil {
		return nil, profileLookupError(err)
	}

	logger.Info("Profile picture uploaded", "user_id", userID, "key", key, "size", size)
	return s.GetProfile(ctx, userID)
}

func (s *profileService) toResponse(p *model.Profile) *model.ProfileResponse {
	return &model.ProfileResponse{
		Profile:      p,
		RankProgress: progression.ProgressToNext(p.PowerLevel),
		ReferralLink: fmt.Sprintf("%s/?ref=%s", strings.TrimRight(s.cfg.App.FrontendURL, "/"), p.ReferralCode),
	}
}

func profileLookupError(err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return model.NewAppError("PROFILE_NOT_FOUND", "プロフィールが見つかりません。", "", model.ErrNotFound)
	}
	return model.NewAppError("INTERNAL_SERVER_ERROR", "プロフィールの処理に失敗しました。", "", err)
}
