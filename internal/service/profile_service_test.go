package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"dojo_path/internal/config"
	"dojo_path/internal/model"
	"dojo_path/internal/repository/mocks"
	"dojo_path/internal/service"
	servicemocks "dojo_path/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func profileTestConfig() *config.Config {
	return &config.Config{
		App:     config.AppConfig{FrontendURL: "http://localhost:5173/"},
		Storage: config.StorageConfig{MaxUploadMB: 5},
	}
}

func TestProfileService_GetProfile(t *testing.T) {
	repo := mocks.NewProfileRepository(t)
	userID := uuid.New()
	repo.On("FindByUserID", mock.Anything, mock.Anything, userID).
		Return(&model.Profile{UserID: userID, PowerLevel: 350, Rank: "Contender", ReferralCode: "ABCD2345"}, nil).Once()

	svc := service.NewProfileService(nil, repo, servicemocks.NewStorage(t), profileTestConfig())
	resp, err := svc.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5173/?ref=ABCD2345", resp.ReferralLink)
	assert.Equal(t, "Contender", resp.RankProgress.Rank)
	assert.Equal(t, "Challenger", resp.RankProgress.NextRank)
	assert.Equal(t, 150, resp.RankProgress.XPRemaining)
	assert.InDelta(t, 50.0, resp.RankProgress.Percent, 0.001)
}

func TestProfileService_UpdateProfile(t *testing.T) {
	repo := mocks.NewProfileRepository(t)
	userID := uuid.New()
	name := "  Ippo Makunouchi "
	weight := 57

	repo.On("UpdateFields", mock.Anything, mock.Anything, userID, map[string]interface{}{
		"full_name": "Ippo Makunouchi",
		"weight":    57,
	}).Return(nil).Once()
	repo.On("FindByUserID", mock.Anything, mock.Anything, userID).Return(&model.Profile{UserID: userID}, nil).Once()

	svc := service.NewProfileService(nil, repo, servicemocks.NewStorage(t), profileTestConfig())
	_, err := svc.UpdateProfile(context.Background(), userID, &model.UpdateProfileRequest{FullName: &name, Weight: &weight})
	require.NoError(t, err)
}

func TestProfileService_UploadAvatar(t *testing.T) {
	userID := uuid.New()

	t.Run("保存してURLを記録する", func(t *testing.T) {
		repo := mocks.NewProfileRepository(t)
		storage := servicemocks.NewStorage(t)
		repo.On("FindByUserID", mock.Anything, mock.Anything, userID).Return(&model.Profile{UserID: userID}, nil).Twice()
		storage.On("Put", mock.Anything, userID.String()+"/profile.png", "image/png", mock.Anything, int64(1024)).
			Return("http://cdn.example.com/"+userID.String()+"/profile.png", nil).Once()
		repo.On("UpdateFields", mock.Anything, mock.Anything, userID, mock.MatchedBy(func(f map[string]interface{}) bool {
			url, ok := f["profile_picture_url"].(string)
			return ok && strings.HasPrefix(url, "http://cdn.example.com/"+userID.String()+"/profile.png?v=")
		})).Return(nil).Once()

		svc := service.NewProfileService(nil, repo, storage, profileTestConfig())
		_, err := svc.UploadAvatar(context.Background(), userID, "image/png", 1024, strings.NewReader("png"))
		require.NoError(t, err)
	})

	t.Run("5MBを超えると400", func(t *testing.T) {
		svc := service.NewProfileService(nil, mocks.NewProfileRepository(t), servicemocks.NewStorage(t), profileTestConfig())
		_, err := svc.UploadAvatar(context.Background(), userID, "image/png", 5*1024*1024+1, strings.NewReader(""))
		require.Error(t, err)
		assert.Equal(t, "FILE_TOO_LARGE", appErrCode(t, err))
	})

	t.Run("画像以外は400", func(t *testing.T) {
		svc := service.NewProfileService(nil, mocks.NewProfileRepository(t), servicemocks.NewStorage(t), profileTestConfig())
		_, err := svc.UploadAvatar(context.Background(), userID, "application/pdf", 10, strings.NewReader(""))
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		assert.Equal(t, "UNSUPPORTED_FILE_TYPE", appErrCode(t, err))
	})

	t.Run("ストレージの失敗", func(t *testing.T) {
		repo := mocks.NewProfileRepository(t)
		storage := servicemocks.NewStorage(t)
		repo.On("FindByUserID", mock.Anything, mock.Anything, userID).Return(&model.Profile{UserID: userID}, nil).Once()
		storage.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("s3 down")).Once()

		svc := service.NewProfileService(nil, repo, storage, profileTestConfig())
		_, err := svc.UploadAvatar(context.Background(), userID, "image/jpeg", 10, strings.NewReader("jpg"))
		require.Error(t, err)
		assert.Equal(t, "UPLOAD_FAILED", appErrCode(t, err))
	})
}
