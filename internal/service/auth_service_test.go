package service_test // 公開APIだけをテストするため別パッケージにする

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"dojo_path/internal/config"
	"dojo_path/internal/model"
	"dojo_path/internal/navigation"
	"dojo_path/internal/repository/mocks"
	"dojo_path/internal/service"
	servicemocks "dojo_path/internal/service/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceTestSuite struct {
	suite.Suite

	userRepo     *mocks.UserRepository
	identityRepo *mocks.IdentityRepository
	tokenRepo    *mocks.TokenRepository
	legalRepo    *mocks.LegalRepository
	profileRepo  *mocks.ProfileRepository
	progressRepo *mocks.ProgressRepository
	mailer       *servicemocks.Mailer
	denylist     *servicemocks.TokenDenylist
	storage      *servicemocks.Storage
	navStore     navigation.Store
	cfg          *config.Config
	authService  service.AuthService
}

// 各テストの直前にモックを作り直す
func (s *AuthServiceTestSuite) SetupTest() {
	t := s.T()
	s.userRepo = mocks.NewUserRepository(t)
	s.identityRepo = mocks.NewIdentityRepository(t)
	s.tokenRepo = mocks.NewTokenRepository(t)
	s.legalRepo = mocks.NewLegalRepository(t)
	s.profileRepo = mocks.NewProfileRepository(t)
	s.progressRepo = mocks.NewProgressRepository(t)
	s.mailer = servicemocks.NewMailer(t)
	s.denylist = servicemocks.NewTokenDenylist(t)
	s.storage = servicemocks.NewStorage(t)
	s.navStore = navigation.NewMemoryStore()

	s.cfg = &config.Config{
		App: config.AppConfig{Name: "DojoPath", FrontendURL: "http://localhost:5173", WaiverVersion: "2024-01"},
		JWT: config.JWTConfig{SecretKey: "test-secret", AccessTokenTTL: 15 * time.Minute},
	}

	repos := service.AuthRepositories{
		User:     s.userRepo,
		Identity: s.identityRepo,
		Token:    s.tokenRepo,
		Legal:    s.legalRepo,
		Profile:  s.profileRepo,
		Progress: s.progressRepo,
	}
	s.authService = service.NewAuthService(newTestDB(t), repos, s.mailer, s.denylist, s.storage, s.navStore, s.cfg)
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) registerRequest() *model.RegisterRequest {
	return &model.RegisterRequest{Email: "fighter@example.com", Password: "password", WaiverAccepted: true, LiabilityAccepted: true}
}

func (s *AuthServiceTestSuite) hash(password string) *string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	s.Require().NoError(err)
	v := string(h)
	return &v
}

func (s *AuthServiceTestSuite) TestRegister_Success() {
	req := s.registerRequest()
	s.userRepo.On("FindByEmail", mock.Anything, mock.Anything, req.Email).Return(nil, model.ErrNotFound).Once()
	s.userRepo.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Email == req.Email && !u.IsActive && u.UserID != uuid.Nil
	})).Return(nil).Once()
	s.identityRepo.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(i *model.Identity) bool {
		return i.AuthProvider == model.AuthProviderLocal && i.ProviderID == req.Email &&
			i.PasswordHash != nil && bcrypt.CompareHashAndPassword([]byte(*i.PasswordHash), []byte(req.Password)) == nil
	})).Return(nil).Once()
	s.legalRepo.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(a *model.LegalAcceptance) bool {
		return a.WaiverVersion == "2024-01" && !a.AcceptedAt.IsZero()
	})).Return(nil).Once()
	s.tokenRepo.On("CreateVerificationToken", mock.Anything, mock.Anything, mock.AnythingOfType("*model.UserVerificationToken")).Return(nil).Once()
	s.mailer.On("Send", mock.Anything, req.Email, mock.Anything, mock.MatchedBy(func(body string) bool {
		return strings.Contains(body, "http://localhost:5173/verify-email?token=")
	})).Return(nil).Once()

	user, err := s.authService.Register(context.Background(), req)
	s.Require().NoError(err)
	s.Equal(req.Email, user.Email)
	s.False(user.IsActive)
}

func (s *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	req := s.registerRequest()
	s.userRepo.On("FindByEmail", mock.Anything, mock.Anything, req.Email).Return(&model.User{Email: req.Email}, nil).Once()

	user, err := s.authService.Register(context.Background(), req)
	s.Nil(user)
	s.ErrorIs(err, model.ErrConflict)
	var appErr *model.AppError
	s.Require().ErrorAs(err, &appErr)
	s.Equal("DUPLICATE_EMAIL", appErr.Detail.Code)
}

func (s *AuthServiceTestSuite) TestRegister_WaiverNotAccepted() {
	req := s.registerRequest()
	req.LiabilityAccepted = false

	_, err := s.authService.Register(context.Background(), req)
	s.ErrorIs(err, model.ErrInvalidInput)
}

func (s *AuthServiceTestSuite) TestRegister_MailFailure() {
	req := s.registerRequest()
	s.userRepo.On("FindByEmail", mock.Anything, mock.Anything, req.Email).Return(nil, model.ErrNotFound).Once()
	s.userRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	s.identityRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	s.legalRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	s.tokenRepo.On("CreateVerificationToken", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	s.mailer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()

	_, err := s.authService.Register(context.Background(), req)
	var appErr *model.AppError
	s.Require().ErrorAs(err, &appErr)
	s.Equal("EMAIL_SEND_FAILED", appErr.Detail.Code)
}

func (s *AuthServiceTestSuite) TestVerifyAccount_CreatesProfile() {
	userID := uuid.New()
	token := &model.UserVerificationToken{Token: "tok", UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}
	s.tokenRepo.On("FindVerificationToken", mock.Anything, mock.Anything, "tok").Return(token, nil).Once()
	s.userRepo.On("Activate", mock.Anything, mock.Anything, userID).Return(nil).Once()
	s.profileRepo.On("FindByUserID", mock.Anything, mock.Anything, userID).Return(nil, model.ErrNotFound).Once()
	s.profileRepo.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(p *model.Profile) bool {
		return p.UserID == userID && p.PowerLevel == 0 && p.Rank == "Amateur" && len(p.ReferralCode) == 8
	})).Return(nil).Once()
	s.tokenRepo.On("DeleteVerificationToken", mock.Anything, mock.Anything, "tok").Return(nil).Once()

	s.NoError(s.authService.VerifyAccount(context.Background(), "tok"))
}

func (s *AuthServiceTestSuite) TestVerifyAccount_Expired() {
	token := &model.UserVerificationToken{Token: "old", UserID: uuid.New(), ExpiresAt: time.Now().Add(-time.Minute)}
	s.tokenRepo.On("FindVerificationToken", mock.Anything, mock.Anything, "old").Return(token, nil).Once()
	s.tokenRepo.On("DeleteVerificationToken", mock.Anything, mock.Anything, "old").Return(nil).Once()

	err := s.authService.VerifyAccount(context.Background(), "old")
	s.ErrorIs(err, model.ErrInvalidInput)
}

func (s *AuthServiceTestSuite) TestLogin() {
	userID := uuid.New()
	email := "fighter@example.com"

	s.Run("成功するとjti付きのJWTを返す", func() {
		s.userRepo.On("FindByEmail", mock.Anything, mock.Anything, email).Return(&model.User{UserID: userID, Email: email, IsActive: true}, nil).Once()
		s.identityRepo.On("FindLocalByUserID", mock.Anything, mock.Anything, userID).Return(&model.Identity{UserID: userID, PasswordHash: s.hash("password")}, nil).Once()

		resp, err := s.authService.Login(context.Background(), &model.LoginRequest{Email: email, Password: "password"})
		s.Require().NoError(err)

		claims := &jwt.RegisteredClaims{}
		_, err = jwt.ParseWithClaims(resp.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		s.Require().NoError(err)
		s.Equal(userID.String(), claims.Subject)
		s.NotEmpty(claims.ID)
	})

	s.Run("パスワード違い", func() {
		s.userRepo.On("FindByEmail", mock.Anything, mock.Anything, email).Return(&model.User{UserID: userID, Email: email, IsActive: true}, nil).Once()
		s.identityRepo.On("FindLocalByUserID", mock.Anything, mock.Anything, userID).Return(&model.Identity{UserID: userID, PasswordHash: s.hash("password")}, nil).Once()

		_, err := s.authService.Login(context.Background(), &model.LoginRequest{Email: email, Password: "wrong"})
		s.ErrorIs(err, model.ErrUnauthorized)
	})

	s.Run("未有効化のアカウント", func() {
		s.userRepo.On("FindByEmail", mock.Anything, mock.Anything, email).Return(&model.User{UserID: userID, Email: email, IsActive: false}, nil).Once()
		s.identityRepo.On("FindLocalByUserID", mock.Anything, mock.Anything, userID).Return(&model.Identity{UserID: userID, PasswordHash: s.hash("password")}, nil).Once()

		_, err := s.authService.Login(context.Background(), &model.LoginRequest{Email: email, Password: "password"})
		s.ErrorIs(err, model.ErrForbidden)
	})

	s.Run("存在しないユーザー", func() {
		s.userRepo.On("FindByEmail", mock.Anything, mock.Anything, "nobody@example.com").Return(nil, model.ErrNotFound).Once()

		_, err := s.authService.Login(context.Background(), &model.LoginRequest{Email: "nobody@example.com", Password: "password"})
		s.ErrorIs(err, model.ErrUnauthorized)
	})
}

func (s *AuthServiceTestSuite) TestLogout() {
	exp := time.Now().Add(time.Hour)
	s.denylist.On("Revoke", mock.Anything, "jti-1", exp).Return(nil).Once()

	s.NoError(s.authService.Logout(context.Background(), "jti-1", exp))
}

func (s *AuthServiceTestSuite) TestChangePassword() {
	userID := uuid.New()

	err := s.authService.ChangePassword(context.Background(), userID, &model.ChangePasswordRequest{NewPassword: "newpass", ConfirmPassword: "other"})
	s.ErrorIs(err, model.ErrInvalidInput)

	s.identityRepo.On("UpdatePasswordHash", mock.Anything, mock.Anything, userID, mock.MatchedBy(func(h string) bool {
		return bcrypt.CompareHashAndPassword([]byte(h), []byte("newpass")) == nil
	})).Return(nil).Once()
	s.NoError(s.authService.ChangePassword(context.Background(), userID, &model.ChangePasswordRequest{NewPassword: "newpass", ConfirmPassword: "newpass"}))
}

func (s *AuthServiceTestSuite) TestEmailChange() {
	userID := uuid.New()
	s.userRepo.On("FindByID", mock.Anything, mock.Anything, userID).Return(&model.User{UserID: userID, Email: "old@example.com"}, nil).Once()
	s.userRepo.On("FindByEmail", mock.Anything, mock.Anything, "new@example.com").Return(nil, model.ErrNotFound).Once()
	var saved *model.EmailChangeToken
	s.tokenRepo.On("CreateEmailChangeToken", mock.Anything, mock.Anything, mock.AnythingOfType("*model.EmailChangeToken")).
		Run(func(args mock.Arguments) { saved = args.Get(2).(*model.EmailChangeToken) }).
		Return(nil).Once()
	s.mailer.On("Send", mock.Anything, "new@example.com", mock.Anything, mock.MatchedBy(func(body string) bool {
		return strings.Contains(body, "/confirm-email?token=")
	})).Return(nil).Once()

	s.Require().NoError(s.authService.RequestEmailChange(context.Background(), userID, "new@example.com"))
	s.Require().NotNil(saved)
	s.Equal("new@example.com", saved.NewEmail)

	s.tokenRepo.On("FindEmailChangeToken", mock.Anything, mock.Anything, saved.Token).Return(saved, nil).Once()
	s.userRepo.On("UpdateEmail", mock.Anything, mock.Anything, userID, "new@example.com").Return(nil).Once()
	s.identityRepo.On("UpdateProviderID", mock.Anything, mock.Anything, userID, model.AuthProviderLocal, "new@example.com").Return(nil).Once()
	s.tokenRepo.On("DeleteEmailChangeToken", mock.Anything, mock.Anything, saved.Token).Return(nil).Once()

	s.NoError(s.authService.ConfirmEmailChange(context.Background(), saved.Token))
}

func (s *AuthServiceTestSuite) TestRequestEmailChange_SameEmail() {
	userID := uuid.New()
	s.userRepo.On("FindByID", mock.Anything, mock.Anything, userID).Return(&model.User{UserID: userID, Email: "same@example.com"}, nil).Once()

	err := s.authService.RequestEmailChange(context.Background(), userID, "same@example.com")
	s.ErrorIs(err, model.ErrInvalidInput)
}

func (s *AuthServiceTestSuite) TestRequestPasswordReset_UnknownEmailIsSilent() {
	s.userRepo.On("FindByEmail", mock.Anything, mock.Anything, "nobody@example.com").Return(nil, model.ErrNotFound).Once()

	s.NoError(s.authService.RequestPasswordReset(context.Background(), "nobody@example.com"))
}

func (s *AuthServiceTestSuite) TestResetPassword() {
	userID := uuid.New()
	token := &model.PasswordResetToken{Token: "reset", UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}
	s.tokenRepo.On("FindPasswordResetToken", mock.Anything, mock.Anything, "reset").Return(token, nil).Once()
	s.identityRepo.On("UpdatePasswordHash", mock.Anything, mock.Anything, userID, mock.AnythingOfType("string")).Return(nil).Once()
	s.tokenRepo.On("DeletePasswordResetToken", mock.Anything, mock.Anything, "reset").Return(nil).Once()

	s.NoError(s.authService.ResetPassword(context.Background(), "reset", "newpassword"))
}

func (s *AuthServiceTestSuite) TestDeleteAccount() {
	userID := uuid.New()
	ctx := context.Background()
	s.Require().NoError(s.navStore.Save(ctx, userID.String(), navigation.Home()))

	s.userRepo.On("FindByID", mock.Anything, mock.Anything, userID).Return(&model.User{UserID: userID}, nil).Once()
	s.progressRepo.On("DeleteByUserID", mock.Anything, mock.Anything, userID).Return(nil).Once()
	s.profileRepo.On("DeleteByUserID", mock.Anything, mock.Anything, userID).Return(nil).Once()
	s.tokenRepo.On("DeleteAllForUser", mock.Anything, mock.Anything, userID).Return(nil).Once()
	s.legalRepo.On("DeleteByUserID", mock.Anything, mock.Anything, userID).Return(nil).Once()
	s.identityRepo.On("DeleteByUserID", mock.Anything, mock.Anything, userID).Return(nil).Once()
	s.userRepo.On("Delete", mock.Anything, mock.Anything, userID).Return(nil).Once()
	s.storage.On("DeletePrefix", mock.Anything, userID.String()+"/").Return(nil).Once()

	s.Require().NoError(s.authService.DeleteAccount(ctx, userID))

	_, found, err := s.navStore.Load(ctx, userID.String())
	s.NoError(err)
	s.False(found)
}

func (s *AuthServiceTestSuite) TestDeleteAccount_StopsOnFailure() {
	userID := uuid.New()
	s.userRepo.On("FindByID", mock.Anything, mock.Anything, userID).Return(&model.User{UserID: userID}, nil).Once()
	s.progressRepo.On("DeleteByUserID", mock.Anything, mock.Anything, userID).Return(errors.New("db down")).Once()

	err := s.authService.DeleteAccount(context.Background(), userID)
	var appErr *model.AppError
	s.Require().ErrorAs(err, &appErr)
	s.Equal("INTERNAL_SERVER_ERROR", appErr.Detail.Code)
}
