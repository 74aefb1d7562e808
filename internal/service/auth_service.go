//go:generate mockery --name AuthService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"dojo_path/internal/config"
	"dojo_path/internal/middleware"
	"dojo_path/internal/model"
	"dojo_path/internal/navigation"
	"dojo_path/internal/progression"
	"dojo_path/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	verificationTokenTTL = 24 * time.Hour
	passwordResetTTL     = 1 * time.Hour
	emailChangeTTL       = 24 * time.Hour
)

type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.UserResponse, error)
	VerifyAccount(ctx context.Context, tokenString string) error
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	// Logout はアクセストークンを有効期限まで失効させます
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	GetMe(ctx context.Context, userID uuid.UUID) (*model.UserResponse, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req *model.ChangePasswordRequest) error
	// RequestEmailChange は新しいアドレスへ確認メールを送ります。確認されるまでメールアドレスは変わりません。
	RequestEmailChange(ctx context.Context, userID uuid.UUID, newEmail string) error
	ConfirmEmailChange(ctx context.Context, tokenString string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

// AuthRepositories は AuthService が使うリポジトリ一式
type AuthRepositories struct {
	User     repository.UserRepository
	Identity repository.IdentityRepository
	Token    repository.TokenRepository
	Legal    repository.LegalRepository
	Profile  repository.ProfileRepository
	Progress repository.ProgressRepository
}

type authService struct {
	db       *gorm.DB
	repos    AuthRepositories
	mailer   Mailer
	denylist TokenDenylist
	storage  Storage
	navStore navigation.Store
	cfg      *config.Config
}

func NewAuthService(db *gorm.DB, repos AuthRepositories, mailer Mailer, denylist TokenDenylist, storage Storage, navStore navigation.Store, cfg *config.Config) AuthService {
	return &authService{
		db:       db,
		repos:    repos,
		mailer:   mailer,
		denylist: denylist,
		storage:  storage,
		navStore: navStore,
		cfg:      cfg,
	}
}

// Register は新しいユーザーを登録し、免責同意を記録して有効化メールを送信します
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.UserResponse, error) {
	logger := middleware.GetLogger(ctx)
	if !req.WaiverAccepted || !req.LiabilityAccepted {
		return nil, model.NewAppError("WAIVER_NOT_ACCEPTED", "免責事項と責任の引き受けへの同意が必要です。", "waiver_accepted", model.ErrInvalidInput)
	}

	var newUser *model.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.repos.User.FindByEmail(ctx, tx, req.Email)
		if err == nil {
			logger.Warn("Email already exists", "email", req.Email)
			return model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "email", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check email existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "パスワードの処理中にエラーが発生しました。", "", err)
		}
		hash := string(hashedPassword)

		user := &model.User{
			UserID:   uuid.New(),
			Email:    req.Email,
			IsActive: false,
		}
		if err := s.repos.User.Create(ctx, tx, user); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "email", model.ErrConflict)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザーの作成に失敗しました。", "", err)
		}

		identity := &model.Identity{
			UserID:       user.UserID,
			AuthProvider: model.AuthProviderLocal,
			ProviderID:   req.Email,
			PasswordHash: &hash,
		}
		if err := s.repos.Identity.Create(ctx, tx, identity); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザーの作成に失敗しました。", "", err)
		}

		acceptance := &model.LegalAcceptance{
			ID:            uuid.New(),
			UserID:        user.UserID,
			WaiverVersion: s.cfg.App.WaiverVersion,
			AcceptedAt:    time.Now(),
		}
		if err := s.repos.Legal.Create(ctx, tx, acceptance); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "同意記録の保存に失敗しました。", "", err)
		}

		tokenString, err := generateToken()
		if err != nil {
			logger.Error("Failed to generate verification token", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの生成に失敗しました。", "", err)
		}
		if err := s.repos.Token.CreateVerificationToken(ctx, tx, &model.UserVerificationToken{
			Token:     tokenString,
			UserID:    user.UserID,
			ExpiresAt: time.Now().Add(verificationTokenTTL),
		}); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの保存に失敗しました。", "", err)
		}

		// メールが送れなければ登録ごと取り消す
		if err := s.sendVerificationEmail(ctx, user.Email, tokenString); err != nil {
			logger.Error("Failed to send verification email", "error", err, "email", user.Email)
			return model.NewAppError("EMAIL_SEND_FAILED", "確認メールの送信に失敗しました。時間をおいて再度お試しください。", "", err)
		}

		newUser = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("User registered and verification email sent", "user_id", newUser.UserID, "email", newUser.Email)
	return toUserResponse(newUser), nil
}

// VerifyAccount はトークンを検証してアカウントを有効化し、プロフィールを作成します
func (s *authService) VerifyAccount(ctx context.Context, tokenString string) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		token, err := s.repos.Token.FindVerificationToken(ctx, tx, tokenString)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				logger.Warn("Verification token not found")
				return model.NewAppError("INVALID_TOKEN", "このリンクは無効か、既に使用されています。", "token", model.ErrInvalidInput)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "エラーが発生しました。", "", err)
		}

		if time.Now().After(token.ExpiresAt) {
			logger.Warn("Verification token expired", "expires_at", token.ExpiresAt)
			_ = s.repos.Token.DeleteVerificationToken(ctx, tx, tokenString)
			return model.NewAppError("INVALID_TOKEN", "このリンクの有効期限が切れています。", "token", model.ErrInvalidInput)
		}

		if err := s.repos.User.Activate(ctx, tx, token.UserID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "アカウントが見つかりません。", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "アカウントの有効化に失敗しました。", "", err)
		}

		if err := s.ensureProfile(ctx, tx, token.UserID); err != nil {
			return err
		}

		if err := s.repos.Token.DeleteVerificationToken(ctx, tx, tokenString); err != nil {
			logger.Error("Failed to delete used verification token", "error", err)
		}

		logger.Info("Account verified successfully", "user_id", token.UserID)
		return nil
	})
}

// ensureProfile はプロフィールが無ければ Amateur / 0 で作成します
func (s *authService) ensureProfile(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	_, err := s.repos.Profile.FindByUserID(ctx, tx, userID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.NewAppError("INTERNAL_SERVER_ERROR", "プロフィールの取得に失敗しました。", "", err)
	}

	code, err := generateReferralCode()
	if err != nil {
		return model.NewAppError("INTERNAL_SERVER_ERROR", "紹介コードの生成に失敗しました。", "", err)
	}
	profile := &model.Profile{
		ProfileID:    uuid.New(),
		UserID:       userID,
		PowerLevel:   0,
		Rank:         progression.RankFor(0),
		ReferralCode: code,
	}
	if err := s.repos.Profile.Create(ctx, tx, profile); err != nil {
		return model.NewAppError("INTERNAL_SERVER_ERROR", "プロフィールの作成に失敗しました。", "", err)
	}
	return nil
}

// Login はユーザーを認証し、JWTを返します
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx).With("email", req.Email)
	authFailed := model.NewAppError("AUTHENTICATION_FAILED", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrUnauthorized)

	user, err := s.repos.User.FindByEmail(ctx, s.db, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Login failed: user not found")
			return nil, authFailed
		}
		logger.Error("Login failed: db error on FindByEmail", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}

	identity, err := s.repos.Identity.FindLocalByUserID(ctx, s.db, user.UserID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Login failed: local identity not found", "user_id", user.UserID)
			return nil, authFailed
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}
	if identity.PasswordHash == nil || bcrypt.CompareHashAndPassword([]byte(*identity.PasswordHash), []byte(req.Password)) != nil {
		logger.Warn("Login failed: password mismatch", "user_id", user.UserID)
		return nil, authFailed
	}

	if !user.IsActive {
		logger.Warn("Login failed: account not active", "user_id", user.UserID)
		return nil, model.NewAppError("ACCOUNT_NOT_ACTIVE", "アカウントが有効化されていません。登録時に送信されたメールをご確認ください。", "", model.ErrForbidden)
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    s.cfg.App.Name,
		Subject:   user.UserID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWT.AccessTokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err, "user_id", user.UserID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの生成に失敗しました。", "", err)
	}

	logger.Info("Login successful", "user_id", user.UserID)
	return &model.LoginResponse{AccessToken: signedToken}, nil
}

func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	logger := middleware.GetLogger(ctx)
	if jti == "" {
		return nil
	}
	if err := s.denylist.Revoke(ctx, jti, expiresAt); err != nil {
		logger.Error("Failed to revoke token", "error", err, "jti", jti)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "ログアウトに失敗しました。", "", err)
	}
	logger.Info("Token revoked", "jti", jti)
	return nil
}

func (s *authService) GetMe(ctx context.Context, userID uuid.UUID) (*model.UserResponse, error) {
	user, err := s.repos.User.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}
	return toUserResponse(user), nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, req *model.ChangePasswordRequest) error {
	logger := middleware.GetLogger(ctx)
	if req.NewPassword != req.ConfirmPassword {
		return model.NewAppError("PASSWORD_MISMATCH", "確認用パスワードが一致しません。", "confirm_password", model.ErrInvalidInput)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return model.NewAppError("INTERNAL_SERVER_ERROR", "パスワードの処理中にエラーが発生しました。", "", err)
	}
	if err := s.repos.Identity.UpdatePasswordHash(ctx, s.db, userID, string(hashedPassword)); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
		}
		return model.NewAppError("INTERNAL_SERVER_ERROR", "パスワードの更新に失敗しました。", "", err)
	}

	logger.Info("Password changed", "user_id", userID)
	return nil
}

func (s *authService) RequestEmailChange(ctx context.Context, userID uuid.UUID, newEmail string) error {
	logger := middleware.GetLogger(ctx)

	user, err := s.repos.User.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
		}
		return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}
	if user.Email == newEmail {
		return model.NewAppError("SAME_EMAIL", "現在と同じメールアドレスです。", "new_email", model.ErrInvalidInput)
	}
	if _, err := s.repos.User.FindByEmail(ctx, s.db, newEmail); err == nil {
		return model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "new_email", model.ErrConflict)
	} else if !errors.Is(err, model.ErrNotFound) {
		return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}

	tokenString, err := generateToken()
	if err != nil {
		return model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの生成に失敗しました。", "", err)
	}
	if err := s.repos.Token.CreateEmailChangeToken(ctx, s.db, &model.EmailChangeToken{
		Token:     tokenString,
		UserID:    userID,
		NewEmail:  newEmail,
		ExpiresAt: time.Now().Add(emailChangeTTL),
	}); err != nil {
		return model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの保存に失敗しました。", "", err)
	}

	confirmURL := fmt.Sprintf("%s/confirm-email?token=%s", s.cfg.App.FrontendURL, tokenString)
	subject := fmt.Sprintf("【%s】メールアドレス変更の確認", s.cfg.App.Name)
	body := fmt.Sprintf("メールアドレスの変更を完了するには、以下のリンクをクリックしてください:\n%s\n\nこのリンクの有効期限は24時間です。心当たりが無い場合はこのメールを破棄してください。", confirmURL)
	if err := s.mailer.Send(ctx, newEmail, subject, body); err != nil {
		return model.NewAppError("EMAIL_SEND_FAILED", "メールの送信に失敗しました。", "", err)
	}

	logger.Info("Email change confirmation sent", "user_id", userID)
	return nil
}

func (s *authService) ConfirmEmailChange(ctx context.Context, tokenString string) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		token, err := s.repos.Token.FindEmailChangeToken(ctx, tx, tokenString)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("INVALID_TOKEN", "このリンクは無効か、既に使用されています。", "token", model.ErrInvalidInput)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "エラーが発生しました。", "", err)
		}
		if time.Now().After(token.ExpiresAt) {
			_ = s.repos.Token.DeleteEmailChangeToken(ctx, tx, tokenString)
			return model.NewAppError("INVALID_TOKEN", "このリンクの有効期限が切れています。", "token", model.ErrInvalidInput)
		}

		if err := s.repos.User.UpdateEmail(ctx, tx, token.UserID, token.NewEmail); err != nil {
			switch {
			case errors.Is(err, model.ErrConflict):
				return model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "new_email", model.ErrConflict)
			case errors.Is(err, model.ErrNotFound):
				return model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "メールアドレスの更新に失敗しました。", "", err)
		}
		// local の provider_id はメールアドレスなので合わせて更新する
		if err := s.repos.Identity.UpdateProviderID(ctx, tx, token.UserID, model.AuthProviderLocal, token.NewEmail); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "メールアドレスの更新に失敗しました。", "", err)
		}
		if err := s.repos.Token.DeleteEmailChangeToken(ctx, tx, tokenString); err != nil {
			logger.Error("Failed to delete used email change token", "error", err)
		}

		logger.Info("Email changed", "user_id", token.UserID)
		return nil
	})
}

func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	logger := middleware.GetLogger(ctx).With("email", email)

	user, err := s.repos.User.FindByEmail(ctx, s.db, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// 存在しないことを悟られないように成功として扱う
			logger.Warn("Password reset requested for non-existent email")
			return nil
		}
		return model.NewAppError("INTERNAL_SERVER_ERROR", "エラーが発生しました。", "", err)
	}

	tokenString, err := generateToken()
	if err != nil {
		return model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの生成に失敗しました。", "", err)
	}
	if err := s.repos.Token.CreatePasswordResetToken(ctx, s.db, &model.PasswordResetToken{
		Token:     tokenString,
		UserID:    user.UserID,
		ExpiresAt: time.Now().Add(passwordResetTTL),
	}); err != nil {
		return model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの保存に失敗しました。", "", err)
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.App.FrontendURL, tokenString)
	subject := fmt.Sprintf("【%s】パスワードの再設定", s.cfg.App.Name)
	body := fmt.Sprintf("パスワードを再設定するには、以下のリンクをクリックしてください:\n%s\n\nこのリンクの有効期限は1時間です。", resetURL)
	if err := s.mailer.Send(ctx, user.Email, subject, body); err != nil {
		return model.NewAppError("EMAIL_SEND_FAILED", "メールの送信に失敗しました。", "", err)
	}

	logger.Info("Password reset email sent")
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, tokenString, newPassword string) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		token, err := s.repos.Token.FindPasswordResetToken(ctx, tx, tokenString)
		if err != nil {
			return model.NewAppError("INVALID_TOKEN", "このリンクは無効か、既に使用されています。", "token", model.ErrInvalidInput)
		}
		if time.Now().After(token.ExpiresAt) {
			_ = s.repos.Token.DeletePasswordResetToken(ctx, tx, tokenString)
			return model.NewAppError("INVALID_TOKEN", "このリンクの有効期限が切れています。", "token", model.ErrInvalidInput)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "パスワードの処理中にエラーが発生しました。", "", err)
		}
		if err := s.repos.Identity.UpdatePasswordHash(ctx, tx, token.UserID, string(hashedPassword)); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "パスワードの更新に失敗しました。", "", err)
		}

		if err := s.repos.Token.DeletePasswordResetToken(ctx, tx, tokenString); err != nil {
			logger.Error("Failed to delete used password reset token", "error", err)
		}

		logger.Info("Password reset successfully", "user_id", token.UserID)
		return nil
	})
}

// DeleteAccount はユーザーに紐づくデータをすべて削除します。
// DB の削除は1トランザクション、画像と画面履歴はその後でベストエフォートに消す。
func (s *authService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.repos.User.FindByID(ctx, tx, userID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
			}
			return err
		}
		steps := []func() error{
			func() error { return s.repos.Progress.DeleteByUserID(ctx, tx, userID) },
			func() error { return s.repos.Profile.DeleteByUserID(ctx, tx, userID) },
			func() error { return s.repos.Token.DeleteAllForUser(ctx, tx, userID) },
			func() error { return s.repos.Legal.DeleteByUserID(ctx, tx, userID) },
			func() error { return s.repos.Identity.DeleteByUserID(ctx, tx, userID) },
			func() error { return s.repos.User.Delete(ctx, tx, userID) },
		}
		for _, step := range steps {
			if err := step(); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return err
		}
		logger.Error("Failed to delete account", "error", err, "user_id", userID)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "アカウントの削除に失敗しました。", "", err)
	}

	if s.storage != nil {
		if err := s.storage.DeletePrefix(ctx, userID.String()+"/"); err != nil {
			logger.Warn("Failed to delete profile pictures", "error", err, "user_id", userID)
		}
	}
	if s.navStore != nil {
		if err := s.navStore.Delete(ctx, userID.String()); err != nil {
			logger.Warn("Failed to delete navigation state", "error", err, "user_id", userID)
		}
	}
	if jti, exp, ok := middleware.GetTokenFromContext(ctx); ok {
		if err := s.denylist.Revoke(ctx, jti, exp); err != nil {
			logger.Warn("Failed to revoke token after account deletion", "error", err)
		}
	}

	logger.Info("Account deleted", "user_id", userID)
	return nil
}

// --- ヘルパー関数 ---

func (s *authService) sendVerificationEmail(ctx context.Context, email, token string) error {
	logger := middleware.GetLogger(ctx)
	verifyURL := fmt.Sprintf("%s/verify-email?token=%s", s.cfg.App.FrontendURL, token)
	subject := fmt.Sprintf("【%s】アカウントの有効化をお願いします", s.cfg.App.Name)
	body := fmt.Sprintf("%sにご登録いただきありがとうございます。\n\n以下のリンクをクリックしてアカウントを有効化してください:\n%s\n\nこのリンクの有効期限は24時間です。", s.cfg.App.Name, verifyURL)

	logger.Info("Sending verification email", "to", email)
	return s.mailer.Send(ctx, email, subject, body)
}

func generateToken() (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(tokenBytes), nil
}

// 紛らわしい文字 (0/O, 1/I) は使わない
const referralAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func generateReferralCode() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = referralAlphabet[int(b[i])%len(referralAlphabet)]
	}
	return string(b), nil
}

func toUserResponse(u *model.User) *model.UserResponse {
	return &model.UserResponse{
		UserID:    u.UserID,
		Email:     u.Email,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
