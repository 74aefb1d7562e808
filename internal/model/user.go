package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ユーザーの基本情報
type User struct {
	UserID    uuid.UUID      `gorm:"type:uuid;primaryKey" json:"user_id"`
	Email     string         `gorm:"unique;not null" json:"email"`
	IsActive  bool           `json:"is_active" gorm:"default:false"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// GORM用のリレーション (JSONには含めない)
	Identities []Identity `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

type ContextKey string

const (
	UserIDKey   ContextKey = "userID"
	TokenIDKey  ContextKey = "tokenID"
	TokenExpKey ContextKey = "tokenExp"
)

// RegisterRequest は新規登録APIのリクエストボディ
type RegisterRequest struct {
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password" validate:"required,min=6,max=72"`
	WaiverAccepted    bool   `json:"waiver_accepted" validate:"eq=true"`
	LiabilityAccepted bool   `json:"liability_accepted" validate:"eq=true"`
}

// UserResponse はクライアントに返すユーザー情報
type UserResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// LegalAcceptance は免責同意の記録です
type LegalAcceptance struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_user_waiver"`
	WaiverVersion string    `gorm:"not null;uniqueIndex:uq_user_waiver"`
	AcceptedAt    time.Time `gorm:"not null"`
}

func (LegalAcceptance) TableName() string {
	return "user_legal_acceptance"
}
