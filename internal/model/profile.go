// internal/model/profile.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Profile はユーザーごとのプロフィールと経験値 (パワーレベル) を保持します
type Profile struct {
	ProfileID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"profile_id"`
	UserID              uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	FullName            *string   `json:"full_name"`
	ProfilePictureURL   *string   `json:"profile_picture_url"`
	Weight              *int      `json:"weight"`
	Height              *int      `json:"height"`
	ExperienceLevel     *string   `json:"experience_level"`
	PreferredDiscipline *string   `json:"preferred_discipline"`
	Phone               *string   `json:"phone"`
	PowerLevel          int       `gorm:"not null;default:0" json:"power_level"`
	Rank                string    `gorm:"not null;default:'Amateur'" json:"rank"`
	ReferralCode        string    `gorm:"uniqueIndex;not null" json:"referral_code"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

// UpdateProfileRequest はプロフィール部分更新リクエスト
type UpdateProfileRequest struct {
	FullName            *string `json:"full_name,omitempty" validate:"omitempty,max=100"`
	Weight              *int    `json:"weight,omitempty" validate:"omitempty,min=1,max=500"`
	Height              *int    `json:"height,omitempty" validate:"omitempty,min=1,max=300"`
	ExperienceLevel     *string `json:"experience_level,omitempty" validate:"omitempty,oneof=Beginner Intermediate Advanced Professional"`
	PreferredDiscipline *string `json:"preferred_discipline,omitempty" validate:"omitempty,max=100"`
	Phone               *string `json:"phone,omitempty" validate:"omitempty,e164"`
}

// RankProgress は次のランクまでの進捗
type RankProgress struct {
	Rank        string  `json:"rank"`
	PowerLevel  int     `json:"power_level"`
	NextRank    string  `json:"next_rank,omitempty"`
	Required    int     `json:"required,omitempty"`
	XPRemaining int     `json:"xp_remaining"`
	Percent     float64 `json:"percent"`
}

// ProfileResponse はプロフィールと紹介リンク
type ProfileResponse struct {
	Profile      *Profile     `json:"profile"`
	RankProgress RankProgress `json:"rank_progress"`
	ReferralLink string       `json:"referral_link"`
}
