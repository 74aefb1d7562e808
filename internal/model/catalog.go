// internal/model/catalog.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Discipline は格闘技の種目 (例: Boxing) を表します
type Discipline struct {
	DisciplineID uuid.UUID `gorm:"type:uuid;primaryKey" json:"discipline_id"`
	Name         string    `gorm:"unique;not null" json:"name"`
	Slug         string    `gorm:"unique;not null" json:"slug"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	Description  *string   `json:"description,omitempty"`
	OrderIndex   int       `gorm:"not null;default:0" json:"order_index"`
	CreatedAt    time.Time `json:"created_at"`

	Categories []Category `gorm:"foreignKey:DisciplineID;references:DisciplineID" json:"-"`
}

func (Discipline) TableName() string {
	return "disciplines"
}

// Category は種目内の技のグループ (例: Attacks) です
type Category struct {
	CategoryID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"category_id"`
	DisciplineID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_category_slug" json:"discipline_id"`
	Name         string    `gorm:"not null" json:"name"`
	Slug         string    `gorm:"not null;uniqueIndex:uq_category_slug" json:"slug"`
	OrderIndex   int       `gorm:"not null;default:0" json:"order_index"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`

	Discipline *Discipline `gorm:"foreignKey:DisciplineID;references:DisciplineID" json:"-"`
}

func (Category) TableName() string {
	return "categories"
}

// Technique はカテゴリ内で順序付けされた技です。
// OrderIndex はカテゴリ内で一意かつ 1 から連番。
type Technique struct {
	TechniqueID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"technique_id"`
	CategoryID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_technique_order" json:"category_id"`
	Name           string    `gorm:"not null" json:"name"`
	OrderIndex     int       `gorm:"not null;uniqueIndex:uq_technique_order" json:"order_index"`
	VideoURL       *string   `json:"video_url,omitempty"`
	XPReward       int       `gorm:"not null;default:0;check:xp_reward >= 0" json:"xp_reward"`
	Why            *string   `json:"why,omitempty"`
	How            *string   `json:"how,omitempty"`
	WhenToUse      *string   `json:"when_to_use,omitempty"`
	CommonMistakes *string   `json:"common_mistakes,omitempty"`
	TacticalUses   *string   `json:"tactical_uses,omitempty"`
	SimpleDrills   *string   `json:"simple_drills,omitempty"`
	CreatedAt      time.Time `json:"created_at"`

	Category *Category `gorm:"foreignKey:CategoryID;references:CategoryID" json:"-"`
}

func (Technique) TableName() string {
	return "techniques"
}

// TechniqueSummary はカテゴリ画面の一覧用DTO
type TechniqueSummary struct {
	TechniqueID uuid.UUID `json:"technique_id"`
	Name        string    `json:"name"`
	OrderIndex  int       `json:"order_index"`
	XPReward    int       `json:"xp_reward"`
	Unlocked    bool      `json:"unlocked"`
	Completed   bool      `json:"completed"`
}

// CategoryDetailResponse はカテゴリと技一覧 (ロック状態付き) のレスポンス
type CategoryDetailResponse struct {
	Category        *Category          `json:"category"`
	Techniques      []TechniqueSummary `json:"techniques"`
	CompletedCount  int                `json:"completed_count"`
	ProgressPercent float64            `json:"progress_percent"`
}

// DisciplineDetailResponse は種目とカテゴリ一覧のレスポンス
type DisciplineDetailResponse struct {
	Discipline *Discipline `json:"discipline"`
	Categories []Category  `json:"categories"`
}
