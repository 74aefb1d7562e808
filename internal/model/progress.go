// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SectionKey は技ページの折りたたみセクションの種類です
type SectionKey string

const (
	SectionWhy      SectionKey = "why"
	SectionHow      SectionKey = "how"
	SectionMistakes SectionKey = "mistakes"
	SectionDrills   SectionKey = "drills"
)

// AllSectionKeys は表示順のセクション一覧
var AllSectionKeys = []SectionKey{SectionWhy, SectionHow, SectionMistakes, SectionDrills}

// SectionReadMap はセクション名 -> 既読フラグ
type SectionReadMap map[SectionKey]bool

// ProgressRecord はユーザー×技ごとの学習進捗を表します
type ProgressRecord struct {
	ProgressID   uuid.UUID                          `gorm:"type:uuid;primaryKey" json:"progress_id"`
	UserID       uuid.UUID                          `gorm:"type:uuid;not null;uniqueIndex:idx_user_technique" json:"user_id"`
	TechniqueID  uuid.UUID                          `gorm:"type:uuid;not null;uniqueIndex:idx_user_technique" json:"technique_id"`
	Completed    bool                               `gorm:"not null;default:false" json:"completed"`
	CompletedAt  *time.Time                         `gorm:"index" json:"completed_at,omitempty"`
	SectionsRead datatypes.JSONType[SectionReadMap] `json:"sections_read"`
	CreatedAt    time.Time                          `json:"created_at"`
	UpdatedAt    time.Time                          `json:"updated_at"`

	// 関連 (Preload用)
	Technique *Technique `gorm:"foreignKey:TechniqueID;references:TechniqueID" json:"-"`
}

func (ProgressRecord) TableName() string {
	return "user_progress"
}

// ReadMap は nil にならない既読マップを返します
func (p *ProgressRecord) ReadMap() SectionReadMap {
	m := p.SectionsRead.Data()
	if m == nil {
		return SectionReadMap{}
	}
	return m
}

// TechniqueViewResponse は技ページ表示用のレスポンス
type TechniqueViewResponse struct {
	Technique       *Technique     `json:"technique"`
	Sections        []SectionKey   `json:"sections"`
	SectionsRead    SectionReadMap `json:"sections_read"`
	Completed       bool           `json:"completed"`
	CanAdvance      bool           `json:"can_advance"`
	NextTechniqueID *uuid.UUID     `json:"next_technique_id,omitempty"`
}

// CompletionResult は技完了時の経験値・ランク計算結果
type CompletionResult struct {
	XPGained         int    `json:"xp_gained"`
	NewPowerLevel    int    `json:"new_power_level"`
	PreviousRank     string `json:"previous_rank"`
	NewRank          string `json:"new_rank"`
	RankChanged      bool   `json:"rank_changed"`
	AlreadyCompleted bool   `json:"already_completed"`
}

// NextTechniqueResponse は「次の技へ」のレスポンス
type NextTechniqueResponse struct {
	TechniqueID uuid.UUID `json:"technique_id"`
	Name        string    `json:"name"`
	OrderIndex  int       `json:"order_index"`
}

// RecentCompletion はダッシュボードの最近の完了履歴
type RecentCompletion struct {
	TechniqueID uuid.UUID  `json:"technique_id"`
	Name        string     `json:"name"`
	XPReward    int        `json:"xp_reward"`
	CompletedAt *time.Time `json:"completed_at"`
}

// NextTraining はダッシュボードの「次のトレーニング」
type NextTraining struct {
	Discipline  string    `json:"discipline"`
	Category    string    `json:"category"`
	Technique   string    `json:"technique"`
	TechniqueID uuid.UUID `json:"technique_id"`
}

// DashboardResponse はダッシュボード表示用の集計
type DashboardResponse struct {
	Profile             *Profile           `json:"profile"`
	RankProgress        RankProgress       `json:"rank_progress"`
	TotalTechniques     int64              `json:"total_techniques"`
	CompletedTechniques int64              `json:"completed_techniques"`
	RecentProgress      []RecentCompletion `json:"recent_progress"`
	LastSessionAt       *time.Time         `json:"last_session_at,omitempty"`
	NextTraining        *NextTraining      `json:"next_training,omitempty"`
}
