package model

import "github.com/google/uuid"

// PageKind は画面の種類
type PageKind string

const (
	PageHome           PageKind = "home"
	PageAuth           PageKind = "auth"
	PageDisciplines    PageKind = "disciplines"
	PageDiscipline     PageKind = "discipline"
	PageCategory       PageKind = "category"
	PageTechnique      PageKind = "technique"
	PageDashboard      PageKind = "dashboard"
	PageAccount        PageKind = "account"
	PageNews           PageKind = "news"
	PagePrivacyPolicy  PageKind = "privacy_policy"
	PageTermsOfService PageKind = "terms_of_service"
	PageCookiePolicy   PageKind = "cookie_policy"
	PageDisclaimer     PageKind = "disclaimer"
	PageLegal          PageKind = "legal"
	PageAboutUs        PageKind = "about_us"
	PageVision         PageKind = "vision"
	PageContact        PageKind = "contact"
	PageAffiliates     PageKind = "affiliates"
)

// PageRef は画面を再構築するのに必要な最小限の情報です
type PageRef struct {
	Kind         PageKind   `json:"kind"`
	DisciplineID *uuid.UUID `json:"discipline_id,omitempty"`
	CategoryID   *uuid.UUID `json:"category_id,omitempty"`
	TechniqueID  *uuid.UUID `json:"technique_id,omitempty"`
}

// NavigationState は現在の画面と戻り履歴
type NavigationState struct {
	Current PageRef   `json:"current"`
	History []PageRef `json:"history"`
}

// NavigateRequest は画面遷移リクエスト
type NavigateRequest struct {
	Page PageKind   `json:"page" validate:"required"`
	ID   *uuid.UUID `json:"id,omitempty"`
}

// NavigationResponse は遷移後の状態
type NavigationResponse struct {
	Current     PageRef `json:"current"`
	Depth       int     `json:"depth"`
	Redirected  bool    `json:"redirected"`
	ScrollToTop bool    `json:"scroll_to_top"`
}
