// Package navigation は画面遷移の履歴スタックを管理します。
// 履歴には画面を再構築するための最小限のタプル (種類 + ID) だけを積み、件数には上限を設けます。
package navigation

import (
	"errors"
	"fmt"

	"dojo_path/internal/model"

	"github.com/google/uuid"
)

var (
	ErrUnknownPage = errors.New("unknown page")
	ErrMissingID   = errors.New("page requires an id")
)

// ページごとの属性
type pageRule struct {
	needsID      bool
	requiresUser bool
}

var pages = map[model.PageKind]pageRule{
	model.PageHome:           {},
	model.PageAuth:           {},
	model.PageDisciplines:    {requiresUser: true},
	model.PageDiscipline:     {needsID: true, requiresUser: true},
	model.PageCategory:       {needsID: true, requiresUser: true},
	model.PageTechnique:      {needsID: true, requiresUser: true},
	model.PageDashboard:      {requiresUser: true},
	model.PageAccount:        {requiresUser: true},
	model.PageNews:           {requiresUser: true},
	model.PagePrivacyPolicy:  {requiresUser: true},
	model.PageTermsOfService: {requiresUser: true},
	model.PageCookiePolicy:   {requiresUser: true},
	model.PageDisclaimer:     {requiresUser: true},
	model.PageLegal:          {requiresUser: true},
	model.PageAboutUs:        {requiresUser: true},
	model.PageVision:         {requiresUser: true},
	model.PageContact:        {requiresUser: true},
	model.PageAffiliates:     {requiresUser: true},
}

// IsKnownPage は定義済みのページ種別かどうか
func IsKnownPage(kind model.PageKind) bool {
	_, ok := pages[kind]
	return ok
}

// RequiresUser は未ログインだと認証画面へ飛ばされるページかどうか
func RequiresUser(kind model.PageKind) bool {
	return pages[kind].requiresUser
}

// Home は初期状態 (ホーム画面・履歴なし)
func Home() model.NavigationState {
	return model.NavigationState{
		Current: model.PageRef{Kind: model.PageHome},
		History: []model.PageRef{},
	}
}

// Navigator は履歴上限付きの画面遷移を計算します。状態は持ちません。
type Navigator struct {
	maxHistory int
}

func NewNavigator(maxHistory int) *Navigator {
	if maxHistory <= 0 {
		maxHistory = 1
	}
	return &Navigator{maxHistory: maxHistory}
}

// Result は遷移後の状態
type Result struct {
	State      model.NavigationState
	Redirected bool
}

// Navigate は現在の画面を履歴に積み、kind の画面へ進みます。
// カテゴリは種目IDを、技はカテゴリIDと種目IDを直前の画面から引き継ぎます。
func (n *Navigator) Navigate(prev model.NavigationState, kind model.PageKind, id *uuid.UUID, authenticated bool) (Result, error) {
	rule, ok := pages[kind]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownPage, kind)
	}
	if rule.needsID && (id == nil || *id == uuid.Nil) {
		return Result{}, fmt.Errorf("%w: %s", ErrMissingID, kind)
	}

	next := model.PageRef{Kind: kind}
	switch kind {
	case model.PageDiscipline:
		next.DisciplineID = copyID(id)
	case model.PageCategory:
		next.CategoryID = copyID(id)
		next.DisciplineID = copyID(prev.Current.DisciplineID)
	case model.PageTechnique:
		next.TechniqueID = copyID(id)
		next.CategoryID = copyID(prev.Current.CategoryID)
		next.DisciplineID = copyID(prev.Current.DisciplineID)
	}

	history := n.push(prev.History, prev.Current)
	res := Result{State: model.NavigationState{Current: next, History: history}}
	if rule.requiresUser && !authenticated {
		res.State.Current = model.PageRef{Kind: model.PageAuth}
		res.Redirected = true
	}
	return res, nil
}

// Back は履歴の先頭を取り出して復元します。履歴が空ならホームに戻ります。
func (n *Navigator) Back(prev model.NavigationState, authenticated bool) Result {
	if len(prev.History) == 0 {
		return Result{State: Home()}
	}
	last := prev.History[len(prev.History)-1]
	history := make([]model.PageRef, len(prev.History)-1)
	copy(history, prev.History[:len(prev.History)-1])

	res := Result{State: model.NavigationState{Current: last, History: history}}
	if RequiresUser(last.Kind) && !authenticated {
		res.State.Current = model.PageRef{Kind: model.PageAuth}
		res.Redirected = true
	}
	return res
}

// push は上限を超えた分を古い順に捨てます
func (n *Navigator) push(history []model.PageRef, ref model.PageRef) []model.PageRef {
	out := make([]model.PageRef, 0, len(history)+1)
	out = append(out, history...)
	out = append(out, ref)
	if over := len(out) - n.maxHistory; over > 0 {
		out = out[over:]
	}
	return out
}

func copyID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
