package navigation

import (
	"context"
	"testing"

	"dojo_path/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idPtr(id uuid.UUID) *uuid.UUID { return &id }

func TestNavigator_Navigate_InheritsIDs(t *testing.T) {
	nav := NewNavigator(50)
	discID, catID, techID := uuid.New(), uuid.New(), uuid.New()

	res, err := nav.Navigate(Home(), model.PageDiscipline, idPtr(discID), true)
	require.NoError(t, err)
	assert.Equal(t, discID, *res.State.Current.DisciplineID)
	assert.Len(t, res.State.History, 1)

	res, err = nav.Navigate(res.State, model.PageCategory, idPtr(catID), true)
	require.NoError(t, err)
	assert.Equal(t, catID, *res.State.Current.CategoryID)
	assert.Equal(t, discID, *res.State.Current.DisciplineID, "カテゴリは種目IDを引き継ぐ")

	res, err = nav.Navigate(res.State, model.PageTechnique, idPtr(techID), true)
	require.NoError(t, err)
	cur := res.State.Current
	assert.Equal(t, model.PageTechnique, cur.Kind)
	assert.Equal(t, techID, *cur.TechniqueID)
	assert.Equal(t, catID, *cur.CategoryID)
	assert.Equal(t, discID, *cur.DisciplineID)
	assert.Len(t, res.State.History, 3)
	assert.False(t, res.Redirected)
}

func TestNavigator_Navigate_Errors(t *testing.T) {
	nav := NewNavigator(50)

	_, err := nav.Navigate(Home(), model.PageKind("unknown"), nil, true)
	assert.ErrorIs(t, err, ErrUnknownPage)

	_, err = nav.Navigate(Home(), model.PageCategory, nil, true)
	assert.ErrorIs(t, err, ErrMissingID)

	nilID := uuid.Nil
	_, err = nav.Navigate(Home(), model.PageTechnique, &nilID, true)
	assert.ErrorIs(t, err, ErrMissingID)
}

func TestNavigator_Navigate_Guard(t *testing.T) {
	nav := NewNavigator(50)

	tests := []struct {
		name           string
		page           model.PageKind
		authenticated  bool
		wantKind       model.PageKind
		wantRedirected bool
	}{
		{"未ログインでもホームは表示", model.PageHome, false, model.PageHome, false},
		{"未ログインで認証画面", model.PageAuth, false, model.PageAuth, false},
		{"未ログインでダッシュボードは認証へ", model.PageDashboard, false, model.PageAuth, true},
		{"未ログインでアカウントは認証へ", model.PageAccount, false, model.PageAuth, true},
		{"未ログインでニュースも認証へ", model.PageNews, false, model.PageAuth, true},
		{"ログイン済みでダッシュボード", model.PageDashboard, true, model.PageDashboard, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := nav.Navigate(Home(), tt.page, nil, tt.authenticated)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, res.State.Current.Kind)
			assert.Equal(t, tt.wantRedirected, res.Redirected)
		})
	}
}

func TestNavigator_Back(t *testing.T) {
	nav := NewNavigator(50)

	t.Run("履歴が空ならホーム", func(t *testing.T) {
		start := model.NavigationState{Current: model.PageRef{Kind: model.PageDashboard}}
		res := nav.Back(start, true)
		assert.Equal(t, model.PageHome, res.State.Current.Kind)
		assert.Empty(t, res.State.History)
	})

	t.Run("一つ前の画面を復元", func(t *testing.T) {
		discID := uuid.New()
		r1, err := nav.Navigate(Home(), model.PageDiscipline, idPtr(discID), true)
		require.NoError(t, err)
		r2, err := nav.Navigate(r1.State, model.PageDashboard, nil, true)
		require.NoError(t, err)

		back := nav.Back(r2.State, true)
		assert.Equal(t, model.PageDiscipline, back.State.Current.Kind)
		assert.Equal(t, discID, *back.State.Current.DisciplineID)
		assert.Len(t, back.State.History, 1)
		assert.Len(t, r2.State.History, 2, "元の状態は変更しない")

		home := nav.Back(back.State, true)
		assert.Equal(t, model.PageHome, home.State.Current.Kind)
		assert.Empty(t, home.State.History)
	})

	t.Run("ログアウト後に戻ると認証へ", func(t *testing.T) {
		state := model.NavigationState{
			Current: model.PageRef{Kind: model.PageHome},
			History: []model.PageRef{{Kind: model.PageAccount}},
		}
		res := nav.Back(state, false)
		assert.True(t, res.Redirected)
		assert.Equal(t, model.PageAuth, res.State.Current.Kind)
	})
}

func TestNavigator_HistoryCap(t *testing.T) {
	nav := NewNavigator(3)
	state := Home()
	pagesSeq := []model.PageKind{model.PageDisciplines, model.PageDashboard, model.PageNews, model.PageAccount, model.PageContact}
	for _, p := range pagesSeq {
		res, err := nav.Navigate(state, p, nil, true)
		require.NoError(t, err)
		state = res.State
	}

	require.Len(t, state.History, 3)
	assert.Equal(t, model.PageDashboard, state.History[0].Kind, "古いものから捨てる")
	assert.Equal(t, model.PageAccount, state.History[2].Kind)
	assert.Equal(t, model.PageContact, state.Current.Kind)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, found, err := store.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, found)

	state := model.NavigationState{
		Current: model.PageRef{Kind: model.PageDashboard},
		History: []model.PageRef{{Kind: model.PageHome}},
	}
	require.NoError(t, store.Save(ctx, "user-1", state))

	loaded, found, err := store.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, state, loaded)

	loaded.History[0].Kind = model.PageNews
	again, _, _ := store.Load(ctx, "user-1")
	assert.Equal(t, model.PageHome, again.History[0].Kind)

	require.NoError(t, store.Delete(ctx, "user-1"))
	_, found, err = store.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, found)
}
