package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"dojo_path/internal/model"
	"dojo_path/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, repository.AutoMigrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	id := uuid.New()
	require.NoError(t, repository.NewGormUserRepository().Create(context.Background(), db, &model.User{
		UserID: id,
		Email:  id.String() + "@example.com",
	}))
	return id
}

func TestCatalogRepository_Upserts(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewGormCatalogRepository()

	d := &model.Discipline{Name: "Boxing", Slug: "boxing", IsActive: true, OrderIndex: 2}
	require.NoError(t, repo.UpsertDiscipline(ctx, db, d))
	firstID := d.DisciplineID
	require.NotEqual(t, uuid.Nil, firstID)

	// 同じスラッグは更新になる
	again := &model.Discipline{Name: "Boxing", Slug: "boxing", IsActive: true, OrderIndex: 1}
	require.NoError(t, repo.UpsertDiscipline(ctx, db, again))
	assert.Equal(t, firstID, again.DisciplineID)

	require.NoError(t, repo.UpsertDiscipline(ctx, db, &model.Discipline{Name: "Muay Thai", Slug: "muay-thai", IsActive: true, OrderIndex: 2}))

	list, err := repo.ListDisciplines(ctx, db)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "boxing", list[0].Slug)

	c := &model.Category{DisciplineID: firstID, Name: "Attacks", Slug: "attacks", OrderIndex: 1, IsActive: true}
	require.NoError(t, repo.UpsertCategory(ctx, db, c))

	for i := 3; i >= 1; i-- {
		require.NoError(t, repo.UpsertTechnique(ctx, db, &model.Technique{CategoryID: c.CategoryID, Name: fmt.Sprintf("T%d", i), OrderIndex: i, XPReward: 10 * i}))
	}
	// 同じ順序は上書き
	require.NoError(t, repo.UpsertTechnique(ctx, db, &model.Technique{CategoryID: c.CategoryID, Name: "Jab", OrderIndex: 1, XPReward: 60}))

	techniques, err := repo.ListTechniquesByCategory(ctx, db, c.CategoryID)
	require.NoError(t, err)
	require.Len(t, techniques, 3)
	assert.Equal(t, "Jab", techniques[0].Name)
	assert.Equal(t, 60, techniques[0].XPReward)
	assert.Equal(t, 3, techniques[2].OrderIndex)

	count, err := repo.CountTechniques(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	found, err := repo.FindTechniqueByID(ctx, db, techniques[1].TechniqueID)
	require.NoError(t, err)
	require.NotNil(t, found.Category)
	require.NotNil(t, found.Category.Discipline)
	assert.Equal(t, "boxing", found.Category.Discipline.Slug)

	all, err := repo.ListAllTechniques(ctx, db)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = repo.FindCategoryBySlug(ctx, db, firstID, "defense")
	assert.ErrorIs(t, err, model.ErrNotFound)
	_, err = repo.FindDisciplineBySlug(ctx, db, "judo")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestProgressRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	catalog := repository.NewGormCatalogRepository()
	repo := repository.NewGormProgressRepository()

	d := &model.Discipline{Name: "Boxing", Slug: "boxing", IsActive: true}
	require.NoError(t, catalog.UpsertDiscipline(ctx, db, d))
	c := &model.Category{DisciplineID: d.DisciplineID, Name: "Attacks", Slug: "attacks", IsActive: true}
	require.NoError(t, catalog.UpsertCategory(ctx, db, c))
	tech := &model.Technique{CategoryID: c.CategoryID, Name: "Jab", OrderIndex: 1, XPReward: 60}
	require.NoError(t, catalog.UpsertTechnique(ctx, db, tech))
	userID := seedUser(t, db)

	t.Run("EnsureExists は2回目に既存を返す", func(t *testing.T) {
		first, err := repo.EnsureExists(ctx, db, userID, tech.TechniqueID)
		require.NoError(t, err)
		second, err := repo.EnsureExists(ctx, db, userID, tech.TechniqueID)
		require.NoError(t, err)
		assert.Equal(t, first.ProgressID, second.ProgressID)
		assert.Empty(t, second.ReadMap())
	})

	t.Run("Create の重複は ErrConflict", func(t *testing.T) {
		err := repo.Create(ctx, db, &model.ProgressRecord{UserID: userID, TechniqueID: tech.TechniqueID})
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("既読の保存", func(t *testing.T) {
		rec, err := repo.FindByUserAndTechnique(ctx, db, userID, tech.TechniqueID)
		require.NoError(t, err)
		require.NoError(t, repo.UpdateSectionsRead(ctx, db, rec.ProgressID, model.SectionReadMap{model.SectionWhy: true}))

		rec, err = repo.FindByUserAndTechnique(ctx, db, userID, tech.TechniqueID)
		require.NoError(t, err)
		assert.True(t, rec.ReadMap()[model.SectionWhy])

		assert.ErrorIs(t, repo.UpdateSectionsRead(ctx, db, uuid.New(), model.SectionReadMap{}), model.ErrNotFound)
	})

	t.Run("ロック付き取得", func(t *testing.T) {
		rec, err := repo.FindByUserAndTechnique(ctx, db, userID, tech.TechniqueID)
		require.NoError(t, err)

		err = db.Transaction(func(tx *gorm.DB) error {
			locked, err := repo.FindByIDForUpdate(ctx, tx, rec.ProgressID)
			if err != nil {
				return err
			}
			assert.True(t, locked.ReadMap()[model.SectionWhy])
			return nil
		})
		require.NoError(t, err)

		_, err = repo.FindByIDForUpdate(ctx, db, uuid.New())
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("MarkCompleted は一度だけ更新する", func(t *testing.T) {
		rec, err := repo.FindByUserAndTechnique(ctx, db, userID, tech.TechniqueID)
		require.NoError(t, err)

		updated, err := repo.MarkCompleted(ctx, db, rec.ProgressID, time.Now())
		require.NoError(t, err)
		assert.True(t, updated)
		updated, err = repo.MarkCompleted(ctx, db, rec.ProgressID, time.Now())
		require.NoError(t, err)
		assert.False(t, updated)
	})

	t.Run("完了の集計", func(t *testing.T) {
		ids, err := repo.CompletedTechniqueIDs(ctx, db, userID, &c.CategoryID)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{tech.TechniqueID}, ids)

		other := uuid.New()
		ids, err = repo.CompletedTechniqueIDs(ctx, db, userID, &other)
		require.NoError(t, err)
		assert.Empty(t, ids)

		count, err := repo.CountCompleted(ctx, db, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		recent, err := repo.RecentCompletions(ctx, db, userID, 3)
		require.NoError(t, err)
		require.Len(t, recent, 1)
		require.NotNil(t, recent[0].Technique)
		assert.Equal(t, "Jab", recent[0].Technique.Name)
	})

	t.Run("ユーザー単位の削除", func(t *testing.T) {
		require.NoError(t, repo.DeleteByUserID(ctx, db, userID))
		_, err := repo.FindByUserAndTechnique(ctx, db, userID, tech.TechniqueID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestProfileRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewGormProfileRepository()
	userID := seedUser(t, db)

	_, err := repo.FindByUserID(ctx, db, userID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, repo.Create(ctx, db, &model.Profile{ProfileID: uuid.New(), UserID: userID, Rank: "Amateur", ReferralCode: "ABCD2345"}))

	err = db.Transaction(func(tx *gorm.DB) error {
		p, err := repo.FindByUserIDForUpdate(ctx, tx, userID)
		if err != nil {
			return err
		}
		return repo.UpdatePowerLevel(ctx, tx, userID, p.PowerLevel+210, "Contender")
	})
	require.NoError(t, err)

	p, err := repo.FindByUserID(ctx, db, userID)
	require.NoError(t, err)
	assert.Equal(t, 210, p.PowerLevel)
	assert.Equal(t, "Contender", p.Rank)

	require.NoError(t, repo.UpdateFields(ctx, db, userID, map[string]interface{}{"full_name": "Rocky"}))
	p, err = repo.FindByUserID(ctx, db, userID)
	require.NoError(t, err)
	require.NotNil(t, p.FullName)
	assert.Equal(t, "Rocky", *p.FullName)

	assert.ErrorIs(t, repo.UpdatePowerLevel(ctx, db, uuid.New(), 1, "Amateur"), model.ErrNotFound)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewGormUserRepository()
	userID := seedUser(t, db)

	t.Run("メールアドレス重複は ErrConflict", func(t *testing.T) {
		err := repo.Create(ctx, db, &model.User{UserID: uuid.New(), Email: userID.String() + "@example.com"})
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("有効化", func(t *testing.T) {
		require.NoError(t, repo.Activate(ctx, db, userID))
		u, err := repo.FindByID(ctx, db, userID)
		require.NoError(t, err)
		assert.True(t, u.IsActive)
	})

	t.Run("メール変更と検索", func(t *testing.T) {
		require.NoError(t, repo.UpdateEmail(ctx, db, userID, "new@example.com"))
		u, err := repo.FindByEmail(ctx, db, "new@example.com")
		require.NoError(t, err)
		assert.Equal(t, userID, u.UserID)
	})

	t.Run("削除", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, db, userID))
		_, err := repo.FindByID(ctx, db, userID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
