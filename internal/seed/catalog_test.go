package seed_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"dojo_path/internal/progression"
	"dojo_path/internal/repository"
	"dojo_path/internal/seed"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const sampleCatalog = `
disciplines:
  - name: Boxing
    slug: boxing
    order: 1
    categories:
      - name: Attacks
        slug: attacks
        order: 1
        techniques:
          - name: Jab
            xp: 60
            why: Range finder
          - name: Cross
            xp: 150
      - name: Defense
        slug: defense
        order: 2
        techniques:
          - name: Slip
            order: 1
            xp: 80
`

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

func TestParseCatalog(t *testing.T) {
	file, err := seed.ParseCatalog(strings.NewReader(sampleCatalog))
	require.NoError(t, err)
	require.Len(t, file.Disciplines, 1)

	attacks := file.Disciplines[0].Categories[0]
	assert.Equal(t, 1, attacks.Techniques[0].Order)
	assert.Equal(t, 2, attacks.Techniques[1].Order)

	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"空", "disciplines: []\n", "no disciplines"},
		{"スラッグ無し", "disciplines:\n  - name: Boxing\n", "requires name and slug"},
		{"順序の重複", `
disciplines:
  - name: Boxing
    slug: boxing
    categories:
      - name: Attacks
        slug: attacks
        techniques:
          - {name: Jab, order: 1}
          - {name: Cross, order: 1}
`, "duplicate technique order"},
		{"順序の欠番", `
disciplines:
  - name: Boxing
    slug: boxing
    categories:
      - name: Attacks
        slug: attacks
        techniques:
          - {name: Jab, order: 1}
          - {name: Hook, order: 3}
`, "must be 1..2 without gaps"},
		{"1 から始まらない", `
disciplines:
  - name: Boxing
    slug: boxing
    categories:
      - name: Attacks
        slug: attacks
        techniques:
          - {name: Cross, order: 2}
`, "must be 1..1 without gaps"},
		{"負の XP", `
disciplines:
  - name: Boxing
    slug: boxing
    categories:
      - name: Attacks
        slug: attacks
        techniques:
          - {name: Jab, xp: -5}
`, "negative xp"},
		{"未知のキー", "disciplines:\n  - name: Boxing\n    slug: boxing\n    colour: red\n", "colour"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := seed.ParseCatalog(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestApplyCatalog_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewGormCatalogRepository()

	file, err := seed.ParseCatalog(strings.NewReader(sampleCatalog))
	require.NoError(t, err)

	stats, err := seed.ApplyCatalog(ctx, db, repo, file)
	require.NoError(t, err)
	assert.Equal(t, seed.Stats{Disciplines: 1, Categories: 2, Techniques: 3}, stats)

	// 2回目は既存行を更新するだけ
	file.Disciplines[0].Categories[0].Techniques[0].XP = 70
	_, err = seed.ApplyCatalog(ctx, db, repo, file)
	require.NoError(t, err)

	count, err := repo.CountTechniques(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	d, err := repo.FindDisciplineBySlug(ctx, db, "boxing")
	require.NoError(t, err)
	c, err := repo.FindCategoryBySlug(ctx, db, d.DisciplineID, "attacks")
	require.NoError(t, err)
	techniques, err := repo.ListTechniquesByCategory(ctx, db, c.CategoryID)
	require.NoError(t, err)
	require.Len(t, techniques, 2)
	assert.Equal(t, 70, techniques[0].XPReward)
	require.NotNil(t, techniques[0].Why)
	assert.Equal(t, "Range finder", *techniques[0].Why)
	assert.Nil(t, techniques[1].Why)

	// 投入した技は直前の技を完了すれば解放される
	unlocked, missingPrevious := progression.Evaluate(techniques[1], techniques, progression.NewCompletedSet(techniques[0].TechniqueID))
	assert.True(t, unlocked)
	assert.False(t, missingPrevious)
}
