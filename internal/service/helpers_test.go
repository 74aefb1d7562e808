package service_test

import (
	"context"
	"fmt"
	"testing"

	"dojo_path/internal/model"
	"dojo_path/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB はテストごとに独立したインメモリ SQLite を返します。
// 接続を1本に絞ってトランザクションとそれ以外のクエリが同じDBを見るようにする。
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, repository.AutoMigrate(db))
	return db
}

func strPtr(s string) *string { return &s }

// catalogFixture は種目1つ・カテゴリ1つ・技 n 個のテストデータ
type catalogFixture struct {
	discipline *model.Discipline
	category   *model.Category
	techniques []*model.Technique
}

func seedCatalog(t *testing.T, db *gorm.DB, xp ...int) *catalogFixture {
	t.Helper()
	d := &model.Discipline{DisciplineID: uuid.New(), Name: "Boxing", Slug: "boxing", IsActive: true, OrderIndex: 1}
	require.NoError(t, db.Create(d).Error)
	c := &model.Category{CategoryID: uuid.New(), DisciplineID: d.DisciplineID, Name: "Attacks", Slug: "attacks", OrderIndex: 1, IsActive: true}
	require.NoError(t, db.Create(c).Error)

	f := &catalogFixture{discipline: d, category: c}
	for i, reward := range xp {
		tech := &model.Technique{
			TechniqueID: uuid.New(),
			CategoryID:  c.CategoryID,
			Name:        fmt.Sprintf("Technique %d", i+1),
			OrderIndex:  i + 1,
			XPReward:    reward,
			How:         strPtr("stance and guard"),
			Why:         strPtr("basics"),
		}
		require.NoError(t, db.Create(tech).Error)
		f.techniques = append(f.techniques, tech)
	}
	return f
}

func seedProfile(t *testing.T, db *gorm.DB, userID uuid.UUID, power int, rank string) {
	t.Helper()
	require.NoError(t, db.Create(&model.User{UserID: userID, Email: userID.String() + "@example.com", IsActive: true}).Error)
	require.NoError(t, db.Create(&model.Profile{
		ProfileID:    uuid.New(),
		UserID:       userID,
		PowerLevel:   power,
		Rank:         rank,
		ReferralCode: userID.String()[:8],
	}).Error)
}

func seedCompleted(t *testing.T, db *gorm.DB, userID, techniqueID uuid.UUID) {
	t.Helper()
	require.NoError(t, db.Create(&model.ProgressRecord{
		ProgressID:   uuid.New(),
		UserID:       userID,
		TechniqueID:  techniqueID,
		Completed:    true,
		SectionsRead: datatypes.NewJSONType(model.SectionReadMap{}),
	}).Error)
}

func findProgress(t *testing.T, db *gorm.DB, userID, techniqueID uuid.UUID) *model.ProgressRecord {
	t.Helper()
	rec, err := repository.NewGormProgressRepository().FindByUserAndTechnique(context.Background(), db, userID, techniqueID)
	require.NoError(t, err)
	return rec
}

func findProfile(t *testing.T, db *gorm.DB, userID uuid.UUID) *model.Profile {
	t.Helper()
	p, err := repository.NewGormProfileRepository().FindByUserID(context.Background(), db, userID)
	require.NoError(t, err)
	return p
}

func appErrCode(t *testing.T, err error) string {
	t.Helper()
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Detail.Code
}
