//go:generate mockery --name ProgressService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"dojo_path/internal/middleware"
	"dojo_path/internal/model"
	"dojo_path/internal/progression"
	"dojo_path/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ダッシュボードに出す最近の完了数
const recentCompletionLimit = 3

type ProgressService interface {
	// GetTechnique は技ページを表示します。進捗記録が無ければこのとき作成する。
	GetTechnique(ctx context.Context, userID, techniqueID uuid.UUID) (*model.TechniqueViewResponse, error)
	MarkSectionRead(ctx context.Context, userID, techniqueID uuid.UUID, section string) (model.SectionReadMap, error)
	// CheckUnlocked は技が解放済みかを返します。CompleteTechnique の前に呼び出し側で確認する。
	CheckUnlocked(ctx context.Context, userID, techniqueID uuid.UUID) (bool, error)
	// CompleteTechnique は完了と経験値加算を1トランザクションで行います。2回目以降は何も加算しない。
	CompleteTechnique(ctx context.Context, userID, techniqueID uuid.UUID) (*model.CompletionResult, error)
	NextTechnique(ctx context.Context, userID, techniqueID uuid.UUID) (*model.NextTechniqueResponse, error)
	Dashboard(ctx context.Context, userID uuid.UUID) (*model.DashboardResponse, error)
}

type progressService struct {
	db           *gorm.DB
	catalogRepo  repository.CatalogRepository
	progressRepo repository.ProgressRepository
	profileRepo  repository.ProfileRepository
	now          func() time.Time
}

func NewProgressService(db *gorm.DB, catalogRepo repository.CatalogRepository, progressRepo repository.ProgressRepository, profileRepo repository.ProfileRepository) ProgressService {
	return &progressService{
		db:           db,
		catalogRepo:  catalogRepo,
		progressRepo: progressRepo,
		profileRepo:  profileRepo,
		now:          time.Now,
	}
}

func (s *progressService) GetTechnique(ctx context.Context, userID, techniqueID uuid.UUID) (*model.TechniqueViewResponse, error) {
	technique, siblings, err := s.loadTechnique(ctx, techniqueID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureUnlocked(ctx, userID, technique, siblings); err != nil {
		return nil, err
	}

	record, err := s.progressRepo.EnsureExists(ctx, s.db, userID, techniqueID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の取得に失敗しました。", "", err)
	}

	read := record.ReadMap()
	resp := &model.TechniqueViewResponse{
		Technique:    technique,
		Sections:     progression.AvailableSections(technique),
		SectionsRead: read,
		Completed:    record.Completed,
		CanAdvance:   progression.AllSectionsRead(technique, read),
	}
	if next := progression.NextTechnique(technique, siblings); next != nil {
		id := next.TechniqueID
		resp.NextTechniqueID = &id
	}
	return resp, nil
}

func (s *progressService) MarkSectionRead(ctx context.Context, userID, techniqueID uuid.UUID, section string) (model.SectionReadMap, error) {
	logger := middleware.GetLogger(ctx)

	key, ok := progression.ParseSectionKey(section)
	if !ok {
		return nil, model.NewAppError("INVALID_SECTION", "不明なセクションです。", "section", model.ErrInvalidInput)
	}

	technique, siblings, err := s.loadTechnique(ctx, techniqueID)
	if err != nil {
		return nil, err
	}
	if !progression.HasSection(technique, key) {
		return nil, model.NewAppError("EMPTY_SECTION", "この技にはそのセクションがありません。", "section", model.ErrInvalidInput)
	}
	if err := s.ensureUnlocked(ctx, userID, technique, siblings); err != nil {
		return nil, err
	}

	record, err := s.progressRepo.EnsureExists(ctx, s.db, userID, techniqueID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の取得に失敗しました。", "", err)
	}

	// 同時に別セクションを既読にしても上書きしないよう、行ロックを取ってから読み直す
	var updated model.SectionReadMap
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		locked, err := s.progressRepo.FindByIDForUpdate(ctx, tx, record.ProgressID)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の取得に失敗しました。", "", err)
		}
		var changed bool
		updated, changed = progression.MarkRead(locked.ReadMap(), key)
		if !changed {
			return nil
		}
		if err := s.progressRepo.UpdateSectionsRead(ctx, tx, record.ProgressID, updated); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "既読状態の保存に失敗しました。", "", err)
		}
		logger.Debug("Section marked as read", "technique_id", techniqueID, "section", key)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *progressService) CheckUnlocked(ctx context.Context, userID, techniqueID uuid.UUID) (bool, error) {
	technique, siblings, err := s.loadTechnique(ctx, techniqueID)
	if err != nil {
		return false, err
	}
	unlocked, err := s.isUnlocked(ctx, userID, technique, siblings)
	if err != nil {
		return false, err
	}
	return unlocked, nil
}

func (s *progressService) CompleteTechnique(ctx context.Context, userID, techniqueID uuid.UUID) (*model.CompletionResult, error) {
	logger := middleware.GetLogger(ctx)

	technique, err := s.catalogRepo.FindTechniqueByID(ctx, s.db, techniqueID)
	if err != nil {
		return nil, techniqueLookupError(err)
	}

	var result *model.CompletionResult
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 同じユーザーの完了処理を直列化するため、先にプロフィール行をロックする
		profile, err := s.profileRepo.FindByUserIDForUpdate(ctx, tx, userID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("PROFILE_NOT_FOUND", "プロフィールが見つかりません。", "", model.ErrNotFound)
			}
			return err
		}

		record, err := s.progressRepo.EnsureExists(ctx, tx, userID, techniqueID)
		if err != nil {
			return err
		}
		if record.Completed {
			result = alreadyCompleted(profile)
			return nil
		}

		updated, err := s.progressRepo.MarkCompleted(ctx, tx, record.ProgressID, s.now())
		if err != nil {
			return err
		}
		if !updated {
			result = alreadyCompleted(profile)
			return nil
		}

		newPower, previousRank, newRank, changed := progression.ApplyXP(profile.PowerLevel, technique.XPReward)
		if err := s.profileRepo.UpdatePowerLevel(ctx, tx, userID, newPower, newRank); err != nil {
			return err
		}

		result = &model.CompletionResult{
			XPGained:      newPower - profile.PowerLevel,
			NewPowerLevel: newPower,
			PreviousRank:  previousRank,
			NewRank:       newRank,
			RankChanged:   changed,
		}
		return nil
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Failed to complete technique", "error", err, "technique_id", techniqueID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "完了の記録に失敗しました。", "", err)
	}

	if result.AlreadyCompleted {
		logger.Info("Technique already completed", "technique_id", techniqueID)
	} else {
		logger.Info("Technique completed", "technique_id", techniqueID,
			"xp_gained", result.XPGained, "power_level", result.NewPowerLevel, "rank", result.NewRank, "rank_changed", result.RankChanged)
	}
	return result, nil
}

func alreadyCompleted(profile *model.Profile) *model.CompletionResult {
	rank := progression.RankFor(profile.PowerLevel)
	return &model.CompletionResult{
		XPGained:         0,
		NewPowerLevel:    profile.PowerLevel,
		PreviousRank:     rank,
		NewRank:          rank,
		AlreadyCompleted: true,
	}
}

func (s *progressService) NextTechnique(ctx context.Context, userID, techniqueID uuid.UUID) (*model.NextTechniqueResponse, error) {
	technique, siblings, err := s.loadTechnique(ctx, techniqueID)
	if err != nil {
		return nil, err
	}

	read := model.SectionReadMap{}
	record, err := s.progressRepo.FindByUserAndTechnique(ctx, s.db, userID, techniqueID)
	switch {
	case err == nil:
		read = record.ReadMap()
	case !errors.Is(err, model.ErrNotFound):
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の取得に失敗しました。", "", err)
	}
	if !progression.AllSectionsRead(technique, read) {
		return nil, model.NewAppError("SECTIONS_UNREAD", "すべてのセクションを読んでから次に進んでください。", "", model.ErrConflict)
	}

	next := progression.NextTechnique(technique, siblings)
	if next == nil {
		return nil, model.NewAppError("NO_NEXT_TECHNIQUE", "このカテゴリの最後の技です。", "", model.ErrNotFound)
	}
	return &model.NextTechniqueResponse{
		TechniqueID: next.TechniqueID,
		Name:        next.Name,
		OrderIndex:  next.OrderIndex,
	}, nil
}

// Dashboard は独立した集計を並行に取得します
func (s *progressService) Dashboard(ctx context.Context, userID uuid.UUID) (*model.DashboardResponse, error) {
	var (
		profile      *model.Profile
		total        int64
		completedCnt int64
		recent       []*model.ProgressRecord
		allTech      []*model.Technique
		completedIDs []uuid.UUID
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile, err = s.profileRepo.FindByUserID(gctx, s.db, userID)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.catalogRepo.CountTechniques(gctx, s.db)
		return err
	})
	g.Go(func() error {
		var err error
		completedCnt, err = s.progressRepo.CountCompleted(gctx, s.db, userID)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = s.progressRepo.RecentCompletions(gctx, s.db, userID, recentCompletionLimit)
		return err
	})
	g.Go(func() error {
		var err error
		allTech, err = s.catalogRepo.ListAllTechniques(gctx, s.db)
		return err
	})
	g.Go(func() error {
		var err error
		completedIDs, err = s.progressRepo.CompletedTechniqueIDs(gctx, s.db, userID, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("PROFILE_NOT_FOUND", "プロフィールが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ダッシュボードの取得に失敗しました。", "", err)
	}

	resp := &model.DashboardResponse{
		Profile:             profile,
		RankProgress:        progression.ProgressToNext(profile.PowerLevel),
		TotalTechniques:     total,
		CompletedTechniques: completedCnt,
		RecentProgress:      make([]model.RecentCompletion, 0, len(recent)),
	}
	for _, r := range recent {
		rc := model.RecentCompletion{TechniqueID: r.TechniqueID, CompletedAt: r.CompletedAt}
		if r.Technique != nil {
			rc.Name = r.Technique.Name
			rc.XPReward = r.Technique.XPReward
		}
		resp.RecentProgress = append(resp.RecentProgress, rc)
	}
	if len(recent) > 0 {
		resp.LastSessionAt = recent[0].CompletedAt
	}

	// 表示順で最初の未完了の技が「次のトレーニング」
	done := progression.NewCompletedSet(completedIDs...)
	for _, t := range allTech {
		if done.Has(t.TechniqueID) {
			continue
		}
		next := &model.NextTraining{Technique: t.Name, TechniqueID: t.TechniqueID}
		if t.Category != nil {
			next.Category = t.Category.Name
			if t.Category.Discipline != nil {
				next.Discipline = t.Category.Discipline.Name
			}
		}
		resp.NextTraining = next
		break
	}
	return resp, nil
}

// --- ヘルパー関数 ---

// loadTechnique は技と同じカテゴリの技一覧を取得します
func (s *progressService) loadTechnique(ctx context.Context, techniqueID uuid.UUID) (*model.Technique, []*model.Technique, error) {
	technique, err := s.catalogRepo.FindTechniqueByID(ctx, s.db, techniqueID)
	if err != nil {
		return nil, nil, techniqueLookupError(err)
	}
	siblings, err := s.catalogRepo.ListTechniquesByCategory(ctx, s.db, technique.CategoryID)
	if err != nil {
		return nil, nil, model.NewAppError("INTERNAL_SERVER_ERROR", "技の取得に失敗しました。", "", err)
	}
	return technique, siblings, nil
}

func (s *progressService) isUnlocked(ctx context.Context, userID uuid.UUID, technique *model.Technique, siblings []*model.Technique) (bool, error) {
	if technique.OrderIndex == 1 {
		return true, nil
	}
	ids, err := s.progressRepo.CompletedTechniqueIDs(ctx, s.db, userID, &technique.CategoryID)
	if err != nil {
		return false, model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の取得に失敗しました。", "", err)
	}
	unlocked, missingPrevious := progression.Evaluate(technique, siblings, progression.NewCompletedSet(ids...))
	if missingPrevious {
		middleware.GetLogger(ctx).Warn("Previous technique missing, treating as locked",
			"technique_id", technique.TechniqueID, "category_id", technique.CategoryID, "order_index", technique.OrderIndex)
	}
	return unlocked, nil
}

func (s *progressService) ensureUnlocked(ctx context.Context, userID uuid.UUID, technique *model.Technique, siblings []*model.Technique) error {
	unlocked, err := s.isUnlocked(ctx, userID, technique, siblings)
	if err != nil {
		return err
	}
	if !unlocked {
		return model.NewAppError("TECHNIQUE_LOCKED", "前の技を完了すると解放されます。", "", model.ErrLocked)
	}
	return nil
}

func techniqueLookupError(err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return model.NewAppError("TECHNIQUE_NOT_FOUND", "技が見つかりません。", "", model.ErrNotFound)
	}
	return model.NewAppError("INTERNAL_SERVER_ERROR", "技の取得に失敗しました。", "", err)
}
