// Package progression は技の解放判定・セクション既読判定・経験値とランクの計算を行います。
// DBやHTTPには依存しない純粋な関数だけを置いています。
package progression

import (
	"dojo_path/internal/model"

	"github.com/google/uuid"
)

// CompletedSet は完了済みの技IDの集合
type CompletedSet map[uuid.UUID]struct{}

func NewCompletedSet(ids ...uuid.UUID) CompletedSet {
	s := make(CompletedSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s CompletedSet) Has(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}

// IsUnlocked は target が解放されているかを返します。
// 順序1は常に解放。それ以外は同じカテゴリ内で順序 n-1 の技が完了済みなら解放。
func IsUnlocked(target *model.Technique, siblings []*model.Technique, completed CompletedSet) bool {
	unlocked, _ := Evaluate(target, siblings, completed)
	return unlocked
}

// Evaluate は IsUnlocked と同じ判定を行い、直前の技が見つからなかった場合は missingPrevious=true を返します。
// 直前の技が無いデータ不整合はロック扱い。
func Evaluate(target *model.Technique, siblings []*model.Technique, completed CompletedSet) (unlocked bool, missingPrevious bool) {
	if target == nil {
		return false, false
	}
	if target.OrderIndex == 1 {
		return true, false
	}
	prev := FindByOrder(siblings, target.CategoryID, target.OrderIndex-1)
	if prev == nil {
		return false, true
	}
	return completed.Has(prev.TechniqueID), false
}

// FindByOrder は同じカテゴリ内で指定した順序の技を返します (重複時は最初に見つかったもの)
func FindByOrder(siblings []*model.Technique, categoryID uuid.UUID, order int) *model.Technique {
	for _, t := range siblings {
		if t.CategoryID == categoryID && t.OrderIndex == order {
			return t
		}
	}
	return nil
}

// NextTechnique は current より大きい順序のうち最小の技を返します。無ければ nil。
func NextTechnique(current *model.Technique, siblings []*model.Technique) *model.Technique {
	var next *model.Technique
	for _, t := range siblings {
		if t.CategoryID != current.CategoryID || t.OrderIndex <= current.OrderIndex {
			continue
		}
		if next == nil || t.OrderIndex < next.OrderIndex {
			next = t
		}
	}
	return next
}

// ProgressPercent はカテゴリ内の完了率 (0-100)
func ProgressPercent(siblings []*model.Technique, completed CompletedSet) (int, float64) {
	if len(siblings) == 0 {
		return 0, 0
	}
	count := 0
	for _, t := range siblings {
		if completed.Has(t.TechniqueID) {
			count++
		}
	}
	return count, float64(count) / float64(len(siblings)) * 100
}
