package progression

import (
	"strings"

	"dojo_path/internal/model"
)

// sectionContent はセクションキーに対応する技の本文を返します
func sectionContent(t *model.Technique, key model.SectionKey) *string {
	switch key {
	case model.SectionWhy:
		return t.Why
	case model.SectionHow:
		return t.How
	case model.SectionMistakes:
		return t.CommonMistakes
	case model.SectionDrills:
		return t.SimpleDrills
	}
	return nil
}

// ParseSectionKey は文字列を既知のセクションキーに変換します
func ParseSectionKey(s string) (model.SectionKey, bool) {
	key := model.SectionKey(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range model.AllSectionKeys {
		if k == key {
			return k, true
		}
	}
	return "", false
}

// HasSection は技がそのセクションの本文を持っているか
func HasSection(t *model.Technique, key model.SectionKey) bool {
	c := sectionContent(t, key)
	return c != nil && strings.TrimSpace(*c) != ""
}

// AvailableSections は本文があるセクションだけを表示順で返します
func AvailableSections(t *model.Technique) []model.SectionKey {
	keys := make([]model.SectionKey, 0, len(model.AllSectionKeys))
	for _, k := range model.AllSectionKeys {
		if HasSection(t, k) {
			keys = append(keys, k)
		}
	}
	return keys
}

// AllSectionsRead は本文のあるセクションがすべて既読なら true。
// セクションが一つも無い技は常に true。
func AllSectionsRead(t *model.Technique, read model.SectionReadMap) bool {
	for _, k := range AvailableSections(t) {
		if !read[k] {
			return false
		}
	}
	return true
}

// MarkRead は key を既読にした新しいマップを返します。既に既読なら changed=false。
func MarkRead(read model.SectionReadMap, key model.SectionKey) (model.SectionReadMap, bool) {
	if read[key] {
		return read, false
	}
	updated := make(model.SectionReadMap, len(read)+1)
	for k, v := range read {
		updated[k] = v
	}
	updated[key] = true
	return updated, true
}
