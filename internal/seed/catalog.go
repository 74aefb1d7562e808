// internal/seed/catalog.go
package seed

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"dojo_path/internal/model"
	"dojo_path/internal/repository"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// CatalogFile は catalog.yaml のルート
type CatalogFile struct {
	Disciplines []DisciplineSeed `yaml:"disciplines"`
}

type DisciplineSeed struct {
	Name        string         `yaml:"name"`
	Slug        string         `yaml:"slug"`
	Description string         `yaml:"description"`
	Order       int            `yaml:"order"`
	Inactive    bool           `yaml:"inactive"`
	Categories  []CategorySeed `yaml:"categories"`
}

type CategorySeed struct {
	Name       string          `yaml:"name"`
	Slug       string          `yaml:"slug"`
	Order      int             `yaml:"order"`
	Inactive   bool            `yaml:"inactive"`
	Techniques []TechniqueSeed `yaml:"techniques"`
}

// TechniqueSeed の Order を省略した場合は出現順 (1 始まり) になります
type TechniqueSeed struct {
	Name           string `yaml:"name"`
	Order          int    `yaml:"order"`
	XP             int    `yaml:"xp"`
	VideoURL       string `yaml:"video_url"`
	Why            string `yaml:"why"`
	How            string `yaml:"how"`
	WhenToUse      string `yaml:"when_to_use"`
	CommonMistakes string `yaml:"common_mistakes"`
	TacticalUses   string `yaml:"tactical_uses"`
	SimpleDrills   string `yaml:"simple_drills"`
}

// Stats は投入件数
type Stats struct {
	Disciplines int
	Categories  int
	Techniques  int
}

func LoadCatalogFile(path string) (*CatalogFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seed.LoadCatalogFile: %w", err)
	}
	defer f.Close()
	return ParseCatalog(f)
}

// ParseCatalog は YAML を読み込み、技の順序を補完して検証します
func ParseCatalog(r io.Reader) (*CatalogFile, error) {
	var file CatalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("seed.ParseCatalog: %w", err)
	}
	if err := file.normalize(); err != nil {
		return nil, err
	}
	return &file, nil
}

func (f *CatalogFile) normalize() error {
	if len(f.Disciplines) == 0 {
		return fmt.Errorf("seed: no disciplines defined")
	}
	disciplineSlugs := make(map[string]bool)
	for i := range f.Disciplines {
		d := &f.Disciplines[i]
		if strings.TrimSpace(d.Name) == "" || strings.TrimSpace(d.Slug) == "" {
			return fmt.Errorf("seed: discipline #%d requires name and slug", i+1)
		}
		if disciplineSlugs[d.Slug] {
			return fmt.Errorf("seed: duplicate discipline slug %q", d.Slug)
		}
		disciplineSlugs[d.Slug] = true

		categorySlugs := make(map[string]bool)
		for j := range d.Categories {
			c := &d.Categories[j]
			if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Slug) == "" {
				return fmt.Errorf("seed: category #%d in %q requires name and slug", j+1, d.Slug)
			}
			if categorySlugs[c.Slug] {
				return fmt.Errorf("seed: duplicate category slug %q in %q", c.Slug, d.Slug)
			}
			categorySlugs[c.Slug] = true

			orders := make(map[int]bool)
			for k := range c.Techniques {
				t := &c.Techniques[k]
				if t.Order == 0 {
					t.Order = k + 1
				}
				if strings.TrimSpace(t.Name) == "" {
					return fmt.Errorf("seed: technique #%d in %s/%s requires name", k+1, d.Slug, c.Slug)
				}
				if t.Order < 1 {
					return fmt.Errorf("seed: technique %q has invalid order %d", t.Name, t.Order)
				}
				if orders[t.Order] {
					return fmt.Errorf("seed: duplicate technique order %d in %s/%s", t.Order, d.Slug, c.Slug)
				}
				orders[t.Order] = true
				if t.XP < 0 {
					return fmt.Errorf("seed: technique %q has negative xp", t.Name)
				}
			}
			// 解放判定は直前の順序を探すので、順序は 1..n の連番でなければならない
			for n := 1; n <= len(c.Techniques); n++ {
				if !orders[n] {
					return fmt.Errorf("seed: technique orders in %s/%s must be 1..%d without gaps", d.Slug, c.Slug, len(c.Techniques))
				}
			}
		}
	}
	return nil
}

// ApplyCatalog は1トランザクションでカタログを upsert します。何度実行しても同じ結果になります。
func ApplyCatalog(ctx context.Context, db *gorm.DB, repo repository.CatalogRepository, file *CatalogFile) (Stats, error) {
	var stats Stats
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, ds := range file.Disciplines {
			d := &model.Discipline{
				Name:        ds.Name,
				Slug:        ds.Slug,
				Description: optional(ds.Description),
				OrderIndex:  ds.Order,
				IsActive:    !ds.Inactive,
			}
			if err := repo.UpsertDiscipline(ctx, tx, d); err != nil {
				return fmt.Errorf("discipline %q: %w", ds.Slug, err)
			}
			stats.Disciplines++

			for _, cs := range ds.Categories {
				c := &model.Category{
					DisciplineID: d.DisciplineID,
					Name:         cs.Name,
					Slug:         cs.Slug,
					OrderIndex:   cs.Order,
					IsActive:     !cs.Inactive,
				}
				if err := repo.UpsertCategory(ctx, tx, c); err != nil {
					return fmt.Errorf("category %s/%s: %w", ds.Slug, cs.Slug, err)
				}
				stats.Categories++

				for _, ts := range cs.Techniques {
					t := &model.Technique{
						CategoryID:     c.CategoryID,
						Name:           ts.Name,
						OrderIndex:     ts.Order,
						XPReward:       ts.XP,
						VideoURL:       optional(ts.VideoURL),
						Why:            optional(ts.Why),
						How:            optional(ts.How),
						WhenToUse:      optional(ts.WhenToUse),
						CommonMistakes: optional(ts.CommonMistakes),
						TacticalUses:   optional(ts.TacticalUses),
						SimpleDrills:   optional(ts.SimpleDrills),
					}
					if err := repo.UpsertTechnique(ctx, tx, t); err != nil {
						return fmt.Errorf("technique %s/%s#%d: %w", ds.Slug, cs.Slug, ts.Order, err)
					}
					stats.Techniques++
				}
			}
		}
		return nil
	})
	if err != nil {
		return Stats{}, fmt.Errorf("seed.ApplyCatalog: %w", err)
	}
	return stats, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
