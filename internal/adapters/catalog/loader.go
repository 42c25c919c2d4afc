package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vncsmyrnk/voteportal/internal/core/domain"
)

type fileCatalog struct {
	Categories []fileCategory `yaml:"categories"`
}

type fileCategory struct {
	ID          string       `yaml:"id"`
	Title       string       `yaml:"title"`
	Description string       `yaml:"description"`
	Options     []fileOption `yaml:"options"`
}

type fileOption struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Party string `yaml:"party"`
}

// Load reads a YAML catalog file. An empty path yields the built-in catalog.
func Load(path string) (domain.Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("failed to read catalog file: %w", err)
	}

	return Parse(data)
}

func Parse(data []byte) (domain.Catalog, error) {
	var fc fileCatalog
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return domain.Catalog{}, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	categories := make([]domain.VotingCategory, 0, len(fc.Categories))
	for _, c := range fc.Categories {
		cat := domain.VotingCategory{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
		}
		for _, o := range c.Options {
			cat.Options = append(cat.Options, domain.VoteOption{ID: o.ID, Name: o.Name, Party: o.Party})
		}
		categories = append(categories, cat)
	}

	return domain.NewCatalog(categories)
}
