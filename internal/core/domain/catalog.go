package domain

import "fmt"

type VoteOption struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Party string `json:"party"`
}

type VotingCategory struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Options     []VoteOption `json:"options"`
}

// Option looks up an option of the category by id.
func (c VotingCategory) Option(id string) (VoteOption, bool) {
	for _, opt := range c.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return VoteOption{}, false
}

// Catalog is the read-only set of categories offered in a session.
type Catalog struct {
	categories []VotingCategory
}

// NewCatalog validates and copies the given categories. Every category needs
// an id and at least one option; category ids are unique across the catalog
// and option ids are unique within their category.
func NewCatalog(categories []VotingCategory) (Catalog, error) {
	if len(categories) == 0 {
		return Catalog{}, fmt.Errorf("%w: no categories", ErrInvalidCatalog)
	}

	seen := make(map[string]struct{}, len(categories))
	copied := make([]VotingCategory, 0, len(categories))
	for _, cat := range categories {
		if cat.ID == "" {
			return Catalog{}, fmt.Errorf("%w: category without id", ErrInvalidCatalog)
		}
		if _, dup := seen[cat.ID]; dup {
			return Catalog{}, fmt.Errorf("%w: duplicate category id %q", ErrInvalidCatalog, cat.ID)
		}
		seen[cat.ID] = struct{}{}

		if len(cat.Options) == 0 {
			return Catalog{}, fmt.Errorf("%w: category %q has no options", ErrInvalidCatalog, cat.ID)
		}
		optSeen := make(map[string]struct{}, len(cat.Options))
		for _, opt := range cat.Options {
			if opt.ID == "" {
				return Catalog{}, fmt.Errorf("%w: category %q has an option without id", ErrInvalidCatalog, cat.ID)
			}
			if _, dup := optSeen[opt.ID]; dup {
				return Catalog{}, fmt.Errorf("%w: duplicate option id %q in category %q", ErrInvalidCatalog, opt.ID, cat.ID)
			}
			optSeen[opt.ID] = struct{}{}
		}

		cat.Options = append([]VoteOption(nil), cat.Options...)
		copied = append(copied, cat)
	}

	return Catalog{categories: copied}, nil
}

// Categories returns a copy of the categories in catalog order.
func (c Catalog) Categories() []VotingCategory {
	out := make([]VotingCategory, len(c.categories))
	for i, cat := range c.categories {
		cat.Options = append([]VoteOption(nil), cat.Options...)
		out[i] = cat
	}
	return out
}

func (c Catalog) Len() int {
	return len(c.categories)
}

func (c Catalog) Category(id string) (VotingCategory, bool) {
	for _, cat := range c.categories {
		if cat.ID == id {
			cat.Options = append([]VoteOption(nil), cat.Options...)
			return cat, true
		}
	}
	return VotingCategory{}, false
}

// Validate reports whether the pair identifies an option of the catalog.
func (c Catalog) Validate(categoryID, optionID string) error {
	cat, ok := c.Category(categoryID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, categoryID)
	}
	if _, ok := cat.Option(optionID); !ok {
		return fmt.Errorf("%w: %q in %q", ErrUnknownOption, optionID, categoryID)
	}
	return nil
}
