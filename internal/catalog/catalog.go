package catalog

import (
	"strings"

	"tableside/internal/models"
)

// Catalog is the immutable deploy-time menu. It is read-only after
// construction, so it is safe to share between handlers.
type Catalog struct {
	sections []models.MenuSection
}

// New creates a catalog from a fixed set of sections.
func New(sections []models.MenuSection) *Catalog {
	return &Catalog{sections: sections}
}

// Sections returns the full ordered menu.
func (c *Catalog) Sections() []models.MenuSection {
	return c.sections
}

// Find looks up a single menu item by its id across all sections.
func (c *Catalog) Find(itemID string) (*models.MenuItem, bool) {
	for _, section := range c.sections {
		for i := range section.Items {
			if section.Items[i].ID == itemID {
				return &section.Items[i], true
			}
		}
	}
	return nil, false
}

// Filter returns the subsequence of sections whose items match the query
// (case-insensitive substring on name or description) and, when sectionID
// is non-empty, belong to that section. Sections left without items are
// dropped. The result is never nil: an empty filtered menu is an empty
// slice, distinct from a missing catalog.
func (c *Catalog) Filter(query, sectionID string) []models.MenuSection {
	query = strings.ToLower(strings.TrimSpace(query))

	filtered := make([]models.MenuSection, 0, len(c.sections))
	for _, section := range c.sections {
		if sectionID != "" && section.ID != sectionID {
			continue
		}

		var items []models.MenuItem
		for _, item := range section.Items {
			if query == "" ||
				strings.Contains(strings.ToLower(item.Name), query) ||
				strings.Contains(strings.ToLower(item.Description), query) {
				items = append(items, item)
			}
		}
		if len(items) == 0 {
			continue
		}

		section.Items = items
		filtered = append(filtered, section)
	}
	return filtered
}
