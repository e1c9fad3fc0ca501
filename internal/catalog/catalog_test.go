package catalog_test

import (
	"testing"

	"tableside/internal/catalog"
	"tableside/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_Find(t *testing.T) {
	c := catalog.Default()

	item, ok := c.Find("burger-1")
	assert.True(t, ok)
	assert.Equal(t, "Signature Burger", item.Name)
	assert.Equal(t, 12.99, item.Price)

	item, ok = c.Find("no-such-item")
	assert.False(t, ok)
	assert.Nil(t, item)
}

func TestCatalog_FilterByQuery(t *testing.T) {
	c := catalog.Default()

	// Case-insensitive match against name.
	sections := c.Filter("BURGER", "")
	assert.Len(t, sections, 1)
	assert.Equal(t, "burgers", sections[0].ID)
	assert.Len(t, sections[0].Items, 3)

	// Match against description only.
	sections = c.Filter("sea salt", "")
	assert.Len(t, sections, 1)
	assert.Equal(t, "sides", sections[0].ID)
	assert.Len(t, sections[0].Items, 1)
	assert.Equal(t, "French Fries", sections[0].Items[0].Name)
}

func TestCatalog_FilterByCategory(t *testing.T) {
	c := catalog.Default()

	sections := c.Filter("", "drinks")
	assert.Len(t, sections, 1)
	assert.Equal(t, "Beverages", sections[0].Title)
	assert.Len(t, sections[0].Items, 3)

	// Category filter combines with the query.
	sections = c.Filter("tea", "drinks")
	assert.Len(t, sections, 1)
	assert.Len(t, sections[0].Items, 1)
	assert.Equal(t, "Iced Tea", sections[0].Items[0].Name)
}

func TestCatalog_FilterNoMatches(t *testing.T) {
	c := catalog.Default()

	// Empty result must be an empty slice, not nil, so callers can
	// distinguish "nothing matched" from "no catalog loaded".
	sections := c.Filter("sushi", "")
	assert.NotNil(t, sections)
	assert.Empty(t, sections)

	sections = c.Filter("burger", "drinks")
	assert.NotNil(t, sections)
	assert.Empty(t, sections)
}

func TestCatalog_FilterDoesNotMutate(t *testing.T) {
	c := catalog.New([]models.MenuSection{
		{
			ID:    "snacks",
			Title: "Snacks",
			Type:  models.SectionFood,
			Items: []models.MenuItem{
				{ID: "snack-1", Name: "Samosa", Price: 25},
				{ID: "snack-2", Name: "Pakora", Price: 60},
			},
		},
	})

	_ = c.Filter("samosa", "")
	assert.Len(t, c.Sections()[0].Items, 2)
}
