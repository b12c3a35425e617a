package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_All(t *testing.T) {
	cat := New()

	careers := cat.All()
	assert.Len(t, careers, 6)
	assert.Equal(t, 6, cat.Size())

	// Seed order is the tiebreak order downstream, so it is part of the
	// contract.
	assert.Equal(t, "data-scientist", careers[0].ID)
	assert.Equal(t, "ui-ux-designer", careers[5].ID)
}

func TestCatalog_ByID(t *testing.T) {
	cat := New()

	career, ok := cat.ByID("software-engineer")
	require.True(t, ok)
	assert.Equal(t, "Software Engineer", career.Title)
	assert.Equal(t, "Technology", career.Category)
	assert.Equal(t, []string{"Programming", "Problem Solving", "System Design", "Collaboration"}, career.RequiredSkills)

	_, ok = cat.ByID("astronaut")
	assert.False(t, ok)
}

func TestCatalog_DemandScore(t *testing.T) {
	cat := New()

	assert.Equal(t, 10, cat.DemandScore("software-engineer"))
	assert.Equal(t, 9, cat.DemandScore("data-scientist"))
	assert.Equal(t, 7, cat.DemandScore("digital-marketing"))

	// Unknown careers get the midpoint rating.
	assert.Equal(t, 5, cat.DemandScore("astronaut"))
}

func TestCatalog_ByCategory(t *testing.T) {
	cat := New()

	tech := cat.ByCategory("Technology")
	require.Len(t, tech, 3)
	assert.Equal(t, "data-scientist", tech[0].ID)

	// Case insensitive.
	assert.Len(t, cat.ByCategory("technology"), 3)
	assert.Len(t, cat.ByCategory("finance"), 1)
	assert.Empty(t, cat.ByCategory("agriculture"))
}

func TestCatalog_ByDifficulty(t *testing.T) {
	cat := New()

	assert.Len(t, cat.ByDifficulty("Intermediate"), 4)
	assert.Len(t, cat.ByDifficulty("advanced"), 1)
	assert.Len(t, cat.ByDifficulty("Beginner"), 1)
	assert.Empty(t, cat.ByDifficulty("Expert"))
}

func TestCatalog_Search(t *testing.T) {
	cat := New()

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{
			name:     "title match",
			query:    "designer",
			expected: []string{"ui-ux-designer"},
		},
		{
			name:     "description match",
			query:    "investment",
			expected: []string{"financial-analyst"},
		},
		{
			name:     "category match",
			query:    "healthcare",
			expected: []string{"healthcare-admin"},
		},
		{
			name:     "no match",
			query:    "astronaut",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := cat.Search(tt.query)
			var ids []string
			for _, c := range results {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}

	// Blank queries return the whole catalog.
	assert.Len(t, cat.Search("  "), 6)
}
