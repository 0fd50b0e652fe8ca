package todo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleSelectAddsAndRemoves(t *testing.T) {
	s := seededStore()

	s.ToggleSelect(1, true)
	assert.True(t, s.IsSelected(1))
	assert.False(t, s.IsSelected(2))

	s.ToggleSelect(1, false)
	assert.False(t, s.IsSelected(1))
	assert.Equal(t, 0, s.SelectedCount())
}

func TestAllVisibleSelected(t *testing.T) {
	s := seededStore()
	assert.False(t, s.AllVisibleSelected())

	s.ToggleSelect(1, true)
	assert.False(t, s.AllVisibleSelected())

	s.ToggleSelect(2, true)
	assert.True(t, s.AllVisibleSelected())
}

func TestAllVisibleSelectedFalseOnEmptyVisible(t *testing.T) {
	s := NewStore()
	assert.False(t, s.AllVisibleSelected())

	s.LoadAll([]Todo{{ID: 1, CreationDate: day(time.February, 1)}})
	s.ToggleSelect(1, true)
	s.SetFilter("2024-05-01", "2024-06-01")

	require.Empty(t, s.Visible())
	assert.False(t, s.AllVisibleSelected())
}

func TestToggleSelectAllOnlyTouchesVisible(t *testing.T) {
	s := NewStore()
	s.LoadAll([]Todo{
		{ID: 1, CreationDate: day(time.January, 10)},
		{ID: 2, CreationDate: day(time.March, 10)},
		{ID: 3, CreationDate: day(time.March, 20)},
	})

	// Pre-select an id that the filter will hide.
	s.ToggleSelect(1, true)
	s.SetFilter("2024-03-01", "2024-03-31")
	require.Equal(t, []int{2, 3}, ids(s.Visible()))

	s.ToggleSelectAll(true)
	assert.True(t, s.IsSelected(1))
	assert.True(t, s.IsSelected(2))
	assert.True(t, s.IsSelected(3))

	// Deselect-all likewise leaves the hidden selection alone.
	s.ToggleSelectAll(false)
	assert.True(t, s.IsSelected(1))
	assert.False(t, s.IsSelected(2))
	assert.False(t, s.IsSelected(3))
}

func TestSelectionSurvivesFilterChange(t *testing.T) {
	s := NewStore()
	s.LoadAll([]Todo{
		{ID: 1, CreationDate: day(time.January, 10)},
		{ID: 2, CreationDate: day(time.February, 10)},
		{ID: 3, CreationDate: day(time.March, 10)},
	})

	// Select everything visible under filter A (January only).
	s.SetFilter("2024-01-01", "2024-01-31")
	s.ToggleSelectAll(true)
	require.True(t, s.IsSelected(1))

	// Switching to filter B must not clear prior selections.
	s.SetFilter("2024-02-01", "2024-03-31")
	assert.True(t, s.IsSelected(1))
	assert.False(t, s.AllVisibleSelected())

	s.ToggleSelectAll(true)
	assert.Equal(t, 3, s.SelectedCount())
}

func TestSelectionSurvivesSortChange(t *testing.T) {
	s := seededStore()
	s.ToggleSelect(2, true)

	s.ToggleSort(SortByTitle)
	s.ToggleSort(SortByTitle)

	assert.True(t, s.IsSelected(2))
	assert.Equal(t, 1, s.SelectedCount())
}
