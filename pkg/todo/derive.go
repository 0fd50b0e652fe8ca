package todo

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Derive produces the list of todos eligible for display: the input
// filtered to the creation date range, then stable-sorted by the
// active sort key. The input slice is never mutated, and identical
// inputs always produce identical output.
func Derive(todos []Todo, filter Filter, sortState SortState) []Todo {
	visible := make([]Todo, 0, len(todos))
	for _, t := range todos {
		if filter.Matches(t.CreationDate) {
			visible = append(visible, t)
		}
	}

	coll := collate.New(language.English)
	sort.SliceStable(visible, func(i, j int) bool {
		cmp := compareTodos(visible[i], visible[j], sortState.Key, coll)
		if sortState.Order == SortDesc {
			cmp = -cmp
		}
		return cmp < 0
	})

	return visible
}

// compareTodos returns a three-way comparison so that descending order
// can negate it without breaking stability for ties.
func compareTodos(a, b Todo, key SortKey, coll *collate.Collator) int {
	switch key {
	case SortByTitle:
		return coll.CompareString(a.Title, b.Title)
	default:
		return a.CreationDate.Compare(b.CreationDate)
	}
}
