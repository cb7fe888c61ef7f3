// Package filterlist implements a fuzzy-filtered view over a backing
// list of labels. The backing order is never mutated; filtering derives
// a visible→backing index mapping, and the cursor is always a visible
// position resolved through that mapping.
package filterlist

import (
	"sort"

	"github.com/sahilm/fuzzy"
)

type List struct {
	items   []string
	query   string
	visible []int // visible position → backing index
	cursor  int   // visible position, -1 when nothing is selectable
}

func New(items []string) List {
	l := List{}
	l.SetItems(items)
	return l
}

// SetItems replaces the backing collection and re-applies the current
// query. The cursor keeps its visible position where possible; it is
// clamped when the new mapping is shorter and cleared when it is empty.
func (l *List) SetItems(items []string) {
	pos := l.cursor
	l.items = items
	l.recompute()
	switch {
	case len(l.visible) == 0:
		l.cursor = -1
	case pos < 0:
		l.cursor = 0
	case pos >= len(l.visible):
		l.cursor = len(l.visible) - 1
	default:
		l.cursor = pos
	}
}

// SetQuery replaces the filter query, recomputes the mapping, and
// resets the cursor to the top (or clears it when nothing matches).
func (l *List) SetQuery(query string) {
	l.query = query
	l.recompute()
	if len(l.visible) == 0 {
		l.cursor = -1
	} else {
		l.cursor = 0
	}
}

// ClearQuery restores the identity mapping.
func (l *List) ClearQuery() {
	l.SetQuery("")
}

func (l *List) recompute() {
	if l.query == "" {
		l.visible = make([]int, len(l.items))
		for i := range l.items {
			l.visible[i] = i
		}
		return
	}
	// fuzzy.Find excludes non-matches but returns equal scores in
	// reversed source order, so re-sort to keep ties in backing order.
	matches := fuzzy.Find(l.query, l.items)
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Index < matches[j].Index
	})
	l.visible = make([]int, len(matches))
	for i, m := range matches {
		l.visible[i] = m.Index
	}
}

// Query returns the active filter query.
func (l List) Query() string { return l.query }

// Len returns the number of visible items.
func (l List) Len() int { return len(l.visible) }

// Cursor returns the selected visible position, -1 when empty.
func (l List) Cursor() int {
	if l.cursor < 0 || l.cursor >= len(l.visible) {
		return -1
	}
	return l.cursor
}

// Visible returns the visible→backing mapping.
func (l List) Visible() []int { return l.visible }

// Selected resolves the cursor to a backing index, or -1 when the
// mapping is empty or the cursor is stale.
func (l List) Selected() int {
	if l.cursor < 0 || l.cursor >= len(l.visible) {
		return -1
	}
	return l.visible[l.cursor]
}

// SelectedLabel returns the label at the cursor, or "" with false when
// nothing is selected.
func (l List) SelectedLabel() (string, bool) {
	idx := l.Selected()
	if idx < 0 || idx >= len(l.items) {
		return "", false
	}
	return l.items[idx], true
}

// LabelAt returns the label for a visible position.
func (l List) LabelAt(pos int) (string, bool) {
	if pos < 0 || pos >= len(l.visible) {
		return "", false
	}
	idx := l.visible[pos]
	if idx < 0 || idx >= len(l.items) {
		return "", false
	}
	return l.items[idx], true
}

// Next advances the cursor, wrapping at the end.
func (l *List) Next() {
	if len(l.visible) == 0 {
		return
	}
	if l.cursor < 0 {
		l.cursor = 0
		return
	}
	l.cursor = (l.cursor + 1) % len(l.visible)
}

// Prev retreats the cursor, wrapping at the start.
func (l *List) Prev() {
	if len(l.visible) == 0 {
		return
	}
	if l.cursor <= 0 {
		l.cursor = len(l.visible) - 1
		return
	}
	l.cursor--
}
