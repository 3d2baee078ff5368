// Package listview is the generic table behind every dashboard list screen:
// column-based filtering, locale-aware sorting, pagination and column
// visibility, computed over an in-memory snapshot of the entity list.
package listview

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// MatchKind selects how a column's filter text is compared.
type MatchKind int

const (
	// MatchContains accepts any row whose cell contains the query. Used
	// for identifier-like columns where operators paste fragments.
	MatchContains MatchKind = iota
	// MatchPrefixOrContains accepts prefix matches first but still falls
	// back to substring hits, so "Vit" finds "Vitamins" and "Multivit".
	MatchPrefixOrContains
)

// Column describes one table column over rows of type T.
type Column[T any] struct {
	Key      string
	Title    string
	Value    func(row T) string
	Match    MatchKind
	Sortable bool
	Hidden   bool
}

// SortOrder is the direction of the active sort.
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

// View computes the rendered page for one entity table.
type View[T any] struct {
	columns  []Column[T]
	collator *collate.Collator

	filters  map[string]string
	sortKey  string
	sortDir  SortOrder
	page     int
	pageSize int
}

// New builds a view over a column set. Sorting uses a case-insensitive
// Spanish collation so accented product and customer names order the way a
// pharmacy clerk expects.
func New[T any](columns []Column[T], pageSize int) *View[T] {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &View[T]{
		columns:  columns,
		collator: collate.New(language.Spanish, collate.IgnoreCase),
		filters:  make(map[string]string),
		pageSize: pageSize,
	}
}

// SetFilter sets the query for one column and resets to the first page.
// An empty query clears the filter.
func (v *View[T]) SetFilter(key, query string) {
	if query == "" {
		delete(v.filters, key)
	} else {
		v.filters[key] = query
	}
	v.page = 0
}

// Sort activates sorting on a column. Sorting the already-active column
// flips the direction.
func (v *View[T]) Sort(key string) {
	if v.sortKey == key {
		if v.sortDir == Ascending {
			v.sortDir = Descending
		} else {
			v.sortDir = Ascending
		}
		return
	}
	v.sortKey = key
	v.sortDir = Ascending
}

// SetPage jumps to a zero-based page. Out-of-range pages clamp in Render.
func (v *View[T]) SetPage(page int) {
	if page < 0 {
		page = 0
	}
	v.page = page
}

// ToggleColumn flips a column's visibility.
func (v *View[T]) ToggleColumn(key string) {
	for i := range v.columns {
		if v.columns[i].Key == key {
			v.columns[i].Hidden = !v.columns[i].Hidden
			return
		}
	}
}

// VisibleColumns returns the columns a renderer should draw.
func (v *View[T]) VisibleColumns() []Column[T] {
	out := make([]Column[T], 0, len(v.columns))
	for _, c := range v.columns {
		if !c.Hidden {
			out = append(out, c)
		}
	}
	return out
}

// Page is the rendered slice of rows plus paging metadata.
type Page[T any] struct {
	Rows       []T
	PageIndex  int
	PageCount  int
	TotalRows  int
	FilteredBy []string
}

// Render applies filters, sort and pagination to the snapshot.
func (v *View[T]) Render(rows []T) Page[T] {
	filtered := v.applyFilters(rows)
	v.applySort(filtered)

	total := len(filtered)
	pageCount := (total + v.pageSize - 1) / v.pageSize
	if pageCount == 0 {
		pageCount = 1
	}
	page := v.page
	if page >= pageCount {
		page = pageCount - 1
	}

	start := page * v.pageSize
	end := start + v.pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	active := make([]string, 0, len(v.filters))
	for key := range v.filters {
		active = append(active, key)
	}
	sort.Strings(active)

	return Page[T]{
		Rows:       filtered[start:end],
		PageIndex:  page,
		PageCount:  pageCount,
		TotalRows:  total,
		FilteredBy: active,
	}
}

// applyFilters keeps matching rows. When a prefix-or-contains column is
// filtered and no sort is active, prefix hits surface ahead of rows that
// only contain the query somewhere in the middle.
func (v *View[T]) applyFilters(rows []T) []T {
	prefix := make([]T, 0, len(rows))
	rest := make([]T, 0, len(rows))
	for _, row := range rows {
		ok, byPrefix := v.matches(row)
		if !ok {
			continue
		}
		if byPrefix && v.sortKey == "" {
			prefix = append(prefix, row)
		} else {
			rest = append(rest, row)
		}
	}
	return append(prefix, rest...)
}

func (v *View[T]) matches(row T) (ok, byPrefix bool) {
	byPrefix = false
	for _, col := range v.columns {
		query, found := v.filters[col.Key]
		if !found {
			continue
		}
		cell := strings.ToLower(col.Value(row))
		q := strings.ToLower(query)
		if !strings.Contains(cell, q) {
			return false, false
		}
		if col.Match == MatchPrefixOrContains && strings.HasPrefix(cell, q) {
			byPrefix = true
		}
	}
	return true, byPrefix
}

func (v *View[T]) applySort(rows []T) {
	if v.sortKey == "" {
		return
	}
	var value func(T) string
	for _, col := range v.columns {
		if col.Key == v.sortKey && col.Sortable {
			value = col.Value
			break
		}
	}
	if value == nil {
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		cmp := v.collator.CompareString(value(rows[i]), value(rows[j]))
		if v.sortDir == Descending {
			return cmp > 0
		}
		return cmp < 0
	})
}
