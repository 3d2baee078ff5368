package listview

import (
	"strconv"
	"testing"
)

type item struct {
	ID   int64
	Name string
}

func testColumns() []Column[item] {
	return []Column[item]{
		{Key: "id", Title: "ID", Value: func(i item) string { return strconv.FormatInt(i.ID, 10) }, Match: MatchContains, Sortable: true},
		{Key: "name", Title: "Name", Value: func(i item) string { return i.Name }, Match: MatchPrefixOrContains, Sortable: true},
	}
}

func sampleRows() []item {
	return []item{
		{ID: 1, Name: "Vitamins C"},
		{ID: 2, Name: "Multivitamins"},
		{ID: 3, Name: "Paracetamol"},
		{ID: 12, Name: "Ibuprofen"},
		{ID: 21, Name: "Amoxicillin"},
	}
}

func names(rows []item) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func TestNameFilterMatchesPrefixAndSubstring(t *testing.T) {
	v := New(testColumns(), 10)
	v.SetFilter("name", "Vit")

	page := v.Render(sampleRows())
	got := names(page.Rows)
	if len(got) != 2 {
		t.Fatalf("rows = %v, want prefix and substring matches", got)
	}
	// Prefix hit ranks ahead of the mid-word match.
	if got[0] != "Vitamins C" || got[1] != "Multivitamins" {
		t.Fatalf("order = %v", got)
	}
}

func TestNameFilterIsCaseInsensitive(t *testing.T) {
	v := New(testColumns(), 10)
	v.SetFilter("name", "vIt")
	page := v.Render(sampleRows())
	if page.TotalRows != 2 {
		t.Fatalf("total = %d, want 2", page.TotalRows)
	}
}

func TestIDFilterMatchesSubstring(t *testing.T) {
	v := New(testColumns(), 10)
	v.SetFilter("id", "1")
	page := v.Render(sampleRows())
	if page.TotalRows != 3 { // ids 1, 12, 21
		t.Fatalf("total = %d, want 3 (%v)", page.TotalRows, names(page.Rows))
	}
}

func TestSortTogglesDirection(t *testing.T) {
	v := New(testColumns(), 10)
	v.Sort("name")
	page := v.Render(sampleRows())
	if names(page.Rows)[0] != "Amoxicillin" {
		t.Fatalf("ascending order = %v", names(page.Rows))
	}

	v.Sort("name")
	page = v.Render(sampleRows())
	if names(page.Rows)[0] != "Vitamins C" {
		t.Fatalf("descending order = %v", names(page.Rows))
	}
}

func TestPaginationClampsOutOfRangePage(t *testing.T) {
	v := New(testColumns(), 2)
	page := v.Render(sampleRows())
	if page.PageCount != 3 || len(page.Rows) != 2 {
		t.Fatalf("page count = %d rows = %d", page.PageCount, len(page.Rows))
	}

	v.SetPage(99)
	page = v.Render(sampleRows())
	if page.PageIndex != 2 || len(page.Rows) != 1 {
		t.Fatalf("clamped page = %d rows = %d", page.PageIndex, len(page.Rows))
	}
}

func TestSetFilterResetsToFirstPage(t *testing.T) {
	v := New(testColumns(), 2)
	v.SetPage(2)
	v.SetFilter("name", "a")
	if page := v.Render(sampleRows()); page.PageIndex != 0 {
		t.Fatalf("page = %d, want 0", page.PageIndex)
	}
}

func TestToggleColumnHidesIt(t *testing.T) {
	v := New(testColumns(), 10)
	v.ToggleColumn("id")
	cols := v.VisibleColumns()
	if len(cols) != 1 || cols[0].Key != "name" {
		t.Fatalf("visible = %+v", cols)
	}
	v.ToggleColumn("id")
	if len(v.VisibleColumns()) != 2 {
		t.Fatal("column did not come back")
	}
}

func TestRenderEmptySnapshot(t *testing.T) {
	v := New(testColumns(), 10)
	page := v.Render(nil)
	if page.PageCount != 1 || page.TotalRows != 0 {
		t.Fatalf("empty render = %+v", page)
	}
}
