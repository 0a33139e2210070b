package catalog_test

import (
	"context"
	"testing"

	"RouteMart/internal/catalog"
)

func seededProducts(t *testing.T) []catalog.Product {
	t.Helper()

	s := newStore(t)
	products, err := s.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	return products
}

func ids(ps []catalog.Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func sameIDs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFindByID(t *testing.T) {
	ps := seededProducts(t)

	p, ok := catalog.FindByID(ps, "3")
	if !ok || p.Name != "Cotton T-Shirt" {
		t.Fatalf("FindByID(3) = %+v ok=%v", p, ok)
	}
	if _, ok := catalog.FindByID(ps, "999"); ok {
		t.Fatalf("FindByID(999) found something")
	}
}

func TestFilterByCategory(t *testing.T) {
	ps := seededProducts(t)

	got := catalog.FilterByCategory(ps, "electronics", "")
	if !sameIDs(ids(got), "1", "2", "8") {
		t.Fatalf("electronics = %v", ids(got))
	}
	for _, p := range got {
		if p.Category != "electronics" {
			t.Fatalf("stray category %s", p.Category)
		}
	}

	got = catalog.FilterByCategory(ps, "electronics", "audio")
	if !sameIDs(ids(got), "1", "8") {
		t.Fatalf("electronics/audio = %v", ids(got))
	}

	// Matching is case-sensitive.
	if got := catalog.FilterByCategory(ps, "Electronics", ""); len(got) != 0 {
		t.Fatalf("Electronics matched %v", ids(got))
	}

	if got := catalog.FilterByCategory(ps, "toys", ""); len(got) != 0 {
		t.Fatalf("toys matched %v", ids(got))
	}
}

func TestSearch(t *testing.T) {
	ps := seededProducts(t)

	if got := catalog.Search(ps, "head"); !sameIDs(ids(got), "1") {
		t.Fatalf(`search "head" = %v`, ids(got))
	}
	if got := catalog.Search(ps, "HEAD"); !sameIDs(ids(got), "1") {
		t.Fatalf(`search "HEAD" = %v`, ids(got))
	}

	// Description-only and category-only hits both count: any field may match.
	if got := catalog.Search(ps, "waterproof"); !sameIDs(ids(got), "8") {
		t.Fatalf(`search "waterproof" = %v`, ids(got))
	}
	if got := catalog.Search(ps, "books"); !sameIDs(ids(got), "6", "7") {
		t.Fatalf(`search "books" = %v`, ids(got))
	}

	if got := catalog.Search(ps, "zzz-no-match"); len(got) != 0 {
		t.Fatalf("no-match returned %v", ids(got))
	}

	// Empty needle is a substring of everything.
	if got := catalog.Search(ps, ""); len(got) != len(ps) {
		t.Fatalf("empty query returned %d of %d", len(got), len(ps))
	}

	// Subcategory is not part of the searchable fields here.
	if got := catalog.Search(ps, "wearables"); len(got) != 0 {
		t.Fatalf(`search "wearables" = %v`, ids(got))
	}
}

func TestMultiTermSearch(t *testing.T) {
	ps := seededProducts(t)

	got := catalog.MultiTermSearch(ps, []string{"electronics", "audio"})
	if !sameIDs(ids(got), "1", "8") {
		t.Fatalf(`terms ["electronics","audio"] = %v`, ids(got))
	}

	if got := catalog.MultiTermSearch(ps, []string{"electronics", "bogus"}); len(got) != 0 {
		t.Fatalf("bogus term matched %v", ids(got))
	}

	// All terms must hit, unlike Search's any-field OR.
	if got := catalog.MultiTermSearch(ps, []string{"ELECTRONICS"}); !sameIDs(ids(got), "1", "2", "8") {
		t.Fatalf("case-insensitive terms = %v", ids(got))
	}

	// Subcategory does participate in the multi-term text.
	if got := catalog.MultiTermSearch(ps, []string{"wearables"}); !sameIDs(ids(got), "2") {
		t.Fatalf(`terms ["wearables"] = %v`, ids(got))
	}

	if got := catalog.MultiTermSearch(ps, nil); len(got) != len(ps) {
		t.Fatalf("no terms returned %d of %d", len(got), len(ps))
	}
}

func TestFeatured(t *testing.T) {
	ps := seededProducts(t)

	got := catalog.Featured(ps)
	if !sameIDs(ids(got), "1", "2", "8") {
		t.Fatalf("featured = %v", ids(got))
	}
}

func TestSortProducts(t *testing.T) {
	ps := []catalog.Product{
		{ID: "a", Name: "banana stand", Price: 300, Stock: 2},
		{ID: "b", Name: "Apple Crate", Price: 5, Stock: 9},
		{ID: "c", Name: "cherry Box", Price: 40, Stock: 2},
	}

	got := catalog.SortProducts(ps, "name", "asc")
	if !sameIDs(ids(got), "b", "a", "c") {
		t.Fatalf("by name = %v", ids(got))
	}

	got = catalog.SortProducts(ps, "name", "desc")
	if !sameIDs(ids(got), "c", "a", "b") {
		t.Fatalf("by name desc = %v", ids(got))
	}

	// Numeric fields compare natively, not as strings.
	got = catalog.SortProducts(ps, "price", "asc")
	if !sameIDs(ids(got), "b", "c", "a") {
		t.Fatalf("by price = %v", ids(got))
	}

	// Ties keep their original relative order.
	got = catalog.SortProducts(ps, "stock", "asc")
	if !sameIDs(ids(got), "a", "c", "b") {
		t.Fatalf("by stock = %v", ids(got))
	}

	got = catalog.SortProducts(ps, "flavor", "asc")
	if !sameIDs(ids(got), "a", "b", "c") {
		t.Fatalf("unknown field reordered: %v", ids(got))
	}

	// The input slice is never touched.
	if !sameIDs(ids(ps), "a", "b", "c") {
		t.Fatalf("input mutated: %v", ids(ps))
	}
}

func TestPaginate(t *testing.T) {
	ps := seededProducts(t)

	page := catalog.Paginate(ps, 1, 3)
	if len(page.Products) != 3 || page.Total != 10 || page.Page != 1 || page.Limit != 3 {
		t.Fatalf("page 1 = %+v", page)
	}
	if page.Products[0].ID != "1" {
		t.Fatalf("page 1 starts at %s", page.Products[0].ID)
	}

	page = catalog.Paginate(ps, 4, 3)
	if len(page.Products) != 1 || page.Products[0].ID != "10" {
		t.Fatalf("page 4 = %v", ids(page.Products))
	}

	page = catalog.Paginate(ps, 9, 3)
	if len(page.Products) != 0 || page.Total != 10 {
		t.Fatalf("past-the-end page = %+v", page)
	}

	// Out-of-range inputs fall back instead of failing.
	page = catalog.Paginate(ps, 0, 0)
	if page.Page != 1 || page.Limit != 10 || len(page.Products) != 10 {
		t.Fatalf("defaults = %+v", page)
	}

	page = catalog.Paginate(ps, 1, 1000)
	if page.Limit != 10 {
		t.Fatalf("oversize limit = %d", page.Limit)
	}
}
