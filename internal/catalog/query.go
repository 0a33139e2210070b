package catalog

import (
	"sort"
	"strings"
)

// Query helpers are pure: they never mutate their input and always
// allocate fresh result slices, so handlers can chain them over one
// store snapshot.

// FindByID scans ps for the product with the given id.
func FindByID(ps []Product, id string) (Product, bool) {
	for _, p := range ps {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// FilterByCategory keeps products whose category matches exactly
// (case-sensitive). A non-empty subcategory narrows the match further.
func FilterByCategory(ps []Product, category, subcategory string) []Product {
	out := make([]Product, 0)
	for _, p := range ps {
		if p.Category != category {
			continue
		}
		if subcategory != "" && p.Subcategory != subcategory {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Search keeps products whose name, description or category contains the
// query, case-insensitively. Any one field matching is enough. An empty
// query matches everything, substring style.
func Search(ps []Product, query string) []Product {
	q := strings.ToLower(query)
	out := make([]Product, 0)
	for _, p := range ps {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}

// MultiTermSearch keeps products whose combined name, description,
// category and subcategory contain every term, case-insensitively.
// Unlike Search, all terms must match. Zero terms matches everything.
func MultiTermSearch(ps []Product, terms []string) []Product {
	out := make([]Product, 0)
	for _, p := range ps {
		text := strings.ToLower(p.Name + " " + p.Description + " " + p.Category + " " + p.Subcategory)
		all := true
		for _, t := range terms {
			if !strings.Contains(text, strings.ToLower(t)) {
				all = false
				break
			}
		}
		if all {
			out = append(out, p)
		}
	}
	return out
}

// Featured keeps products flagged as featured, preserving order.
func Featured(ps []Product) []Product {
	out := make([]Product, 0)
	for _, p := range ps {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// SortProducts orders a copy of ps by the given field. String fields
// compare case-insensitively, numeric fields natively. Ties keep their
// original relative order. An unknown field returns the copy unsorted;
// direction "desc" reverses the comparison.
func SortProducts(ps []Product, field, direction string) []Product {
	out := make([]Product, len(ps))
	copy(out, ps)

	var less func(a, b Product) bool
	switch field {
	case "id":
		less = func(a, b Product) bool { return strings.ToLower(a.ID) < strings.ToLower(b.ID) }
	case "name":
		less = func(a, b Product) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case "description":
		less = func(a, b Product) bool { return strings.ToLower(a.Description) < strings.ToLower(b.Description) }
	case "category":
		less = func(a, b Product) bool { return strings.ToLower(a.Category) < strings.ToLower(b.Category) }
	case "subcategory":
		less = func(a, b Product) bool { return strings.ToLower(a.Subcategory) < strings.ToLower(b.Subcategory) }
	case "price":
		less = func(a, b Product) bool { return a.Price < b.Price }
	case "stock":
		less = func(a, b Product) bool { return a.Stock < b.Stock }
	default:
		return out
	}

	if direction == "desc" {
		asc := less
		less = func(a, b Product) bool { return asc(b, a) }
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Page is one window of a product listing.
type Page struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
}

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// Paginate slices ps into the 1-based page of the given size. Page
// numbers below 1 clamp to 1; limits outside [1, 100] fall back to 10.
// Total always reports the full input length.
func Paginate(ps []Product, page, limit int) Page {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > maxPageLimit {
		limit = defaultPageLimit
	}

	start := (page - 1) * limit
	end := start + limit
	if start > len(ps) {
		start = len(ps)
	}
	if end > len(ps) {
		end = len(ps)
	}

	window := make([]Product, end-start)
	copy(window, ps[start:end])

	return Page{Products: window, Total: len(ps), Page: page, Limit: limit}
}
