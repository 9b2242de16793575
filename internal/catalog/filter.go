package catalog

import "strings"

// CategoryAll is the sentinel that disables category filtering.
const CategoryAll = "all"

// Filter produces the visible subset of the catalog. A product matches
// when its name or description contains the search text
// (case-insensitive) and its category equals the filter, unless the
// filter is the "all" sentinel. The full sequence is scanned; there is
// no indexing.
func Filter(products []Product, searchTerm, category string) []Product {
	search := strings.ToLower(searchTerm)

	var matched []Product
	for _, p := range products {
		matchesSearch := search == "" ||
			strings.Contains(strings.ToLower(p.Name), search) ||
			strings.Contains(strings.ToLower(p.Description), search)

		matchesCategory := category == "" || category == CategoryAll ||
			p.Category == category

		if matchesSearch && matchesCategory {
			matched = append(matched, p)
		}
	}

	return matched
}

// Categories derives the distinct category option set in first-seen
// order, prefixed by the "all" sentinel. Empty categories are dropped.
func Categories(products []Product) []string {
	categories := []string{CategoryAll}
	seen := make(map[string]bool)

	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}

	return categories
}
