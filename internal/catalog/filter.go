package catalog

import (
	"sort"
	"strings"
)

// CategoryAll is the sentinel category that matches every event.
const CategoryAll = "all"

// SortKey selects the comparator used to order filtered results.
type SortKey string

const (
	SortDateAsc   SortKey = "date-asc"
	SortDateDesc  SortKey = "date-desc"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
)

// Criteria is the combination of search text, category, and sort key that
// controls the visible subset of the catalog. The zero value matches
// everything and preserves input order.
type Criteria struct {
	Search   string
	Category string
	Sort     SortKey
}

// Apply filters and orders events according to the criteria. The result is
// always a fresh slice; the input and its elements are never mutated.
// Search matches case-insensitively against title or location, category
// matches exactly unless it is "all" (or empty), and both narrow the same
// set. Sorting is stable so events with equal keys keep their input order.
// An unknown sort key leaves the filtered order untouched.
func Apply(events []Event, c Criteria) []Event {
	result := make([]Event, 0, len(events))

	needle := strings.ToLower(strings.TrimSpace(c.Search))
	for _, ev := range events {
		if needle != "" &&
			!strings.Contains(strings.ToLower(ev.Title), needle) &&
			!strings.Contains(strings.ToLower(ev.Location), needle) {
			continue
		}
		if c.Category != "" && c.Category != CategoryAll && ev.Category != c.Category {
			continue
		}
		result = append(result, ev)
	}

	switch c.Sort {
	case SortDateAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Date.Before(result[j].Date)
		})
	case SortDateDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[j].Date.Before(result[i].Date)
		})
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[j].Price < result[i].Price
		})
	}

	return result
}

// Categories returns "all" followed by the distinct categories of the given
// events in first-seen order. It is recomputed from the current catalog on
// every call rather than cached.
func Categories(events []Event) []string {
	categories := []string{CategoryAll}
	seen := make(map[string]bool, len(events))
	for _, ev := range events {
		if ev.Category == "" || seen[ev.Category] {
			continue
		}
		seen[ev.Category] = true
		categories = append(categories, ev.Category)
	}
	return categories
}
