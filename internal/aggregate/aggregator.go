// =============================================================================
// Consumer Complaints Report - Aggregation Module
// =============================================================================
//
// This module folds normalized complaint records into a nested grouping:
//
//   product -> year -> company -> complaint count
//
// A (product, year) pair is a "group" and becomes one line of the report.
// The structure only grows: groups and companies are added as they are
// observed and existing counts only increase.
//
// =============================================================================

package aggregate

import (
	"maps"
	"slices"
)

// Counter maps a normalized company name to its number of complaints.
type Counter map[string]int

// Result is the full aggregation, keyed by normalized product then year.
type Result map[string]map[int]Counter

// New returns an empty Result.
func New() Result {
	return make(Result)
}

// Merge records one complaint in result, in place.
//
// MERGE POLICY:
//   - Unknown product: a new year map seeded with {company: 1}
//   - Known product, unknown year: a new counter seeded with {company: 1}
//   - Otherwise: the company count is incremented (starting from 0)
func Merge(result Result, product string, year int, company string) {
	years, ok := result[product]
	if !ok {
		result[product] = map[int]Counter{year: {company: 1}}
		return
	}

	counter, ok := years[year]
	if !ok {
		years[year] = Counter{company: 1}
		return
	}

	counter[company]++
}

// Products returns the product keys in lexicographic order.
func (r Result) Products() []string {
	return slices.Sorted(maps.Keys(r))
}

// Years returns the years recorded for product in ascending order.
func (r Result) Years(product string) []int {
	return slices.Sorted(maps.Keys(r[product]))
}

// Groups returns the number of (product, year) pairs.
func (r Result) Groups() int {
	n := 0
	for _, years := range r {
		n += len(years)
	}
	return n
}
