// Package checker grades a document against a list of selector checks.
package checker

import (
	"sort"

	"github.com/quantmind-br/grader-go/internal/document"
	"github.com/quantmind-br/grader-go/internal/domain"
)

// Validate evaluates every check against doc and returns the results in
// check order. It performs no I/O and does not modify checks.
func Validate(doc domain.Queryer, checks []string) *Report {
	report := NewReport()
	for _, check := range checks {
		report.Set(check, doc.Has(check))
	}
	return report
}

// SortChecks returns a lexicographically sorted copy of checks
func SortChecks(checks []string) []string {
	sorted := make([]string, len(checks))
	copy(sorted, checks)
	sort.Strings(sorted)
	return sorted
}

// InvalidChecks returns an error for every check that is not a valid
// selector, in check order.
func InvalidChecks(checks []string) []*domain.InvalidSelectorError {
	var invalid []*domain.InvalidSelectorError
	for _, check := range checks {
		if err := document.CompileSelector(check); err != nil {
			invalid = append(invalid, &domain.InvalidSelectorError{Selector: check, Err: err})
		}
	}
	return invalid
}
