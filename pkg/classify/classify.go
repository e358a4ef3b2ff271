// Package classify maps filenames to destination categories.
//
// Classification is pure: same filename, same result, no filesystem
// access. A filename that matches no rule falls back to the configured
// catch-all category; classification never fails.
package classify

import (
	"github.com/tracksort/tracksort/pkg/rules"
)

// Result is the outcome of classifying one filename
type Result struct {
	// Rule is the name of the matched rule, empty on fallback
	Rule string

	// Folder is the destination category path, e.g. "01_Electronic_Dance/House"
	Folder string

	// Matched is false when the fallback category was used
	Matched bool
}

// Classifier matches filenames against a pre-sorted rule table
type Classifier struct {
	table    *rules.Table
	fallback string
}

// New creates a Classifier over the given table. fallback is the
// category used when no rule matches.
func New(table *rules.Table, fallback string) *Classifier {
	return &Classifier{table: table, fallback: fallback}
}

// Classify returns the destination category for a filename. The first
// rule in table order with at least one matching keyword wins.
func (c *Classifier) Classify(filename string) Result {
	for _, rule := range c.table.Rules() {
		if rule.Matches(filename) {
			return Result{Rule: rule.Name, Folder: rule.Folder, Matched: true}
		}
	}
	return Result{Folder: c.fallback}
}
