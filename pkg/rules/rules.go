package rules

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/tracksort/tracksort/pkg/config"
	"github.com/tracksort/tracksort/pkg/errors"
	"github.com/tracksort/tracksort/pkg/logging"
)

// Rule is a single compiled classification rule
type Rule struct {
	Name     string
	Folder   string
	Keywords []string
	Priority int

	patterns []*regexp.Regexp
}

// Matches reports whether any of the rule's keywords matches the filename
func (r *Rule) Matches(filename string) bool {
	for _, p := range r.patterns {
		if p.MatchString(filename) {
			return true
		}
	}
	return false
}

// Table is an immutable, pre-sorted sequence of rules
type Table struct {
	rules []Rule
}

// Load validates and compiles the configured rule definitions into a
// Table. Any invalid rule rejects the whole table; a partially loaded
// rule set never exists.
func Load(defs []config.RuleDef) (*Table, error) {
	logger := logging.GetLogger("rules")

	rules := make([]Rule, 0, len(defs))
	for i, def := range defs {
		if def.Name == "" {
			return nil, errors.Newf(errors.ErrRuleInvalid, "rule %d has no name", i)
		}
		if def.Folder == "" {
			return nil, errors.Newf(errors.ErrRuleInvalid, "rule %q has no destination folder", def.Name)
		}
		if len(def.Keywords) == 0 {
			return nil, errors.Newf(errors.ErrRuleInvalid, "rule %q has no keywords", def.Name)
		}

		rule := Rule{
			Name:     def.Name,
			Folder:   def.Folder,
			Keywords: def.Keywords,
			Priority: def.Priority,
		}
		for _, kw := range def.Keywords {
			if strings.TrimSpace(kw) == "" {
				return nil, errors.Newf(errors.ErrRuleInvalid, "rule %q has an empty keyword", def.Name)
			}
			p, err := compileKeyword(kw)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrRulePattern,
					"rule %q keyword %q", def.Name, kw)
			}
			rule.patterns = append(rule.patterns, p)
		}
		rules = append(rules, rule)
	}

	// Stable sort keeps declaration order within equal priorities
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority < rules[j].Priority
	})

	logger.Debug().Int("ruleCount", len(rules)).Msg("Rule table loaded")
	return &Table{rules: rules}, nil
}

// Rules returns the rules in evaluation order
func (t *Table) Rules() []Rule {
	return t.rules
}

// Len returns the number of rules in the table
func (t *Table) Len() int {
	return len(t.rules)
}

// compileKeyword builds the case-insensitive matcher for one keyword.
// Word boundaries are only asserted on edges that are word characters,
// so "(vocals)" still matches right after another character.
func compileKeyword(kw string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("(?i)")

	runes := []rune(kw)
	if isWordRune(runes[0]) {
		b.WriteString(`\b`)
	}
	b.WriteString(regexp.QuoteMeta(kw))
	if isWordRune(runes[len(runes)-1]) {
		b.WriteString(`\b`)
	}

	return regexp.Compile(b.String())
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
