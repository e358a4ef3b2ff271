// Package rules holds the classification rule table.
//
// Rules are loaded once from configuration, validated atomically, and
// pre-sorted by (priority ascending, declaration order ascending). After
// Load the table never changes. Keyword matching is case-insensitive and
// whole-word: "techno" matches "My Techno Mix" but never "biotechno".
// Keywords whose edges are not word characters, like "(vocals)", match
// as plain contiguous substrings at that edge.
package rules
