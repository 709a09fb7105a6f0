// Package resolve deduplicates update candidates per target field and vetoes
// garbage-shaped values.
package resolve

import (
	"regexp"
	"strings"

	"github.com/sells-group/call-sync/internal/model"
)

// Garbage shape rules: syntactically plausible but semantically empty values
// that must never be written, independent of confidence.
var (
	// "23 m", "14kk" style: digits plus a bare one-or-two-letter unit with
	// no currency symbol.
	digitsBareUnitRe = regexp.MustCompile(`^\d+\s*[A-Za-z]{1,2}$`)

	// Pure punctuation or whitespace.
	punctOnlyRe = regexp.MustCompile(`^[\s\p{P}\p{S}]*$`)

	// Single letter, optionally followed by a short unit token: "m", "k 2".
	letterUnitRe = regexp.MustCompile(`^[A-Za-z][\s.]*\d{0,3}$`)
)

// IsGarbage reports whether a stringified value matches a garbage shape.
// Non-string values (already coerced numbers, booleans) are never garbage.
func IsGarbage(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	if strings.ContainsRune(s, '$') {
		return false
	}
	return digitsBareUnitRe.MatchString(s) ||
		punctOnlyRe.MatchString(s) ||
		letterUnitRe.MatchString(s)
}

// Candidates picks one winner per target field id:
//
//	(a) a non-garbage value beats a garbage one unconditionally,
//	(b) otherwise higher confidence wins,
//	(c) ties keep the first-seen candidate.
//
// Output order follows first appearance of each field id.
func Candidates(cands []model.UpdateCandidate) []model.UpdateCandidate {
	winners := make(map[string]model.UpdateCandidate, len(cands))
	var order []string

	for _, c := range cands {
		cur, seen := winners[c.FieldID]
		if !seen {
			winners[c.FieldID] = c
			order = append(order, c.FieldID)
			continue
		}

		curGarbage, newGarbage := IsGarbage(cur.Value), IsGarbage(c.Value)
		switch {
		case curGarbage && !newGarbage:
			winners[c.FieldID] = c
		case !curGarbage && newGarbage:
			// keep current
		case c.Confidence > cur.Confidence:
			winners[c.FieldID] = c
		}
	}

	out := make([]model.UpdateCandidate, 0, len(order))
	for _, id := range order {
		out = append(out, winners[id])
	}
	return out
}
