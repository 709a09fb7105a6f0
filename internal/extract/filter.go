package extract

import "strings"

// meaninglessResponses are context-free tokens that carry no field value.
// A span equal to one of these is discarded rather than returned.
var meaninglessResponses = map[string]struct{}{
	"yes":      {},
	"no":       {},
	"ok":       {},
	"okay":     {},
	"yeah":     {},
	"yep":      {},
	"nope":     {},
	"sure":     {},
	"maybe":    {},
	"um":       {},
	"uh":       {},
	"hmm":      {},
	"huh":      {},
	"right":    {},
	"mhm":      {},
	"uh huh":   {},
	"i guess":  {},
	"not sure": {},
	"idk":      {},
	"dunno":    {},
}

// fillerTokens are leading filler words stripped from question-anchored spans.
var fillerTokens = []string{
	"um", "uh", "well", "so", "yeah", "like", "you know", "i mean", "okay", "oh", "hmm", "honestly",
}

// acceptable reports whether a span is worth keeping for the field: at least
// the rule's minimum length and not a meaningless response.
func acceptable(r *Rule, v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return false
	}
	minLen := 2
	if r != nil && r.MinLen > 0 {
		minLen = r.MinLen
	}
	if len(v) < minLen {
		return false
	}
	norm := strings.ToLower(strings.Trim(v, " .,!?"))
	if _, ok := meaninglessResponses[norm]; ok {
		return false
	}
	return true
}

// stripFillers removes leading filler tokens ("um", "well, so...") and any
// punctuation trailing them from the start of a span.
func stripFillers(s string) string {
	s = strings.TrimSpace(s)
	for {
		lower := strings.ToLower(s)
		stripped := false
		for _, f := range fillerTokens {
			if !strings.HasPrefix(lower, f) {
				continue
			}
			rest := s[len(f):]
			// Token boundary: end of string or separator.
			if rest != "" && rest[0] != ' ' && rest[0] != ',' && rest[0] != '.' {
				continue
			}
			s = strings.TrimLeft(rest, " ,.")
			stripped = true
			break
		}
		if !stripped {
			return s
		}
	}
}
