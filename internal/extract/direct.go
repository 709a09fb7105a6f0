package extract

import (
	"strings"

	"github.com/sells-group/call-sync/internal/model"
)

// directContent is tier 2: per-field keyword co-occurrence ladders mapping
// recognized phrase combinations to canonical short phrases. First matching
// ladder step wins per field.
func directContent(text string) map[string]model.ExtractedField {
	out := make(map[string]model.ExtractedField)
	lower := strings.ToLower(text)

	for i := range rules {
		r := &rules[i]
		if !gateOpen(r, lower) {
			continue
		}
		for _, step := range r.Ladder {
			if !allPresent(lower, step.Keywords) {
				continue
			}
			out[r.Key] = model.ExtractedField{
				Key:        r.Key,
				Value:      step.Canonical,
				Confidence: scoreSpan(r, step.Canonical),
				Source:     model.SourceDirectExtraction,
				Method:     "keyword_ladder",
			}
			break
		}
	}
	return out
}

// gateOpen reports whether any of the rule's gating keywords appear in the
// text. Fields with no gate are always eligible.
func gateOpen(r *Rule, lower string) bool {
	if len(r.Gate) == 0 {
		return true
	}
	for _, kw := range r.Gate {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func allPresent(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if !strings.Contains(lower, kw) {
			return false
		}
	}
	return true
}
