package extract

import (
	"github.com/sells-group/call-sync/internal/model"
)

// Confidence scoring constants. These are a heuristic scoring function, not
// probabilities; tests pin the expected outputs.
const (
	confQuestionAnchor = 90

	confBase          = 70
	bonusStrongMarker = 20
	bonusNumeric      = 10
	penaltyShort      = 10 // span under 5 chars
	penaltyVeryShort  = 20 // span under 3 chars
)

// scoreSpan computes the confidence for a raw extracted span under a rule:
// base 70, plus the strong-indicator and numeric bonuses, minus the short-span
// penalties, clamped to [50,95].
func scoreSpan(r *Rule, span string) int {
	c := confBase
	if r.StrongMarker != nil && r.StrongMarker.MatchString(span) {
		c += bonusStrongMarker
	}
	if r.NumericBonus && containsDigit(span) {
		c += bonusNumeric
	}
	switch {
	case len(span) < 3:
		c -= penaltyVeryShort
	case len(span) < 5:
		c -= penaltyShort
	}
	return model.ClampConfidence(c)
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
