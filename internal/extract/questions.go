package extract

import (
	"strings"

	"github.com/sells-group/call-sync/internal/model"
)

// questionAnchored is tier 1: exact-match scan for known prompt questions.
// The span from just after a matched question to the next sentence boundary
// becomes the field value at fixed confidence 90.
func questionAnchored(text string) map[string]model.ExtractedField {
	out := make(map[string]model.ExtractedField)
	lower := strings.ToLower(text)
	// Lowering can change byte length (Unicode). When it does, match and
	// slice the same lowered string so offsets stay aligned.
	src := text
	if len(lower) != len(text) {
		src = lower
	}

	for i := range rules {
		r := &rules[i]
		for _, q := range r.Questions {
			lq := strings.ToLower(q)
			idx := strings.Index(lower, lq)
			if idx < 0 {
				continue
			}
			span := answerSpan(src[idx+len(lq):])
			span = stripFillers(span)
			if !acceptable(r, span) {
				continue
			}
			out[r.Key] = model.ExtractedField{
				Key:        r.Key,
				Value:      span,
				Confidence: confQuestionAnchor,
				Source:     model.SourceQuestionMapping,
				Method:     "question_anchor",
			}
			break
		}
	}
	return out
}

// answerSpan cuts the text after a question at the next sentence boundary,
// keeping the terminator. Decimal points do not end a sentence.
func answerSpan(rest string) string {
	rest = strings.TrimSpace(rest)
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case '?', '!':
			return rest[:i+1]
		case '.':
			if i+1 < len(rest) && rest[i+1] >= '0' && rest[i+1] <= '9' {
				continue
			}
			return rest[:i+1]
		}
	}
	return rest
}
