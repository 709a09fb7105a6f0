// Package extract turns raw call text into semantic field values via three
// ordered tiers: question-anchored mapping, direct keyword ladders, and
// context patterns with business-logic fallback.
package extract

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/call-sync/internal/config"
	"github.com/sells-group/call-sync/internal/model"
)

// Extractor runs the tiered extraction pipeline over one call event.
type Extractor struct {
	coverageTarget int
	minTextLen     int
	now            func() time.Time
}

// New creates an Extractor from pipeline config.
func New(cfg config.PipelineConfig) *Extractor {
	e := &Extractor{
		coverageTarget: cfg.CoverageTarget,
		minTextLen:     cfg.MinTextLen,
		now:            time.Now,
	}
	if e.coverageTarget <= 0 {
		e.coverageTarget = 3
	}
	if e.minTextLen <= 0 {
		e.minTextLen = 10
	}
	return e
}

// Run extracts semantic fields from the event text plus the always-on system
// fields. With no usable text, only the unconditional system fields (call
// date and memory log) come back.
func (e *Extractor) Run(ev model.CallEvent, snap model.Snapshot) map[string]model.ExtractedField {
	text := e.usableText(ev)

	fields := make(map[string]model.ExtractedField)
	if text != "" {
		merge(fields, questionAnchored(text))
		if meaningful(fields) < e.coverageTarget {
			merge(fields, directContent(text))
		}
		if meaningful(fields) < e.coverageTarget {
			merge(fields, contextPattern(text))
		}
		// The property sweep always runs over usable text, filling only
		// still-empty targets.
		propertySweep(text, fields)
	}

	e.systemFields(ev, snap, fields)

	zap.L().Debug("extract: pass complete",
		zap.String("call_id", ev.CallID),
		zap.Int("fields", len(fields)),
		zap.Int("meaningful", meaningful(fields)),
	)
	return fields
}

// usableText prefers the summary; falls back to the transcript. Text shorter
// than the minimum is treated as absent.
func (e *Extractor) usableText(ev model.CallEvent) string {
	if s := strings.TrimSpace(ev.Summary); len(s) >= e.minTextLen {
		return s
	}
	if t := strings.TrimSpace(ev.Transcript); len(t) >= e.minTextLen {
		return t
	}
	return ""
}

// merge copies fields from src that are not already present. Earlier tiers
// always win.
func merge(dst, src map[string]model.ExtractedField) {
	for k, v := range src {
		if _, exists := dst[k]; !exists {
			dst[k] = v
		}
	}
}

// meaningful counts non-system extracted fields.
func meaningful(fields map[string]model.ExtractedField) int {
	n := 0
	for _, f := range fields {
		if f.Source != model.SourceSystem {
			n++
		}
	}
	return n
}

// Fallbacks fills missing core fields with their rule fallback labels at
// minimum confidence. Only used when a caller explicitly asks for non-empty
// results for every field.
func Fallbacks(fields map[string]model.ExtractedField) {
	for i := range rules {
		r := &rules[i]
		if r.Fallback == "" {
			continue
		}
		if _, exists := fields[r.Key]; exists {
			continue
		}
		fields[r.Key] = model.ExtractedField{
			Key:        r.Key,
			Value:      r.Fallback,
			Confidence: model.ConfidenceMin,
			Source:     model.SourceBusinessLogic,
			Method:     "fallback_label",
		}
	}
}
