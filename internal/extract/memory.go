package extract

import (
	"fmt"
	"strings"

	"github.com/sells-group/call-sync/internal/model"
)

// memoryOrder fixes the fragment order of the synthesized memory line.
var memoryOrder = []struct {
	key   string
	label string
}{
	{"motivation", "Motivation"},
	{"timeline", "Timeline"},
	{"destination", "Destination"},
	{"expectations", "Price expectations"},
	{"disappointments", "Disappointments"},
	{"concerns", "Concerns"},
	{"openness", "Openness"},
	{"price", "Price"},
	{"bedrooms", "Beds"},
	{"bathrooms", "Baths"},
	{"property_type", "Property type"},
}

// systemFields adds the always-on fields: current date, verbatim summary (when
// present), call metadata, and the cumulative memory log appended to the prior
// snapshot value.
func (e *Extractor) systemFields(ev model.CallEvent, snap model.Snapshot, fields map[string]model.ExtractedField) {
	date := e.now().Format("2006-01-02")

	set := func(key, value string) {
		fields[key] = model.ExtractedField{
			Key:        key,
			Value:      value,
			Confidence: model.ConfidenceMax,
			Source:     model.SourceSystem,
			Method:     "system",
		}
	}

	set("call_date", date)
	if s := strings.TrimSpace(ev.Summary); s != "" {
		set("call_summary", s)
	}
	if ev.Direction != "" {
		set("call_direction", ev.Direction)
	}
	if ev.DurationSeconds > 0 {
		set("call_duration", fmt.Sprintf("%d", ev.DurationSeconds))
	}
	set("seller_memory", appendMemory(snap.Memory, date, fields))
}

// appendMemory builds the date-stamped memory entry for this call and appends
// it to the prior value. Prior content always stays first.
func appendMemory(prior, date string, fields map[string]model.ExtractedField) string {
	var frags []string
	for _, m := range memoryOrder {
		if f, ok := fields[m.key]; ok {
			frags = append(frags, m.label+": "+f.Value)
		}
	}
	line := "No new insights"
	if len(frags) > 0 {
		line = strings.Join(frags, "; ")
	}

	entry := "--- " + date + " ---\n" + line
	if strings.TrimSpace(prior) == "" {
		return entry
	}
	return prior + "\n" + entry
}
