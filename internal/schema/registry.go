package schema

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/sells-group/call-sync/internal/model"
)

// Registry is an indexed, immutable snapshot of the target object's fields.
type Registry struct {
	Fields []model.FieldSchema
	byNorm map[string]*model.FieldSchema
}

// NewRegistry indexes fields by normalized display name and normalized API
// name. Display names win on collision so the alias table stays predictable.
func NewRegistry(fields []model.FieldSchema) *Registry {
	r := &Registry{
		Fields: fields,
		byNorm: make(map[string]*model.FieldSchema, len(fields)*2),
	}
	for i := range r.Fields {
		f := &r.Fields[i]
		if n := NormalizeName(f.ID); n != "" {
			if _, taken := r.byNorm[n]; !taken {
				r.byNorm[n] = f
			}
		}
	}
	for i := range r.Fields {
		f := &r.Fields[i]
		if n := NormalizeName(f.Name); n != "" {
			r.byNorm[n] = f
		}
	}
	return r
}

// ByNormName looks up a field by any name form: display name, API name, or a
// semantic key that happens to match one of them after normalization.
func (r *Registry) ByNormName(name string) *model.FieldSchema {
	return r.byNorm[NormalizeName(name)]
}

var foldCaser = cases.Fold()

// NormalizeName lowers case (Unicode fold) and strips everything but letters
// and digits, so "Motivation_To_Sell__c", "Motivation To Sell" and
// "motivation to sell" all collide.
func NormalizeName(name string) string {
	folded := foldCaser.String(name)
	// Custom-field API names carry a "__c" suffix that is not part of the name.
	folded = strings.TrimSuffix(folded, "__c")
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// defaultAliases maps extraction-side semantic keys to the canonical display
// names used when no literal schema match exists.
var defaultAliases = map[string]string{
	"motivation":         "Motivation To Sell",
	"timeline":           "Selling Timeline",
	"destination":        "Moving Destination",
	"expectations":       "Price Expectations",
	"disappointments":    "Agent Disappointments",
	"concerns":           "Seller Concerns",
	"openness":           "Open To Agent",
	"price":              "Asking Price",
	"bedrooms":           "Bedrooms",
	"bathrooms":          "Bathrooms",
	"property_type":      "Property Type",
	"call_date":          "Last Call Date",
	"call_summary":       "Last Call Summary",
	"call_direction":     "Last Call Direction",
	"call_duration":      "Last Call Duration",
	"seller_memory":      "Seller Memory",
	"call_attempts":      "Call Attempts",
	"appointment_booked": "Appointment Booked",
}
