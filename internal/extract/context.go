package extract

import (
	"regexp"
	"strings"

	"github.com/sells-group/call-sync/internal/model"
)

// contextPattern is tier 3: per-field regex pattern families extract raw
// candidate spans, the highest-confidence span wins, then the field's
// business-logic refiner may replace the text with a canonical phrase
// (keeping the confidence).
func contextPattern(text string) map[string]model.ExtractedField {
	out := make(map[string]model.ExtractedField)
	lower := strings.ToLower(text)

	for i := range rules {
		r := &rules[i]
		if len(r.Families) == 0 || !gateOpen(r, lower) {
			continue
		}

		var best string
		var bestConf int
		var bestFamily string
		for _, fam := range r.Families {
			for _, re := range fam.Patterns {
				span := matchSpan(re, text)
				if span == "" {
					continue
				}
				if c := scoreSpan(r, span); c > bestConf {
					best, bestConf, bestFamily = span, c, fam.Name
				}
			}
		}
		if best == "" || !acceptable(r, best) {
			continue
		}

		value := best
		source := model.SourceContextPattern
		method := bestFamily + "_pattern"
		if r.Refine != nil {
			if refined, ok := r.Refine(text, best); ok {
				value = refined
				source = model.SourceBusinessLogic
				method = "refined_" + bestFamily
			}
		}
		out[r.Key] = model.ExtractedField{
			Key:        r.Key,
			Value:      value,
			Confidence: bestConf,
			Source:     source,
			Method:     method,
		}
	}
	return out
}

// matchSpan returns the first capture group when the pattern defines one and
// it matched, otherwise the whole match.
func matchSpan(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	if len(m) > 1 && m[1] != "" {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(m[0])
}

// Property-intelligence sweep patterns. The price pattern requires an explicit
// currency or magnitude word so stray "<digits> <letter>" fragments never read
// as a price.
var (
	priceSweepRe = []*regexp.Regexp{
		regexp.MustCompile(`\$\s?[\d,]+(?:\.\d+)?(?:\s?[kKmM]\b|\s?(?:million|thousand)\b)?`),
		regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s?million\b`),
	}
	bedroomsRe     = regexp.MustCompile(`(?i)\b(\d+)\s?(?:bed(?:room)?s?|br)\b`)
	bathroomsRe    = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s?(?:bath(?:room)?s?|ba)\b`)
	propertyTypeRe = regexp.MustCompile(`(?i)\b(single[- ]family|condo(?:minium)?|town\s?(?:house|home)|duplex|triplex|mobile home|manufactured home|ranch|bungalow|colonial|split[- ]level|cabin)\b`)
)

// propertySweep scans the full text once for price, bedroom/bathroom counts,
// and property type, independent of which fields earlier tiers filled. It
// only writes still-empty targets.
func propertySweep(text string, fields map[string]model.ExtractedField) {
	setIfEmpty := func(key, value string, conf int) {
		if _, exists := fields[key]; exists || value == "" {
			return
		}
		fields[key] = model.ExtractedField{
			Key:        key,
			Value:      value,
			Confidence: model.ClampConfidence(conf),
			Source:     model.SourceBusinessLogic,
			Method:     "property_sweep",
		}
	}

	for _, re := range priceSweepRe {
		if m := re.FindString(text); m != "" {
			setIfEmpty("price", strings.TrimSpace(m), confBase+bonusStrongMarker)
			break
		}
	}
	if m := bedroomsRe.FindStringSubmatch(text); m != nil {
		setIfEmpty("bedrooms", m[1], confBase+bonusNumeric)
	}
	if m := bathroomsRe.FindStringSubmatch(text); m != nil {
		setIfEmpty("bathrooms", m[1], confBase+bonusNumeric)
	}
	if m := propertyTypeRe.FindStringSubmatch(text); m != nil {
		setIfEmpty("property_type", normalizePropertyType(m[1]), confBase)
	}
}

func normalizePropertyType(raw string) string {
	t := strings.ToLower(strings.Join(strings.Fields(raw), " "))
	switch t {
	case "single-family", "single family":
		return "Single Family"
	case "condo", "condominium":
		return "Condo"
	case "townhouse", "townhome", "town house", "town home":
		return "Townhouse"
	case "mobile home", "manufactured home":
		return "Mobile Home"
	default:
		return strings.ToUpper(t[:1]) + t[1:]
	}
}
