package extract

import "regexp"

// LadderRule is one step of a direct-content decision ladder: when every
// keyword is present in the text, the canonical phrase wins. Ladders are
// ordered most specific first; the first match ends the ladder.
type LadderRule struct {
	Keywords  []string
	Canonical string
}

// PatternFamily groups the context regexes for one signal family
// (financial, temporal, locational, emotional).
type PatternFamily struct {
	Name     string
	Patterns []*regexp.Regexp
}

// RefineFunc inspects the full text for stronger signals and may replace a
// raw pattern match with a canonical phrase. It never changes confidence.
type RefineFunc func(fullText, raw string) (string, bool)

// Rule is the complete per-field heuristic entry shared by all tiers.
type Rule struct {
	Key string

	// Questions are the known prompt phrasings used by tier 1.
	Questions []string

	// Gate skips the field entirely when none of these keywords appear in
	// the text. Empty means always eligible.
	Gate []string

	// Ladder is the tier-2 keyword co-occurrence ladder.
	Ladder []LadderRule

	// Families are the tier-3 context pattern families.
	Families []PatternFamily

	// Refine is the tier-3 business-logic refiner.
	Refine RefineFunc

	// Fallback is a label returned only when a caller explicitly asks for a
	// non-empty result for this field.
	Fallback string

	// MinLen is the minimum accepted value length for this field.
	MinLen int

	// StrongMarker grants the strong-indicator confidence bonus when it
	// matches the extracted span.
	StrongMarker *regexp.Regexp

	// NumericBonus grants the numeric-backed bonus (timeline-style fields).
	NumericBonus bool
}

// Pattern families shared across rules.
var (
	financialRe = []*regexp.Regexp{
		regexp.MustCompile(`\$\s?[\d,]+(?:\.\d+)?(?:\s?[kKmM]\b|\s?(?:million|thousand)\b)?`),
		regexp.MustCompile(`\b\d+(?:\.\d+)?\s?million\b`),
		regexp.MustCompile(`\b[\d,]{3,}\s?(?:dollars|bucks)\b`),
	}
	temporalRe = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:\d+|a|one|two|three|four|five|six|couple of|few)\s(?:days?|weeks?|months?|years?)\b`),
		regexp.MustCompile(`(?i)\bby (?:the )?end of (?:the )?(?:month|year|spring|summer|fall|winter)\b`),
		regexp.MustCompile(`(?i)\b(?:this|next|early|late)\s(?:spring|summer|fall|winter|month|year)\b`),
		regexp.MustCompile(`(?i)\basap\b|\bright away\b|\bas soon as possible\b`),
	}
	locationalRe = []*regexp.Regexp{
		regexp.MustCompile(`\b(?:[Mm]ov(?:e|ing)|[Rr]elocat(?:e|ing)|[Hh]ead(?:ed|ing))\s(?:back\s)?(?:out\s)?(?:to|toward|down to|up to)\s([A-Z][A-Za-z]+(?:\s[A-Z][A-Za-z]+)?)`),
		regexp.MustCompile(`\bout of state\b|\bacross the country\b|\bcloser to family\b`),
		regexp.MustCompile(`\b([A-Z][a-z]+(?:\s[A-Z][a-z]+)?),\s?[A-Z]{2}\b`),
	}
	emotionalRe = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:frustrated|disappointed|worried|concerned|stressed|upset|anxious|overwhelmed|nervous)\b(?:\s(?:about|with|by|over)\s[a-z][a-z\s]{2,40})?`),
		regexp.MustCompile(`(?i)\b(?:hate|hated|tired of|fed up with)\s[a-z][a-z\s]{2,40}`),
	}
)

// currencyMarker is the strong-indicator check for price-type fields.
var currencyMarker = regexp.MustCompile(`\$|\bmillion\b|\bthousand\b`)

// locationMarker is the strong-indicator check for destination fields: a
// state name/abbreviation or a recognizable "City, ST" shape. A deliberate
// pattern, not a city list.
var locationMarker = regexp.MustCompile(`(?i)\b(?:alabama|alaska|arizona|arkansas|california|colorado|connecticut|delaware|florida|georgia|hawaii|idaho|illinois|indiana|iowa|kansas|kentucky|louisiana|maine|maryland|massachusetts|michigan|minnesota|mississippi|missouri|montana|nebraska|nevada|new hampshire|new jersey|new mexico|new york|north carolina|north dakota|ohio|oklahoma|oregon|pennsylvania|rhode island|south carolina|south dakota|tennessee|texas|utah|vermont|virginia|washington|west virginia|wisconsin|wyoming)\b|\b[A-Z][a-z]+,\s?[A-Z]{2}\b`)

// rules is the shared per-field registry, referenced by every tier.
var rules = []Rule{
	{
		Key: "motivation",
		Questions: []string{
			"What's got you thinking about selling your home yourself instead of working with an agent?",
			"What made you decide to sell on your own?",
			"What's driving the decision to sell?",
		},
		Gate: []string{"sell", "selling", "commission", "agent", "owner", "fsbo"},
		Ladder: []LadderRule{
			{Keywords: []string{"commission", "money"}, Canonical: "Save commission, get the most money"},
			{Keywords: []string{"commission", "save"}, Canonical: "Save commission, get the most money"},
			{Keywords: []string{"commission"}, Canonical: "Save on agent commission"},
			{Keywords: []string{"agent", "bad", "experience"}, Canonical: "Bad prior agent experience"},
			{Keywords: []string{"control", "sale"}, Canonical: "Wants control over the sale"},
			{Keywords: []string{"fees", "avoid"}, Canonical: "Avoid agent fees"},
		},
		Families: []PatternFamily{
			{Name: "emotional", Patterns: emotionalRe},
			{Name: "financial", Patterns: financialRe},
		},
		Refine:   refineMotivation,
		Fallback: "Selling by owner",
		MinLen:   5,
	},
	{
		Key: "timeline",
		Questions: []string{
			"How soon are you hoping to have it sold?",
			"What's your ideal timeline for the sale?",
			"When would you like to be moved out?",
		},
		Gate: []string{"month", "week", "year", "soon", "asap", "timeline", "spring", "summer", "fall", "winter", "hurry", "rush"},
		Ladder: []LadderRule{
			{Keywords: []string{"asap"}, Canonical: "As soon as possible"},
			{Keywords: []string{"no", "rush"}, Canonical: "No rush"},
			{Keywords: []string{"not", "hurry"}, Canonical: "No rush"},
			{Keywords: []string{"already", "offer"}, Canonical: "Evaluating an existing offer"},
		},
		Families: []PatternFamily{
			{Name: "temporal", Patterns: temporalRe},
		},
		Refine:       refineTimeline,
		Fallback:     "Timeline not stated",
		MinLen:       3,
		NumericBonus: true,
	},
	{
		Key: "destination",
		Questions: []string{
			"Where are you planning to move once it sells?",
			"Where are you headed after the sale?",
		},
		Gate: []string{"moving", "move", "relocat", "headed", "heading", "out of state"},
		Ladder: []LadderRule{
			{Keywords: []string{"out", "state"}, Canonical: "Moving out of state"},
			{Keywords: []string{"closer", "family"}, Canonical: "Moving closer to family"},
			{Keywords: []string{"downsizing"}, Canonical: "Downsizing locally"},
		},
		Families: []PatternFamily{
			{Name: "locational", Patterns: locationalRe},
		},
		Refine:       refineDestination,
		Fallback:     "Destination unknown",
		MinLen:       3,
		StrongMarker: locationMarker,
	},
	{
		Key: "expectations",
		Questions: []string{
			"What price are you hoping to get for the home?",
			"What are you hoping to walk away with?",
		},
		Gate: []string{"price", "worth", "asking", "$", "hoping", "expect", "value"},
		Ladder: []LadderRule{
			{Keywords: []string{"fair", "price"}, Canonical: "Wants a fair market price"},
			{Keywords: []string{"top", "dollar"}, Canonical: "Wants top dollar"},
		},
		Families: []PatternFamily{
			{Name: "financial", Patterns: financialRe},
		},
		Refine:       refineExpectations,
		Fallback:     "Price expectations not stated",
		MinLen:       3,
		StrongMarker: currencyMarker,
	},
	{
		Key: "disappointments",
		Questions: []string{
			"What disappointed you about working with an agent before?",
			"How did your last experience with an agent go?",
		},
		Gate: []string{"agent", "realtor", "listed", "listing", "expired", "disappointed", "frustrat"},
		Ladder: []LadderRule{
			{Keywords: []string{"expired", "listing"}, Canonical: "Listing expired without selling"},
			{Keywords: []string{"showings", "no"}, Canonical: "Not enough showings"},
			{Keywords: []string{"communication"}, Canonical: "Poor communication from agent"},
			{Keywords: []string{"overpriced"}, Canonical: "Agent overpriced the home"},
		},
		Families: []PatternFamily{
			{Name: "emotional", Patterns: emotionalRe},
		},
		Refine:   refineDisappointments,
		Fallback: "No prior agent experience noted",
		MinLen:   5,
	},
	{
		Key: "concerns",
		Questions: []string{
			"What's your biggest concern about selling it yourself?",
			"What worries you most about the process?",
		},
		Gate: []string{"concern", "worried", "worry", "paperwork", "legal", "scared", "nervous", "afraid"},
		Ladder: []LadderRule{
			{Keywords: []string{"paperwork"}, Canonical: "Handling the paperwork"},
			{Keywords: []string{"pricing", "right"}, Canonical: "Pricing it right"},
			{Keywords: []string{"legal"}, Canonical: "Legal liability"},
			{Keywords: []string{"strangers", "house"}, Canonical: "Safety of showings"},
		},
		Families: []PatternFamily{
			{Name: "emotional", Patterns: emotionalRe},
		},
		Refine:   refineConcerns,
		Fallback: "No concerns raised",
		MinLen:   5,
	},
	{
		Key: "openness",
		Questions: []string{
			"If an agent brought you a qualified buyer, would you be open to a conversation?",
			"Would you consider relisting with an agent down the road?",
		},
		Gate: []string{"open", "consider", "relist", "interested", "agent"},
		Ladder: []LadderRule{
			{Keywords: []string{"not", "interested"}, Canonical: "Not open to an agent"},
			{Keywords: []string{"never", "agent"}, Canonical: "Not open to an agent"},
			{Keywords: []string{"depends"}, Canonical: "Depends on terms"},
			{Keywords: []string{"open"}, Canonical: "Open to the right agent"},
		},
		Refine:   refineOpenness,
		Fallback: "Openness unknown",
		MinLen:   4,
	},
}

// ruleByKey indexes the registry for direct lookups.
var ruleByKey = func() map[string]*Rule {
	m := make(map[string]*Rule, len(rules))
	for i := range rules {
		m[rules[i].Key] = &rules[i]
	}
	return m
}()

// RuleFor returns the rule entry for a semantic key, or nil.
func RuleFor(key string) *Rule {
	return ruleByKey[key]
}
