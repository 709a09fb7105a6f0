package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/call-sync/internal/model"
)

func TestDirectContent_GateBlocksField(t *testing.T) {
	// "open" ladder would match, but no openness gate keyword is present
	// other than "open" itself — remove it by using unrelated text.
	fields := directContent("the weather was nice and the house is big")
	_, ok := fields["openness"]
	assert.False(t, ok)
}

func TestDirectContent_LadderOrderMostSpecificFirst(t *testing.T) {
	fields := directContent("wants to save commission and walk away with the most money")
	require.Contains(t, fields, "motivation")
	// The two-keyword step outranks the bare "commission" step.
	assert.Equal(t, "Save commission, get the most money", fields["motivation"].Value)
}

func TestDirectContent_SourceAndMethod(t *testing.T) {
	fields := directContent("worried about all the paperwork involved")
	require.Contains(t, fields, "concerns")
	f := fields["concerns"]
	assert.Equal(t, "Handling the paperwork", f.Value)
	assert.Equal(t, model.SourceDirectExtraction, f.Source)
	assert.Equal(t, "keyword_ladder", f.Method)
}

func TestContextPattern_TimelineNumeric(t *testing.T) {
	fields := contextPattern("She said probably 3 months before they list it.")
	require.Contains(t, fields, "timeline")
	f := fields["timeline"]
	assert.Equal(t, "3 months", f.Value)
	// 70 base + 10 numeric = 80
	assert.Equal(t, 80, f.Confidence)
	assert.Equal(t, model.SourceBusinessLogic, f.Source)
}

func TestContextPattern_RefinerKeepsConfidence(t *testing.T) {
	fields := contextPattern("Planning on moving to Phoenix because the kids are out of state.")
	require.Contains(t, fields, "destination")
	f := fields["destination"]
	assert.Equal(t, "Moving out of state", f.Value)
	assert.Equal(t, model.SourceBusinessLogic, f.Source)
}

func TestContextPattern_UnrefinedKeepsRawSpan(t *testing.T) {
	fields := contextPattern("They are worried about strangers walking through, frustrated with the process overall.")
	require.Contains(t, fields, "concerns")
	assert.Equal(t, model.SourceContextPattern, fields["concerns"].Source)
}

func TestPropertySweep_FillsOnlyEmptyTargets(t *testing.T) {
	fields := map[string]model.ExtractedField{
		"price": {Key: "price", Value: "Around $500k", Confidence: 90},
	}
	propertySweep("a 4 bedroom place listed at $450,000", fields)

	assert.Equal(t, "Around $500k", fields["price"].Value)
	assert.Equal(t, "4", fields["bedrooms"].Value)
}

func TestPropertySweep_RequiresCurrencyOrMagnitude(t *testing.T) {
	fields := map[string]model.ExtractedField{}
	propertySweep("the lot is 23 m wide", fields)
	_, ok := fields["price"]
	assert.False(t, ok)
}

func TestPropertySweep_MillionSpelledOut(t *testing.T) {
	fields := map[string]model.ExtractedField{}
	propertySweep("hoping for 1.2 million on this one", fields)
	require.Contains(t, fields, "price")
	assert.Equal(t, "1.2 million", fields["price"].Value)
}

func TestRuleFor_KnownAndUnknown(t *testing.T) {
	require.NotNil(t, RuleFor("motivation"))
	assert.Nil(t, RuleFor("nonsense"))
}
