package coerce

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/call-sync/internal/model"
)

func field(t model.DataType, options ...string) model.FieldSchema {
	return model.FieldSchema{ID: "X__c", Name: "X", Type: t, Options: options}
}

func TestValue_TextTrimmedAndCapped(t *testing.T) {
	v, err := Value("  hello  ", field(model.TypeText))
	require.NoError(t, err)
	assert.Equal(t, "hello", v)

	long := strings.Repeat("x", 3000)
	v, err = Value(long, field(model.TypeText))
	require.NoError(t, err)
	assert.Len(t, v, 2000)
}

func TestValue_NumberLeadingToken(t *testing.T) {
	v, err := Value("$450,000 or so", field(model.TypeNumber))
	require.NoError(t, err)
	assert.Equal(t, 450000.0, v)
}

func TestValue_NumberDecimal(t *testing.T) {
	v, err := Value("2.5 baths", field(model.TypeNumber))
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)
}

func TestValue_NumberRejectsNonNumeric(t *testing.T) {
	_, err := Value("soon", field(model.TypeNumber))
	assert.Error(t, err)
}

func TestValue_SelectExactMatch(t *testing.T) {
	v, err := Value("condo", field(model.TypeSelect, "Single Family", "Condo", "Townhouse"))
	require.NoError(t, err)
	assert.Equal(t, "Condo", v)
}

func TestValue_SelectSubstringEitherDirection(t *testing.T) {
	f := field(model.TypeSelect, "Single Family", "Condo")
	v, err := Value("a single family home", f)
	require.NoError(t, err)
	assert.Equal(t, "Single Family", v)

	v, err = Value("Fam", f)
	require.NoError(t, err)
	assert.Equal(t, "Single Family", v)
}

func TestValue_SelectRejectsNoMatch(t *testing.T) {
	_, err := Value("houseboat", field(model.TypeSelect, "Single Family", "Condo"))
	assert.Error(t, err)
}

func TestValue_Checkbox(t *testing.T) {
	v, err := Value("Yes", field(model.TypeCheckbox))
	require.NoError(t, err)
	assert.Equal(t, true, v)

	v, err = Value("no", field(model.TypeCheckbox))
	require.NoError(t, err)
	assert.Equal(t, false, v)

	_, err = Value("probably", field(model.TypeCheckbox))
	assert.Error(t, err)
}

func TestValue_DateFormats(t *testing.T) {
	for _, in := range []string{"2026-08-31", "08/31/2026", "August 31, 2026", "Aug 31, 2026"} {
		v, err := Value(in, field(model.TypeDate))
		require.NoError(t, err, in)
		assert.Equal(t, "2026-08-31", v, in)
	}
}

func TestValue_DateRejectsFreeText(t *testing.T) {
	_, err := Value("sometime in the spring", field(model.TypeDate))
	assert.Error(t, err)
}

func TestValue_URLNormalization(t *testing.T) {
	v, err := Value("example.com/listing", field(model.TypeURL))
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/listing", v)

	_, err = Value("not a url", field(model.TypeURL))
	assert.Error(t, err)
}

func TestValue_Email(t *testing.T) {
	v, err := Value("Seller@Example.com", field(model.TypeEmail))
	require.NoError(t, err)
	assert.Equal(t, "seller@example.com", v)

	_, err = Value("seller.example.com", field(model.TypeEmail))
	assert.Error(t, err)
}

func TestValue_PhoneStripsFormatting(t *testing.T) {
	v, err := Value("(555) 123-4567", field(model.TypePhone))
	require.NoError(t, err)
	assert.Equal(t, "5551234567", v)

	v, err = Value("+1 555 123 4567", field(model.TypePhone))
	require.NoError(t, err)
	assert.Equal(t, "+15551234567", v)
}

func TestValue_EmptyRejected(t *testing.T) {
	_, err := Value("   ", field(model.TypeText))
	assert.Error(t, err)
}
