package model

// Source identifies which extraction path produced a field value.
type Source string

// Extraction sources, in rough order of trustworthiness.
const (
	SourceQuestionMapping  Source = "question_mapping"
	SourceDirectExtraction Source = "direct_extraction"
	SourceContextPattern   Source = "context_pattern"
	SourceBusinessLogic    Source = "business_logic"
	SourceSystem           Source = "system"
)

// Confidence bounds for extracted values. Every ExtractedField carries a
// confidence inside this range.
const (
	ConfidenceMin = 50
	ConfidenceMax = 95
)

// ClampConfidence forces a confidence score into [ConfidenceMin, ConfidenceMax].
func ClampConfidence(c int) int {
	if c < ConfidenceMin {
		return ConfidenceMin
	}
	if c > ConfidenceMax {
		return ConfidenceMax
	}
	return c
}

// ExtractedField is one semantic value pulled from call text.
type ExtractedField struct {
	Key        string `json:"key"`
	Value      string `json:"value"`
	Confidence int    `json:"confidence"`
	Source     Source `json:"source"`
	Method     string `json:"method"`
}

// DataType is a record-store field data type.
type DataType string

// Supported schema data types.
const (
	TypeText     DataType = "text"
	TypeNumber   DataType = "number"
	TypeSelect   DataType = "select"
	TypeCheckbox DataType = "checkbox"
	TypeDate     DataType = "date"
	TypeURL      DataType = "url"
	TypeEmail    DataType = "email"
	TypePhone    DataType = "phone"
)

// FieldSchema describes one target-store custom field.
type FieldSchema struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     DataType `json:"type"`
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required"`
}

// UpdateCandidate is a coerced value targeting a schema field, awaiting
// conflict resolution. Key is the originating semantic key.
type UpdateCandidate struct {
	FieldID    string `json:"field_id"`
	FieldName  string `json:"field_name"`
	Value      any    `json:"value"`
	Confidence int    `json:"confidence"`
	Key        string `json:"key"`
}

// FieldUpdate records one written field for observability.
type FieldUpdate struct {
	Field      string `json:"field"`
	Value      any    `json:"value"`
	Confidence int    `json:"confidence"`
}

// SyncResult is the outcome of one pipeline pass.
type SyncResult struct {
	PassID        string        `json:"pass_id"`
	RecordID      string        `json:"record_id"`
	Success       bool          `json:"success"`
	FieldsUpdated int           `json:"fields_updated"`
	Updates       []FieldUpdate `json:"updates,omitempty"`
	Warnings      []string      `json:"warnings,omitempty"`
}
