package salesforce

import (
	"context"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
)

// FetchRecordFields reads the given fields of a single record by id.
// Returns nil if the record does not exist. Field values come back keyed by
// API name; absent or null fields are simply missing from the map.
func FetchRecordFields(ctx context.Context, c Client, sObjectName, id string, fields []string) (map[string]any, error) {
	if id == "" {
		return nil, eris.New("sf: record id is required")
	}
	if len(fields) == 0 {
		return nil, eris.New("sf: no fields to read")
	}

	soql := fmt.Sprintf(
		"SELECT %s FROM %s WHERE Id = '%s' LIMIT 1",
		strings.Join(fields, ", "),
		sObjectName,
		escapeSoql(id),
	)

	var records []map[string]any
	if err := c.Query(ctx, soql, &records); err != nil {
		return nil, eris.Wrap(err, fmt.Sprintf("sf: fetch %s %s", sObjectName, id))
	}
	if len(records) == 0 {
		return nil, nil
	}

	rec := records[0]
	for k, v := range rec {
		if v == nil {
			delete(rec, k)
		}
	}
	return rec, nil
}

// UpdateRecord writes the given fields to one record. This is the pass's
// single batched write: all field values go in one request.
func UpdateRecord(ctx context.Context, c Client, sObjectName, id string, fields map[string]any) error {
	if id == "" {
		return eris.New("sf: record id is required")
	}
	if len(fields) == 0 {
		return eris.New("sf: no fields to update")
	}
	if err := c.UpdateOne(ctx, sObjectName, id, fields); err != nil {
		return eris.Wrap(err, fmt.Sprintf("sf: update record %s", id))
	}
	return nil
}

// escapeSoql escapes single quotes in SOQL string literals to prevent injection.
func escapeSoql(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}
