// Package pipeline drives one full pass: snapshot reads, tiered extraction,
// schema mapping, coercion, conflict resolution, and the single batched write.
package pipeline

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/call-sync/internal/coerce"
	"github.com/sells-group/call-sync/internal/config"
	"github.com/sells-group/call-sync/internal/extract"
	"github.com/sells-group/call-sync/internal/model"
	"github.com/sells-group/call-sync/internal/resilience"
	"github.com/sells-group/call-sync/internal/resolve"
	"github.com/sells-group/call-sync/internal/schema"
	sfpkg "github.com/sells-group/call-sync/pkg/salesforce"
)

// Processor owns the per-call sync pass. One event drives exactly one pass;
// all per-pass state is local.
type Processor struct {
	client    sfpkg.Client
	resolver  *schema.Resolver
	extractor *extract.Extractor
	object    string
	fields    config.FieldsConfig
	retry     resilience.Policy

	// WithFallbacks fills unextracted core fields with their fallback
	// labels. Off for webhook passes; opt-in for operator replays.
	WithFallbacks bool
}

// NewProcessor wires a Processor from its collaborators.
func NewProcessor(client sfpkg.Client, resolver *schema.Resolver, extractor *extract.Extractor, object string, fields config.FieldsConfig, retry resilience.Policy) *Processor {
	return &Processor{
		client:    client,
		resolver:  resolver,
		extractor: extractor,
		object:    object,
		fields:    fields,
		retry:     retry,
	}
}

// Run executes one full pipeline pass for a call-completion event.
// Schema or write failures abort the pass; every other condition degrades
// locally into warnings.
func (p *Processor) Run(ctx context.Context, ev model.CallEvent) (*model.SyncResult, error) {
	result := &model.SyncResult{
		PassID:   uuid.NewString(),
		RecordID: ev.RecordID,
	}
	log := zap.L().With(
		zap.String("pass_id", result.PassID),
		zap.String("call_id", ev.CallID),
		zap.String("record_id", ev.RecordID),
	)

	if ev.RecordID == "" {
		return result, eris.New("pipeline: event has no record id")
	}

	if err := p.resolver.Initialize(ctx); err != nil {
		return result, eris.Wrap(ErrSchemaUnavailable, err.Error())
	}

	snap, err := p.readSnapshot(ctx, ev.RecordID)
	snapshotOK := err == nil
	if err != nil {
		// Degraded: extraction still runs, but fields derived from stored
		// state are omitted from the write rather than rebuilt from nothing.
		log.Warn("pipeline: snapshot read failed", zap.Error(err))
		result.Warnings = append(result.Warnings, "snapshot read failed: "+err.Error())
		snap = model.Snapshot{}
	}

	extracted := p.extractor.Run(ev, snap)
	if !snapshotOK {
		delete(extracted, "seller_memory")
	}
	if p.WithFallbacks {
		extract.Fallbacks(extracted)
	}

	candidates := p.mapAndCoerce(extracted, result)
	if snapshotOK {
		candidates = append(candidates, p.operationalCandidates(ev, snap, result)...)
	}

	updates := make(map[string]any)
	for _, c := range resolve.Candidates(candidates) {
		// Garbage-shaped winners are dropped silently: they must never be
		// written, and warning on them would be noise.
		if resolve.IsGarbage(c.Value) {
			continue
		}
		updates[c.FieldID] = c.Value
		result.Updates = append(result.Updates, model.FieldUpdate{
			Field:      c.FieldName,
			Value:      c.Value,
			Confidence: c.Confidence,
		})
	}

	if len(updates) == 0 {
		log.Info("pipeline: nothing to update")
		result.Success = true
		return result, nil
	}

	// Count before the write: the client layer may add bookkeeping keys
	// (the record Id) to the outgoing payload.
	fieldsUpdated := len(updates)
	err = resilience.Do(ctx, p.retry, "update "+p.object, func(ctx context.Context) error {
		return sfpkg.UpdateRecord(ctx, p.client, p.object, ev.RecordID, updates)
	})
	if err != nil {
		result.Updates = nil
		return result, eris.Wrap(ErrWriteFailed, err.Error())
	}

	result.Success = true
	result.FieldsUpdated = fieldsUpdated
	log.Info("pipeline: pass complete",
		zap.Int("fields_updated", result.FieldsUpdated),
		zap.Int("warnings", len(result.Warnings)),
	)
	return result, nil
}

// mapAndCoerce resolves each extracted field to its schema target and coerces
// the value. Unmapped fields and failed coercions turn into warnings.
func (p *Processor) mapAndCoerce(extracted map[string]model.ExtractedField, result *model.SyncResult) []model.UpdateCandidate {
	var candidates []model.UpdateCandidate
	for key, f := range extracted {
		fs, ok := p.resolver.Resolve(key)
		if !ok {
			result.Warnings = append(result.Warnings, fmt.Sprintf("no schema field for %q", key))
			continue
		}
		value, err := coerce.Value(f.Value, *fs)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("field %q: %s", fs.Name, err.Error()))
			continue
		}
		candidates = append(candidates, model.UpdateCandidate{
			FieldID:    fs.ID,
			FieldName:  fs.Name,
			Value:      value,
			Confidence: f.Confidence,
			Key:        key,
		})
	}
	return candidates
}

// operationalCandidates computes the booking flag and the incremented attempt
// counter. Both go through the same conflict-resolution path as ordinary
// candidates.
func (p *Processor) operationalCandidates(ev model.CallEvent, snap model.Snapshot, result *model.SyncResult) []model.UpdateCandidate {
	var candidates []model.UpdateCandidate

	if fs, ok := p.resolver.ResolveName(p.fields.BookingFlag); ok {
		candidates = append(candidates, model.UpdateCandidate{
			FieldID:    fs.ID,
			FieldName:  fs.Name,
			Value:      snap.Booked || DetectBooking(ev),
			Confidence: model.ConfidenceMax,
			Key:        "appointment_booked",
		})
	} else {
		result.Warnings = append(result.Warnings, fmt.Sprintf("no schema field for booking flag %q", p.fields.BookingFlag))
	}

	if fs, ok := p.resolver.ResolveName(p.fields.AttemptCounter); ok {
		candidates = append(candidates, model.UpdateCandidate{
			FieldID:    fs.ID,
			FieldName:  fs.Name,
			Value:      float64(snap.Attempts + 1),
			Confidence: model.ConfidenceMax,
			Key:        "call_attempts",
		})
	} else {
		result.Warnings = append(result.Warnings, fmt.Sprintf("no schema field for attempt counter %q", p.fields.AttemptCounter))
	}

	return candidates
}

// readSnapshot reads the prior values of the append-style and operational
// fields in one query.
func (p *Processor) readSnapshot(ctx context.Context, recordID string) (model.Snapshot, error) {
	var snap model.Snapshot

	ids := make(map[string]string) // purpose → field API name
	for purpose, name := range map[string]string{
		"memory":   p.fields.MemoryLog,
		"attempts": p.fields.AttemptCounter,
		"booked":   p.fields.BookingFlag,
	} {
		if fs, ok := p.resolver.ResolveName(name); ok {
			ids[purpose] = fs.ID
		}
	}
	if len(ids) == 0 {
		return snap, nil
	}

	fieldNames := make([]string, 0, len(ids))
	for _, id := range ids {
		fieldNames = append(fieldNames, id)
	}

	rec, err := resilience.DoVal(ctx, p.retry, "read snapshot", func(ctx context.Context) (map[string]any, error) {
		return sfpkg.FetchRecordFields(ctx, p.client, p.object, recordID, fieldNames)
	})
	if err != nil {
		return snap, eris.Wrap(err, "pipeline: read snapshot")
	}
	if rec == nil {
		return snap, nil
	}

	if id, ok := ids["memory"]; ok {
		if v, ok := rec[id].(string); ok {
			snap.Memory = v
		}
	}
	if id, ok := ids["attempts"]; ok {
		snap.Attempts = asInt(rec[id])
	}
	if id, ok := ids["booked"]; ok {
		if v, ok := rec[id].(bool); ok {
			snap.Booked = v
		}
	}
	return snap, nil
}

// asInt tolerates the number representations SOQL results come back with.
func asInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
	}
	return 0
}
