// Package schema fetches and indexes the target object's custom-field
// definitions, and maps extraction-side semantic keys onto them.
package schema

import (
	"context"
	"sync"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/call-sync/internal/model"
	"github.com/sells-group/call-sync/internal/resilience"
	sfpkg "github.com/sells-group/call-sync/pkg/salesforce"
)

// Resolver owns the process-lifetime schema cache. Initialize must be called
// once before any pass; re-initialization is a no-op once populated.
type Resolver struct {
	client  sfpkg.Client
	object  string
	retry   resilience.Policy
	aliases map[string]string

	mu  sync.Mutex
	reg *Registry
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithAliases overlays extra semantic-key aliases on the defaults. Used to
// point operational keys at tenant-specific display names.
func WithAliases(aliases map[string]string) Option {
	return func(r *Resolver) {
		for k, v := range aliases {
			r.aliases[k] = v
		}
	}
}

// NewResolver creates an uninitialized Resolver for the given object.
func NewResolver(client sfpkg.Client, object string, retry resilience.Policy, opts ...Option) *Resolver {
	r := &Resolver{
		client:  client,
		object:  object,
		retry:   retry,
		aliases: make(map[string]string, len(defaultAliases)),
	}
	for k, v := range defaultAliases {
		r.aliases[k] = v
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Initialize fetches the object describe and builds the indexed registry.
// Idempotent: a populated cache makes this a no-op. A fetch failure after
// retries leaves the resolver uninitialized and is fatal for the pass.
func (r *Resolver) Initialize(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.reg != nil {
		return nil
	}

	desc, err := resilience.DoVal(ctx, r.retry, "describe "+r.object,
		func(ctx context.Context) (*sfpkg.SObjectDescription, error) {
			return r.client.DescribeSObject(ctx, r.object)
		})
	if err != nil {
		return eris.Wrap(err, "schema: fetch "+r.object)
	}

	fields := make([]model.FieldSchema, 0, len(desc.Fields))
	for _, f := range desc.Fields {
		if !f.Updateable {
			continue
		}
		fields = append(fields, model.FieldSchema{
			ID:       f.Name,
			Name:     f.Label,
			Type:     mapDataType(f.Type),
			Options:  activeOptions(f.PicklistValues),
			Required: !f.Nillable,
		})
	}

	r.reg = NewRegistry(fields)
	zap.L().Info("schema: registry initialized",
		zap.String("object", r.object),
		zap.Int("fields", len(fields)),
	)
	return nil
}

// Initialized reports whether the cache has been populated.
func (r *Resolver) Initialized() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reg != nil
}

// Fields returns all cached field schemas, or nil before initialization.
func (r *Resolver) Fields() []model.FieldSchema {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.reg == nil {
		return nil
	}
	return r.reg.Fields
}

// Resolve maps a semantic key to its schema field: literal normalized-name
// match first, then the alias table.
func (r *Resolver) Resolve(key string) (*model.FieldSchema, bool) {
	r.mu.Lock()
	reg := r.reg
	r.mu.Unlock()
	if reg == nil {
		return nil, false
	}

	if f := reg.ByNormName(key); f != nil {
		return f, true
	}
	if alias, ok := r.aliases[key]; ok {
		if f := reg.ByNormName(alias); f != nil {
			return f, true
		}
	}
	return nil, false
}

// ResolveName maps a schema display name (e.g. a configured operational field
// name) to its schema field.
func (r *Resolver) ResolveName(name string) (*model.FieldSchema, bool) {
	r.mu.Lock()
	reg := r.reg
	r.mu.Unlock()
	if reg == nil {
		return nil, false
	}
	if f := reg.ByNormName(name); f != nil {
		return f, true
	}
	return nil, false
}

// mapDataType maps Salesforce field types onto the coercion data types.
func mapDataType(sfType string) model.DataType {
	switch sfType {
	case "double", "int", "currency", "percent":
		return model.TypeNumber
	case "picklist", "multipicklist", "combobox":
		return model.TypeSelect
	case "boolean":
		return model.TypeCheckbox
	case "date", "datetime":
		return model.TypeDate
	case "url":
		return model.TypeURL
	case "email":
		return model.TypeEmail
	case "phone":
		return model.TypePhone
	default:
		// string, textarea, reference, anything unrecognized
		return model.TypeText
	}
}

func activeOptions(values []sfpkg.PicklistValue) []string {
	var opts []string
	for _, v := range values {
		if v.Active {
			opts = append(opts, v.Value)
		}
	}
	return opts
}
