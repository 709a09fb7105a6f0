package pipeline

import "github.com/rotisserie/eris"

// Sentinel pass failures. Callers check them with eris.Is; the wrapped
// message carries the underlying cause.
var (
	// ErrSchemaUnavailable means the field registry could not be fetched
	// after retries. Nothing can be mapped, so the pass aborts.
	ErrSchemaUnavailable = eris.New("pipeline: schema unavailable")

	// ErrWriteFailed means the single batched update was rejected after
	// retries. No fields were written.
	ErrWriteFailed = eris.New("pipeline: write failed")
)
