package ports

import "context"

// WorkflowRunner invokes the external durable-workflow engine. The engine
// guarantees at-most-once side effects across retries keyed by the
// caller-supplied idempotency key; this repository only threads the key
// through, it implements no idempotency of its own.
type WorkflowRunner interface {
	// Run starts (or joins, when the idempotency key was seen before) the
	// named workflow and returns the engine's run identifier.
	Run(ctx context.Context, name, idempotencyKey string, input map[string]any) (string, error)
}
