package ports

import "context"

// AuthzRequest is the actor/action/resource triple submitted to the external
// policy engine, plus the organization the request executes in.
type AuthzRequest struct {
	ActorRef string
	Action   string
	Resource string
	OrgID    string
}

// PolicyAuthorizer consults the external policy engine. Implementations
// return nil when the operation is permitted, a PermissionDeniedError when
// the engine denies it, and a DependencyFailedError when the engine is
// unreachable. This repository never evaluates policy itself.
type PolicyAuthorizer interface {
	Authorize(ctx context.Context, req AuthzRequest) error
}
