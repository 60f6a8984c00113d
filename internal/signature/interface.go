// Package signature defines how inbound webhook payloads are authenticated.
package signature

import "context"

// Verifier authenticates one inbound request. It returns the verified envelope or one of
// the sentinel errors of this package, possibly wrapped.
type Verifier interface {
	Verify(ctx context.Context, req Request) (Envelope, error)
}
