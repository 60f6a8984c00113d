// Package sharedsecret verifies publisher webhooks signed with an HMAC-SHA256 shared secret
// and a millisecond timestamp.
package sharedsecret

import (
	"errors"
	"time"

	"frame-notify-srv/internal/signature"
	"frame-notify-srv/pkg/log"
)

const (
	// HeaderName carries "sha256=<hex digest>, t=<unix ms>".
	HeaderName       = "X-Ghost-Signature"
	DefaultTolerance = 5 * time.Minute

	algorithm      = "sha256"
	fieldSeparator = ", "
)

var ErrSecretRequired = errors.New("sharedsecret: secret is required")

type implVerifier struct {
	l         log.Logger
	secret    []byte
	tolerance time.Duration
}

// New returns a Verifier for secret. A tolerance <= 0 means DefaultTolerance.
func New(l log.Logger, secret string, tolerance time.Duration) (signature.Verifier, error) {
	if secret == "" {
		return nil, ErrSecretRequired
	}
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	if l == nil {
		l = log.NewNop()
	}
	return &implVerifier{l: l, secret: []byte(secret), tolerance: tolerance}, nil
}
