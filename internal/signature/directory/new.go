// Package directory verifies JSON Farcaster Signatures whose signing key is authorized by
// an external app key directory.
package directory

import (
	"frame-notify-srv/internal/signature"
	"frame-notify-srv/pkg/log"
)

// New returns a Verifier backed by dir.
func New(l log.Logger, dir AppKeyDirectory) signature.Verifier {
	if l == nil {
		l = log.NewNop()
	}
	return &implVerifier{l: l, dir: dir}
}
