package signature

import "errors"

var (
	ErrMalformedPayload    = errors.New("malformed payload")
	ErrMalformedSignature  = errors.New("malformed signature")
	ErrInvalidSignature    = errors.New("invalid signature")
	ErrUnauthorizedKey     = errors.New("unauthorized app key")
	ErrVerifierUnavailable = errors.New("signature verifier unavailable")
)
