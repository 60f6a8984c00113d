package http

import (
	"errors"
	"net/http"

	"frame-notify-srv/internal/signature"
	pkgErrors "frame-notify-srv/pkg/errors"
	"frame-notify-srv/pkg/response"
)

var errBodyTooLarge = errors.New("request body too large")

var (
	errInvalidEventData = pkgErrors.NewHTTPError("Invalid event data", http.StatusBadRequest)
	errInvalidSignData  = pkgErrors.NewHTTPError("Invalid signature data", http.StatusBadRequest)
	errInvalidSignature = pkgErrors.NewUnauthorizedHTTPError("Invalid signature")
	errInvalidAppKey    = pkgErrors.NewUnauthorizedHTTPError("Invalid app key")
	errVerifyAppKey     = pkgErrors.NewInternalHTTPError("Error verifying app key")
	errRequestTooLarge  = pkgErrors.NewHTTPError("Request body too large", http.StatusRequestEntityTooLarge)
)

// frameErrorMap maps verification failures of frame events. Errors not listed here are
// answered as 500 with their description.
//
// A malformed envelope answers 400, not 401: it is a client data error like a malformed
// payload, and the two differ only by message.
var frameErrorMap = response.ErrorMapping{
	signature.ErrMalformedPayload:    errInvalidEventData,
	signature.ErrMalformedSignature:  errInvalidSignData,
	signature.ErrInvalidSignature:    errInvalidSignature,
	signature.ErrUnauthorizedKey:     errInvalidAppKey,
	signature.ErrVerifierUnavailable: errVerifyAppKey,
	errBodyTooLarge:                  errRequestTooLarge,
}

// newPostErrorMap maps publisher webhook failures. Only authentication and oversized
// bodies are client errors; a verified body that cannot be decoded is a 500.
var newPostErrorMap = response.ErrorMapping{
	signature.ErrInvalidSignature: errInvalidSignature,
	errBodyTooLarge:               errRequestTooLarge,
}
