package signature

import (
	"net/http"
	"time"

	"frame-notify-srv/internal/model"
)

// Request is what a verifier sees of an inbound webhook: the raw body bytes as received
// and the request headers.
type Request struct {
	Body   []byte
	Header http.Header
	// Now is the verification instant. Zero means time.Now().
	Now time.Time
}

// At returns the verification instant of r.
func (r Request) At() time.Time {
	if r.Now.IsZero() {
		return time.Now()
	}
	return r.Now
}

// Envelope is the result of a successful verification.
type Envelope struct {
	// SubscriberID is set by verifiers that bind a payload to a subscriber.
	SubscriberID int64
	// Event is the decoded capability event, when the protocol carries one.
	Event *model.CapabilityEvent
	// Body is the authenticated payload bytes.
	Body []byte
}
