package hub

import (
	"net/http"
	"time"
)

const (
	DefaultURL     = "https://hub-api.neynar.com"
	DefaultTimeout = 10 * time.Second

	apiKeyHeader    = "x-api-key"
	signersPath     = "/v1/onChainSignersByFid"
	signerEventAdd  = "SIGNER_EVENT_TYPE_ADD"
	errCodeNotFound = "not_found"
	maxErrorBody    = 4 << 10
)

// Config configures the directory client.
type Config struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// Client asks a Farcaster hub whether an app key is registered for a fid.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

type signerEventBody struct {
	Key       string `json:"key"`
	EventType string `json:"eventType"`
}

type onChainEvent struct {
	Type            string          `json:"type"`
	Fid             int64           `json:"fid"`
	SignerEventBody signerEventBody `json:"signerEventBody"`
}

// signersResponse covers both hub shapes: a single event when the signer filter
// is applied, and an events list when it is not.
type signersResponse struct {
	onChainEvent
	Events []onChainEvent `json:"events"`
}

type hubError struct {
	ErrCode string `json:"errCode"`
	Details string `json:"details"`
}
