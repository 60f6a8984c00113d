package framenotify

import (
	"net/http"
	"time"
)

const (
	DefaultTimeout = 10 * time.Second
	UserAgent      = "frame-notify-srv/1.0"
	maxErrorBody   = 4 << 10
)

// State is the outcome the notification server reported for the token.
type State string

const (
	StateSuccess      State = "success"
	StateInvalidToken State = "invalid_token"
	StateRateLimited  State = "rate_limited"
)

// Target is where and with what token a notification is delivered.
type Target struct {
	URL   string
	Token string
}

// Request is the notification content.
type Request struct {
	Title     string
	Body      string
	TargetURL string
}

// Result is the per-call answer of the notification server.
type Result struct {
	NotificationID string
	State          State
}

// Client posts frame notifications to client-provided notification URLs.
type Client struct {
	client *http.Client
}

type sendNotificationRequest struct {
	NotificationID string   `json:"notificationId"`
	Title          string   `json:"title"`
	Body           string   `json:"body"`
	TargetURL      string   `json:"targetUrl"`
	Tokens         []string `json:"tokens"`
}

type sendNotificationResponse struct {
	Result struct {
		SuccessfulTokens  []string `json:"successfulTokens"`
		InvalidTokens     []string `json:"invalidTokens"`
		RateLimitedTokens []string `json:"rateLimitedTokens"`
	} `json:"result"`
}
