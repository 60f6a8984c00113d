// Package framenotify sends Farcaster frame notifications.
package framenotify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrTargetRequired = errors.New("framenotify: target url and token are required")

// New creates a Client whose requests time out after timeout (DefaultTimeout if <= 0).
func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     30 * time.Second,
			},
		},
	}
}

// Send delivers one notification to one token. A 200 answer is decoded into a State;
// anything else is an error. Delivery to the device is not confirmed by either.
func (c *Client) Send(ctx context.Context, target Target, req Request) (Result, error) {
	if target.URL == "" || target.Token == "" {
		return Result{}, ErrTargetRequired
	}

	id := uuid.NewString()
	payload, err := json.Marshal(sendNotificationRequest{
		NotificationID: id,
		Title:          req.Title,
		Body:           req.Body,
		TargetURL:      req.TargetURL,
		Tokens:         []string{target.Token},
	})
	if err != nil {
		return Result{}, fmt.Errorf("framenotify: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, target.URL, bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("framenotify: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", UserAgent)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return Result{}, fmt.Errorf("framenotify: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return Result{}, fmt.Errorf("framenotify: notification server returned status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out sendNotificationResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Result{}, fmt.Errorf("framenotify: decode response: %w", err)
	}

	res := Result{NotificationID: id, State: StateSuccess}
	switch {
	case slices.Contains(out.Result.InvalidTokens, target.Token):
		res.State = StateInvalidToken
	case slices.Contains(out.Result.RateLimitedTokens, target.Token):
		res.State = StateRateLimited
	}
	return res, nil
}

// Close closes idle connections in the HTTP client.
func (c *Client) Close() {
	c.client.CloseIdleConnections()
}
