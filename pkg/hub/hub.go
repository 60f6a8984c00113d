// Package hub is a minimal client for the Farcaster hub HTTP API, used as the
// authoritative directory of app keys.
package hub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

var ErrAPIKeyRequired = errors.New("hub: api key is required")

// New builds a Client. URL and Timeout fall back to the Neynar hub defaults.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}
	base := strings.TrimRight(cfg.URL, "/")
	if base == "" {
		base = DefaultURL
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("hub: invalid url %q: %w", base, err)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: base,
		apiKey:  cfg.APIKey,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     30 * time.Second,
			},
		},
	}, nil
}

// IsActiveAppKey reports whether key (0x-prefixed hex ed25519 public key) is an added
// signer of fid. A hub "not found" answer is a definite false; every other failure is
// returned as an error so callers can tell "unauthorized" from "directory down".
func (c *Client) IsActiveAppKey(ctx context.Context, fid int64, key string) (bool, error) {
	q := url.Values{}
	q.Set("fid", strconv.FormatInt(fid, 10))
	q.Set("signer", key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+signersPath+"?"+q.Encode(), nil)
	if err != nil {
		return false, fmt.Errorf("hub: build request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("hub: request signers: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var body signersResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return false, fmt.Errorf("hub: decode signers: %w", err)
		}
		return hasActiveSigner(body, key), nil
	case http.StatusNotFound:
		return false, nil
	default:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		var he hubError
		if json.Unmarshal(raw, &he) == nil && he.ErrCode == errCodeNotFound {
			return false, nil
		}
		return false, fmt.Errorf("hub: signers returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
}

// Close closes idle connections in the HTTP client.
func (c *Client) Close() {
	c.client.CloseIdleConnections()
}

func hasActiveSigner(body signersResponse, key string) bool {
	events := body.Events
	if body.SignerEventBody.Key != "" {
		events = append(events, body.onChainEvent)
	}
	for _, ev := range events {
		if strings.EqualFold(ev.SignerEventBody.Key, key) && ev.SignerEventBody.EventType == signerEventAdd {
			return true
		}
	}
	return false
}
