package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportBug(t *testing.T) {
	var got WebhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/id/token", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	d, err := New(nil, Config{WebhookID: "id", WebhookToken: "token", BaseURL: srv.URL})
	require.NoError(t, err)
	defer d.Close()

	require.NoError(t, d.ReportBug(context.Background(), "boom"))
	require.Len(t, got.Embeds, 1)
	assert.Equal(t, ReportBugTitle, got.Embeds[0].Title)
	assert.Equal(t, "```boom```", got.Embeds[0].Description)
	assert.Equal(t, ColorError, got.Embeds[0].Color)
	assert.Equal(t, DefaultUsername, got.Username)
}

func TestReportBugTruncates(t *testing.T) {
	var got WebhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	d, err := New(nil, Config{WebhookID: "id", WebhookToken: "token", BaseURL: srv.URL})
	require.NoError(t, err)

	require.NoError(t, d.ReportBug(context.Background(), strings.Repeat("x", 5000)))
	require.Len(t, got.Embeds, 1)
	assert.LessOrEqual(t, len(got.Embeds[0].Description), MaxDescriptionLen)
}

func TestSendErrorFailureIsReturned(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	d, err := New(nil, Config{WebhookID: "id", WebhookToken: "token", BaseURL: srv.URL, RetryCount: -1})
	require.NoError(t, err)

	err = d.SendError(context.Background(), "title", "desc", assert.AnError)
	assert.Error(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestNewRequiresWebhook(t *testing.T) {
	_, err := New(nil, Config{WebhookID: "id"})
	assert.ErrorIs(t, err, errWebhookRequired)
}
