package framenotify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantState State
		wantErr   bool
	}{
		{"success", http.StatusOK, `{"result":{"successfulTokens":["tok"],"invalidTokens":[],"rateLimitedTokens":[]}}`, StateSuccess, false},
		{"invalid token", http.StatusOK, `{"result":{"successfulTokens":[],"invalidTokens":["tok"],"rateLimitedTokens":[]}}`, StateInvalidToken, false},
		{"rate limited", http.StatusOK, `{"result":{"successfulTokens":[],"invalidTokens":[],"rateLimitedTokens":["tok"]}}`, StateRateLimited, false},
		{"server error", http.StatusInternalServerError, `oops`, "", true},
		{"bad json", http.StatusOK, `{`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got sendNotificationRequest
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := New(0)
			res, err := c.Send(context.Background(),
				Target{URL: srv.URL, Token: "tok"},
				Request{Title: "Hello", Body: "World", TargetURL: "https://blog.test/post"},
			)

			assert.Equal(t, "Hello", got.Title)
			assert.Equal(t, "World", got.Body)
			assert.Equal(t, "https://blog.test/post", got.TargetURL)
			assert.Equal(t, []string{"tok"}, got.Tokens)
			_, uerr := uuid.Parse(got.NotificationID)
			assert.NoError(t, uerr)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantState, res.State)
			assert.Equal(t, got.NotificationID, res.NotificationID)
		})
	}
}

func TestSendRequiresTarget(t *testing.T) {
	_, err := New(0).Send(context.Background(), Target{URL: "https://x.test"}, Request{})
	assert.ErrorIs(t, err, ErrTargetRequired)
}
