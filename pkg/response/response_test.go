package response

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"frame-notify-srv/pkg/discord"
	"frame-notify-srv/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDiscord struct {
	reports chan string
}

func newFakeDiscord() *fakeDiscord {
	return &fakeDiscord{reports: make(chan string, 8)}
}

func (f *fakeDiscord) SendEmbed(context.Context, discord.MessageOptions) error { return nil }
func (f *fakeDiscord) SendError(context.Context, string, string, error) error { return nil }
func (f *fakeDiscord) Close() error { return nil }
func (f *fakeDiscord) ReportBug(_ context.Context, message string) error {
	f.reports <- message
	return nil
}

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/new_post", strings.NewReader(""))
	c.Request.Header.Set("X-Ghost-Signature", "sha256=abc, t=1")
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Resp {
	t.Helper()
	var r Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &r))
	return r
}

func TestError(t *testing.T) {
	errBoom := stderrors.New("boom")
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
		wantReport bool
	}{
		{"http error", errors.NewHTTPError("Malformed payload", http.StatusBadRequest), http.StatusBadRequest, "Malformed payload", false},
		{"http error default status", errors.NewHTTPError("bad", 0), http.StatusBadRequest, "bad", false},
		{"unauthorized", errors.NewUnauthorizedHTTPError(""), http.StatusUnauthorized, errors.MessageUnauthorized, false},
		{"mapped internal", errors.NewInternalHTTPError("Directory unavailable"), http.StatusInternalServerError, "Directory unavailable", true},
		{"unknown error", errBoom, http.StatusInternalServerError, "boom", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(t)
			d := newFakeDiscord()

			Error(c, tt.err, d)

			assert.Equal(t, tt.wantStatus, w.Code)
			r := decode(t, w)
			assert.False(t, r.Success)
			assert.Equal(t, tt.wantMsg, r.Error)

			if tt.wantReport {
				select {
				case msg := <-d.reports:
					assert.Contains(t, msg, "/new_post")
				case <-time.After(time.Second):
					t.Fatal("expected a discord report")
				}
			} else {
				assert.Empty(t, d.reports)
			}
		})
	}
}

func TestErrorWithMap(t *testing.T) {
	errDomain := stderrors.New("domain failure")
	eMap := ErrorMapping{errDomain: errors.NewUnauthorizedHTTPError("Invalid signature")}

	c, w := newTestContext(t)
	ErrorWithMap(c, stderrors.Join(errDomain, stderrors.New("detail")), eMap, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid signature", decode(t, w).Error)

	c, w = newTestContext(t)
	ErrorWithMap(c, stderrors.New("other"), eMap, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "other", decode(t, w).Error)
}

func TestOKAndNotified(t *testing.T) {
	c, w := newTestContext(t)
	OK(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	c, w = newTestContext(t)
	Notified(c, 0)
	assert.JSONEq(t, `{"success":true,"notifiedUsers":0}`, w.Body.String())
}

func TestPanicError(t *testing.T) {
	c, w := newTestContext(t)
	PanicError(c, "kaboom", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "kaboom", decode(t, w).Error)
}

func TestReportRedactsCredentials(t *testing.T) {
	c, _ := newTestContext(t)
	c.Set(gin.BodyBytesKey, []byte(`{"post":{}}`))

	msg := buildInternalServerErrorDataForReportBug(c, "boom", nil)
	assert.NotContains(t, msg, "sha256=abc")
	assert.Contains(t, msg, "X-Ghost-Signature: "+redactedHeaderValue)
	assert.Contains(t, msg, `"post"`)
	assert.Contains(t, msg, "Error   : boom")
}

func TestSplitMessageForDiscord(t *testing.T) {
	short := "line one\nline two"
	assert.Equal(t, []string{short}, splitMessageForDiscord(short))

	long := strings.Repeat("a", DiscordMaxMessageLen+10)
	chunks := splitMessageForDiscord(long)
	require.Len(t, chunks, 2)
	for _, ch := range chunks {
		assert.LessOrEqual(t, len(ch), DiscordMaxMessageLen)
	}
}
