package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := New(nil, nil)

	r := gin.New()
	r.Use(mw.Logger(), mw.Recovery())
	r.POST("/boom", mw.Observe("test"), func(c *gin.Context) {
		panic("kaboom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "kaboom", body["error"])
}

func TestObservePassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := New(nil, nil)

	r := gin.New()
	r.POST("/ok", mw.Observe("test"), func(c *gin.Context) {
		c.Status(http.StatusAccepted)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ok", nil))
	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestLoggerSetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := New(nil, nil)

	r := gin.New()
	r.Use(mw.Logger())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.Writer.Header().Get(RequestIDHeader))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, w.Body.String())
}
