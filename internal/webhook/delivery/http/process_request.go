package http

import (
	"errors"
	"fmt"
	"net/http"

	"frame-notify-srv/internal/model"
	"frame-notify-srv/internal/signature"

	"github.com/gin-gonic/gin"
)

// maxBodyBytes caps webhook bodies. Publisher posts carry full html and plaintext.
const maxBodyBytes = 5 << 20

// readRawBody returns the body exactly as received and keeps it on the context for
// incident reports.
func (h Handler) readRawBody(c *gin.Context) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	body, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("%w: limit %d bytes", errBodyTooLarge, tooLarge.Limit)
		}
		return nil, fmt.Errorf("read body: %w", err)
	}
	c.Set(gin.BodyBytesKey, body)
	return body, nil
}

func (h Handler) processFrameEventRequest(c *gin.Context) (model.CapabilityEvent, error) {
	body, err := h.readRawBody(c)
	if err != nil {
		return model.CapabilityEvent{}, err
	}

	env, err := h.frame.Verify(c.Request.Context(), signature.Request{Body: body, Header: c.Request.Header})
	if err != nil {
		return model.CapabilityEvent{}, err
	}
	if env.Event == nil {
		return model.CapabilityEvent{}, fmt.Errorf("%w: no event in envelope", signature.ErrMalformedPayload)
	}
	return *env.Event, nil
}

func (h Handler) processNewPostRequest(c *gin.Context) (model.Publication, error) {
	body, err := h.readRawBody(c)
	if err != nil {
		return model.Publication{}, err
	}

	env, err := h.ghost.Verify(c.Request.Context(), signature.Request{Body: body, Header: c.Request.Header})
	if err != nil {
		return model.Publication{}, err
	}

	// Decoding happens only after the raw bytes are authenticated.
	return model.DecodePublication(env.Body)
}
