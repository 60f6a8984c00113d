package http

import (
	"errors"

	"frame-notify-srv/internal/signature"
	"frame-notify-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// HandleFrameEvent receives signed capability events from frame clients.
// @Summary Frame client webhook
// @Tags Webhook
// @Accept json
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /webhook [POST]
func (h Handler) HandleFrameEvent(c *gin.Context) {
	ctx := c.Request.Context()

	ev, err := h.processFrameEventRequest(c)
	if err != nil {
		if isAuthFailure(err) {
			h.l.Warnf(ctx, "internal.webhook.delivery.http.HandleFrameEvent: rejected: %v", err)
		} else {
			h.l.Errorf(ctx, "internal.webhook.delivery.http.HandleFrameEvent: %v", err)
		}
		response.ErrorWithMap(c, err, frameErrorMap, h.discord)
		return
	}

	if err := h.uc.HandleCapabilityEvent(ctx, ev); err != nil {
		h.l.Errorf(ctx, "internal.webhook.delivery.http.HandleFrameEvent.HandleCapabilityEvent: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c)
}

// HandleNewPost receives signed "post published" events and broadcasts them.
// @Summary Publisher webhook
// @Tags Webhook
// @Accept json
// @Produce json
// @Param X-Ghost-Signature header string true "sha256=<hex>, t=<unix ms>"
// @Success 200 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /new_post [POST]
func (h Handler) HandleNewPost(c *gin.Context) {
	ctx := c.Request.Context()

	pub, err := h.processNewPostRequest(c)
	if err != nil {
		if isAuthFailure(err) {
			h.l.Warnf(ctx, "internal.webhook.delivery.http.HandleNewPost: rejected: %v", err)
		} else {
			h.l.Errorf(ctx, "internal.webhook.delivery.http.HandleNewPost: %v", err)
		}
		response.ErrorWithMap(c, err, newPostErrorMap, h.discord)
		return
	}

	n, err := h.uc.HandlePublication(ctx, pub)
	if err != nil {
		h.l.Errorf(ctx, "internal.webhook.delivery.http.HandleNewPost.HandlePublication: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	response.Notified(c, n)
}

func isAuthFailure(err error) bool {
	return errors.Is(err, signature.ErrInvalidSignature) || errors.Is(err, signature.ErrUnauthorizedKey)
}
