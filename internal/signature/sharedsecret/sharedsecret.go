package sharedsecret

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"frame-notify-srv/internal/signature"
)

type signatureHeader struct {
	algorithm string
	digest    string
	timestamp int64
}

// Verify authenticates req.Body against the signature header. Every failure is
// signature.ErrInvalidSignature; the wrapped detail is for logs only.
func (v *implVerifier) Verify(ctx context.Context, req signature.Request) (signature.Envelope, error) {
	sh, err := parseHeader(req.Header.Get(HeaderName))
	if err != nil {
		v.l.Warnf(ctx, "internal.signature.sharedsecret.Verify: %v", err)
		return signature.Envelope{}, fmt.Errorf("%w: %v", signature.ErrInvalidSignature, err)
	}
	if sh.algorithm != algorithm {
		v.l.Warnf(ctx, "internal.signature.sharedsecret.Verify: unsupported algorithm %q", sh.algorithm)
		return signature.Envelope{}, fmt.Errorf("%w: unsupported algorithm %q", signature.ErrInvalidSignature, sh.algorithm)
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write(req.Body)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(sh.digest)) {
		v.l.Warnf(ctx, "internal.signature.sharedsecret.Verify: digest mismatch")
		return signature.Envelope{}, fmt.Errorf("%w: digest mismatch", signature.ErrInvalidSignature)
	}

	delta := req.At().Sub(time.UnixMilli(sh.timestamp))
	if delta < 0 {
		delta = -delta
	}
	if delta >= v.tolerance {
		v.l.Warnf(ctx, "internal.signature.sharedsecret.Verify: timestamp %d outside window of %s", sh.timestamp, v.tolerance)
		return signature.Envelope{}, fmt.Errorf("%w: timestamp outside replay window", signature.ErrInvalidSignature)
	}

	return signature.Envelope{Body: req.Body}, nil
}

// parseHeader splits "sha256=<hex>, t=<ms>" into exactly two fields.
func parseHeader(value string) (signatureHeader, error) {
	if value == "" {
		return signatureHeader{}, fmt.Errorf("missing %s header", HeaderName)
	}
	fields := strings.Split(value, fieldSeparator)
	if len(fields) != 2 {
		return signatureHeader{}, fmt.Errorf("expected 2 fields, got %d", len(fields))
	}

	alg, digest, ok := strings.Cut(fields[0], "=")
	if !ok || alg == "" || digest == "" {
		return signatureHeader{}, fmt.Errorf("malformed digest field")
	}

	_, ts, ok := strings.Cut(fields[1], "=")
	if !ok || ts == "" {
		return signatureHeader{}, fmt.Errorf("malformed timestamp field")
	}
	millis, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return signatureHeader{}, fmt.Errorf("timestamp: %v", err)
	}

	return signatureHeader{algorithm: alg, digest: digest, timestamp: millis}, nil
}

// Sign returns the header value for body at t, the way the publisher computes it.
func Sign(secret string, body []byte, t time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return fmt.Sprintf("%s=%s%st=%d", algorithm, hex.EncodeToString(mac.Sum(nil)), fieldSeparator, t.UnixMilli())
}
