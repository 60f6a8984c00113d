package directory

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"frame-notify-srv/internal/model"
	"frame-notify-srv/internal/signature"
)

// Verify checks, in order: envelope shape, header, ed25519 signature, payload schema and
// finally the directory. Local checks run first so forged requests never reach the network.
func (v *implVerifier) Verify(ctx context.Context, req signature.Request) (signature.Envelope, error) {
	var env envelope
	if err := json.Unmarshal(req.Body, &env); err != nil {
		return signature.Envelope{}, fmt.Errorf("%w: %v", signature.ErrMalformedSignature, err)
	}
	if env.Header == "" || env.Payload == "" || env.Signature == "" {
		return signature.Envelope{}, fmt.Errorf("%w: header, payload and signature are required", signature.ErrMalformedSignature)
	}

	hdr, pub, err := decodeHeader(env.Header)
	if err != nil {
		return signature.Envelope{}, err
	}

	sig, err := decodeSegment(env.Signature)
	if err != nil || len(sig) != ed25519.SignatureSize {
		return signature.Envelope{}, fmt.Errorf("%w: signature is not a %d byte ed25519 signature", signature.ErrMalformedSignature, ed25519.SignatureSize)
	}
	if !ed25519.Verify(pub, []byte(env.Header+"."+env.Payload), sig) {
		v.l.Warnf(ctx, "internal.signature.directory.Verify: signature mismatch for fid %d", hdr.FID)
		return signature.Envelope{}, signature.ErrInvalidSignature
	}

	payload, err := decodeSegment(env.Payload)
	if err != nil {
		return signature.Envelope{}, fmt.Errorf("%w: payload: %v", signature.ErrMalformedPayload, err)
	}
	ev, err := model.DecodeCapabilityEvent(hdr.FID, payload)
	if err != nil {
		return signature.Envelope{}, fmt.Errorf("%w: %v", signature.ErrMalformedPayload, err)
	}

	ok, err := v.dir.IsActiveAppKey(ctx, hdr.FID, hdr.Key)
	if err != nil {
		v.l.Errorf(ctx, "internal.signature.directory.Verify.IsActiveAppKey: %v", err)
		return signature.Envelope{}, fmt.Errorf("%w: %v", signature.ErrVerifierUnavailable, err)
	}
	if !ok {
		v.l.Warnf(ctx, "internal.signature.directory.Verify: key %s is not an active app key of fid %d", hdr.Key, hdr.FID)
		return signature.Envelope{}, signature.ErrUnauthorizedKey
	}

	return signature.Envelope{
		SubscriberID: hdr.FID,
		Event:        &ev,
		Body:         payload,
	}, nil
}

func decodeHeader(segment string) (header, ed25519.PublicKey, error) {
	raw, err := decodeSegment(segment)
	if err != nil {
		return header{}, nil, fmt.Errorf("%w: header: %v", signature.ErrMalformedSignature, err)
	}

	var hdr header
	if err := json.Unmarshal(raw, &hdr); err != nil {
		return header{}, nil, fmt.Errorf("%w: header: %v", signature.ErrMalformedSignature, err)
	}
	if hdr.FID <= 0 {
		return header{}, nil, fmt.Errorf("%w: header fid must be positive", signature.ErrMalformedSignature)
	}
	if hdr.Type != headerTypeAppKey {
		return header{}, nil, fmt.Errorf("%w: unsupported header type %q", signature.ErrMalformedSignature, hdr.Type)
	}

	pub, err := decodeKey(hdr.Key)
	if err != nil {
		return header{}, nil, err
	}
	return hdr, pub, nil
}

func decodeKey(key string) (ed25519.PublicKey, error) {
	hexKey, ok := strings.CutPrefix(key, keyPrefix)
	if !ok || len(hexKey) != keyHexLen {
		return nil, fmt.Errorf("%w: key must be %s followed by %d hex digits", signature.ErrMalformedSignature, keyPrefix, keyHexLen)
	}
	b, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: key: %v", signature.ErrMalformedSignature, err)
	}
	return ed25519.PublicKey(b), nil
}

// decodeSegment accepts base64url with or without padding.
func decodeSegment(s string) ([]byte, error) {
	b, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, errors.New("empty segment")
	}
	return b, nil
}
