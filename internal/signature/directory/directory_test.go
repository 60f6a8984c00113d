package directory

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"frame-notify-srv/internal/model"
	"frame-notify-srv/internal/signature"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDirectory struct {
	active bool
	err    error
	calls  int
	gotFID int64
	gotKey string
}

func (f *fakeDirectory) IsActiveAppKey(_ context.Context, fid int64, key string) (bool, error) {
	f.calls++
	f.gotFID = fid
	f.gotKey = key
	return f.active, f.err
}

func newKey(t *testing.T) ed25519.PrivateKey {
	t.Helper()
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return priv
}

const enabledPayload = `{"event":"notifications_enabled","notificationDetails":{"url":"https://api.client.test/v1/notify","token":"tok-1"}}`

func TestVerify(t *testing.T) {
	key := newKey(t)
	otherKey := newKey(t)

	valid, err := Encode(123, key, []byte(enabledPayload))
	require.NoError(t, err)

	tampered := func() []byte {
		var env envelope
		require.NoError(t, json.Unmarshal(valid, &env))
		env.Payload = base64.RawURLEncoding.EncodeToString([]byte(`{"event":"frame_removed"}`))
		b, err := json.Marshal(env)
		require.NoError(t, err)
		return b
	}()

	wrongSigner := func() []byte {
		var env, other envelope
		require.NoError(t, json.Unmarshal(valid, &env))
		b, err := Encode(123, otherKey, []byte(enabledPayload))
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(b, &other))
		env.Signature = other.Signature
		out, err := json.Marshal(env)
		require.NoError(t, err)
		return out
	}()

	badSchema, err := Encode(123, key, []byte(`{"event":"frame_exploded"}`))
	require.NoError(t, err)
	missingDetails, err := Encode(123, key, []byte(`{"event":"notifications_enabled"}`))
	require.NoError(t, err)

	badHeader := func(hdr string) []byte {
		b, err := json.Marshal(envelope{
			Header:    base64.RawURLEncoding.EncodeToString([]byte(hdr)),
			Payload:   base64.RawURLEncoding.EncodeToString([]byte(enabledPayload)),
			Signature: base64.RawURLEncoding.EncodeToString(make([]byte, ed25519.SignatureSize)),
		})
		require.NoError(t, err)
		return b
	}

	tests := []struct {
		name      string
		body      []byte
		dir       fakeDirectory
		wantErr   error
		wantCalls int
	}{
		{name: "valid", body: valid, dir: fakeDirectory{active: true}, wantCalls: 1},
		{name: "not json", body: []byte(`not json`), wantErr: signature.ErrMalformedSignature},
		{name: "missing fields", body: []byte(`{"header":"abc"}`), wantErr: signature.ErrMalformedSignature},
		{name: "trailing bytes", body: append(append([]byte{}, valid...), []byte(`garbage{{{`)...), dir: fakeDirectory{active: true}, wantErr: signature.ErrMalformedSignature},
		{name: "header not base64", body: []byte(`{"header":"***","payload":"e30","signature":"AA"}`), wantErr: signature.ErrMalformedSignature},
		{name: "header type", body: badHeader(`{"fid":123,"type":"custody","key":"` + PublicKeyHex(key) + `"}`), wantErr: signature.ErrMalformedSignature},
		{name: "header fid", body: badHeader(`{"fid":0,"type":"app_key","key":"` + PublicKeyHex(key) + `"}`), wantErr: signature.ErrMalformedSignature},
		{name: "header key", body: badHeader(`{"fid":123,"type":"app_key","key":"0x1234"}`), wantErr: signature.ErrMalformedSignature},
		{name: "tampered payload", body: tampered, dir: fakeDirectory{active: true}, wantErr: signature.ErrInvalidSignature},
		{name: "wrong signer", body: wrongSigner, dir: fakeDirectory{active: true}, wantErr: signature.ErrInvalidSignature},
		{name: "unknown event", body: badSchema, dir: fakeDirectory{active: true}, wantErr: signature.ErrMalformedPayload},
		{name: "missing details", body: missingDetails, dir: fakeDirectory{active: true}, wantErr: signature.ErrMalformedPayload},
		{name: "revoked key", body: valid, dir: fakeDirectory{active: false}, wantErr: signature.ErrUnauthorizedKey, wantCalls: 1},
		{name: "directory down", body: valid, dir: fakeDirectory{err: errors.New("dial tcp: refused")}, wantErr: signature.ErrVerifierUnavailable, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tt.dir
			v := New(nil, &dir)

			env, err := v.Verify(context.Background(), signature.Request{Body: tt.body})
			assert.Equal(t, tt.wantCalls, dir.calls)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(123), env.SubscriberID)
			assert.Equal(t, int64(123), dir.gotFID)
			assert.Equal(t, PublicKeyHex(key), dir.gotKey)
			require.NotNil(t, env.Event)
			assert.Equal(t, model.EventNotificationsEnabled, env.Event.Kind)
			require.NotNil(t, env.Event.Details)
			assert.Equal(t, "tok-1", env.Event.Details.Token)
			assert.JSONEq(t, enabledPayload, string(env.Body))
		})
	}
}

func TestDecodeSegmentAcceptsPadding(t *testing.T) {
	b, err := decodeSegment(base64.URLEncoding.EncodeToString([]byte("ab")))
	require.NoError(t, err)
	assert.Equal(t, []byte("ab"), b)
}
