package directory

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
)

// Encode builds a signed envelope for payload as a frame client would. It is the inverse
// of Verify and is used by tools and tests that need to produce valid requests.
func Encode(fid int64, key ed25519.PrivateKey, payload []byte) ([]byte, error) {
	pub := key.Public().(ed25519.PublicKey)
	hdr, err := json.Marshal(header{
		FID:  fid,
		Type: headerTypeAppKey,
		Key:  keyPrefix + hex.EncodeToString(pub),
	})
	if err != nil {
		return nil, err
	}

	h := base64.RawURLEncoding.EncodeToString(hdr)
	p := base64.RawURLEncoding.EncodeToString(payload)
	sig := ed25519.Sign(key, []byte(h+"."+p))

	return json.Marshal(envelope{
		Header:    h,
		Payload:   p,
		Signature: base64.RawURLEncoding.EncodeToString(sig),
	})
}

// PublicKeyHex returns the directory form of the public half of key.
func PublicKeyHex(key ed25519.PrivateKey) string {
	return keyPrefix + hex.EncodeToString(key.Public().(ed25519.PublicKey))
}
