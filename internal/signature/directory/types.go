package directory

import (
	"context"

	"frame-notify-srv/pkg/log"
)

const (
	headerTypeAppKey = "app_key"
	keyPrefix        = "0x"
	keyHexLen        = 64
)

// AppKeyDirectory answers whether key is a currently authorized app key of fid.
// A transport failure must be reported as an error, not as false.
type AppKeyDirectory interface {
	IsActiveAppKey(ctx context.Context, fid int64, key string) (bool, error)
}

type implVerifier struct {
	l   log.Logger
	dir AppKeyDirectory
}

// envelope is the JSON Farcaster Signature container. All three fields are base64url.
type envelope struct {
	Header    string `json:"header"`
	Payload   string `json:"payload"`
	Signature string `json:"signature"`
}

type header struct {
	FID  int64  `json:"fid"`
	Type string `json:"type"`
	Key  string `json:"key"`
}
