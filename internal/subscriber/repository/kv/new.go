// Package kv stores subscriber records in a key-value store, one key per subscriber.
package kv

import (
	"frame-notify-srv/internal/subscriber"
	pkgKV "frame-notify-srv/pkg/kv"
	pkgLog "frame-notify-srv/pkg/log"
)

// DefaultKeyPrefix namespaces the registry inside a shared store.
const DefaultKeyPrefix = "pinata-blog-frame:user:"

const scanPageSize = 100

type implRepository struct {
	l      pkgLog.Logger
	store  pkgKV.Store
	prefix string
}

var _ subscriber.Repository = &implRepository{}

// New returns a Repository over store. An empty prefix means DefaultKeyPrefix.
func New(l pkgLog.Logger, store pkgKV.Store, prefix string) subscriber.Repository {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	if l == nil {
		l = pkgLog.NewNop()
	}
	return &implRepository{
		l:      l,
		store:  store,
		prefix: prefix,
	}
}
