package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"frame-notify-srv/internal/model"
	"frame-notify-srv/internal/subscriber"
	pkgKV "frame-notify-srv/pkg/kv"
)

func (r *implRepository) key(id int64) string {
	return r.prefix + strconv.FormatInt(id, 10)
}

func (r *implRepository) Get(ctx context.Context, id int64) (model.NotificationDetails, error) {
	raw, err := r.store.Get(ctx, r.key(id))
	if err != nil {
		if errors.Is(err, pkgKV.ErrNotFound) {
			return model.NotificationDetails{}, subscriber.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.subscriber.repository.kv.Get: %v", err)
		return model.NotificationDetails{}, err
	}

	var details model.NotificationDetails
	if err := json.Unmarshal(raw, &details); err != nil {
		r.l.Errorf(ctx, "internal.subscriber.repository.kv.Get.Unmarshal: %v", err)
		return model.NotificationDetails{}, fmt.Errorf("decode subscriber %d: %w", id, err)
	}
	return details, nil
}

func (r *implRepository) Put(ctx context.Context, id int64, details model.NotificationDetails) error {
	raw, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("encode subscriber %d: %w", id, err)
	}
	if err := r.store.Put(ctx, r.key(id), raw); err != nil {
		r.l.Errorf(ctx, "internal.subscriber.repository.kv.Put: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context, id int64) error {
	if err := r.store.Delete(ctx, r.key(id)); err != nil {
		r.l.Errorf(ctx, "internal.subscriber.repository.kv.Delete: %v", err)
		return err
	}
	return nil
}

// List pages through every key under the prefix. Keys whose suffix is not a subscriber id,
// and records that vanish or fail to decode mid-scan, are skipped. Store errors abort.
func (r *implRepository) List(ctx context.Context) ([]model.Subscriber, error) {
	var (
		subs   []model.Subscriber
		cursor string
		seen   = make(map[int64]struct{})
	)

	for {
		keys, next, err := r.store.Scan(ctx, r.prefix, cursor, scanPageSize)
		if err != nil {
			r.l.Errorf(ctx, "internal.subscriber.repository.kv.List.Scan: %v", err)
			return nil, err
		}

		for _, key := range keys {
			id, ok := r.parseKey(key)
			if !ok {
				r.l.Warnf(ctx, "internal.subscriber.repository.kv.List: skipping key %q", key)
				continue
			}
			// Redis SCAN may return a key more than once.
			if _, dup := seen[id]; dup {
				continue
			}

			raw, err := r.store.Get(ctx, key)
			if err != nil {
				if errors.Is(err, pkgKV.ErrNotFound) {
					continue
				}
				r.l.Errorf(ctx, "internal.subscriber.repository.kv.List.Get: %v", err)
				return nil, err
			}
			var details model.NotificationDetails
			if err := json.Unmarshal(raw, &details); err != nil {
				r.l.Warnf(ctx, "internal.subscriber.repository.kv.List: skipping subscriber %d: %v", id, err)
				continue
			}
			seen[id] = struct{}{}
			subs = append(subs, model.Subscriber{ID: id, Details: details})
		}

		if next == "" {
			return subs, nil
		}
		cursor = next
	}
}

func (r *implRepository) parseKey(key string) (int64, bool) {
	suffix, ok := strings.CutPrefix(key, r.prefix)
	if !ok || suffix == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil || strconv.FormatInt(id, 10) != suffix {
		return 0, false
	}
	return id, true
}
