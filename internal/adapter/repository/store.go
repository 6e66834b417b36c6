package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"resume-builder/internal/model"
)

const (
	// recordKey is the single slot holding the last submitted or
	// autosaved record.
	recordKey = "resume:record"
	// urlsKey holds recently used import URLs, most recent first.
	urlsKey = "resume:recent-urls"

	maxRecentURLs = 10
)

// Store persists the session's record and the recent-URL history in
// Redis. Constructed once at startup and injected; write failures are
// logged and swallowed because losing an autosave only costs
// convenience, never the correctness of the open session.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// LoadRecord returns the stored record, or false when the slot is
// empty, unreadable, or fails schema validation. Corrupt or old-shape
// data is treated as absent; it is never partially applied.
func (s *Store) LoadRecord(ctx context.Context) (*model.Resume, bool) {
	raw, err := s.rdb.Get(ctx, recordKey).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("store: load failed", "key", recordKey, "error", err)
		return nil, false
	}

	rec, err := model.Validate(raw)
	if err != nil {
		slog.Warn("store: discarding stored record that no longer validates", "error", err)
		return nil, false
	}
	return rec, true
}

// SaveRecord overwrites the single slot. Last write wins.
func (s *Store) SaveRecord(ctx context.Context, rec *model.Resume) {
	raw, err := json.Marshal(rec)
	if err != nil {
		slog.Warn("store: marshal failed", "error", err)
		return
	}
	if err := s.rdb.Set(ctx, recordKey, raw, 0).Err(); err != nil {
		slog.Warn("store: save failed", "key", recordKey, "error", err)
	}
}

// RecordURLUse moves url to the front of the recent list, dropping any
// earlier occurrence and anything beyond the cap.
func (s *Store) RecordURLUse(ctx context.Context, url string) {
	pipe := s.rdb.TxPipeline()
	pipe.LRem(ctx, urlsKey, 0, url)
	pipe.LPush(ctx, urlsKey, url)
	pipe.LTrim(ctx, urlsKey, 0, maxRecentURLs-1)
	if _, err := pipe.Exec(ctx); err != nil {
		slog.Warn("store: recording url failed", "key", urlsKey, "error", err)
	}
}

// RecentURLs returns up to 10 URLs, most recent first.
func (s *Store) RecentURLs(ctx context.Context) []string {
	urls, err := s.rdb.LRange(ctx, urlsKey, 0, maxRecentURLs-1).Result()
	if err != nil {
		slog.Warn("store: listing recent urls failed", "key", urlsKey, "error", err)
		return nil
	}
	return urls
}
