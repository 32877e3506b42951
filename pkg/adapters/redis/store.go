package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/soleret/hamming/pkg/fingerprint"
	"github.com/soleret/hamming/pkg/ports"
)

// Store implements ports.Store using Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for fingerprints.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for fingerprints.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "hamming:fp:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key(name string) string {
	return s.prefix + name
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Save persists the fingerprint to Redis.
func (s *Store) Save(ctx context.Context, fp fingerprint.Fingerprint) error {
	data, err := json.Marshal(fp)
	if err != nil {
		return fmt.Errorf("failed to marshal fingerprint: %w", err)
	}

	pipe := s.client.Pipeline()

	// 1. Save JSON with TTL
	// Use 0 for no expiration if ttl is not set.
	pipe.Set(ctx, s.key(fp.Name), data, s.ttl)

	// 2. Add to Index (ZSET)
	// Score = Now + TTL. If TTL = 0, Score = +Inf (approx).
	score := float64(time.Now().Add(s.ttl).Unix())
	if s.ttl == 0 {
		score = 4102444800 // 2100-01-01 (Far enough for now)
	}

	pipe.ZAdd(ctx, s.indexKey(), backend.Z{
		Score:  score,
		Member: fp.Name,
	})

	// Execute pipeline
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}

	return nil
}

// Load retrieves a fingerprint from Redis.
func (s *Store) Load(ctx context.Context, name string) (fingerprint.Fingerprint, error) {
	val, err := s.client.Get(ctx, s.key(name)).Result()
	if err != nil {
		if err == backend.Nil {
			return fingerprint.Fingerprint{}, ports.ErrNotFound
		}
		return fingerprint.Fingerprint{}, fmt.Errorf("failed to get from redis: %w", err)
	}

	var fp fingerprint.Fingerprint
	if err := json.Unmarshal([]byte(val), &fp); err != nil {
		return fingerprint.Fingerprint{}, fmt.Errorf("failed to unmarshal fingerprint: %w", err)
	}

	return fp, nil
}

// Delete removes the fingerprint and its index entry.
func (s *Store) Delete(ctx context.Context, name string) error {
	pipe := s.client.Pipeline()

	pipe.Del(ctx, s.key(name))
	pipe.ZRem(ctx, s.indexKey(), name)

	_, err := pipe.Exec(ctx)
	return err
}

// List returns all stored fingerprints.
// Updated to use ZSET lazy cleanup.
func (s *Store) List(ctx context.Context) ([]fingerprint.Fingerprint, error) {
	// Lazy Cleanup: Remove expired names from Index
	now := float64(time.Now().Unix())

	// If TTL > 0, we can rely on cleanup.
	// If everything is infinite, this removes nothing.
	// ZREMRANGEBYSCORE key -inf (now)
	err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", fmt.Sprintf("%f", now)).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to prune expired fingerprints: %w", err)
	}

	names, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list fingerprints: %w", err)
	}
	if len(names) == 0 {
		return []fingerprint.Fingerprint{}, nil
	}

	pipe := s.client.Pipeline()
	cmds := make([]*backend.StringCmd, len(names))
	for i, name := range names {
		cmds[i] = pipe.Get(ctx, s.key(name))
	}
	if _, err := pipe.Exec(ctx); err != nil && err != backend.Nil {
		return nil, fmt.Errorf("failed to list fingerprints: %w", err)
	}

	all := make([]fingerprint.Fingerprint, 0, len(names))
	for _, cmd := range cmds {
		val, err := cmd.Result()
		if err == backend.Nil {
			// The value can expire between the index read and the get.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list fingerprints: %w", err)
		}

		var fp fingerprint.Fingerprint
		if err := json.Unmarshal([]byte(val), &fp); err != nil {
			return nil, fmt.Errorf("failed to unmarshal fingerprint: %w", err)
		}
		all = append(all, fp)
	}

	return all, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
