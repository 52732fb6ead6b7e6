package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ProcessingMarker is stored under a key while its request is in flight.
const ProcessingMarker = "processing"

// OperationObserver records Redis operations.
type OperationObserver interface {
	ObserveRedis(operation string, err error)
}

// IdempotencyStore implements usecase.IdempotencyStore using Redis.
type IdempotencyStore struct {
	client   redis.Cmdable
	prefix   string
	observer OperationObserver
}

// NewIdempotencyStore creates a new IdempotencyStore. observer may be nil.
func NewIdempotencyStore(client redis.Cmdable, observer OperationObserver) *IdempotencyStore {
	return &IdempotencyStore{
		client:   client,
		prefix:   "cashflow:idempotency:",
		observer: observer,
	}
}

// CheckAndSet claims key with response, or with ProcessingMarker when
// response is nil. If the key is already claimed it reports true and the
// stored value.
func (s *IdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	fullKey := s.prefix + key

	var value any = ProcessingMarker
	if response != nil {
		value = response
	}

	set, err := s.client.SetNX(ctx, fullKey, value, ttl).Result()
	s.observe("setnx", err)
	if err != nil {
		return false, nil, err
	}
	if set {
		return false, nil, nil
	}

	existing, err := s.client.Get(ctx, fullKey).Bytes()
	if errors.Is(err, redis.Nil) {
		// Expired between SETNX and GET.
		return false, nil, nil
	}
	s.observe("get", err)
	if err != nil {
		return false, nil, err
	}

	return true, existing, nil
}

// Update stores the final response under key.
func (s *IdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	err := s.client.Set(ctx, s.prefix+key, response, ttl).Err()
	s.observe("set", err)
	return err
}

// Release deletes key.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	err := s.client.Del(ctx, s.prefix+key).Err()
	s.observe("del", err)
	return err
}

// Ping checks the connection.
func (s *IdempotencyStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *IdempotencyStore) observe(operation string, err error) {
	if s.observer != nil {
		s.observer.ObserveRedis(operation, err)
	}
}
