package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pump-clicker/constants"
	"github.com/lixenwraith/pump-clicker/engine"
)

// RedisOptions configures RedisStore
type RedisOptions struct {
	Addr       string
	Password   string
	DB         int
	Key        string
	MaxRetries uint64 // Connection ping retries
}

// RedisStore keeps the record as a plain string value under Key, no TTL
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore wraps an existing client
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = constants.StorageKey
	}
	return &RedisStore{client: client, key: key}
}

// redisLogger routes client logs to logrus, the default logger writes to stderr under the terminal
type redisLogger struct{}

func (redisLogger) Printf(_ context.Context, format string, v ...interface{}) {
	logrus.Debugf("redis: "+format, v...)
}

var setLoggerOnce sync.Once

// ConnectRedis dials Redis and pings with exponential backoff
func ConnectRedis(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	if opts.Addr == "" {
		opts.Addr = "localhost:6379"
	}
	setLoggerOnce.Do(func() { redis.SetLogger(redisLogger{}) })
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), opts.MaxRetries), ctx)
	err := backoff.Retry(func() error {
		if err := client.Ping(ctx).Err(); err != nil {
			logrus.Warnf("Redis connection failed: %v, retrying...", err)
			return err
		}
		return nil
	}, b)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr, err)
	}

	logrus.WithField("addr", opts.Addr).Info("Redis store connected")
	return NewRedisStore(client, opts.Key), nil
}

// Load implements engine.SnapshotStore
func (r *RedisStore) Load(ctx context.Context) (engine.Snapshot, bool, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return engine.Snapshot{}, false, nil
	}
	if err != nil {
		return engine.Snapshot{}, false, fmt.Errorf("failed to get %s: %w", r.key, err)
	}

	s, ok := Decode(data)
	if !ok {
		logrus.Warnf("ignoring malformed saved state under key %s", r.key)
	}
	return s, ok, nil
}

// Save implements engine.SnapshotStore
func (r *RedisStore) Save(ctx context.Context, s engine.Snapshot) error {
	data, err := Encode(s)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", r.key, err)
	}
	return nil
}

// Close releases the client
func (r *RedisStore) Close() error {
	return r.client.Close()
}
