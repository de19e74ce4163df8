package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOptions configures the redis backend.
type RedisOptions struct {
	Addr        string
	Password    string
	DB          int
	KeyPrefix   string
	DialTimeout time.Duration
}

// RedisStore keeps values as plain redis strings under KeyPrefix+key.
type RedisStore struct {
	opts RedisOptions

	mu     sync.RWMutex
	client *redis.Client
}

func NewRedisStore(opts RedisOptions) *RedisStore {
	if opts.Addr == "" {
		opts.Addr = "localhost:6379"
	}
	if opts.DialTimeout <= 0 {
		opts.DialTimeout = 5 * time.Second
	}
	return &RedisStore{opts: opts}
}

func (s *RedisStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:        s.opts.Addr,
		Password:    s.opts.Password,
		DB:          s.opts.DB,
		DialTimeout: s.opts.DialTimeout,
		MaxRetries:  1,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("connect to redis %s: %w", s.opts.Addr, err)
	}

	s.client = client
	return nil
}

func (s *RedisStore) Load(ctx context.Context, key string) (string, bool, error) {
	client, err := s.getClient()
	if err != nil {
		return "", false, err
	}

	value, err := client.Get(ctx, s.opts.KeyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (s *RedisStore) Save(ctx context.Context, key, value string) error {
	client, err := s.getClient()
	if err != nil {
		return err
	}
	return client.Set(ctx, s.opts.KeyPrefix+key, value, 0).Err()
}

func (s *RedisStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return nil
	}
	err := s.client.Close()
	s.client = nil
	return err
}

func (s *RedisStore) getClient() (*redis.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.client == nil {
		return nil, errors.New("store is not initialized")
	}
	return s.client, nil
}
