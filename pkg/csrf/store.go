// Package csrf implements the session-token store backing CSRF validation.
// Tokens are issued server-side, handed to the page, and checked on submit
// through the TokenIsValid contract. The store is Redis when configured and
// an in-memory map otherwise, so single-instance deployments work without
// extra infrastructure.
package csrf

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "csrf:token:"

// Config holds the store's connection configuration.
type Config struct {
	RedisURL      string // redis://... or rediss://... for TLS; empty = in-memory
	RedisPassword string
	TokenTTL      time.Duration
}

// Store issues and validates CSRF tokens.
type Store struct {
	ttl    time.Duration
	client *redis.Client

	mu  sync.Mutex
	mem map[string]time.Time // in-memory fallback, token -> expiry
}

// NewStore connects to Redis when a URL is configured; otherwise it falls
// back to in-memory tokens. A configured-but-unreachable Redis is an error:
// silently degrading a security store is worse than failing to boot.
func NewStore(cfg Config) (*Store, error) {
	s := &Store{
		ttl: cfg.TokenTTL,
		mem: make(map[string]time.Time),
	}
	if s.ttl <= 0 {
		s.ttl = time.Hour
	}

	if cfg.RedisURL == "" {
		return s, nil
	}

	parsedURL, err := url.Parse(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("csrf: invalid redis URL: %w", err)
	}

	useTLS := parsedURL.Scheme == "rediss"

	addr := parsedURL.Host
	if parsedURL.Port() == "" {
		addr = parsedURL.Host + ":6379"
	}

	password := cfg.RedisPassword
	if password == "" && parsedURL.User != nil {
		password, _ = parsedURL.User.Password()
	}

	opts := &redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
	if useTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	s.client = redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("csrf: redis connection failed: %w", err)
	}

	return s, nil
}

// Issue creates a fresh token, stores it with the configured TTL, and
// returns it.
func (s *Store) Issue(ctx context.Context) (string, error) {
	token := uuid.NewString()

	if s.client != nil {
		if err := s.client.Set(ctx, keyPrefix+token, "1", s.ttl).Err(); err != nil {
			return "", fmt.Errorf("csrf: storing token: %w", err)
		}
		return token, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	s.mem[token] = time.Now().Add(s.ttl)
	return token, nil
}

// TokenIsValid reports whether the token was issued by this store and has
// not expired. Any store failure counts as invalid.
func (s *Store) TokenIsValid(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}

	if s.client != nil {
		n, err := s.client.Exists(ctx, keyPrefix+token).Result()
		return err == nil && n > 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	expiry, ok := s.mem[token]
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		delete(s.mem, token)
		return false
	}
	return true
}

// Close releases the Redis connection when one is held.
func (s *Store) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

// pruneLocked drops expired in-memory tokens. Caller holds mu.
func (s *Store) pruneLocked() {
	now := time.Now()
	for token, expiry := range s.mem {
		if now.After(expiry) {
			delete(s.mem, token)
		}
	}
}
