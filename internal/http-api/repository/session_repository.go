package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionRepository stores refresh tokens. Tokens are pure TTL state, so
// they live in Redis rather than a database table.
type SessionRepository interface {
	Save(ctx context.Context, token, userID string, ttl time.Duration) error
	Lookup(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

type sessionRepository struct {
	client *redis.Client
}

// NewSessionRepository connects to Redis and verifies the connection.
func NewSessionRepository(redisAddr, redisPassword string) (SessionRepository, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         redisAddr,
		Password:     redisPassword,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &sessionRepository{client: rdb}, nil
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:refresh:%s", token)
}

// Save stores the token -> userID mapping with the given TTL. Redis expiry
// handles token expiration; there is no sweep job.
func (r *sessionRepository) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	return r.client.Set(ctx, sessionKey(token), userID, ttl).Err()
}

// Lookup resolves a refresh token to the user id it was issued for.
func (r *sessionRepository) Lookup(ctx context.Context, token string) (string, error) {
	userID, err := r.client.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

func (r *sessionRepository) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, sessionKey(token)).Err()
}
