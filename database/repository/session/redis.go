package sessionRepo

import (
	"context"
	"encoding/json"
	"time"

	"clinicflow/models"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "dialogue:session:"

type redisSessionRepo struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionRepo returns a SessionRepository backed by Redis with a
// per-session TTL. Idle conversations expire instead of accumulating.
func NewRedisSessionRepo(client *redis.Client, ttl time.Duration) SessionRepository {
	return &redisSessionRepo{client: client, ttl: ttl}
}

func (r *redisSessionRepo) Get(ctx context.Context, userKey string) (*models.Session, error) {
	data, err := r.client.Get(ctx, sessionKeyPrefix+userKey).Result()
	if err == redis.Nil {
		return models.NewSession(), nil
	}
	if err != nil {
		return nil, err
	}
	var sess models.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (r *redisSessionRepo) Put(ctx context.Context, userKey string, session *models.Session) error {
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKeyPrefix+userKey, b, r.ttl).Err()
}

func (r *redisSessionRepo) Delete(ctx context.Context, userKey string) error {
	return r.client.Del(ctx, sessionKeyPrefix+userKey).Err()
}
