package properties

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/daybreak/internal/entities"
	daberr "github.com/KirkDiggler/daybreak/internal/errors"
)

// redisStore keeps one Redis hash per entity, one field per property
type redisStore struct {
	client redis.UniversalClient
}

// NewRedis creates a Redis-backed property store
func NewRedis(client redis.UniversalClient) Store {
	if client == nil {
		panic("redis client is required")
	}
	return &redisStore{client: client}
}

func (s *redisStore) key(ref entities.EntityRef) string {
	return fmt.Sprintf("properties:%s:%s", ref.Kind, ref.ID)
}

func (s *redisStore) Get(ctx context.Context, ref entities.EntityRef, key string, dst any) (bool, error) {
	if key == "" {
		return false, daberr.InvalidArgument("property key is required")
	}

	data, err := s.client.HGet(ctx, s.key(ref), key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, daberr.Wrapf(err, "failed to get property %s of %s", key, ref)
	}

	if err := decode(key, data, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (s *redisStore) Set(ctx context.Context, ref entities.EntityRef, key string, value any) error {
	if key == "" {
		return daberr.InvalidArgument("property key is required")
	}

	data, err := encode(key, value)
	if err != nil {
		return err
	}

	if data == nil {
		if err := s.client.HDel(ctx, s.key(ref), key).Err(); err != nil {
			return daberr.Wrapf(err, "failed to unset property %s of %s", key, ref)
		}
		return nil
	}

	if err := s.client.HSet(ctx, s.key(ref), key, string(data)).Err(); err != nil {
		return daberr.Wrapf(err, "failed to set property %s of %s", key, ref)
	}
	return nil
}
