package viewpoints

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/daybreak/internal/entities"
	daberr "github.com/KirkDiggler/daybreak/internal/errors"
)

type redisRepo struct {
	client redis.UniversalClient
}

// NewRedis creates a Redis-backed viewpoint repository
func NewRedis(client redis.UniversalClient) Repository {
	if client == nil {
		panic("redis client is required")
	}
	return &redisRepo{client: client}
}

func (r *redisRepo) key(characterID string) string {
	return "viewpoint:" + characterID
}

func (r *redisRepo) Get(ctx context.Context, characterID string) (*entities.Viewpoint, error) {
	if characterID == "" {
		return nil, daberr.InvalidArgument("character ID is required")
	}

	data, err := r.client.Get(ctx, r.key(characterID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, daberr.NotFoundf("viewpoint for character '%s' not found", characterID).
				WithMeta("character_id", characterID)
		}
		return nil, daberr.Wrapf(err, "failed to get viewpoint of %s", characterID)
	}

	var viewpoint entities.Viewpoint
	if err := json.Unmarshal(data, &viewpoint); err != nil {
		return nil, daberr.Wrap(err, "failed to unmarshal viewpoint")
	}
	return &viewpoint, nil
}

func (r *redisRepo) Save(ctx context.Context, viewpoint *entities.Viewpoint) error {
	if viewpoint == nil {
		return daberr.InvalidArgument("viewpoint cannot be nil")
	}
	if viewpoint.CharacterID == "" {
		return daberr.InvalidArgument("character ID is required")
	}

	data, err := json.Marshal(viewpoint)
	if err != nil {
		return daberr.Wrap(err, "failed to marshal viewpoint")
	}

	if err := r.client.Set(ctx, r.key(viewpoint.CharacterID), string(data), 0).Err(); err != nil {
		return daberr.Wrapf(err, "failed to save viewpoint of %s", viewpoint.CharacterID)
	}
	return nil
}
