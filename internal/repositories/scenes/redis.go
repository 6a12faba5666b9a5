package scenes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/daybreak/internal/entities"
	daberr "github.com/KirkDiggler/daybreak/internal/errors"
	"github.com/KirkDiggler/daybreak/internal/uuid"
)

const (
	sceneKeyPrefix    = "scene:"
	templateKeyPrefix = "scene:template:"
	allScenesKey      = "scenes"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
}

// redisRepo stores each scene as JSON and keeps a template -> ID index
type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
}

// NewRedis creates a Redis-backed scene repository with random IDs
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client:        client,
		UUIDGenerator: uuid.NewGoogleUUIDGenerator(),
	})
}

// NewRedisRepository creates a Redis-backed scene repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return &redisRepo{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
	}
}

func (r *redisRepo) sceneKey(id string) string {
	return sceneKeyPrefix + id
}

func (r *redisRepo) templateKey(template string) string {
	return templateKeyPrefix + template
}

func (r *redisRepo) Create(ctx context.Context, scene *entities.Scene) error {
	if err := validate(scene); err != nil {
		return err
	}

	// The caller's scene only gets its ID once it is stored
	stored := *scene
	if stored.ID == "" {
		stored.ID = r.uuidGenerator.New()
	}

	data, err := json.Marshal(&stored)
	if err != nil {
		return daberr.Wrap(err, "failed to marshal scene")
	}

	// Claim the template first so two creates cannot both win
	claimed, err := r.client.SetNX(ctx, r.templateKey(stored.Template), stored.ID, 0).Result()
	if err != nil {
		return daberr.Wrapf(err, "failed to claim template %s", stored.Template)
	}
	if !claimed {
		return daberr.AlreadyExistsf("scene with template '%s' already exists", stored.Template).
			WithMeta("template", stored.Template)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.sceneKey(stored.ID), string(data), 0)
	pipe.SAdd(ctx, allScenesKey, stored.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		// Release the template so a retry can succeed
		_ = r.client.Del(ctx, r.templateKey(stored.Template)).Err()
		return daberr.Wrapf(err, "failed to store scene %s", stored.Template)
	}

	scene.ID = stored.ID
	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*entities.Scene, error) {
	if id == "" {
		return nil, daberr.InvalidArgument("scene ID is required")
	}

	data, err := r.client.Get(ctx, r.sceneKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, daberr.NotFoundf("scene with ID '%s' not found", id).
				WithMeta("scene_id", id)
		}
		return nil, daberr.Wrapf(err, "failed to get scene %s", id)
	}

	var scene entities.Scene
	if err := json.Unmarshal(data, &scene); err != nil {
		return nil, daberr.Wrapf(err, "failed to unmarshal scene %s", id)
	}

	return &scene, nil
}

func (r *redisRepo) FindByTemplate(ctx context.Context, template string) (*entities.Scene, error) {
	if template == "" {
		return nil, daberr.InvalidArgument("scene template is required")
	}

	id, err := r.client.Get(ctx, r.templateKey(template)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, daberr.NotFoundf("scene with template '%s' not found", template).
				WithMeta("template", template)
		}
		return nil, daberr.Wrapf(err, "failed to look up template %s", template)
	}

	return r.Get(ctx, id)
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	scene, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.sceneKey(id), r.templateKey(scene.Template))
	pipe.SRem(ctx, allScenesKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return daberr.Wrapf(err, "failed to delete scene %s", id)
	}

	return nil
}

func (r *redisRepo) List(ctx context.Context) ([]*entities.Scene, error) {
	ids, err := r.client.SMembers(ctx, allScenesKey).Result()
	if err != nil {
		return nil, daberr.Wrap(err, "failed to list scenes")
	}

	scenes := make([]*entities.Scene, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			scene, err := r.Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get scene %s: %w", id, err)
			}
			scenes[i] = scene
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Template < scenes[j].Template
	})
	return scenes, nil
}
