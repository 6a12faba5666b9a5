package modules

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/daybreak/internal/entities"
	daberr "github.com/KirkDiggler/daybreak/internal/errors"
)

const (
	moduleKeyPrefix = "module:"
	allModulesKey   = "modules"
)

type redisRepo struct {
	client redis.UniversalClient
}

// NewRedis creates a Redis-backed module record repository
func NewRedis(client redis.UniversalClient) Repository {
	if client == nil {
		panic("redis client is required")
	}
	return &redisRepo{client: client}
}

func (r *redisRepo) key(library string) string {
	return moduleKeyPrefix + library
}

func (r *redisRepo) Create(ctx context.Context, record *entities.ModuleRecord) error {
	if record == nil {
		return daberr.InvalidArgument("module record cannot be nil")
	}
	if record.Library == "" {
		return daberr.InvalidArgument("module library is required")
	}

	data, err := json.Marshal(record)
	if err != nil {
		return daberr.Wrap(err, "failed to marshal module record")
	}

	created, err := r.client.SetNX(ctx, r.key(record.Library), string(data), 0).Result()
	if err != nil {
		return daberr.Wrapf(err, "failed to create module %s", record.Library)
	}
	if !created {
		return daberr.AlreadyExistsf("module '%s' already exists", record.Library).
			WithMeta("library", record.Library)
	}

	if err := r.client.SAdd(ctx, allModulesKey, record.Library).Err(); err != nil {
		return daberr.Wrapf(err, "failed to index module %s", record.Library)
	}
	return nil
}

func (r *redisRepo) Get(ctx context.Context, library string) (*entities.ModuleRecord, error) {
	if library == "" {
		return nil, daberr.InvalidArgument("module library is required")
	}

	data, err := r.client.Get(ctx, r.key(library)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, daberr.NotFoundf("module '%s' not found", library).
				WithMeta("library", library)
		}
		return nil, daberr.Wrapf(err, "failed to get module %s", library)
	}

	var record entities.ModuleRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, daberr.Wrapf(err, "failed to unmarshal module %s", library)
	}
	return &record, nil
}

func (r *redisRepo) Delete(ctx context.Context, library string) error {
	if library == "" {
		return daberr.InvalidArgument("module library is required")
	}

	pipe := r.client.Pipeline()
	del := pipe.Del(ctx, r.key(library))
	pipe.SRem(ctx, allModulesKey, library)
	if _, err := pipe.Exec(ctx); err != nil {
		return daberr.Wrapf(err, "failed to delete module %s", library)
	}

	if del.Val() == 0 {
		return daberr.NotFoundf("module '%s' not found", library).
			WithMeta("library", library)
	}
	return nil
}

func (r *redisRepo) List(ctx context.Context) ([]*entities.ModuleRecord, error) {
	libraries, err := r.client.SMembers(ctx, allModulesKey).Result()
	if err != nil {
		return nil, daberr.Wrap(err, "failed to list modules")
	}
	sort.Strings(libraries)

	records := make([]*entities.ModuleRecord, 0, len(libraries))
	for _, library := range libraries {
		record, err := r.Get(ctx, library)
		if err != nil {
			if daberr.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
