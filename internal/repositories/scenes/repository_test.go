package scenes_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/daybreak/internal/entities"
	daberr "github.com/KirkDiggler/daybreak/internal/errors"
	"github.com/KirkDiggler/daybreak/internal/repositories/scenes"
	"github.com/KirkDiggler/daybreak/internal/testutils"
	"github.com/KirkDiggler/daybreak/internal/uuid"
)

// runRepositoryContract exercises behaviour every Repository must share
func runRepositoryContract(t *testing.T, newRepo func(t *testing.T) scenes.Repository) {
	ctx := context.Background()

	t.Run("create assigns an ID", func(t *testing.T) {
		repo := newRepo(t)
		scene := &entities.Scene{Template: "race/choose", Title: "Which race do you belong to?"}

		require.NoError(t, repo.Create(ctx, scene))
		assert.Equal(t, "scene-1", scene.ID)

		found, err := repo.Get(ctx, scene.ID)
		require.NoError(t, err)
		assert.Equal(t, scene, found)
	})

	t.Run("find by template", func(t *testing.T) {
		repo := newRepo(t)
		choose := &entities.Scene{Template: "race/choose"}
		selected := &entities.Scene{Template: "race/select"}
		require.NoError(t, repo.Create(ctx, choose))
		require.NoError(t, repo.Create(ctx, selected))

		found, err := repo.FindByTemplate(ctx, "race/select")
		require.NoError(t, err)
		assert.Equal(t, selected.ID, found.ID)
	})

	t.Run("missing template is not found", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.FindByTemplate(ctx, "nowhere")
		assert.True(t, daberr.IsNotFound(err))
	})

	t.Run("duplicate template is rejected", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Create(ctx, &entities.Scene{Template: "race/choose"}))

		err := repo.Create(ctx, &entities.Scene{Template: "race/choose"})
		assert.True(t, daberr.IsAlreadyExists(err))
	})

	t.Run("delete frees the template", func(t *testing.T) {
		repo := newRepo(t)
		scene := &entities.Scene{Template: "race/choose"}
		require.NoError(t, repo.Create(ctx, scene))

		require.NoError(t, repo.Delete(ctx, scene.ID))

		_, err := repo.Get(ctx, scene.ID)
		assert.True(t, daberr.IsNotFound(err))
		_, err = repo.FindByTemplate(ctx, "race/choose")
		assert.True(t, daberr.IsNotFound(err))
		require.NoError(t, repo.Create(ctx, &entities.Scene{Template: "race/choose"}))
	})

	t.Run("delete missing scene is not found", func(t *testing.T) {
		repo := newRepo(t)

		err := repo.Delete(ctx, "gone")
		assert.True(t, daberr.IsNotFound(err))
	})

	t.Run("list is ordered by template", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Create(ctx, &entities.Scene{Template: "b"}))
		require.NoError(t, repo.Create(ctx, &entities.Scene{Template: "a"}))

		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "a", list[0].Template)
		assert.Equal(t, "b", list[1].Template)
	})

	t.Run("invalid input", func(t *testing.T) {
		repo := newRepo(t)

		assert.True(t, daberr.IsInvalidArgument(repo.Create(ctx, nil)))
		assert.True(t, daberr.IsInvalidArgument(repo.Create(ctx, &entities.Scene{})))
		_, err := repo.Get(ctx, "")
		assert.True(t, daberr.IsInvalidArgument(err))
	})
}

func TestInMemoryRepository(t *testing.T) {
	runRepositoryContract(t, func(t *testing.T) scenes.Repository {
		return scenes.NewInMemoryRepository(&uuid.SequenceGenerator{Prefix: "scene"})
	})
}

func TestRedisRepository_Miniredis(t *testing.T) {
	runRepositoryContract(t, func(t *testing.T) scenes.Repository {
		client, _ := testutils.NewMiniRedisClient(t)

		return scenes.NewRedisRepository(&scenes.RedisRepoConfig{
			Client:        client,
			UUIDGenerator: &uuid.SequenceGenerator{Prefix: "scene"},
		})
	})
}
