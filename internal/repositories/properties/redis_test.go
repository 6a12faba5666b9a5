package properties

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/daybreak/internal/entities"
)

type RedisStoreTestSuite struct {
	suite.Suite
	client *redis.Client
	mock   redismock.ClientMock
	store  Store
	ref    entities.EntityRef
}

func (s *RedisStoreTestSuite) SetupTest() {
	s.client, s.mock = redismock.NewClientMock()
	s.store = NewRedis(s.client)
	s.ref = entities.EntityRef{Kind: entities.EntityKindCharacter, ID: "char-1"}
}

func (s *RedisStoreTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisStoreTestSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreTestSuite))
}

func (s *RedisStoreTestSuite) TestGet() {
	ctx := context.Background()

	// Happy path
	s.mock.ExpectHGet("properties:character:char-1", "race").SetVal(`"Troll"`)

	var race string
	found, err := s.store.Get(ctx, s.ref, "race", &race)
	s.NoError(err)
	s.True(found)
	s.Equal("Troll", race)

	// Not set
	s.mock.ExpectHGet("properties:character:char-1", "race").RedisNil()

	found, err = s.store.Get(ctx, s.ref, "race", &race)
	s.NoError(err)
	s.False(found)

	// Dependency error
	s.mock.ExpectHGet("properties:character:char-1", "race").SetErr(errors.New("redis error"))

	_, err = s.store.Get(ctx, s.ref, "race", &race)
	s.Error(err)

	// Corrupt value
	s.mock.ExpectHGet("properties:character:char-1", "race").SetVal(`{not json`)

	_, err = s.store.Get(ctx, s.ref, "race", &race)
	s.Error(err)
}

func (s *RedisStoreTestSuite) TestSet() {
	ctx := context.Background()

	s.mock.ExpectHSet("properties:character:char-1", "race", `"Elf"`).SetVal(1)
	s.NoError(s.store.Set(ctx, s.ref, "race", "Elf"))

	s.mock.ExpectHSet("properties:character:char-1", "race", `"Elf"`).SetErr(errors.New("redis error"))
	s.Error(s.store.Set(ctx, s.ref, "race", "Elf"))

	// Input validation
	s.Error(s.store.Set(ctx, s.ref, "", "Elf"))
}

func (s *RedisStoreTestSuite) TestSetNilUnsets() {
	ctx := context.Background()
	ref := entities.EntityRef{Kind: entities.EntityKindModule, ID: "lotgd/module-race"}

	s.mock.ExpectHDel("properties:module:lotgd/module-race", "sceneIds").SetVal(1)
	s.NoError(s.store.Set(ctx, ref, "sceneIds", nil))

	s.mock.ExpectHDel("properties:module:lotgd/module-race", "sceneIds").SetErr(errors.New("redis error"))
	s.Error(s.store.Set(ctx, ref, "sceneIds", nil))
}

func (s *RedisStoreTestSuite) TestSetMap() {
	ctx := context.Background()
	ref := entities.EntityRef{Kind: entities.EntityKindModule, ID: "lotgd/module-race"}

	// encoding/json sorts map keys
	s.mock.ExpectHSet("properties:module:lotgd/module-race", "sceneIds", `{"a":"1","b":"2"}`).SetVal(1)
	s.NoError(s.store.Set(ctx, ref, "sceneIds", entities.SceneIDMap{"b": "2", "a": "1"}))
}
