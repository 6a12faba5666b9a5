package viewpoints

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/KirkDiggler/daybreak/internal/entities"
	daberr "github.com/KirkDiggler/daybreak/internal/errors"
)

// InMemoryRepository stores viewpoints as JSON so parameters come back in
// the same shape they would from Redis
type InMemoryRepository struct {
	mu         sync.RWMutex
	viewpoints map[string][]byte
}

// NewInMemoryRepository creates an empty repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		viewpoints: make(map[string][]byte),
	}
}

func (r *InMemoryRepository) Get(ctx context.Context, characterID string) (*entities.Viewpoint, error) {
	if characterID == "" {
		return nil, daberr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	data, exists := r.viewpoints[characterID]
	r.mu.RUnlock()
	if !exists {
		return nil, daberr.NotFoundf("viewpoint for character '%s' not found", characterID).
			WithMeta("character_id", characterID)
	}

	var viewpoint entities.Viewpoint
	if err := json.Unmarshal(data, &viewpoint); err != nil {
		return nil, daberr.Wrap(err, "failed to unmarshal viewpoint")
	}
	return &viewpoint, nil
}

func (r *InMemoryRepository) Save(ctx context.Context, viewpoint *entities.Viewpoint) error {
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

	r.mu.Lock()
	defer r.mu.Unlock()
	r.viewpoints[viewpoint.CharacterID] = data
	return nil
}
