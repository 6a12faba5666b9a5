package properties

import (
	"context"
	"sync"

	"github.com/KirkDiggler/daybreak/internal/entities"
	daberr "github.com/KirkDiggler/daybreak/internal/errors"
)

// InMemoryStore keeps properties in process memory
type InMemoryStore struct {
	mu    sync.RWMutex
	props map[entities.EntityRef]map[string][]byte
}

// NewInMemoryStore creates an empty in-memory property store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		props: make(map[entities.EntityRef]map[string][]byte),
	}
}

func (s *InMemoryStore) Get(ctx context.Context, ref entities.EntityRef, key string, dst any) (bool, error) {
	if key == "" {
		return false, daberr.InvalidArgument("property key is required")
	}

	s.mu.RLock()
	data, ok := s.props[ref][key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}

	if err := decode(key, data, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (s *InMemoryStore) Set(ctx context.Context, ref entities.EntityRef, key string, value any) error {
	if key == "" {
		return daberr.InvalidArgument("property key is required")
	}

	data, err := encode(key, value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if data == nil {
		delete(s.props[ref], key)
		if len(s.props[ref]) == 0 {
			delete(s.props, ref)
		}
		return nil
	}

	if s.props[ref] == nil {
		s.props[ref] = make(map[string][]byte)
	}
	s.props[ref][key] = data
	return nil
}
