package modules

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/daybreak/internal/entities"
	daberr "github.com/KirkDiggler/daybreak/internal/errors"
)

// InMemoryRepository is an in-memory module record repository
type InMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*entities.ModuleRecord
}

// NewInMemoryRepository creates an empty repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		records: make(map[string]*entities.ModuleRecord),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, record *entities.ModuleRecord) error {
	if record == nil {
		return daberr.InvalidArgument("module record cannot be nil")
	}
	if record.Library == "" {
		return daberr.InvalidArgument("module library is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[record.Library]; exists {
		return daberr.AlreadyExistsf("module '%s' already exists", record.Library).
			WithMeta("library", record.Library)
	}

	stored := *record
	r.records[record.Library] = &stored
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, library string) (*entities.ModuleRecord, error) {
	if library == "" {
		return nil, daberr.InvalidArgument("module library is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.records[library]
	if !exists {
		return nil, daberr.NotFoundf("module '%s' not found", library).
			WithMeta("library", library)
	}

	found := *record
	return &found, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, library string) error {
	if library == "" {
		return daberr.InvalidArgument("module library is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[library]; !exists {
		return daberr.NotFoundf("module '%s' not found", library).
			WithMeta("library", library)
	}

	delete(r.records, library)
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*entities.ModuleRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*entities.ModuleRecord, 0, len(r.records))
	for _, record := range r.records {
		found := *record
		records = append(records, &found)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Library < records[j].Library
	})
	return records, nil
}
