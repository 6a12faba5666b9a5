package scenes

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/daybreak/internal/entities"
	daberr "github.com/KirkDiggler/daybreak/internal/errors"
	"github.com/KirkDiggler/daybreak/internal/uuid"
)

// InMemoryRepository is an in-memory scene repository
type InMemoryRepository struct {
	mu            sync.RWMutex
	scenes        map[string]*entities.Scene
	templates     map[string]string
	uuidGenerator uuid.Generator
}

// NewInMemoryRepository creates an empty scene repository. A nil generator
// falls back to random UUIDs.
func NewInMemoryRepository(generator uuid.Generator) *InMemoryRepository {
	if generator == nil {
		generator = uuid.NewGoogleUUIDGenerator()
	}
	return &InMemoryRepository{
		scenes:        make(map[string]*entities.Scene),
		templates:     make(map[string]string),
		uuidGenerator: generator,
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, scene *entities.Scene) error {
	if err := validate(scene); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.templates[scene.Template]; exists {
		return daberr.AlreadyExistsf("scene with template '%s' already exists", scene.Template).
			WithMeta("template", scene.Template)
	}

	if scene.ID == "" {
		scene.ID = r.uuidGenerator.New()
	}
	if _, exists := r.scenes[scene.ID]; exists {
		return daberr.AlreadyExistsf("scene with ID '%s' already exists", scene.ID).
			WithMeta("scene_id", scene.ID)
	}

	stored := *scene
	r.scenes[scene.ID] = &stored
	r.templates[scene.Template] = scene.ID
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*entities.Scene, error) {
	if id == "" {
		return nil, daberr.InvalidArgument("scene ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	scene, exists := r.scenes[id]
	if !exists {
		return nil, daberr.NotFoundf("scene with ID '%s' not found", id).
			WithMeta("scene_id", id)
	}

	found := *scene
	return &found, nil
}

func (r *InMemoryRepository) FindByTemplate(ctx context.Context, template string) (*entities.Scene, error) {
	if template == "" {
		return nil, daberr.InvalidArgument("scene template is required")
	}

	r.mu.RLock()
	id, exists := r.templates[template]
	r.mu.RUnlock()
	if !exists {
		return nil, daberr.NotFoundf("scene with template '%s' not found", template).
			WithMeta("template", template)
	}

	return r.Get(ctx, id)
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return daberr.InvalidArgument("scene ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	scene, exists := r.scenes[id]
	if !exists {
		return daberr.NotFoundf("scene with ID '%s' not found", id).
			WithMeta("scene_id", id)
	}

	delete(r.templates, scene.Template)
	delete(r.scenes, id)
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*entities.Scene, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	scenes := make([]*entities.Scene, 0, len(r.scenes))
	for _, scene := range r.scenes {
		found := *scene
		scenes = append(scenes, &found)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Template < scenes[j].Template
	})
	return scenes, nil
}
