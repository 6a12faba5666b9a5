package scenes

//go:generate mockgen -destination=mock/mock.go -package=mockscenes -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/daybreak/internal/entities"
	daberr "github.com/KirkDiggler/daybreak/internal/errors"
)

// Repository persists the scene graph nodes
type Repository interface {
	// Create assigns an ID to scene and stores it. Templates are unique.
	Create(ctx context.Context, scene *entities.Scene) error

	// Get retrieves a scene by ID
	Get(ctx context.Context, id string) (*entities.Scene, error)

	// FindByTemplate retrieves a scene by its template
	FindByTemplate(ctx context.Context, template string) (*entities.Scene, error)

	// Delete removes a scene by ID
	Delete(ctx context.Context, id string) error

	// List returns every stored scene
	List(ctx context.Context) ([]*entities.Scene, error)
}

func validate(scene *entities.Scene) error {
	if scene == nil {
		return daberr.InvalidArgument("scene cannot be nil")
	}
	if scene.Template == "" {
		return daberr.InvalidArgument("scene template is required")
	}
	return nil
}
