package viewpoints

import (
	"context"

	"github.com/KirkDiggler/daybreak/internal/entities"
)

// Repository keeps the last rendered viewpoint of each character
type Repository interface {
	Get(ctx context.Context, characterID string) (*entities.Viewpoint, error)
	Save(ctx context.Context, viewpoint *entities.Viewpoint) error
}
