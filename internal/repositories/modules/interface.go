package modules

import (
	"context"

	"github.com/KirkDiggler/daybreak/internal/entities"
)

// Repository persists the records of installed modules
type Repository interface {
	Create(ctx context.Context, record *entities.ModuleRecord) error
	Get(ctx context.Context, library string) (*entities.ModuleRecord, error)
	Delete(ctx context.Context, library string) error
	List(ctx context.Context) ([]*entities.ModuleRecord, error)
}
