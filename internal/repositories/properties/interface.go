package properties

//go:generate mockgen -destination=mock/mock.go -package=mockproperties -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/daybreak/internal/entities"
)

// Store is a per-entity key/value property bag. Values are JSON encoded; a
// nil value means "unset".
type Store interface {
	// Get decodes the property into dst and reports whether it was set
	Get(ctx context.Context, ref entities.EntityRef, key string, dst any) (bool, error)

	// Set stores value, or removes the property when value is nil
	Set(ctx context.Context, ref entities.EntityRef, key string, value any) error
}

// GetString reads a string property
func GetString(ctx context.Context, store Store, ref entities.EntityRef, key string) (string, bool, error) {
	var value string
	found, err := store.Get(ctx, ref, key, &value)
	if err != nil || !found {
		return "", false, err
	}
	return value, true, nil
}
