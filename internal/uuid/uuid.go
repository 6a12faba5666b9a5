// Package uuid generates storage identities; wrapped so tests can pin them
package uuid

//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks github.com/KirkDiggler/daybreak/internal/uuid Generator

import (
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// Generator hands out new identities for scenes and actions
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements Generator with random v4 UUIDs
type GoogleUUIDGenerator struct{}

func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// SequenceGenerator returns prefix-1, prefix-2, ... and is handy where ids
// need to be predictable, e.g. in fixtures.
type SequenceGenerator struct {
	Prefix string

	mu   sync.Mutex
	next int
}

func (g *SequenceGenerator) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return g.Prefix + "-" + strconv.Itoa(g.next)
}
