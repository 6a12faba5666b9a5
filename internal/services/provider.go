package services

import (
	"context"
	"log/slog"

	daberr "github.com/KirkDiggler/daybreak/internal/errors"
	"github.com/KirkDiggler/daybreak/internal/events"
	"github.com/KirkDiggler/daybreak/internal/modules"
	"github.com/KirkDiggler/daybreak/internal/modules/newday"
	"github.com/KirkDiggler/daybreak/internal/modules/race"
	modulerepo "github.com/KirkDiggler/daybreak/internal/repositories/modules"
	"github.com/KirkDiggler/daybreak/internal/repositories/properties"
	"github.com/KirkDiggler/daybreak/internal/repositories/scenes"
	"github.com/KirkDiggler/daybreak/internal/repositories/viewpoints"
	"github.com/KirkDiggler/daybreak/internal/services/lifecycle"
	"github.com/KirkDiggler/daybreak/internal/services/navigation"
	"github.com/KirkDiggler/daybreak/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	Bus        *events.Bus
	Scenes     scenes.Repository
	Properties properties.Store
	Navigation navigation.Service
	Lifecycle  lifecycle.Service
	NewDay     *newday.Module
	Race       *race.Module
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	SceneRepository     scenes.Repository
	PropertyStore       properties.Store
	ViewpointRepository viewpoints.Repository
	ModuleRepository    modulerepo.Repository
	UUIDGenerator       uuid.Generator
	Logger              *slog.Logger
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// Use in-memory repositories for anything not provided
	sceneRepo := cfg.SceneRepository
	if sceneRepo == nil {
		sceneRepo = scenes.NewInMemoryRepository(cfg.UUIDGenerator)
	}

	propertyStore := cfg.PropertyStore
	if propertyStore == nil {
		propertyStore = properties.NewInMemoryStore()
	}

	viewpointRepo := cfg.ViewpointRepository
	if viewpointRepo == nil {
		viewpointRepo = viewpoints.NewInMemoryRepository()
	}

	moduleRepo := cfg.ModuleRepository
	if moduleRepo == nil {
		moduleRepo = modulerepo.NewInMemoryRepository()
	}

	bus := events.NewBus(logger)

	navService := navigation.NewService(&navigation.ServiceConfig{
		Bus:           bus,
		Scenes:        sceneRepo,
		Viewpoints:    viewpointRepo,
		UUIDGenerator: cfg.UUIDGenerator,
		Logger:        logger,
	})

	lifecycleService := lifecycle.NewService(&lifecycle.ServiceConfig{
		Bus:     bus,
		Records: moduleRepo,
		Logger:  logger,
	})

	newDay, err := newday.New(&newday.ModuleConfig{
		Scenes:     sceneRepo,
		Properties: propertyStore,
		Navigation: navService,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	raceModule, err := race.New(&race.ModuleConfig{
		Scenes:     sceneRepo,
		Properties: propertyStore,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	return &Provider{
		Bus:        bus,
		Scenes:     sceneRepo,
		Properties: propertyStore,
		Navigation: navService,
		Lifecycle:  lifecycleService,
		NewDay:     newDay,
		Race:       raceModule,
	}, nil
}

// Modules returns the bundled modules in install order
func (p *Provider) Modules() []modules.Module {
	return []modules.Module{p.NewDay, p.Race}
}

// Install registers every bundled module
func (p *Provider) Install(ctx context.Context) error {
	for _, module := range p.Modules() {
		if _, err := p.Lifecycle.Register(ctx, module); err != nil {
			return err
		}
	}
	return nil
}

// Uninstall unregisters every bundled module, in reverse install order
func (p *Provider) Uninstall(ctx context.Context) error {
	installed := p.Modules()
	for i := len(installed) - 1; i >= 0; i-- {
		if err := p.Lifecycle.Unregister(ctx, installed[i]); err != nil {
			return err
		}
	}
	return nil
}

// Attach subscribes the handlers of the bundled modules that are installed
// and returns how many were attached
func (p *Provider) Attach(ctx context.Context) (int, error) {
	attached := 0
	for _, module := range p.Modules() {
		err := p.Lifecycle.Attach(ctx, module)
		if daberr.IsNotFound(err) {
			continue
		}
		if err != nil {
			return attached, err
		}
		attached++
	}
	return attached, nil
}
