// Package lifecycle installs and removes content modules and keeps their
// handlers subscribed to the event bus.
package lifecycle

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/daybreak/internal/entities"
	daberr "github.com/KirkDiggler/daybreak/internal/errors"
	"github.com/KirkDiggler/daybreak/internal/events"
	"github.com/KirkDiggler/daybreak/internal/modules"
	modulerepo "github.com/KirkDiggler/daybreak/internal/repositories/modules"
)

// Service runs module lifecycle hooks. Calls for the same module are expected
// to be serialised by the caller.
type Service interface {
	// Register installs module if needed and subscribes its handler
	Register(ctx context.Context, module modules.Module) (*entities.ModuleRecord, error)

	// Unregister removes the module content, its handler and its record
	Unregister(ctx context.Context, module modules.Module) error

	// Attach subscribes the handler of an already installed module
	Attach(ctx context.Context, module modules.Module) error

	// Installed lists the records of installed modules
	Installed(ctx context.Context) ([]*entities.ModuleRecord, error)
}

type service struct {
	bus     *events.Bus
	records modulerepo.Repository
	logger  *slog.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Bus     *events.Bus           // Required
	Records modulerepo.Repository // Required
	Logger  *slog.Logger          // Optional
}

// NewService creates a new lifecycle service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Bus == nil {
		panic("event bus is required")
	}
	if cfg.Records == nil {
		panic("module repository is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		bus:     cfg.Bus,
		records: cfg.Records,
		logger:  logger,
	}
}

func (s *service) Register(ctx context.Context, module modules.Module) (*entities.ModuleRecord, error) {
	if module == nil {
		return nil, daberr.InvalidArgument("module cannot be nil")
	}

	record, err := s.findOrCreate(ctx, module.Library())
	if err != nil {
		return nil, err
	}

	if err := module.OnRegister(ctx, record); err != nil {
		return nil, daberr.Wrapf(err, "failed to register module %s", module.Library())
	}

	s.subscribe(module)
	s.logger.Info("Lifecycle: module registered", "library", module.Library())
	return record, nil
}

func (s *service) Unregister(ctx context.Context, module modules.Module) error {
	if module == nil {
		return daberr.InvalidArgument("module cannot be nil")
	}

	record, err := s.records.Get(ctx, module.Library())
	if err != nil {
		if daberr.IsNotFound(err) {
			s.bus.UnsubscribeAll(module.ID())
			return nil
		}
		return err
	}

	// The record and subscriptions stay on failure so a retry can finish
	if err := module.OnUnregister(ctx, record); err != nil {
		return daberr.Wrapf(err, "failed to unregister module %s", module.Library())
	}

	s.bus.UnsubscribeAll(module.ID())

	if err := s.records.Delete(ctx, record.Library); err != nil && !daberr.IsNotFound(err) {
		return daberr.Wrapf(err, "failed to delete record of module %s", record.Library)
	}

	s.logger.Info("Lifecycle: module unregistered", "library", record.Library)
	return nil
}

func (s *service) Attach(ctx context.Context, module modules.Module) error {
	if module == nil {
		return daberr.InvalidArgument("module cannot be nil")
	}

	if _, err := s.records.Get(ctx, module.Library()); err != nil {
		return err
	}

	s.subscribe(module)
	return nil
}

func (s *service) Installed(ctx context.Context) ([]*entities.ModuleRecord, error) {
	return s.records.List(ctx)
}

func (s *service) findOrCreate(ctx context.Context, library string) (*entities.ModuleRecord, error) {
	record, err := s.records.Get(ctx, library)
	if err == nil {
		return record, nil
	}
	if !daberr.IsNotFound(err) {
		return nil, err
	}

	record = entities.NewModuleRecord(library)
	if err := s.records.Create(ctx, record); err != nil {
		if daberr.IsAlreadyExists(err) {
			return s.records.Get(ctx, library)
		}
		return nil, daberr.Wrapf(err, "failed to create record of module %s", library)
	}
	return record, nil
}

func (s *service) subscribe(module modules.Module) {
	for _, name := range module.Events() {
		s.bus.Subscribe(name, module)
	}
}
