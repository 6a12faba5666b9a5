// Package modules defines what an installable content module looks like to
// the host. A module owns scenes, reacts to events and keeps its own state
// in the property bag of its record.
package modules

//go:generate mockgen -destination=mock/mock.go -package=mockmodules -source=module.go

import (
	"context"

	"github.com/KirkDiggler/daybreak/internal/entities"
	"github.com/KirkDiggler/daybreak/internal/events"
)

// Module is the contract between the host and a content module. The handler
// ID doubles as the library name.
type Module interface {
	events.Handler

	// Library identifies the module record, e.g. "lotgd/module-race"
	Library() string

	// Events lists the event names the handler must be subscribed to
	Events() []events.Name

	// OnRegister installs the module content. Calling it again on an
	// installed module does nothing.
	OnRegister(ctx context.Context, record *entities.ModuleRecord) error

	// OnUnregister removes what OnRegister installed. Calling it on a module
	// that is not installed does nothing.
	OnUnregister(ctx context.Context, record *entities.ModuleRecord) error
}
