// Package newday is the minimal daily-cycle collaborator: it owns the scene
// a new day continues to and fires the hook other modules use to intercept
// the start of a day.
package newday

import (
	"context"
	_ "embed"
	"log/slog"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/daybreak/internal/entities"
	daberr "github.com/KirkDiggler/daybreak/internal/errors"
	"github.com/KirkDiggler/daybreak/internal/events"
	"github.com/KirkDiggler/daybreak/internal/modules"
	"github.com/KirkDiggler/daybreak/internal/repositories/properties"
	"github.com/KirkDiggler/daybreak/internal/repositories/scenes"
	"github.com/KirkDiggler/daybreak/internal/services/navigation"
)

const (
	Library = "lotgd/module-new-day"

	// HookBeforeNewDay fires before a character is shown the new day
	HookBeforeNewDay events.Name = "h/lotgd/module-new-day/before"

	SceneContinue = Library + "/continue"

	SceneIDsProperty   = Library + "/sceneIds"
	LastNewDayProperty = Library + "/lastNewDay"
)

//go:embed content.yaml
var defaultContent []byte

// Content is the text of the scenes the module installs
type Content struct {
	Continue modules.SceneDefinition `yaml:"continue"`
}

// LoadContent parses a content document
func LoadContent(data []byte) (*Content, error) {
	var content Content
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, daberr.Wrap(err, "failed to parse new day content")
	}
	if content.Continue.Title == "" {
		return nil, daberr.InvalidArgument("new day content needs a continue scene title")
	}
	return &content, nil
}

// Module starts new days
type Module struct {
	scenes     scenes.Repository
	properties properties.Store
	navigation navigation.Service
	content    *Content
	installer  *modules.SceneInstaller
	logger     *slog.Logger
	now        func() time.Time
}

// ModuleConfig holds the dependencies of the module
type ModuleConfig struct {
	Scenes     scenes.Repository  // Required
	Properties properties.Store   // Required
	Navigation navigation.Service // Required for Start
	Content    *Content           // Optional, defaults to the embedded content
	Logger     *slog.Logger       // Optional
}

// New creates the module
func New(cfg *ModuleConfig) (*Module, error) {
	if cfg.Scenes == nil {
		return nil, daberr.InvalidArgument("scene repository is required")
	}
	if cfg.Properties == nil {
		return nil, daberr.InvalidArgument("property store is required")
	}

	content := cfg.Content
	if content == nil {
		var err error
		if content, err = LoadContent(defaultContent); err != nil {
			return nil, err
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Module{
		scenes:     cfg.Scenes,
		properties: cfg.Properties,
		navigation: cfg.Navigation,
		content:    content,
		logger:     logger,
		now:        time.Now,
		installer: &modules.SceneInstaller{
			Library:    Library,
			Property:   SceneIDsProperty,
			Scenes:     cfg.Scenes,
			Properties: cfg.Properties,
			Logger:     logger,
		},
	}, nil
}

func (m *Module) ID() string            { return Library }
func (m *Module) Library() string       { return Library }
func (m *Module) Priority() int         { return events.PriorityDefault }
func (m *Module) Events() []events.Name { return nil }

// HandleEvent ignores everything; the module only fires events
func (m *Module) HandleEvent(ctx context.Context, ec *events.Context) error {
	return nil
}

func (m *Module) OnRegister(ctx context.Context, record *entities.ModuleRecord) error {
	return m.installer.Install(ctx, record, []*entities.Scene{
		m.content.Continue.Scene(SceneContinue),
	})
}

func (m *Module) OnUnregister(ctx context.Context, record *entities.ModuleRecord) error {
	return m.installer.Uninstall(ctx, record)
}

// Start begins a new day for character. Handlers of HookBeforeNewDay may
// redirect the character elsewhere first.
func (m *Module) Start(ctx context.Context, character *entities.Character) (*navigation.HookOutput, error) {
	if m.navigation == nil {
		return nil, daberr.Configurationf("%s: navigation service is not configured", Library)
	}
	if character == nil {
		return nil, daberr.InvalidArgument("character is required")
	}

	continueScene, err := modules.FindScene(ctx, m.scenes, SceneContinue)
	if err != nil {
		return nil, err
	}

	output, err := m.navigation.Hook(ctx, &navigation.HookInput{
		Event:     HookBeforeNewDay,
		Character: character,
		Default:   continueScene,
	})
	if err != nil {
		return nil, err
	}

	if err := m.properties.Set(ctx, character.Ref(), LastNewDayProperty, m.now().UTC()); err != nil {
		return nil, daberr.Wrapf(err, "failed to record new day of %s", character.ID)
	}

	m.logger.Debug("NewDay: started",
		"character_id", character.ID,
		"state", output.State.String(),
		"target", output.Target.Template)

	return output, nil
}
