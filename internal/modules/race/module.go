// Package race lets a character pick a race the first time a new day
// starts for them. The choice is stored as a character property and never
// changes afterwards.
package race

import (
	"context"
	"log/slog"
	"slices"

	"github.com/KirkDiggler/daybreak/internal/entities"
	daberr "github.com/KirkDiggler/daybreak/internal/errors"
	"github.com/KirkDiggler/daybreak/internal/events"
	"github.com/KirkDiggler/daybreak/internal/modules"
	"github.com/KirkDiggler/daybreak/internal/repositories/properties"
	"github.com/KirkDiggler/daybreak/internal/repositories/scenes"
)

// ParameterRace is the action parameter carrying the chosen race
const ParameterRace = "race"

// Module implements modules.Module
type Module struct {
	cfg        Config
	content    *Content
	scenes     scenes.Repository
	properties properties.Store
	installer  *modules.SceneInstaller
	logger     *slog.Logger
}

// ModuleConfig holds the dependencies of the module
type ModuleConfig struct {
	Scenes     scenes.Repository // Required
	Properties properties.Store  // Required
	Config     *Config           // Optional, defaults to DefaultConfig
	Content    *Content          // Optional, defaults to the embedded content
	Logger     *slog.Logger      // Optional
}

// New creates the module
func New(cfg *ModuleConfig) (*Module, error) {
	if cfg.Scenes == nil {
		return nil, daberr.InvalidArgument("scene repository is required")
	}
	if cfg.Properties == nil {
		return nil, daberr.InvalidArgument("property store is required")
	}

	settings := DefaultConfig()
	if cfg.Config != nil {
		settings = *cfg.Config
	}
	if err := settings.validate(); err != nil {
		return nil, err
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
		cfg:        settings,
		content:    content,
		scenes:     cfg.Scenes,
		properties: cfg.Properties,
		logger:     logger,
		installer: &modules.SceneInstaller{
			Library:    settings.Library,
			Property:   settings.SceneIDsProperty,
			Scenes:     cfg.Scenes,
			Properties: cfg.Properties,
			Logger:     logger,
		},
	}, nil
}

func (m *Module) ID() string      { return m.cfg.Library }
func (m *Module) Library() string { return m.cfg.Library }
func (m *Module) Priority() int   { return events.PriorityDefault }

// Config returns the identifiers the module was built with
func (m *Module) Config() Config { return m.cfg }

// Races returns the races a character can choose from
func (m *Module) Races() []string { return slices.Clone(m.content.Races) }

func (m *Module) Events() []events.Name {
	return []events.Name{
		m.cfg.BeforeNewDay,
		events.NavigateTo(m.cfg.ChooseTemplate),
		events.NavigateTo(m.cfg.SelectTemplate),
	}
}

// HandleEvent routes the events of Events; anything else passes through
func (m *Module) HandleEvent(ctx context.Context, ec *events.Context) error {
	switch ec.Event() {
	case m.cfg.BeforeNewDay:
		return m.handleBeforeNewDay(ctx, ec)
	case events.NavigateTo(m.cfg.ChooseTemplate):
		return m.handleChoose(ctx, ec)
	case events.NavigateTo(m.cfg.SelectTemplate):
		return m.handleSelect(ctx, ec)
	default:
		return nil
	}
}

func (m *Module) OnRegister(ctx context.Context, record *entities.ModuleRecord) error {
	return m.installer.Install(ctx, record, []*entities.Scene{
		m.content.Choose.Scene(m.cfg.ChooseTemplate),
		m.content.Select.Scene(m.cfg.SelectTemplate),
	})
}

func (m *Module) OnUnregister(ctx context.Context, record *entities.ModuleRecord) error {
	return m.installer.Uninstall(ctx, record)
}

// CharacterRace returns the race of character, if one was chosen
func (m *Module) CharacterRace(ctx context.Context, character *entities.Character) (string, bool, error) {
	return properties.GetString(ctx, m.properties, character.Ref(), m.cfg.RaceProperty)
}

func (m *Module) handleBeforeNewDay(ctx context.Context, ec *events.Context) error {
	if ec.Character() == nil {
		return daberr.InvalidArgument("before new day needs a character")
	}

	_, chosen, err := m.CharacterRace(ctx, ec.Character())
	if err != nil {
		return err
	}
	if chosen {
		return nil
	}

	choose, err := modules.FindScene(ctx, m.scenes, m.cfg.ChooseTemplate)
	if err != nil {
		return err
	}

	ec.SetRedirect(choose, m.ID())
	return nil
}

func (m *Module) handleChoose(ctx context.Context, ec *events.Context) error {
	viewpoint := ec.Viewpoint()
	if viewpoint == nil {
		return daberr.Internalf("%s reached without a viewpoint", ec.Event())
	}

	selectScene, err := modules.FindScene(ctx, m.scenes, m.cfg.SelectTemplate)
	if err != nil {
		return err
	}

	group := entities.NewActionGroup(m.cfg.Library, "Choose", 0)
	for _, race := range m.content.Races {
		group.Add(entities.NewAction(selectScene.ID, race, map[string]any{ParameterRace: race}))
	}

	viewpoint.AddActionGroup(group)
	return nil
}

func (m *Module) handleSelect(ctx context.Context, ec *events.Context) error {
	character := ec.Character()
	if character == nil {
		return daberr.InvalidArgument("race selection needs a character")
	}

	current, chosen, err := m.CharacterRace(ctx, character)
	if err != nil {
		return err
	}
	if chosen {
		m.logger.Info(m.cfg.Library+": race already chosen",
			"character_id", character.ID,
			"race", current)
		return m.redirect(ctx, ec, m.cfg.ContinueTemplate)
	}

	value, _ := ec.Parameter(ParameterRace)
	race, ok := value.(string)
	if !ok || !slices.Contains(m.content.Races, race) {
		m.logger.Info(m.cfg.Library+": invalid race selected",
			"character_id", character.ID,
			"race", value)
		return m.redirect(ctx, ec, m.cfg.ChooseTemplate)
	}

	if err := m.properties.Set(ctx, character.Ref(), m.cfg.RaceProperty, race); err != nil {
		return daberr.Wrapf(err, "failed to store race of %s", character.ID)
	}

	return m.redirect(ctx, ec, m.cfg.ContinueTemplate)
}

func (m *Module) redirect(ctx context.Context, ec *events.Context, template string) error {
	scene, err := modules.FindScene(ctx, m.scenes, template)
	if err != nil {
		return err
	}
	ec.SetRedirect(scene, m.ID())
	return nil
}
