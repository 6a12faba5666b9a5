package navigation

//go:generate mockgen -destination=mock/mock_service.go -package=mocknavigation -source=service.go

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/daybreak/internal/entities"
	daberr "github.com/KirkDiggler/daybreak/internal/errors"
	"github.com/KirkDiggler/daybreak/internal/events"
	"github.com/KirkDiggler/daybreak/internal/repositories/scenes"
	"github.com/KirkDiggler/daybreak/internal/repositories/viewpoints"
	"github.com/KirkDiggler/daybreak/internal/uuid"
)

// DefaultMaxRedirects bounds how many scene-level redirects one navigation follows
const DefaultMaxRedirects = 10

// State tells whether a hook kept the default target
type State int

const (
	StateAwaitingDefaultNext State = iota
	StateRedirected
)

func (s State) String() string {
	switch s {
	case StateAwaitingDefaultNext:
		return "awaiting_default_next"
	case StateRedirected:
		return "redirected"
	default:
		return "unknown"
	}
}

// Service moves characters through the scene graph
type Service interface {
	// Hook fires a before-navigation event and then navigates to the redirect
	// target if a handler set one, otherwise to the default
	Hook(ctx context.Context, input *HookInput) (*HookOutput, error)

	// NavigateTo shows scene to the character
	NavigateTo(ctx context.Context, input *NavigateInput) (*entities.Viewpoint, error)

	// TakeAction follows an action of the character's current viewpoint
	TakeAction(ctx context.Context, input *TakeActionInput) (*entities.Viewpoint, error)

	// CurrentViewpoint returns what the character currently sees
	CurrentViewpoint(ctx context.Context, characterID string) (*entities.Viewpoint, error)
}

type HookInput struct {
	Event     events.Name
	Character *entities.Character
	Default   *entities.Scene
}

type HookOutput struct {
	State     State
	Target    *entities.Scene
	Viewpoint *entities.Viewpoint
}

type NavigateInput struct {
	Character  *entities.Character
	Scene      *entities.Scene
	Parameters map[string]any
}

type TakeActionInput struct {
	Character *entities.Character
	ActionID  string
}

type service struct {
	bus           *events.Bus
	scenes        scenes.Repository
	viewpoints    viewpoints.Repository
	uuidGenerator uuid.Generator
	logger        *slog.Logger
	maxRedirects  int
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Bus           *events.Bus           // Required
	Scenes        scenes.Repository     // Required
	Viewpoints    viewpoints.Repository // Required
	UUIDGenerator uuid.Generator        // Optional
	Logger        *slog.Logger          // Optional
	MaxRedirects  int                   // Optional, defaults to DefaultMaxRedirects
}

// NewService creates a new navigation service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Bus == nil {
		panic("event bus is required")
	}
	if cfg.Scenes == nil {
		panic("scene repository is required")
	}
	if cfg.Viewpoints == nil {
		panic("viewpoint repository is required")
	}

	svc := &service{
		bus:           cfg.Bus,
		scenes:        cfg.Scenes,
		viewpoints:    cfg.Viewpoints,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        cfg.Logger,
		maxRedirects:  cfg.MaxRedirects,
	}

	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	if svc.maxRedirects <= 0 {
		svc.maxRedirects = DefaultMaxRedirects
	}

	return svc
}

func (s *service) Hook(ctx context.Context, input *HookInput) (*HookOutput, error) {
	if input == nil {
		return nil, daberr.InvalidArgument("input cannot be nil")
	}
	if input.Event == "" {
		return nil, daberr.InvalidArgument("event is required")
	}
	if input.Character == nil {
		return nil, daberr.InvalidArgument("character is required")
	}
	if input.Default == nil {
		return nil, daberr.InvalidArgument("default scene is required")
	}

	ec := events.NewContext(input.Event, input.Character)
	if err := s.bus.Dispatch(ctx, ec); err != nil {
		return nil, daberr.Wrapf(err, "failed to dispatch %s", input.Event)
	}

	output := &HookOutput{
		State:  StateAwaitingDefaultNext,
		Target: input.Default,
	}
	if ec.Redirected() {
		target, err := s.resolve(ctx, ec.Redirect())
		if err != nil {
			return nil, err
		}

		s.logger.Info("Navigation: hook redirected",
			"event", input.Event,
			"character_id", input.Character.ID,
			"target", target.Template,
			"redirected_by", ec.RedirectedBy())

		output.State = StateRedirected
		output.Target = target
	}

	viewpoint, err := s.NavigateTo(ctx, &NavigateInput{
		Character: input.Character,
		Scene:     output.Target,
	})
	if err != nil {
		return nil, err
	}
	output.Viewpoint = viewpoint

	return output, nil
}

func (s *service) NavigateTo(ctx context.Context, input *NavigateInput) (*entities.Viewpoint, error) {
	if input == nil {
		return nil, daberr.InvalidArgument("input cannot be nil")
	}
	if input.Character == nil {
		return nil, daberr.InvalidArgument("character is required")
	}
	if input.Scene == nil {
		return nil, daberr.InvalidArgument("scene is required")
	}

	scene := input.Scene
	parameters := input.Parameters

	for redirects := 0; ; redirects++ {
		viewpoint := entities.NewViewpoint(input.Character.ID, scene)
		ec := events.NewContext(events.NavigateTo(scene.Template), input.Character).
			WithViewpoint(viewpoint).
			WithParameters(parameters)

		if err := s.bus.Dispatch(ctx, ec); err != nil {
			return nil, daberr.Wrapf(err, "failed to navigate to %s", scene.Template)
		}

		if !ec.Redirected() {
			return s.finalise(ctx, viewpoint)
		}

		if redirects >= s.maxRedirects {
			return nil, daberr.Internalf("navigation exceeded %d redirects", s.maxRedirects).
				WithMeta("character_id", input.Character.ID).
				WithMeta("last_scene", scene.Template)
		}

		target, err := s.resolve(ctx, ec.Redirect())
		if err != nil {
			return nil, err
		}

		s.logger.Debug("Navigation: scene redirected",
			"character_id", input.Character.ID,
			"from", scene.Template,
			"to", target.Template,
			"redirected_by", ec.RedirectedBy())

		scene = target
		parameters = nil
	}
}

func (s *service) TakeAction(ctx context.Context, input *TakeActionInput) (*entities.Viewpoint, error) {
	if input == nil {
		return nil, daberr.InvalidArgument("input cannot be nil")
	}
	if input.Character == nil {
		return nil, daberr.InvalidArgument("character is required")
	}
	if input.ActionID == "" {
		return nil, daberr.InvalidArgument("action ID is required")
	}

	current, err := s.viewpoints.Get(ctx, input.Character.ID)
	if err != nil {
		return nil, err
	}

	action, ok := current.FindAction(input.ActionID)
	if !ok {
		return nil, daberr.NotFoundf("action '%s' is not available", input.ActionID).
			WithMeta("character_id", input.Character.ID).
			WithMeta("scene", current.SceneTemplate)
	}

	destination, err := s.scenes.Get(ctx, action.DestinationSceneID)
	if err != nil {
		if daberr.IsNotFound(err) {
			return nil, daberr.Configurationf("action '%s' points at missing scene %s", action.Title, action.DestinationSceneID).
				WithMeta("scene", current.SceneTemplate)
		}
		return nil, err
	}

	return s.NavigateTo(ctx, &NavigateInput{
		Character:  input.Character,
		Scene:      destination,
		Parameters: action.Parameters,
	})
}

func (s *service) CurrentViewpoint(ctx context.Context, characterID string) (*entities.Viewpoint, error) {
	if characterID == "" {
		return nil, daberr.InvalidArgument("character ID is required")
	}
	return s.viewpoints.Get(ctx, characterID)
}

// resolve fills in the storage identity of a redirect given only by template
func (s *service) resolve(ctx context.Context, scene *entities.Scene) (*entities.Scene, error) {
	if scene.ID != "" {
		return scene, nil
	}

	found, err := s.scenes.FindByTemplate(ctx, scene.Template)
	if err != nil {
		if daberr.IsNotFound(err) {
			return nil, daberr.Configurationf("redirect target %s does not exist", scene.Template)
		}
		return nil, err
	}
	return found, nil
}

func (s *service) finalise(ctx context.Context, viewpoint *entities.Viewpoint) (*entities.Viewpoint, error) {
	for _, action := range viewpoint.Actions() {
		action.ID = s.uuidGenerator.New()
	}

	if err := s.viewpoints.Save(ctx, viewpoint); err != nil {
		return nil, daberr.Wrapf(err, "failed to save viewpoint of %s", viewpoint.CharacterID)
	}
	return viewpoint, nil
}
