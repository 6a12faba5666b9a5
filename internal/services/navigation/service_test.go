package navigation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/daybreak/internal/entities"
	daberr "github.com/KirkDiggler/daybreak/internal/errors"
	"github.com/KirkDiggler/daybreak/internal/events"
	"github.com/KirkDiggler/daybreak/internal/repositories/scenes"
	"github.com/KirkDiggler/daybreak/internal/repositories/viewpoints"
	"github.com/KirkDiggler/daybreak/internal/services/navigation"
	"github.com/KirkDiggler/daybreak/internal/uuid"
)

const beforeEvent events.Name = "h/tests/before"

type NavigationServiceTestSuite struct {
	suite.Suite

	ctx        context.Context
	bus        *events.Bus
	scenes     *scenes.InMemoryRepository
	viewpoints *viewpoints.InMemoryRepository
	svc        navigation.Service

	character *entities.Character
	village   *entities.Scene
	forest    *entities.Scene
}

func (s *NavigationServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.bus = events.NewBus(nil)
	s.scenes = scenes.NewInMemoryRepository(&uuid.SequenceGenerator{Prefix: "scene"})
	s.viewpoints = viewpoints.NewInMemoryRepository()
	s.svc = navigation.NewService(&navigation.ServiceConfig{
		Bus:           s.bus,
		Scenes:        s.scenes,
		Viewpoints:    s.viewpoints,
		UUIDGenerator: &uuid.SequenceGenerator{Prefix: "action"},
	})

	s.character = &entities.Character{ID: "char-1", Name: "Violet"}
	s.village = s.createScene("tests/village", "The Village")
	s.forest = s.createScene("tests/forest", "The Forest")
}

func (s *NavigationServiceTestSuite) createScene(template, title string) *entities.Scene {
	scene := &entities.Scene{Template: template, Title: title}
	s.Require().NoError(s.scenes.Create(s.ctx, scene))
	return scene
}

func (s *NavigationServiceTestSuite) on(name events.Name, id string, fn func(ctx context.Context, ec *events.Context) error) {
	s.bus.Subscribe(name, events.HandlerFunc{Name: id, Fn: fn})
}

func (s *NavigationServiceTestSuite) TestHook_KeepsDefaultWithoutRedirect() {
	output, err := s.svc.Hook(s.ctx, &navigation.HookInput{
		Event:     beforeEvent,
		Character: s.character,
		Default:   s.village,
	})
	s.Require().NoError(err)

	s.Equal(navigation.StateAwaitingDefaultNext, output.State)
	s.Equal(s.village.ID, output.Target.ID)
	s.Equal("The Village", output.Viewpoint.Title)
}

func (s *NavigationServiceTestSuite) TestHook_RedirectOverridesDefault() {
	s.on(beforeEvent, "gate", func(ctx context.Context, ec *events.Context) error {
		ec.SetRedirect(s.forest, "gate")
		return nil
	})

	output, err := s.svc.Hook(s.ctx, &navigation.HookInput{
		Event:     beforeEvent,
		Character: s.character,
		Default:   s.village,
	})
	s.Require().NoError(err)

	s.Equal(navigation.StateRedirected, output.State)
	s.Equal(s.forest.ID, output.Target.ID)
	s.Equal("The Forest", output.Viewpoint.Title)

	stored, err := s.svc.CurrentViewpoint(s.ctx, s.character.ID)
	s.Require().NoError(err)
	s.Equal(s.forest.ID, stored.SceneID)
}

func (s *NavigationServiceTestSuite) TestHook_RedirectByTemplateIsResolved() {
	s.on(beforeEvent, "gate", func(ctx context.Context, ec *events.Context) error {
		ec.SetRedirect(&entities.Scene{Template: "tests/forest"}, "gate")
		return nil
	})

	output, err := s.svc.Hook(s.ctx, &navigation.HookInput{
		Event:     beforeEvent,
		Character: s.character,
		Default:   s.village,
	})
	s.Require().NoError(err)
	s.Equal(s.forest.ID, output.Target.ID)
}

func (s *NavigationServiceTestSuite) TestHook_MissingRedirectTargetIsConfigurationError() {
	s.on(beforeEvent, "gate", func(ctx context.Context, ec *events.Context) error {
		ec.SetRedirect(&entities.Scene{Template: "tests/nowhere"}, "gate")
		return nil
	})

	_, err := s.svc.Hook(s.ctx, &navigation.HookInput{
		Event:     beforeEvent,
		Character: s.character,
		Default:   s.village,
	})
	s.True(daberr.IsConfiguration(err))
}

func (s *NavigationServiceTestSuite) TestHook_ValidatesInput() {
	_, err := s.svc.Hook(s.ctx, &navigation.HookInput{Event: beforeEvent, Character: s.character})
	s.True(daberr.IsInvalidArgument(err))

	_, err = s.svc.Hook(s.ctx, nil)
	s.True(daberr.IsInvalidArgument(err))
}

func (s *NavigationServiceTestSuite) TestNavigateTo_MergesGroupsAndAssignsActionIDs() {
	s.on(events.NavigateTo("tests/village"), "late-module", func(ctx context.Context, ec *events.Context) error {
		ec.Viewpoint().AddActionGroup(entities.NewActionGroup("late-module", "Leave", 10).
			Add(entities.NewAction(s.forest.ID, "Forest", nil)))
		return nil
	})
	s.on(events.NavigateTo("tests/village"), "early-module", func(ctx context.Context, ec *events.Context) error {
		ec.Viewpoint().AddActionGroup(entities.NewActionGroup("early-module", "Shops", 0).
			Add(entities.NewAction(s.village.ID, "Stay", nil)))
		return nil
	})

	viewpoint, err := s.svc.NavigateTo(s.ctx, &navigation.NavigateInput{
		Character: s.character,
		Scene:     s.village,
	})
	s.Require().NoError(err)

	groups := viewpoint.ActionGroups()
	s.Require().Len(groups, 2)
	s.Equal("early-module", groups[0].ID)
	s.Equal("late-module", groups[1].ID)

	actions := viewpoint.Actions()
	s.Require().Len(actions, 2)
	s.NotEmpty(actions[0].ID)
	s.NotEmpty(actions[1].ID)
	s.NotEqual(actions[0].ID, actions[1].ID)
}

func (s *NavigationServiceTestSuite) TestNavigateTo_ForwardsParameters() {
	var received map[string]any
	s.on(events.NavigateTo("tests/forest"), "reader", func(ctx context.Context, ec *events.Context) error {
		received = ec.Parameters()
		return nil
	})

	_, err := s.svc.NavigateTo(s.ctx, &navigation.NavigateInput{
		Character:  s.character,
		Scene:      s.forest,
		Parameters: map[string]any{"race": "Elf"},
	})
	s.Require().NoError(err)
	s.Equal(map[string]any{"race": "Elf"}, received)
}

func (s *NavigationServiceTestSuite) TestNavigateTo_FollowsSceneRedirectWithoutParameters() {
	s.on(events.NavigateTo("tests/forest"), "bounce", func(ctx context.Context, ec *events.Context) error {
		ec.SetRedirect(s.village, "bounce")
		return nil
	})

	var villageParameters map[string]any
	s.on(events.NavigateTo("tests/village"), "reader", func(ctx context.Context, ec *events.Context) error {
		villageParameters = ec.Parameters()
		return nil
	})

	viewpoint, err := s.svc.NavigateTo(s.ctx, &navigation.NavigateInput{
		Character:  s.character,
		Scene:      s.forest,
		Parameters: map[string]any{"race": "Elf"},
	})
	s.Require().NoError(err)
	s.Equal(s.village.ID, viewpoint.SceneID)
	s.Empty(villageParameters)
}

func (s *NavigationServiceTestSuite) TestNavigateTo_RedirectLoopIsBounded() {
	s.on(events.NavigateTo("tests/forest"), "to-village", func(ctx context.Context, ec *events.Context) error {
		ec.SetRedirect(s.village, "to-village")
		return nil
	})
	s.on(events.NavigateTo("tests/village"), "to-forest", func(ctx context.Context, ec *events.Context) error {
		ec.SetRedirect(s.forest, "to-forest")
		return nil
	})

	_, err := s.svc.NavigateTo(s.ctx, &navigation.NavigateInput{
		Character: s.character,
		Scene:     s.forest,
	})
	s.Error(err)
	s.Equal(daberr.CodeInternal, daberr.GetCode(err))

	_, err = s.svc.CurrentViewpoint(s.ctx, s.character.ID)
	s.True(daberr.IsNotFound(err))
}

func (s *NavigationServiceTestSuite) TestNavigateTo_HandlerErrorStopsNavigation() {
	s.on(events.NavigateTo("tests/forest"), "broken", func(ctx context.Context, ec *events.Context) error {
		return daberr.Configurationf("scene tests/missing is not installed")
	})

	_, err := s.svc.NavigateTo(s.ctx, &navigation.NavigateInput{
		Character: s.character,
		Scene:     s.forest,
	})
	s.True(daberr.IsConfiguration(err))
}

func (s *NavigationServiceTestSuite) TestTakeAction_NavigatesWithActionParameters() {
	s.on(events.NavigateTo("tests/village"), "signpost", func(ctx context.Context, ec *events.Context) error {
		ec.Viewpoint().AddActionGroup(entities.NewActionGroup("signpost", "Go", 0).
			Add(entities.NewAction(s.forest.ID, "Forest", map[string]any{"path": "north"})))
		return nil
	})

	var received any
	s.on(events.NavigateTo("tests/forest"), "reader", func(ctx context.Context, ec *events.Context) error {
		received, _ = ec.Parameter("path")
		return nil
	})

	viewpoint, err := s.svc.NavigateTo(s.ctx, &navigation.NavigateInput{Character: s.character, Scene: s.village})
	s.Require().NoError(err)
	s.Require().Len(viewpoint.Actions(), 1)

	next, err := s.svc.TakeAction(s.ctx, &navigation.TakeActionInput{
		Character: s.character,
		ActionID:  viewpoint.Actions()[0].ID,
	})
	s.Require().NoError(err)

	s.Equal("The Forest", next.Title)
	s.Equal("north", received)
}

func (s *NavigationServiceTestSuite) TestTakeAction_KeepsIntegerParameters() {
	s.on(events.NavigateTo("tests/village"), "signpost", func(ctx context.Context, ec *events.Context) error {
		ec.Viewpoint().AddActionGroup(entities.NewActionGroup("signpost", "Go", 0).
			Add(entities.NewAction(s.forest.ID, "Forest", map[string]any{
				"count": 3,
				"big":   int64(9007199254740993),
				"tags":  []string{"a"},
			})))
		return nil
	})

	var received map[string]any
	s.on(events.NavigateTo("tests/forest"), "reader", func(ctx context.Context, ec *events.Context) error {
		received = map[string]any{}
		for _, key := range []string{"count", "big", "tags"} {
			received[key], _ = ec.Parameter(key)
		}
		return nil
	})

	viewpoint, err := s.svc.NavigateTo(s.ctx, &navigation.NavigateInput{Character: s.character, Scene: s.village})
	s.Require().NoError(err)

	_, err = s.svc.TakeAction(s.ctx, &navigation.TakeActionInput{
		Character: s.character,
		ActionID:  viewpoint.Actions()[0].ID,
	})
	s.Require().NoError(err)

	s.Equal(map[string]any{
		"count": int64(3),
		"big":   int64(9007199254740993),
		"tags":  []any{"a"},
	}, received)
}

func (s *NavigationServiceTestSuite) TestTakeAction_UnknownAction() {
	_, err := s.svc.NavigateTo(s.ctx, &navigation.NavigateInput{Character: s.character, Scene: s.village})
	s.Require().NoError(err)

	_, err = s.svc.TakeAction(s.ctx, &navigation.TakeActionInput{Character: s.character, ActionID: "nope"})
	s.True(daberr.IsNotFound(err))
}

func (s *NavigationServiceTestSuite) TestTakeAction_DestinationDeleted() {
	s.on(events.NavigateTo("tests/village"), "signpost", func(ctx context.Context, ec *events.Context) error {
		ec.Viewpoint().AddActionGroup(entities.NewActionGroup("signpost", "Go", 0).
			Add(entities.NewAction(s.forest.ID, "Forest", nil)))
		return nil
	})

	viewpoint, err := s.svc.NavigateTo(s.ctx, &navigation.NavigateInput{Character: s.character, Scene: s.village})
	s.Require().NoError(err)
	s.Require().NoError(s.scenes.Delete(s.ctx, s.forest.ID))

	_, err = s.svc.TakeAction(s.ctx, &navigation.TakeActionInput{
		Character: s.character,
		ActionID:  viewpoint.Actions()[0].ID,
	})
	s.True(daberr.IsConfiguration(err))
}

func (s *NavigationServiceTestSuite) TestTakeAction_WithoutViewpoint() {
	_, err := s.svc.TakeAction(s.ctx, &navigation.TakeActionInput{Character: s.character, ActionID: "action-1"})
	s.True(daberr.IsNotFound(err))
}

func TestNavigationServiceSuite(t *testing.T) {
	suite.Run(t, new(NavigationServiceTestSuite))
}
