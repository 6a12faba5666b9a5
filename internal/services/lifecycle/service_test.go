package lifecycle_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/daybreak/internal/entities"
	daberr "github.com/KirkDiggler/daybreak/internal/errors"
	"github.com/KirkDiggler/daybreak/internal/events"
	mockmodules "github.com/KirkDiggler/daybreak/internal/modules/mock"
	modulerepo "github.com/KirkDiggler/daybreak/internal/repositories/modules"
	"github.com/KirkDiggler/daybreak/internal/services/lifecycle"
)

const (
	testLibrary              = "tests/module-sample"
	chooseEvent  events.Name = "h/lotgd/core/navigate-to/tests/choose"
	newDayEvent  events.Name = "h/tests/new-day"
)

type LifecycleServiceTestSuite struct {
	suite.Suite

	ctx     context.Context
	ctrl    *gomock.Controller
	bus     *events.Bus
	records *modulerepo.InMemoryRepository
	module  *mockmodules.MockModule
	svc     lifecycle.Service
}

func (s *LifecycleServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.bus = events.NewBus(nil)
	s.records = modulerepo.NewInMemoryRepository()
	s.svc = lifecycle.NewService(&lifecycle.ServiceConfig{
		Bus:     s.bus,
		Records: s.records,
	})

	s.module = mockmodules.NewMockModule(s.ctrl)
	s.module.EXPECT().Library().Return(testLibrary).AnyTimes()
	s.module.EXPECT().ID().Return(testLibrary).AnyTimes()
	s.module.EXPECT().Priority().Return(events.PriorityDefault).AnyTimes()
	s.module.EXPECT().Events().Return([]events.Name{chooseEvent, newDayEvent}).AnyTimes()
}

func (s *LifecycleServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *LifecycleServiceTestSuite) TestRegister_CreatesRecordAndSubscribes() {
	s.module.EXPECT().OnRegister(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, record *entities.ModuleRecord) error {
			s.Equal(testLibrary, record.Library)
			return nil
		})

	record, err := s.svc.Register(s.ctx, s.module)
	s.Require().NoError(err)
	s.Equal(testLibrary, record.Library)

	s.Equal(1, s.bus.HandlerCount(chooseEvent))
	s.Equal(1, s.bus.HandlerCount(newDayEvent))

	installed, err := s.svc.Installed(s.ctx)
	s.Require().NoError(err)
	s.Len(installed, 1)
}

func (s *LifecycleServiceTestSuite) TestRegister_TwiceReusesRecord() {
	s.module.EXPECT().OnRegister(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	first, err := s.svc.Register(s.ctx, s.module)
	s.Require().NoError(err)
	second, err := s.svc.Register(s.ctx, s.module)
	s.Require().NoError(err)

	s.Equal(first.CreatedAt, second.CreatedAt)
	s.Equal(1, s.bus.HandlerCount(chooseEvent))
}

func (s *LifecycleServiceTestSuite) TestRegister_HookFailureDoesNotSubscribe() {
	s.module.EXPECT().OnRegister(gomock.Any(), gomock.Any()).
		Return(daberr.PartialFailuref("scene left behind"))

	_, err := s.svc.Register(s.ctx, s.module)
	s.True(daberr.IsPartialFailure(err))
	s.Equal(0, s.bus.HandlerCount(chooseEvent))
}

func (s *LifecycleServiceTestSuite) TestUnregister_RemovesEverything() {
	s.module.EXPECT().OnRegister(gomock.Any(), gomock.Any()).Return(nil)
	s.module.EXPECT().OnUnregister(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.svc.Register(s.ctx, s.module)
	s.Require().NoError(err)

	s.Require().NoError(s.svc.Unregister(s.ctx, s.module))

	s.Equal(0, s.bus.HandlerCount(chooseEvent))
	s.Equal(0, s.bus.HandlerCount(newDayEvent))

	_, err = s.records.Get(s.ctx, testLibrary)
	s.True(daberr.IsNotFound(err))
}

func (s *LifecycleServiceTestSuite) TestUnregister_NotInstalledIsNoop() {
	s.NoError(s.svc.Unregister(s.ctx, s.module))
}

func (s *LifecycleServiceTestSuite) TestUnregister_FailureKeepsRecordAndHandlers() {
	s.module.EXPECT().OnRegister(gomock.Any(), gomock.Any()).Return(nil)
	s.module.EXPECT().OnUnregister(gomock.Any(), gomock.Any()).Return(errors.New("scene store offline"))

	_, err := s.svc.Register(s.ctx, s.module)
	s.Require().NoError(err)

	s.Error(s.svc.Unregister(s.ctx, s.module))

	s.Equal(1, s.bus.HandlerCount(chooseEvent))
	_, err = s.records.Get(s.ctx, testLibrary)
	s.NoError(err)
}

func (s *LifecycleServiceTestSuite) TestAttach() {
	s.True(daberr.IsNotFound(s.svc.Attach(s.ctx, s.module)))
	s.Equal(0, s.bus.HandlerCount(chooseEvent))

	s.Require().NoError(s.records.Create(s.ctx, entities.NewModuleRecord(testLibrary)))

	s.Require().NoError(s.svc.Attach(s.ctx, s.module))
	s.Equal(1, s.bus.HandlerCount(chooseEvent))
}

func TestLifecycleServiceSuite(t *testing.T) {
	suite.Run(t, new(LifecycleServiceTestSuite))
}
