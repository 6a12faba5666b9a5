package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/daybreak/internal/entities"
	"github.com/KirkDiggler/daybreak/internal/events"
	"github.com/KirkDiggler/daybreak/internal/modules/race"
	"github.com/KirkDiggler/daybreak/internal/services"
	"github.com/KirkDiggler/daybreak/internal/services/navigation"
)

func TestProvider_InstallPlayUninstall(t *testing.T) {
	ctx := context.Background()
	provider, err := services.NewProvider(&services.ProviderConfig{})
	require.NoError(t, err)

	attached, err := provider.Attach(ctx)
	require.NoError(t, err)
	assert.Zero(t, attached)

	require.NoError(t, provider.Install(ctx))
	require.NoError(t, provider.Install(ctx))
	assert.Equal(t, 1, provider.Bus.HandlerCount(events.NavigateTo(race.DefaultConfig().ChooseTemplate)))

	character := &entities.Character{ID: "char-1"}
	output, err := provider.NewDay.Start(ctx, character)
	require.NoError(t, err)
	assert.Equal(t, navigation.StateRedirected, output.State)

	all, err := provider.Scenes.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	require.NoError(t, provider.Uninstall(ctx))

	all, err = provider.Scenes.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Zero(t, provider.Bus.HandlerCount(events.NavigateTo(race.DefaultConfig().ChooseTemplate)))
}
