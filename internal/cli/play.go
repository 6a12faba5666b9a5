package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/daybreak/internal/entities"
	daberr "github.com/KirkDiggler/daybreak/internal/errors"
	"github.com/KirkDiggler/daybreak/internal/logger"
	"github.com/KirkDiggler/daybreak/internal/services"
	"github.com/KirkDiggler/daybreak/internal/services/navigation"
)

// PlayOptions holds the flags of the play command
type PlayOptions struct {
	CharacterID string
	Name        string
	Resume      bool
}

// NewPlayCommand creates the play command. It starts a new day for the
// character and reads action numbers from stdin until no actions remain,
// "q" is entered or input ends.
func NewPlayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlayOptions{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start a new day and play through the scenes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.CharacterID, "character", "player", "character ID")
	cmd.Flags().StringVar(&opts.Name, "name", "", "character name")
	cmd.Flags().BoolVar(&opts.Resume, "resume", false, "continue from the last scene instead of starting a new day")

	return cmd
}

func runPlay(rootOpts *RootOptions, opts *PlayOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	provider := rootOpts.Provider
	out := cmd.OutOrStdout()

	// Installing is a no-op for installed modules and lets in-memory runs play
	if err := provider.Install(ctx); err != nil {
		return err
	}

	character := &entities.Character{ID: opts.CharacterID, Name: opts.Name}
	log := logger.WithCharacter(rootOpts.Logger, character.ID)

	viewpoint, err := startingViewpoint(ctx, provider, character, opts.Resume)
	if err != nil {
		return err
	}

	input := bufio.NewScanner(cmd.InOrStdin())
	for {
		actions := render(out, viewpoint)
		if len(actions) == 0 {
			return nil
		}

		fmt.Fprint(out, "> ")
		if !input.Scan() {
			fmt.Fprintln(out)
			return input.Err()
		}

		choice := strings.TrimSpace(input.Text())
		if choice == "q" {
			return nil
		}

		index, err := strconv.Atoi(choice)
		if err != nil || index < 1 || index > len(actions) {
			fmt.Fprintf(out, "choose a number between 1 and %d\n", len(actions))
			continue
		}

		log.Debug("Taking action", "action", actions[index-1].Title, "scene", viewpoint.SceneTemplate)
		next, err := provider.Navigation.TakeAction(ctx, &navigation.TakeActionInput{
			Character: character,
			ActionID:  actions[index-1].ID,
		})
		if err != nil {
			if daberr.IsNotFound(err) {
				fmt.Fprintln(out, "that action is no longer available")
				continue
			}
			return err
		}
		viewpoint = next
	}
}

func startingViewpoint(ctx context.Context, provider *services.Provider, character *entities.Character, resume bool) (*entities.Viewpoint, error) {
	if resume {
		viewpoint, err := provider.Navigation.CurrentViewpoint(ctx, character.ID)
		if err == nil {
			return viewpoint, nil
		}
		if !daberr.IsNotFound(err) {
			return nil, err
		}
	}

	output, err := provider.NewDay.Start(ctx, character)
	if err != nil {
		return nil, err
	}
	return output.Viewpoint, nil
}

// render prints the viewpoint and returns its actions in the numbered order
func render(w io.Writer, viewpoint *entities.Viewpoint) []*entities.Action {
	fmt.Fprintf(w, "\n%s\n\n", viewpoint.Title)
	if viewpoint.Description != "" {
		fmt.Fprintf(w, "%s\n\n", strings.TrimSpace(viewpoint.Description))
	}

	var actions []*entities.Action
	for _, group := range viewpoint.ActionGroups() {
		if len(group.Actions) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s\n", group.Title)
		for _, action := range group.Actions {
			actions = append(actions, action)
			fmt.Fprintf(w, "  %d) %s\n", len(actions), action.Title)
		}
	}
	return actions
}
