package main

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/dabingnn/QSanguosha/internal/entities"
	"github.com/dabingnn/QSanguosha/internal/errors"
)

// triggerEngine is the part of the engine that runs trigger skills
type triggerEngine interface {
	General(name string) (*entities.General, bool)
	BindTriggers(general *entities.General) ([]string, error)
	UnbindTriggers(general *entities.General) error
	Publish(ctx context.Context, event events.Event) error
}

var triggerGeneralCmd = &cobra.Command{
	Use:   "trigger [name] [event]",
	Short: "Bind the trigger skills of a general and publish one event to them",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			return runTriggerGeneral(ctx, a.engine, cmd.OutOrStdout(), args[0], args[1])
		})
	},
}

func init() {
	generalCmd.AddCommand(triggerGeneralCmd)
}

func runTriggerGeneral(ctx context.Context, eng triggerEngine, w io.Writer, name, eventType string) (err error) {
	g, ok := eng.General(name)
	if !ok {
		return errors.NotFoundf("general %s not found", name).WithMeta("general", name)
	}

	ids, err := eng.BindTriggers(g)
	if err != nil {
		return err
	}
	defer func() {
		if unbindErr := eng.UnbindTriggers(g); unbindErr != nil && err == nil {
			err = unbindErr
		}
	}()
	_, _ = fmt.Fprintf(w, "bound %d subscriptions for %s\n", len(ids), g.Name())

	for _, skill := range g.TriggerSkills() {
		if slices.Contains(skill.Events(), eventType) {
			_, _ = fmt.Fprintf(w, "  %s (priority %d)\n", skill.Name(), skill.Priority())
		}
	}

	if err := eng.Publish(ctx, events.NewGameEvent(eventType, g, nil)); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "published %s\n", eventType)
	return nil
}
