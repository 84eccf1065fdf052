package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elonmusk64/LevelUP-Club/internal/ui"
)

func newTasksCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Show today's tasks (assigns new ones if due)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			userID, err := a.currentUser(ctx)
			if err != nil {
				return err
			}

			assigned, err := a.svc.GetOrSeedTodayAssignments(ctx, userID)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTask, "Tasks"))
			if len(assigned) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No assignments yet. Seed the catalog first: levelup catalog seed"))
				return nil
			}
			shown := 0
			for _, at := range assigned {
				if !all && at.Assignment.IsCompleted {
					continue
				}
				shown++
				fmt.Fprintf(cmd.OutOrStdout(), "- #%d %s %s %s %s %s\n",
					at.Assignment.ID,
					ui.FrequencyIcon(at.Task.Frequency),
					at.Task.Title,
					ui.Muted.Render(fmt.Sprintf("(+%d XP, %s)", at.Task.XPReward, at.Task.Frequency)),
					ui.CompletionText(at.Assignment.IsCompleted),
					ui.Muted.Render(at.Assignment.AssignedOn),
				)
			}
			if shown == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" All caught up for today."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include completed assignments")

	return cmd
}
