package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/elonmusk64/LevelUP-Club/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <assignment_id>",
		Short: "Complete an assigned task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("assignment_id is required")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return errors.New("assignment_id must be an integer")
			}
			return nil
		},
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

			id, _ := strconv.ParseInt(args[0], 10, 64)
			res, err := a.svc.CompleteAssignment(ctx, userID, id)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconDone+" Completed"), res.TaskTitle,
				ui.Muted.Render(fmt.Sprintf("(+%d XP)", res.XPAwarded)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Level", fmt.Sprintf("%d → %d", res.LevelBefore.Level, res.LevelAfter.Level)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Tier", ui.TierText(string(res.LevelAfter.Tier))))
			if res.LevelUp {
				fmt.Fprintln(cmd.OutOrStdout(), ui.IconSparkle+" "+ui.BadgeLevelUp)
			}
			return nil
		},
	}

	return cmd
}
