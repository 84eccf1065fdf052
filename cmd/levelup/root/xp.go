package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elonmusk64/LevelUP-Club/internal/ui"
)

func newXPCmd() *cobra.Command {
	var showLog bool

	cmd := &cobra.Command{
		Use:   "xp",
		Short: "Show XP total, level, tier and the event log",
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

			summary, err := a.svc.GetXPSummary(ctx, userID)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconBolt, "XP Summary"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Total XP", summary.TotalXP))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Level", summary.Level))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Tier", ui.TierText(string(summary.Tier))))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Next level in", fmt.Sprintf("%d XP (%d%%)", summary.XPForNextLevel, summary.ProgressPercent)))

			if !showLog {
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")
			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconScroll+" Event Log"))
			if len(summary.Events) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(empty)"))
				return nil
			}
			for _, ev := range summary.Events {
				delta := fmt.Sprintf("%+d", ev.XPDelta)
				if ev.XPDelta >= 0 {
					delta = ui.Good.Render(delta)
				} else {
					delta = ui.Bad.Render(delta)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s\n",
					delta, ev.Action, ui.Muted.Render(ev.CreatedAt.Format("2006-01-02 15:04")))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showLog, "log", "l", false, "Include the full event log")

	return cmd
}
