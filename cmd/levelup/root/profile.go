package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elonmusk64/LevelUP-Club/internal/ui"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the full profile: user, XP, skills and achievements",
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

			p, err := a.svc.GetProfile(ctx, userID)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconUser, p.User.Name))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Email", p.User.Email))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Role", p.User.Role))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Total XP", p.XP.TotalXP))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Level", p.XP.Level))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Tier", ui.TierText(string(p.XP.Tier))))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconSkill+" Skills"))
			if len(p.Skills) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(none yet)"))
			}
			for _, sk := range p.Skills {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s\n", sk.SkillName, ui.Muted.Render("("+sk.SkillLevel+")"))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconTrophy+" Achievements"))
			if len(p.Achievements) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(none yet)"))
			}
			for _, ach := range p.Achievements {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s\n", ach.Title, ui.Muted.Render("["+ach.Category+"]"))
			}
			return nil
		},
	}

	return cmd
}
