package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elonmusk64/LevelUP-Club/internal/engine"
	"github.com/elonmusk64/LevelUP-Club/internal/ui"
)

func newSkillCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skill",
		Short: "Manage skills (+30 XP each)",
	}

	cmd.AddCommand(
		newSkillAddCmd(),
		newSkillListCmd(),
		newSkillEditCmd(),
		newSkillRmCmd(),
	)

	return cmd
}

func newSkillAddCmd() *cobra.Command {
	var level string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a skill",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
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

			created, err := a.svc.CreateSkill(ctx, userID, engine.SkillInput{Name: args[0], Level: level})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconSkill+" Added"), created.SkillName,
				ui.Muted.Render(fmt.Sprintf("(%s, +%d XP, id %s)", created.SkillLevel, engine.SkillXP, created.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&level, "level", "l", "", "Skill level, e.g. beginner (required)")

	return cmd
}

func newSkillListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List skills",
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

			list, err := a.svc.SkillRepo().ListByUser(ctx, userID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSkill, "Skills"))
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(none yet)"))
				return nil
			}
			for _, sk := range list {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s\n",
					ui.Key.Render(sk.SkillName),
					ui.Muted.Render("("+sk.SkillLevel+")"),
					ui.Muted.Render(sk.ID))
			}
			return nil
		},
	}

	return cmd
}

func newSkillEditCmd() *cobra.Command {
	var name string
	var level string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a skill (XP-neutral)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
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

			existing, err := a.svc.SkillRepo().Get(ctx, args[0], userID)
			if err != nil {
				return err
			}
			if existing == nil {
				return fmt.Errorf("skill %s: %w", args[0], engine.ErrNotFound)
			}

			// Only flags the user set override the stored fields.
			in := engine.SkillInput{Name: existing.SkillName, Level: existing.SkillLevel}
			if cmd.Flags().Changed("name") {
				in.Name = name
			}
			if cmd.Flags().Changed("level") {
				in.Level = level
			}

			updated, err := a.svc.UpdateSkill(ctx, userID, args[0], in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render("Updated"), updated.SkillName, ui.Muted.Render("("+updated.SkillLevel+")"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "New name")
	cmd.Flags().StringVarP(&level, "level", "l", "", "New level")

	return cmd
}

func newSkillRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a skill (deducts its XP)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
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

			if err := a.svc.DeleteSkill(ctx, userID, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				ui.Warn.Render("Deleted"), ui.Muted.Render(fmt.Sprintf("(-%d XP)", engine.SkillXP)))
			return nil
		},
	}

	return cmd
}
