package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elonmusk64/LevelUP-Club/internal/engine"
	"github.com/elonmusk64/LevelUP-Club/internal/ui"
)

func newAchievementCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "achievement",
		Aliases: []string{"ach"},
		Short:   "Manage achievements (+50 XP each)",
	}

	cmd.AddCommand(
		newAchievementAddCmd(),
		newAchievementListCmd(),
		newAchievementEditCmd(),
		newAchievementRmCmd(),
	)

	return cmd
}

func achievementInput(title, description, imageURL, category string) engine.AchievementInput {
	in := engine.AchievementInput{Title: title, Category: category}
	if description != "" {
		in.Description = &description
	}
	if imageURL != "" {
		in.ImageURL = &imageURL
	}
	return in
}

func newAchievementAddCmd() *cobra.Command {
	var description string
	var imageURL string
	var category string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an achievement",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
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

			created, err := a.svc.CreateAchievement(ctx, userID, achievementInput(args[0], description, imageURL, category))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconTrophy+" Added"), created.Title,
				ui.Muted.Render(fmt.Sprintf("(+%d XP, id %s)", engine.AchievementXP, created.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "desc", "d", "", "Description")
	cmd.Flags().StringVar(&imageURL, "image", "", "Image URL")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category (required)")

	return cmd
}

func newAchievementListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List achievements",
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

			list, err := a.svc.AchievementRepo().ListByUser(ctx, userID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTrophy, "Achievements"))
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(none yet)"))
				return nil
			}
			for _, ach := range list {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s\n",
					ui.Key.Render(ach.Title),
					ui.Muted.Render("["+ach.Category+"]"),
					ui.Muted.Render(ach.ID))
			}
			return nil
		},
	}

	return cmd
}

func newAchievementEditCmd() *cobra.Command {
	var title string
	var description string
	var imageURL string
	var category string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update an achievement (XP-neutral)",
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

			existing, err := a.svc.AchievementRepo().Get(ctx, args[0], userID)
			if err != nil {
				return err
			}
			if existing == nil {
				return fmt.Errorf("achievement %s: %w", args[0], engine.ErrNotFound)
			}

			// Only flags the user set override the stored fields.
			in := engine.AchievementInput{
				Title:       existing.Title,
				Description: existing.Description,
				ImageURL:    existing.ImageURL,
				Category:    existing.Category,
			}
			flags := cmd.Flags()
			if flags.Changed("title") {
				in.Title = title
			}
			if flags.Changed("desc") {
				in.Description = nil
				if description != "" {
					in.Description = &description
				}
			}
			if flags.Changed("image") {
				in.ImageURL = nil
				if imageURL != "" {
					in.ImageURL = &imageURL
				}
			}
			if flags.Changed("category") {
				in.Category = category
			}

			updated, err := a.svc.UpdateAchievement(ctx, userID, args[0], in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render("Updated"), updated.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&description, "desc", "d", "", "New description")
	cmd.Flags().StringVar(&imageURL, "image", "", "New image URL")
	cmd.Flags().StringVarP(&category, "category", "c", "", "New category")

	return cmd
}

func newAchievementRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an achievement (deducts its XP)",
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

			if err := a.svc.DeleteAchievement(ctx, userID, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				ui.Warn.Render("Deleted"), ui.Muted.Render(fmt.Sprintf("(-%d XP)", engine.AchievementXP)))
			return nil
		},
	}

	return cmd
}
