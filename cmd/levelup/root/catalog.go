package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elonmusk64/LevelUP-Club/internal/engine"
	"github.com/elonmusk64/LevelUP-Club/internal/ui"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the task template catalog",
	}

	cmd.AddCommand(newCatalogSeedCmd(), newCatalogListCmd())

	return cmd
}

func newCatalogSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the built-in task templates (safe to rerun)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			n, err := a.svc.SeedCatalog(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d templates\n", ui.Good.Render(ui.IconScroll+" Seeded"), n)
			return nil
		},
	}

	return cmd
}

func newCatalogListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List task templates by frequency",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconScroll, "Task Catalog"))
			for _, freq := range engine.Frequencies {
				list, err := a.svc.TemplateRepo().ListByFrequency(ctx, string(freq))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(string(freq)))
				if len(list) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(empty)"))
					continue
				}
				for _, t := range list {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s %s\n",
						t.Title, ui.Muted.Render(fmt.Sprintf("(+%d XP)", t.XPReward)))
				}
			}
			return nil
		},
	}

	return cmd
}
