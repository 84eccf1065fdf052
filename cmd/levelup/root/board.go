package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/elonmusk64/LevelUP-Club/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
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

			return tui.RunBoard(ctx, a.svc, userID, cmd.OutOrStdout())
		},
	}

	return cmd
}
