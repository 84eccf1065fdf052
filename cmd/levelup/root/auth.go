package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elonmusk64/LevelUP-Club/internal/ui"
)

func newRegisterCmd() *cobra.Command {
	var name string
	var role string

	cmd := &cobra.Command{
		Use:   "register <email> <password>",
		Short: "Register a new user",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("email and password are required")
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

			if name == "" {
				name = args[0]
			}
			u, err := a.auth.Register(ctx, name, args[0], args[1], role)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconUser+" Registered"), u.Email, ui.Muted.Render("("+u.Role+")"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Log in with: levelup login "+u.Email+" <password>"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Display name (defaults to email)")
	cmd.Flags().StringVar(&role, "role", "student", "Account role")

	return cmd
}

func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Log in and persist a session",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("email and password are required")
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

			sess, err := a.auth.Login(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			if err := a.saveSession(sess.Token); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				ui.Good.Render(ui.IconSparkle+" Logged in as"), args[0])
			return nil
		},
	}

	return cmd
}

func newLogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Clear the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.clearSession(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Logged out."))
			return nil
		},
	}

	return cmd
}

func newWhoamiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
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
			u, err := a.svc.UserRepo().Get(ctx, userID)
			if err != nil {
				return err
			}
			if u == nil {
				return errors.New("user record missing")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Key.Render(u.Name), u.Email, ui.Muted.Render("("+u.Role+")"))
			return nil
		},
	}

	return cmd
}
