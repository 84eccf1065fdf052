package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elonmusk64/LevelUP-Club/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "levelup",
	Short:         "LevelUp — gamified personal development",
	Long:          "LevelUp tracks rotating tasks, skills and achievements, and turns them into XP, levels and tiers.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newRegisterCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newTasksCmd(),
		newDoCmd(),
		newXPCmd(),
		newAchievementCmd(),
		newSkillCmd(),
		newProfileCmd(),
		newCatalogCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
