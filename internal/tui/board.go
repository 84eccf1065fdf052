package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/elonmusk64/LevelUP-Club/internal/engine"
)

// RunBoard opens the today-board TUI for the given user.
func RunBoard(ctx context.Context, svc *engine.Service, userID string, out io.Writer) error {
	p := tea.NewProgram(newBoardModel(ctx, svc, userID), tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run board: %w", err)
	}
	return nil
}
