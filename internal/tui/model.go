package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/elonmusk64/LevelUP-Club/internal/engine"
	"github.com/elonmusk64/LevelUP-Club/internal/storage"
)

type boardModel struct {
	ctx    context.Context
	svc    *engine.Service
	userID string

	width  int
	height int

	summary *engine.XPSummary
	tasks   []storage.AssignedTask

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	summary *engine.XPSummary
	tasks   []storage.AssignedTask
	err     error
}

type completedMsg struct {
	id  int64
	res *engine.CompleteResult
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service, userID string) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		userID:  userID,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		summary, err := m.svc.GetXPSummary(m.ctx, m.userID)
		if err != nil {
			return loadedMsg{err: err}
		}
		tasks, err := m.svc.GetOrSeedTodayAssignments(m.ctx, m.userID)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{summary: summary, tasks: tasks}
	}
}

func (m boardModel) completeCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteAssignment(m.ctx, m.userID, id)
		return completedMsg{id: id, res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.summary = msg.summary
		m.tasks = msg.tasks
		if m.selected >= len(m.tasks) {
			m.selected = len(m.tasks) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			if errors.Is(msg.err, engine.ErrAlreadyCompleted) {
				m.lastLog = "Already completed."
				return m, nil
			}
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		note := fmt.Sprintf("Completed %q: +%d XP (level %d → %d)",
			msg.res.TaskTitle, msg.res.XPAwarded, msg.res.LevelBefore.Level, msg.res.LevelAfter.Level)
		if msg.res.LevelUp {
			note += " LEVEL UP"
		}
		m.lastLog = note
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.tasks)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			if m.selected < 0 || m.selected >= len(m.tasks) {
				return m, nil
			}
			at := m.tasks[m.selected]
			if at.Assignment.IsCompleted {
				m.lastLog = "Already completed."
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Completing %q…", at.Task.Title)
			return m, m.completeCmd(at.Assignment.ID)
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := "\n" + m.lastLog

	// Simple 2-column layout.
	leftW := 26
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.summary == nil {
		return "LevelUp — loading…"
	}
	d := m.summary.LevelDescriptor
	bar := progressBar(d.ProgressPercent, engine.XPPerLevel, 30)
	return fmt.Sprintf("LevelUp | %s | Level %d | XP %d %s", d.Tier, d.Level, d.TotalXP, bar)
}

func (m boardModel) renderSidebar() string {
	lines := []string{"Progress"}
	if m.summary == nil {
		lines = append(lines, "Loading…")
	} else {
		d := m.summary.LevelDescriptor
		lines = append(lines, fmt.Sprintf("- Tier: %s", d.Tier))
		lines = append(lines, fmt.Sprintf("- Level: %d", d.Level))
		lines = append(lines, fmt.Sprintf("- To next: %d XP", d.XPForNextLevel))
		lines = append(lines, fmt.Sprintf("- Events: %d", len(m.summary.Events)))
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space: complete")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	var out []string
	out = append(out, "Today's Tasks")
	if len(m.tasks) == 0 {
		out = append(out, "(no assignments — is the catalog seeded?)")
		return strings.Join(out, "\n")
	}
	for i, at := range m.tasks {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		mark := "[ ]"
		if at.Assignment.IsCompleted {
			mark = "[x]"
		}
		out = append(out, fmt.Sprintf("%s%s %-7s %s (+%d XP)",
			cursor, mark, at.Task.Frequency, at.Task.Title, at.Task.XPReward))
	}
	return strings.Join(out, "\n")
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	ratio := float64(value) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
