package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockshoot/internal/config"
	"github.com/vovakirdan/blockshoot/internal/core"
)

// HighScorer reports the best score recorded for a difficulty.
type HighScorer interface {
	HighScore(difficulty string) (uint32, error)
}

// MenuModel is the difficulty picker shown before a game.
type MenuModel struct {
	items          []config.DifficultyPreset
	best           map[config.DifficultyPreset]uint32
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       bool
	openScoreboard bool
}

// NewMenuModel creates a picker with the cursor on initial. Best scores are
// read from scores when it is non-nil.
func NewMenuModel(scores HighScorer, cfg core.RuntimeConfig, initial config.DifficultyPreset) MenuModel {
	m := MenuModel{
		items:     config.Presets,
		best:      make(map[config.DifficultyPreset]uint32),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	for i, p := range m.items {
		if p == initial {
			m.cursor = i
		}
		if scores == nil {
			continue
		}
		if best, err := scores.HighScore(string(p)); err == nil {
			m.best[p] = best
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			m.selected = true
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(core.ColorCrimson.ANSI()))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(core.ColorAqua.ANSI()))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorGray.ANSI()))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("B L O C K   S H O O T", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a difficulty", m.width))
	b.WriteString("\n\n")

	for i, p := range m.items {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = activeStyle
		}
		line := fmt.Sprintf("%s%-8s best %6d", cursor, p, m.best[p])
		b.WriteString(style.Render(centerText(line, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(dimStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen difficulty, if any.
func (m MenuModel) Selected() (config.DifficultyPreset, bool) {
	if !m.selected || len(m.items) == 0 {
		return "", false
	}
	return m.items[m.cursor], true
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Difficulty      config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the difficulty picker and returns the selection.
func RunMenu(scores HighScorer, cfg core.RuntimeConfig, initial config.DifficultyPreset) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(scores, cfg, initial), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}
	if d, ok := m.Selected(); ok {
		result.Difficulty = d
		return result, nil
	}
	result.Quit = true
	return result, nil
}
