package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/spike-runner/internal/core"
	"github.com/vovakirdan/spike-runner/internal/games/runner"
)

// MenuChoice is the entry picked in the main menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScores
	MenuChoiceQuit
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	Label  string
	Choice MenuChoice
}

var defaultMenuItems = []MenuItem{
	{Label: "Play", Choice: MenuChoicePlay},
	{Label: "High Scores", Choice: MenuChoiceScores},
	{Label: "Quit", Choice: MenuChoiceQuit},
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuCurStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	records   runner.Records
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	choice    MenuChoice
}

// NewMenuModel creates a new menu model. The records shown under the title
// are read from kv, which may be nil.
func NewMenuModel(kv core.KV, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:     defaultMenuItems,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		records:   runner.LoadRecords(kv),
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
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
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.choice = MenuChoiceQuit
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
		m.choice = m.items[m.cursor].Choice
		return m, tea.Quit
	}

	if msg.String() == "tab" {
		m.choice = MenuChoiceScores
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice == MenuChoiceQuit {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S P I K E   R U N N E R"), m.width))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Best: %d%%   Deaths: %d", m.records.Record, m.records.Deaths)
	b.WriteString(centerText(menuDimStyle.Render(stats), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Label
		if i == m.cursor {
			line = menuCurStyle.Render("> " + item.Label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the entry the player picked, or MenuChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Records returns the counters shown in the menu.
func (m MenuModel) Records() runner.Records {
	return m.records
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Config core.RuntimeConfig
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(kv core.KV, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(kv, cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Choice() == MenuChoiceNone {
		return MenuResult{Choice: MenuChoiceQuit, Config: cfg}, nil
	}
	return MenuResult{Choice: m.Choice(), Config: m.Config()}, nil
}
