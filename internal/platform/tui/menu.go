package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/storage"
)

// MenuChoice is what the player picked in the main menu.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuPlay
	MenuScores
	MenuQuit
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	Choice MenuChoice
	Title  string
}

var menuItems = []MenuItem{
	{Choice: MenuPlay, Title: "Play"},
	{Choice: MenuScores, Title: "High Scores"},
	{Choice: MenuQuit, Title: "Quit"},
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuInfoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	gameID     string
	difficulty string
	cursor     int
	width      int
	height     int
	highScore  int
	config     core.RuntimeConfig
	chosen     MenuChoice
}

// NewMenuModel creates a new menu model. The high score of gameID is read
// once from store, which may be nil.
func NewMenuModel(store *storage.Store, gameID, difficulty string, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		gameID:     gameID,
		difficulty: difficulty,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
	}
	if store != nil {
		if high, err := store.HighScore(gameID); err == nil {
			m.highScore = high
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
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.chosen = MenuQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.chosen = menuItems[m.cursor].Choice
		return m, tea.Quit

	case MenuActionScoreboard:
		m.chosen = MenuScores
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.chosen != MenuNone {
		return ""
	}

	var b strings.Builder

	// Leave the top third for the banner
	b.WriteString(strings.Repeat("\n", max(m.height/4, 1)))
	b.WriteString(centerText(menuTitleStyle.Render("S P A C E   S H O O T E R"), m.width))
	b.WriteString("\n\n")

	info := fmt.Sprintf("High score: %d", m.highScore)
	if m.difficulty != "" {
		info += "  |  Difficulty: " + m.difficulty
	}
	b.WriteString(centerText(menuInfoStyle.Render(info), m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := "  " + item.Title + "  "
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + item.Title + " <")
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuInfoStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Chosen returns the selected entry, or MenuNone while the menu is open.
func (m MenuModel) Chosen() MenuChoice {
	return m.chosen
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Config core.RuntimeConfig
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, gameID, difficulty string, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, gameID, difficulty, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Chosen() == MenuNone {
		return MenuResult{Choice: MenuQuit, Config: cfg}, nil
	}

	return MenuResult{Choice: m.Chosen(), Config: m.Config()}, nil
}
