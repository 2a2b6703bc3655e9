package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pursuit/internal/core"
	"github.com/vovakirdan/tui-pursuit/internal/levels"
)

// Main menu entries, in display order.
const (
	menuCampaign = iota
	menuEndless
	menuSelectLevel
	menuScores
	menuQuit
)

var menuItems = []string{
	"Campaign",
	"Endless",
	"Select Level...",
	"High Scores",
	"Quit",
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel lets the player pick a mode, a starting level, or the scoreboard.
type MenuModel struct {
	pack          []levels.Level
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	config        core.RuntimeConfig
	keyMapper     *KeyMapper

	result MenuResult
	done   bool
}

// NewMenuModel creates a menu over the given level pack.
func NewMenuModel(pack []levels.Level, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		pack:      pack,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
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
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelKey(action)
		}
		return m.handleMainKey(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) finish(r MenuResult) (tea.Model, tea.Cmd) {
	m.result = r
	m.done = true
	return m, tea.Quit
}

func (m MenuModel) handleMainKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		return m.finish(MenuResult{Quit: true})
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case MenuActionScoreboard:
		return m.finish(MenuResult{WantsScoreboard: true})
	case MenuActionSelect:
		switch m.cursor {
		case menuCampaign:
			return m.finish(MenuResult{GameID: "pursuit"})
		case menuEndless:
			return m.finish(MenuResult{GameID: "pursuit_endless"})
		case menuSelectLevel:
			if len(m.pack) > 0 {
				m.inLevelSelect = true
				m.levelCursor = 0
			}
		case menuScores:
			return m.finish(MenuResult{WantsScoreboard: true})
		case menuQuit:
			return m.finish(MenuResult{Quit: true})
		}
	}
	return m, nil
}

func (m MenuModel) handleLevelKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		return m.finish(MenuResult{Quit: true})
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(m.pack)-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		return m.finish(MenuResult{GameID: "pursuit", Level: m.levelCursor + 1})
	case MenuActionBack:
		m.inLevelSelect = false
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("P U R S U I T"), m.width))
	b.WriteString("\n\n")

	if m.inLevelSelect {
		b.WriteString(centerText("Select level:", m.width))
		b.WriteString("\n\n")
		for i, lvl := range m.pack {
			w, h := lvl.Size()
			line := fmt.Sprintf("%2d. %-20s %dx%d", i+1, lvl.Name, w, h)
			b.WriteString(centerText(m.item(line, i == m.levelCursor), m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(centerText(menuHintStyle.Render("Enter: Play  |  Esc: Back  |  Q: Quit"), m.width))
		return b.String()
	}

	for i, item := range menuItems {
		if i == menuCampaign {
			item = fmt.Sprintf("%s (%d levels)", item, len(m.pack))
		}
		b.WriteString(centerText(m.item(item, i == m.cursor), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

func (m MenuModel) item(text string, active bool) string {
	if active {
		return menuActiveStyle.Render("> " + text)
	}
	return "  " + text
}

// Result returns the choice made, valid once the program has exited.
func (m MenuModel) Result() MenuResult {
	r := m.result
	if !m.done {
		r.Quit = true
	}
	r.Config = m.config
	return r
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Level           int // 1-based starting level, 0 for the first
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(pack []levels.Level, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(pack, cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
