package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-minigames/internal/core"
	"github.com/vovakirdan/tui-minigames/internal/games/colorgrid/levels"
)

// LevelSelection holds the choice made in the board picker.
type LevelSelection struct {
	Level *levels.Level // nil means a random board
}

// LevelMenuModel is the board picker for Color Grid: a random board
// followed by the preset boards.
type LevelMenuModel struct {
	cursor       int
	width        int
	height       int
	keyMapper    *KeyMapper
	levels       []levels.Level
	selection    LevelSelection
	choosing     bool
	quitting     bool
	back         bool
	scrollOffset int
}

// NewLevelMenuModel creates a board picker over the given presets.
func NewLevelMenuModel(presets []levels.Level, width, height int) LevelMenuModel {
	return LevelMenuModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		levels:    presets,
		choosing:  true,
	}
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateScroll()
		return m, nil
	}
	return m, nil
}

func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.cursor < len(m.levels) {
			m.cursor++
			m.updateScroll()
		}
	case MenuActionSelect:
		m.choosing = false
		if m.cursor > 0 {
			lvl := m.levels[m.cursor-1]
			m.selection = LevelSelection{Level: &lvl}
		}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// visibleItems is the number of list rows that fit between header and footer.
func (m LevelMenuModel) visibleItems() int {
	return max(m.height-10, 3)
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *LevelMenuModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// View renders the board picker.
func (m LevelMenuModel) View() string {
	if m.quitting {
		return ""
	}

	t := GetTheme()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(t.Title.Render("C O L O R   G R I D"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(t.Description.Render("Select a board:"), m.width))
	b.WriteString("\n\n")

	// Row 0 is the random board, rows 1..n are the presets.
	total := len(m.levels) + 1
	end := min(m.scrollOffset+m.visibleItems(), total)

	if m.scrollOffset > 0 {
		b.WriteString(centerText(t.Description.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}

	for i := m.scrollOffset; i < end; i++ {
		cursor := "  "
		style := t.ItemNormal
		if i == m.cursor {
			cursor = "> "
			style = t.ItemActive
		}

		line := "Random board"
		if i > 0 {
			line = levelLabel(m.levels[i-1])
		}
		b.WriteString(centerText(style.Render(cursor+line), m.width))
		b.WriteString("\n")
	}

	if end < total {
		b.WriteString(centerText(t.Description.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Esc: Back  |  Q: Quit"
	b.WriteString(centerText(t.Controls.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// levelLabel describes a preset as "name  HxW  Ns".
func levelLabel(l levels.Level) string {
	label := fmt.Sprintf("%-14s %2dx%-2d", l.Name, l.Height, l.Width)
	if l.Timer > 0 {
		label += fmt.Sprintf("  %3ds", l.Timer)
	}
	return label
}

// Selected returns the selection, or nil if still choosing.
func (m LevelMenuModel) Selected() *LevelSelection {
	if m.choosing || m.back || m.quitting {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelMenuModel) WantsBack() bool {
	return m.back
}

// RunLevelSelector shows the board picker over the built-in boards.
// A nil selection means the player backed out or quit.
func RunLevelSelector(cfg core.RuntimeConfig) (*LevelSelection, error) {
	presets, err := levels.Builtin().LoadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot load boards: %w", err)
	}

	p := tea.NewProgram(
		NewLevelMenuModel(presets, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(LevelMenuModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
