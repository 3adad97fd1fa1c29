package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/sokomaze/engine"
	"github.com/nathoo/sokomaze/engine/save"
	"github.com/nathoo/sokomaze/engine/state"
	"github.com/nathoo/sokomaze/types"
)

// promptKind identifies what the text input at the bottom of the screen
// is currently asking for.
type promptKind int

const (
	promptNone promptKind = iota
	promptSave
	promptLoad
)

// keyMap holds the key bindings for the maze view.
type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Reset key.Binding
	Save  key.Binding
	Load  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:    key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "move up")),
		Down:  key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "move down")),
		Left:  key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "move left")),
		Right: key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "move right")),
		Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart level")),
		Save:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Load:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "load")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the Bubble Tea model for the sokomaze TUI.
type Model struct {
	engine *engine.Engine
	defs   *state.Defs

	keys  keyMap
	input textinput.Model

	prompt   promptKind
	message  string
	msgStyle lipgloss.Style
	showHelp bool
	won      bool
	lost     bool

	width    int
	height   int
	quitting bool
	saveDir  string
}

// New creates a TUI model wired to the given engine.
func New(eng *engine.Engine, defs *state.Defs) Model {
	ti := textinput.New()
	ti.Prompt = "name: "
	ti.CharLimit = 64

	home, _ := os.UserHomeDir()
	return Model{
		engine:   eng,
		defs:     defs,
		keys:     defaultKeyMap(),
		input:    ti,
		msgStyle: styleMessage,
		saveDir:  filepath.Join(home, ".sokomaze", "saves"),
	}
}

// Run starts the Bubble Tea program. An empty saveDir keeps the default
// under the user's home directory.
func Run(eng *engine.Engine, defs *state.Defs, saveDir string) error {
	m := New(eng, defs)
	if saveDir != "" {
		m.saveDir = saveDir
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.prompt != promptNone {
			return m.updatePrompt(msg)
		}
		return m.updateMaze(msg)
	}

	return m, nil
}

// updatePrompt handles keys while the save/load name prompt is open.
func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := strings.TrimSpace(m.input.Value())
		kind := m.prompt
		m.closePrompt()
		if name == "" {
			name = "quicksave"
		}
		if kind == promptSave {
			m.cmdSave(name)
		} else {
			m.cmdLoad(name)
		}
		return m, nil

	case "esc", "ctrl+c":
		m.closePrompt()
		m.setMessage("Cancelled.", styleSystem)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closePrompt() {
	m.prompt = promptNone
	m.input.Blur()
	m.input.SetValue("")
}

// updateMaze handles keys in the normal maze view.
func (m Model) updateMaze(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.engine.Reset()
		m.won = false
		m.lost = false
		m.setMessage("Level restarted.", styleSystem)
		return m, nil

	case key.Matches(msg, m.keys.Save):
		m.prompt = promptSave
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Load):
		m.prompt = promptLoad
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Up):
		m.move(types.Up)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.move(types.Down)
		return m, nil
	case key.Matches(msg, m.keys.Left):
		m.move(types.Left)
		return m, nil
	case key.Matches(msg, m.keys.Right):
		m.move(types.Right)
		return m, nil
	}

	// Digits 1-9 buy the corresponding shop item.
	if idx, ok := shopIndex(msg.String()); ok && idx < len(m.engine.Catalogue()) {
		m.buy(m.engine.Catalogue()[idx])
	}
	return m, nil
}

// shopIndex maps a digit key to a zero-based catalogue index.
func shopIndex(s string) (int, bool) {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '1'), true
}

// move drives one engine turn and refreshes the win/loss banners.
func (m *Model) move(dir types.Direction) {
	if m.won {
		return
	}

	before := m.engine.Player()
	m.engine.AttemptMove(dir)
	after := m.engine.Player()

	if after == before {
		m.setMessage("You can't move there.", styleSystem)
	} else {
		m.setMessage("", styleMessage)
	}

	if picked := after.Money - before.Money; picked > 0 {
		m.setMessage(fmt.Sprintf("You pick up a coin (+%d money).", picked), styleMessage)
	}

	if m.engine.HasWon() {
		m.won = true
		return
	}
	if after.MovesRemaining == 0 {
		m.lost = true
	}
}

// buy attempts a purchase and reports the outcome.
func (m *Model) buy(item types.ShopItem) {
	if m.won || m.lost {
		return
	}

	before := m.engine.Player()
	m.engine.AttemptPurchase(item.ID)
	after := m.engine.Player()

	if after == before {
		m.setMessage(fmt.Sprintf("You can't afford %s (%d money).", item.Name, item.Price), styleSystem)
		return
	}
	m.setMessage(fmt.Sprintf("You buy %s for %d money.", item.Name, item.Price), styleMessage)
}

func (m *Model) setMessage(text string, style lipgloss.Style) {
	m.message = text
	m.msgStyle = style
}

func (m *Model) cmdSave(name string) {
	if err := os.MkdirAll(m.saveDir, 0o755); err != nil {
		m.setMessage(fmt.Sprintf("Save failed: %v", err), styleSystem)
		return
	}

	path := filepath.Join(m.saveDir, name+".sav")
	if err := os.WriteFile(path, save.Save(m.engine.State), 0o644); err != nil {
		m.setMessage(fmt.Sprintf("Save failed: %v", err), styleSystem)
		return
	}
	m.setMessage(fmt.Sprintf("Game saved to %s.", name), styleSystem)
}

func (m *Model) cmdLoad(name string) {
	path := filepath.Join(m.saveDir, name+".sav")
	data, err := os.ReadFile(path)
	if err != nil {
		m.setMessage(fmt.Sprintf("Load failed: %v", err), styleSystem)
		return
	}

	s, err := save.Load(data)
	if err != nil {
		m.setMessage(fmt.Sprintf("Load failed: %v", err), styleSystem)
		return
	}

	m.engine.Restore(s)
	m.won = m.engine.HasWon()
	m.lost = !m.won && s.Player.MovesRemaining == 0
	m.setMessage(fmt.Sprintf("Game loaded from %s.", name), styleSystem)
}

// View renders the full layout: title, board beside the shop, status bar,
// message line and the optional prompt or help panel.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := m.defs.Game.Title
	if m.defs.Game.Version != "" {
		title += " v" + m.defs.Game.Version
	}
	b.WriteString(styleTitle.Render(title))
	b.WriteString("\n\n")

	board := styleBoard.Render(m.boardView())
	shop := styleShopPane.Render(m.shopView())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, board, shop))
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	switch {
	case m.won:
		b.WriteString(styleWin.Render("All crates are on their goals — you win! (r to play again, q to quit)"))
	case m.lost:
		b.WriteString(styleLoss.Render("Out of moves. (r to try again, q to quit)"))
	case m.message != "":
		b.WriteString(m.msgStyle.Render(m.message))
	}
	b.WriteString("\n")

	if m.prompt != promptNone {
		label := "Save as:"
		if m.prompt == promptLoad {
			label = "Load from:"
		}
		b.WriteString(styleSystem.Render(label) + " " + m.input.View() + "\n")
	} else if m.showHelp {
		b.WriteString(m.helpView())
	} else {
		b.WriteString(styleSystem.Render("arrows/wasd move · 1-" +
			fmt.Sprint(max(1, len(m.engine.Catalogue()))) + " buy · ? help"))
	}

	return b.String()
}

// boardView renders the maze grid with one styled glyph per cell.
func (m Model) boardView() string {
	entities := m.engine.Entities()
	player := m.engine.Player().Position

	var rows []string
	for r := 0; r < m.engine.Rows(); r++ {
		var row strings.Builder
		for c := 0; c < m.engine.Cols(); c++ {
			row.WriteString(m.cellView(entities, player, types.Position{Row: r, Col: c}))
		}
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}

// cellView returns the styled glyph for one cell. Entities draw over
// terrain; the player draws over everything.
func (m Model) cellView(entities map[types.Position]types.Entity, player, pos types.Position) string {
	onGoal := m.engine.TileAt(pos) == types.Goal

	if pos == player {
		return stylePlayer.Render("@")
	}

	if ent, ok := entities[pos]; ok {
		switch ent.Kind {
		case types.Crate:
			glyph := string(rune('0' + ent.Strength))
			if onGoal {
				return styleCrateOnGoal.Render(glyph)
			}
			return styleCrate.Render(glyph)
		case types.Coin:
			return styleCoin.Render("$")
		case types.StrengthPotion:
			return stylePotion.Render("S")
		case types.MovePotion:
			return stylePotion.Render("M")
		case types.FancyPotion:
			return stylePotion.Render("F")
		}
	}

	switch m.engine.TileAt(pos) {
	case types.Wall:
		return styleWall.Render("#")
	case types.Goal:
		return styleGoal.Render("×")
	}
	return " "
}

// shopView renders the catalogue with its digit hotkeys.
func (m Model) shopView() string {
	items := m.engine.Catalogue()
	if len(items) == 0 {
		return ""
	}

	lines := []string{styleShopTitle.Render("Shop")}
	for i, item := range items {
		lines = append(lines, styleShopItem.Render(
			fmt.Sprintf("%d. %s — %d", i+1, item.Name, item.Price)))
	}
	return strings.Join(lines, "\n")
}

// helpView lists all key bindings.
func (m Model) helpView() string {
	bindings := []key.Binding{
		m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right,
		m.keys.Reset, m.keys.Save, m.keys.Load, m.keys.Help, m.keys.Quit,
	}

	var lines []string
	for _, b := range bindings {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("  %-8s %s", h.Key, h.Desc))
	}
	lines = append(lines, "  1-9      buy the numbered shop item")
	return styleSystem.Render(strings.Join(lines, "\n"))
}
