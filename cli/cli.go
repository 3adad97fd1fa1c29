// Package cli provides the plain-terminal shell: it renders the board as
// characters, translates typed commands into engine operations, and
// dispatches meta-commands for saving and loading.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nathoo/sokomaze/engine"
	"github.com/nathoo/sokomaze/engine/save"
	"github.com/nathoo/sokomaze/engine/state"
	"github.com/nathoo/sokomaze/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	Defs      *state.Defs
	In        io.Reader
	Out       io.Writer
	SaveDir   string
	EchoInput bool // echo each input line after the prompt (for script playback)

	lostAnnounced bool
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine, defs *state.Defs) *CLI {
	home, _ := os.UserHomeDir()
	return &CLI{
		Engine:  eng,
		Defs:    defs,
		In:      os.Stdin,
		Out:     os.Stdout,
		SaveDir: filepath.Join(home, ".sokomaze", "saves"),
	}
}

// Run starts the game loop: draw the board, then prompt → input →
// dispatch → redraw until the game is won or the player quits.
func (c *CLI) Run() {
	c.printBoard()

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return // /quit
			}
			continue
		}

		if c.handleCommand(input) {
			return // won
		}
	}
}

// handleCommand dispatches one game command. Returns true when the game
// has been won and the session should end.
func (c *CLI) handleCommand(input string) bool {
	fields := strings.Fields(strings.ToLower(input))
	cmd := fields[0]

	switch cmd {
	case "up", "w":
		c.Engine.AttemptMove(types.Up)
	case "down", "s":
		c.Engine.AttemptMove(types.Down)
	case "left", "a":
		c.Engine.AttemptMove(types.Left)
	case "right", "d":
		c.Engine.AttemptMove(types.Right)

	case "buy":
		if len(fields) < 2 {
			c.printLine("Buy what? Try 'shop' for the catalogue.")
			return false
		}
		before := c.Engine.Player()
		c.Engine.AttemptPurchase(fields[1])
		after := c.Engine.Player()
		if after == before {
			c.printLine("The shopkeeper shakes their head.")
		} else {
			c.printLine(fmt.Sprintf("Bought %s for $%d.", fields[1], before.Money-after.Money))
		}
		c.printStats()
		return false

	case "shop":
		c.printShop()
		return false

	case "map":
		c.printBoard()
		return false

	case "help":
		c.printHelp()
		return false

	default:
		c.printLine(fmt.Sprintf("Unknown command: %s. Type 'help' for commands.", cmd))
		return false
	}

	c.printBoard()
	return c.checkEndgame()
}

// checkEndgame announces a win or a loss. Only a win ends the session:
// a stuck player can still /reset or /load.
func (c *CLI) checkEndgame() bool {
	if c.Engine.HasWon() {
		c.printLine("Every crate is on a goal. You win!")
		return true
	}
	if c.Engine.Player().MovesRemaining == 0 && !c.lostAnnounced {
		c.printLine("Out of moves. Use /reset to try again or /load to restore a save.")
		c.lostAnnounced = true
	}
	return false
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/save":
		c.cmdSave(arg)

	case "/load":
		c.cmdLoad(arg)

	case "/reset":
		c.Engine.Reset()
		c.lostAnnounced = false
		c.printSystem("Level restarted.")
		c.printBoard()

	case "/help":
		c.printHelp()

	case "/state":
		c.cmdState()

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) cmdSave(name string) {
	if name == "" {
		name = "quicksave"
	}

	data := save.Save(c.Engine.State)

	if err := os.MkdirAll(c.SaveDir, 0o755); err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}

	path := filepath.Join(c.SaveDir, name+".sav")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}

	c.printSystem(fmt.Sprintf("Game saved to %s.", name))
}

func (c *CLI) cmdLoad(name string) {
	if name == "" {
		name = "quicksave"
	}

	path := filepath.Join(c.SaveDir, name+".sav")
	data, err := os.ReadFile(path)
	if err != nil {
		c.printSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}

	// The live engine is untouched unless the whole save decodes.
	loaded, err := save.Load(data)
	if err != nil {
		c.printSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}

	c.Engine.Restore(loaded)
	c.lostAnnounced = false
	c.printSystem(fmt.Sprintf("Game loaded from %s.", name))
	c.printBoard()
}

func (c *CLI) printHelp() {
	help := []string{
		"System:",
		"  /save [name]  — Save game (default: quicksave)",
		"  /load [name]  — Load game (default: quicksave)",
		"  /reset        — Restart the level from scratch",
		"  /quit         — Exit game",
		"  /help         — Show this help",
		"  /state        — Debug: dump current state",
		"",
		"Game commands:",
		"  up/down/left/right (w/a/s/d) — Move, pushing crates you can lift",
		"  shop                         — Show the potion catalogue",
		"  buy <item>                   — Buy a potion (takes effect at once)",
		"  map                          — Redraw the board",
		"",
		"Board: P you, W wall, G goal, digits crates (the number is the",
		"strength needed to push), $ coin, S/M/F potions.",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) cmdState() {
	p := c.Engine.Player()
	c.printSystem(fmt.Sprintf("Level: %s", c.Engine.LevelID()))
	c.printSystem(fmt.Sprintf("Position: (%d,%d)", p.Position.Row, p.Position.Col))
	c.printSystem(fmt.Sprintf("Moves: %d  Strength: %d  Money: $%d", p.MovesRemaining, p.Strength, p.Money))
	c.printSystem(fmt.Sprintf("Won: %v", c.Engine.HasWon()))
}

func (c *CLI) printShop() {
	if len(c.Defs.Shop) == 0 {
		c.printLine("The shop is closed.")
		return
	}
	c.printLine("Shop:")
	for _, item := range c.Defs.Shop {
		c.printLine(fmt.Sprintf("  %s: $%d — buy %s", item.Name, item.Price, item.ID))
	}
	c.printLine(fmt.Sprintf("You have $%d.", c.Engine.Player().Money))
}

func (c *CLI) printBoard() {
	for _, line := range BoardLines(c.Engine) {
		c.printLine(line)
	}
	c.printStats()
}

func (c *CLI) printStats() {
	p := c.Engine.Player()
	c.printLine(fmt.Sprintf("Moves: %d  Strength: %d  Money: $%d", p.MovesRemaining, p.Strength, p.Money))
}

// BoardLines renders the maze as one string per row: 'P' player, 'W'
// wall, 'G' uncovered goal, crate strength digits, '$' coin, 'S'/'M'/'F'
// potions. Shared by the script mode and tests.
func BoardLines(eng *engine.Engine) []string {
	entities := eng.Entities()
	player := eng.Player().Position

	lines := make([]string, 0, eng.Rows())
	for r := 0; r < eng.Rows(); r++ {
		var b strings.Builder
		for col := 0; col < eng.Cols(); col++ {
			pos := types.Position{Row: r, Col: col}
			b.WriteRune(cellRune(eng, entities, player, pos))
		}
		lines = append(lines, b.String())
	}
	return lines
}

func cellRune(eng *engine.Engine, entities map[types.Position]types.Entity, player, pos types.Position) rune {
	if pos == player {
		return 'P'
	}
	if ent, ok := entities[pos]; ok {
		switch ent.Kind {
		case types.Crate:
			return rune('0' + ent.Strength)
		case types.Coin:
			return '$'
		case types.StrengthPotion:
			return 'S'
		case types.MovePotion:
			return 'M'
		case types.FancyPotion:
			return 'F'
		}
	}
	switch eng.TileAt(pos) {
	case types.Wall:
		return 'W'
	case types.Goal:
		return 'G'
	default:
		return ' '
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
