// Package save implements the line-oriented text serialization of game
// state. The codec is side-effect free: Load builds a fresh state or fails
// with a CorruptError, and never touches a running game.
//
// Format:
//
//	line 1:  strength moves money
//	grid:    one row per line, one character per cell —
//	         'P' player, 'W' wall, '1'-'9' crate strength,
//	         'S'/'M'/'F' potions, '$' coin, space otherwise
//	trailer: "goals r,c r,c ..." listing every goal cell
//
// The original save layout had a two-integer header, no coin marker and no
// goals trailer, which made reloads lose goal identity and money. The
// decoder still accepts that legacy form (money defaults to zero, goal set
// empty); the encoder always writes the extended form.
package save

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nathoo/sokomaze/types"
)

// Cell marker characters shared with the level file format.
const (
	MarkerPlayer         = 'P'
	MarkerWall           = 'W'
	MarkerGoal           = 'G'
	MarkerCoin           = '$'
	MarkerStrengthPotion = 'S'
	MarkerMovePotion     = 'M'
	MarkerFancyPotion    = 'F'
	MarkerFloor          = ' '
)

// CorruptError reports a malformed save. Line is 1-based; zero means the
// save as a whole was unusable.
type CorruptError struct {
	Line   int
	Reason string
}

func (e *CorruptError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("corrupt save: line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("corrupt save: %s", e.Reason)
}

func corrupt(line int, format string, args ...any) error {
	return &CorruptError{Line: line, Reason: fmt.Sprintf(format, args...)}
}

// Save serializes the state to the text format.
func Save(s *types.State) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "%d %d %d\n", s.Player.Strength, s.Player.MovesRemaining, s.Player.Money)

	for r, row := range s.Tiles {
		for c := range row {
			b.WriteRune(cellMarker(s, types.Position{Row: r, Col: c}))
		}
		b.WriteByte('\n')
	}

	b.WriteString("goals")
	for r, row := range s.Tiles {
		for c, tile := range row {
			if tile == types.Goal {
				fmt.Fprintf(&b, " %d,%d", r, c)
			}
		}
	}
	b.WriteByte('\n')

	return []byte(b.String())
}

// cellMarker picks the character for one cell. The player hides whatever
// is underneath; an entity hides the tile.
func cellMarker(s *types.State, p types.Position) rune {
	if p == s.Player.Position {
		return MarkerPlayer
	}
	if ent, ok := s.Entities[p]; ok {
		switch ent.Kind {
		case types.Crate:
			return rune('0' + ent.Strength)
		case types.Coin:
			return MarkerCoin
		case types.StrengthPotion:
			return MarkerStrengthPotion
		case types.MovePotion:
			return MarkerMovePotion
		case types.FancyPotion:
			return MarkerFancyPotion
		}
	}
	if s.Tiles[p.Row][p.Col] == types.Wall {
		return MarkerWall
	}
	return MarkerFloor
}

// Load deserializes a save into a fresh state. On any error the returned
// state is nil and the error is a *CorruptError.
func Load(data []byte) (*types.State, error) {
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) < 2 {
		return nil, corrupt(0, "expected a stats line and at least one maze row")
	}

	strength, moves, money, err := parseHeader(lines[0])
	if err != nil {
		return nil, err
	}

	gridLines := lines[1:]
	var goalsLine string
	if last := gridLines[len(gridLines)-1]; strings.HasPrefix(last, "goals") {
		goalsLine = last
		gridLines = gridLines[:len(gridLines)-1]
	}
	if len(gridLines) == 0 {
		return nil, corrupt(2, "no maze rows")
	}

	s := &types.State{
		Player: types.PlayerState{
			Strength:       strength,
			MovesRemaining: moves,
			Money:          money,
		},
		Entities: map[types.Position]types.Entity{},
	}

	width := len(gridLines[0])
	playerSeen := false
	for r, line := range gridLines {
		lineNo := r + 2
		if len(line) != width {
			return nil, corrupt(lineNo, "row length %d, expected %d", len(line), width)
		}
		row := make([]types.TileKind, width)
		for c, ch := range []rune(line) {
			pos := types.Position{Row: r, Col: c}
			switch {
			case ch == MarkerWall:
				row[c] = types.Wall
			case ch == MarkerFloor:
				row[c] = types.Floor
			case ch == MarkerPlayer:
				if playerSeen {
					return nil, corrupt(lineNo, "second player marker")
				}
				playerSeen = true
				s.Player.Position = pos
				row[c] = types.Floor
			case ch == MarkerCoin:
				s.Entities[pos] = types.Entity{Kind: types.Coin}
				row[c] = types.Floor
			case ch == MarkerStrengthPotion:
				s.Entities[pos] = types.Entity{Kind: types.StrengthPotion}
				row[c] = types.Floor
			case ch == MarkerMovePotion:
				s.Entities[pos] = types.Entity{Kind: types.MovePotion}
				row[c] = types.Floor
			case ch == MarkerFancyPotion:
				s.Entities[pos] = types.Entity{Kind: types.FancyPotion}
				row[c] = types.Floor
			case ch >= '1' && ch <= '9':
				s.Entities[pos] = types.Entity{Kind: types.Crate, Strength: int(ch - '0')}
				row[c] = types.Floor
			default:
				return nil, corrupt(lineNo, "unknown cell character %q", ch)
			}
		}
		s.Tiles = append(s.Tiles, row)
	}

	if !playerSeen {
		return nil, corrupt(0, "no player marker")
	}

	if goalsLine != "" {
		if err := applyGoals(s, goalsLine, len(gridLines)+2); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// parseHeader reads the stats line: "strength moves" (legacy) or
// "strength moves money".
func parseHeader(line string) (strength, moves, money int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 && len(fields) != 3 {
		return 0, 0, 0, corrupt(1, "expected 2 or 3 integers, got %d fields", len(fields))
	}
	nums := make([]int, len(fields))
	for i, f := range fields {
		n, convErr := strconv.Atoi(f)
		if convErr != nil {
			return 0, 0, 0, corrupt(1, "non-numeric stat %q", f)
		}
		nums[i] = n
	}
	strength, moves = nums[0], nums[1]
	if len(nums) == 3 {
		money = nums[2]
	}
	if strength < 1 {
		return 0, 0, 0, corrupt(1, "strength %d out of range", strength)
	}
	if moves < 0 || money < 0 {
		return 0, 0, 0, corrupt(1, "negative stat")
	}
	return strength, moves, money, nil
}

// applyGoals parses the trailer and upgrades the listed floor cells to
// Goal tiles.
func applyGoals(s *types.State, line string, lineNo int) error {
	for _, tok := range strings.Fields(line)[1:] {
		rc := strings.SplitN(tok, ",", 2)
		if len(rc) != 2 {
			return corrupt(lineNo, "malformed goal cell %q", tok)
		}
		r, err1 := strconv.Atoi(rc[0])
		c, err2 := strconv.Atoi(rc[1])
		if err1 != nil || err2 != nil {
			return corrupt(lineNo, "malformed goal cell %q", tok)
		}
		if r < 0 || r >= len(s.Tiles) || c < 0 || c >= len(s.Tiles[0]) {
			return corrupt(lineNo, "goal cell %q out of bounds", tok)
		}
		if s.Tiles[r][c] == types.Wall {
			return corrupt(lineNo, "goal cell %q is a wall", tok)
		}
		s.Tiles[r][c] = types.Goal
	}
	return nil
}
