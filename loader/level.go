package loader

import (
	"fmt"
	"strings"

	"github.com/nathoo/sokomaze/types"
)

// parseGrid decodes a level grid: one character per cell, one line per
// row. 'W' wall, 'G' goal, 'P' player start, '1'-'9' crate of that
// strength, '$' coin, 'S'/'M'/'F' potions, space for bare floor. The
// tile under an entity or the player is always floor; goals start
// uncovered. Rows must all have the same length and exactly one player
// marker must appear.
func parseGrid(text string) ([][]types.TileKind, map[types.Position]types.Entity, types.Position, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, nil, types.Position{}, fmt.Errorf("empty grid")
	}

	width := len(lines[0])
	tiles := make([][]types.TileKind, 0, len(lines))
	entities := map[types.Position]types.Entity{}
	var start types.Position
	playerSeen := false

	for r, line := range lines {
		if len(line) != width {
			return nil, nil, types.Position{}, fmt.Errorf(
				"row %d length %d, expected %d", r+1, len(line), width)
		}
		row := make([]types.TileKind, width)
		for c, ch := range []rune(line) {
			pos := types.Position{Row: r, Col: c}
			switch {
			case ch == 'W':
				row[c] = types.Wall
			case ch == 'G':
				row[c] = types.Goal
			case ch == ' ':
				row[c] = types.Floor
			case ch == 'P':
				if playerSeen {
					return nil, nil, types.Position{}, fmt.Errorf(
						"row %d: second player marker", r+1)
				}
				playerSeen = true
				start = pos
				row[c] = types.Floor
			case ch == '$':
				entities[pos] = types.Entity{Kind: types.Coin}
				row[c] = types.Floor
			case ch == 'S':
				entities[pos] = types.Entity{Kind: types.StrengthPotion}
				row[c] = types.Floor
			case ch == 'M':
				entities[pos] = types.Entity{Kind: types.MovePotion}
				row[c] = types.Floor
			case ch == 'F':
				entities[pos] = types.Entity{Kind: types.FancyPotion}
				row[c] = types.Floor
			case ch >= '1' && ch <= '9':
				entities[pos] = types.Entity{Kind: types.Crate, Strength: int(ch - '0')}
				row[c] = types.Floor
			default:
				return nil, nil, types.Position{}, fmt.Errorf(
					"row %d: unknown cell character %q", r+1, ch)
			}
		}
		tiles = append(tiles, row)
	}

	if !playerSeen {
		return nil, nil, types.Position{}, fmt.Errorf("no player marker")
	}

	return tiles, entities, start, nil
}
