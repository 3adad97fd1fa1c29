// Package state holds the immutable game definitions and the pure query
// and mutation helpers over *types.State. Nothing here performs I/O.
package state

import "github.com/nathoo/sokomaze/types"

// Defs holds the immutable game definitions loaded from Lua.
type Defs struct {
	Game   types.GameDef
	Shop   []types.ShopItem
	Levels map[string]types.LevelDef
}

// NewState builds a fresh game state for the given level. The level's tile
// grid and entity map are copied so the defs stay pristine across resets.
func NewState(defs *Defs, levelID string) *types.State {
	level := defs.Levels[levelID]

	tiles := make([][]types.TileKind, len(level.Tiles))
	for r, row := range level.Tiles {
		tiles[r] = make([]types.TileKind, len(row))
		copy(tiles[r], row)
	}

	entities := make(map[types.Position]types.Entity, len(level.Entities))
	for pos, ent := range level.Entities {
		entities[pos] = ent
	}

	strength := defs.Game.StartStrength
	if level.Strength > 0 {
		strength = level.Strength
	}
	moves := defs.Game.StartMoves
	if level.Moves > 0 {
		moves = level.Moves
	}

	return &types.State{
		Player: types.PlayerState{
			Position:       level.PlayerStart,
			Strength:       strength,
			MovesRemaining: moves,
			Money:          defs.Game.StartMoney,
		},
		Entities: entities,
		Tiles:    tiles,
	}
}

// Rows returns the maze height.
func Rows(s *types.State) int {
	return len(s.Tiles)
}

// Cols returns the maze width. The grid is rectangular, so the first row
// is representative.
func Cols(s *types.State) int {
	if len(s.Tiles) == 0 {
		return 0
	}
	return len(s.Tiles[0])
}

// InBounds reports whether p addresses a cell inside the maze.
func InBounds(s *types.State, p types.Position) bool {
	return p.Row >= 0 && p.Row < Rows(s) && p.Col >= 0 && p.Col < Cols(s)
}

// TileAt returns the terrain at p. Out-of-bounds cells read as Wall so
// callers probing neighbours never index past the grid.
func TileAt(s *types.State, p types.Position) types.TileKind {
	if !InBounds(s, p) {
		return types.Wall
	}
	return s.Tiles[p.Row][p.Col]
}

// EntityAt returns the entity occupying p, if any.
func EntityAt(s *types.State, p types.Position) (types.Entity, bool) {
	ent, ok := s.Entities[p]
	return ent, ok
}

// Goals returns the positions of every Goal tile, in row-major order.
func Goals(s *types.State) []types.Position {
	var goals []types.Position
	for r, row := range s.Tiles {
		for c, tile := range row {
			if tile == types.Goal {
				goals = append(goals, types.Position{Row: r, Col: c})
			}
		}
	}
	return goals
}

// HasWon reports whether every Goal tile currently holds a crate. Crates
// parked elsewhere are irrelevant; every goal must be covered.
func HasWon(s *types.State) bool {
	for _, pos := range Goals(s) {
		ent, ok := s.Entities[pos]
		if !ok || ent.Kind != types.Crate {
			return false
		}
	}
	return true
}

// Neighbor returns the cell adjacent to p in direction d.
func Neighbor(p types.Position, d types.Direction) types.Position {
	switch d {
	case types.Up:
		return types.Position{Row: p.Row - 1, Col: p.Col}
	case types.Down:
		return types.Position{Row: p.Row + 1, Col: p.Col}
	case types.Left:
		return types.Position{Row: p.Row, Col: p.Col - 1}
	default:
		return types.Position{Row: p.Row, Col: p.Col + 1}
	}
}

// EffectFor maps a potion kind to its stat effect under the given game
// constants. The second return is false for non-potion kinds.
func EffectFor(game types.GameDef, kind types.EntityKind) (types.Effect, bool) {
	switch kind {
	case types.StrengthPotion:
		return types.Effect{Strength: game.StrengthBoost}, true
	case types.MovePotion:
		return types.Effect{Moves: game.MoveBoost}, true
	case types.FancyPotion:
		return types.Effect{Strength: game.StrengthBoost, Moves: game.MoveBoost}, true
	default:
		return types.Effect{}, false
	}
}

// ApplyEffect adjusts the player's stats by the given effect. This is the
// single application point for potion effects, bought or picked up.
func ApplyEffect(s *types.State, eff types.Effect) {
	s.Player.Strength += eff.Strength
	s.Player.MovesRemaining += eff.Moves
}
