// Package engine provides the turn-based simulation core: movement and
// push resolution, the shop economy, and win detection. The engine owns
// all mutable state; shells observe it through read-only accessors and
// drive it through AttemptMove, AttemptPurchase, Reset and Restore.
package engine

import (
	"github.com/nathoo/sokomaze/engine/state"
	"github.com/nathoo/sokomaze/types"
)

// Engine holds the game definitions and mutable state for one level.
type Engine struct {
	Defs  *state.Defs
	State *types.State

	levelID string
}

// New creates an engine for the given level. An empty levelID starts the
// game's configured first level. The level must exist in the defs; the
// loader validates this before an engine is ever built.
func New(defs *state.Defs, levelID string) *Engine {
	if levelID == "" {
		levelID = defs.Game.Start
	}
	return &Engine{
		Defs:    defs,
		State:   state.NewState(defs, levelID),
		levelID: levelID,
	}
}

// Reset restores the engine to its just-constructed state from the
// original level source, not the most recent save.
func (e *Engine) Reset() {
	e.State = state.NewState(e.Defs, e.levelID)
}

// Restore atomically replaces the live state with one produced by the
// save codec. Callers must only pass fully decoded states.
func (e *Engine) Restore(s *types.State) {
	e.State = s
}

// LevelID returns the identifier of the level being played.
func (e *Engine) LevelID() string {
	return e.levelID
}

// Rows returns the maze height.
func (e *Engine) Rows() int {
	return state.Rows(e.State)
}

// Cols returns the maze width.
func (e *Engine) Cols() int {
	return state.Cols(e.State)
}

// TileAt returns the terrain at p.
func (e *Engine) TileAt(p types.Position) types.TileKind {
	return state.TileAt(e.State, p)
}

// Entities returns a snapshot copy of the entity registry.
func (e *Engine) Entities() map[types.Position]types.Entity {
	snapshot := make(map[types.Position]types.Entity, len(e.State.Entities))
	for pos, ent := range e.State.Entities {
		snapshot[pos] = ent
	}
	return snapshot
}

// Player returns a copy of the player's stats.
func (e *Engine) Player() types.PlayerState {
	return e.State.Player
}

// Catalogue returns the shop catalogue in definition order.
func (e *Engine) Catalogue() []types.ShopItem {
	return e.Defs.Shop
}

// HasWon reports whether every goal tile holds a crate.
func (e *Engine) HasWon() bool {
	return state.HasWon(e.State)
}
