package engine

import (
	"github.com/nathoo/sokomaze/engine/state"
	"github.com/nathoo/sokomaze/types"
)

// AttemptMove resolves one movement turn. Illegal attempts — blocked by a
// wall, out of bounds, a blocked or too-heavy push — change nothing and
// consume no move. Exactly one move is debited per successful relocation;
// this is the only place the move budget depletes.
func (e *Engine) AttemptMove(dir types.Direction) {
	s := e.State
	if s.Player.MovesRemaining == 0 {
		return
	}

	target := state.Neighbor(s.Player.Position, dir)
	if state.TileAt(s, target) == types.Wall {
		return
	}

	if ent, ok := state.EntityAt(s, target); ok && ent.Kind == types.Crate {
		// Push legality depends only on the cell beyond the crate: it
		// must be in bounds, not a wall and hold no entity of any kind.
		// A crate never pushes another crate.
		beyond := state.Neighbor(target, dir)
		if state.TileAt(s, beyond) == types.Wall {
			return
		}
		if _, occupied := state.EntityAt(s, beyond); occupied {
			return
		}
		if s.Player.Strength < ent.Strength {
			return
		}
		delete(s.Entities, target)
		s.Entities[beyond] = ent
	}

	s.Player.Position = target
	e.pickup(target)
	s.Player.MovesRemaining--
}

// pickup collects a coin or potion at the player's new position. The
// effect lands immediately; no extra move is consumed.
func (e *Engine) pickup(p types.Position) {
	ent, ok := state.EntityAt(e.State, p)
	if !ok || ent.Kind == types.Crate {
		return
	}
	delete(e.State.Entities, p)

	if ent.Kind == types.Coin {
		e.State.Player.Money += e.Defs.Game.CoinValue
		return
	}
	if eff, ok := state.EffectFor(e.Defs.Game, ent.Kind); ok {
		state.ApplyEffect(e.State, eff)
	}
}
