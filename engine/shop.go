package engine

import "github.com/nathoo/sokomaze/engine/state"

// AttemptPurchase buys the catalogue item with the given id. Unknown ids
// and insufficient funds fail silently. A successful purchase debits the
// price and applies the potion's effect immediately; there is no held
// inventory of unused potions.
func (e *Engine) AttemptPurchase(itemID string) {
	for _, item := range e.Defs.Shop {
		if item.ID != itemID {
			continue
		}
		if e.State.Player.Money < item.Price {
			return
		}
		eff, ok := state.EffectFor(e.Defs.Game, item.Kind)
		if !ok {
			return
		}
		e.State.Player.Money -= item.Price
		state.ApplyEffect(e.State, eff)
		return
	}
}
