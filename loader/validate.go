package loader

import (
	"fmt"
	"os"
	"strings"

	"github.com/nathoo/sokomaze/engine/state"
	"github.com/nathoo/sokomaze/types"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// validate checks the compiled defs for consistency.
func validate(defs *state.Defs) error {
	ve := &ValidationError{}

	if defs.Game.Title == "" {
		ve.Errors = append(ve.Errors, "Game.Title is required")
	}

	// Start level exists.
	if defs.Game.Start == "" {
		ve.Errors = append(ve.Errors, "Game.Start is required")
	} else if _, ok := defs.Levels[defs.Game.Start]; !ok {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"start level %q not found in defined levels", defs.Game.Start))
	}

	// Tuning constants must keep the economy and stats sane.
	if defs.Game.CoinValue <= 0 {
		ve.Errors = append(ve.Errors, "coin_value must be positive")
	}
	if defs.Game.StrengthBoost <= 0 || defs.Game.MoveBoost <= 0 {
		ve.Errors = append(ve.Errors, "potion boosts must be positive")
	}
	if defs.Game.StartStrength < 1 {
		ve.Errors = append(ve.Errors, "start_strength must be at least 1")
	}
	if defs.Game.StartMoves <= 0 {
		ve.Errors = append(ve.Errors, "start_moves must be positive")
	}
	if defs.Game.StartMoney < 0 {
		ve.Errors = append(ve.Errors, "start_money must not be negative")
	}

	// Shop: unique ids, positive prices.
	seen := map[string]bool{}
	for _, item := range defs.Shop {
		if seen[item.ID] {
			ve.Errors = append(ve.Errors, fmt.Sprintf("duplicate shop item ID %q", item.ID))
		}
		seen[item.ID] = true
		if item.Price <= 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"shop item %q price must be positive", item.ID))
		}
	}

	// Levels: a level needs a goal to be winnable, and enough crates to
	// cover every goal.
	for id, level := range defs.Levels {
		goals, crates := countLevel(level)
		if goals == 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("level %q has no goal tiles", id))
		}
		if crates < goals {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"level %q has %d crates for %d goals and cannot be won", id, crates, goals))
		}
	}

	for _, w := range ve.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func countLevel(level types.LevelDef) (goals, crates int) {
	for _, row := range level.Tiles {
		for _, tile := range row {
			if tile == types.Goal {
				goals++
			}
		}
	}
	for _, ent := range level.Entities {
		if ent.Kind == types.Crate {
			crates++
		}
	}
	return goals, crates
}
