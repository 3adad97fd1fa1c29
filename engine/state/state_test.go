package state

import (
	"testing"

	"github.com/nathoo/sokomaze/types"
)

// testDefs builds a 4x5 level: walls around the border, a goal at (1,3),
// a crate at (1,2), a coin at (2,1), player starting at (1,1).
func testDefs() *Defs {
	return &Defs{
		Game: types.GameDef{
			Title:         "Test Game",
			Version:       "1.0",
			Start:         "lv1",
			CoinValue:     5,
			StrengthBoost: 2,
			MoveBoost:     5,
			StartStrength: 1,
			StartMoves:    20,
		},
		Levels: map[string]types.LevelDef{
			"lv1": {
				ID: "lv1",
				Tiles: [][]types.TileKind{
					{types.Wall, types.Wall, types.Wall, types.Wall, types.Wall},
					{types.Wall, types.Floor, types.Floor, types.Goal, types.Wall},
					{types.Wall, types.Floor, types.Floor, types.Floor, types.Wall},
					{types.Wall, types.Wall, types.Wall, types.Wall, types.Wall},
				},
				Entities: map[types.Position]types.Entity{
					{Row: 1, Col: 2}: {Kind: types.Crate, Strength: 1},
					{Row: 2, Col: 1}: {Kind: types.Coin},
				},
				PlayerStart: types.Position{Row: 1, Col: 1},
			},
		},
	}
}

func TestNewState_InitialStats(t *testing.T) {
	defs := testDefs()
	s := NewState(defs, "lv1")

	if s.Player.Position != (types.Position{Row: 1, Col: 1}) {
		t.Errorf("expected player at (1,1), got %v", s.Player.Position)
	}
	if s.Player.Strength != 1 {
		t.Errorf("expected strength 1, got %d", s.Player.Strength)
	}
	if s.Player.MovesRemaining != 20 {
		t.Errorf("expected 20 moves, got %d", s.Player.MovesRemaining)
	}
	if s.Player.Money != 0 {
		t.Errorf("expected money 0, got %d", s.Player.Money)
	}
	if len(s.Entities) != 2 {
		t.Errorf("expected 2 entities, got %d", len(s.Entities))
	}
}

func TestNewState_LevelOverrides(t *testing.T) {
	defs := testDefs()
	level := defs.Levels["lv1"]
	level.Moves = 7
	level.Strength = 3
	defs.Levels["lv1"] = level

	s := NewState(defs, "lv1")
	if s.Player.MovesRemaining != 7 {
		t.Errorf("expected level override of 7 moves, got %d", s.Player.MovesRemaining)
	}
	if s.Player.Strength != 3 {
		t.Errorf("expected level override of strength 3, got %d", s.Player.Strength)
	}
}

func TestNewState_CopiesLevelData(t *testing.T) {
	defs := testDefs()
	s := NewState(defs, "lv1")

	// Mutating the state must not bleed back into the defs.
	delete(s.Entities, types.Position{Row: 1, Col: 2})
	s.Tiles[1][1] = types.Wall

	if len(defs.Levels["lv1"].Entities) != 2 {
		t.Error("state mutation leaked into level entities")
	}
	if defs.Levels["lv1"].Tiles[1][1] != types.Floor {
		t.Error("state mutation leaked into level tiles")
	}
}

func TestTileAt_OutOfBoundsReadsAsWall(t *testing.T) {
	s := NewState(testDefs(), "lv1")

	for _, p := range []types.Position{
		{Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: 4, Col: 0}, {Row: 0, Col: 5},
	} {
		if TileAt(s, p) != types.Wall {
			t.Errorf("expected Wall at out-of-bounds %v", p)
		}
		if InBounds(s, p) {
			t.Errorf("expected %v out of bounds", p)
		}
	}
}

func TestGoals(t *testing.T) {
	s := NewState(testDefs(), "lv1")
	goals := Goals(s)
	if len(goals) != 1 || goals[0] != (types.Position{Row: 1, Col: 3}) {
		t.Errorf("expected single goal at (1,3), got %v", goals)
	}
}

func TestHasWon_RequiresEveryGoalCovered(t *testing.T) {
	s := NewState(testDefs(), "lv1")

	if HasWon(s) {
		t.Error("expected not won with goal uncovered")
	}

	// A crate on a non-goal cell never flips a false result.
	s.Entities[types.Position{Row: 2, Col: 2}] = types.Entity{Kind: types.Crate, Strength: 1}
	if HasWon(s) {
		t.Error("crate on floor should not count as a covered goal")
	}

	// Covering the goal wins, extra crates elsewhere are irrelevant.
	s.Entities[types.Position{Row: 1, Col: 3}] = types.Entity{Kind: types.Crate, Strength: 1}
	if !HasWon(s) {
		t.Error("expected won with every goal holding a crate")
	}
}

func TestHasWon_NonCrateOnGoalDoesNotCount(t *testing.T) {
	s := NewState(testDefs(), "lv1")
	s.Entities[types.Position{Row: 1, Col: 3}] = types.Entity{Kind: types.Coin}
	if HasWon(s) {
		t.Error("coin on goal should not count as covered")
	}
}

func TestNeighbor(t *testing.T) {
	p := types.Position{Row: 2, Col: 2}
	tests := []struct {
		dir  types.Direction
		want types.Position
	}{
		{types.Up, types.Position{Row: 1, Col: 2}},
		{types.Down, types.Position{Row: 3, Col: 2}},
		{types.Left, types.Position{Row: 2, Col: 1}},
		{types.Right, types.Position{Row: 2, Col: 3}},
	}
	for _, tt := range tests {
		if got := Neighbor(p, tt.dir); got != tt.want {
			t.Errorf("Neighbor(%v, %v) = %v, want %v", p, tt.dir, got, tt.want)
		}
	}
}

func TestEffectFor(t *testing.T) {
	game := testDefs().Game

	eff, ok := EffectFor(game, types.StrengthPotion)
	if !ok || eff != (types.Effect{Strength: 2}) {
		t.Errorf("strength potion effect = %v (ok=%v)", eff, ok)
	}

	eff, ok = EffectFor(game, types.MovePotion)
	if !ok || eff != (types.Effect{Moves: 5}) {
		t.Errorf("move potion effect = %v (ok=%v)", eff, ok)
	}

	eff, ok = EffectFor(game, types.FancyPotion)
	if !ok || eff != (types.Effect{Strength: 2, Moves: 5}) {
		t.Errorf("fancy potion effect = %v (ok=%v)", eff, ok)
	}

	if _, ok := EffectFor(game, types.Crate); ok {
		t.Error("crates must not map to an effect")
	}
	if _, ok := EffectFor(game, types.Coin); ok {
		t.Error("coins must not map to an effect")
	}
}

func TestApplyEffect(t *testing.T) {
	s := NewState(testDefs(), "lv1")
	ApplyEffect(s, types.Effect{Strength: 2, Moves: 5})

	if s.Player.Strength != 3 {
		t.Errorf("expected strength 3, got %d", s.Player.Strength)
	}
	if s.Player.MovesRemaining != 25 {
		t.Errorf("expected 25 moves, got %d", s.Player.MovesRemaining)
	}
}
