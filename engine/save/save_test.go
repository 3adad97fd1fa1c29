package save

import (
	"errors"
	"strings"
	"testing"

	"github.com/nathoo/sokomaze/types"
)

// testState builds a 4x5 state: border walls, goal at (1,3), crate of
// strength 2 at (1,2), coin at (2,1), potions at (2,2) and (2,3).
func testState() *types.State {
	return &types.State{
		Player: types.PlayerState{
			Position:       types.Position{Row: 1, Col: 1},
			Strength:       3,
			MovesRemaining: 12,
			Money:          7,
		},
		Entities: map[types.Position]types.Entity{
			{Row: 1, Col: 2}: {Kind: types.Crate, Strength: 2},
			{Row: 2, Col: 1}: {Kind: types.Coin},
			{Row: 2, Col: 2}: {Kind: types.StrengthPotion},
			{Row: 2, Col: 3}: {Kind: types.MovePotion},
		},
		Tiles: [][]types.TileKind{
			{types.Wall, types.Wall, types.Wall, types.Wall, types.Wall},
			{types.Wall, types.Floor, types.Floor, types.Goal, types.Wall},
			{types.Wall, types.Floor, types.Floor, types.Floor, types.Wall},
			{types.Wall, types.Wall, types.Wall, types.Wall, types.Wall},
		},
	}
}

func TestSave_Layout(t *testing.T) {
	data := Save(testState())
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")

	want := []string{
		"3 12 7",
		"WWWWW",
		"WP2 W",
		"W$SMW",
		"WWWWW",
		"goals 1,3",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(want), len(lines), data)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i+1, lines[i], w)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	s := testState()
	s2, err := Load(Save(s))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s2.Player != s.Player {
		t.Errorf("player state mismatch: %+v vs %+v", s2.Player, s.Player)
	}
	if len(s2.Entities) != len(s.Entities) {
		t.Fatalf("expected %d entities, got %d", len(s.Entities), len(s2.Entities))
	}
	for pos, ent := range s.Entities {
		got, ok := s2.Entities[pos]
		if !ok || got != ent {
			t.Errorf("entity at %v = %v (ok=%v), want %v", pos, got, ok, ent)
		}
	}
	for r := range s.Tiles {
		for c := range s.Tiles[r] {
			if s2.Tiles[r][c] != s.Tiles[r][c] {
				t.Errorf("tile (%d,%d) = %v, want %v", r, c, s2.Tiles[r][c], s.Tiles[r][c])
			}
		}
	}
}

func TestSave_GoalUnderCrateSurvives(t *testing.T) {
	s := testState()
	// Resolve the crate onto the goal, then round-trip.
	delete(s.Entities, types.Position{Row: 1, Col: 2})
	s.Entities[types.Position{Row: 1, Col: 3}] = types.Entity{Kind: types.Crate, Strength: 2}

	s2, err := Load(Save(s))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s2.Tiles[1][3] != types.Goal {
		t.Error("goal identity lost under a crate")
	}
	if ent := s2.Entities[types.Position{Row: 1, Col: 3}]; ent.Kind != types.Crate || ent.Strength != 2 {
		t.Errorf("expected crate strength 2 on goal, got %v", ent)
	}
}

func TestLoad_LegacyHeader(t *testing.T) {
	data := []byte("2 9\nWWW\nWPW\nWWW\n")
	s, err := Load(data)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Player.Strength != 2 || s.Player.MovesRemaining != 9 {
		t.Errorf("stats = %+v", s.Player)
	}
	if s.Player.Money != 0 {
		t.Errorf("legacy save should default money to 0, got %d", s.Player.Money)
	}
	if n := goalCount(s); n != 0 {
		t.Errorf("legacy save has no goals trailer, expected 0 goals, got %d", n)
	}
}

func goalCount(s *types.State) int {
	n := 0
	for _, row := range s.Tiles {
		for _, tile := range row {
			if tile == types.Goal {
				n++
			}
		}
	}
	return n
}

func TestLoad_Corrupt(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"header only", "1 5\n"},
		{"one field header", "5\nWPW\n"},
		{"non-numeric header", "1 x\nWPW\n"},
		{"zero strength", "0 5\nWPW\n"},
		{"negative moves", "1 -2\nWPW\n"},
		{"ragged rows", "1 5\nWWWW\nWPW\nWWWW\n"},
		{"unknown char", "1 5\nW?W\nWPW\nWWW\n"},
		{"crate strength zero", "1 5\nW0W\nWPW\nWWW\n"},
		{"no player", "1 5\nWWW\nW W\nWWW\n"},
		{"two players", "1 5\nWPW\nWPW\nWWW\n"},
		{"goal out of bounds", "1 5\nWPW\nWWW\ngoals 9,9\n"},
		{"goal on wall", "1 5\nWPW\nWWW\ngoals 1,1\n"},
		{"malformed goal token", "1 5\nWPW\nWWW\ngoals 1-1\n"},
	}
	for _, tt := range tests {
		s, err := Load([]byte(tt.data))
		if err == nil {
			t.Errorf("%s: expected error, got state %+v", tt.name, s)
			continue
		}
		var ce *CorruptError
		if !errors.As(err, &ce) {
			t.Errorf("%s: expected *CorruptError, got %T (%v)", tt.name, err, err)
		}
		if s != nil {
			t.Errorf("%s: expected nil state on error", tt.name)
		}
	}
}
