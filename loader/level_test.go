package loader

import (
	"strings"
	"testing"

	"github.com/nathoo/sokomaze/types"
)

func TestParseGrid_AllMarkers(t *testing.T) {
	grid := strings.Join([]string{
		"WWWWWW",
		"WP3 GW",
		"W$SMFW",
		"WWWWWW",
	}, "\n")

	tiles, entities, start, err := parseGrid(grid)
	if err != nil {
		t.Fatalf("parseGrid failed: %v", err)
	}

	if start != (types.Position{Row: 1, Col: 1}) {
		t.Errorf("start = %v", start)
	}
	if tiles[1][4] != types.Goal {
		t.Error("expected goal at (1,4)")
	}
	if tiles[1][1] != types.Floor {
		t.Error("player cell should read as floor")
	}

	want := map[types.Position]types.Entity{
		{Row: 1, Col: 2}: {Kind: types.Crate, Strength: 3},
		{Row: 2, Col: 1}: {Kind: types.Coin},
		{Row: 2, Col: 2}: {Kind: types.StrengthPotion},
		{Row: 2, Col: 3}: {Kind: types.MovePotion},
		{Row: 2, Col: 4}: {Kind: types.FancyPotion},
	}
	if len(entities) != len(want) {
		t.Fatalf("expected %d entities, got %d", len(want), len(entities))
	}
	for pos, ent := range want {
		if got := entities[pos]; got != ent {
			t.Errorf("entity at %v = %v, want %v", pos, got, ent)
		}
	}
}

func TestParseGrid_CRLF(t *testing.T) {
	_, _, _, err := parseGrid("WWW\r\nWPW\r\nWWW\r\n")
	if err != nil {
		t.Errorf("expected CRLF grid to parse, got %v", err)
	}
}

func TestParseGrid_Errors(t *testing.T) {
	tests := []struct {
		name string
		grid string
		want string
	}{
		{"empty", "", "empty grid"},
		{"ragged", "WWW\nWPWW\nWWW\n", "row 2 length"},
		{"unknown char", "WWW\nWxW\nWPW\n", "unknown cell character"},
		{"no player", "WWW\nW W\nWWW\n", "no player marker"},
		{"two players", "WWWW\nWPPW\nWWWW\n", "second player marker"},
		{"zero crate", "WWW\nW0W\nWPW\n", "unknown cell character"},
	}
	for _, tt := range tests {
		_, _, _, err := parseGrid(tt.grid)
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error %q does not mention %q", tt.name, err, tt.want)
		}
	}
}
