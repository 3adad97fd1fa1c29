package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nathoo/sokomaze/engine/state"
	"github.com/nathoo/sokomaze/types"
	lua "github.com/yuin/gopher-lua"
)

// rawShopItem holds a shop item table before compilation.
type rawShopItem struct {
	id    string
	table *lua.LTable
}

// rawLevel holds a level table before compilation.
type rawLevel struct {
	id    string
	table *lua.LTable
}

// Tuning defaults applied when game.lua leaves a constant unset.
const (
	defaultCoinValue     = 5
	defaultStrengthBoost = 2
	defaultMoveBoost     = 5
	defaultStartStrength = 1
	defaultStartMoves    = 25
)

// potionKinds maps Lua kind strings to entity kinds. Only potions are
// purchasable; crates and coins never appear in a catalogue.
var potionKinds = map[string]types.EntityKind{
	"strength_potion": types.StrengthPotion,
	"move_potion":     types.MovePotion,
	"fancy_potion":    types.FancyPotion,
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getInt returns an int field from a Lua table, or def if missing.
func getInt(tbl *lua.LTable, key string, def int) int {
	v := tbl.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return int(n)
	}
	return def
}

// compile converts all collected Lua data into a Defs struct, reading and
// parsing each level's grid file relative to dir.
func compile(coll *collector, dir string) (*state.Defs, error) {
	defs := &state.Defs{
		Levels: map[string]types.LevelDef{},
	}

	if coll.game == nil {
		return nil, fmt.Errorf("no Game{} definition found")
	}
	defs.Game = compileGame(coll.game)

	for _, raw := range coll.items {
		item, err := compileShopItem(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling shop item %s: %w", raw.id, err)
		}
		defs.Shop = append(defs.Shop, item)
	}

	for _, raw := range coll.levels {
		level, err := compileLevel(raw, dir)
		if err != nil {
			return nil, fmt.Errorf("compiling level %s: %w", raw.id, err)
		}
		if _, dup := defs.Levels[level.ID]; dup {
			return nil, fmt.Errorf("duplicate level ID %q", level.ID)
		}
		defs.Levels[level.ID] = level
	}

	return defs, nil
}

func compileGame(tbl *lua.LTable) types.GameDef {
	return types.GameDef{
		Title:         getString(tbl, "title"),
		Author:        getString(tbl, "author"),
		Version:       getString(tbl, "version"),
		Start:         getString(tbl, "start"),
		CoinValue:     getInt(tbl, "coin_value", defaultCoinValue),
		StrengthBoost: getInt(tbl, "strength_boost", defaultStrengthBoost),
		MoveBoost:     getInt(tbl, "move_boost", defaultMoveBoost),
		StartStrength: getInt(tbl, "start_strength", defaultStartStrength),
		StartMoves:    getInt(tbl, "start_moves", defaultStartMoves),
		StartMoney:    getInt(tbl, "start_money", 0),
	}
}

func compileShopItem(raw rawShopItem) (types.ShopItem, error) {
	tbl := raw.table

	// The kind defaults to the item id, so the common catalogue reads
	// ShopItem "strength_potion" { name = ..., price = ... }.
	kindName := getString(tbl, "kind")
	if kindName == "" {
		kindName = raw.id
	}
	kind, ok := potionKinds[kindName]
	if !ok {
		return types.ShopItem{}, fmt.Errorf("unknown potion kind %q", kindName)
	}

	return types.ShopItem{
		ID:    raw.id,
		Name:  getString(tbl, "name"),
		Kind:  kind,
		Price: getInt(tbl, "price", 0),
	}, nil
}

func compileLevel(raw rawLevel, dir string) (types.LevelDef, error) {
	tbl := raw.table

	level := types.LevelDef{
		ID:       raw.id,
		Name:     getString(tbl, "name"),
		File:     getString(tbl, "file"),
		Moves:    getInt(tbl, "moves", 0),
		Strength: getInt(tbl, "strength", 0),
	}
	if level.File == "" {
		return types.LevelDef{}, fmt.Errorf("level has no grid file")
	}

	data, err := os.ReadFile(filepath.Join(dir, level.File))
	if err != nil {
		return types.LevelDef{}, fmt.Errorf("reading grid: %w", err)
	}

	tiles, entities, start, err := parseGrid(string(data))
	if err != nil {
		return types.LevelDef{}, err
	}
	level.Tiles = tiles
	level.Entities = entities
	level.PlayerStart = start

	return level, nil
}
