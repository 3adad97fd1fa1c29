// Package types defines the shared data structures for the sokomaze engine.
// This package contains only type definitions — no logic, no methods.
package types

// Position addresses one maze cell by row and column.
type Position struct {
	Row int
	Col int
}

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// TileKind classifies the terrain of one maze cell.
type TileKind int

const (
	Floor TileKind = iota
	Wall
	Goal
)

// EntityKind identifies a movable or collectible object.
type EntityKind int

const (
	Crate EntityKind = iota
	Coin
	StrengthPotion
	MovePotion
	FancyPotion
)

// Entity occupies a single maze cell. Strength is meaningful only for
// crates: the minimum player strength required to push that crate.
type Entity struct {
	Kind     EntityKind
	Strength int
}

// Effect is an atomic stat adjustment applied to the player, either from
// walking onto a potion or from a shop purchase.
type Effect struct {
	Strength int
	Moves    int
}

// PlayerState holds the player's runtime stats.
type PlayerState struct {
	Position       Position
	Strength       int
	MovesRemaining int
	Money          int
}

// State is the complete mutable game state. Tiles are structurally
// immutable after construction; Entities and Player change turn by turn.
type State struct {
	Player   PlayerState
	Entities map[Position]Entity
	Tiles    [][]TileKind
}

// GameDef holds game metadata and tuning constants from Lua.
type GameDef struct {
	Title   string
	Author  string
	Version string
	Start   string // starting level ID

	CoinValue     int
	StrengthBoost int // strength potion increment
	MoveBoost     int // move potion increment

	StartStrength int
	StartMoves    int
	StartMoney    int
}

// ShopItem is one purchasable catalogue entry.
type ShopItem struct {
	ID    string
	Name  string
	Kind  EntityKind
	Price int
}

// LevelDef is a compiled level: parsed grid plus optional stat overrides.
type LevelDef struct {
	ID       string
	Name     string
	File     string
	Moves    int // overrides GameDef.StartMoves when > 0
	Strength int // overrides GameDef.StartStrength when > 0

	Tiles       [][]TileKind
	Entities    map[Position]Entity
	PlayerStart Position
}
