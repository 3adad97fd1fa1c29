package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the Lua constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Game { title = "...", start = "...", ... }
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		coll.game = tbl
		return 0
	}))

	// ShopItem "id" { ... } — curried: ShopItem("id") returns a function
	// that takes a table.
	L.SetGlobal("ShopItem", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.items = append(coll.items, rawShopItem{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	// Level "id" { ... } — curried.
	L.SetGlobal("Level", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.levels = append(coll.levels, rawLevel{id: id, table: tbl})
			return 0
		}))
		return 1
	}))
}
