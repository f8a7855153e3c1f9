// Package scripting runs enemy policies written in Lua.
package scripting

import (
	_ "embed"
	"fmt"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/plus3/scavenger/ecs"
	"github.com/plus3/scavenger/internal/input"
	"github.com/plus3/scavenger/internal/world"
)

//go:embed scripts/chase.lua
var defaultScript string

const decideFunc = "decide_enemy"

// Engine wraps a single gopher-lua VM holding the enemy policy.
// Single-goroutine access only (game loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger

	// world being decided on; only set during Decide
	cur *world.World
}

// NewEngine creates a Lua engine and loads the policy script at scriptPath,
// or the built-in chase policy when scriptPath is empty. The script must
// define decide_enemy(ctx) returning "up", "down", "left", "right" or nil.
func NewEngine(scriptPath string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState()
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}
	vm.SetGlobal("walkable", vm.NewFunction(e.luaWalkable))
	vm.SetGlobal("rand", vm.NewFunction(e.luaRand))

	var err error
	if scriptPath == "" {
		err = vm.DoString(defaultScript)
		scriptPath = "builtin:chase.lua"
	} else {
		err = vm.DoFile(scriptPath)
	}
	if err != nil {
		vm.Close()
		return nil, fmt.Errorf("load %s: %w", scriptPath, err)
	}

	if vm.GetGlobal(decideFunc).Type() != lua.LTFunction {
		vm.Close()
		return nil, fmt.Errorf("load %s: %s is not defined", scriptPath, decideFunc)
	}

	log.Debug("loaded lua script", zap.String("file", scriptPath))
	return e, nil
}

// Close releases the VM.
func (e *Engine) Close() {
	e.vm.Close()
}

// Decide calls the Lua decide_enemy function. It implements systems.Policy.
// Script errors are logged and leave the enemy in place.
func (e *Engine) Decide(w *world.World, enemy, player ecs.Entity) (input.Direction, bool) {
	enemyPos, ok := w.Positions.Get(enemy)
	if !ok {
		return 0, false
	}
	playerPos, ok := w.Positions.Get(player)
	if !ok {
		return 0, false
	}

	e.cur = w
	defer func() { e.cur = nil }()

	ctx := e.vm.NewTable()
	ctx.RawSetString("enemy", e.actorTable(w, enemy, *enemyPos))
	ctx.RawSetString("player", e.actorTable(w, player, *playerPos))
	ctx.RawSetString("width", lua.LNumber(w.State.Width))
	ctx.RawSetString("height", lua.LNumber(w.State.Height))
	ctx.RawSetString("turn", lua.LNumber(w.State.Turn))

	if err := e.vm.CallByParam(lua.P{
		Fn:      e.vm.GetGlobal(decideFunc),
		NRet:    1,
		Protect: true,
	}, ctx); err != nil {
		e.log.Error("lua decide_enemy error", zap.Error(err))
		return 0, false
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	if result == lua.LNil {
		return 0, false
	}
	s, ok := result.(lua.LString)
	if !ok {
		e.log.Error("lua decide_enemy returned non-string", zap.String("type", result.Type().String()))
		return 0, false
	}
	dir, ok := input.ParseDirection(string(s))
	if !ok {
		e.log.Error("lua decide_enemy returned unknown direction", zap.String("dir", string(s)))
	}
	return dir, ok
}

func (e *Engine) actorTable(w *world.World, ent ecs.Entity, pos world.Position) *lua.LTable {
	t := e.vm.NewTable()
	t.RawSetString("x", lua.LNumber(pos.X))
	t.RawSetString("y", lua.LNumber(pos.Y))
	if h, ok := w.Healths.Get(ent); ok {
		t.RawSetString("health", lua.LNumber(h.Current))
	}
	return t
}

// walkable(x, y) -> bool
func (e *Engine) luaWalkable(L *lua.LState) int {
	x := L.CheckInt(1)
	y := L.CheckInt(2)
	if e.cur == nil {
		L.Push(lua.LFalse)
		return 1
	}
	L.Push(lua.LBool(e.cur.Walkable(world.Position{X: x, Y: y})))
	return 1
}

// rand(n) -> integer in [0, n), drawn from the world's seeded source
func (e *Engine) luaRand(L *lua.LState) int {
	n := L.CheckInt(1)
	if n <= 0 || e.cur == nil {
		L.Push(lua.LNumber(0))
		return 1
	}
	L.Push(lua.LNumber(e.cur.State.Rand.IntN(n)))
	return 1
}
