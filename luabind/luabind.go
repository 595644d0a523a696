// Package luabind exposes the engine to Lua, letting hosts implement
// special processes and special variables as scripts instead of
// compiled handlers.
package luabind

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/azurelit/groundvm/op"
	"github.com/azurelit/groundvm/vm"
)

// Binder owns one Lua state bound to one VM.
type Binder struct {
	v *vm.VM
	l *lua.LState
}

func New(v *vm.VM) *Binder {
	b := &Binder{v: v, l: lua.NewState()}
	b.registerAPI()
	return b
}

// Close releases the Lua state.
func (b *Binder) Close() { b.l.Close() }

// DoFile runs a Lua script. Scripts typically call registerSpecial and
// registerSpecialVar at load time.
func (b *Binder) DoFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("luabind: %w", err)
	}
	if err := b.l.DoFile(path); err != nil {
		return fmt.Errorf("luabind: %s: %w", path, err)
	}
	return nil
}

// DoString runs inline Lua source.
func (b *Binder) DoString(src string) error {
	if err := b.l.DoString(src); err != nil {
		return fmt.Errorf("luabind: %w", err)
	}
	return nil
}

func luaRegister(l *lua.LState, name string, f func(*lua.LState) int) {
	l.Register(name, f)
}

func strArg(l *lua.LState, argi int) string {
	if !lua.LVCanConvToString(l.Get(argi)) {
		l.RaiseError("\nArgument %v is not a string: %v\n", argi, l.Get(argi))
	}
	return l.ToString(argi)
}

func numArg(l *lua.LState, argi int) float64 {
	num, ok := l.Get(argi).(lua.LNumber)
	if !ok {
		l.RaiseError("\nArgument %v is not a number: %v\n", argi, l.Get(argi))
	}
	return float64(num)
}

func fnArg(l *lua.LState, argi int) *lua.LFunction {
	fn, ok := l.Get(argi).(*lua.LFunction)
	if !ok {
		l.RaiseError("\nArgument %v is not a function: %v\n", argi, l.Get(argi))
	}
	return fn
}

func (b *Binder) registerAPI() {
	l := b.l

	// getVar(name [, index]) -> number
	luaRegister(l, "getVar", func(l *lua.LState) int {
		desc, ok := op.VariableByName(strArg(l, 1))
		if !ok {
			l.RaiseError("unknown variable %q", strArg(l, 1))
		}
		index := 0
		if l.GetTop() >= 2 {
			index = int(numArg(l, 2))
		}
		val, err := b.v.Values.Read(desc.ID, index)
		if err != nil {
			l.RaiseError("%v", err)
		}
		l.Push(lua.LNumber(val))
		return 1
	})

	// setVar(name, value [, index])
	luaRegister(l, "setVar", func(l *lua.LState) int {
		desc, ok := op.VariableByName(strArg(l, 1))
		if !ok {
			l.RaiseError("unknown variable %q", strArg(l, 1))
		}
		index := 0
		if l.GetTop() >= 3 {
			index = int(numArg(l, 3))
		}
		if err := b.v.Values.Write(desc.ID, index, int64(numArg(l, 2))); err != nil {
			l.RaiseError("%v", err)
		}
		return 0
	})

	// getString(name) -> string
	luaRegister(l, "getString", func(l *lua.LState) int {
		desc, ok := op.VariableByName(strArg(l, 1))
		if !ok {
			l.RaiseError("unknown variable %q", strArg(l, 1))
		}
		s, err := b.v.Values.ReadString(desc.ID)
		if err != nil {
			l.RaiseError("%v", err)
		}
		l.Push(lua.LString(s))
		return 1
	})

	// setString(name, value)
	luaRegister(l, "setString", func(l *lua.LState) int {
		desc, ok := op.VariableByName(strArg(l, 1))
		if !ok {
			l.RaiseError("unknown variable %q", strArg(l, 1))
		}
		if err := b.v.Values.WriteString(desc.ID, strArg(l, 2)); err != nil {
			l.RaiseError("%v", err)
		}
		return 0
	})

	// unlock(id) schedules a wake-up for the next frame.
	luaRegister(l, "unlock", func(l *lua.LState) int {
		b.v.Locks.Unlock(int(numArg(l, 1)))
		return 0
	})

	// registerSpecial(id, fn) binds a Lua function as the special
	// process behind ProcessSpecial. fn(arg1, arg2) -> number.
	luaRegister(l, "registerSpecial", func(l *lua.LState) int {
		id := int(numArg(l, 1))
		fn := fnArg(l, 2)
		err := b.v.RegisterSpecialProcess(id, func(_ *vm.VM, _ *vm.Routine, params []uint16) (int64, error) {
			args := make([]lua.LValue, len(params))
			for i, p := range params {
				args[i] = lua.LNumber(int16(p))
			}
			if err := l.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, args...); err != nil {
				return 0, fmt.Errorf("luabind: special process %d: %w", id, err)
			}
			ret := l.Get(-1)
			l.Pop(1)
			if n, ok := ret.(lua.LNumber); ok {
				return int64(n), nil
			}
			return 0, nil
		})
		if err != nil {
			l.RaiseError("%v", err)
		}
		return 0
	})

	// registerSpecialVar(name, readFn [, writeFn]) backs a computed
	// variable with Lua functions.
	luaRegister(l, "registerSpecialVar", func(l *lua.LState) int {
		name := strArg(l, 1)
		readFn := fnArg(l, 2)
		var writeFn *lua.LFunction
		if l.GetTop() >= 3 {
			writeFn = fnArg(l, 3)
		}
		h := vm.SpecialVar{
			Read: func() int64 {
				if err := l.CallByParam(lua.P{Fn: readFn, NRet: 1, Protect: true}); err != nil {
					return 0
				}
				ret := l.Get(-1)
				l.Pop(1)
				if n, ok := ret.(lua.LNumber); ok {
					return int64(n)
				}
				return 0
			},
		}
		if writeFn != nil {
			h.Write = func(val int64) {
				_ = l.CallByParam(lua.P{Fn: writeFn, NRet: 0, Protect: true}, lua.LNumber(val))
			}
		}
		if err := b.v.RegisterSpecialVar(name, h); err != nil {
			l.RaiseError("%v", err)
		}
		return 0
	})
}
