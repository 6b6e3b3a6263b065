package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

func init() {
	compiledFeatures = append(compiledFeatures, "script:lua5.1")
}

// Largest script the lua command will load
const LUA_MAX_SCRIPT_BYTES = 256 * 1024

func scriptCommands() []*Command {
	return []*Command{
		{
			Name:    "lua",
			Aliases: []string{"run"},
			Group:   GROUP_SCRIPTS,
			Summary: "Executa um script Lua",
			Usage:   "lua <arquivo>",
			Help: []string{
				"Funcoes disponiveis no script:",
				"  print(...)     Escreve no terminal",
				"  cwd()          Diretorio atual",
				"  exists(p)      Verdadeiro se o caminho existe",
				"  isdir(p)       Verdadeiro se o caminho e um diretorio",
				"  uptime()       Milissegundos desde o inicio",
				"",
				"Bibliotecas: string, table, math.",
			},
			MinArgs: 1,
			Missing: "falta operando arquivo",
			Run:     cmdLua,
		},
	}
}

func cmdLua(out Output, ctx *ShellContext, args []string) CommandResult {
	full := ctx.Resolve(args[0])
	f, err := ctx.FS.Open(full)
	if err != nil {
		failLine(out, ctx, "lua", full, fsReason(err))
		return ResultOK
	}
	src, err := io.ReadAll(io.LimitReader(f, LUA_MAX_SCRIPT_BYTES+1))
	_ = f.Close()
	if err != nil {
		failLine(out, ctx, "lua", full, fsReason(err))
		return ResultOK
	}
	if len(src) > LUA_MAX_SCRIPT_BYTES {
		failLine(out, ctx, "lua", full, "script muito grande")
		return ResultOK
	}

	if err := runLuaScript(out, ctx, path.Base(full), string(src), args[1:]); err != nil {
		failLine(out, ctx, "lua", full, err.Error())
	}
	return ResultOK
}

// runLuaScript executes src in a fresh state with only the string, table
// and math libraries plus the shell helpers. It is stopped after
// ctx.LuaTimeout.
func runLuaScript(out Output, ctx *ShellContext, name, src string, scriptArgs []string) error {
	L := newLuaSandbox(out, ctx, scriptArgs)
	defer L.Close()

	timeout := ctx.LuaTimeout
	if timeout <= 0 {
		timeout = LUA_SCRIPT_TIMEOUT
	}
	runCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	L.SetContext(runCtx)

	ctx.debugf("lua: running %s (%d bytes, timeout %s)", name, len(src), timeout)

	fn, err := L.Load(strings.NewReader(src), name)
	if err != nil {
		return luaErrorMessage(err)
	}
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("tempo esgotado apos %s", timeout)
		}
		return luaErrorMessage(err)
	}
	return nil
}

func newLuaSandbox(out Output, ctx *ShellContext, scriptArgs []string) *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.open))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}

	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		parts := make([]string, 0, L.GetTop())
		for i := 1; i <= L.GetTop(); i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		out.WriteLine(strings.Join(parts, " "))
		return 0
	}))
	L.SetGlobal("cwd", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LString(ctx.Cwd))
		return 1
	}))
	L.SetGlobal("exists", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LBool(ctx.FS.Exists(ctx.Resolve(L.CheckString(1)))))
		return 1
	}))
	L.SetGlobal("isdir", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LBool(ctx.FS.IsDir(ctx.Resolve(L.CheckString(1)))))
		return 1
	}))
	L.SetGlobal("uptime", L.NewFunction(func(L *lua.LState) int {
		ms, err := ctx.Clock.Millis()
		if err != nil {
			L.RaiseError("uptime: %v", err)
		}
		L.Push(lua.LNumber(ms))
		return 1
	}))

	argv := L.NewTable()
	for _, a := range scriptArgs {
		argv.Append(lua.LString(a))
	}
	L.SetGlobal("arg", argv)
	return L
}

// luaErrorMessage strips the traceback from a Lua error so it fits on
// one line.
func luaErrorMessage(err error) error {
	var apiErr *lua.ApiError
	if errors.As(err, &apiErr) && apiErr.Object != nil {
		msg, _, _ := strings.Cut(apiErr.Object.String(), "\n")
		return errors.New(msg)
	}
	msg, _, _ := strings.Cut(err.Error(), "\n")
	return errors.New(msg)
}
