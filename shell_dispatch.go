// shell_dispatch.go - Command table, argument checks and exit codes for the shell

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"strings"
)

// Output is where commands write text. TextBuffer satisfies it.
type Output interface {
	WriteChar(ch rune)
	WriteString(s string)
	WriteLine(s string)
}

type ResultKind int

const (
	CommandOK ResultKind = iota
	CommandClear
	CommandExit
	CommandError
	CommandUnsupported
)

// CommandResult tells the window what to do after a command returns.
// Message carries the error text or the unsupported reason; Command is the
// canonical name of the command that produced it.
type CommandResult struct {
	Kind    ResultKind
	Message string
	Command string
}

var (
	ResultOK    = CommandResult{Kind: CommandOK}
	ResultClear = CommandResult{Kind: CommandClear}
	ResultExit  = CommandResult{Kind: CommandExit}
)

func ResultError(msg string) CommandResult {
	return CommandResult{Kind: CommandError, Message: msg}
}

func ResultUnsupported(reason string) CommandResult {
	return CommandResult{Kind: CommandUnsupported, Message: reason}
}

// CommandFunc runs a command with its arguments, the command name excluded.
type CommandFunc func(out Output, ctx *ShellContext, args []string) CommandResult

// Command is one entry of the dispatch table.
type Command struct {
	Name    string
	Aliases []string
	Group   string
	Summary string
	Usage   string
	Help    []string // detailed help lines, optional

	MinArgs int
	Missing string // printed as "<name>: <Missing>" when fewer than MinArgs

	Requires Capability
	Reason   string // shown when Requires is not granted or Run is nil

	Run CommandFunc
}

// Dispatcher resolves command names and aliases to table entries.
type Dispatcher struct {
	commands []*Command
	byName   map[string]*Command
}

// Help groups in listing order
const (
	GROUP_FILES   = "COMANDOS DE ARQUIVOS"
	GROUP_SYSTEM  = "COMANDOS DE SISTEMA"
	GROUP_SCRIPTS = "SCRIPTS"
	GROUP_OTHER   = "OUTROS"
)

var helpGroups = []string{GROUP_FILES, GROUP_SYSTEM, GROUP_SCRIPTS, GROUP_OTHER}

func NewDispatcher(cmds ...*Command) *Dispatcher {
	d := &Dispatcher{byName: make(map[string]*Command)}
	for _, c := range cmds {
		d.Register(c)
	}
	return d
}

// NewDefaultDispatcher returns a dispatcher with every shell command.
func NewDefaultDispatcher() *Dispatcher {
	d := NewDispatcher()
	for _, c := range builtinCommands(d) {
		d.Register(c)
	}
	for _, c := range fsCommands() {
		d.Register(c)
	}
	for _, c := range systemCommands() {
		d.Register(c)
	}
	for _, c := range scriptCommands() {
		d.Register(c)
	}
	return d
}

// Register adds c under its name and aliases. A name already taken is a
// programming error.
func (d *Dispatcher) Register(c *Command) {
	for _, name := range append([]string{c.Name}, c.Aliases...) {
		if _, dup := d.byName[name]; dup {
			panic(fmt.Sprintf("shell: command %q registered twice", name))
		}
		d.byName[name] = c
	}
	d.commands = append(d.commands, c)
}

// Lookup finds a command by name or alias.
func (d *Dispatcher) Lookup(name string) (*Command, bool) {
	c, ok := d.byName[name]
	return c, ok
}

// Commands returns the table in registration order.
func (d *Dispatcher) Commands() []*Command {
	return d.commands
}

// Execute parses line and runs the matching command. Blank lines do
// nothing. Unknown names, missing arguments and unsupported commands are
// reported into out; the session always continues.
func (d *Dispatcher) Execute(line string, out Output, ctx *ShellContext) CommandResult {
	inv, ok := ParseInvocation(line)
	if !ok {
		return ResultOK
	}

	cmd, ok := d.Lookup(inv.Name)
	if !ok {
		ctx.debugf("dispatch: unknown command %q", inv.Name)
		out.WriteLine("Comando nao encontrado: " + inv.Name)
		out.WriteLine("Digite 'help' para ver comandos disponiveis.")
		ctx.LastExitCode = EXIT_NOT_FOUND
		return ResultOK
	}

	ctx.debugf("dispatch: %s %s", cmd.Name, strings.Join(inv.Args, " "))

	if len(inv.Args) < cmd.MinArgs {
		out.WriteLine(cmd.Name + ": " + cmd.Missing)
		if cmd.Usage != "" {
			out.WriteLine("Uso: " + cmd.Usage)
		}
		ctx.LastExitCode = EXIT_FAILURE
		return ResultOK
	}

	if cmd.Run == nil || !ctx.Has(cmd.Requires) {
		ctx.LastExitCode = EXIT_FAILURE
		res := ResultUnsupported(cmd.Reason)
		res.Command = cmd.Name
		return res
	}

	ctx.LastExitCode = EXIT_OK
	res := cmd.Run(out, ctx, inv.Args)
	res.Command = cmd.Name
	switch res.Kind {
	case CommandError, CommandUnsupported:
		ctx.LastExitCode = EXIT_FAILURE
	}
	return res
}

// failLine writes parts as one error line joined by ": " and marks the
// command as failed. The command keeps running.
func failLine(out Output, ctx *ShellContext, parts ...string) {
	out.WriteLine(strings.Join(parts, ": "))
	ctx.LastExitCode = EXIT_FAILURE
}
