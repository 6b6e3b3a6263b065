package main

import (
	"fmt"
	"runtime"
	"strings"
)

func builtinCommands(d *Dispatcher) []*Command {
	return []*Command{
		{
			Name:    "help",
			Group:   GROUP_OTHER,
			Summary: "Mostra esta ajuda",
			Usage:   "help [cmd]",
			Run: func(out Output, ctx *ShellContext, args []string) CommandResult {
				return cmdHelp(d, out, ctx, args)
			},
		},
		{
			Name:    "clear",
			Group:   GROUP_OTHER,
			Summary: "Limpa a tela",
			Usage:   "clear",
			Run: func(Output, *ShellContext, []string) CommandResult {
				return ResultClear
			},
		},
		{
			Name:    "exit",
			Aliases: []string{"quit"},
			Group:   GROUP_OTHER,
			Summary: "Sai do terminal",
			Usage:   "exit",
			Run: func(Output, *ShellContext, []string) CommandResult {
				return ResultExit
			},
		},
		{
			Name:    "echo",
			Group:   GROUP_OTHER,
			Summary: "Imprime texto",
			Usage:   "echo <texto>",
			Run:     cmdEcho,
		},
		{
			Name:    "ver",
			Aliases: []string{"version"},
			Group:   GROUP_OTHER,
			Summary: "Versao do sistema",
			Usage:   "ver",
			Run:     cmdVersion,
		},
	}
}

func cmdHelp(d *Dispatcher, out Output, ctx *ShellContext, args []string) CommandResult {
	if len(args) > 0 {
		showCommandHelp(d, out, ctx, args[0])
		return ResultOK
	}

	out.WriteLine("")
	out.WriteLine(fmt.Sprintf("=== %s v%s ===", ProductName, Version))
	out.WriteLine("")
	for _, group := range helpGroups {
		var lines []string
		for _, c := range d.Commands() {
			if c.Group == group {
				lines = append(lines, fmt.Sprintf("  %-24s %s", c.Usage, c.Summary))
			}
		}
		if len(lines) == 0 {
			continue
		}
		out.WriteLine(group + ":")
		for _, l := range lines {
			out.WriteLine(l)
		}
		out.WriteLine("")
	}
	out.WriteLine("Digite 'help <cmd>' para detalhes de um comando.")
	return ResultOK
}

func showCommandHelp(d *Dispatcher, out Output, ctx *ShellContext, name string) {
	c, ok := d.Lookup(name)
	if !ok {
		failLine(out, ctx, "Ajuda nao disponivel para", name)
		return
	}

	out.WriteLine(c.Name + " - " + c.Summary)
	out.WriteLine("")
	out.WriteLine("USO: " + c.Usage)
	if len(c.Aliases) > 0 {
		out.WriteLine("")
		out.WriteLine("ALIASES: " + strings.Join(c.Aliases, ", "))
	}
	if len(c.Help) > 0 {
		out.WriteLine("")
		for _, l := range c.Help {
			out.WriteLine(l)
		}
	}
	if c.Run == nil || !ctx.Has(c.Requires) {
		out.WriteLine("")
		out.WriteLine("(" + c.Reason + ")")
	}
}

func cmdEcho(out Output, _ *ShellContext, args []string) CommandResult {
	out.WriteLine(strings.Join(args, " "))
	return ResultOK
}

func cmdVersion(out Output, _ *ShellContext, _ []string) CommandResult {
	out.WriteLine("")
	out.WriteLine(fmt.Sprintf("%s v%s", ProductName, Version))
	out.WriteLine(fmt.Sprintf("Go %s (%s/%s)", runtime.Version(), runtime.GOOS, runtime.GOARCH))
	out.WriteLine("")
	out.WriteLine("(c) 2024 - 2026 Zayn Otley")
	out.WriteLine("")
	return ResultOK
}
