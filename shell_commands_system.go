package main

import (
	"fmt"
	"runtime"
	"strconv"
	"time"
)

func systemCommands() []*Command {
	return []*Command{
		{
			Name:    "uptime",
			Group:   GROUP_SYSTEM,
			Summary: "Tempo desde o inicio",
			Usage:   "uptime",
			Run:     cmdUptime,
		},
		{
			Name:     "ps",
			Group:    GROUP_SYSTEM,
			Summary:  "Lista processos",
			Usage:    "ps [--json]",
			Requires: CapProcesses,
			Reason:   "Requer syscall de listagem de processos",
		},
		{
			Name:     "kill",
			Group:    GROUP_SYSTEM,
			Summary:  "Mata processo",
			Usage:    "kill <pid>",
			MinArgs:  1,
			Missing:  "falta PID",
			Requires: CapSignals,
			Reason:   "Requer syscall de sinais",
		},
		{
			Name:     "top",
			Group:    GROUP_SYSTEM,
			Summary:  "Monitor de processos",
			Usage:    "top",
			Requires: CapProcesses,
			Reason:   "Requer syscall de estatisticas de processos",
		},
		{
			Name:     "jobs",
			Group:    GROUP_SYSTEM,
			Summary:  "Lista jobs",
			Usage:    "jobs",
			Requires: CapJobControl,
			Reason:   "Requer suporte a job control",
		},
		{
			Name:    "sysinfo",
			Group:   GROUP_SYSTEM,
			Summary: "Informacoes do sistema",
			Usage:   "sysinfo",
			Run:     cmdSysinfo,
		},
		{
			Name:    "meminfo",
			Group:   GROUP_SYSTEM,
			Summary: "Informacoes de memoria",
			Usage:   "meminfo",
			Run:     cmdMeminfo,
		},
		{
			Name:    "beep",
			Group:   GROUP_SYSTEM,
			Summary: "Toca o sinal sonoro",
			Usage:   "beep [hz] [ms]",
			Help: []string{
				fmt.Sprintf("Padrao: %d Hz por %d ms.", BEEP_DEFAULT_HZ, BEEP_DEFAULT_MS),
				fmt.Sprintf("Limites: %d-%d Hz, ate %d ms.", BEEP_MIN_HZ, BEEP_MAX_HZ, BEEP_MAX_DURATION.Milliseconds()),
			},
			Run: cmdBeep,
		},
	}
}

func cmdUptime(out Output, ctx *ShellContext, _ []string) CommandResult {
	ms, err := ctx.Clock.Millis()
	if err != nil {
		failLine(out, ctx, "uptime", "Nao foi possivel obter tempo")
		return ResultOK
	}
	out.WriteLine("Uptime: " + formatUptime(ms))
	return ResultOK
}

func cmdSysinfo(out Output, ctx *ShellContext, _ []string) CommandResult {
	out.WriteLine("")
	out.WriteLine(fmt.Sprintf("=== %s System Info ===", ProductName))
	out.WriteLine("")
	out.WriteLine("  OS:        " + runtime.GOOS)
	out.WriteLine("  Arch:      " + runtime.GOARCH)
	out.WriteLine("  Runtime:   " + runtime.Version())
	out.WriteLine(fmt.Sprintf("  CPUs:      %d", runtime.NumCPU()))
	out.WriteLine(fmt.Sprintf("  Shell:     %s v%s", ProductName, Version))
	out.WriteLine("  Host:      " + ctx.Username + "@" + ctx.Hostname)
	out.WriteLine("")
	if ms, err := ctx.Clock.Millis(); err == nil {
		out.WriteLine(fmt.Sprintf("  Uptime:    %d segundos", ms/1000))
	} else {
		out.WriteLine("  Uptime:    (desconhecido)")
	}
	return ResultOK
}

func cmdMeminfo(out Output, _ *ShellContext, _ []string) CommandResult {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	out.WriteLine("")
	out.WriteLine("=== Memory Info ===")
	out.WriteLine("")
	out.WriteLine("  Sistema:   " + formatBytes(m.Sys))
	out.WriteLine("  Heap:      " + formatBytes(m.HeapAlloc))
	out.WriteLine("  Em uso:    " + formatBytes(m.HeapInuse))
	out.WriteLine("  Livre:     " + formatBytes(m.HeapIdle-m.HeapReleased))
	out.WriteLine("  Pilha:     " + formatBytes(m.StackInuse))
	out.WriteLine(fmt.Sprintf("  GC:        %d ciclos", m.NumGC))
	return ResultOK
}

// formatBytes renders n with a binary unit, one decimal above KB.
func formatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}

func cmdBeep(out Output, ctx *ShellContext, args []string) CommandResult {
	hz := float64(BEEP_DEFAULT_HZ)
	ms := int64(BEEP_DEFAULT_MS)
	if len(args) > 0 {
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			failLine(out, ctx, "beep", "valor invalido", args[0])
			return ResultOK
		}
		hz = v
	}
	if len(args) > 1 {
		v, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			failLine(out, ctx, "beep", "valor invalido", args[1])
			return ResultOK
		}
		ms = v
	}

	// Out of range counts stay 0 so the multiply cannot wrap back into range.
	var d time.Duration
	if ms > 0 && ms <= BEEP_MAX_DURATION.Milliseconds() {
		d = time.Duration(ms) * time.Millisecond
	}
	if err := validateBeep(hz, d); err != nil {
		failLine(out, ctx, "beep", err.Error())
		return ResultOK
	}
	if err := ctx.Beeper.Beep(hz, d); err != nil {
		ctx.debugf("beep: %v", err)
		return ResultError(fmt.Sprintf("beep: %v", err))
	}
	return ResultOK
}
