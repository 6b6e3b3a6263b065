package main

import (
	"io"
	"log"
	"time"
)

// Exit codes recorded in ShellContext.LastExitCode
const (
	EXIT_OK        = 0
	EXIT_FAILURE   = 1
	EXIT_NOT_FOUND = 127
)

// Capability is a host feature a command may depend on. The read-only
// session grants none of them.
type Capability uint32

const (
	CapWritableFS Capability = 1 << iota
	CapProcesses
	CapSignals
	CapJobControl
)

// ShellContext is the state commands read and mutate: working directory,
// identity, last status and the collaborators a command can reach.
type ShellContext struct {
	Cwd          string
	Username     string
	Hostname     string
	LastExitCode int
	Caps         Capability

	FS         FileSystem
	Clock      Clock
	Beeper     Beeper
	LuaTimeout time.Duration

	Logger  *log.Logger
	Verbose bool
}

// NewShellContext returns a context rooted at "/" with the default identity,
// a system clock and a silent bell.
func NewShellContext(fsys FileSystem) *ShellContext {
	return &ShellContext{
		Cwd:        "/",
		Username:   DEFAULT_USER,
		Hostname:   DEFAULT_HOST,
		FS:         fsys,
		Clock:      NewSystemClock(),
		Beeper:     silentBeeper{},
		LuaTimeout: LUA_SCRIPT_TIMEOUT,
		Logger:     log.New(io.Discard, "", 0),
	}
}

// Prompt renders "<user>@<host>:<cwd>$ ".
func (c *ShellContext) Prompt() string {
	return c.Username + "@" + c.Hostname + ":" + c.Cwd + "$ "
}

// SetCwd stores path normalized.
func (c *ShellContext) SetCwd(path string) {
	c.Cwd = NormalizePath(path)
}

// Has reports whether every bit of want is granted.
func (c *ShellContext) Has(want Capability) bool {
	return c.Caps&want == want
}

// Resolve makes path absolute against the working directory.
func (c *ShellContext) Resolve(path string) string {
	return ResolvePath(c.Cwd, path)
}

func (c *ShellContext) debugf(format string, args ...any) {
	if c.Verbose && c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}
