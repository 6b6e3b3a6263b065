package main

import (
	"errors"
	"strings"
)

// ErrUnterminatedQuote is reported by ParseArgsStrict when a quote is left
// open at the end of the line.
var ErrUnterminatedQuote = errors.New("aspas nao terminadas")

// Invocation is one parsed command line.
type Invocation struct {
	Name string
	Args []string
}

// ParseArgs splits line on spaces and tabs outside quotes. A ' or " opens a
// quote closed only by the same character; quote characters are dropped and
// may join text within a token. An unterminated quote runs to the end of the
// line. Empty tokens, including "", are not produced.
func ParseArgs(line string) []string {
	args, _ := parseArgs(line)
	return args
}

// ParseArgsStrict is ParseArgs that also reports an unterminated quote.
// The tokens are returned either way.
func ParseArgsStrict(line string) ([]string, error) {
	args, open := parseArgs(line)
	if open {
		return args, ErrUnterminatedQuote
	}
	return args, nil
}

func parseArgs(line string) ([]string, bool) {
	var (
		args    []string
		current strings.Builder
		quote   rune
	)
	for _, c := range line {
		switch {
		case quote == 0 && (c == '"' || c == '\''):
			quote = c
		case quote != 0 && c == quote:
			quote = 0
		case quote == 0 && (c == ' ' || c == '\t'):
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(c)
		}
	}
	if current.Len() > 0 {
		args = append(args, current.String())
	}
	return args, quote != 0
}

// ParseInvocation parses line into a command name and its arguments. It
// reports false for a blank line.
func ParseInvocation(line string) (Invocation, bool) {
	args := ParseArgs(line)
	if len(args) == 0 {
		return Invocation{}, false
	}
	return Invocation{Name: args[0], Args: args[1:]}, true
}
