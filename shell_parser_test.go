package main

import (
	"errors"
	"slices"
	"testing"
)

func TestParseArgs(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"echo 'hello world' foo", []string{"echo", "hello world", "foo"}},
		{`echo "a 'b' c"`, []string{"echo", "a 'b' c"}},
		{"ls\t-l   /apps", []string{"ls", "-l", "/apps"}},
		{`a"b c"d`, []string{"ab cd"}},
		{`echo '' x`, []string{"echo", "x"}},
		{"echo 'open quote", []string{"echo", "open quote"}},
		{"  lead and trail  ", []string{"lead", "and", "trail"}},
	}
	for _, tc := range cases {
		if got := ParseArgs(tc.in); !slices.Equal(got, tc.want) {
			t.Fatalf("ParseArgs(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestParseArgs_Blank(t *testing.T) {
	for _, in := range []string{"", "  ", "\t \t"} {
		if got := ParseArgs(in); len(got) != 0 {
			t.Fatalf("ParseArgs(%q): expected no tokens, got %q", in, got)
		}
	}
}

func TestParseArgsStrict(t *testing.T) {
	args, err := ParseArgsStrict(`cat "my file`)
	if !errors.Is(err, ErrUnterminatedQuote) {
		t.Fatalf("expected ErrUnterminatedQuote, got %v", err)
	}
	if !slices.Equal(args, []string{"cat", "my file"}) {
		t.Fatalf("expected lenient tokens alongside the error, got %q", args)
	}
	if _, err := ParseArgsStrict(`cat "ok"`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseInvocation(t *testing.T) {
	inv, ok := ParseInvocation("cd  /apps ")
	if !ok || inv.Name != "cd" || !slices.Equal(inv.Args, []string{"/apps"}) {
		t.Fatalf("unexpected invocation %+v", inv)
	}
	if _, ok := ParseInvocation("   "); ok {
		t.Fatal("expected blank line to produce no invocation")
	}
}
