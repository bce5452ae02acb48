package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"rule110/src/universe"
	"rule110/src/view"
)

func defaultRun(t *testing.T, engine string) string {
	t.Helper()
	o := universe.DefaultUniverseOptions
	var b bytes.Buffer
	if err := run(&b, &EnvOptions{engine: engine}, &o); err != nil {
		t.Fatal(err)
	}
	return b.String()
}

func TestDefaultRun(t *testing.T) {
	out := defaultRun(t, "base")
	if !strings.HasPrefix(out, view.Header) {
		t.Fatal("output does not start with the header")
	}
	if !strings.HasSuffix(out, view.Footer) {
		t.Fatal("output does not end with the closing statement")
	}

	body := strings.TrimSuffix(strings.TrimPrefix(out, view.Header), view.Footer)
	lines := strings.Split(strings.TrimSuffix(body, "\n"), "\n")
	if len(lines) != 51 {
		t.Fatalf("got %d generation lines, expected 51", len(lines))
	}
	for i, l := range lines {
		if len(l) != 100 {
			t.Fatalf("line %d has length %d, expected 100", i, len(l))
		}
	}
	if want := strings.Repeat("  ", 49) + "x "; lines[0] != want {
		t.Fatalf("generation 0 is %q", lines[0])
	}
	if want := strings.Repeat("  ", 48) + "x x "; lines[1] != want {
		t.Fatalf("generation 1 is %q", lines[1])
	}
	if n := strings.Count(out, "\n"); n != 8+51+4 {
		t.Fatalf("got %d output lines", n)
	}
}

func TestRunDeterministic(t *testing.T) {
	first := defaultRun(t, "base")
	if again := defaultRun(t, "base"); again != first {
		t.Fatal("repeated runs differ")
	}
	if other := defaultRun(t, "doubleBuff"); other != first {
		t.Fatal("doubleBuff engine output differs from base")
	}
}

func TestRunInvalidConfiguration(t *testing.T) {
	var b bytes.Buffer
	err := run(&b, &EnvOptions{engine: "base"}, &universe.Options{Size: 0, Generations: 0})
	if !errors.Is(err, universe.ErrInvalidSize) {
		t.Fatalf("got %v, expected ErrInvalidSize", err)
	}
	if b.Len() != 0 {
		t.Fatalf("output written before the configuration check: %q", b.String())
	}
	if err := run(&b, &EnvOptions{engine: "parallel"}, &universe.Options{Size: 5, Generations: 5}); err == nil {
		t.Fatal("unknown engine accepted")
	}
}
