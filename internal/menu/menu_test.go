package menu_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"consoleapp/internal/menu"
)

func counter(key string, n *int) menu.Action {
	return menu.Action{
		Key:   key,
		Label: "count " + key,
		Run: func(w io.Writer) error {
			*n++
			_, err := io.WriteString(w, "ran "+key+"\n")
			return err
		},
	}
}

func TestRun_DispatchesUntilExit(t *testing.T) {
	var ones, twos int
	m := menu.New(true, counter("1", &ones), counter("2", &twos))

	var out bytes.Buffer
	if err := m.Run(strings.NewReader("1\n 2 \n1\n0\n2\n"), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ones != 2 || twos != 1 {
		t.Fatalf("want 2 and 1 runs, got %d and %d", ones, twos)
	}
	if got, want := out.String(), "ran 1\nran 2\nran 1\n"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestRun_EndOfInput_Exits(t *testing.T) {
	var n int
	m := menu.New(true, counter("1", &n))
	if err := m.Run(strings.NewReader("1"), io.Discard); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n != 1 {
		t.Fatalf("want 1 run, got %d", n)
	}
}

func TestRun_InvalidChoice(t *testing.T) {
	m := menu.New(true)
	var out bytes.Buffer
	if err := m.Run(strings.NewReader("9\n0\n"), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.String() != "Invalid choice!\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestRun_ActionError_Continues(t *testing.T) {
	var n int
	failing := menu.Action{Key: "1", Label: "fail", Run: func(io.Writer) error {
		n++
		return errors.New("boom")
	}}
	var out bytes.Buffer
	if err := menu.New(true, failing).Run(strings.NewReader("1\n1\n0\n"), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n != 2 {
		t.Fatalf("want 2 runs, got %d", n)
	}
	if strings.Count(out.String(), "error: boom\n") != 2 {
		t.Fatalf("got %q", out.String())
	}
}

func TestRun_PrintsOptions(t *testing.T) {
	var n int
	var out bytes.Buffer
	if err := menu.New(false, counter("1", &n)).Run(strings.NewReader("0\n"), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got, want := out.String(), "1. count 1\n0. Exit\n"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}
