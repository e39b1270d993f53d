// Package menu runs a line-based text menu over an io.Reader/io.Writer pair.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ExitKey is the selection that ends the loop.
const ExitKey = "0"

// Action is one selectable menu entry.
type Action struct {
	Key   string
	Label string
	Run   func(w io.Writer) error
}

// Menu dispatches selections to actions until ExitKey or end of input.
type Menu struct {
	actions []Action
	quiet   bool
}

// New returns a menu over actions, listed in the given order.
// A quiet menu does not print the option list before each prompt.
func New(quiet bool, actions ...Action) *Menu {
	return &Menu{actions: actions, quiet: quiet}
}

// Run reads one selection per line from in. An action error is reported on
// out and the loop continues; only read errors are returned.
func (m *Menu) Run(in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for {
		if !m.quiet {
			m.printOptions(out)
		}
		if !sc.Scan() {
			return sc.Err()
		}

		choice := strings.TrimSpace(sc.Text())
		if choice == ExitKey {
			return nil
		}
		a, ok := m.lookup(choice)
		if !ok {
			fmt.Fprintln(out, "Invalid choice!")
			continue
		}
		if err := a.Run(out); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}

func (m *Menu) printOptions(out io.Writer) {
	for _, a := range m.actions {
		fmt.Fprintf(out, "%s. %s\n", a.Key, a.Label)
	}
	fmt.Fprintf(out, "%s. Exit\n", ExitKey)
}

func (m *Menu) lookup(key string) (Action, bool) {
	for _, a := range m.actions {
		if a.Key == key {
			return a, true
		}
	}
	return Action{}, false
}
