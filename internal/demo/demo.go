package demo

import (
	"fmt"
	"io"
)

// Buildings writes the description of every sample building, each followed
// by a blank line.
func Buildings(w io.Writer, s Samples) error {
	for _, b := range s.Buildings() {
		if _, err := fmt.Fprintf(w, "%s\n\n", b.Describe()); err != nil {
			return err
		}
	}
	return nil
}

// Fractions runs every arithmetic and comparison operation on the sample
// pair and writes one line per result.
func Fractions(w io.Writer, s Samples) error {
	a, b := s.A, s.B

	quo, err := a.Div(b)
	if err != nil {
		return fmt.Errorf("a / b: %w", err)
	}

	lines := []struct {
		label string
		value any
	}{
		{"a + b = ", a.Add(b)},
		{"a - b = ", a.Sub(b)},
		{"a * b = ", a.Mul(b)},
		{"a / b = ", quo},
		{"a > b: ", a.Greater(b)},
		{"a < b: ", a.Less(b)},
		{"a >= b: ", a.GreaterOrEqual(b)},
		{"a <= b: ", a.LessOrEqual(b)},
		{"a == b: ", a.Equal(b)},
		{"a != b: ", !a.Equal(b)},
	}

	if _, err := fmt.Fprintf(w, "a = %s, b = %s\n", a, b); err != nil {
		return err
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s%v\n", l.label, l.value); err != nil {
			return err
		}
	}
	return nil
}
