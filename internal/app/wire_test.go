package app_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"consoleapp/internal/app"
)

func TestNewWire_Defaults(t *testing.T) {
	w, err := app.NewWire(app.Config{Quiet: true})
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	var out bytes.Buffer
	in := strings.NewReader(app.FractionsKey + "\n" + app.BuildingsKey + "\n0\n")
	if err := w.Menu.Run(in, &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := out.String()
	fr := strings.Index(got, "a + b = 5/4")
	bd := strings.Index(got, "Apartments: 20")
	if fr < 0 || bd < 0 || fr > bd {
		t.Fatalf("unexpected output:\n%s", got)
	}
}

func TestNewWire_SamplesFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "samples.toml")
	if err := os.WriteFile(p, []byte("[fractions]\na = \"2/3\"\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	w, err := app.NewWire(app.Config{SamplesPath: p, Quiet: true})
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	if w.Samples.A.String() != "2/3" {
		t.Fatalf("want 2/3, got %s", w.Samples.A)
	}
}

func TestNewWire_BadSamples_Fails(t *testing.T) {
	p := filepath.Join(t.TempDir(), "samples.toml")
	if err := os.WriteFile(p, []byte("not toml ["), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := app.NewWire(app.Config{SamplesPath: p}); err == nil {
		t.Fatal("expected error")
	}
}
