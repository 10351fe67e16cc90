package event

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/reckon/internal/engine/calc"
	"github.com/dshills/reckon/internal/engine/history"
	"github.com/dshills/reckon/internal/persist"
)

func sampleCalc() calc.Calculation {
	return calc.Calculation{
		Operation: "add", Operand1: 5, Operand2: 3, Result: 8,
		Timestamp: time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC),
	}
}

func TestNotifyOrder(t *testing.T) {
	bus := NewBus(nil)

	var order []string
	bus.Register(ObserverFunc(func(calc.Calculation) { order = append(order, "first") }))
	bus.Register(ObserverFunc(func(calc.Calculation) { order = append(order, "second") }))
	bus.Register(ObserverFunc(func(calc.Calculation) { order = append(order, "third") }))

	bus.Notify(sampleCalc())

	want := []string{"first", "second", "third"}
	if len(order) != len(want) {
		t.Fatalf("delivered to %d observers, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("delivery[%d] = %s, want %s", i, order[i], want[i])
		}
	}
}

func TestNotifyDeliversCalculation(t *testing.T) {
	bus := NewBus(nil)

	var got calc.Calculation
	bus.Register(ObserverFunc(func(c calc.Calculation) { got = c }))

	want := sampleCalc()
	bus.Notify(want)
	if !got.Equal(want) {
		t.Errorf("observer received %v, want %v", got, want)
	}
}

func TestNotifyIsolatesPanics(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	bus := NewBus(logger)

	delivered := false
	bus.Register(ObserverFunc(func(calc.Calculation) { panic("observer blew up") }))
	bus.Register(ObserverFunc(func(calc.Calculation) { delivered = true }))

	bus.Notify(sampleCalc())

	if !delivered {
		t.Error("panic prevented delivery to the next observer")
	}
	if !strings.Contains(buf.String(), "observer panic") {
		t.Errorf("panic not logged: %q", buf.String())
	}
}

func TestRegisterNilIgnored(t *testing.T) {
	bus := NewBus(nil)
	bus.Register(nil)
	if bus.Len() != 0 {
		t.Errorf("Len() = %d, want 0", bus.Len())
	}
}

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	o := NewLogObserver(logger)
	o.OnCalculation(sampleCalc())

	out := buf.String()
	for _, want := range []string{"calculation performed", "operation=add", "result=8"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %q", want, out)
		}
	}
}

func TestAutoSaveObserverWritesHistory(t *testing.T) {
	store := history.NewStore(10)
	store.Add(sampleCalc())
	path := filepath.Join(t.TempDir(), "auto", "history.csv")

	o := NewAutoSaveObserver(store, path, "utf-8", slog.New(slog.DiscardHandler))
	o.OnCalculation(sampleCalc())

	got, err := persist.Load(path, "utf-8")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(got) != 1 || !got[0].Equal(sampleCalc()) {
		t.Errorf("saved history = %v, want one sample entry", got)
	}
}

func TestAutoSaveObserverSwallowsIOErrors(t *testing.T) {
	dir := t.TempDir()
	// A directory at the target path makes os.Create fail.
	target := filepath.Join(dir, "history.csv")
	if err := os.MkdirAll(target, 0o755); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	store := history.NewStore(10)

	o := NewAutoSaveObserver(store, target, "utf-8", logger)
	o.OnCalculation(sampleCalc()) // must not panic

	if !strings.Contains(buf.String(), "failed to auto-save history") {
		t.Errorf("I/O failure not logged: %q", buf.String())
	}
}
