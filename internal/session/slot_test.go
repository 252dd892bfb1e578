package session

import "testing"

func TestSlotDisposesOldOnInstall(t *testing.T) {
	var slot Slot

	disposed := 0
	first := NewRunFunc(func() { disposed++ })
	second := NewRunFunc(func() {})

	slot.Install(first)
	if slot.Current() != first {
		t.Fatal("slot should hold the installed run")
	}
	if disposed != 0 {
		t.Fatal("run disposed too early")
	}

	slot.Install(second)
	if disposed != 1 {
		t.Errorf("old run should be disposed exactly once, got %d", disposed)
	}
	if slot.Current() != second {
		t.Error("slot should hold the replacement run")
	}
}

func TestSlotRepeatedInstallsDisposeEachPredecessor(t *testing.T) {
	var slot Slot

	total := 0
	for i := 0; i < 5; i++ {
		slot.Install(NewRunFunc(func() { total++ }))
	}

	// Five installs: four predecessors disposed, one still live.
	if total != 4 {
		t.Errorf("disposed %d runs, expected 4", total)
	}

	slot.Dispose()
	if total != 5 {
		t.Errorf("final Dispose should release the last run, got %d", total)
	}
	if slot.Current() != nil {
		t.Error("slot should be empty after Dispose")
	}
}

func TestRunFuncIdempotent(t *testing.T) {
	calls := 0
	r := NewRunFunc(func() { calls++ })

	r.Dispose()
	r.Dispose()
	r.Dispose()

	if calls != 1 {
		t.Errorf("cleanup ran %d times, expected once", calls)
	}
}

func TestSlotDisposeEmpty(t *testing.T) {
	var slot Slot
	slot.Dispose() // Must not panic
}
