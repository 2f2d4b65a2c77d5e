package domain

import (
	"errors"
	"testing"
)

func mustPackage(t *testing.T, name, from, to string, weight int) Package {
	t.Helper()
	p, err := NewPackage(name, from, to, weight)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

func TestNewVehicleRejectsNonPositiveCapacity(t *testing.T) {
	for _, capacity := range []int{0, -3} {
		_, err := NewVehicle(capacity)
		if !errors.Is(err, ErrInvalidCapacity) {
			t.Errorf("NewVehicle(%d) err = %v, want ErrInvalidCapacity", capacity, err)
		}
	}
}

func TestVehicleTryLoadRespectsCapacity(t *testing.T) {
	v, err := NewVehicle(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	heavy := mustPackage(t, "P1", "A", "B", 4)
	light := mustPackage(t, "P2", "A", "C", 3)

	if !v.TryLoad(heavy) {
		t.Fatalf("expected first package to load")
	}
	if v.TryLoad(light) {
		t.Fatalf("expected second package to be rejected (load would be 7 > 5)")
	}

	// a rejected load must leave the state untouched
	if v.CurrentLoad() != 4 {
		t.Errorf("load = %d, want 4", v.CurrentLoad())
	}
	if got := v.Carried(); len(got) != 1 || got[0].Name != "P1" {
		t.Errorf("carried = %v, want [P1]", got)
	}
	if got := v.Destinations(); len(got) != 1 || got[0] != "B" {
		t.Errorf("destinations = %v, want [B]", got)
	}
}

func TestVehicleTryLoadExactFit(t *testing.T) {
	v, _ := NewVehicle(7)
	if !v.TryLoad(mustPackage(t, "P1", "A", "B", 4)) || !v.TryLoad(mustPackage(t, "P2", "A", "B", 3)) {
		t.Fatalf("expected both packages to fit exactly")
	}
	if v.CurrentLoad() != v.Capacity() {
		t.Errorf("load = %d, want %d", v.CurrentLoad(), v.Capacity())
	}
}

func TestVehicleUnloadAt(t *testing.T) {
	v, _ := NewVehicle(20)
	v.TryLoad(mustPackage(t, "P1", "A", "B", 2))
	v.TryLoad(mustPackage(t, "P2", "A", "C", 5))
	v.TryLoad(mustPackage(t, "P3", "D", "B", 6))

	dropped := v.UnloadAt("B")
	if len(dropped) != 2 || dropped[0].Name != "P1" || dropped[1].Name != "P3" {
		t.Fatalf("dropped = %v, want [P1 P3]", dropped)
	}
	if v.CurrentLoad() != 5 {
		t.Errorf("load = %d, want 5", v.CurrentLoad())
	}
	if got := v.Destinations(); len(got) != 1 || got[0] != "C" {
		t.Errorf("destinations = %v, want [C]", got)
	}

	// unloading at a city with nothing pending is a no-op
	none := v.UnloadAt("Z")
	if len(none) != 0 {
		t.Errorf("dropped at Z = %v, want none", none)
	}
	if v.CurrentLoad() != 5 || len(v.Carried()) != 1 {
		t.Errorf("state changed by no-op unload: load=%d carried=%d", v.CurrentLoad(), len(v.Carried()))
	}

	v.UnloadAt("C")
	if !v.IsEmpty() || v.CurrentLoad() != 0 {
		t.Errorf("vehicle not empty after final unload: load=%d", v.CurrentLoad())
	}
}
