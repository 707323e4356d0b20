package domain

import "testing"

func wp(address string, lon, lat float64) Waypoint {
	return Waypoint{Address: address, Coords: Coordinates{Lon: lon, Lat: lat}}
}

func TestStopsEqualOrder(t *testing.T) {
	// build test data
	a := Stops{wp("A", 0, 0), wp("B", 1, 1), wp("C", 2, 2)}
	b := Stops{wp("A", 9, 9), wp("B", 8, 8), wp("C", 7, 7)}
	permuted := Stops{wp("A", 0, 0), wp("C", 2, 2), wp("B", 1, 1)}
	shorter := Stops{wp("A", 0, 0), wp("B", 1, 1)}

	// verify behavior: identity sequence decides, coordinates do not
	if !a.EqualOrder(b) {
		t.Errorf("lists with same addresses in same order should be order-equal")
	}
	if a.EqualOrder(permuted) {
		t.Errorf("permuted list should not be order-equal")
	}
	if a.EqualOrder(shorter) {
		t.Errorf("lists of different length should not be order-equal")
	}
	if !Stops(nil).EqualOrder(Stops{}) {
		t.Errorf("nil and empty lists should be order-equal")
	}
}

func TestStopsMoveToFront(t *testing.T) {
	s := Stops{wp("A", 0, 0), wp("B", 1, 1), wp("C", 2, 2), wp("D", 3, 3)}

	got := s.MoveToFront(2)

	want := []string{"C", "A", "B", "D"}
	for i, k := range got.Keys() {
		if k != want[i] {
			t.Fatalf("MoveToFront order = %v, want %v", got.Keys(), want)
		}
	}

	// original list is untouched
	if s[0].Key() != "A" || s[2].Key() != "C" {
		t.Errorf("MoveToFront mutated its receiver: %v", s.Keys())
	}
}

func TestStopsDelete(t *testing.T) {
	s := Stops{wp("A", 0, 0), wp("B", 1, 1), wp("C", 2, 2)}

	got := s.Delete(1)

	if len(got) != 2 || got[0].Key() != "A" || got[1].Key() != "C" {
		t.Fatalf("Delete(1) = %v, want [A C]", got.Keys())
	}
	if len(s) != 3 {
		t.Errorf("Delete mutated its receiver: %v", s.Keys())
	}
}

func TestStopsIndexOf(t *testing.T) {
	s := Stops{wp("A", 0, 0), wp("B", 1, 1)}

	if got := s.IndexOf("B"); got != 1 {
		t.Errorf("IndexOf(B) = %d, want 1", got)
	}
	if got := s.IndexOf("missing"); got != -1 {
		t.Errorf("IndexOf(missing) = %d, want -1", got)
	}
}
