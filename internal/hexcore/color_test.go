package hexcore

import "testing"

func TestColorOther(t *testing.T) {
	if Black.Other() != White {
		t.Fatalf("Black.Other() = %v, want White", Black.Other())
	}
	if White.Other() != Black {
		t.Fatalf("White.Other() = %v, want Black", White.Other())
	}
	if Empty.Other() != Empty {
		t.Fatalf("Empty.Other() should be a no-op, got %v", Empty.Other())
	}
	if Dead.Other() != Dead {
		t.Fatalf("Dead.Other() should be a no-op, got %v", Dead.Other())
	}
}

func TestColorIsPlayer(t *testing.T) {
	cases := map[Color]bool{Black: true, White: true, Empty: false, Dead: false}
	for c, want := range cases {
		if got := c.IsPlayer(); got != want {
			t.Fatalf("%v.IsPlayer() = %v, want %v", c, got, want)
		}
	}
}

func TestColorString(t *testing.T) {
	cases := map[Color]string{Black: "black", White: "white", Empty: "empty", Dead: "dead"}
	for c, want := range cases {
		if got := c.String(); got != want {
			t.Fatalf("%v.String() = %q, want %q", c, got, want)
		}
	}
}
