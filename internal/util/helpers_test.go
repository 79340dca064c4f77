package util

import "testing"

func TestPtrDeref(t *testing.T) {
	v := 42
	p := Ptr(v)
	if *p != 42 {
		t.Fatalf("Ptr round trip failed")
	}
	if Deref(p) != 42 {
		t.Fatalf("Deref returned %d", Deref(p))
	}
	var nilPtr *string
	if Deref(nilPtr) != "" {
		t.Fatalf("Deref of nil should return zero value")
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		value, min, max, want int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 0, 0},
	}
	for _, c := range cases {
		if got := Clamp(c.value, c.min, c.max); got != c.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", c.value, c.min, c.max, got, c.want)
		}
	}
}
