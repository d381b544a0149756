package generic

import "testing"

func TestNewSingleton(t *testing.T) {
	c := NewSingleton()
	if c.Bx != 1 || c.By != 1 || c.Bz != 1 {
		t.Fatalf("singleton extents = (%d,%d,%d), want (1,1,1)", c.Bx, c.By, c.Bz)
	}
	if !c.Get(0, 0, 0) {
		t.Fatalf("singleton cell (0,0,0) not occupied")
	}
	if c.Count() != 1 {
		t.Fatalf("singleton Count() = %d, want 1", c.Count())
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	c := New(2, 3, 4)
	c.Set(1, 2, 3, true)
	c.Set(0, 0, 0, true)
	if !c.Get(1, 2, 3) || !c.Get(0, 0, 0) {
		t.Fatalf("expected both set cells to be occupied")
	}
	if c.Get(1, 1, 1) {
		t.Fatalf("unset cell reported occupied")
	}
	if c.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", c.Count())
	}
	c.Set(1, 2, 3, false)
	if c.Get(1, 2, 3) {
		t.Fatalf("cell still occupied after clearing")
	}
}

func TestKeyEquality(t *testing.T) {
	a := New(2, 2, 1)
	a.Set(0, 0, 0, true)
	a.Set(1, 1, 0, true)

	b := New(2, 2, 1)
	b.Set(0, 0, 0, true)
	b.Set(1, 1, 0, true)

	if !a.Equal(b) {
		t.Fatalf("identically occupied polycubes should be equal")
	}
	keyA, keyB := a.Key(), b.Key()
	if string(keyA) != string(keyB) {
		t.Fatalf("identically occupied polycubes should have identical keys")
	}

	b.Set(0, 1, 0, true)
	if a.Equal(b) {
		t.Fatalf("differently occupied polycubes should not be equal")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := New(1, 1, 2)
	a.Set(0, 0, 0, true)
	b := a.Clone()
	b.Set(0, 0, 1, true)
	if a.Get(0, 0, 1) {
		t.Fatalf("mutating a clone must not affect the original")
	}
}
