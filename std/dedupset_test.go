package std

import (
	"testing"

	"github.com/nicholasngai/cubes/generic"
)

func TestInsertOrGetNewThenExisting(t *testing.T) {
	set := NewDedupSet(16)
	c := generic.NewSingleton()
	key := c.Key()

	got, isNew := set.InsertOrGet(key, c)
	if !isNew || got != c {
		t.Fatalf("first insert: isNew=%v, got=%p, want isNew=true, got=%p", isNew, got, c)
	}

	other := generic.NewSingleton()
	got, isNew = set.InsertOrGet(key, other)
	if isNew {
		t.Fatalf("second insert of same key reported isNew=true")
	}
	if got != c {
		t.Fatalf("second insert returned %p, want original entry %p", got, c)
	}
}

func TestInsertOrGetGrowsSetSizeByOne(t *testing.T) {
	set := NewDedupSet(4)
	n := 0
	consume := func(key []byte, value *generic.Polycube) { n++ }

	a := generic.New(1, 1, 1)
	a.Set(0, 0, 0, true)
	b := a.Clone()

	if _, isNew := set.InsertOrGet(a.Key(), a); !isNew {
		t.Fatalf("expected first insert to be new")
	}
	if _, isNew := set.InsertOrGet(b.Key(), b); isNew {
		t.Fatalf("expected duplicate-key insert to report isNew=false")
	}

	set.Drain(consume)
	if n != 1 {
		t.Fatalf("set contains %d entries after one unique insert, want 1", n)
	}
}

func TestCompareKeysOrdersByLengthThenBytes(t *testing.T) {
	short := []byte{1, 2}
	long := []byte{0, 0, 0}
	if compareKeys(short, long) >= 0 {
		t.Fatalf("shorter key should compare less than a longer key regardless of contents")
	}
	if compareKeys([]byte{1, 2, 3}, []byte{1, 2, 4}) >= 0 {
		t.Fatalf("equal-length keys should compare lexicographically")
	}
	if compareKeys([]byte{1, 2, 3}, []byte{1, 2, 3}) != 0 {
		t.Fatalf("identical keys should compare equal")
	}
}
