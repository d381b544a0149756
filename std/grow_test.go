package std

import (
	"context"
	"testing"

	"github.com/nicholasngai/cubes/generic"
)

func TestGrowSingletonProducesDomino(t *testing.T) {
	prev := []*generic.Polycube{generic.NewSingleton()}
	next, err := grow(context.Background(), prev, 4)
	if err != nil {
		t.Fatalf("grow: %v", err)
	}
	if next.count != 1 {
		t.Fatalf("count = %d, want 1", next.count)
	}
	if len(next.list) != 1 || next.list[0].Count() != 2 {
		t.Fatalf("grow(singleton) list = %+v, want one 2-cell polycube", next.list)
	}
}

func TestGrowRespectsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	prev := []*generic.Polycube{generic.NewSingleton(), generic.NewSingleton()}
	if _, err := grow(ctx, prev, 1); err == nil {
		t.Fatalf("expected grow to report an error for a pre-canceled context")
	}
}

func TestGrowIsDeterministicAsAMultiset(t *testing.T) {
	domino := generic.Canonicalize(generic.Candidates(generic.NewSingleton())[0])
	prev := []*generic.Polycube{domino}

	a, err := grow(context.Background(), prev, 1)
	if err != nil {
		t.Fatalf("grow: %v", err)
	}
	b, err := grow(context.Background(), prev, 4)
	if err != nil {
		t.Fatalf("grow: %v", err)
	}

	if a.count != b.count {
		t.Fatalf("single-worker count %d != multi-worker count %d", a.count, b.count)
	}

	shapesA, shapesB := map[string]bool{}, map[string]bool{}
	for _, c := range a.list {
		shapesA[string(c.Key())] = true
	}
	for _, c := range b.list {
		shapesB[string(c.Key())] = true
	}
	if len(shapesA) != len(shapesB) {
		t.Fatalf("distinct shape count differs between worker counts: %d vs %d", len(shapesA), len(shapesB))
	}
	for k := range shapesA {
		if !shapesB[k] {
			t.Fatalf("shape present with 1 worker missing with 4 workers")
		}
	}
}
