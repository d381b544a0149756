// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package std

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/nicholasngai/cubes/generic"
)

// generation holds the canonical polycubes of one size: a live atomic count
// while a stage is filling it, and a flat list once the stage has finished
// and drained its set.
type generation struct {
	count int64
	list  []*generic.Polycube
}

// grow runs one growth stage (spec.md §4.5): for every polycube in prev, it
// generates every valid growth candidate, canonicalizes it, and attempts to
// insert it into a fresh dedup set. The outer loop over prev is the only
// parallel section — candidate generation and canonicalization are pure and
// run entirely goroutine-local. workers bounds the number of prev entries
// processed concurrently; workers <= 0 is treated as 1.
func grow(ctx context.Context, prev []*generic.Polycube, workers int) (*generation, error) {
	if workers <= 0 {
		workers = 1
	}

	set := NewDedupSet(BucketCountFor(len(prev)))
	var count int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, c := range prev {
		c := c
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			for _, cand := range generic.Candidates(c) {
				canon := generic.Canonicalize(cand)
				key := canon.Key()
				if _, isNew := set.InsertOrGet(key, canon); isNew {
					atomic.AddInt64(&count, 1)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "grow: stage aborted")
	}

	total := atomic.LoadInt64(&count)
	list := make([]*generic.Polycube, 0, total)
	set.Drain(func(_ []byte, value *generic.Polycube) {
		list = append(list, value)
	})

	return &generation{count: int64(len(list)), list: list}, nil
}
