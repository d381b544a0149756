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

	"github.com/pkg/errors"

	"github.com/nicholasngai/cubes/generic"
)

// Sequencer holds one generation per polycube size, from 1 up to the
// configured maximum, and drives the growth stages that fill them in.
// gens[i] holds the canonical polycubes of size i+1.
type Sequencer struct {
	maxSize int
	gens    []*generation
}

// NewSequencer builds a sequencer for sizes 1..maxSize and seeds generation
// 1 with the singleton cube.
func NewSequencer(maxSize int) *Sequencer {
	gens := make([]*generation, maxSize)
	gens[0] = &generation{
		count: 1,
		list:  []*generic.Polycube{generic.NewSingleton()},
	}
	return &Sequencer{maxSize: maxSize, gens: gens}
}

// Run grows every generation from size 2 up to maxSize, each stage reading
// the previous size's canonical list and writing the next. workers bounds
// the concurrency of each stage's outer loop (spec.md §4.5).
func (s *Sequencer) Run(ctx context.Context, workers int) error {
	for size := 2; size <= s.maxSize; size++ {
		next, err := grow(ctx, s.gens[size-2].list, workers)
		if err != nil {
			return errors.Wrapf(err, "growing generation of size %d", size)
		}
		s.gens[size-1] = next
	}
	return nil
}

// Count returns the number of distinct canonical polycubes of the given
// size, or 0 if size is out of range.
func (s *Sequencer) Count(size int) int {
	if size < 1 || size > s.maxSize || s.gens[size-1] == nil {
		return 0
	}
	return int(s.gens[size-1].count)
}

// Cubes returns the canonical polycubes of the given size, or nil if size is
// out of range. The returned slice must be treated as read-only; its order
// is unspecified.
func (s *Sequencer) Cubes(size int) []*generic.Polycube {
	if size < 1 || size > s.maxSize || s.gens[size-1] == nil {
		return nil
	}
	return s.gens[size-1].list
}

// MaxSize returns the largest polycube size this sequencer was built for.
func (s *Sequencer) MaxSize() int {
	return s.maxSize
}
