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

package generic

// Canonicalize reduces c to its canonical representative across all 24
// rotations: among the rotations whose projected extents come out in
// non-increasing order, the one whose row-major scan finds an occupied cell
// at the first index where the rotations differ (occupied cells visited as
// early as possible). It is pure and total for any non-empty polycube.
func Canonicalize(c *Polycube) *Polycube {
	n := c.Len()

	var active [NumRotations]bool
	for r := range active {
		active[r] = true
	}

	// Lengths pruning: a rotation can only win if its projected extents are
	// non-increasing, since the canonical form requires bx >= by >= bz.
	activeCount := 0
	for r := 0; r < NumRotations; r++ {
		l0, l1, l2 := lenByAxis(r, c.Bx, c.By, c.Bz)
		if l0 < l1 || l1 < l2 {
			active[r] = false
			continue
		}
		activeCount++
	}
	if activeCount == 0 {
		panic("generic: canonicalize found no orientation with non-increasing extents")
	}

	var found [NumRotations]bool
	for i := 0; i < n && activeCount > 1; i++ {
		foundCount := 0
		for r := 0; r < NumRotations; r++ {
			found[r] = false
			if !active[r] {
				continue
			}
			px, py, pz := project(r, i, c.Bx, c.By, c.Bz)
			if c.Get(px, py, pz) {
				found[r] = true
				foundCount++
			}
		}

		// An occupied cell (bit value 1) outranks an empty one: if some
		// active orientations see a 1 here and others see a 0, the
		// 0-orientations lose.
		if foundCount >= 1 && foundCount < activeCount {
			for r := 0; r < NumRotations; r++ {
				if active[r] && !found[r] {
					active[r] = false
				}
			}
			activeCount = foundCount
		}
	}

	winner := -1
	for r := 0; r < NumRotations; r++ {
		if active[r] {
			winner = r
			break
		}
	}
	if winner < 0 {
		panic("generic: canonicalize failed to select a winning orientation")
	}

	l0, l1, l2 := lenByAxis(winner, c.Bx, c.By, c.Bz)
	out := New(l0, l1, l2)
	for i := 0; i < n; i++ {
		px, py, pz := project(winner, i, c.Bx, c.By, c.Bz)
		if c.Get(px, py, pz) {
			out.SetIndex(i, true)
		}
	}
	return out
}
