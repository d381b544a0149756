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

// occupiedAt reports whether the padded cell (i, j, k) -- which maps to
// source cell (i-1, j-1, k-1) -- is occupied in c. Padded cells outside c's
// bounding box are always unoccupied.
func occupiedAt(c *Polycube, i, j, k int) bool {
	x, y, z := i-1, j-1, k-1
	if x < 0 || x >= c.Bx || y < 0 || y >= c.By || z < 0 || z >= c.Bz {
		return false
	}
	return c.Get(x, y, z)
}

// shiftAxis returns a copy of c with one extent grown by one and every
// occupied cell shifted by +1 along that axis, leaving a gap at index 0.
func shiftAxis(c *Polycube, axis int) *Polycube {
	var out *Polycube
	switch axis {
	case AxisX:
		out = New(c.Bx+1, c.By, c.Bz)
	case AxisY:
		out = New(c.Bx, c.By+1, c.Bz)
	case AxisZ:
		out = New(c.Bx, c.By, c.Bz+1)
	}
	for x := 0; x < c.Bx; x++ {
		for y := 0; y < c.By; y++ {
			for z := 0; z < c.Bz; z++ {
				if !c.Get(x, y, z) {
					continue
				}
				switch axis {
				case AxisX:
					out.Set(x+1, y, z, true)
				case AxisY:
					out.Set(x, y+1, z, true)
				case AxisZ:
					out.Set(x, y, z+1, true)
				}
			}
		}
	}
	return out
}

// copyInto copies every occupied cell of src into dst, unshifted. dst must
// be at least as large as src along every axis.
func copyInto(dst, src *Polycube) {
	for x := 0; x < src.Bx; x++ {
		for y := 0; y < src.By; y++ {
			for z := 0; z < src.Bz; z++ {
				if src.Get(x, y, z) {
					dst.Set(x, y, z, true)
				}
			}
		}
	}
}

// buildCandidate constructs the (N+1)-cube produced by growing c at padded
// position (i, j, k), following the three growth cases of the padded-grid
// walk: a new face at index 0, a new face at the far end, or an interior
// cell.
func buildCandidate(c *Polycube, i, j, k int) *Polycube {
	switch {
	case i == 0:
		out := shiftAxis(c, AxisX)
		out.Set(0, j-1, k-1, true)
		return out
	case j == 0:
		out := shiftAxis(c, AxisY)
		out.Set(i-1, 0, k-1, true)
		return out
	case k == 0:
		out := shiftAxis(c, AxisZ)
		out.Set(i-1, j-1, 0, true)
		return out
	case i == c.Bx+1:
		out := New(c.Bx+1, c.By, c.Bz)
		copyInto(out, c)
		out.Set(c.Bx, j-1, k-1, true)
		return out
	case j == c.By+1:
		out := New(c.Bx, c.By+1, c.Bz)
		copyInto(out, c)
		out.Set(i-1, c.By, k-1, true)
		return out
	case k == c.Bz+1:
		out := New(c.Bx, c.By, c.Bz+1)
		copyInto(out, c)
		out.Set(i-1, j-1, c.Bz, true)
		return out
	default:
		out := c.Clone()
		out.Set(i-1, j-1, k-1, true)
		return out
	}
}

// Candidates walks the padded (Bx+2)x(By+2)x(Bz+2) grid around c and returns
// every valid, not-yet-canonicalized growth candidate: an empty cell
// (outside the bounding box, or inside and unoccupied) face-adjacent to at
// least one occupied cell of c.
func Candidates(c *Polycube) []*Polycube {
	var out []*Polycube
	for i := 0; i <= c.Bx+1; i++ {
		for j := 0; j <= c.By+1; j++ {
			for k := 0; k <= c.Bz+1; k++ {
				if occupiedAt(c, i, j, k) {
					continue
				}
				if !occupiedAt(c, i-1, j, k) && !occupiedAt(c, i+1, j, k) &&
					!occupiedAt(c, i, j-1, k) && !occupiedAt(c, i, j+1, k) &&
					!occupiedAt(c, i, j, k-1) && !occupiedAt(c, i, j, k+1) {
					continue
				}
				out = append(out, buildCandidate(c, i, j, k))
			}
		}
	}
	return out
}
