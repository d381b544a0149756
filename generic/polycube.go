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

import "math/bits"

// MaxDim is the largest bounding-box extent supported along any axis.
const MaxDim = 20

// Polycube is a face-connected set of unit cubes, represented by its tight
// bounding box extents and an occupancy bitmap indexed by
// (x*by+y)*bz+z.
type Polycube struct {
	Bx, By, Bz int
	bits       []byte
}

// New allocates an empty polycube with the given extents.
func New(bx, by, bz int) *Polycube {
	n := bx * by * bz
	return &Polycube{
		Bx: bx, By: by, Bz: bz,
		bits: make([]byte, (n+7)/8),
	}
}

// NewSingleton returns the one polycube of size 1: a 1x1x1 cube.
func NewSingleton() *Polycube {
	c := New(1, 1, 1)
	c.Set(0, 0, 0, true)
	return c
}

// Len returns the number of cells in the bounding box (bx*by*bz).
func (c *Polycube) Len() int {
	return c.Bx * c.By * c.Bz
}

// index computes the flat bit index of cell (x, y, z).
func (c *Polycube) index(x, y, z int) int {
	return (x*c.By+y)*c.Bz + z
}

// Get reports whether cell (x, y, z) is occupied.
func (c *Polycube) Get(x, y, z int) bool {
	i := c.index(x, y, z)
	return c.bits[i/8]&(1<<uint(i%8)) != 0
}

// GetIndex reports whether the i'th cell (row-major over Bx, By, Bz) is
// occupied.
func (c *Polycube) GetIndex(i int) bool {
	return c.bits[i/8]&(1<<uint(i%8)) != 0
}

// Set sets or clears the occupancy of cell (x, y, z).
func (c *Polycube) Set(x, y, z int, v bool) {
	c.SetIndex(c.index(x, y, z), v)
}

// SetIndex sets or clears the occupancy of the i'th cell (row-major over
// Bx, By, Bz).
func (c *Polycube) SetIndex(i int, v bool) {
	if v {
		c.bits[i/8] |= 1 << uint(i%8)
	} else {
		c.bits[i/8] &^= 1 << uint(i%8)
	}
}

// Count returns the number of occupied cells (the polycube's size N).
func (c *Polycube) Count() int {
	n := 0
	for _, b := range c.bits {
		n += bits.OnesCount8(b)
	}
	return n
}

// Key serializes the polycube as (bx, by, bz, bitmap-bytes), the byte string
// used both as the dedup set's key and for equality comparison. Extents are
// packed one byte each, which is sufficient since MaxDim is 20.
func (c *Polycube) Key() []byte {
	key := make([]byte, 3+len(c.bits))
	key[0] = byte(c.Bx)
	key[1] = byte(c.By)
	key[2] = byte(c.Bz)
	copy(key[3:], c.bits)
	return key
}

// Equal reports whether two polycubes have byte-identical keys.
func (c *Polycube) Equal(o *Polycube) bool {
	if c.Bx != o.Bx || c.By != o.By || c.Bz != o.Bz {
		return false
	}
	for i := range c.bits {
		if c.bits[i] != o.bits[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of c.
func (c *Polycube) Clone() *Polycube {
	n := make([]byte, len(c.bits))
	copy(n, c.bits)
	return &Polycube{Bx: c.Bx, By: c.By, Bz: c.Bz, bits: n}
}
