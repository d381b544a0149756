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

// Package generic holds the pure, per-goroutine primitives of the enumerator:
// the rotation table, the polycube value type, the canonicalizer and the
// candidate generator. None of it touches shared state, so every function
// here is safe to call concurrently from many goroutines without locking.
package generic

// Axis identifiers, matching the axis ids used to index extents.
const (
	AxisX = 0
	AxisY = 1
	AxisZ = 2
)

// rotationSpec is one of the 24 proper rotations of the cube: an ordered pair
// of axes to decompose the linear scan index along (the third axis is
// inferred) plus a sign for each output axis.
type rotationSpec struct {
	xNeg, yNeg, zNeg bool
	axis0, axis1     int
}

// rotations is the fixed table of 24 proper rotations of the cube, ported
// directly from the reference implementation's rotations_list so that table
// order (used for tie-breaking in the canonicalizer) matches bit-for-bit.
var rotations = [24]rotationSpec{
	{false, false, false, AxisX, AxisY},
	{false, false, false, AxisY, AxisZ},
	{false, false, false, AxisZ, AxisX},
	{true, false, false, AxisY, AxisX},
	{true, false, false, AxisX, AxisZ},
	{true, false, false, AxisZ, AxisY},
	{false, true, false, AxisY, AxisX},
	{false, true, false, AxisX, AxisZ},
	{false, true, false, AxisZ, AxisY},
	{false, false, true, AxisY, AxisX},
	{false, false, true, AxisX, AxisZ},
	{false, false, true, AxisZ, AxisY},
	{true, true, false, AxisX, AxisY},
	{true, true, false, AxisY, AxisZ},
	{true, true, false, AxisZ, AxisX},
	{true, false, true, AxisX, AxisY},
	{true, false, true, AxisY, AxisZ},
	{true, false, true, AxisZ, AxisX},
	{false, true, true, AxisX, AxisY},
	{false, true, true, AxisY, AxisZ},
	{false, true, true, AxisZ, AxisX},
	{true, true, true, AxisY, AxisX},
	{true, true, true, AxisX, AxisZ},
	{true, true, true, AxisZ, AxisY},
}

// NumRotations is the number of entries in the rotation table.
const NumRotations = len(rotations)

// axis2 returns the axis not mentioned in (a0, a1).
func axis2(a0, a1 int) int {
	return AxisX + AxisY + AxisZ - a0 - a1
}

// lenByAxis returns the source extents indexed by axis id, in (a0, a1, a2)
// order for rotation r, where (bx, by, bz) are the source polycube's own
// extents.
func lenByAxis(r int, bx, by, bz int) (l0, l1, l2 int) {
	lens := [3]int{bx, by, bz}
	rot := rotations[r]
	return lens[rot.axis0], lens[rot.axis1], lens[axis2(rot.axis0, rot.axis1)]
}

// project maps a linear index i, in [0, bx*by*bz), decomposed in row-major
// order along rotation r's axis order (a0, a1, a2), back to the source
// coordinate (px, py, pz) it draws from. bx, by, bz are the source
// polycube's own extents; i ranges over the *output* extents under this
// rotation, i.e. (len[a0], len[a1], len[a2]).
func project(r int, i, bx, by, bz int) (px, py, pz int) {
	rot := rotations[r]
	_, l1, l2 := lenByAxis(r, bx, by, bz)

	i0 := i / (l1 * l2)
	rem := i % (l1 * l2)
	i1 := rem / l2
	i2 := rem % l2

	var coord [3]int
	coord[rot.axis0] = i0
	coord[rot.axis1] = i1
	coord[axis2(rot.axis0, rot.axis1)] = i2

	px, py, pz = coord[AxisX], coord[AxisY], coord[AxisZ]
	if rot.xNeg {
		px = bx - px - 1
	}
	if rot.yNeg {
		py = by - py - 1
	}
	if rot.zNeg {
		pz = bz - pz - 1
	}
	return
}
