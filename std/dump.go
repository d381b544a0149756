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
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/golang/snappy"
	"github.com/pkg/errors"

	"github.com/nicholasngai/cubes/generic"
)

// DumpText writes cubes in the textual format documented by spec.md §6: one
// polycube per by-line group, each line holding bz space-separated
// bx-digit binary rows ('0'/'1'), a blank line after each polycube, and a
// final blank line terminating the generation.
func DumpText(w io.Writer, cubes []*generic.Polycube) error {
	for _, c := range cubes {
		for y := 0; y < c.By; y++ {
			rows := make([]string, c.Bz)
			for z := 0; z < c.Bz; z++ {
				row := make([]byte, c.Bx)
				for x := 0; x < c.Bx; x++ {
					if c.Get(x, y, z) {
						row[x] = '1'
					} else {
						row[x] = '0'
					}
				}
				rows[z] = string(row)
			}
			if _, err := fmt.Fprintln(w, strings.Join(rows, " ")); err != nil {
				return errors.WithStack(err)
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return errors.WithStack(err)
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// DumpCompressed writes cubes to w as a snappy-compressed stream of
// length-prefixed (bx, by, bz, bitmap) records, supplementing the
// human-readable dump with an on-disk archive external tooling can replay
// without re-parsing text. It is export-only: nothing in this process reads
// the file back, so it does not reintroduce resumable state.
func DumpCompressed(w io.Writer, cubes []*generic.Polycube) (err error) {
	sw := snappy.NewBufferedWriter(w)
	defer func() {
		if cerr := sw.Close(); err == nil && cerr != nil {
			err = errors.WithStack(cerr)
		}
	}()

	var lenBuf [4]byte
	for _, c := range cubes {
		key := c.Key()
		binary.BigEndian.PutUint32(lenBuf[:], uint32(len(key)))
		if _, err = sw.Write(lenBuf[:]); err != nil {
			return errors.WithStack(err)
		}
		if _, err = sw.Write(key); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
