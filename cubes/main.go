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

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/nicholasngai/cubes/generic"
	"github.com/nicholasngai/cubes/std"
)

// VERSION is injected by buildflags
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	myApp := cli.NewApp()
	myApp.Name = "cubes"
	myApp.Usage = "enumerate free polycubes by cell count"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "d",
			Usage: "dump every generation's polycubes to stdout in the textual box format",
		},
		cli.IntFlag{
			Name:  "workers",
			Value: runtime.NumCPU(),
			Usage: "number of goroutines growing a generation concurrently",
		},
		cli.StringFlag{
			Name:  "c",
			Usage: "read max_size/workers/dump settings from a JSON config file",
		},
		cli.StringFlag{
			Name:  "dump-file",
			Usage: "also archive every generation as snappy-compressed records to this path",
		},
		cli.BoolFlag{
			Name:  "quiet, q",
			Usage: "suppress the per-generation count lines on stdout",
		},
	}
	myApp.Action = run

	if err := myApp.Run(os.Args); err != nil {
		checkError(err)
	}
}

func run(c *cli.Context) error {
	config := Config{
		Workers: c.Int("workers"),
		Dump:    c.Bool("d"),
		Quiet:   c.Bool("quiet"),
	}
	if c.NArg() > 0 {
		n, err := strconv.Atoi(c.Args().Get(0))
		if err != nil {
			return errors.Wrapf(err, "parsing max_size argument %q", c.Args().Get(0))
		}
		config.MaxSize = n
	}
	config.DumpFile = c.String("dump-file")

	if c.String("c") != "" {
		if err := parseJSONConfig(&config, c.String("c")); err != nil {
			return errors.Wrap(err, "reading config file")
		}
	}

	if config.MaxSize <= 0 {
		color.Red("max_size must be a positive integer")
		return errors.New("max_size must be a positive integer")
	}
	if config.MaxSize > generic.MaxDim {
		color.Red("max_size exceeds the largest supported bounding-box extent (%d)", generic.MaxDim)
		return errors.Errorf("max_size %d exceeds limit %d", config.MaxSize, generic.MaxDim)
	}
	if config.Workers <= 0 {
		config.Workers = 1
	}

	var dumpFile *os.File
	if config.DumpFile != "" {
		f, err := os.OpenFile(config.DumpFile, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o666)
		if err != nil {
			return errors.Wrap(err, "opening dump file")
		}
		dumpFile = f
		defer dumpFile.Close()
	}

	seq := std.NewSequencer(config.MaxSize)
	if err := seq.Run(context.Background(), config.Workers); err != nil {
		return errors.Wrap(err, "enumerating polycubes")
	}

	for size := 1; size <= config.MaxSize; size++ {
		if !config.Quiet {
			fmt.Printf("%2d: %d\n", size, seq.Count(size))
		}

		cubes := seq.Cubes(size)
		if config.Dump {
			if err := std.DumpText(os.Stdout, cubes); err != nil {
				return errors.Wrap(err, "dumping generation to stdout")
			}
		}
		if dumpFile != nil {
			if err := std.DumpCompressed(dumpFile, cubes); err != nil {
				return errors.Wrap(err, "archiving generation to dump file")
			}
		}
	}

	return nil
}

func checkError(err error) {
	if err != nil {
		log.Printf("%+v\n", err)
		os.Exit(-1)
	}
}
