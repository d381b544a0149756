package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/urfave/cli"
)

// runApp invokes the enumerator's cli.App with args and returns whatever it
// wrote to stdout.
func runApp(t *testing.T, args ...string) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	done := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		done <- buf.String()
	}()

	app := cli.NewApp()
	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "d"},
		cli.IntFlag{Name: "workers", Value: 2},
		cli.StringFlag{Name: "c"},
		cli.StringFlag{Name: "dump-file"},
		cli.BoolFlag{Name: "quiet, q"},
	}
	app.Action = run

	runErr := app.Run(append([]string{"cubes"}, args...))

	w.Close()
	out := <-done
	if runErr != nil {
		t.Fatalf("app.Run: %v", runErr)
	}
	return out
}

func TestRunPrintsCountLines(t *testing.T) {
	out := runApp(t, "3")
	for _, want := range []string{" 1: 1", " 2: 1", " 3: 2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output %q missing line %q", out, want)
		}
	}
}

func TestRunDumpHasTwoDistinctSizeThreeShapes(t *testing.T) {
	// -q suppresses the count lines so the dumped text is exactly the
	// three generations' textual blocks, one after another.
	out := runApp(t, "-q", "-d", "3")

	// Each polycube's block ends with a blank line; each generation ends
	// with a second, terminating blank line, so "\n\n\n" isolates
	// generations and the trailing element from the final terminator.
	generations := strings.Split(out, "\n\n\n")
	if len(generations) != 4 || generations[3] != "" {
		t.Fatalf("expected 3 generations followed by a trailing empty chunk, got %q (%d chunks)", out, len(generations))
	}

	shapes := strings.Split(generations[2], "\n\n")
	if len(shapes) != 2 {
		t.Fatalf("generation 3 dump has %d shapes, want 2: %q", len(shapes), generations[2])
	}
	if shapes[0] == shapes[1] {
		t.Fatalf("the two size-3 shapes should not be identical")
	}
}

func TestRunRejectsZeroMaxSize(t *testing.T) {
	app := cli.NewApp()
	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "d"},
		cli.IntFlag{Name: "workers", Value: 2},
		cli.StringFlag{Name: "c"},
		cli.StringFlag{Name: "dump-file"},
		cli.BoolFlag{Name: "quiet, q"},
	}
	app.Action = run

	if err := app.Run([]string{"cubes", "0"}); err == nil {
		t.Fatalf("expected an error for max_size == 0")
	}
}
