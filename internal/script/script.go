// Package script drives a scene from a line-oriented command language.
//
// Each line is split into words with shell quoting rules. Blank lines and
// lines starting with '#' are ignored. A point argument is either a literal
// "x,y", which creates a new point, or the name of a point bound with let
// or point, which reuses that point so entities can share a vertex:
//
//	let a 10,10
//	line a 60,10
//	polygon a 10,60 60,60
//	select 0,0 70,70
//	rotate 90
//	apply
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/gogpu/pixgeom"
	"github.com/gogpu/pixgeom/scene"
)

var (
	// ErrUnknownCommand is returned for a command word with no handler.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrArgs is returned when a command receives malformed arguments.
	ErrArgs = errors.New("bad arguments")

	// ErrUnknownName is returned for a point name that was never bound.
	ErrUnknownName = errors.New("unknown point name")
)

// Interp holds the state of a scripted editing session: the scene, the
// render settings, the selection and the queued transform.
type Interp struct {
	Scene     *scene.Scene
	Render    scene.RenderOptions
	Selection scene.Selection
	Pending   scene.Pending

	names map[string]scene.PointID
	out   io.Writer
	log   *slog.Logger
}

// New returns an interpreter editing s. Output of the render and status
// commands goes to out; a nil out discards it.
func New(s *scene.Scene, out io.Writer) *Interp {
	if out == nil {
		out = io.Discard
	}
	return &Interp{
		Scene: s,
		names: make(map[string]scene.PointID),
		out:   out,
		log:   pixgeom.Logger(),
	}
}

// Exec runs a single line.
func (in *Interp) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	args, err := shellwords.Parse(line)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrArgs, err)
	}
	if len(args) == 0 {
		return nil
	}
	cmd, ok := commands[strings.ToLower(args[0])]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownCommand, args[0])
	}
	if n := len(args) - 1; n < cmd.min || cmd.max >= 0 && n > cmd.max {
		return fmt.Errorf("%w: usage: %s", ErrArgs, cmd.usage)
	}
	if err := cmd.run(in, args[1:]); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	in.log.Debug("script: exec", "cmd", args[0], "args", args[1:])
	return nil
}

// Run executes every line of r, stopping at the first error. Errors carry
// the 1-based line number.
func (in *Interp) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		if err := in.Exec(sc.Text()); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	return sc.Err()
}

// Name returns the point bound to name.
func (in *Interp) Name(name string) (scene.PointID, bool) {
	id, ok := in.names[name]
	return id, ok
}
