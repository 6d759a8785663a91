package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/pixgeom"
	"github.com/gogpu/pixgeom/clip"
	"github.com/gogpu/pixgeom/raster"
	"github.com/gogpu/pixgeom/scene"
)

type command struct {
	usage    string
	min, max int // argument count; max < 0 is unbounded
	run      func(in *Interp, args []string) error
}

var commands = map[string]command{
	"let":       {"let NAME X,Y", 2, 2, (*Interp).let},
	"point":     {"point [NAME] X,Y | point NAME", 1, 2, (*Interp).point},
	"line":      {"line P P", 2, 2, (*Interp).line},
	"polygon":   {"polygon P...", 1, -1, (*Interp).polygon},
	"polyline":  {"polyline P...", 1, -1, (*Interp).polyline},
	"circle":    {"circle CENTER RIM|RADIUS", 2, 2, (*Interp).circle},
	"algo":      {"algo bresenham|dda", 1, 1, (*Interp).algo},
	"clipper":   {"clipper cohen-sutherland|liang-barsky", 1, 1, (*Interp).clipper},
	"window":    {"window X,Y X,Y | window off", 1, 2, (*Interp).window},
	"select":    {"select X,Y X,Y | select all | select none", 1, 2, (*Interp).selectCmd},
	"pick":      {"pick NAME...", 1, -1, (*Interp).pick},
	"translate": {"translate DX DY", 2, 2, (*Interp).translate},
	"rotate":    {"rotate DEG [PIVOT]", 1, 2, (*Interp).rotate},
	"scale":     {"scale S | scale SX SY [PIVOT]", 1, 3, (*Interp).scale},
	"reflect":   {"reflect x|y|xy [PIVOT]", 1, 2, (*Interp).reflect},
	"apply":     {"apply", 0, 0, (*Interp).apply},
	"discard":   {"discard", 0, 0, (*Interp).discard},
	"clear":     {"clear", 0, 0, (*Interp).clear},
	"render":    {"render", 0, 0, (*Interp).render},
	"status":    {"status", 0, 0, (*Interp).status},
}

func (in *Interp) let(args []string) error {
	p, err := parseXY(args[1])
	if err != nil {
		return err
	}
	in.names[args[0]] = in.Scene.AddPoint(p)
	return nil
}

func (in *Interp) point(args []string) error {
	if len(args) == 1 && !isLiteral(args[0]) {
		id, err := in.ref(args[0])
		if err != nil {
			return err
		}
		_, err = in.Scene.AddEntity(scene.NewPoint(id))
		return err
	}
	p, err := parseXY(args[len(args)-1])
	if err != nil {
		return err
	}
	id, _ := in.Scene.AddFreePoint(p)
	if len(args) == 2 {
		in.names[args[0]] = id
	}
	return nil
}

func (in *Interp) line(args []string) error {
	ids, err := in.refs(args)
	if err != nil {
		return err
	}
	_, err = in.Scene.AddLine(ids[0], ids[1])
	return err
}

func (in *Interp) polygon(args []string) error {
	return in.buildPolygon(args, true)
}

func (in *Interp) polyline(args []string) error {
	return in.buildPolygon(args, false)
}

// buildPolygon adds vertices one at a time, the way an interactive polygon
// is drawn, and closes it at the end.
func (in *Interp) buildPolygon(args []string, closed bool) error {
	ids, err := in.refs(args)
	if err != nil {
		return err
	}
	eid, err := in.Scene.AddPolygon(ids[:1], false)
	if err != nil {
		return err
	}
	for _, id := range ids[1:] {
		if err := in.Scene.AppendVertex(eid, id); err != nil {
			return err
		}
	}
	if closed {
		return in.Scene.ClosePolygon(eid)
	}
	return nil
}

func (in *Interp) circle(args []string) error {
	if r, ferr := strconv.ParseFloat(args[1], 64); ferr == nil {
		c, err := in.coord(args[0])
		if err != nil {
			return err
		}
		center, err := in.ref(args[0])
		if err != nil {
			return err
		}
		rim := in.Scene.AddPoint(c.Add(pixgeom.Pt(r, 0)))
		_, err = in.Scene.AddCircle(center, rim)
		return err
	}
	ids, err := in.refs(args)
	if err != nil {
		return err
	}
	_, err = in.Scene.AddCircle(ids[0], ids[1])
	return err
}

func (in *Interp) algo(args []string) error {
	a, err := raster.ParseLineAlgorithm(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrArgs, err)
	}
	in.Render.Line = a
	return nil
}

func (in *Interp) clipper(args []string) error {
	a, err := clip.ParseAlgorithm(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrArgs, err)
	}
	in.Render.Clip = a
	return nil
}

func (in *Interp) window(args []string) error {
	if len(args) == 1 {
		if args[0] != "off" {
			return fmt.Errorf("%w: want \"off\" or two corners", ErrArgs)
		}
		in.Render.Window = nil
		return nil
	}
	r, err := in.rect(args)
	if err != nil {
		return err
	}
	in.Render.Window = &r
	return nil
}

func (in *Interp) selectCmd(args []string) error {
	if len(args) == 1 {
		switch args[0] {
		case "none":
			in.Selection.Clear()
		case "all":
			ids := scene.NewPointSet()
			for i := range in.Scene.NumPoints() {
				ids.Add(scene.PointID(i))
			}
			in.Selection.Replace(ids)
		default:
			return fmt.Errorf("%w: want all, none or two corners", ErrArgs)
		}
		return nil
	}
	r, err := in.rect(args)
	if err != nil {
		return err
	}
	in.Selection.Replace(in.Scene.SelectRect(r))
	return nil
}

func (in *Interp) pick(args []string) error {
	for _, name := range args {
		id, ok := in.names[name]
		if !ok {
			return fmt.Errorf("%w %q", ErrUnknownName, name)
		}
		in.Selection.Toggle(id)
	}
	return nil
}

func (in *Interp) translate(args []string) error {
	v, err := parseFloats(args)
	if err != nil {
		return err
	}
	in.Pending = in.Pending.Translate(v[0], v[1])
	return nil
}

func (in *Interp) rotate(args []string) error {
	args, pivot, explicit, err := in.splitPivot(args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: want one angle", ErrArgs)
	}
	v, err := parseFloats(args)
	if err != nil {
		return err
	}
	if explicit {
		in.Pending = in.Pending.RotateAbout(v[0], pivot)
	} else {
		in.Pending = in.Pending.Rotate(v[0])
	}
	return nil
}

func (in *Interp) scale(args []string) error {
	args, pivot, explicit, err := in.splitPivot(args)
	if err != nil {
		return err
	}
	v, err := parseFloats(args)
	if err != nil {
		return err
	}
	if len(v) > 2 {
		return fmt.Errorf("%w: want one or two factors", ErrArgs)
	}
	switch {
	case len(v) == 1 && !explicit:
		in.Pending = in.Pending.ScaleUniform(v[0])
	case len(v) == 1:
		in.Pending = in.Pending.ScaleAbout(v[0], v[0], pivot)
	case explicit:
		in.Pending = in.Pending.ScaleAbout(v[0], v[1], pivot)
	default:
		in.Pending = in.Pending.Scale(v[0], v[1])
	}
	return nil
}

func (in *Interp) reflect(args []string) error {
	args, pivot, explicit, err := in.splitPivot(args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: want one axis", ErrArgs)
	}
	axis, err := parseAxis(args[0])
	if err != nil {
		return err
	}
	if explicit {
		in.Pending = in.Pending.ReflectAbout(axis, pivot)
	} else {
		in.Pending = in.Pending.Reflect(axis)
	}
	return nil
}

// apply commits the pending transform to the eligible part of the
// selection and starts a new, empty transform.
func (in *Interp) apply([]string) error {
	ids := in.Selection.Eligible(in.Scene)
	if skipped := in.Selection.Len() - len(ids); skipped > 0 {
		in.log.Info("script: points held back by partially selected entities", "skipped", skipped)
	}
	in.Scene.Apply(ids, in.Pending)
	in.Pending = scene.NewPending()
	return nil
}

func (in *Interp) discard([]string) error {
	in.Pending = scene.NewPending()
	return nil
}

func (in *Interp) clear([]string) error {
	in.Scene.Reset()
	clear(in.names)
	in.Selection.Clear()
	in.Pending = scene.NewPending()
	return nil
}

func (in *Interp) render([]string) error {
	for _, sh := range in.Scene.Render(in.Render) {
		if _, err := fmt.Fprintf(in.out, "%d %s %d\n", sh.Entity, sh.Kind, len(sh.Pixels)); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interp) status([]string) error {
	_, err := fmt.Fprintf(in.out, "points=%d entities=%d selected=%d eligible=%d pending=%d line=%s clip=%s\n",
		in.Scene.NumPoints(), len(in.Scene.Entities()),
		in.Selection.Len(), len(in.Selection.Eligible(in.Scene)), in.Pending.Len(),
		in.Render.Line, in.Render.Clip)
	return err
}

func (in *Interp) ref(arg string) (scene.PointID, error) {
	ids, err := in.refs([]string{arg})
	if err != nil {
		return 0, err
	}
	return ids[0], nil
}

// refs resolves point arguments. Every argument is checked before any
// literal is added to the scene, so a failing command leaves no points.
func (in *Interp) refs(args []string) ([]scene.PointID, error) {
	lits := make([]pixgeom.Point, len(args))
	for i, a := range args {
		if isLiteral(a) {
			p, err := parseXY(a)
			if err != nil {
				return nil, err
			}
			lits[i] = p
		} else if _, ok := in.names[a]; !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownName, a)
		}
	}
	ids := make([]scene.PointID, len(args))
	for i, a := range args {
		if isLiteral(a) {
			ids[i] = in.Scene.AddPoint(lits[i])
		} else {
			ids[i] = in.names[a]
		}
	}
	return ids, nil
}

// coord resolves a point argument to coordinates without adding a point.
func (in *Interp) coord(arg string) (pixgeom.Point, error) {
	if isLiteral(arg) {
		return parseXY(arg)
	}
	id, ok := in.names[arg]
	if !ok {
		return pixgeom.Point{}, fmt.Errorf("%w %q", ErrUnknownName, arg)
	}
	p, _ := in.Scene.Point(id)
	return p, nil
}

func (in *Interp) rect(args []string) (clip.Rect, error) {
	a, err := in.coord(args[0])
	if err != nil {
		return clip.Rect{}, err
	}
	b, err := in.coord(args[1])
	if err != nil {
		return clip.Rect{}, err
	}
	return clip.RectFromCorners(a, b), nil
}

// splitPivot peels an optional trailing pivot point off args.
func (in *Interp) splitPivot(args []string) ([]string, pixgeom.Point, bool, error) {
	last := args[len(args)-1]
	if _, err := strconv.ParseFloat(last, 64); err == nil || len(args) == 1 && !isLiteral(last) {
		return args, pixgeom.Point{}, false, nil
	}
	p, err := in.coord(last)
	if err != nil {
		return nil, pixgeom.Point{}, false, err
	}
	return args[:len(args)-1], p, true, nil
}

func isLiteral(arg string) bool {
	return strings.Contains(arg, ",")
}

func parseXY(s string) (pixgeom.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return pixgeom.Point{}, fmt.Errorf("%w: point %q is not x,y", ErrArgs, s)
	}
	v, err := parseFloats([]string{xs, ys})
	if err != nil {
		return pixgeom.Point{}, err
	}
	return pixgeom.Pt(v[0], v[1]), nil
}

func parseFloats(args []string) ([]float64, error) {
	v := make([]float64, len(args))
	for i, a := range args {
		f, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrArgs, a)
		}
		v[i] = f
	}
	return v, nil
}

func parseAxis(s string) (pixgeom.Axis, error) {
	for _, a := range []pixgeom.Axis{pixgeom.AxisX, pixgeom.AxisY, pixgeom.AxisXY} {
		if strings.EqualFold(s, a.String()) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown axis %q", ErrArgs, s)
}
