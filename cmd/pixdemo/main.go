// Command pixdemo runs a drawing script against a scene and writes the
// rasterized canvas as a PNG.
//
// Usage:
//
//	pixdemo [-config pixdemo.toml] [-script drawing.txt] [-output out.png]
//
// Without -script a built-in demo is drawn. Use "-script -" to read the
// script from standard input.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/pixgeom"
	"github.com/gogpu/pixgeom/clip"
	"github.com/gogpu/pixgeom/internal/config"
	"github.com/gogpu/pixgeom/internal/script"
	"github.com/gogpu/pixgeom/raster"
	"github.com/gogpu/pixgeom/scene"
)

const demo = `
# A house with a shared roof vertex, a sun and a clip window.
let a 40,90
let b 100,90
let c 100,130
let d 40,130
let roof 70,60
polygon a b c d
line a roof
line roof b
circle 150,40 18
point 20,20
window 10,10 190,140

# Both roof lines are complete, so a, roof and b turn. a and b are also
# wall corners, so the walls bend with them; only the wall points no
# complete entity owns, c and d, stay where they are.
pick a roof b
rotate -10
apply
`

func main() {
	var (
		configPath = flag.String("config", "", "TOML configuration file")
		scriptPath = flag.String("script", "", "drawing script (\"-\" for stdin, empty for the built-in demo)")
		output     = flag.String("output", "pixdemo.png", "output file")
		width      = flag.Int("width", 0, "canvas width (overrides config)")
		height     = flag.Int("height", 0, "canvas height (overrides config)")
		scale      = flag.Int("scale", 0, "upscale factor (overrides config)")
		lineAlg    = flag.String("line", "", "line algorithm: bresenham or dda (overrides config)")
		clipAlg    = flag.String("clip", "", "clip algorithm: cohen-sutherland or liang-barsky (overrides config)")
		verbose    = flag.Bool("v", false, "log debug output")
		version    = flag.Bool("version", false, "print the version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println(versionString())
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	pixgeom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := override(cfg, *width, *height, *scale, *lineAlg, *clipAlg); err != nil {
		log.Fatalf("Invalid flag: %v", err)
	}

	src, err := openScript(*scriptPath)
	if err != nil {
		log.Fatalf("Failed to open script: %v", err)
	}
	defer src.Close()

	s := scene.New()
	in := script.New(s, os.Stdout)
	in.Render = scene.RenderOptions{
		Line:   cfg.Render.Line,
		Clip:   cfg.Render.Clip,
		Window: cfg.Window(),
	}
	if err := in.Run(src); err != nil {
		log.Fatalf("Script failed: %v", err)
	}

	pm := pixgeom.NewPixmap(cfg.Canvas.Width, cfg.Canvas.Height)
	s.Draw(pm, in.Render, cfg.SceneStyle(), in.Selection.Set())

	if err := save(*output, pm, cfg.Canvas.Scale); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	var pixels int
	opts := in.Render
	opts.Bounds = pm.Bounds()
	shapes := s.Render(opts)
	for _, sh := range shapes {
		pixels += len(sh.Pixels)
	}
	p := message.NewPrinter(language.English)
	p.Printf("%s: %d of %d entities visible, %d pixels (%s, %s) saved to %s (%dx%d)\n",
		versionString(), len(shapes), len(s.Entities()), pixels, opts.Line, opts.Clip,
		*output, cfg.Canvas.Width*cfg.Canvas.Scale, cfg.Canvas.Height*cfg.Canvas.Scale)
}

func versionString() string {
	return "pixdemo " + pixgeom.Version
}

func override(cfg *config.Config, width, height, scale int, lineAlg, clipAlg string) error {
	if width > 0 {
		cfg.Canvas.Width = width
	}
	if height > 0 {
		cfg.Canvas.Height = height
	}
	if scale > 0 {
		cfg.Canvas.Scale = scale
	}
	if lineAlg != "" {
		a, err := raster.ParseLineAlgorithm(lineAlg)
		if err != nil {
			return err
		}
		cfg.Render.Line = a
	}
	if clipAlg != "" {
		a, err := clip.ParseAlgorithm(clipAlg)
		if err != nil {
			return err
		}
		cfg.Render.Clip = a
	}
	return cfg.Validate()
}

func openScript(path string) (io.ReadCloser, error) {
	switch path {
	case "":
		return io.NopCloser(strings.NewReader(demo)), nil
	case "-":
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// save writes pm upscaled by an integer factor so single pixels stay sharp.
func save(path string, pm *pixgeom.Pixmap, scale int) error {
	if scale <= 1 {
		return pm.SavePNG(path)
	}
	dst := image.NewRGBA(image.Rect(0, 0, pm.Width()*scale, pm.Height()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), pm.ToImage(), pm.Bounds(), draw.Src, nil)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, dst); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
