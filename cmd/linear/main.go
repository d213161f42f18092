package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"

	"gioui.org/app"
	"github.com/esimov/linear"
	"github.com/esimov/linear/preview"
	"github.com/esimov/linear/process"
	"github.com/esimov/linear/render"
	"github.com/esimov/linear/scene"
	"github.com/esimov/linear/utils"
)

const HelpBanner = `
┬  ┬┌┐┌┌─┐┌─┐┬─┐
│  ││││├┤ ├─┤├┬┘
┴─┘┴┘└┘└─┘┴ ┴┴└─

Linear layout arrangement of boxes.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	source      = flag.String("in", pipeName, "Source scene file, directory or URL")
	destination = flag.String("out", "", "Destination image or directory")
	format      = flag.String("format", "toml", "Scene format used for stdin (toml, yaml)")
	direction   = flag.String("dir", "", "Override the layout direction (vertical, horizontal)")
	halign      = flag.String("halign", "", "Override the horizontal alignment (left, right, center)")
	valign      = flag.String("valign", "", "Override the vertical alignment (top, bottom, center)")
	blend       = flag.String("blend", "normal", "Blend mode of the children (normal, darken, lighten, multiply, screen, overlay, difference)")
	opacity     = flag.Float64("opacity", render.DefaultOptions.Opacity, "Opacity of the children")
	scale       = flag.Float64("scale", 1, "Scale factor of the rendered image")
	margin      = flag.Int("margin", render.DefaultOptions.Margin, "Margin around the rendered image")
	labels      = flag.Bool("labels", true, "Draw the name of the children")
	printTable  = flag.Bool("print", false, "Print the resolved placements")
	dump        = flag.String("dump", "", "Write the resolved scene to stdout in the given format (toml, yaml)")
	showPreview = flag.Bool("preview", false, "Show the arranged scene in a window")
	fit         = flag.Bool("fit", false, "Arrange against the preview window instead of the scene container")
	workers     = flag.Int("conc", runtime.NumCPU(), "Number of files to process concurrently")
	verbose     = flag.Bool("v", false, "Verbose logging")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *verbose {
		linear.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	mode, err := render.ParseBlendMode(*blend)
	if err != nil {
		log.Fatalf(utils.DecorateText("%v\n", utils.ErrorMessage), err)
	}
	sceneFormat, err := scene.ParseFormat(*format)
	if err != nil {
		log.Fatalf(utils.DecorateText("%v\n", utils.ErrorMessage), err)
	}

	opts := render.DefaultOptions
	opts.Blend = mode
	opts.Opacity = utils.Clamp(*opacity, 0, 1)
	opts.Scale = *scale
	opts.Margin = utils.Max(*margin, 0)
	opts.Labels = *labels

	op := &process.Ops{
		Src:      *source,
		Dst:      *destination,
		PipeName: pipeName,
		Format:   sceneFormat,
		Workers:  *workers,
		Print:    *printTable,
		Render:   opts,
		Override: process.Override{
			Direction: *direction,
			HAlign:    *halign,
			VAlign:    *valign,
		},
	}

	switch {
	case *dump != "":
		if err := dumpScene(op, *dump); err != nil {
			log.Fatalf(utils.DecorateText("Unable to write the scene: %v\n", utils.ErrorMessage), err)
		}
	case *showPreview:
		runPreview(op)
	default:
		if *destination == "" && !*printTable {
			flag.Usage()
			log.Fatal(fmt.Sprintf("%s%s",
				utils.DecorateText("\nPlease provide a destination with -out or use the -print or -preview flags!", utils.ErrorMessage),
				utils.DefaultColor,
			))
		}
		if err := op.Execute(); err != nil {
			log.Fatalf("%s%s", utils.DecorateText(fmt.Sprintf("\n%v", err), utils.ErrorMessage), utils.DefaultColor)
		}
	}
}

// runPreview opens the scene in a Gio window. The window event loop runs on
// its own goroutine because app.Main must own the main goroutine.
func runPreview(op *process.Ops) {
	sc, err := op.LoadScene()
	if err != nil {
		log.Fatalf(utils.DecorateText("Failed to load the source scene: %v\n", utils.ErrorMessage), err)
	}
	gui, err := preview.New(sc, preview.Options{Fit: *fit})
	if err != nil {
		log.Fatalf(utils.DecorateText("Unable to open the preview: %v\n", utils.ErrorMessage), err)
	}

	go func() {
		if err := gui.Run(); err != nil {
			log.Fatalf(utils.DecorateText("Preview error: %v\n", utils.ErrorMessage), err)
		}
		os.Exit(0)
	}()
	app.Main()
}

// dumpScene writes the scene with the overrides applied, which makes it easy
// to convert a scene between TOML and YAML.
func dumpScene(op *process.Ops, name string) error {
	f, err := scene.ParseFormat(name)
	if err != nil {
		return err
	}
	sc, err := op.LoadScene()
	if err != nil {
		return err
	}
	return scene.Encode(os.Stdout, sc, f)
}
