package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/akeil/rmlines"
	"github.com/akeil/rmlines/pkg/render"
)

const (
	checkmark = "✓"
	crossmark = "✗"
	ellipsis  = "…"
)

type settings struct {
	outDir   string
	colors   string
	crop     bool
	pad      bool
	distance float64
	debug    bool
	scale    float64
}

func main() {
	app := kingpin.New("rmlines", "Convert reMarkable .lines files")
	app.HelpFlag.Short('h')

	var s settings
	logLevel := app.Flag("log-level", "Log level (debug, info, warning, error, none)").Default("warning").Envar("RMLINES_LOG_LEVEL").Enum(rmlines.LogLevels...)
	app.Flag("output", "Output directory").Short('o').Default(".").Envar("RMLINES_OUTPUT").StringVar(&s.outDir)
	app.Flag("colors", "Colors for black, grey and white per layer, layers separated by ';'").Default(render.DefaultColors).Envar("RMLINES_COLORS").StringVar(&s.colors)
	app.Flag("crop", "Crop the output to the drawing").Short('c').Envar("RMLINES_CROP").BoolVar(&s.crop)
	app.Flag("pad", "Include the stroke width when cropping").Envar("RMLINES_PAD").BoolVar(&s.pad)
	app.Flag("distance", "Skip points closer than this to the previous point").Short('d').Default("0").Envar("RMLINES_DISTANCE").Float64Var(&s.distance)
	app.Flag("debug", "Add debug information to SVG output").Envar("RMLINES_DEBUG").BoolVar(&s.debug)
	app.Flag("scale", "Scale for PNG output").Default("1").Envar("RMLINES_SCALE").Float64Var(&s.scale)

	svg := app.Command("svg", "Convert .lines files to SVG").Default()
	svgFiles := svg.Arg("files", "Input files, '-' for stdin").Required().Strings()

	png := app.Command("png", "Convert .lines files to PNG")
	pngFiles := png.Arg("files", "Input files, '-' for stdin").Required().Strings()

	pdf := app.Command("pdf", "Convert .lines files to a single PDF")
	var (
		pdfName  = pdf.Flag("name", "Name of the PDF file").Short('n').String()
		pdfFiles = pdf.Arg("files", "Input files, one page each, '-' for stdin").Required().Strings()
	)

	notebook := app.Command("notebook", "Convert notebooks from a tablet directory to PDF")
	var (
		nbDir = notebook.Arg("dir", "Directory with notebooks").Required().ExistingDir()
		nbIDs = notebook.Arg("ids", "Notebook IDs").Required().Strings()
	)

	info := app.Command("info", "Show the contents of .lines files")
	var (
		verbose   = info.Flag("verbose", "Show details for each line").Short('v').Bool()
		infoFiles = info.Arg("files", "Input files, '-' for stdin").Required().Strings()
	)

	check := app.Command("check", "Validate .lines files")
	checkFiles := check.Arg("files", "Input files, '-' for stdin").Required().Strings()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	app.FatalIfError(rmlines.SetLogLevel(*logLevel), "")

	var err error
	switch command {
	case "svg":
		err = doConvert(s, *svgFiles, svgFormat)
	case "png":
		err = doConvert(s, *pngFiles, pngFormat)
	case "pdf":
		err = doPDF(s, *pdfFiles, *pdfName)
	case "notebook":
		err = doNotebook(s, *nbDir, *nbIDs)
	case "info":
		err = doInfo(*infoFiles, *verbose)
	case "check":
		err = doCheck(*checkFiles)
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func setupContext(s settings) (*render.Context, error) {
	palettes, err := render.ParsePalettes(s.colors)
	if err != nil {
		return nil, err
	}

	rc := render.NewContext(palettes...)
	rc.AutoCrop = s.crop
	rc.PadCrop = s.pad
	rc.Threshold = s.distance
	rc.Debug = s.debug
	rc.Scale = s.scale
	return rc, nil
}
