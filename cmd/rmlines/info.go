package main

import (
	"fmt"

	"github.com/akeil/rmlines/pkg/lines"
)

func doInfo(paths []string, verbose bool) error {
	for _, path := range paths {
		d, err := readDocument(path)
		if err != nil {
			return fmt.Errorf("read %q: %w", path, err)
		}
		showInfo(path, d, verbose)
	}
	return nil
}

func showInfo(path string, d *lines.Document, verbose bool) {
	fmt.Println(path)
	fmt.Printf("  version %d, %d page(s)\n", d.Version, d.NumPages())

	for i := range d.Pages {
		p := &d.Pages[i]
		numLines := 0
		numPoints := 0
		for _, l := range p.Layers {
			numLines += len(l.Lines)
			for j := range l.Lines {
				numPoints += l.Lines[j].NumPoints()
			}
		}
		fmt.Printf("  page %d: %d layer(s), %d line(s), %d point(s)\n", i+1, p.NumLayers(), numLines, numPoints)

		b := p.Bounds(false)
		if !b.Empty() {
			fmt.Printf("  bounds: %.1f,%.1f - %.1f,%.1f\n", b.MinX, b.MinY, b.MaxX, b.MaxY)
		}

		if !verbose {
			continue
		}
		for j, layer := range p.Layers {
			fmt.Printf("  layer %d\n", j+1)
			for k := range layer.Lines {
				l := &layer.Lines[k]
				fmt.Printf("    %-14v %-6v %5d points, length %8.1f, width %5.2f\n",
					l.BrushType, l.Color, l.NumPoints(), l.Length(), l.AverageWidth())
			}
		}
	}
}

func doCheck(paths []string) error {
	failed := 0
	for _, path := range paths {
		d, err := readDocument(path)
		if err == nil {
			err = d.Validate()
		}

		if err != nil {
			failed++
			fmt.Printf("%v %v: %v\n", crossmark, path, err)
			continue
		}
		fmt.Printf("%v %v\n", checkmark, path)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) are invalid", failed, len(paths))
	}
	return nil
}
