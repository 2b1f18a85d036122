package main

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/akeil/rmlines"
	"github.com/akeil/rmlines/internal/logging"
	"github.com/akeil/rmlines/pkg/lines"
	"github.com/akeil/rmlines/pkg/render"
)

const stdin = "-"

type format struct {
	ext    string
	render func(rc *render.Context, p *lines.Page, w io.Writer) error
}

var (
	svgFormat = format{ext: ".svg", render: (*render.Context).SVG}
	pngFormat = format{ext: ".png", render: (*render.Context).PNG}
)

// doConvert converts each input file to a separate output file.
// Files are converted concurrently.
func doConvert(s settings, paths []string, f format) error {
	err := checkInputs(paths)
	if err != nil {
		return err
	}

	rc, err := setupContext(s)
	if err != nil {
		return err
	}

	var group errgroup.Group
	for _, path := range paths {
		path := path
		group.Go(func() error {
			return convert(rc, path, s.outDir, f)
		})
	}
	return group.Wait()
}

func convert(rc *render.Context, path, outDir string, f format) error {
	fmt.Printf("%v convert %q\n", ellipsis, path)
	d, err := readDocument(path)
	if err != nil {
		fmt.Printf("%v Failed to read %q: %v\n", crossmark, path, err)
		return err
	}

	// render everything before the output file is created
	var buf bytes.Buffer
	for i := range d.Pages {
		err = f.render(rc, &d.Pages[i], &buf)
		if err != nil {
			fmt.Printf("%v Failed to render %q: %v\n", crossmark, path, err)
			return err
		}

		out := filepath.Join(outDir, outputName(path, i, len(d.Pages))+f.ext)
		err = ioutil.WriteFile(out, buf.Bytes(), 0644)
		if err != nil {
			return err
		}
		buf.Reset()
		fmt.Printf("%v %q saved as %q.\n", checkmark, path, out)
	}

	return nil
}

// doPDF renders all input files as pages of a single PDF document.
func doPDF(s settings, paths []string, name string) error {
	err := checkInputs(paths)
	if err != nil {
		return err
	}

	rc, err := setupContext(s)
	if err != nil {
		return err
	}

	docs := make([]*lines.Document, len(paths))
	var group errgroup.Group
	for i, path := range paths {
		i, path := i, path
		group.Go(func() error {
			d, err := readDocument(path)
			if err != nil {
				return fmt.Errorf("read %q: %w", path, err)
			}
			docs[i] = d
			return nil
		})
	}
	err = group.Wait()
	if err != nil {
		return err
	}

	var pages []lines.Page
	for _, d := range docs {
		pages = append(pages, d.Pages...)
	}

	if name == "" {
		name = outputName(paths[0], 0, 1)
	}
	out := filepath.Join(s.outDir, strings.TrimSuffix(name, ".pdf")+".pdf")

	var buf bytes.Buffer
	err = rc.PDF(pages, &buf)
	if err != nil {
		return err
	}

	err = ioutil.WriteFile(out, buf.Bytes(), 0644)
	if err != nil {
		return err
	}
	fmt.Printf("%v %d pages saved as %q.\n", checkmark, len(pages), out)
	return nil
}

// checkInputs rejects input lists that name stdin more than once,
// inputs are read concurrently.
func checkInputs(paths []string) error {
	n := 0
	for _, path := range paths {
		if path == stdin {
			n++
		}
	}
	if n > 1 {
		return fmt.Errorf("stdin (%q) can only be used once, got it %d times", stdin, n)
	}
	return nil
}

// readDocument decodes a .lines file, "-" reads from stdin.
func readDocument(path string) (*lines.Document, error) {
	if path == stdin {
		logging.Debug("Read document from stdin")
		return lines.Decode(os.Stdin)
	}

	logging.Debug("Read document from %q", path)
	return lines.ReadFile(path)
}

// outputName derives the name of an output file from the input path.
// Input from stdin gets a random name.
func outputName(path string, page, numPages int) string {
	var name string
	if path == stdin {
		name = uuid.New().String()
	} else {
		base := filepath.Base(path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	if numPages > 1 {
		name = fmt.Sprintf("%s-%d", name, page+1)
	}
	return name
}

// doNotebook renders each notebook to a PDF named after the notebook.
func doNotebook(s settings, dir string, ids []string) error {
	rc, err := setupContext(s)
	if err != nil {
		return err
	}

	var group errgroup.Group
	for _, id := range ids {
		id := id
		group.Go(func() error {
			return renderNotebook(rc, dir, id, s.outDir)
		})
	}
	return group.Wait()
}

func renderNotebook(rc *render.Context, dir, id, outDir string) error {
	fmt.Printf("%v read notebook %q\n", ellipsis, id)
	n, err := rmlines.ReadNotebook(dir, id)
	if err != nil {
		fmt.Printf("%v Failed to read %q: %v\n", crossmark, id, err)
		return err
	}

	var buf bytes.Buffer
	err = rc.PDF(n.Pages, &buf)
	if err != nil {
		fmt.Printf("%v Failed to render %q: %v\n", crossmark, n.Name(), err)
		return err
	}

	out := filepath.Join(outDir, n.Name()+".pdf")
	err = ioutil.WriteFile(out, buf.Bytes(), 0644)
	if err != nil {
		return err
	}

	fmt.Printf("%v notebook %q saved as %q.\n", checkmark, n.Name(), out)
	return nil
}
