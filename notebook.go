package rmlines

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/akeil/rmlines/internal/logging"
	"github.com/akeil/rmlines/pkg/lines"
)

// Notebook is a handwritten notebook as it is stored on the tablet.
//
// The notebook directory holds "<id>.metadata" and "<id>.content" JSON
// files, and the drawings in "<id>/<page-id>.rm".
type Notebook struct {
	ID      string
	Meta    Metadata
	Content Content
	// Pages holds one page per entry in Content.Pages, in the same order.
	Pages []lines.Page
}

// Metadata is the part of the "<id>.metadata" file that is used here.
type Metadata struct {
	// VisibleName is the display name for this notebook.
	VisibleName string `json:"visibleName"`
	Type        string `json:"type"`
	// Version is incremented with each change to the notebook.
	Version uint `json:"version"`
}

// Content is the part of the "<id>.content" file that is used here.
type Content struct {
	FileType  string   `json:"fileType"`
	PageCount int      `json:"pageCount"`
	Pages     []string `json:"pages"`
}

// Name is the visible name of the notebook, or the ID if there is none.
func (n *Notebook) Name() string {
	if n.Meta.VisibleName != "" {
		return n.Meta.VisibleName
	}
	return n.ID
}

// ReadNotebook reads the notebook with the given ID from the base directory
// and decodes all pages.
//
// Pages without a drawing are returned as empty pages.
func ReadNotebook(base, id string) (*Notebook, error) {
	n := &Notebook{ID: id}

	err := readJSON(base, id+".metadata", &n.Meta)
	if err != nil {
		return nil, err
	}

	err = readJSON(base, id+".content", &n.Content)
	if err != nil {
		return nil, err
	}

	if n.Content.FileType != "" && n.Content.FileType != "notebook" {
		logging.Warning("Notebook %q has file type %q, only drawings are read", id, n.Content.FileType)
	}

	n.Pages = make([]lines.Page, len(n.Content.Pages))
	for i, pageID := range n.Content.Pages {
		path := filepath.Join(base, id, pageID+".rm")
		d, err := lines.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("No drawing for page %d of notebook %q", i, id)
			continue
		} else if err != nil {
			return nil, fmt.Errorf("page %d of notebook %q: %w", i, id, err)
		}
		if d.NumPages() != 1 {
			return nil, fmt.Errorf("page %d of notebook %q has %d pages", i, id, d.NumPages())
		}
		n.Pages[i] = d.Pages[0]
	}

	return n, nil
}

func readJSON(base, filename string, dst interface{}) error {
	path := filepath.Join(base, filename)
	r, err := os.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	dec := json.NewDecoder(r)
	err = dec.Decode(dst)
	if err != nil {
		return fmt.Errorf("cannot read %q: %w", path, err)
	}

	return nil
}
