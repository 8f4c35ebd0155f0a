package content

import (
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/iver-m/waytour/internal/document"
)

// LoadDocuments reads every regular file under dir in fsys, parses each as a
// tour document, and builds the model. File names are processed in sorted
// order so parse errors are reported deterministically; the final waypoint
// order comes from the front matter sort keys, not the file names.
func LoadDocuments(fsys fs.FS, dir string, sink HUDSink) (*Model, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read tour directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	docs := make([]*document.Document, 0, len(names))
	for _, name := range names {
		p := path.Join(dir, name)
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		doc, err := document.Parse(p, string(data))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return Build(docs, sink)
}
