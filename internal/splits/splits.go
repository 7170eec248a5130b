// Package splits renders an accepted ordering as a LiveSplit run definition
// (.lss) and writes it to disk.
package splits

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/alexisbeaulieu97/rto/internal/catalog"
	rtoerrors "github.com/alexisbeaulieu97/rto/pkg/errors"
)

const (
	// DefaultGameName is the LiveSplit game the generated splits belong to.
	DefaultGameName = "Hollow Knight: Silksong Category Extensions"
	// DefaultCategoryName is the LiveSplit category of the generated splits.
	DefaultCategoryName = "Random Tool Order"
	// DefaultAutoSplitterScript is the auto splitter the optional settings block targets.
	DefaultAutoSplitterScript = "silksong_autosplit_wasm"

	fileMode = 0o644
)

//go:embed templates/run.lss.tmpl
var templateFS embed.FS

var runTemplate = template.Must(template.New("run.lss.tmpl").
	Funcs(template.FuncMap{"escape": Escape}).
	ParseFS(templateFS, "templates/run.lss.tmpl"))

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Options controls the document header and the optional auto splitter block.
type Options struct {
	GameName           string
	CategoryName       string
	AutoSplitter       bool
	AutoSplitterScript string
}

// DefaultOptions returns the settings used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		GameName:           DefaultGameName,
		CategoryName:       DefaultCategoryName,
		AutoSplitter:       true,
		AutoSplitterScript: DefaultAutoSplitterScript,
	}
}

type segment struct {
	Name string
}

type document struct {
	Options
	Segments []segment
}

// Escape replaces the five XML-reserved characters with their entities.
func Escape(text string) string {
	return escaper.Replace(text)
}

// Render writes one segment per item, in order. The ordering is assumed to be
// valid already; it is not re-checked.
func Render(w io.Writer, ordering []catalog.Item, opts Options) error {
	doc := document{Options: opts, Segments: make([]segment, 0, len(ordering))}
	for _, item := range ordering {
		doc.Segments = append(doc.Segments, segment{Name: item.Name})
	}

	if err := runTemplate.Execute(w, doc); err != nil {
		return fmt.Errorf("render splits: %w", err)
	}
	return nil
}

// FileName derives the output name from the first item: apostrophes dropped,
// spaces turned into hyphens, "rto-" prefix and ".lss" suffix.
func FileName(first catalog.Item) string {
	name := strings.ReplaceAll(first.Name, "'", "")
	name = strings.ReplaceAll(name, " ", "-")
	return "rto-" + name + ".lss"
}

// Write renders the ordering into dir and returns the written path. I/O
// failures are reported as WriteError.
func Write(dir string, ordering []catalog.Item, opts Options) (string, error) {
	if len(ordering) == 0 {
		return "", rtoerrors.ErrCatalogEmpty
	}

	var buf bytes.Buffer
	if err := Render(&buf, ordering, opts); err != nil {
		return "", err
	}

	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", rtoerrors.NewWriteError(dir, err)
		}
		dir = wd
	}

	path := filepath.Join(dir, FileName(ordering[0]))
	if err := os.WriteFile(path, buf.Bytes(), fileMode); err != nil {
		return "", rtoerrors.NewWriteError(path, err)
	}
	return path, nil
}
