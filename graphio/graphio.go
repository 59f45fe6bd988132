package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/boruvka/core"
)

// Format selects a graph encoding.
type Format string

const (
	// FormatYAML is the YAML document format.
	FormatYAML Format = "yaml"
	// FormatEdgeList is the whitespace-separated edge list format.
	FormatEdgeList Format = "edgelist"
)

var (
	// ErrBadFormat marks a malformed input record.
	ErrBadFormat = errors.New("graphio: bad format")

	// ErrUnknownFormat is returned for a Format other than FormatYAML or
	// FormatEdgeList.
	ErrUnknownFormat = errors.New("graphio: unknown format")
)

// graphOptions are the modes of every loaded graph.
var graphOptions = []core.GraphOption{core.WithWeighted(), core.WithMultiEdges(), core.WithLoops()}

// FormatOf infers the format from a file name: ".yaml" and ".yml" are YAML,
// anything else is an edge list.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatEdgeList
	}
}

// Read decodes a graph from r in format f.
func Read(r io.Reader, f Format) (*core.Graph, error) {
	switch f {
	case FormatYAML:
		return ReadYAML(r)
	case FormatEdgeList:
		return ReadEdgeList(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Write encodes g to w in format f.
func Write(w io.Writer, g *core.Graph, f Format) error {
	switch f {
	case FormatYAML:
		return WriteYAML(w, g)
	case FormatEdgeList:
		return WriteEdgeList(w, g)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Load reads the graph stored at path; "-" reads standard input as an edge
// list.
func Load(path string) (*core.Graph, error) {
	if path == "-" {
		return ReadEdgeList(os.Stdin)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	g, err := Read(fh, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Save writes g to path in the format implied by its extension.
func Save(path string, g *core.Graph) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = Write(fh, g, FormatOf(path)); err != nil {
		fh.Close()
		return err
	}

	return fh.Close()
}
