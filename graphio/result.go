package graphio

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/boruvka/core"
	"gopkg.in/yaml.v3"
)

// Result is the serialisable outcome of an MST computation. Its YAML form
// shares the edges key with Document, so a saved result loads back as the tree.
type Result struct {
	Algorithm   string    `yaml:"algorithm"`
	VertexCount int       `yaml:"vertex_count"`
	Total       float64   `yaml:"total"`
	Edges       []EdgeDoc `yaml:"edges"`
}

// NewResult packages an edge set computed on g.
func NewResult(algorithm string, g *core.Graph, edges []core.Edge, total float64) Result {
	r := Result{
		Algorithm:   algorithm,
		VertexCount: g.VertexCount(),
		Total:       total,
		Edges:       make([]EdgeDoc, 0, len(edges)),
	}
	for _, e := range edges {
		r.Edges = append(r.Edges, EdgeDoc{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight})
	}

	return r
}

// WriteResult writes r in format f. The edge list form is a header comment
// followed by the edges, so it loads back as the tree itself.
func WriteResult(w io.Writer, r Result, f Format) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatEdgeList:
		if _, err := fmt.Fprintf(w, "# %s: %d vertices, %d edges, total %s\n",
			r.Algorithm, r.VertexCount, len(r.Edges), strconv.FormatFloat(r.Total, 'g', -1, 64)); err != nil {
			return err
		}
		for _, e := range r.Edges {
			if _, err := fmt.Fprintf(w, "%s %s %s\n", e.From, e.To, strconv.FormatFloat(e.Weight, 'g', -1, 64)); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}
