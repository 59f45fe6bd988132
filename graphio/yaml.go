package graphio

import (
	"fmt"
	"io"
	"math"

	"github.com/hashicorp/go-multierror"
	"github.com/katalvlaran/boruvka/core"
	"gopkg.in/yaml.v3"
)

// Document is the YAML form of a graph.
type Document struct {
	Vertices []string  `yaml:"vertices,omitempty"`
	Edges    []EdgeDoc `yaml:"edges"`
}

// EdgeDoc is the YAML form of one edge. ID is written on output and
// ignored on input, where IDs follow document order.
type EdgeDoc struct {
	ID     string  `yaml:"id,omitempty"`
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

// ReadYAML decodes a Document from r and builds the graph.
func ReadYAML(r io.Reader) (*core.Graph, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}

	return doc.Graph()
}

// Graph builds a graph from the document, reporting every bad vertex or edge.
func (d Document) Graph() (*core.Graph, error) {
	g := core.NewGraph(graphOptions...)
	var result *multierror.Error
	for i, v := range d.Vertices {
		if err := g.AddVertex(v); err != nil {
			result = multierror.Append(result, fmt.Errorf("%w: vertices[%d]: %v", ErrBadFormat, i, err))
		}
	}
	for i, e := range d.Edges {
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			result = multierror.Append(result, fmt.Errorf("%w: edges[%d]: weight %g", ErrBadFormat, i, e.Weight))
			continue
		}
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			result = multierror.Append(result, fmt.Errorf("%w: edges[%d]: %v", ErrBadFormat, i, err))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return g, nil
}

// DocumentOf returns the YAML form of g: sorted vertices, edges by ID.
func DocumentOf(g *core.Graph) Document {
	edges := g.Edges()
	doc := Document{Vertices: g.Vertices(), Edges: make([]EdgeDoc, 0, len(edges))}
	for _, e := range edges {
		doc.Edges = append(doc.Edges, EdgeDoc{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight})
	}

	return doc
}

// WriteYAML encodes g as a Document.
func WriteYAML(w io.Writer, g *core.Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(DocumentOf(g)); err != nil {
		return err
	}

	return enc.Close()
}
