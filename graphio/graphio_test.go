package graphio_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/katalvlaran/boruvka/core"
	"github.com/katalvlaran/boruvka/graphio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleEdgeList = `# triangle plus a lone vertex
a b 3
b c 1.5

c a
d
`

// TestReadEdgeList covers weights, defaults, lone vertices and comments.
func TestReadEdgeList(t *testing.T) {
	g, err := graphio.ReadEdgeList(strings.NewReader(sampleEdgeList))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c", "d"}, g.Vertices())
	require.Equal(t, 3, g.EdgeCount())
	e3, err := g.GetEdge("e3")
	require.NoError(t, err)
	assert.Equal(t, 1.0, e3.Weight)
	assert.Equal(t, 5.5, g.TotalWeight())
	assert.True(t, g.Weighted())
	assert.True(t, g.Multigraph())
	assert.True(t, g.Looped())
}

// TestReadEdgeList_Errors: every bad line is reported.
func TestReadEdgeList_Errors(t *testing.T) {
	in := "a b x\na b 1\na b c d\na b NaN\n"
	_, err := graphio.ReadEdgeList(strings.NewReader(in))
	require.Error(t, err)
	assert.ErrorIs(t, err, graphio.ErrBadFormat)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 3)
	assert.Contains(t, err.Error(), "line 1")
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), "line 4")
}

// TestYAML_RoundTrip writes a graph and reads it back.
func TestYAML_RoundTrip(t *testing.T) {
	g, err := graphio.ReadEdgeList(strings.NewReader(sampleEdgeList))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteYAML(&buf, g))
	assert.Contains(t, buf.String(), "from: a")

	h, err := graphio.ReadYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Vertices(), h.Vertices())
	assert.Equal(t, edgeTriples(g), edgeTriples(h))
}

// TestReadYAML_Errors covers decode failures and bad entries.
func TestReadYAML_Errors(t *testing.T) {
	_, err := graphio.ReadYAML(strings.NewReader("edges: [1, 2"))
	assert.ErrorIs(t, err, graphio.ErrBadFormat)

	doc := `
vertices: ["", x]
edges:
  - {from: a, to: b, weight: 1}
  - {from: "", to: b, weight: 2}
  - {from: a, to: c, weight: .inf}
`
	_, err = graphio.ReadYAML(strings.NewReader(doc))
	require.Error(t, err)
	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 3)
	assert.ErrorIs(t, err, graphio.ErrBadFormat)

	g, err := graphio.ReadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, g.VertexCount())
}

// TestEdgeList_RoundTrip keeps lone vertices.
func TestEdgeList_RoundTrip(t *testing.T) {
	g, err := graphio.ReadEdgeList(strings.NewReader(sampleEdgeList))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteEdgeList(&buf, g))
	assert.Equal(t, "a b 3\nb c 1.5\nc a 1\nd\n", buf.String())

	h, err := graphio.ReadEdgeList(&buf)
	require.NoError(t, err)
	assert.Equal(t, edgeTriples(g), edgeTriples(h))
	assert.True(t, h.HasVertex("d"))
}

// TestLoadSave dispatches on file extension.
func TestLoadSave(t *testing.T) {
	g, err := graphio.ReadEdgeList(strings.NewReader(sampleEdgeList))
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{"g.yaml", "g.yml", "g.txt"} {
		path := filepath.Join(dir, name)
		require.NoError(t, graphio.Save(path, g))
		h, err := graphio.Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, edgeTriples(g), edgeTriples(h), name)
	}

	_, err = graphio.Load(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)

	assert.Equal(t, graphio.FormatYAML, graphio.FormatOf("x.YML"))
	assert.Equal(t, graphio.FormatEdgeList, graphio.FormatOf("x.edges"))

	_, err = graphio.Read(strings.NewReader(""), graphio.Format("json"))
	assert.ErrorIs(t, err, graphio.ErrUnknownFormat)
	assert.ErrorIs(t, graphio.Write(&bytes.Buffer{}, g, "json"), graphio.ErrUnknownFormat)
}

// TestWriteResult covers both result encodings.
func TestWriteResult(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("a", "b", 2)
	require.NoError(t, err)
	e, err := g.GetEdge("e1")
	require.NoError(t, err)

	r := graphio.NewResult("boruvka", g, []core.Edge{*e}, 2)

	var txt bytes.Buffer
	require.NoError(t, graphio.WriteResult(&txt, r, graphio.FormatEdgeList))
	assert.Equal(t, "# boruvka: 2 vertices, 1 edges, total 2\na b 2\n", txt.String())

	// the text form loads back as the tree
	tree, err := graphio.ReadEdgeList(&txt)
	require.NoError(t, err)
	assert.Equal(t, 1, tree.EdgeCount())

	var y bytes.Buffer
	require.NoError(t, graphio.WriteResult(&y, r, graphio.FormatYAML))
	assert.Contains(t, y.String(), "algorithm: boruvka")
	assert.Contains(t, y.String(), "total: 2")

	assert.Contains(t, y.String(), "vertex_count: 2")

	assert.ErrorIs(t, graphio.WriteResult(&y, r, "json"), graphio.ErrUnknownFormat)
}

// TestWriteResult_YAMLLoadsBack reads a YAML result as a graph document.
func TestWriteResult_YAMLLoadsBack(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	for _, e := range []struct {
		u, v string
		w    float64
	}{{"a", "b", 1}, {"b", "c", 2}, {"a", "c", 3}} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}
	e1, err := g.GetEdge("e1")
	require.NoError(t, err)
	e2, err := g.GetEdge("e2")
	require.NoError(t, err)

	var y bytes.Buffer
	r := graphio.NewResult("kruskal", g, []core.Edge{*e1, *e2}, 3)
	require.NoError(t, graphio.WriteResult(&y, r, graphio.FormatYAML))

	tree, err := graphio.ReadYAML(&y)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, tree.Vertices())
	assert.Equal(t, []string{"e1:a-b", "e2:b-c"}, edgeTriples(tree))
	assert.Equal(t, 3.0, tree.TotalWeight())
}

func edgeTriples(g *core.Graph) []string {
	var out []string
	for _, e := range g.Edges() {
		out = append(out, e.ID+":"+e.From+"-"+e.To)
	}

	return out
}
