package ingest_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/katalvlaran/tonewave/digraph"
	"github.com/katalvlaran/tonewave/ingest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReadEdgeList_FirstSeenIndexing: dense indices follow appearance
// order, sources before targets, handles and numeric IDs mixed freely.
func TestReadEdgeList_FirstSeenIndexing(t *testing.T) {
	in := "# raw export\n@alice @bob\n42 @alice\n@bob 42\n"
	d, err := ingest.ReadEdgeList(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"@alice", "@bob", "42"}, d.Nodes)
	assert.Equal(t, map[string]int{"@alice": 0, "@bob": 1, "42": 2}, d.Index)
	assert.Equal(t, []digraph.Edge{{U: 0, V: 1}, {U: 2, V: 0}, {U: 1, V: 2}}, d.Edges)
	assert.Equal(t, 3, d.N())
}

// TestReadEdgeList_DuplicatesPreserved: repeated pairs stay repeated;
// the engine counts them independently in the mean.
func TestReadEdgeList_DuplicatesPreserved(t *testing.T) {
	d, err := ingest.ReadEdgeList(strings.NewReader("a b\na b\n"))
	require.NoError(t, err)
	assert.Len(t, d.Edges, 2)
}

// TestReadEdgeList_BadLine rejects single-token lines with context.
func TestReadEdgeList_BadLine(t *testing.T) {
	_, err := ingest.ReadEdgeList(strings.NewReader("a b\nlonely\n"))
	require.ErrorIs(t, err, ingest.ErrBadEdgeLine)
	assert.Contains(t, err.Error(), "line 2")
}

// TestDataset_Graph round-trips into the engine's digraph with
// predecessor order matching edge order.
func TestDataset_Graph(t *testing.T) {
	d, err := ingest.ReadEdgeList(strings.NewReader("a b\nb c\nc a\na c\n"))
	require.NoError(t, err)

	g, err := d.Graph()
	require.NoError(t, err)
	assert.Equal(t, 3, g.N())
	assert.Equal(t, []int{1, 0}, g.Preds(2), "preds of c: b then a, edge order")
}

// TestDataset_States: scored users get their score, unknown users the
// neutral default 0.0.
func TestDataset_States(t *testing.T) {
	d, err := ingest.ReadEdgeList(strings.NewReader("a b\nb c\n"))
	require.NoError(t, err)

	vals := d.States(map[string]float64{"a": 0.8, "c": -0.4})
	assert.Equal(t, []float64{0.8, 0.0, -0.4}, vals)
}

// TestDataset_WriteIndex emits the JSON companion mapping.
func TestDataset_WriteIndex(t *testing.T) {
	d, err := ingest.ReadEdgeList(strings.NewReader("a b\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, d.WriteIndex(&buf))

	var got map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, map[string]int{"a": 0, "b": 1}, got)
}

// TestReadScoresCSV_HeaderMatching: columns found by name, any order,
// case-insensitively; extra columns ignored; last duplicate wins.
func TestReadScoresCSV_HeaderMatching(t *testing.T) {
	in := "Sentiment,extra,USER_ID\n0.5,x,alice\n-0.25,y,bob\n0.9,z,alice\n"
	scores, err := ingest.ReadScoresCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"alice": 0.9, "bob": -0.25}, scores)
}

// TestReadScoresCSV_Errors covers the column and value taxonomy.
func TestReadScoresCSV_Errors(t *testing.T) {
	_, err := ingest.ReadScoresCSV(strings.NewReader("user_id,score\nalice,0.5\n"))
	assert.ErrorIs(t, err, ingest.ErrMissingColumn)

	_, err = ingest.ReadScoresCSV(strings.NewReader("handle,sentiment\nalice,0.5\n"))
	assert.ErrorIs(t, err, ingest.ErrMissingColumn)

	_, err = ingest.ReadScoresCSV(strings.NewReader("user_id,sentiment\nalice,warm\n"))
	assert.ErrorIs(t, err, ingest.ErrBadScore)

	_, err = ingest.ReadScoresCSV(strings.NewReader("user_id,sentiment\nalice\n"))
	assert.ErrorIs(t, err, ingest.ErrMissingColumn)
}

// TestPipeline_EdgeListToRunInputs is the end-to-end preparation path:
// raw IDs + CSV scores → graph + aligned state vector.
func TestPipeline_EdgeListToRunInputs(t *testing.T) {
	d, err := ingest.ReadEdgeList(strings.NewReader("u1 u2\nu2 u3\nu3 u1\nu1 u3\n"))
	require.NoError(t, err)

	scores, err := ingest.ReadScoresCSV(strings.NewReader(
		"user_id,sentiment\nu1,0.5\nu2,-0.6\n"))
	require.NoError(t, err)

	g, err := d.Graph()
	require.NoError(t, err)
	vals := d.States(scores)

	assert.Equal(t, g.N(), len(vals))
	assert.Equal(t, []float64{0.5, -0.6, 0.0}, vals)
}
