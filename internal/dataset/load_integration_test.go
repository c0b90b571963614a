package dataset

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadCSV_InferredTypes(t *testing.T) {
	path := writeCSV(t, "name,age,score\nAlice,25,1.5\nBob,31,2.25\n")

	ds, err := LoadCSV(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 2, ds.Rows())
	assert.Equal(t, []string{"name", "age", "score"}, ds.ColumnNames())

	name, _ := ds.Column("name")
	assert.Equal(t, TypeText, name.Type)
	assert.Equal(t, "Alice", name.Values[0])

	age, _ := ds.Column("age")
	assert.Equal(t, TypeInt, age.Type)
	assert.Equal(t, int64(25), age.Values[0])

	score, _ := ds.Column("score")
	assert.Equal(t, TypeFloat, score.Type)
	assert.Equal(t, 1.5, score.Values[0])
}

func TestLoadCSV_MissingValues(t *testing.T) {
	path := writeCSV(t, "age\n25\n\n31\n")

	ds, err := LoadCSV(context.Background(), path)
	require.NoError(t, err)

	age, _ := ds.Column("age")
	assert.Nil(t, age.Values[1])
	assert.Equal(t, 1, age.MissingCount())
}

func TestLoadCSV_BadSource(t *testing.T) {
	_, err := LoadCSV(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestLoadCSV_SaveRoundTrip(t *testing.T) {
	path := writeCSV(t, "name,age\nAlice,25\nBob,31\n")

	ds, err := LoadCSV(context.Background(), path)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ds.WriteCSV(&buf))
	assert.Equal(t, "name,age\nAlice,25\nBob,31\n", buf.String())
}

func TestSaveCSV(t *testing.T) {
	ds := &Dataset{Columns: []*Column{
		{Name: "a", Type: TypeInt, Values: []any{int64(1), nil}},
		{Name: "b", Type: TypeText, Values: []any{"x", "y"}},
	}}

	dest := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, ds.SaveCSV(dest))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,x\n,y\n", string(data))
}

func TestSaveCSV_BadDestination(t *testing.T) {
	ds := &Dataset{Columns: []*Column{
		{Name: "a", Type: TypeInt, Values: []any{int64(1)}},
	}}
	err := ds.SaveCSV(filepath.Join(t.TempDir(), "no", "such", "dir", "out.csv"))
	assert.Error(t, err)
}
