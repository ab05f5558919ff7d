package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/shelf/internal/catalog"
	"github.com/idilsaglam/shelf/internal/model"
)

func writeSeed(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "books.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad(t *testing.T) {
	p := writeSeed(t, `[
		{"id": 1, "title": "Dune", "author": "Herbert"},
		{"id": 2, "title": "Emma", "borrowed": true}
	]`)

	recs, err := Load(p)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "Herbert", recs[0].Book().Author())
	assert.Equal(t, model.DefaultAuthor, recs[1].Book().Author())
	assert.True(t, recs[1].Borrowed)
}

func TestLoad_MissingFile(t *testing.T) {
	recs, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(writeSeed(t, `{"id": 1`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json unmarshal")
}

func TestSeed(t *testing.T) {
	author := "Herbert"
	recs := []Record{
		{ID: 1, Title: "Dune", Author: &author},
		{ID: 2, Title: "Emma", Borrowed: true},
		{ID: 1, Title: "Dup", Borrowed: true},
	}
	r := catalog.NewRegistry(nil)

	results := Seed(r, recs)

	outcomes := make([]model.Outcome, 0, len(results))
	for _, res := range results {
		outcomes = append(outcomes, res.Outcome)
	}
	assert.Equal(t, []model.Outcome{model.Added, model.Added, model.Lent, model.Duplicate}, outcomes)

	avail, out := r.Stats()
	assert.Equal(t, 1, avail)
	assert.Equal(t, 1, out)
	it, ok := r.FindByID(1)
	require.True(t, ok)
	assert.Equal(t, "Dune", it.Title())
	assert.True(t, it.IsAvailable())
}
