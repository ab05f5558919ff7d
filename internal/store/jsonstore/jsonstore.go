package jsonstore

import (
	"errors"
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/idilsaglam/shelf/internal/catalog"
	"github.com/idilsaglam/shelf/internal/model"
)

// Seed file for pre-populating the catalog at startup.
// Read-only: catalog changes are never written back.

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Record is one book in a seed file. Author may be omitted.
type Record struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Author   *string `json:"author,omitempty"`
	Borrowed bool    `json:"borrowed,omitempty"`
}

// Book builds the catalog item for this record.
func (r Record) Book() *model.Book {
	if r.Author == nil {
		return model.NewBook(r.ID, r.Title)
	}
	return model.NewBook(r.ID, r.Title, *r.Author)
}

// Load reads records from path. A missing file is an empty seed.
func Load(path string) ([]Record, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Record{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var recs []Record
	if err := json.Unmarshal(b, &recs); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return recs, nil
}

// Seed adds every record to the catalog, lending the ones marked borrowed.
// Results come back in record order; a borrowed record yields two.
func Seed(ops catalog.Operations, recs []Record) []model.Result {
	out := make([]model.Result, 0, len(recs))
	for _, r := range recs {
		res := ops.Add(r.Book())
		out = append(out, res)
		if res.Outcome == model.Added && r.Borrowed {
			out = append(out, ops.Borrow(r.ID))
		}
	}
	return out
}
