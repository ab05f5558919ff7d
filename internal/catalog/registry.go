// Package catalog holds the in-memory registry of library items.
package catalog

import (
	"iter"
	"sync"

	"github.com/idilsaglam/shelf/internal/logger"
	"github.com/idilsaglam/shelf/internal/model"
)

// Operations is the public surface the menu loop and the TUI work against.
type Operations interface {
	Add(item model.Item) model.Result
	Items() []model.Item
	FindByID(id int) (model.Item, bool)
	Borrow(id int) model.Result
	Return(id int) model.Result
}

// Registry keeps items in insertion order. No two items share an id.
// Safe for concurrent use; the lock makes add/borrow/return atomic with respect to each other.
// Items handed out by Items, All and FindByID are the live entries, not copies.
// Their status may change under a concurrent Borrow or Return; read it through
// IsAvailable, which every item kind makes safe to call at any time.
type Registry struct {
	mu    sync.RWMutex
	items []model.Item
	log   logger.Logger
}

var _ Operations = (*Registry)(nil)

// NewRegistry returns an empty registry. A nil logger discards.
func NewRegistry(log logger.Logger) *Registry {
	if log == nil {
		log = logger.Discard()
	}
	return &Registry{log: log}
}

// Add appends the item unless its id is already taken.
func (r *Registry) Add(item model.Item) model.Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.find(item.ID()); ok {
		r.log.Info("add rejected: duplicate id ", item.ID())
		return model.Result{Outcome: model.Duplicate, ID: item.ID()}
	}
	r.items = append(r.items, item)
	r.log.Info("added item ", item.ID())
	return model.Result{Outcome: model.Added, ID: item.ID(), Item: item}
}

// Items returns a snapshot of the catalog in insertion order.
func (r *Registry) Items() []model.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Item, len(r.items))
	copy(out, r.items)
	return out
}

// All yields the items in insertion order. Each range starts over and sees the latest state.
func (r *Registry) All() iter.Seq[model.Item] {
	return func(yield func(model.Item) bool) {
		for _, it := range r.Items() {
			if !yield(it) {
				return
			}
		}
	}
}

// FindByID returns the first item with the given id.
func (r *Registry) FindByID(id int) (model.Item, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.find(id)
}

// Borrow lends the item with the given id.
func (r *Registry) Borrow(id int) model.Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.find(id)
	if !ok {
		r.log.Info("borrow: no item ", id)
		return model.Result{Outcome: model.NotFound, ID: id}
	}
	res := it.Borrow()
	r.log.Info("borrow ", id, ": ", res.Outcome)
	return res
}

// Return takes the item with the given id back in.
// An item that is not out comes back as NotBorrowed and is left untouched.
func (r *Registry) Return(id int) model.Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.find(id)
	if !ok {
		r.log.Info("return: no item ", id)
		return model.Result{Outcome: model.NotFound, ID: id}
	}
	res := it.Return()
	r.log.Info("return ", id, ": ", res.Outcome)
	return res
}

// Len is the number of items held.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Stats counts available and borrowed items under the read lock.
func (r *Registry) Stats() (available, borrowed int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Stats(r.items)
}

// Stats counts available and borrowed items in a listing.
func Stats(items []model.Item) (available, borrowed int) {
	for _, it := range items {
		if it.IsAvailable() {
			available++
		} else {
			borrowed++
		}
	}
	return
}

func (r *Registry) find(id int) (model.Item, bool) {
	for _, it := range r.items {
		if it.ID() == id {
			return it, true
		}
	}
	return nil, false
}
