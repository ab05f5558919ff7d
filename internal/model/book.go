package model

import (
	"fmt"
	"sync/atomic"
)

// DefaultAuthor is used when a book is created without one.
const DefaultAuthor = "Unknown"

// Book is the only item kind the catalog currently carries.
// Id, title and author never change; status flips atomically so a book
// handed out by the catalog can be read while another goroutine lends it.
type Book struct {
	id     int
	title  string
	author string
	status atomic.Int32
}

// NewBook returns an available book. Author is optional; only the first value is used.
// Nothing is validated: empty titles and any id are accepted as given.
func NewBook(id int, title string, author ...string) *Book {
	a := DefaultAuthor
	if len(author) > 0 {
		a = author[0]
	}
	b := &Book{id: id, title: title, author: a}
	b.status.Store(int32(Available))
	return b
}

func (b *Book) ID() int           { return b.id }
func (b *Book) Title() string     { return b.title }
func (b *Book) Author() string    { return b.author }
func (b *Book) Status() Status    { return Status(b.status.Load()) }
func (b *Book) IsAvailable() bool { return b.Status() == Available }

func (b *Book) item() {}

// Borrow moves the book from Available to Borrowed.
// A second borrow is a no-op reported as AlreadyBorrowed.
func (b *Book) Borrow() Result {
	if !b.status.CompareAndSwap(int32(Available), int32(Borrowed)) {
		return Result{Outcome: AlreadyBorrowed, ID: b.id, Item: b}
	}
	return Result{Outcome: Lent, ID: b.id, Item: b}
}

// Return moves the book from Borrowed back to Available.
func (b *Book) Return() Result {
	if !b.status.CompareAndSwap(int32(Borrowed), int32(Available)) {
		return Result{Outcome: NotBorrowed, ID: b.id, Item: b}
	}
	return Result{Outcome: Returned, ID: b.id, Item: b}
}

// String is the catalog listing row, e.g. "1 - Dune by Herbert [Available]".
func (b *Book) String() string {
	state := "Available"
	if !b.IsAvailable() {
		state = "Borrowed"
	}
	return fmt.Sprintf("%d - %s by %s [%s]", b.id, b.title, b.author, state)
}
