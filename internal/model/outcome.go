package model

import "fmt"

// Outcome tells the caller what a catalog operation did.
// None of these are errors; a duplicate id or a missing book is a normal answer.
type Outcome int

const (
	Added Outcome = iota
	Duplicate
	Lent
	AlreadyBorrowed
	Returned
	NotBorrowed
	NotFound
)

var outcomeNames = [...]string{
	Added:           "added",
	Duplicate:       "duplicate",
	Lent:            "borrowed",
	AlreadyBorrowed: "already-borrowed",
	Returned:        "returned",
	NotBorrowed:     "not-borrowed",
	NotFound:        "not-found",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return fmt.Sprintf("outcome(%d)", int(o))
	}
	return outcomeNames[o]
}

// Result is the reported outcome of one operation.
// Item is nil when the id did not resolve to anything.
type Result struct {
	Outcome Outcome
	ID      int
	Item    Item
}

// OK reports whether the operation changed the catalog.
func (r Result) OK() bool {
	switch r.Outcome {
	case Added, Lent, Returned:
		return true
	}
	return false
}

// Message is the notice shown to the user.
func (r Result) Message() string {
	title := ""
	if r.Item != nil {
		title = r.Item.Title()
	}
	switch r.Outcome {
	case Added:
		return fmt.Sprintf("Added: %v", r.Item)
	case Duplicate:
		return fmt.Sprintf("Book with ID %d already exists.", r.ID)
	case Lent:
		return title + " has been borrowed."
	case AlreadyBorrowed:
		return title + " is already borrowed."
	case Returned:
		return title + " has been returned."
	case NotBorrowed:
		return title + " was not borrowed."
	case NotFound:
		return "Book not found."
	}
	return r.Outcome.String()
}
