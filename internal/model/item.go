package model

// Status is the borrow state of a catalog item.
type Status int

const (
	Available Status = iota
	Borrowed
)

func (s Status) String() string {
	switch s {
	case Borrowed:
		return "BORROWED"
	default:
		return "AVAILABLE"
	}
}

// Item is what the catalog knows about any entry it holds.
// The set of variants is closed; add a new kind here, not in the registry.
// IsAvailable must be safe to call while another goroutine borrows or returns the item.
type Item interface {
	ID() int
	Title() string
	IsAvailable() bool

	// Borrow and Return run the status transitions of the variant.
	Borrow() Result
	Return() Result

	item()
}
