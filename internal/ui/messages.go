package ui

import (
	"fmt"
	"io"
)

func OK(w io.Writer, msg string) {
	t := Current()
	fmt.Fprintln(w, t.Success.Render(t.SymOK+" "+msg))
}

func Fail(w io.Writer, msg string) {
	t := Current()
	fmt.Fprintln(w, t.Error.Render(t.SymFail+" "+msg))
}

// Notice is for outcomes that changed nothing but are not failures.
func Notice(w io.Writer, msg string) {
	fmt.Fprintln(w, Current().Pending.Render("• "+msg))
}
