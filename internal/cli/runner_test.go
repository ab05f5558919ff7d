package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/shelf/internal/catalog"
	"github.com/idilsaglam/shelf/internal/model"
	"github.com/idilsaglam/shelf/internal/ui"
)

func runScript(t *testing.T, r *catalog.Registry, lines ...string) string {
	t.Helper()
	ui.SetTheme("mono")
	t.Cleanup(func() { ui.SetTheme("classic") })

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	NewMenu(r, in, &out, nil).Run()
	return out.String()
}

func TestMenu_DuneSession(t *testing.T) {
	r := catalog.NewRegistry(nil)
	out := runScript(t, r,
		"1", "Dune", "Herbert", "1",
		"1", "Other", "X", "1",
		"3", "1",
		"3", "1",
		"4", "1",
		"4", "1",
		"5",
	)

	assert.Contains(t, out, "ok Added: 1 - Dune by Herbert [Available]")
	assert.Contains(t, out, "error: Book with ID 1 already exists.")
	assert.Contains(t, out, "ok Dune has been borrowed.")
	assert.Contains(t, out, "• Dune is already borrowed.")
	assert.Contains(t, out, "ok Dune has been returned.")
	assert.Contains(t, out, "• Dune was not borrowed.")
	assert.True(t, strings.HasSuffix(out, "Exiting Library Management System. Goodbye!\n"))

	require.Equal(t, 1, r.Len())
	it, _ := r.FindByID(1)
	assert.Equal(t, "Dune", it.Title())
	assert.True(t, it.IsAvailable())
}

func TestMenu_BlankAuthorIsUnknown(t *testing.T) {
	r := catalog.NewRegistry(nil)
	runScript(t, r, "1", "Beowulf", "", "3", "5")

	it, ok := r.FindByID(3)
	require.True(t, ok)
	assert.Equal(t, model.DefaultAuthor, it.(*model.Book).Author())
}

func TestMenu_RejectsBadInput(t *testing.T) {
	r := catalog.NewRegistry(nil)
	out := runScript(t, r,
		"abc",
		"9",
		"1", "Dune", "Herbert", "one", "1",
		"3", "x", "2",
		"5",
	)

	assert.Contains(t, out, "error: not a number: abc")
	assert.Contains(t, out, "error: Invalid choice. Please try again.")
	assert.Contains(t, out, "error: not a number: one")
	assert.Contains(t, out, "error: not a number: x")
	assert.Contains(t, out, "error: Book not found.")
	assert.Equal(t, 1, r.Len())
}

func TestMenu_ListKeepsInsertionOrder(t *testing.T) {
	r := catalog.NewRegistry(nil)
	r.Add(model.NewBook(9, "Zed"))
	r.Add(model.NewBook(2, "Alpha"))
	r.Borrow(9)

	out := runScript(t, r, "2", "5")

	zed := strings.Index(out, "9 - Zed by Unknown")
	alpha := strings.Index(out, "2 - Alpha by Unknown")
	require.NotEqual(t, -1, zed)
	require.NotEqual(t, -1, alpha)
	assert.Less(t, zed, alpha)
	assert.Contains(t, out, " 1. [x] 9 - Zed by Unknown [Borrowed]")
	assert.Contains(t, out, "Total 2")
}

func TestMenu_EOFEndsLoop(t *testing.T) {
	r := catalog.NewRegistry(nil)
	var out bytes.Buffer
	NewMenu(r, strings.NewReader("1\nDune\n"), &out, nil).Run()
	assert.Equal(t, 0, r.Len())
	assert.NotContains(t, out.String(), "Goodbye!")
}

func TestListLines_Empty(t *testing.T) {
	ui.SetTheme("mono")
	t.Cleanup(func() { ui.SetTheme("classic") })
	assert.Equal(t, []string{"no books"}, ListLines(nil))
}
