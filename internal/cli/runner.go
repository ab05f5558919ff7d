package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/idilsaglam/shelf/internal/catalog"
	"github.com/idilsaglam/shelf/internal/logger"
	"github.com/idilsaglam/shelf/internal/model"
	"github.com/idilsaglam/shelf/internal/ui"
)

// Menu choices, numbered the way they are printed.
const (
	choiceAdd = iota + 1
	choiceList
	choiceBorrow
	choiceReturn
	choiceExit
)

// Menu is the interactive text loop over a catalog.
type Menu struct {
	ops catalog.Operations
	in  *bufio.Scanner
	out io.Writer
	log logger.Logger
}

func NewMenu(ops catalog.Operations, in io.Reader, out io.Writer, log logger.Logger) *Menu {
	if log == nil {
		log = logger.Discard()
	}
	return &Menu{ops: ops, in: bufio.NewScanner(in), out: out, log: log}
}

// Run loops until the user chooses Exit or input ends.
func (m *Menu) Run() {
	for {
		m.printMenu()
		choice, ok := m.readInt("Enter your choice: ")
		if !ok {
			fmt.Fprintln(m.out)
			m.log.Debug("input closed, leaving menu")
			return
		}

		switch choice {
		case choiceAdd:
			if !m.doAdd() {
				return
			}
		case choiceList:
			m.doList()
		case choiceBorrow:
			id, ok := m.readInt("Enter book ID to borrow: ")
			if !ok {
				return
			}
			m.report(m.ops.Borrow(id))
		case choiceReturn:
			id, ok := m.readInt("Enter book ID to return: ")
			if !ok {
				return
			}
			m.report(m.ops.Return(id))
		case choiceExit:
			fmt.Fprintln(m.out, "Exiting Library Management System. Goodbye!")
			return
		default:
			ui.Fail(m.out, "Invalid choice. Please try again.")
		}
	}
}

func (m *Menu) printMenu() {
	t := ui.Current()
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, t.Title.Render("Library Management System:"))
	fmt.Fprintln(m.out, "1. Add Book")
	fmt.Fprintln(m.out, "2. List Books")
	fmt.Fprintln(m.out, "3. Borrow Book")
	fmt.Fprintln(m.out, "4. Return Book")
	fmt.Fprintln(m.out, "5. Exit")
}

// -------------- menu actions ----------------

// doAdd returns false when input ran out mid-form.
func (m *Menu) doAdd() bool {
	title, ok := m.readLine("Enter book title: ")
	if !ok {
		return false
	}
	author, ok := m.readLine("Enter book author: ")
	if !ok {
		return false
	}
	id, ok := m.readInt("Enter book ID: ")
	if !ok {
		return false
	}

	var book *model.Book
	if strings.TrimSpace(author) == "" {
		book = model.NewBook(id, title)
	} else {
		book = model.NewBook(id, title, author)
	}
	m.report(m.ops.Add(book))
	return true
}

func (m *Menu) doList() {
	items := m.ops.Items()
	avail, out := catalog.Stats(items)
	t := ui.Current()

	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Books"),
		t.Success.Render(t.SymAvailable), avail,
		t.Pending.Render(t.SymBorrowed), out,
		t.Accent.Render("Total"), len(items),
	)

	lines := []string{header, t.Muted.Render(ui.ProgressBar(avail, len(items), 28)), ""}
	lines = append(lines, ListLines(items)...)
	ui.Panel(m.out, lines)
}

// ListLines renders one row per item in catalog order.
func ListLines(items []model.Item) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{t.Muted.Render("no books")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		box, style := t.SymAvailable, t.Success
		if !it.IsAvailable() {
			box, style = t.SymBorrowed, t.Pending
		}
		out = append(out, fmt.Sprintf("%s %s %v",
			t.Muted.Render(fmt.Sprintf("%2d.", i+1)), style.Render(box), it))
	}
	return out
}

func (m *Menu) report(res model.Result) {
	switch {
	case res.OK():
		ui.OK(m.out, res.Message())
	case res.Outcome == model.NotFound || res.Outcome == model.Duplicate:
		ui.Fail(m.out, res.Message())
	default:
		ui.Notice(m.out, res.Message())
	}
}

// -------------- input helpers --------------

func (m *Menu) readLine(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimRight(m.in.Text(), "\r"), true
}

// readInt re-prompts until it gets a number. False means input ended.
func (m *Menu) readInt(prompt string) (int, bool) {
	for {
		line, ok := m.readLine(prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return n, true
		}
		m.log.Debug("rejected input ", strconv.Quote(line))
		ui.Fail(m.out, "not a number: "+strings.TrimSpace(line))
	}
}
