package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/shelf/internal/catalog"
	"github.com/idilsaglam/shelf/internal/model"
	"github.com/idilsaglam/shelf/internal/ui"
)

// bookItem adapts a catalog item to bubbles/list.Item
type bookItem struct {
	id        int
	title     string
	author    string
	available bool
}

func toListItem(it model.Item) bookItem {
	bi := bookItem{id: it.ID(), title: it.Title(), available: it.IsAvailable()}
	if b, ok := it.(*model.Book); ok {
		bi.author = b.Author()
	}
	return bi
}

func (i bookItem) Title() string       { return i.title }
func (i bookItem) Description() string { return i.author }
func (i bookItem) FilterValue() string { return i.title + " " + i.author }

// Single-line rows: "> ☑ #3 Dune (Herbert)"
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(bookItem)
	if !ok {
		return
	}
	t := ui.Current()

	box := t.Success.Render(t.SymAvailable)
	text := fmt.Sprintf("#%d %s (%s)", it.id, it.title, it.author)
	if !it.available {
		box = t.Pending.Render(t.SymBorrowed)
		text = t.Muted.Render(text)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}

var (
	borrowKey = key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "borrow"))
	returnKey = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "return"))
	addKey    = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
)

// Model is the Bubble Tea model for browsing and lending books.
type Model struct {
	ops  catalog.Operations
	list list.Model

	// Inline add
	adding bool
	ti     textinput.Model
	addErr string

	status    string
	statusErr bool

	width, height int
}

func New(ops catalog.Operations) Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.Current().Title
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("book", "books")
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{borrowKey, returnKey, addKey} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{borrowKey, returnKey, addKey} }

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "id|title|author"
	ti.CharLimit = 200

	m := Model{ops: ops, list: l, ti: ti, width: 80, height: 24}
	m.refresh()
	return m
}

// Run starts the full-screen browser and blocks until the user quits.
func Run(ops catalog.Operations) error {
	_, err := tea.NewProgram(New(ops), tea.WithAltScreen()).Run()
	return err
}

// refresh reloads rows and the header from the catalog.
func (m *Model) refresh() {
	items := m.ops.Items()
	rows := make([]list.Item, 0, len(items))
	for _, it := range items {
		rows = append(rows, toListItem(it))
	}
	m.list.SetItems(rows)

	t := ui.Current()
	avail, out := catalog.Stats(items)
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("Books"),
		t.Success.Render(t.SymAvailable), avail,
		t.Pending.Render(t.SymBorrowed), out,
		t.Accent.Render("Total"), len(items),
	)
}

func (m *Model) apply(res model.Result) {
	m.status = res.Message()
	m.statusErr = !res.OK()
	m.refresh()
}

func (m Model) selected() (bookItem, bool) {
	it, ok := m.list.SelectedItem().(bookItem)
	return it, ok
}

// parseAdd reads "id|title|author"; author may be left off.
func parseAdd(s string) (*model.Book, error) {
	parts := strings.SplitN(s, "|", 3)
	if len(parts) < 2 {
		return nil, fmt.Errorf("expected id|title|author")
	}
	id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("not a number: %s", strings.TrimSpace(parts[0]))
	}
	title := strings.TrimSpace(parts[1])
	if len(parts) == 3 && strings.TrimSpace(parts[2]) != "" {
		return model.NewBook(id, title, strings.TrimSpace(parts[2])), nil
	}
	return model.NewBook(id, title), nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
	}

	// add mode
	if m.adding {
		var cmd tea.Cmd
		if x, ok := msg.(tea.KeyMsg); ok {
			switch x.String() {
			case "enter":
				book, err := parseAdd(m.ti.Value())
				if err != nil {
					m.addErr = err.Error()
					return m, nil
				}
				m.apply(m.ops.Add(book))
				m.ti.SetValue("")
				m.ti.Blur()
				m.adding = false
				m.addErr = ""
				return m, nil
			case "esc":
				m.adding = false
				m.addErr = ""
				m.ti.SetValue("")
				m.ti.Blur()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	if x, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch x.String() {
		case "q", "esc":
			return m, tea.Quit
		case "b":
			if it, ok := m.selected(); ok {
				m.apply(m.ops.Borrow(it.id))
			}
			return m, nil
		case "r":
			if it, ok := m.selected(); ok {
				m.apply(m.ops.Return(it.id))
			}
			return m, nil
		case "a":
			m.adding = true
			m.addErr = ""
			m.ti.SetValue("")
			m.ti.Focus()
			return m, textinput.Blink
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	t := ui.Current()
	listHeight := m.height - 5
	if m.adding {
		listHeight -= 3
	}
	if listHeight < 3 {
		listHeight = 3
	}
	m.list.SetSize(m.width-4, listHeight)

	content := m.list.View()
	if m.status != "" {
		style := t.Success
		if m.statusErr {
			style = t.Pending
		}
		content += "\n" + style.Render(m.status)
	}
	if m.adding {
		bar := lipgloss.NewStyle().Border(t.Border).BorderForeground(t.BorderColor).Padding(0, 1)
		title := "Add book"
		if m.addErr != "" {
			title += " - " + t.Error.Render(m.addErr)
		}
		content += "\n" + bar.Render(title+"\n"+m.ti.View())
	}
	return ui.PanelString([]string{content})
}
