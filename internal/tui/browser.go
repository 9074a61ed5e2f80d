package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/playgrounds/internal/model"
	"github.com/idilsaglam/playgrounds/internal/ui"
)

// listItem adapts model.TodoItem to bubbles/list.Item
type listItem struct {
	item model.TodoItem
}

func (i listItem) Title() string       { return i.item.Description() }
func (i listItem) Description() string { return i.item.DueDate().OrElse("no due date") }
func (i listItem) FilterValue() string { return i.item.Description() }

// Custom delegate to control how items render (single line)
type itemDelegate struct {
	theme ui.Theme
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	box := d.theme.Muted.Render(d.theme.BoxUnchecked)
	text := it.Title()
	if it.item.Completed() {
		box = d.theme.Success.Render(d.theme.BoxChecked)
		text = d.theme.Muted.Strikethrough(true).Render(text)
	}
	due := d.theme.Muted.Render("(" + it.Description() + ")")

	prefix := "  "
	if index == m.Index() {
		prefix = d.theme.Accent.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s %s", prefix, box, text, due)
}

var toggleBind = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))

// Browser is the Bubble Tea model listing parsed todo items.
type Browser struct {
	list    list.Model
	printer *ui.Printer
	invalid int
	toggles int
	width   int
}

// NewBrowser builds a browser over items. invalid is the number of records
// that failed to parse and is shown in the title.
func NewBrowser(p *ui.Printer, items []model.TodoItem, invalid int) Browser {
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, listItem{item: it})
	}

	t := p.Theme()
	l := list.New(li, itemDelegate{theme: t}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = t.Title
	l.Styles.HelpStyle = t.Muted
	l.Styles.PaginationStyle = t.Muted
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{toggleBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{toggleBind} }

	b := Browser{list: l, printer: p, invalid: invalid, width: 80}
	b.refreshTitle()
	return b
}

// Items returns the current items, reflecting every toggle.
func (b Browser) Items() []model.TodoItem {
	out := make([]model.TodoItem, 0, len(b.list.Items()))
	for _, it := range b.list.Items() {
		if li, ok := it.(listItem); ok {
			out = append(out, li.item)
		}
	}
	return out
}

// Toggles counts toggle key presses that replaced an item.
func (b Browser) Toggles() int { return b.toggles }

func (b *Browser) refreshTitle() {
	t := b.printer.Theme()
	items := b.Items()
	done := 0
	for _, it := range items {
		if it.Completed() {
			done++
		}
	}
	title := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		"Todos",
		t.SymOK, done,
		t.SymPending, len(items)-done,
		"Total", len(items),
	)
	if b.invalid > 0 {
		title += fmt.Sprintf("  %s %d invalid", t.SymFail, b.invalid)
	}
	b.list.Title = title
}

func (b Browser) Init() tea.Cmd { return nil }

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.list.SetSize(msg.Width-4, msg.Height-4)
		return b, nil
	case tea.KeyMsg:
		if b.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "esc":
			return b, tea.Quit
		case " ":
			i := b.list.GlobalIndex()
			if li, ok := b.list.SelectedItem().(listItem); ok {
				b.list.SetItem(i, listItem{item: li.item.Toggled()})
				b.toggles++
				b.refreshTitle()
			}
			return b, nil
		}
	}
	var cmd tea.Cmd
	b.list, cmd = b.list.Update(msg)
	return b, cmd
}

func (b Browser) View() string {
	return b.printer.PanelString(b.printer.Renderer().NewStyle().MaxWidth(b.width - 2).Render(b.list.View()))
}

// Run starts the browser on in/out and returns the final items. The items
// passed in are left as they were.
func Run(p *ui.Printer, items []model.TodoItem, invalid int, in io.Reader, out io.Writer) ([]model.TodoItem, error) {
	prog := tea.NewProgram(NewBrowser(p, items, invalid),
		tea.WithAltScreen(), tea.WithInput(in), tea.WithOutput(out))
	final, err := prog.Run()
	if err != nil {
		return nil, err
	}
	b, ok := final.(Browser)
	if !ok {
		return items, nil
	}
	return b.Items(), nil
}

// Summary lists the items that changed between before and after.
func Summary(before, after []model.TodoItem) []string {
	var lines []string
	for i := range min(len(before), len(after)) {
		if before[i].Completed() != after[i].Completed() {
			lines = append(lines, fmt.Sprintf("%s -> completed: %t", before[i].Description(), after[i].Completed()))
		}
	}
	return lines
}
