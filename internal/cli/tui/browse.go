// Package tui implements the interactive inventory browser: a filterable
// table over the loaded collection with the same derived metrics the list
// command prints, plus delete with an inline confirmation modal.
package tui

import (
	"context"
	"fmt"
	"strings"

	"StockYard/internal/cli/model/view"
	"StockYard/internal/cli/service"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PreConfirmed answers every confirmation with yes. The browse screen asks
// through its own modal before invoking the mutation coordinator, so the
// coordinator's confirmer must not prompt again.
type PreConfirmed struct{}

func (PreConfirmed) Confirm(string) (bool, error) { return true, nil }

type materialsLoaded struct {
	err error
}

type deleteDone struct {
	name string
	err  error
}

// Model is the bubbletea model for the browse screen.
type Model struct {
	ctx context.Context
	inv *service.Inventory
	mut *service.Mutations

	search  textinput.Model
	tbl     table.Model
	visible []view.Item

	filters service.Filters
	loading bool
	// dirty marks a filter change that arrived while a load was in flight;
	// loads are serialized, so the change triggers a follow-up load.
	dirty bool

	status  string
	loadErr error

	confirm *confirmState

	width, height int
}

// New builds the browse model over an inventory that has already completed
// its initial load.
func New(ctx context.Context, inv *service.Inventory, mut *service.Mutations) Model {
	search := textinput.New()
	search.Placeholder = "name, SKU or supplier"
	search.Prompt = "/ "
	search.CharLimit = 64

	tbl := table.New(
		table.WithColumns(tableColumns(defaultWidth)),
		table.WithFocused(true),
		table.WithHeight(defaultTableHeight),
		table.WithStyles(tableStyles()),
	)

	m := Model{
		ctx:     ctx,
		inv:     inv,
		mut:     mut,
		search:  search,
		tbl:     tbl,
		filters: service.Filters{Category: service.FilterAll, Type: service.FilterAll},
		width:   defaultWidth,
	}
	m.refreshRows()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tbl.SetColumns(tableColumns(m.width))
		if h := msg.Height - chromeHeight; h > 3 {
			m.tbl.SetHeight(h)
		}
		return m, nil

	case materialsLoaded:
		m.loading = false
		m.loadErr = msg.err
		if msg.err == nil {
			m.status = ""
		}
		m.refreshRows()
		if m.dirty {
			m.dirty = false
			cmd := m.startLoad()
			return m, cmd
		}
		return m, nil

	case deleteDone:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Delete failed: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Item '%s' deleted successfully!", msg.name)
		}
		m.refreshRows()
		if m.dirty {
			m.dirty = false
			cmd := m.startLoad()
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		return m.updateConfirm(msg)
	}

	if m.search.Focused() {
		switch msg.String() {
		case "esc":
			m.search.SetValue("")
			m.search.Blur()
			m.refreshRows()
			return m, nil
		case "enter":
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.refreshRows()
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "/":
		m.search.Focus()
		return m, textinput.Blink
	case "c":
		m.filters.Category = cycle(m.categoryOptions(), m.filters.Category)
		cmd := m.requestLoad()
		return m, cmd
	case "C":
		m.filters.Category = service.FilterAll
		cmd := m.requestLoad()
		return m, cmd
	case "t":
		m.filters.Type = cycle(m.typeOptions(), m.filters.Type)
		cmd := m.requestLoad()
		return m, cmd
	case "T":
		m.filters.Type = service.FilterAll
		cmd := m.requestLoad()
		return m, cmd
	case "r":
		cmd := m.requestLoad()
		return m, cmd
	case "d":
		// The delete runs through the same single-writer gate as the loads,
		// so the modal stays closed while a load is in flight.
		if m.loading {
			return m, nil
		}
		if it, ok := m.selected(); ok {
			m.confirm = &confirmState{id: it.ID, name: it.Name, focus: confirmFocusCancel}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

// requestLoad starts a load, or queues one when a load is already in flight.
// Loads are serialized so the in-memory collection has a single writer.
func (m *Model) requestLoad() tea.Cmd {
	if m.loading {
		m.dirty = true
		return nil
	}
	return m.startLoad()
}

func (m *Model) startLoad() tea.Cmd {
	m.loading = true
	ctx, inv, filters := m.ctx, m.inv, m.filters
	return func() tea.Msg {
		return materialsLoaded{err: inv.LoadMaterials(ctx, filters)}
	}
}

// deleteCmd dispatches the confirmed delete. The coordinator reloads the
// inventory on success, so this write holds the loading gate exactly like a
// load does; deleteDone releases it and drains any queued load.
func (m *Model) deleteCmd(id int64, name string) tea.Cmd {
	m.loading = true
	ctx, mut := m.ctx, m.mut
	return func() tea.Msg {
		_, err := mut.Delete(ctx, id)
		return deleteDone{name: name, err: err}
	}
}

// refreshRows recomputes the visible subset and rebuilds the table rows.
func (m *Model) refreshRows() {
	m.visible = service.Visible(m.inv.Items(), m.search.Value(), m.filters.Category, m.filters.Type)
	rows := make([]table.Row, 0, len(m.visible))
	for _, it := range m.visible {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", it.ID),
			it.Name,
			it.SKU,
			it.Category,
			it.Type,
			it.Quantity.String() + " " + it.Unit,
			string(it.Status()),
		})
	}
	m.tbl.SetRows(rows)
	if m.tbl.Cursor() >= len(rows) && len(rows) > 0 {
		m.tbl.SetCursor(len(rows) - 1)
	}
}

func (m Model) selected() (view.Item, bool) {
	i := m.tbl.Cursor()
	if i < 0 || i >= len(m.visible) {
		return view.Item{}, false
	}
	return m.visible[i], true
}

func (m Model) categoryOptions() []string {
	return append([]string{service.FilterAll}, m.inv.CategoryNames()...)
}

func (m Model) typeOptions() []string {
	return append([]string{service.FilterAll}, m.inv.TypeOptions()...)
}

// cycle returns the option after current, wrapping around.
func cycle(options []string, current string) string {
	if len(options) == 0 {
		return service.FilterAll
	}
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("StockYard — Construction Inventory"))
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n")
	b.WriteString(styleFilters.Render(fmt.Sprintf("Category: %s   Type: %s", m.filters.Category, m.filters.Type)))
	if m.loading {
		b.WriteString(styleMuted.Render("   loading..."))
	}
	b.WriteString("\n\n")

	if m.confirm != nil {
		b.WriteString(m.confirm.render(m.width))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.tbl.View())
	b.WriteString("\n\n")

	metrics := service.Compute(m.visible)
	b.WriteString(fmt.Sprintf("Total: %d   Value: $%s   Low stock: %d   Critical: %d\n",
		metrics.TotalItems, metrics.TotalValue.StringFixed(2), len(metrics.LowStock), len(metrics.Critical)))
	if len(metrics.Critical) > 0 {
		names := make([]string, 0, len(metrics.Critical))
		for _, it := range metrics.Critical {
			names = append(names, it.Name)
		}
		b.WriteString(styleAlert.Render("! Out of stock: "+strings.Join(names, ", ")) + "\n")
	}

	if m.loadErr != nil {
		b.WriteString(styleAlert.Render(fmt.Sprintf("Load failed: %v", m.loadErr)) + "\n")
	}
	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	b.WriteString(styleMuted.Render("/: search   c/t: cycle filters   r: reload   d: delete   q: quit"))
	return b.String()
}
