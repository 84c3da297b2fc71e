package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/csandor/daybook/internal/cli/formatter"
	"github.com/csandor/daybook/internal/contract"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Interactive weekly board",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("the board needs a terminal; use `daybook agenda` instead")
			}
			p := tea.NewProgram(newBoardModel(app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}

type boardKeys struct {
	Up       key.Binding
	Down     key.Binding
	Today    key.Binding
	Week     key.Binding
	Weekend  key.Binding
	NextWeek key.Binding
	Open     key.Binding
	Done     key.Binding
	Refresh  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultBoardKeys() boardKeys {
	return boardKeys{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Today:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "move to today")),
		Week:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "move to this week")),
		Weekend:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "move to weekend")),
		NextWeek: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "move to next week")),
		Open:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "unschedule")),
		Done:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "done")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Done, k.Today, k.Help, k.Quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Refresh, k.Quit},
		{k.Today, k.Week, k.Weekend, k.NextWeek, k.Open},
		{k.Done},
	}
}

// boardRow is one rendered line: a section header or a selectable item.
type boardRow struct {
	header string
	item   contract.ItemView
}

func (r boardRow) selectable() bool { return r.header == "" }

type agendaLoadedMsg struct {
	resp *contract.AgendaResponse
	err  error
}

type itemActedMsg struct {
	status string
	err    error
}

type boardModel struct {
	app   *App
	today time.Time

	rows   []boardRow
	cursor int

	loading bool
	status  string
	err     error

	keys boardKeys
	help help.Model
}

func newBoardModel(app *App) *boardModel {
	return &boardModel{
		app:     app,
		today:   app.today(),
		loading: true,
		keys:    defaultBoardKeys(),
		help:    help.New(),
	}
}

func (m *boardModel) Init() tea.Cmd {
	return m.loadAgenda()
}

func (m *boardModel) loadAgenda() tea.Cmd {
	app, today := m.app, m.today
	return func() tea.Msg {
		resp, err := app.Agenda.Agenda(context.Background(), today)
		return agendaLoadedMsg{resp: resp, err: err}
	}
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case agendaLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.rows = buildBoardRows(msg.resp)
		m.clampCursor()
		return m, nil

	case itemActedMsg:
		if msg.err != nil {
			m.status = formatter.StyleRed.Render(msg.err.Error())
			return m, nil
		}
		m.status = msg.status
		return m, m.loadAgenda()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *boardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, m.loadAgenda()
	case key.Matches(msg, m.keys.Done):
		return m, m.actOnSelected(func(ctx context.Context, id string) (string, error) {
			return "Done.", m.app.Items.MarkDone(ctx, id)
		})
	case key.Matches(msg, m.keys.Today):
		return m, m.moveSelected("#today")
	case key.Matches(msg, m.keys.Week):
		return m, m.moveSelected("#week")
	case key.Matches(msg, m.keys.Weekend):
		return m, m.moveSelected("#weekend")
	case key.Matches(msg, m.keys.NextWeek):
		return m, m.moveSelected("#nextweek")
	case key.Matches(msg, m.keys.Open):
		return m, m.moveSelected("#someday")
	}
	return m, nil
}

func (m *boardModel) moveSelected(target string) tea.Cmd {
	app, today := m.app, m.today
	return m.actOnSelected(func(ctx context.Context, id string) (string, error) {
		item, changed, err := app.Items.Move(ctx, id, target, today)
		if err != nil {
			return "", err
		}
		if !changed {
			return "No change.", nil
		}
		return "Moved to " + placementLabel(item.Placement, today) + ".", nil
	})
}

func (m *boardModel) actOnSelected(act func(ctx context.Context, id string) (string, error)) tea.Cmd {
	row, ok := m.selectedRow()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		status, err := act(context.Background(), row.item.ID)
		return itemActedMsg{status: status, err: err}
	}
}

func (m *boardModel) selectedRow() (boardRow, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) || !m.rows[m.cursor].selectable() {
		return boardRow{}, false
	}
	return m.rows[m.cursor], true
}

// moveCursor steps to the next selectable row in the given direction.
func (m *boardModel) moveCursor(delta int) {
	for i := m.cursor + delta; i >= 0 && i < len(m.rows); i += delta {
		if m.rows[i].selectable() {
			m.cursor = i
			return
		}
	}
}

// clampCursor re-seats the cursor after a reload shrinks the row list.
func (m *boardModel) clampCursor() {
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if len(m.rows) == 0 || m.rows[m.cursor].selectable() {
		return
	}
	m.moveCursor(1)
	if !m.rows[m.cursor].selectable() {
		m.moveCursor(-1)
	}
}

func buildBoardRows(resp *contract.AgendaResponse) []boardRow {
	var rows []boardRow

	if len(resp.Overdue) > 0 {
		rows = append(rows, boardRow{header: "Overdue"})
		for _, v := range resp.Overdue {
			rows = append(rows, boardRow{item: v})
		}
	}

	for _, day := range resp.Days {
		label := day.Weekday + " " + day.Date
		if day.IsToday {
			label += " · today"
		}
		rows = append(rows, boardRow{header: label})
		for _, v := range day.Items {
			rows = append(rows, boardRow{item: v})
		}
	}

	for _, bucket := range resp.Drawer {
		if len(bucket.Items) == 0 {
			continue
		}
		rows = append(rows, boardRow{header: bucket.Label})
		for _, v := range bucket.Items {
			rows = append(rows, boardRow{item: v})
		}
	}

	return rows
}

func (m *boardModel) View() string {
	if m.loading {
		return "\n  " + formatter.Dim("Loading board...")
	}
	if m.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+m.err.Error())
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, row := range m.rows {
		if row.header != "" {
			b.WriteString("  " + formatter.StyleHeader.Render(strings.ToUpper(row.header)) + "\n")
			continue
		}

		cursor := "  "
		titleStyle := formatter.StyleFg
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			titleStyle = formatter.StyleBold
		}
		line := fmt.Sprintf("  %s%s %s  %s",
			cursor,
			formatter.TruncID(row.item.ShortID),
			titleStyle.Render(row.item.Title),
			formatter.KindBadge(row.item.Kind),
		)
		if row.item.Spanning {
			line += "  " + formatter.StyleBlue.Render("⋯")
		}
		b.WriteString(line + "\n")
	}

	if len(m.rows) == 0 {
		b.WriteString("  " + formatter.Dim("Nothing on the board.") + "\n")
	}

	if m.status != "" {
		b.WriteString("\n  " + formatter.Dim(m.status) + "\n")
	}
	b.WriteString("\n  " + m.help.View(m.keys) + "\n")

	return b.String()
}
