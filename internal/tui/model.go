// Package tui implements the interactive dashboard.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/JenishBhuju/Clarity/internal/api"
	"github.com/JenishBhuju/Clarity/internal/common"
	"github.com/JenishBhuju/Clarity/internal/fetch"
	"github.com/JenishBhuju/Clarity/internal/limits"
	"github.com/JenishBhuju/Clarity/internal/milestone"
	"github.com/JenishBhuju/Clarity/internal/model"
	"github.com/JenishBhuju/Clarity/internal/prefs"
	"github.com/JenishBhuju/Clarity/internal/stats"
)

// toastDuration is how long a milestone toast stays on screen.
const toastDuration = 5 * time.Second

// Fetcher fetches transaction snapshots from the backend.
type Fetcher interface {
	ListTransactions(ctx context.Context, query api.ListQuery) ([]model.Transaction, error)
}

// Config wires the dashboard's collaborators. All state objects are
// injected; the dashboard owns nothing global.
type Config struct {
	Fetcher    Fetcher
	Session    *prefs.SessionStore
	Durable    *prefs.DurableStore
	Thresholds []int64
	Now        func() time.Time
}

// Model holds the dashboard state.
type Model struct {
	cfg         Config
	keymap      KeyMap
	coordinator *fetch.Coordinator
	detector    *milestone.Detector

	session     prefs.SessionState
	order       []model.Category
	spendLimits limits.Limits

	transactions []model.Transaction
	groups       []CategoryGroup
	totals       stats.Totals
	report       limits.Report
	table        table.Model

	cursor    int
	toast     string
	lastError error
	fatalErr  error
	loading   bool
	width     int
	height    int
	quitting  bool
}

// NewModel builds the dashboard from persisted state.
func NewModel(cfg Config) (Model, error) {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if len(cfg.Thresholds) == 0 {
		cfg.Thresholds = milestone.DefaultThresholds
	}

	session, err := cfg.Session.Load()
	if err != nil {
		return Model{}, err
	}
	order, err := cfg.Durable.LoadOrder()
	if err != nil {
		return Model{}, err
	}
	spendLimits, err := cfg.Durable.LoadLimits()
	if err != nil {
		return Model{}, err
	}

	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Type", Width: 8},
		{Title: "Category", Width: 16},
		{Title: "Amount", Width: 12},
		{Title: "Description", Width: 32},
	}
	tbl := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	return Model{
		cfg:         cfg,
		keymap:      DefaultKeyMap(),
		coordinator: fetch.NewCoordinator(),
		session:     session,
		order:       order,
		spendLimits: spendLimits,
		table:       tbl,
		loading:     true,
	}, nil
}

// Init starts the first fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, m.fetchCmd())
}

// fetchCmd issues a fetch for the current filter. The generation taken
// before the request starts lets the update loop drop stale responses.
func (m *Model) fetchCmd() tea.Cmd {
	gen := m.coordinator.Begin()
	fetcher := m.cfg.Fetcher
	query := api.ListQuery{
		Type:     m.session.Filter.Type,
		Category: m.session.Filter.Category,
		DateFrom: m.session.Filter.DateFrom,
		DateTo:   m.session.Filter.DateTo,
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		transactions, err := fetcher.ListTransactions(ctx, query)
		return snapshotMsg{generation: gen, transactions: transactions, err: err}
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case snapshotMsg:
		return m.handleSnapshot(msg)

	case toastExpiredMsg:
		m.toast = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleSnapshot(msg snapshotMsg) (tea.Model, tea.Cmd) {
	m.loading = false

	if msg.err != nil {
		if errors.Is(msg.err, common.ErrUnauthorized) {
			m.fatalErr = msg.err
			m.quitting = true
			return m, tea.Quit
		}
		// A failure from a superseded fetch must not disturb the state a
		// fresher fetch produced.
		if m.coordinator.Stale(msg.generation) {
			return m, nil
		}
		// Keep showing the previous snapshot; the error is a banner.
		m.lastError = msg.err
		return m, nil
	}
	if !m.coordinator.Apply(msg.generation, msg.transactions) {
		// A newer fetch already applied; this response is stale.
		return m, nil
	}

	m.lastError = nil
	m.transactions = msg.transactions
	return m.recompute()
}

// recompute rebuilds every piece of derived state from the current
// snapshot. Nothing is patched incrementally.
func (m Model) recompute() (tea.Model, tea.Cmd) {
	m.totals = stats.TotalsByType(m.transactions)
	m.groups = buildCategoryGroups(m.transactions, m.order)
	m.report = limits.Evaluate(m.transactions, m.spendLimits, m.cfg.Now())
	m.table.SetRows(transactionRows(m.transactions))

	if m.cursor >= len(m.groups) {
		m.cursor = len(m.groups) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	var cmd tea.Cmd
	if m.detector == nil {
		// First snapshot seeds the detector: thresholds the balance
		// already sits above never fire retroactively.
		m.detector, _ = milestone.NewDetector(m.cfg.Thresholds, m.totals.Net)
	} else if crossed, fired := m.detector.Observe(m.totals.Net); fired {
		m.toast = "Milestone reached: net balance passed " + model.FormatCents(crossed)
		cmd = tea.Tick(toastDuration, func(time.Time) tea.Msg {
			return toastExpiredMsg{}
		})
	}

	return m, cmd
}

func transactionRows(transactions []model.Transaction) []table.Row {
	rows := make([]table.Row, len(transactions))
	for i, t := range transactions {
		rows[i] = table.Row{
			t.Date,
			string(t.Type),
			t.Category.Label(),
			t.Amount,
			t.Description,
		}
	}
	return rows
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Refresh):
		m.loading = true
		return m, m.fetchCmd()

	case key.Matches(msg, m.keymap.ToggleView):
		if m.session.Mode == prefs.ViewTable {
			m.session.Mode = prefs.ViewCategory
		} else {
			m.session.Mode = prefs.ViewTable
		}
		m.saveSession()
		return m, nil

	case key.Matches(msg, m.keymap.CycleType):
		m.session.Filter.Type = nextTypeFilter(m.session.Filter.Type)
		m.saveSession()
		m.loading = true
		return m, m.fetchCmd()

	case key.Matches(msg, m.keymap.ClearFilters):
		m.session.Filter = prefs.FilterState{}
		m.saveSession()
		m.loading = true
		return m, m.fetchCmd()

	case key.Matches(msg, m.keymap.MoveUp):
		return m.moveCategory(-1), nil

	case key.Matches(msg, m.keymap.MoveDown):
		return m.moveCategory(1), nil

	case key.Matches(msg, m.keymap.Up):
		if m.session.Mode == prefs.ViewCategory {
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		}

	case key.Matches(msg, m.keymap.Down):
		if m.session.Mode == prefs.ViewCategory {
			if m.cursor < len(m.groups)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// moveCategory shifts the selected group in category view and persists
// the new order. The saved order is the visible order after the move, so
// categories the user has never touched keep their observed positions.
func (m Model) moveCategory(delta int) Model {
	if m.session.Mode != prefs.ViewCategory || len(m.groups) == 0 {
		return m
	}
	target := m.cursor + delta
	if target < 0 || target >= len(m.groups) {
		return m
	}

	visible := make([]model.Category, len(m.groups))
	for i, g := range m.groups {
		visible[i] = g.Category
	}

	m.order = prefs.Reorder(visible, m.groups[m.cursor].Category, target)
	if err := m.cfg.Durable.SaveOrder(m.order); err != nil {
		m.lastError = err
	}
	m.groups = buildCategoryGroups(m.transactions, m.order)
	m.cursor = target
	return m
}

func (m *Model) saveSession() {
	if err := m.cfg.Session.Save(m.session); err != nil {
		m.lastError = err
	}
}

func nextTypeFilter(current string) string {
	switch current {
	case "":
		return string(model.TypeIncome)
	case string(model.TypeIncome):
		return string(model.TypeExpense)
	default:
		return ""
	}
}

// Err returns the error that ended the session, if any. The caller uses
// it to route an auth failure to the login hint after the program exits.
func (m Model) Err() error {
	return m.fatalErr
}
