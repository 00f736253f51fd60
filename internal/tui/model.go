// Package tui implements the interactive shell: a file chooser, a category
// selector, the filter action and modal error messages.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/salesflow/internal/common"
	"github.com/Veraticus/salesflow/internal/model"
	"github.com/Veraticus/salesflow/internal/report"
	"github.com/Veraticus/salesflow/internal/session"
	"github.com/Veraticus/salesflow/internal/tui/components"
	"github.com/Veraticus/salesflow/internal/tui/themes"
)

// App is the application state driven by the shell. *session.Session
// implements it.
type App interface {
	Load(ctx context.Context, path string) (*model.Dataset, error)
	CategoryOptions() []string
	FilterOption(ctx context.Context, index int) (*report.Result, error)
}

// State represents the current state of the TUI.
type State int

const (
	StateIdle State = iota
	StatePicking
	StateBusy
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePicking:
		return "picking"
	case StateBusy:
		return "busy"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Model holds the main TUI state.
type Model struct {
	ctx      context.Context
	app      App
	theme    themes.Theme
	result   *report.Result
	busyText string
	status   string
	source   string
	config   Config
	keymap   KeyMap
	picker   filepicker.Model
	selector components.CategorySelectorModel
	records  components.RecordTableModel
	modal    components.ErrorModalModel
	spinner  spinner.Model
	help     help.Model
	width    int
	height   int
	state    State
	quitting bool
	failed   bool
}

func newModel(ctx context.Context, app App, cfg Config) Model {
	picker := filepicker.New()
	picker.CurrentDirectory = cfg.DataDir
	picker.AllowedTypes = []string{".xlsx"}

	s := spinner.New()
	s.Spinner = spinner.Dot

	h := help.New()
	h.ShowAll = false

	m := Model{
		ctx:      ctx,
		app:      app,
		theme:    cfg.Theme,
		config:   cfg,
		keymap:   DefaultKeyMap(),
		picker:   picker,
		selector: components.NewCategorySelector(cfg.Theme, session.Placeholder),
		records:  components.NewRecordTable(cfg.Theme),
		modal:    components.NewErrorModal(cfg.Theme),
		spinner:  s,
		help:     h,
		width:    cfg.Width,
		height:   cfg.Height,
		state:    StateIdle,
		status:   "Press o to select a sales file.",
	}
	m.handleResize()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.state != StateBusy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case fileLoadedMsg:
		m.state = StateIdle
		m.handleFileLoaded(msg)
		return m, nil

	case viewShownMsg:
		m.records.SetView(msg.view)
		return m, nil

	case filterDoneMsg:
		m.state = StateIdle
		m.handleFilterDone(msg)
		return m, nil
	}

	// The file picker reads directories asynchronously.
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.modal.Visible() {
		return m.modal.View(m.width, m.height)
	}
	if m.state == StatePicking {
		return m.renderPicker()
	}
	return m.renderMain()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.modal.Visible() {
		if key.Matches(msg, m.keymap.Dismiss) {
			m.modal.Hide()
		}
		return m, nil
	}

	switch m.state {
	case StateBusy:
		// A load or report is running; input waits until it finishes.
		return m, nil

	case StatePicking:
		return m.handlePickerKey(msg)
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keymap.Open):
		m.state = StatePicking
		m.picker.CurrentDirectory = m.config.DataDir
		return m, m.picker.Init()

	case key.Matches(msg, m.keymap.Filter):
		return m.startBusy(fmt.Sprintf("Filtering %s...", m.selector.SelectedLabel()),
			filterCmd(m.ctx, m.app, m.selector.Selected()))

	case key.Matches(msg, m.keymap.Up), key.Matches(msg, m.keymap.Down):
		var cmd tea.Cmd
		m.selector, cmd = m.selector.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keymap.PageUp), key.Matches(msg, m.keymap.PageDown):
		var cmd tea.Cmd
		m.records, cmd = m.records.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.Back) {
		m.state = StateIdle
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		return m.startBusy(fmt.Sprintf("Loading %s...", filepath.Base(path)),
			loadFileCmd(m.ctx, m.app, path))
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.modal.Show("Unsupported file", fmt.Sprintf("%s is not an .xlsx workbook.", filepath.Base(path)))
		return m, cmd
	}
	return m, cmd
}

func (m Model) startBusy(text string, work tea.Cmd) (tea.Model, tea.Cmd) {
	m.state = StateBusy
	m.busyText = text
	return m, tea.Batch(m.spinner.Tick, work)
}

func (m *Model) handleFileLoaded(msg fileLoadedMsg) {
	if msg.err != nil {
		m.showError("Could not load sales file", msg.err)
		return
	}

	m.source = msg.path
	m.selector.SetOptions(msg.options)
	m.records.Clear()
	m.result = nil
	m.failed = false
	m.status = fmt.Sprintf("Loaded %d sales from %s.", msg.dataset.Len(), filepath.Base(msg.path))
}

func (m *Model) handleFilterDone(msg filterDoneMsg) {
	if msg.err != nil {
		m.showError("Could not generate reports", msg.err)
		return
	}

	m.result = msg.result
	m.failed = false
	// Without a ProgramDisplay the table is filled from the result.
	if m.config.Display == nil {
		m.records.SetView(msg.result.View)
	}
	m.status = fmt.Sprintf("Reports written: %s, %s, %s",
		msg.result.Outputs.CSV, msg.result.Outputs.PDF, msg.result.Outputs.Chart)
}

func (m *Model) showError(title string, err error) {
	slog.Warn(title, "error", err)
	m.failed = true
	m.status = title
	m.modal.Show(title, common.UserMessage(err))
}

func (m *Model) handleResize() {
	selectorWidth := 28
	tableWidth := max(40, m.width-selectorWidth-4)
	m.records.Resize(tableWidth, max(5, m.height-6))
	m.help.Width = m.width
}
