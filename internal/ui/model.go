package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	crerr "github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/AhmetOsmn/ufc-events-ui/internal/api"
	"github.com/AhmetOsmn/ufc-events-ui/internal/calendar"
	"github.com/AhmetOsmn/ufc-events-ui/internal/config"
	"github.com/AhmetOsmn/ufc-events-ui/internal/domain"
	"github.com/AhmetOsmn/ufc-events-ui/internal/eventbus"
	"github.com/AhmetOsmn/ufc-events-ui/internal/query"
	"github.com/AhmetOsmn/ufc-events-ui/internal/submit"
	"github.com/AhmetOsmn/ufc-events-ui/internal/theme"
	"github.com/AhmetOsmn/ufc-events-ui/internal/ui/state"
	"github.com/AhmetOsmn/ufc-events-ui/internal/ui/views"
)

// stateReader adapts AppState to the submission machine's read contract
type stateReader struct {
	s *state.AppState
}

func (r stateReader) CatalogEvents() []domain.Event { return r.s.Events }
func (r stateReader) CatalogLoading() bool          { return r.s.Loading }
func (r stateReader) SelectionIDs() []string        { return r.s.SelectedIDs() }

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	log    *zap.Logger
	state  *state.AppState

	events     *query.EventsQuery
	mutation   submit.Sender
	classifier *api.Classifier
	machine    *submit.Machine
	themes     *theme.Store

	renderer *views.Renderer
	email    textinput.Model

	width  int
	height int
}

// NewModel creates a new UI model
func NewModel(
	cfg *config.Config,
	bus eventbus.EventBus,
	events *query.EventsQuery,
	mutation submit.Sender,
	classifier *api.Classifier,
	themes *theme.Store,
	log *zap.Logger,
) *Model {
	if log == nil {
		log = zap.NewNop()
	}

	appState := state.NewAppState()

	email := textinput.New()
	email.Placeholder = "E-mail adresinizi girin"
	email.CharLimit = 254
	email.Width = 40

	m := &Model{
		bus:        bus,
		config:     cfg,
		log:        log,
		state:      appState,
		events:     events,
		mutation:   mutation,
		classifier: classifier,
		themes:     themes,
		renderer:   views.NewRenderer(themes.IsDark()),
		email:      email,
	}
	m.machine = submit.NewMachine(stateReader{s: appState}, log)

	return m
}

// Init starts the initial catalog fetch
func (m *Model) Init() tea.Cmd {
	m.state.SetLoading(true)
	return tea.Batch(textinput.Blink, m.fetchCatalogCmd())
}

// Update handles all incoming messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Without an explicit theme choice the terminal background decides;
		// re-check it whenever the terminal changes under us
		m.themes.SyncSystem()
		m.renderer.SetTheme(m.themes.IsDark())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case catalogLoadedMsg:
		m.state.SetLoading(false)
		m.state.SetEvents(msg.events)
		m.bus.Publish(domain.CatalogLoadedEvent{Events: msg.events})
		return m, nil

	case catalogFailedMsg:
		m.state.SetLoading(false)
		m.state.SetError(msg.message)
		m.bus.Publish(domain.CatalogLoadFailedEvent{Message: msg.message, Err: msg.err})
		return m, nil

	case submitDoneMsg:
		sent := m.machine.Sent()
		m.machine.Complete(msg.message)
		m.email.Reset()
		m.bus.Publish(domain.SubscriptionSucceededEvent{
			Email:    sent.Email,
			EventIDs: sent.EventIDs,
			Message:  msg.message,
		})
		return m, nil

	case submitFailedMsg:
		if crerr.Is(msg.err, query.ErrInFlight) {
			// The machine already guards; a racing duplicate is dropped silently
			return m, nil
		}
		m.machine.Fail(msg.message)
		m.bus.Publish(domain.SubscriptionFailedEvent{Message: msg.message, Err: msg.err})
		return m, nil

	case exportDoneMsg:
		m.state.StatusMessage = fmt.Sprintf("Takvim dosyası oluşturuldu: %s", msg.path)
		m.bus.Publish(domain.CalendarExportedEvent{Path: msg.path, Events: msg.events})
		return m, nil

	case exportFailedMsg:
		m.state.StatusMessage = fmt.Sprintf("Takvim dosyası oluşturulamadı: %v", msg.err)
		m.bus.Publish(domain.ErrorEvent{Message: m.state.StatusMessage, Err: msg.err})
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Result modals capture all input until dismissed
	if m.machine.State() == submit.StateSuccess || m.machine.State() == submit.StateFailed {
		return m.handleModalKey(msg)
	}

	if m.email.Focused() {
		return m.handleEmailKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.state.DisplayedIndex > 0 {
			m.state.DisplayedIndex--
		}
		return m, nil
	case "down", "j":
		if m.state.DisplayedIndex < len(m.state.Events)-1 {
			m.state.DisplayedIndex++
		}
		return m, nil
	case " ":
		if e := m.state.DisplayedEvent(); e != nil {
			m.toggleSelection(e.ID)
		}
		return m, nil
	case "a":
		if m.state.IsAllSelected() {
			m.state.ClearAllSelections()
		} else {
			m.state.SelectAllEvents()
		}
		m.machine.SelectionEdited()
		m.publishSelection()
		return m, nil
	case "c":
		m.state.ClearAllSelections()
		m.machine.SelectionEdited()
		m.publishSelection()
		return m, nil
	case "tab", "e":
		return m, m.email.Focus()
	case "enter":
		return m, m.startSubmit()
	case "x":
		return m, m.exportCmd()
	case "r":
		m.state.SetLoading(true)
		m.state.SetError("")
		m.events.Invalidate()
		return m, m.fetchCatalogCmd()
	case "t":
		m.themes.Toggle()
		m.renderer.SetTheme(m.themes.IsDark())
		return m, nil
	case "?":
		m.state.ShowHelp = !m.state.ShowHelp
		return m, nil
	}

	return m, nil
}

func (m *Model) handleEmailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "tab":
		m.email.Blur()
		return m, nil
	case "enter":
		return m, m.startSubmit()
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.email, cmd = m.email.Update(msg)
	m.machine.EmailEdited()
	return m, cmd
}

func (m *Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	failed := m.machine.State() == submit.StateFailed

	switch msg.String() {
	case "esc", "enter":
		m.machine.Dismiss()
		return m, nil
	case "r":
		if failed {
			// Retry re-enters the full validation pipeline; state may have
			// changed and a different check may now fail
			m.machine.Dismiss()
			return m, m.startSubmit()
		}
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) toggleSelection(id string) {
	m.state.ToggleEventSelection(id)
	m.machine.SelectionEdited()
	m.publishSelection()
}

func (m *Model) publishSelection() {
	m.bus.Publish(domain.SelectionChangedEvent{Total: len(m.state.SelectedEventIDs)})
}

func (m *Model) startSubmit() tea.Cmd {
	req, err := m.machine.Begin(m.email.Value())
	if err != nil {
		// Validation failures are already recorded on the machine
		m.log.Debug("submission rejected", zap.Error(err))
		return nil
	}
	if req == nil {
		return nil
	}
	return m.submitCmd(*req)
}

func (m *Model) fetchCatalogCmd() tea.Cmd {
	return func() tea.Msg {
		events, err := m.events.Get(context.Background())
		if err != nil {
			return catalogFailedMsg{message: m.classifier.Classify(err), err: err}
		}
		return catalogLoadedMsg{events: events}
	}
}

func (m *Model) submitCmd(req submit.Request) tea.Cmd {
	return func() tea.Msg {
		message, err := m.mutation.Do(context.Background(), req.Email, req.EventIDs)
		if err != nil {
			return submitFailedMsg{message: m.classifier.Classify(err), err: err}
		}
		return submitDoneMsg{message: message}
	}
}

func (m *Model) exportCmd() tea.Cmd {
	selected := make([]domain.Event, 0)
	for _, e := range m.state.Events {
		if m.state.IsSelected(e.ID) {
			selected = append(selected, e)
		}
	}
	dir := m.config.UISettings.ExportDir

	return func() tea.Msg {
		path, err := calendar.Export(selected, dir)
		if err != nil {
			return exportFailedMsg{err: err}
		}
		return exportDoneMsg{path: path, events: len(selected)}
	}
}

// View renders the current state
func (m *Model) View() string {
	modal := views.ModalNone
	switch m.machine.State() {
	case submit.StateSuccess:
		modal = views.ModalSuccess
	case submit.StateFailed:
		modal = views.ModalError
	}

	sent := m.machine.Sent()

	return m.renderer.Render(views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Events:         m.state.Events,
		DisplayedIndex: m.state.DisplayedIndex,
		Selected:       m.state.SelectedEventIDs,
		Loading:        m.state.Loading,
		LoadError:      m.state.Error,
		Summary:        m.state.SelectionSummary(),
		EmailView:      m.email.View(),
		EmailError:     m.machine.EmailError(),
		SelectionError: m.machine.SelectionError(),
		Submitting:     m.machine.Submitting(),
		Modal:          modal,
		SentEmail:      sent.Email,
		SentEvents:     sent.Events,
		ResultMessage:  m.machine.ResultMessage(),
		StatusMessage:  m.state.StatusMessage,
		ShowHelp:       m.state.ShowHelp,
		ShowRankings:   m.config.UISettings.ShowRankings,
		ThemeDark:      m.themes.IsDark(),
	})
}
