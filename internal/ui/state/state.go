package state

import (
	"fmt"

	"github.com/AhmetOsmn/ufc-events-ui/internal/domain"
)

// Selection summary strings shown in the header bar
const (
	SummaryLoading    = "Eventler yükleniyor..."
	SummaryNone       = "Event seçin"
	SummaryAll        = "Tüm eventler"
	summarySomeFormat = "%d event seçili"
)

// AppState contains all the application state. It lives for the whole
// session and is mutated only from the UI update loop.
type AppState struct {
	// Catalog data, replaced wholesale on each successful fetch
	Events  []domain.Event
	Loading bool
	Error   string // user-facing, mutually exclusive with a populated catalog

	// Selection state. SelectedEventIDs is semantically a set; only the
	// user's toggle/select-all/clear actions mutate it.
	SelectedEventIDs map[string]bool

	// DisplayedIndex is the event currently shown in the detail view
	DisplayedIndex int

	// UI state
	StatusMessage string
	ShowHelp      bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		SelectedEventIDs: make(map[string]bool),
	}
}

// Catalog operations

// SetEvents replaces the catalog atomically and clears any load error
func (s *AppState) SetEvents(events []domain.Event) {
	s.Events = events
	s.Error = ""
	if s.DisplayedIndex >= len(events) {
		s.DisplayedIndex = 0
	}
}

// SetLoading mirrors the in-flight fetch status
func (s *AppState) SetLoading(loading bool) {
	s.Loading = loading
}

// SetError records a user-facing load error
func (s *AppState) SetError(message string) {
	s.Error = message
}

// DisplayedEvent returns the event shown in the detail view, or nil when
// the catalog is empty
func (s *AppState) DisplayedEvent() *domain.Event {
	if len(s.Events) == 0 {
		return nil
	}
	if s.DisplayedIndex < 0 || s.DisplayedIndex >= len(s.Events) {
		return &s.Events[0]
	}
	return &s.Events[s.DisplayedIndex]
}

// Selection operations

// ToggleEventSelection flips the selection state of one event id:
// removes it when present, adds it otherwise
func (s *AppState) ToggleEventSelection(id string) {
	if s.SelectedEventIDs[id] {
		delete(s.SelectedEventIDs, id)
	} else {
		s.SelectedEventIDs[id] = true
	}
}

// SelectAllEvents sets the selection to exactly the current catalog's ids
func (s *AppState) SelectAllEvents() {
	s.SelectedEventIDs = make(map[string]bool, len(s.Events))
	for _, e := range s.Events {
		s.SelectedEventIDs[e.ID] = true
	}
}

// ClearAllSelections empties the selection unconditionally
func (s *AppState) ClearAllSelections() {
	s.SelectedEventIDs = make(map[string]bool)
}

// IsSelected reports whether the given event id is selected
func (s *AppState) IsSelected(id string) bool {
	return s.SelectedEventIDs[id]
}

// SelectedIDs returns the selected ids in catalog order, with any ids no
// longer in the catalog appended last
func (s *AppState) SelectedIDs() []string {
	ids := make([]string, 0, len(s.SelectedEventIDs))
	seen := make(map[string]bool, len(s.SelectedEventIDs))
	for _, e := range s.Events {
		if s.SelectedEventIDs[e.ID] {
			ids = append(ids, e.ID)
			seen[e.ID] = true
		}
	}
	for id := range s.SelectedEventIDs {
		if !seen[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// Derived state, recomputed on every read

// IsAllSelected reports whether every catalog event is selected.
// Always false for an empty catalog.
func (s *AppState) IsAllSelected() bool {
	return len(s.Events) > 0 && len(s.SelectedEventIDs) == len(s.Events)
}

// IsSomeSelected reports whether at least one event is selected
func (s *AppState) IsSomeSelected() bool {
	return len(s.SelectedEventIDs) > 0
}

// SelectionSummary returns the header text describing the selection
func (s *AppState) SelectionSummary() string {
	if len(s.Events) == 0 {
		return SummaryLoading
	}
	if len(s.SelectedEventIDs) == 0 {
		return SummaryNone
	}
	if len(s.SelectedEventIDs) == len(s.Events) {
		return SummaryAll
	}
	return fmt.Sprintf(summarySomeFormat, len(s.SelectedEventIDs))
}
