package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogRequested      EventType = "CatalogRequested"
	EventCatalogLoaded         EventType = "CatalogLoaded"
	EventCatalogLoadFailed     EventType = "CatalogLoadFailed"
	EventSelectionChanged      EventType = "SelectionChanged"
	EventSubscriptionStarted   EventType = "SubscriptionStarted"
	EventSubscriptionSucceeded EventType = "SubscriptionSucceeded"
	EventSubscriptionFailed    EventType = "SubscriptionFailed"
	EventThemeChanged          EventType = "ThemeChanged"
	EventCalendarExported      EventType = "CalendarExported"
	EventError                 EventType = "Error"
	EventConfigLoaded          EventType = "ConfigLoaded"
	EventConfigSaved           EventType = "ConfigSaved"
	EventConfigChanged         EventType = "ConfigChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogRequestedEvent is emitted when a catalog fetch begins
type CatalogRequestedEvent struct{}

func (e CatalogRequestedEvent) Type() EventType { return EventCatalogRequested }

// CatalogLoadedEvent is emitted when the event catalog has been fetched
type CatalogLoadedEvent struct {
	Events []Event
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// CatalogLoadFailedEvent is emitted when fetching the catalog fails
// after all retries. Message is already user-facing.
type CatalogLoadFailedEvent struct {
	Message string
	Err     error
}

func (e CatalogLoadFailedEvent) Type() EventType { return EventCatalogLoadFailed }

// SelectionChangedEvent is emitted when the set of selected events changes
type SelectionChangedEvent struct {
	Added   []string
	Removed []string
	Total   int
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// SubscriptionStartedEvent is emitted when a calendar request is sent
type SubscriptionStartedEvent struct {
	Email    string
	EventIDs []string
}

func (e SubscriptionStartedEvent) Type() EventType { return EventSubscriptionStarted }

// SubscriptionSucceededEvent is emitted when the calendar request was accepted
type SubscriptionSucceededEvent struct {
	Email    string
	EventIDs []string
	Message  string
}

func (e SubscriptionSucceededEvent) Type() EventType { return EventSubscriptionSucceeded }

// SubscriptionFailedEvent is emitted when the calendar request failed.
// Message is already user-facing.
type SubscriptionFailedEvent struct {
	Message string
	Err     error
}

func (e SubscriptionFailedEvent) Type() EventType { return EventSubscriptionFailed }

// ThemeChangedEvent is emitted when the color theme is switched
type ThemeChangedEvent struct {
	Theme string
}

func (e ThemeChangedEvent) Type() EventType { return EventThemeChanged }

// CalendarExportedEvent is emitted when selected events were written to an ICS file
type CalendarExportedEvent struct {
	Path   string
	Events int
}

func (e CalendarExportedEvent) Type() EventType { return EventCalendarExported }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when configuration needs to be saved
type ConfigChangedEvent struct {
	Theme string
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }
