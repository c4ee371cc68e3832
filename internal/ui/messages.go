package ui

import "github.com/AhmetOsmn/ufc-events-ui/internal/domain"

// catalogLoadedMsg carries a freshly fetched event catalog
type catalogLoadedMsg struct {
	events []domain.Event
}

// catalogFailedMsg carries a classified, user-facing fetch failure
type catalogFailedMsg struct {
	message string
	err     error
}

// submitDoneMsg carries the server's confirmation message
type submitDoneMsg struct {
	message string
}

// submitFailedMsg carries a classified, user-facing submission failure
type submitFailedMsg struct {
	message string
	err     error
}

// exportDoneMsg reports a written .ics file
type exportDoneMsg struct {
	path   string
	events int
}

// exportFailedMsg reports a failed .ics export
type exportFailedMsg struct {
	err error
}
