package submit

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/AhmetOsmn/ufc-events-ui/internal/domain"
)

// Validation and result messages shown near the form
const (
	MsgInvalidEmail     = "Geçerli bir e-mail adresi girin"
	MsgEventsLoading    = "Etkinlikler yükleniyor, lütfen bekleyin..."
	MsgNoEvents         = "Henüz etkinlik bulunamadı. Lütfen sayfayı yenileyin"
	MsgNothingSelected  = "Takvime eklemek için en az bir etkinlik seçmelisiniz"
	MsgStaleSelection   = "Seçilen etkinlikler geçersiz. Lütfen tekrar seçim yapın"
	MsgSubmissionFailed = "E-mail gönderilirken bir hata oluştu. Lütfen daha sonra tekrar deneyin."
)

// State is the submission machine's presentation state
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSuccess
	StateFailed
)

// ErrorKind distinguishes where a validation message belongs
type ErrorKind int

const (
	// ErrorEmail is a field-level error under the email input
	ErrorEmail ErrorKind = iota
	// ErrorSelection is a section-level error under the event selector
	ErrorSelection
)

// ValidationError is a client-side rejection; it never reaches the network
type ValidationError struct {
	Kind    ErrorKind
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// StateReader is the submission machine's view of the selection store
type StateReader interface {
	CatalogEvents() []domain.Event
	CatalogLoading() bool
	SelectionIDs() []string
}

// Request is a validated submission ready to be sent: the snapshotted
// email and the resolved, staleness-filtered event set
type Request struct {
	Email    string
	EventIDs []string
	Events   []domain.Event
}

// Machine orchestrates validation and the submission lifecycle:
// Idle -> Submitting -> (Success | Failed) -> Idle.
type Machine struct {
	store    StateReader
	validate *validator.Validate
	log      *zap.Logger

	state State

	// pending error messages, cleared when validation passes
	emailError     string
	selectionError string

	// snapshot of the last accepted submission, for the result display
	sent      Request
	resultMsg string
}

// NewMachine creates a submission machine reading from the given store
func NewMachine(store StateReader, log *zap.Logger) *Machine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Machine{
		store:    store,
		validate: validator.New(),
		log:      log,
	}
}

type emailForm struct {
	Email string `validate:"required,email"`
}

// Begin runs the full validation pipeline in strict order and, when every
// check passes, transitions to Submitting and returns the request to send.
// Each failure sets a distinct error message and short-circuits. While a
// submission is pending, Begin is a no-op and returns (nil, nil).
func (m *Machine) Begin(email string) (*Request, error) {
	if m.state == StateSubmitting {
		return nil, nil
	}

	if err := m.validate.Struct(emailForm{Email: email}); err != nil {
		m.emailError = MsgInvalidEmail
		return nil, &ValidationError{Kind: ErrorEmail, Message: MsgInvalidEmail}
	}

	if m.store.CatalogLoading() {
		m.selectionError = MsgEventsLoading
		return nil, &ValidationError{Kind: ErrorSelection, Message: MsgEventsLoading}
	}

	events := m.store.CatalogEvents()
	if len(events) == 0 {
		m.selectionError = MsgNoEvents
		return nil, &ValidationError{Kind: ErrorSelection, Message: MsgNoEvents}
	}

	selected := m.store.SelectionIDs()
	if len(selected) == 0 {
		m.selectionError = MsgNothingSelected
		return nil, &ValidationError{Kind: ErrorSelection, Message: MsgNothingSelected}
	}

	// Staleness filter: drop ids no longer in the catalog. A partially
	// stale selection proceeds with the valid subset; a fully stale one
	// is an error.
	validIDs := make([]string, 0, len(selected))
	resolved := make([]domain.Event, 0, len(selected))
	for _, id := range selected {
		if e := domain.FindEvent(events, id); e != nil {
			validIDs = append(validIDs, id)
			resolved = append(resolved, *e)
		}
	}
	if len(validIDs) == 0 {
		m.selectionError = MsgStaleSelection
		return nil, &ValidationError{Kind: ErrorSelection, Message: MsgStaleSelection}
	}
	if dropped := len(selected) - len(validIDs); dropped > 0 {
		m.log.Warn("filtered stale event selections", zap.Int("dropped", dropped))
	}

	m.emailError = ""
	m.selectionError = ""
	m.sent = Request{Email: email, EventIDs: validIDs, Events: resolved}
	m.state = StateSubmitting

	req := m.sent
	return &req, nil
}

// Sender performs the actual network submission. The UI drives it from a
// command after Begin accepts a request.
type Sender interface {
	Do(ctx context.Context, email string, eventIDs []string) (string, error)
}

// Complete records a successful submission and transitions to Success
func (m *Machine) Complete(message string) {
	m.state = StateSuccess
	m.resultMsg = message
}

// Fail records a failed submission with its user-facing message and
// transitions to Failed. The typed email is preserved by the caller so the
// user can retry without retyping.
func (m *Machine) Fail(message string) {
	m.state = StateFailed
	if message == "" {
		message = MsgSubmissionFailed
	}
	m.resultMsg = message
}

// Dismiss acknowledges a result and returns to Idle
func (m *Machine) Dismiss() {
	if m.state == StateSuccess || m.state == StateFailed {
		m.state = StateIdle
		m.resultMsg = ""
	}
}

// EmailEdited clears the field-level error while the user types
func (m *Machine) EmailEdited() {
	m.emailError = ""
}

// SelectionEdited clears the section-level error when the selection changes
func (m *Machine) SelectionEdited() {
	m.selectionError = ""
}

// State returns the current presentation state
func (m *Machine) State() State { return m.state }

// Submitting reports whether a submission is pending
func (m *Machine) Submitting() bool { return m.state == StateSubmitting }

// EmailError returns the pending field-level error, if any
func (m *Machine) EmailError() string { return m.emailError }

// SelectionError returns the pending section-level error, if any
func (m *Machine) SelectionError() string { return m.selectionError }

// Sent returns the snapshot of the last accepted submission
func (m *Machine) Sent() Request { return m.sent }

// ResultMessage returns the message to show in the result modal
func (m *Machine) ResultMessage() string { return m.resultMsg }
