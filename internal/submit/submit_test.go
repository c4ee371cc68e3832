package submit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmetOsmn/ufc-events-ui/internal/domain"
)

type fakeStore struct {
	events   []domain.Event
	loading  bool
	selected []string
}

func (f *fakeStore) CatalogEvents() []domain.Event { return f.events }
func (f *fakeStore) CatalogLoading() bool          { return f.loading }
func (f *fakeStore) SelectionIDs() []string        { return f.selected }

func twoEvents() []domain.Event {
	return []domain.Event{
		{ID: "e1", Title: "UFC 310"},
		{ID: "e2", Title: "UFC 311"},
	}
}

func TestBeginRejectsInvalidEmail(t *testing.T) {
	store := &fakeStore{events: twoEvents(), selected: []string{"e1"}}
	m := NewMachine(store, nil)

	for _, email := range []string{"", "not-an-email", "a@", "@b.com", "a b@c.com"} {
		req, err := m.Begin(email)
		assert.Nil(t, req, "email %q must not pass", email)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, ErrorEmail, vErr.Kind)
		assert.Equal(t, MsgInvalidEmail, m.EmailError())
	}
	assert.Equal(t, StateIdle, m.State())
}

func TestBeginRejectsWhileLoading(t *testing.T) {
	store := &fakeStore{events: twoEvents(), selected: []string{"e1"}, loading: true}
	m := NewMachine(store, nil)

	req, err := m.Begin("user@example.com")
	assert.Nil(t, req)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, ErrorSelection, vErr.Kind)
	assert.Equal(t, MsgEventsLoading, vErr.Message)
}

func TestBeginRejectsEmptyCatalog(t *testing.T) {
	store := &fakeStore{selected: []string{"e1"}}
	m := NewMachine(store, nil)

	req, err := m.Begin("user@example.com")
	assert.Nil(t, req)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, MsgNoEvents, vErr.Message)
	assert.Equal(t, StateIdle, m.State(), "empty catalog never reaches the network")
}

func TestBeginRejectsEmptySelection(t *testing.T) {
	store := &fakeStore{events: twoEvents()}
	m := NewMachine(store, nil)

	req, err := m.Begin("user@example.com")
	assert.Nil(t, req)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, MsgNothingSelected, vErr.Message)
}

func TestBeginRejectsFullyStaleSelection(t *testing.T) {
	store := &fakeStore{events: twoEvents(), selected: []string{"e7", "e8"}}
	m := NewMachine(store, nil)

	req, err := m.Begin("user@example.com")
	assert.Nil(t, req)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, MsgStaleSelection, vErr.Message)
}

func TestBeginFiltersPartiallyStaleSelection(t *testing.T) {
	store := &fakeStore{events: twoEvents(), selected: []string{"e1", "e3"}}
	m := NewMachine(store, nil)

	req, err := m.Begin("user@example.com")
	require.NoError(t, err)
	require.NotNil(t, req)

	assert.Equal(t, []string{"e1"}, req.EventIDs, "stale ids are silently dropped")
	require.Len(t, req.Events, 1)
	assert.Equal(t, "UFC 310", req.Events[0].Title)
	assert.Equal(t, StateSubmitting, m.State())
}

func TestBeginSnapshotsRequest(t *testing.T) {
	store := &fakeStore{events: twoEvents(), selected: []string{"e1", "e2"}}
	m := NewMachine(store, nil)

	req, err := m.Begin("user@example.com")
	require.NoError(t, err)
	require.NotNil(t, req)

	assert.Equal(t, "user@example.com", req.Email)
	assert.Equal(t, []string{"e1", "e2"}, req.EventIDs)
	assert.Empty(t, m.EmailError())
	assert.Empty(t, m.SelectionError())
	assert.Equal(t, req.EventIDs, m.Sent().EventIDs)
}

func TestBeginIsNoOpWhileSubmitting(t *testing.T) {
	store := &fakeStore{events: twoEvents(), selected: []string{"e1"}}
	m := NewMachine(store, nil)

	req, err := m.Begin("user@example.com")
	require.NoError(t, err)
	require.NotNil(t, req)

	req2, err2 := m.Begin("user@example.com")
	assert.Nil(t, req2, "a second attempt while pending must not produce a request")
	assert.NoError(t, err2)
	assert.Equal(t, StateSubmitting, m.State())
}

func TestCompleteAndDismiss(t *testing.T) {
	store := &fakeStore{events: twoEvents(), selected: []string{"e1"}}
	m := NewMachine(store, nil)

	_, err := m.Begin("user@example.com")
	require.NoError(t, err)

	m.Complete("tamam")
	assert.Equal(t, StateSuccess, m.State())
	assert.Equal(t, "tamam", m.ResultMessage())

	m.Dismiss()
	assert.Equal(t, StateIdle, m.State())
	assert.Empty(t, m.ResultMessage())
}

func TestFailKeepsDefaultMessage(t *testing.T) {
	store := &fakeStore{events: twoEvents(), selected: []string{"e1"}}
	m := NewMachine(store, nil)

	_, err := m.Begin("user@example.com")
	require.NoError(t, err)

	m.Fail("")
	assert.Equal(t, StateFailed, m.State())
	assert.Equal(t, MsgSubmissionFailed, m.ResultMessage())
}

func TestRetryRevalidatesAgainstCurrentState(t *testing.T) {
	store := &fakeStore{events: twoEvents(), selected: []string{"e1"}}
	m := NewMachine(store, nil)

	_, err := m.Begin("user@example.com")
	require.NoError(t, err)
	m.Fail("sunucu hatası")
	m.Dismiss()

	// Catalog changed while the error modal was up; the retry must surface
	// the new validation failure instead of replaying the old payload
	store.events = nil
	req, err := m.Begin("user@example.com")
	assert.Nil(t, req)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, MsgNoEvents, vErr.Message)
}

func TestEditClearsErrors(t *testing.T) {
	store := &fakeStore{}
	m := NewMachine(store, nil)

	_, _ = m.Begin("bad")
	assert.NotEmpty(t, m.EmailError())
	m.EmailEdited()
	assert.Empty(t, m.EmailError())

	_, _ = m.Begin("user@example.com")
	assert.NotEmpty(t, m.SelectionError())
	m.SelectionEdited()
	assert.Empty(t, m.SelectionError())
}
