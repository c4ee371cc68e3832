package query

import (
	"context"
	"sync"
	"testing"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmetOsmn/ufc-events-ui/internal/domain"
)

type fakeFetcher struct {
	mu     sync.Mutex
	calls  int
	events []domain.Event
	errs   []error // consumed per call; nil entry means success
}

func (f *fakeFetcher) FetchEvents(ctx context.Context) ([]domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return nil, err
		}
	}
	return f.events, nil
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestQuery(fetcher *fakeFetcher) (*EventsQuery, *time.Time) {
	q := NewEventsQuery(fetcher, nil, nil)
	q.initialWait = time.Millisecond
	q.maxWait = 2 * time.Millisecond

	clock := time.Now()
	q.now = func() time.Time { return clock }
	return q, &clock
}

func catalog() []domain.Event {
	return []domain.Event{{ID: "ufc-319"}, {ID: "ufc-320"}}
}

func TestGetCachesWhileFresh(t *testing.T) {
	fetcher := &fakeFetcher{events: catalog()}
	q, clock := newTestQuery(fetcher)

	events, err := q.Get(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, 1, fetcher.callCount())

	// Just under the staleness threshold: still served from cache
	*clock = clock.Add(DefaultStaleTime - time.Second)
	_, err = q.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.callCount())
}

func TestGetRefetchesWhenStale(t *testing.T) {
	fetcher := &fakeFetcher{events: catalog()}
	q, clock := newTestQuery(fetcher)

	_, err := q.Get(context.Background())
	require.NoError(t, err)

	*clock = clock.Add(DefaultStaleTime + time.Second)
	_, err = q.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.callCount())
}

func TestGetEvictsAfterGCTime(t *testing.T) {
	fetcher := &fakeFetcher{events: catalog()}
	q, clock := newTestQuery(fetcher)

	_, err := q.Get(context.Background())
	require.NoError(t, err)

	*clock = clock.Add(DefaultGCTime + time.Second)
	_, err = q.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.callCount())
	assert.Equal(t, StatusSuccess, q.Status())
}

func TestGetRetriesTwiceThenSucceeds(t *testing.T) {
	fetcher := &fakeFetcher{
		events: catalog(),
		errs:   []error{crerr.New("boom"), crerr.New("boom again"), nil},
	}
	q, _ := newTestQuery(fetcher)

	events, err := q.Get(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, 3, fetcher.callCount())
}

func TestGetGivesUpAfterMaxRetries(t *testing.T) {
	fetcher := &fakeFetcher{
		errs: []error{crerr.New("boom"), crerr.New("boom"), crerr.New("boom")},
	}
	q, _ := newTestQuery(fetcher)

	_, err := q.Get(context.Background())
	require.Error(t, err)
	// Initial attempt plus two retries, no more
	assert.Equal(t, 3, fetcher.callCount())
	assert.Equal(t, StatusFailed, q.Status())
}

func TestInvalidateForcesRefetch(t *testing.T) {
	fetcher := &fakeFetcher{events: catalog()}
	q, _ := newTestQuery(fetcher)

	_, err := q.Get(context.Background())
	require.NoError(t, err)

	q.Invalidate()

	_, err = q.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.callCount())
}

type fakeSender struct {
	mu      sync.Mutex
	calls   int
	err     error
	message string
	started chan struct{} // closed when the first call begins, nil to skip
	release chan struct{} // call blocks until closed, nil to skip
}

func (s *fakeSender) SubscribeEvents(ctx context.Context, email string, eventIDs []string) (string, error) {
	s.mu.Lock()
	s.calls++
	started := s.started
	s.started = nil
	s.mu.Unlock()

	if started != nil {
		close(started)
	}
	if s.release != nil {
		<-s.release
	}
	if s.err != nil {
		return "", s.err
	}
	return s.message, nil
}

func (s *fakeSender) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestMutationNeverRetries(t *testing.T) {
	sender := &fakeSender{err: crerr.New("boom")}
	m := NewCalendarMutation(sender, nil, nil)

	_, err := m.Do(context.Background(), "user@example.com", []string{"ufc-319"})
	require.Error(t, err)
	assert.Equal(t, 1, sender.callCount())
	assert.Equal(t, StatusFailed, m.Status())
	assert.False(t, m.InFlight())
}

func TestMutationRejectsConcurrentRequests(t *testing.T) {
	sender := &fakeSender{
		message: "Email başarıyla gönderildi",
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	m := NewCalendarMutation(sender, nil, nil)

	done := make(chan error, 1)
	go func() {
		_, err := m.Do(context.Background(), "user@example.com", []string{"ufc-319"})
		done <- err
	}()

	<-sender.started
	assert.True(t, m.InFlight())

	// Second attempt while the first is pending: no extra network call
	_, err := m.Do(context.Background(), "user@example.com", []string{"ufc-319"})
	assert.ErrorIs(t, err, ErrInFlight)
	assert.Equal(t, 1, sender.callCount())

	close(sender.release)
	require.NoError(t, <-done)
	assert.Equal(t, StatusSuccess, m.Status())
	assert.False(t, m.InFlight())
}

func TestMutationReturnsServerMessage(t *testing.T) {
	sender := &fakeSender{message: "Email başarıyla gönderildi"}
	m := NewCalendarMutation(sender, nil, nil)

	msg, err := m.Do(context.Background(), "user@example.com", []string{"ufc-319"})
	require.NoError(t, err)
	assert.Equal(t, "Email başarıyla gönderildi", msg)
}
