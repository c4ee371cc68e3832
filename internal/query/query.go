package query

import (
	"context"
	"sync"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	crerr "github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/AhmetOsmn/ufc-events-ui/internal/domain"
	"github.com/AhmetOsmn/ufc-events-ui/internal/eventbus"
)

// Cache and retry tuning for the catalog query
const (
	DefaultStaleTime   = 5 * time.Minute
	DefaultGCTime      = 10 * time.Minute
	DefaultMaxRetries  = 2
	DefaultInitialWait = time.Second
	DefaultMaxWait     = 30 * time.Second
)

// ErrInFlight is returned when a calendar request is attempted while a
// previous one has not resolved yet. No network I/O happens in that case.
var ErrInFlight = crerr.New("a calendar request is already in flight")

// Status describes an asynchronous task's lifecycle state
type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusSuccess
	StatusFailed
)

// EventsFetcher fetches the event catalog
type EventsFetcher interface {
	FetchEvents(ctx context.Context) ([]domain.Event, error)
}

// CalendarSender submits an add-to-calendar request
type CalendarSender interface {
	SubscribeEvents(ctx context.Context, email string, eventIDs []string) (string, error)
}

// EventsQuery is the cached, retryable catalog query. Results stay fresh
// for staleTime; the cache is dropped after gcTime without access. Fetch
// failures are retried with exponential backoff.
type EventsQuery struct {
	fetcher EventsFetcher
	bus     eventbus.EventBus
	log     *zap.Logger

	staleTime   time.Duration
	gcTime      time.Duration
	maxRetries  uint64
	initialWait time.Duration
	maxWait     time.Duration

	mu         sync.Mutex
	cached     []domain.Event
	fetchedAt  time.Time
	lastAccess time.Time
	status     Status
	lastErr    error

	now func() time.Time
}

// NewEventsQuery creates a catalog query with the default cache and retry policy
func NewEventsQuery(fetcher EventsFetcher, bus eventbus.EventBus, log *zap.Logger) *EventsQuery {
	if log == nil {
		log = zap.NewNop()
	}
	return &EventsQuery{
		fetcher:     fetcher,
		bus:         bus,
		log:         log,
		staleTime:   DefaultStaleTime,
		gcTime:      DefaultGCTime,
		maxRetries:  DefaultMaxRetries,
		initialWait: DefaultInitialWait,
		maxWait:     DefaultMaxWait,
		now:         time.Now,
	}
}

// Get returns the catalog, from cache when fresh. A stale or missing cache
// triggers a fetch with up to maxRetries automatic retries.
func (q *EventsQuery) Get(ctx context.Context) ([]domain.Event, error) {
	q.mu.Lock()
	now := q.now()

	// Evict after prolonged disuse
	if !q.fetchedAt.IsZero() && now.Sub(q.lastAccess) > q.gcTime {
		q.cached = nil
		q.fetchedAt = time.Time{}
	}
	q.lastAccess = now

	if !q.fetchedAt.IsZero() && now.Sub(q.fetchedAt) < q.staleTime {
		events := q.cached
		q.mu.Unlock()
		return events, nil
	}

	q.status = StatusPending
	q.mu.Unlock()

	if q.bus != nil {
		q.bus.Publish(domain.CatalogRequestedEvent{})
	}

	events, err := q.fetch(ctx)

	q.mu.Lock()
	defer q.mu.Unlock()

	if err != nil {
		q.status = StatusFailed
		q.lastErr = err
		q.log.Warn("catalog fetch failed", zap.Error(err))
		return nil, err
	}

	q.status = StatusSuccess
	q.lastErr = nil
	q.cached = events
	q.fetchedAt = q.now()
	q.lastAccess = q.fetchedAt
	q.log.Info("catalog fetched", zap.Int("events", len(events)))
	return events, nil
}

func (q *EventsQuery) fetch(ctx context.Context) ([]domain.Event, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = q.initialWait
	policy.MaxInterval = q.maxWait
	policy.MaxElapsedTime = 0

	var events []domain.Event
	op := func() error {
		var err error
		events, err = q.fetcher.FetchEvents(ctx)
		return err
	}

	err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(policy, q.maxRetries), ctx))
	if err != nil {
		return nil, err
	}
	return events, nil
}

// Invalidate drops the cached catalog so the next Get refetches
func (q *EventsQuery) Invalidate() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.cached = nil
	q.fetchedAt = time.Time{}
}

// Status returns the query's current task state
func (q *EventsQuery) Status() Status {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.status
}

// CalendarMutation is the non-retried submission task. At most one request
// may be in flight; concurrent attempts fail locally with ErrInFlight.
type CalendarMutation struct {
	sender CalendarSender
	bus    eventbus.EventBus
	log    *zap.Logger

	mu       sync.Mutex
	inFlight bool
	status   Status
}

// NewCalendarMutation creates the submission mutation
func NewCalendarMutation(sender CalendarSender, bus eventbus.EventBus, log *zap.Logger) *CalendarMutation {
	if log == nil {
		log = zap.NewNop()
	}
	return &CalendarMutation{sender: sender, bus: bus, log: log}
}

// Do submits the calendar request. Never retried automatically; once
// started it runs to completion or timeout.
func (m *CalendarMutation) Do(ctx context.Context, email string, eventIDs []string) (string, error) {
	m.mu.Lock()
	if m.inFlight {
		m.mu.Unlock()
		return "", ErrInFlight
	}
	m.inFlight = true
	m.status = StatusPending
	m.mu.Unlock()

	if m.bus != nil {
		m.bus.Publish(domain.SubscriptionStartedEvent{Email: email, EventIDs: eventIDs})
	}

	message, err := m.sender.SubscribeEvents(ctx, email, eventIDs)

	m.mu.Lock()
	m.inFlight = false
	if err != nil {
		m.status = StatusFailed
	} else {
		m.status = StatusSuccess
	}
	m.mu.Unlock()

	if err != nil {
		m.log.Warn("calendar request failed", zap.Error(err))
		return "", err
	}
	return message, nil
}

// InFlight reports whether a submission is currently pending
func (m *CalendarMutation) InFlight() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inFlight
}

// Status returns the mutation's current task state
func (m *CalendarMutation) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}
