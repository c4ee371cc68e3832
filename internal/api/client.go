package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/AhmetOsmn/ufc-events-ui/internal/domain"
)

const (
	eventsPath    = "/api/events"
	subscribePath = "/api/events/subscribe"

	successMessage = "Email başarıyla gönderildi"
)

// Envelope is the fixed response shape wrapping all API payloads
type Envelope[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// ClientConfig configures a Client
type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Timeout    time.Duration
	Logger     *zap.Logger
}

// Client talks to the fight-card event API. Every request is bounded by
// a fixed timeout and cancelled on expiry.
type Client struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
	log        *zap.Logger
}

// NewClient creates a new API client
func NewClient(cfg ClientConfig) *Client {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		timeout:    timeout,
		log:        log,
	}
}

// FetchEvents retrieves the event catalog
func (c *Client) FetchEvents(ctx context.Context) ([]domain.Event, error) {
	events, _, err := doRequest[[]domain.Event](ctx, c, http.MethodGet, eventsPath, nil)
	if err != nil {
		c.log.Warn("fetch events failed", zap.Error(err))
		return nil, err
	}
	c.log.Info("fetched events", zap.Int("count", len(events)))
	return events, nil
}

type subscribeRequest struct {
	Email            string   `json:"email"`
	SelectedEventIDs []string `json:"selectedEventIds"`
}

// SubscribeEvents submits an email-based add-to-calendar request for the
// given event ids. Returns the server's confirmation message.
func (c *Client) SubscribeEvents(ctx context.Context, email string, eventIDs []string) (string, error) {
	payload := subscribeRequest{Email: email, SelectedEventIDs: eventIDs}
	_, message, err := doRequest[any](ctx, c, http.MethodPost, subscribePath, payload)
	if err != nil {
		c.log.Warn("subscribe failed", zap.Int("events", len(eventIDs)), zap.Error(err))
		return "", err
	}
	if message == "" {
		message = successMessage
	}
	c.log.Info("subscribe succeeded", zap.Int("events", len(eventIDs)))
	return message, nil
}

// doRequest performs one envelope-wrapped API call. An undecodable body is a
// DecodeError carrying the HTTP status; a non-2xx status is a ServerError
// preferring the envelope message.
func doRequest[T any](ctx context.Context, c *Client, method, path string, payload any) (T, string, error) {
	var zero T

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		raw, err := sonic.Marshal(payload)
		if err != nil {
			return zero, "", crerr.Wrap(err, "encode request body")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return zero, "", crerr.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if crerr.Is(ctx.Err(), context.DeadlineExceeded) {
			return zero, "", &TimeoutError{After: c.timeout.String()}
		}
		return zero, "", &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if crerr.Is(ctx.Err(), context.DeadlineExceeded) {
			return zero, "", &TimeoutError{After: c.timeout.String()}
		}
		return zero, "", &NetworkError{Err: err}
	}

	var env Envelope[T]
	if err := sonic.Unmarshal(raw, &env); err != nil {
		return zero, "", &DecodeError{Status: resp.StatusCode}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return zero, env.Message, &ServerError{Status: resp.StatusCode, Message: env.Message}
	}

	return env.Data, env.Message, nil
}
