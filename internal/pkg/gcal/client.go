// Package gcal wraps the Google Calendar API behind a small client so that
// per-call deadlines, retries and batching stay out of the reconciliation
// logic.
package gcal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/studybuddy/studybuddy-backend/internal/config"
	"github.com/studybuddy/studybuddy-backend/internal/model"
)

type Client struct {
	svc         *calendar.Service
	callTimeout time.Duration
	maxRetries  int
	retryDelay  time.Duration
	logger      *zap.SugaredLogger
}

func NewClient(ctx context.Context, logger *zap.SugaredLogger) (*Client, error) {
	ts, err := tokenSource(ctx, []string{calendar.CalendarScope})
	if err != nil {
		return nil, fmt.Errorf("token source: %w", err)
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Calendar API: %w", err)
	}

	return &Client{
		svc:         svc,
		callTimeout: config.RemoteCallTimeout(),
		maxRetries:  config.RemoteMaxRetries(),
		retryDelay:  config.RemoteRetryDelay(),
		logger:      logger,
	}, nil
}

// List fetches all events in [timeMin, timeMax], cancelled ones included so
// the sync engine sees deletion signals. Results are paginated transparently.
func (c *Client) List(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]*calendar.Event, error) {
	var res []*calendar.Event
	pageToken := ""

	for {
		var page *calendar.Events
		err := c.withRetry(ctx, "list events", func(callCtx context.Context) error {
			var err error
			page, err = c.svc.Events.List(calendarID).
				TimeMin(timeMin.Format(time.RFC3339)).
				TimeMax(timeMax.Format(time.RFC3339)).
				SingleEvents(true).
				ShowDeleted(true).
				PageToken(pageToken).
				Context(callCtx).
				Do()
			return err
		})
		if err != nil {
			return nil, err
		}

		res = append(res, page.Items...)

		pageToken = page.NextPageToken
		if pageToken == "" {
			return res, nil
		}
	}
}

func (c *Client) Create(ctx context.Context, calendarID string, event *calendar.Event) (*calendar.Event, error) {
	var res *calendar.Event
	err := c.withRetry(ctx, "create event", func(callCtx context.Context) error {
		var err error
		res, err = c.svc.Events.Insert(calendarID, event).Context(callCtx).Do()
		return err
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (c *Client) Update(ctx context.Context, calendarID, eventID string, event *calendar.Event) (*calendar.Event, error) {
	var res *calendar.Event
	err := c.withRetry(ctx, "update event", func(callCtx context.Context) error {
		var err error
		res, err = c.svc.Events.Update(calendarID, eventID, event).Context(callCtx).Do()
		return err
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// withRetry runs one remote call under a per-call deadline and retries
// transient failures with doubling delay. Exhausting the budget surfaces the
// failure as ErrRemoteUnavailable.
func (c *Client) withRetry(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	delay := c.retryDelay

	var err error
	for attempt := 0; ; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
		err = fn(callCtx)
		cancel()

		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return fmt.Errorf("%s: %w", op, ctx.Err())
		}
		if attempt >= c.maxRetries || !retryable(err) {
			break
		}

		c.logger.Warnw("retrying remote call", "op", op, "attempt", attempt+1, "err", err)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return fmt.Errorf("%s: %w", op, ctx.Err())
		}
		delay *= 2
	}

	return fmt.Errorf("%s: %w: %v", op, model.ErrRemoteUnavailable, err)
}

// retryable reports whether an error is worth another attempt: rate limiting,
// server-side failures and per-call timeouts.
func retryable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var gErr *googleapi.Error
	if !errors.As(err, &gErr) {
		return false
	}

	switch gErr.Code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}

	return false
}
