package adapter

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/habitloop/reflector/pkg/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/sethvargo/go-retry"
)

// Tracker is the interface for the upstream record-storage service
type Tracker interface {
	// UpsertRecord creates or updates a reflection record. A nil ID
	// creates a new record.
	UpsertRecord(ctx context.Context, record *model.ReflectionRecord) (*model.ReflectionRecord, error)

	// ListPillars fetches the user's life-focus categories
	ListPillars(ctx context.Context) ([]*model.Pillar, error)
}

// trackerClient implements Tracker over the service's JSON API
type trackerClient struct {
	client     *resty.Client
	maxRetries uint64
}

// TrackerOption is a functional option for the tracker client
type TrackerOption func(*trackerClient)

// WithTrackerTimeout bounds each HTTP request
func WithTrackerTimeout(d time.Duration) TrackerOption {
	return func(t *trackerClient) {
		t.client.SetTimeout(d)
	}
}

// WithTrackerRetries sets how many times a transient failure is retried
func WithTrackerRetries(n uint64) TrackerOption {
	return func(t *trackerClient) {
		t.maxRetries = n
	}
}

// NewTracker creates a new client for the tracker service
func NewTracker(baseURL string, opts ...TrackerOption) Tracker {
	t := &trackerClient{
		client:     resty.New().SetBaseURL(baseURL).SetTimeout(10 * time.Second),
		maxRetries: 2,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// do runs fn with bounded exponential backoff. Only transport errors
// and 5xx responses are retried; a 4xx is final.
func (t *trackerClient) do(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(t.maxRetries, retry.NewExponential(300*time.Millisecond))
	return retry.Do(ctx, backoff, fn)
}

func (t *trackerClient) UpsertRecord(ctx context.Context, record *model.ReflectionRecord) (*model.ReflectionRecord, error) {
	var result model.ReflectionRecord
	err := t.do(ctx, func(ctx context.Context) error {
		resp, err := t.client.R().
			SetContext(ctx).
			SetBody(record).
			SetResult(&result).
			Post("/gpt/upsert")
		if err != nil {
			return retry.RetryableError(goerr.Wrap(model.ErrStorage, "upsert transport failure", goerr.V("cause", err.Error())))
		}
		if resp.StatusCode() >= 500 {
			return retry.RetryableError(goerr.Wrap(model.ErrStorage, "upsert failed", goerr.V("status", resp.StatusCode()), goerr.V("body", resp.String())))
		}
		if !resp.IsSuccess() {
			return goerr.Wrap(model.ErrStorage, "upsert rejected", goerr.V("status", resp.StatusCode()), goerr.V("body", resp.String()))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (t *trackerClient) ListPillars(ctx context.Context) ([]*model.Pillar, error) {
	var pillars []*model.Pillar
	err := t.do(ctx, func(ctx context.Context) error {
		resp, err := t.client.R().
			SetContext(ctx).
			SetResult(&pillars).
			Get("/pillars")
		if err != nil {
			return retry.RetryableError(goerr.Wrap(model.ErrStorage, "pillar list transport failure", goerr.V("cause", err.Error())))
		}
		if resp.StatusCode() >= 500 {
			return retry.RetryableError(goerr.Wrap(model.ErrStorage, "pillar list failed", goerr.V("status", resp.StatusCode())))
		}
		if !resp.IsSuccess() {
			return goerr.Wrap(model.ErrStorage, "pillar list rejected", goerr.V("status", resp.StatusCode()), goerr.V("body", resp.String()))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pillars, nil
}
