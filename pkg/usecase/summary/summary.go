package summary

import (
	"context"
	"time"

	"github.com/habitloop/reflector/pkg/adapter"
	"github.com/habitloop/reflector/pkg/profile"
)

// UseCase generates AI reflections over normalized tracking data and
// hands them to the tracker service.
type UseCase struct {
	provider adapter.Summarizer
	tracker  adapter.Tracker
	profile  *profile.Profile
	timeout  time.Duration
}

// Option is a functional option for UseCase
type Option func(*UseCase)

// WithProfile sets the user profile used in prompts
func WithProfile(p *profile.Profile) Option {
	return func(uc *UseCase) {
		uc.profile = p
	}
}

// WithTimeout bounds each provider call
func WithTimeout(d time.Duration) Option {
	return func(uc *UseCase) {
		uc.timeout = d
	}
}

// New creates a new summary UseCase instance
func New(provider adapter.Summarizer, tracker adapter.Tracker, opts ...Option) *UseCase {
	uc := &UseCase{
		provider: provider,
		tracker:  tracker,
		profile:  profile.Default(),
		timeout:  60 * time.Second,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// complete runs one provider call under the configured timeout. A
// timeout surfaces as the provider's own error wrapping.
func (u *UseCase) complete(ctx context.Context, in adapter.CompletionInput) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	return u.provider.Complete(ctx, in)
}
