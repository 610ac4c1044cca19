package summary_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/habitloop/reflector/pkg/adapter"
	"github.com/habitloop/reflector/pkg/model"
	"github.com/habitloop/reflector/pkg/profile"
	"github.com/habitloop/reflector/pkg/transform"
	"github.com/habitloop/reflector/pkg/usecase/summary"
)

// mockSummarizer is a mock implementation of adapter.Summarizer for testing
type mockSummarizer struct {
	completeFunc func(ctx context.Context, in adapter.CompletionInput) (string, error)
	lastInput    adapter.CompletionInput
	calls        int
}

func (m *mockSummarizer) Complete(ctx context.Context, in adapter.CompletionInput) (string, error) {
	m.calls++
	m.lastInput = in
	if m.completeFunc != nil {
		return m.completeFunc(ctx, in)
	}
	return "generated reflection", nil
}

// mockTracker is a mock implementation of adapter.Tracker for testing
type mockTracker struct {
	upsertFunc  func(ctx context.Context, record *model.ReflectionRecord) (*model.ReflectionRecord, error)
	pillarsFunc func(ctx context.Context) ([]*model.Pillar, error)
}

func (m *mockTracker) UpsertRecord(ctx context.Context, record *model.ReflectionRecord) (*model.ReflectionRecord, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, record)
	}
	return record, nil
}

func (m *mockTracker) ListPillars(ctx context.Context) ([]*model.Pillar, error) {
	if m.pillarsFunc != nil {
		return m.pillarsFunc(ctx)
	}
	return nil, nil
}

func sampleExport() *transform.Export {
	day := transform.RawRecord{
		"date":               "2024-06-01",
		"quantifiableHabits": map[string]any{"steps": float64(8000)},
		"booleanHabits":      map[string]any{"meditated": true},
		"morningComment":     "ok",
		"energy":             float64(7),
		"wakeHour":           "07:00",
		"success":            "yes",
		"beBetter":           "sleep earlier",
		"dayRating":          float64(8),
		"sleepTime":          "23:00",
	}
	return &transform.Export{
		DailyNoteData: []transform.RawRecord{day},
		MoodData: []transform.RawRecord{
			{"date": "2024-05-30T09:00:00Z", "rating": float64(3), "comment": "meh", "tag": "", "description": ""},
			{"date": "2024-06-01T21:00:00Z", "rating": float64(4), "comment": "good", "tag": "", "description": ""},
		},
	}
}

func TestMoodRecap(t *testing.T) {
	provider := &mockSummarizer{}
	uc := summary.New(provider, &mockTracker{})

	record, err := uc.MoodRecap(context.Background(), sampleExport())
	gt.NoError(t, err)

	// week of the most recent mood entry (2024-06-01, ISO week 22)
	gt.V(t, record.Date).Equal("2024-W22")
	gt.V(t, record.Type).Equal("Mood Summary")
	gt.V(t, record.Summary).Equal("generated reflection")
	gt.V(t, record.ID).Nil()

	gt.V(t, provider.lastInput.MaxTokens).Equal(int64(1000))
	gt.V(t, provider.lastInput.Temperature).Equal(0.5)
	gt.S(t, provider.lastInput.Prompt).Contains("<data>")
	gt.S(t, provider.lastInput.Prompt).Contains("sleep earlier")
	gt.S(t, provider.lastInput.System).Contains("Stefano")
}

func TestMoodRecapWithoutMoodData(t *testing.T) {
	provider := &mockSummarizer{}
	uc := summary.New(provider, &mockTracker{})

	export := sampleExport()
	export.MoodData = nil

	_, err := uc.MoodRecap(context.Background(), export)
	gt.Error(t, err)
	gt.V(t, errors.Is(err, model.ErrParse)).Equal(true)
	gt.V(t, provider.calls).Equal(0)
}

func TestMoodRecapProviderFailure(t *testing.T) {
	provider := &mockSummarizer{
		completeFunc: func(ctx context.Context, in adapter.CompletionInput) (string, error) {
			return "", goerr.Wrap(model.ErrProvider, "rate limited")
		},
	}
	uc := summary.New(provider, &mockTracker{})

	_, err := uc.MoodRecap(context.Background(), sampleExport())
	gt.Error(t, err)
	gt.V(t, errors.Is(err, model.ErrProvider)).Equal(true)
}

func TestMoodRecapMalformedExport(t *testing.T) {
	provider := &mockSummarizer{}
	uc := summary.New(provider, &mockTracker{})

	export := sampleExport()
	delete(export.DailyNoteData[0], "quantifiableHabits")

	_, err := uc.MoodRecap(context.Background(), export)
	gt.Error(t, err)
	gt.V(t, errors.Is(err, model.ErrMissingField)).Equal(true)
	gt.V(t, provider.calls).Equal(0)
}

func TestMoodRecapUsesProfile(t *testing.T) {
	provider := &mockSummarizer{}
	uc := summary.New(provider, &mockTracker{},
		summary.WithProfile(&profile.Profile{
			PersonName: "Alex",
			Language:   "Italian",
			Interests:  "cooking",
		}))

	_, err := uc.MoodRecap(context.Background(), sampleExport())
	gt.NoError(t, err)
	gt.S(t, provider.lastInput.System).Contains("Alex")
	gt.S(t, provider.lastInput.System).Contains("cooking")
	gt.S(t, provider.lastInput.Prompt).Contains("Italian")
}

func TestJournalReflection(t *testing.T) {
	provider := &mockSummarizer{}
	uc := summary.New(provider, &mockTracker{})

	entries := []model.JournalEntry{
		{Date: "2024-06-01", Text: "long day at work"},
		{Date: "2024-06-02", Text: "quiet sunday"},
	}

	text, err := uc.JournalReflection(context.Background(), entries, "2024-06-01", "2024-06-02")
	gt.NoError(t, err)
	gt.V(t, text).Equal("generated reflection")

	gt.V(t, provider.lastInput.MaxTokens).Equal(int64(2000))
	gt.V(t, provider.lastInput.Temperature).Equal(0.7)
	gt.S(t, provider.lastInput.Prompt).Contains("long day at work")
	gt.S(t, provider.lastInput.Prompt).Contains("quiet sunday")
	gt.S(t, provider.lastInput.Prompt).Contains("2024-06-01")
}

func TestJournalReflectionEmptyEntries(t *testing.T) {
	provider := &mockSummarizer{}
	uc := summary.New(provider, &mockTracker{})

	_, err := uc.JournalReflection(context.Background(), nil, "2024-06-01", "2024-06-02")
	gt.Error(t, err)
	gt.V(t, errors.Is(err, model.ErrParse)).Equal(true)
	gt.V(t, provider.calls).Equal(0)
}

func TestWeeklyThoughtsIncludesPillars(t *testing.T) {
	provider := &mockSummarizer{}
	tracker := &mockTracker{
		pillarsFunc: func(ctx context.Context) ([]*model.Pillar, error) {
			return []*model.Pillar{
				{UUID: "p-1", Name: "Health", Emoji: "💪"},
			}, nil
		},
	}
	uc := summary.New(provider, tracker)

	record, err := uc.WeeklyThoughts(context.Background(), sampleExport())
	gt.NoError(t, err)
	gt.V(t, record.Type).Equal("Weekly Thoughts")
	gt.V(t, record.Date).Equal("2024-W22")
	gt.S(t, provider.lastInput.Prompt).Contains("Health")
}

func TestWeeklyThoughtsSurvivesPillarFailure(t *testing.T) {
	provider := &mockSummarizer{}
	tracker := &mockTracker{
		pillarsFunc: func(ctx context.Context) ([]*model.Pillar, error) {
			return nil, goerr.Wrap(model.ErrStorage, "tracker down")
		},
	}
	uc := summary.New(provider, tracker)

	record, err := uc.WeeklyThoughts(context.Background(), sampleExport())
	gt.NoError(t, err)
	gt.V(t, record.Summary).Equal("generated reflection")
}

func TestStore(t *testing.T) {
	stored := false
	tracker := &mockTracker{
		upsertFunc: func(ctx context.Context, record *model.ReflectionRecord) (*model.ReflectionRecord, error) {
			stored = true
			id := "rec-1"
			out := *record
			out.ID = &id
			return &out, nil
		},
	}
	uc := summary.New(&mockSummarizer{}, tracker)

	result, err := uc.Store(context.Background(), &model.ReflectionRecord{
		Date: "2024-W22", Type: "Mood Summary", Summary: "text",
	})
	gt.NoError(t, err)
	gt.V(t, stored).Equal(true)
	gt.V(t, *result.ID).Equal("rec-1")
}

func TestStoreFailure(t *testing.T) {
	tracker := &mockTracker{
		upsertFunc: func(ctx context.Context, record *model.ReflectionRecord) (*model.ReflectionRecord, error) {
			return nil, goerr.Wrap(model.ErrStorage, "upsert rejected")
		},
	}
	uc := summary.New(&mockSummarizer{}, tracker)

	_, err := uc.Store(context.Background(), &model.ReflectionRecord{})
	gt.Error(t, err)
	gt.V(t, errors.Is(err, model.ErrStorage)).Equal(true)
}
