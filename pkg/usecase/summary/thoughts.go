package summary

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/habitloop/reflector/pkg/adapter"
	"github.com/habitloop/reflector/pkg/model"
	"github.com/habitloop/reflector/pkg/transform"
	"github.com/habitloop/reflector/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// WeeklyThoughts normalizes a raw export and asks the provider for a
// weekly recap with goal suggestions, contextualized by the user's
// pillars. An unreachable tracker only costs the pillar context.
func (u *UseCase) WeeklyThoughts(ctx context.Context, export *transform.Export) (*model.ReflectionRecord, error) {
	logger := logging.From(ctx).With("run_id", uuid.New().String(), "variant", model.VariantWeeklyThoughts)

	normalized, err := transform.Normalize(export)
	if err != nil {
		return nil, err
	}

	week, err := latestWeekLabel(normalized.MoodData)
	if err != nil {
		return nil, err
	}

	pillars, err := u.tracker.ListPillars(ctx)
	if err != nil {
		logger.Warn("pillar fetch failed, generating without pillar context", logging.ErrAttr(err))
		pillars = nil
	}

	payload, err := json.MarshalIndent(struct {
		QuantifiableHabits map[string]model.HabitMap `json:"quantifiableHabits"`
		BooleanHabits      map[string]model.HabitMap `json:"booleanHabits"`
		NoteData           []model.DailyNote         `json:"noteData"`
	}{normalized.QuantifiableHabits, normalized.BooleanHabits, normalized.DailyNoteData}, "", "  ")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal thoughts payload")
	}

	text, err := u.complete(ctx, adapter.CompletionInput{
		System:      u.reflectionSystem(),
		Prompt:      u.thoughtsPrompt(string(payload), pillars),
		MaxTokens:   1500,
		Temperature: 0.6,
	})
	if err != nil {
		logger.Error("weekly thoughts generation failed", logging.ErrAttr(err))
		return nil, err
	}

	return &model.ReflectionRecord{
		Date:    week,
		Type:    model.VariantWeeklyThoughts.RecordType(),
		Summary: text,
	}, nil
}
