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

// MoodRecap normalizes a raw export, asks the provider for a mood
// reflection over the week's note and mood data, and returns the
// reflection record dated with the week label of the most recent mood
// entry. The record is not persisted; see Store.
func (u *UseCase) MoodRecap(ctx context.Context, export *transform.Export) (*model.ReflectionRecord, error) {
	logger := logging.From(ctx).With("run_id", uuid.New().String(), "variant", model.VariantMoodRecap)

	normalized, err := transform.Normalize(export)
	if err != nil {
		return nil, err
	}
	logger.Info("export normalized",
		"days", len(normalized.DailyNoteData),
		"moods", len(normalized.MoodData))

	week, err := latestWeekLabel(normalized.MoodData)
	if err != nil {
		return nil, err
	}
	logger.Info("week derived", "week", week)

	payload, err := json.MarshalIndent(struct {
		NoteData []model.DailyNote `json:"note_data"`
		MoodData []model.MoodLog   `json:"mood_data"`
	}{normalized.DailyNoteData, normalized.MoodData}, "", "  ")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal recap payload")
	}

	text, err := u.complete(ctx, adapter.CompletionInput{
		System:      u.reflectionSystem(),
		Prompt:      u.moodPrompt(string(payload)),
		MaxTokens:   1000,
		Temperature: 0.5,
	})
	if err != nil {
		logger.Error("mood recap generation failed", logging.ErrAttr(err))
		return nil, err
	}

	return &model.ReflectionRecord{
		Date:    week,
		Type:    model.VariantMoodRecap.RecordType(),
		Summary: text,
	}, nil
}

// latestWeekLabel finds the most recent calendar date among the mood
// timestamps and returns its ISO week label.
func latestWeekLabel(moods []model.MoodLog) (string, error) {
	if len(moods) == 0 {
		return "", goerr.Wrap(model.ErrParse, "export contains no mood entries")
	}

	var latest string
	for _, mood := range moods {
		date, err := model.DateOfTimestamp(mood.Date)
		if err != nil {
			return "", err
		}
		if date > latest {
			latest = date
		}
	}
	return model.WeekLabel(latest)
}
