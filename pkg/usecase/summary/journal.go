package summary

import (
	"context"

	"github.com/habitloop/reflector/pkg/adapter"
	"github.com/habitloop/reflector/pkg/model"
	"github.com/habitloop/reflector/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// JournalReflection generates an AI recap over a date range of journal
// entries and returns the generated text.
func (u *UseCase) JournalReflection(ctx context.Context, entries []model.JournalEntry, startDate, endDate string) (string, error) {
	if len(entries) == 0 {
		return "", goerr.Wrap(model.ErrParse, "no journal entries in the requested range",
			goerr.V("startDate", startDate), goerr.V("endDate", endDate))
	}

	logger := logging.From(ctx).With("variant", model.VariantJournalReflection)
	logger.Info("generating journal reflection",
		"entries", len(entries), "startDate", startDate, "endDate", endDate)

	text, err := u.complete(ctx, adapter.CompletionInput{
		System:      "You are an AI assistant tasked with analyzing and reflecting on a series of personal journal entries.",
		Prompt:      u.journalPrompt(entries, startDate, endDate),
		MaxTokens:   2000,
		Temperature: 0.7,
	})
	if err != nil {
		logger.Error("journal reflection generation failed", logging.ErrAttr(err))
		return "", err
	}
	return text, nil
}
