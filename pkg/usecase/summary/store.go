package summary

import (
	"context"

	"github.com/habitloop/reflector/pkg/model"
	"github.com/habitloop/reflector/pkg/utils/logging"
)

// Store upserts a reflection record via the tracker service.
func (u *UseCase) Store(ctx context.Context, record *model.ReflectionRecord) (*model.ReflectionRecord, error) {
	logger := logging.From(ctx)

	stored, err := u.tracker.UpsertRecord(ctx, record)
	if err != nil {
		logger.Error("failed to store reflection",
			"type", record.Type, "date", record.Date, logging.ErrAttr(err))
		return nil, err
	}

	logger.Info("reflection stored", "type", stored.Type, "date", stored.Date)
	return stored, nil
}
