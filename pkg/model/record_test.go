package model_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/habitloop/reflector/pkg/model"
)

func TestPromptVariantValidate(t *testing.T) {
	gt.NoError(t, model.VariantMoodRecap.Validate())
	gt.NoError(t, model.VariantJournalReflection.Validate())
	gt.NoError(t, model.VariantWeeklyThoughts.Validate())
	gt.Error(t, model.PromptVariant("haiku").Validate())
}

func TestPromptVariantRecordType(t *testing.T) {
	gt.V(t, model.VariantMoodRecap.RecordType()).Equal("Mood Summary")
	gt.V(t, model.VariantJournalReflection.RecordType()).Equal("Journal Reflection")
	gt.V(t, model.VariantWeeklyThoughts.RecordType()).Equal("Weekly Thoughts")
}

func TestReflectionRecordNewSerializesNullID(t *testing.T) {
	record := &model.ReflectionRecord{
		Date:    "2024-W22",
		Type:    "Mood Summary",
		Summary: "a fine week",
	}

	data, err := json.Marshal(record)
	gt.NoError(t, err)
	gt.S(t, string(data)).Contains(`"id":null`)
	gt.S(t, string(data)).Contains(`"date":"2024-W22"`)
}
