package model

import "github.com/m-mizutani/goerr/v2"

var ErrInvalidVariant = goerr.New("invalid prompt variant")

// PromptVariant selects which reflection the summarization provider is
// asked to produce.
type PromptVariant string

const (
	VariantMoodRecap         PromptVariant = "mood_recap"
	VariantJournalReflection PromptVariant = "journal_reflection"
	VariantWeeklyThoughts    PromptVariant = "weekly_thoughts"
)

// Validate checks if the variant is known
func (v PromptVariant) Validate() error {
	switch v {
	case VariantMoodRecap, VariantJournalReflection, VariantWeeklyThoughts:
		return nil
	default:
		return goerr.Wrap(ErrInvalidVariant, "unknown variant", goerr.V("variant", v))
	}
}

// RecordType returns the label stored on the tracker record for this
// variant.
func (v PromptVariant) RecordType() string {
	switch v {
	case VariantMoodRecap:
		return "Mood Summary"
	case VariantJournalReflection:
		return "Journal Reflection"
	case VariantWeeklyThoughts:
		return "Weekly Thoughts"
	default:
		return string(v)
	}
}

// ReflectionRecord is the persisted AI reflection. ID is nil for a new
// record; the tracker assigns one on upsert. Date is either a calendar
// date or a "YYYY-Www" week label.
type ReflectionRecord struct {
	ID      *string `json:"id"`
	Date    string  `json:"date"`
	Type    string  `json:"type"`
	Summary string  `json:"summary"`
}
