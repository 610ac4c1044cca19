package model

import "github.com/m-mizutani/goerr/v2"

// DailyNote is the per-day note projection. Date may be empty when the
// source record carried no date; the note is still kept.
type DailyNote struct {
	Date           string  `json:"date"`
	MorningComment string  `json:"morningComment"`
	Energy         float64 `json:"energy"`
	WakeHour       string  `json:"wakeHour"`
	Success        string  `json:"success"`
	BeBetter       string  `json:"beBetter"`
	DayRating      float64 `json:"dayRating"`
	SleepTime      string  `json:"sleepTime"`
}

// HabitMap maps habit name to its recorded value for one day. Values
// pass through untyped; the export does not guarantee value types.
type HabitMap map[string]any

// TimeLog is a single time-tracking entry. Duration unit is whatever
// the export used, it is never reinterpreted.
type TimeLog struct {
	Date        string  `json:"date"`
	Tag         string  `json:"tag"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
}

// MoneyLog is a single money-tracking entry.
type MoneyLog struct {
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Tag         string  `json:"tag"`
	Description string  `json:"description"`
}

// MoodLog is a single mood entry. Date carries the original ISO-8601
// timestamp; only its first 10 characters are a calendar date.
type MoodLog struct {
	Date        string  `json:"date"`
	Rating      float64 `json:"rating"`
	Comment     string  `json:"comment"`
	Tag         string  `json:"tag"`
	Description string  `json:"description"`
}

// JournalEntry is a free-form journal text for one date.
type JournalEntry struct {
	Date string `json:"date"`
	Text string `json:"text"`
}

// Pillar is a user-defined life-focus category fetched from the
// tracker service. Read-only context for weekly goal generation.
type Pillar struct {
	UUID  string `json:"uuid"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

// DateOfTimestamp truncates an ISO-8601 timestamp to its calendar date
// portion ("2024-03-05T14:30:00Z" -> "2024-03-05").
func DateOfTimestamp(ts string) (string, error) {
	if len(ts) < 10 {
		return "", goerr.Wrap(ErrParse, "timestamp too short for a calendar date", goerr.V("timestamp", ts))
	}
	return ts[:10], nil
}
