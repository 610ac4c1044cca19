package transform_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/habitloop/reflector/pkg/model"
	"github.com/habitloop/reflector/pkg/transform"
)

const sampleSnapshot = `{
  "quantifiableHabits": {
    "dates": ["2024-06-01", "2024-06-02"],
    "Steps": [8000, 9500],
    "Pages": [20, 0]
  },
  "booleanHabits": {
    "dates": ["2024-06-01", "2024-06-02"],
    "Meditated": [true, false]
  },
  "noteData": {
    "data": [
      {
        "date": "2024-06-01",
        "morningComment": "ok",
        "wakeHour": "07:00",
        "energy": 7,
        "success": "yes",
        "beBetter": "sleep earlier",
        "dayRating": 8,
        "sleepTime": "23:00"
      }
    ]
  },
  "moodData": [
    {"date": "2024-06-01T08:00:00Z", "rating": 4, "comment": "fresh", "tag": "morning", "description": ""},
    {"date": "2024-06-01T21:00:00Z", "rating": 3, "comment": "tired", "tag": "evening", "description": ""},
    {"date": "2024-06-03T12:00:00Z", "rating": 5, "comment": "great", "tag": "midday", "description": ""}
  ],
  "journalData": {
    "data": [
      {"date": "2024-06-02", "journal": "first draft"},
      {"date": "2024-06-02", "journal": "final version"}
    ]
  },
  "timeData": [{"date": "2024-06-01", "duration": 30}],
  "moneyData": [{"date": "2024-06-01", "amount": -12.5}]
}`

func loadSnapshot(t *testing.T, raw string) *transform.Snapshot {
	t.Helper()
	var snap transform.Snapshot
	gt.NoError(t, json.Unmarshal([]byte(raw), &snap))
	return &snap
}

func TestAggregateZipsColumnsByDate(t *testing.T) {
	aggregated, err := transform.Aggregate(loadSnapshot(t, sampleSnapshot))
	gt.NoError(t, err)

	day1, err := aggregated.Day("2024-06-01")
	gt.NoError(t, err)
	gt.V(t, day1.QuantifiableHabits["steps"]).Equal(float64(8000))
	gt.V(t, day1.QuantifiableHabits["pages"]).Equal(float64(20))
	gt.V(t, day1.BooleanHabits["meditated"]).Equal(true)

	day2, err := aggregated.Day("2024-06-02")
	gt.NoError(t, err)
	gt.V(t, day2.QuantifiableHabits["steps"]).Equal(float64(9500))
	gt.V(t, day2.BooleanHabits["meditated"]).Equal(false)
}

func TestAggregateLowercasesHabitNames(t *testing.T) {
	aggregated, err := transform.Aggregate(loadSnapshot(t, sampleSnapshot))
	gt.NoError(t, err)

	day, err := aggregated.Day("2024-06-01")
	gt.NoError(t, err)
	_, upper := day.QuantifiableHabits["Steps"]
	gt.V(t, upper).Equal(false)
	_, lower := day.QuantifiableHabits["steps"]
	gt.V(t, lower).Equal(true)
}

func TestAggregateKeysNotesByOwnDate(t *testing.T) {
	aggregated, err := transform.Aggregate(loadSnapshot(t, sampleSnapshot))
	gt.NoError(t, err)

	day, err := aggregated.Day("2024-06-01")
	gt.NoError(t, err)
	gt.V(t, day.NoteData).Equal(transform.DayNote{
		MorningComment: "ok",
		WakeHour:       "07:00",
		Energy:         7,
		Success:        "yes",
		BeBetter:       "sleep earlier",
		DayRating:      8,
		SleepTime:      "23:00",
	})
}

func TestAggregateMoodTruncatesTimestamp(t *testing.T) {
	aggregated, err := transform.Aggregate(loadSnapshot(t, sampleSnapshot))
	gt.NoError(t, err)

	day, err := aggregated.Day("2024-06-01")
	gt.NoError(t, err)
	gt.V(t, len(day.MoodData)).Equal(2)
	gt.V(t, day.MoodData[0].Rating).Equal(float64(4))
	gt.V(t, day.MoodData[1].Comment).Equal("tired")
}

// A date with only mood data still gets a day record.
func TestAggregateMoodCreatesDayLazily(t *testing.T) {
	aggregated, err := transform.Aggregate(loadSnapshot(t, sampleSnapshot))
	gt.NoError(t, err)

	day, err := aggregated.Day("2024-06-03")
	gt.NoError(t, err)
	gt.V(t, len(day.MoodData)).Equal(1)
	gt.V(t, day.MoodData[0].Rating).Equal(float64(5))
	gt.V(t, len(day.QuantifiableHabits)).Equal(0)
}

func TestAggregateJournalOverwritesDuplicates(t *testing.T) {
	aggregated, err := transform.Aggregate(loadSnapshot(t, sampleSnapshot))
	gt.NoError(t, err)

	day, err := aggregated.Day("2024-06-02")
	gt.NoError(t, err)
	gt.V(t, day.Journal).Equal("final version")
}

func TestAggregatePassesThroughTimeAndMoney(t *testing.T) {
	aggregated, err := transform.Aggregate(loadSnapshot(t, sampleSnapshot))
	gt.NoError(t, err)

	var timeData []map[string]any
	gt.NoError(t, json.Unmarshal(aggregated.TimeData, &timeData))
	gt.V(t, timeData[0]["duration"]).Equal(float64(30))

	var moneyData []map[string]any
	gt.NoError(t, json.Unmarshal(aggregated.MoneyData, &moneyData))
	gt.V(t, moneyData[0]["amount"]).Equal(float64(-12.5))
}

func TestAggregateShapeMismatch(t *testing.T) {
	snap := loadSnapshot(t, `{
	  "quantifiableHabits": {
	    "dates": ["2024-06-01", "2024-06-02"],
	    "steps": [8000]
	  }
	}`)

	_, err := transform.Aggregate(snap)
	gt.Error(t, err)
	gt.V(t, errors.Is(err, model.ErrShapeMismatch)).Equal(true)

	values := goerr.Values(err)
	gt.V(t, values["habit"]).Equal("steps")
	gt.V(t, values["column_len"]).Equal(1)
	gt.V(t, values["axis_len"]).Equal(2)
}

func TestAggregateDayCountMatchesAxis(t *testing.T) {
	aggregated, err := transform.Aggregate(loadSnapshot(t, sampleSnapshot))
	gt.NoError(t, err)

	// 2 habit dates + 2024-06-03 from mood data
	gt.V(t, len(aggregated.DayData)).Equal(3)
}

func TestAggregateUnknownDay(t *testing.T) {
	aggregated, err := transform.Aggregate(loadSnapshot(t, sampleSnapshot))
	gt.NoError(t, err)

	_, err = aggregated.Day("1999-01-01")
	gt.Error(t, err)
	gt.V(t, errors.Is(err, model.ErrMissingKey)).Equal(true)
}

func TestAggregateMalformedMoodTimestamp(t *testing.T) {
	snap := loadSnapshot(t, `{
	  "moodData": [
	    {"date": "bad", "rating": 3, "comment": "", "tag": "", "description": ""}
	  ]
	}`)

	_, err := transform.Aggregate(snap)
	gt.Error(t, err)
	gt.V(t, errors.Is(err, model.ErrParse)).Equal(true)
}
