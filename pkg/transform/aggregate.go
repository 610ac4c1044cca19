package transform

import (
	"encoding/json"
	"strings"

	"github.com/habitloop/reflector/pkg/model"
	"github.com/m-mizutani/goerr/v2"
)

// ColumnSet is a column-oriented habit section: a shared date axis
// plus one value column per habit, all expected to have equal length.
type ColumnSet struct {
	Dates   []string
	Columns map[string][]any
}

// UnmarshalJSON splits the "dates" axis from the habit columns. Every
// other key of the object is treated as a habit column.
func (c *ColumnSet) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return goerr.Wrap(model.ErrParse, "habit section is not an object", goerr.V("cause", err.Error()))
	}

	c.Columns = make(map[string][]any, len(raw))
	for key, value := range raw {
		if key == "dates" {
			if err := json.Unmarshal(value, &c.Dates); err != nil {
				return goerr.Wrap(model.ErrParse, "date axis is not a string array", goerr.V("cause", err.Error()))
			}
			continue
		}
		var column []any
		if err := json.Unmarshal(value, &column); err != nil {
			return goerr.Wrap(model.ErrParse, "habit column is not an array", goerr.V("habit", key), goerr.V("cause", err.Error()))
		}
		c.Columns[key] = column
	}
	return nil
}

// RecordList is a wrapped record sequence, e.g. {"data": [...]}.
type RecordList struct {
	Data []RawRecord `json:"data"`
}

// Snapshot is the column-oriented stored export consumed by the
// aggregation path. timeData and moneyData are passed through as-is.
type Snapshot struct {
	QuantifiableHabits ColumnSet       `json:"quantifiableHabits"`
	BooleanHabits      ColumnSet       `json:"booleanHabits"`
	NoteData           RecordList      `json:"noteData"`
	MoodData           []RawRecord     `json:"moodData"`
	JournalData        RecordList      `json:"journalData"`
	TimeData           json.RawMessage `json:"timeData"`
	MoneyData          json.RawMessage `json:"moneyData"`
}

// DayNote is the note portion of a composite day record.
type DayNote struct {
	MorningComment string  `json:"morningComment"`
	WakeHour       string  `json:"wakeHour"`
	Energy         float64 `json:"energy"`
	Success        string  `json:"success"`
	BeBetter       string  `json:"beBetter"`
	DayRating      float64 `json:"dayRating"`
	SleepTime      string  `json:"sleepTime"`
}

// MoodEntry is one mood observation within a day record.
type MoodEntry struct {
	Rating      float64 `json:"rating"`
	Comment     string  `json:"comment"`
	Tag         string  `json:"tag"`
	Description string  `json:"description"`
}

// DayRecord merges every per-day source under a single date key.
type DayRecord struct {
	QuantifiableHabits model.HabitMap `json:"quantifiableHabits"`
	BooleanHabits      model.HabitMap `json:"booleanHabits"`
	MoodData           []MoodEntry    `json:"moodData"`
	NoteData           DayNote        `json:"noteData"`
	Journal            string         `json:"journal,omitempty"`
}

// Aggregated is the row-oriented output of the aggregation path.
type Aggregated struct {
	DayData   map[string]*DayRecord `json:"dayData"`
	TimeData  json.RawMessage       `json:"timeData"`
	MoneyData json.RawMessage       `json:"moneyData"`
}

// Day returns the composite record for a date, or model.ErrMissingKey
// when no source produced that date.
func (a *Aggregated) Day(date string) (*DayRecord, error) {
	day, ok := a.DayData[date]
	if !ok {
		return nil, goerr.Wrap(model.ErrMissingKey, "no data for date", goerr.V("date", date))
	}
	return day, nil
}

// Aggregate inverts a column-oriented snapshot into per-day composite
// records. Habit values zip positionally against the shared date axis;
// a column whose length differs from the axis aborts with
// model.ErrShapeMismatch instead of silently truncating. Day records
// are created lazily on first reference from any source, so a date
// with only mood or journal data still gets a record.
func Aggregate(snap *Snapshot) (*Aggregated, error) {
	out := &Aggregated{
		DayData:   map[string]*DayRecord{},
		TimeData:  snap.TimeData,
		MoneyData: snap.MoneyData,
	}

	if err := zipColumns(out, snap.QuantifiableHabits, "quantifiableHabits"); err != nil {
		return nil, err
	}
	if err := zipColumns(out, snap.BooleanHabits, "booleanHabits"); err != nil {
		return nil, err
	}

	for i, rec := range snap.NoteData.Data {
		if err := aggregateNote(out, rec); err != nil {
			return nil, goerr.Wrap(err, "invalid note record", goerr.V("section", "noteData"), goerr.V("index", i))
		}
	}

	for i, rec := range snap.MoodData {
		if err := aggregateMood(out, rec); err != nil {
			return nil, goerr.Wrap(err, "invalid mood record", goerr.V("section", "moodData"), goerr.V("index", i))
		}
	}

	for i, rec := range snap.JournalData.Data {
		date, err := strField(rec, "date")
		if err == nil {
			var text string
			text, err = strField(rec, "journal")
			if err == nil {
				// later entries for the same date win
				ensureDay(out, date).Journal = text
				continue
			}
		}
		return nil, goerr.Wrap(err, "invalid journal record", goerr.V("section", "journalData"), goerr.V("index", i))
	}

	return out, nil
}

func zipColumns(out *Aggregated, set ColumnSet, section string) error {
	for name, column := range set.Columns {
		if len(column) != len(set.Dates) {
			return goerr.Wrap(model.ErrShapeMismatch, "habit column and date axis differ",
				goerr.V("section", section),
				goerr.V("habit", name),
				goerr.V("column_len", len(column)),
				goerr.V("axis_len", len(set.Dates)))
		}
		for i, value := range column {
			day := ensureDay(out, set.Dates[i])
			if section == "quantifiableHabits" {
				day.QuantifiableHabits[strings.ToLower(name)] = value
			} else {
				day.BooleanHabits[strings.ToLower(name)] = value
			}
		}
	}
	return nil
}

func aggregateNote(out *Aggregated, rec RawRecord) error {
	date, err := strField(rec, "date")
	if err != nil {
		return err
	}

	var note DayNote
	if note.MorningComment, err = strField(rec, "morningComment"); err != nil {
		return err
	}
	if note.WakeHour, err = strField(rec, "wakeHour"); err != nil {
		return err
	}
	if note.Energy, err = numField(rec, "energy"); err != nil {
		return err
	}
	if note.Success, err = strField(rec, "success"); err != nil {
		return err
	}
	if note.BeBetter, err = strField(rec, "beBetter"); err != nil {
		return err
	}
	if note.DayRating, err = numField(rec, "dayRating"); err != nil {
		return err
	}
	if note.SleepTime, err = strField(rec, "sleepTime"); err != nil {
		return err
	}

	ensureDay(out, date).NoteData = note
	return nil
}

func aggregateMood(out *Aggregated, rec RawRecord) error {
	ts, err := strField(rec, "date")
	if err != nil {
		return err
	}
	date, err := model.DateOfTimestamp(ts)
	if err != nil {
		return err
	}

	var entry MoodEntry
	if entry.Rating, err = numField(rec, "rating"); err != nil {
		return err
	}
	if entry.Comment, err = strField(rec, "comment"); err != nil {
		return err
	}
	if entry.Tag, err = strField(rec, "tag"); err != nil {
		return err
	}
	if entry.Description, err = strField(rec, "description"); err != nil {
		return err
	}

	day := ensureDay(out, date)
	day.MoodData = append(day.MoodData, entry)
	return nil
}

func ensureDay(out *Aggregated, date string) *DayRecord {
	if day, ok := out.DayData[date]; ok {
		return day
	}
	day := &DayRecord{
		QuantifiableHabits: model.HabitMap{},
		BooleanHabits:      model.HabitMap{},
		MoodData:           []MoodEntry{},
	}
	out.DayData[date] = day
	return day
}
