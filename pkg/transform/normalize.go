package transform

import (
	"github.com/habitloop/reflector/pkg/model"
	"github.com/m-mizutani/goerr/v2"
)

// Export is the raw daily/weekly export as the tracking app ships it:
// five ordered sections of loosely-typed records.
type Export struct {
	DailyNoteData []RawRecord `json:"dailyNoteData"`
	TimeData      []RawRecord `json:"timeData"`
	MoneyData     []RawRecord `json:"moneyData"`
	MoodData      []RawRecord `json:"moodData"`
	JournalData   []RawRecord `json:"journalData"`
}

// Normalized is the canonical per-category record set produced from an
// Export. Habit maps are keyed by date; the list sections keep input
// order.
type Normalized struct {
	QuantifiableHabits map[string]model.HabitMap `json:"quantifiableHabits"`
	BooleanHabits      map[string]model.HabitMap `json:"booleanHabits"`
	DailyNoteData      []model.DailyNote         `json:"dailyNoteData"`
	TimeData           []model.TimeLog           `json:"timeData"`
	MoneyData          []model.MoneyLog          `json:"moneyData"`
	MoodData           []model.MoodLog           `json:"moodData"`
	JournalData        []model.JournalEntry      `json:"journalData"`
}

// Normalize converts a raw export into the canonical record set. It is
// a pure transform: any missing required field aborts the whole run
// with model.ErrMissingField identifying the section, record and
// field, rather than silently dropping or null-filling data.
func Normalize(export *Export) (*Normalized, error) {
	out := &Normalized{
		QuantifiableHabits: map[string]model.HabitMap{},
		BooleanHabits:      map[string]model.HabitMap{},
		DailyNoteData:      make([]model.DailyNote, 0, len(export.DailyNoteData)),
		TimeData:           make([]model.TimeLog, 0, len(export.TimeData)),
		MoneyData:          make([]model.MoneyLog, 0, len(export.MoneyData)),
		MoodData:           make([]model.MoodLog, 0, len(export.MoodData)),
		JournalData:        make([]model.JournalEntry, 0, len(export.JournalData)),
	}

	for i, rec := range export.DailyNoteData {
		note, err := normalizeDailyNote(rec, out)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid daily note record", goerr.V("section", "dailyNoteData"), goerr.V("index", i))
		}
		out.DailyNoteData = append(out.DailyNoteData, *note)
	}

	for i, rec := range export.TimeData {
		entry, err := normalizeTimeLog(rec)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid time record", goerr.V("section", "timeData"), goerr.V("index", i))
		}
		out.TimeData = append(out.TimeData, *entry)
	}

	for i, rec := range export.MoneyData {
		entry, err := normalizeMoneyLog(rec)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid money record", goerr.V("section", "moneyData"), goerr.V("index", i))
		}
		out.MoneyData = append(out.MoneyData, *entry)
	}

	for i, rec := range export.MoodData {
		entry, err := normalizeMoodLog(rec)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid mood record", goerr.V("section", "moodData"), goerr.V("index", i))
		}
		out.MoodData = append(out.MoodData, *entry)
	}

	for i, rec := range export.JournalData {
		date, err := strField(rec, "date")
		if err == nil {
			var text string
			text, err = strField(rec, "text")
			if err == nil {
				out.JournalData = append(out.JournalData, model.JournalEntry{Date: date, Text: text})
				continue
			}
		}
		return nil, goerr.Wrap(err, "invalid journal record", goerr.V("section", "journalData"), goerr.V("index", i))
	}

	return out, nil
}

// normalizeDailyNote projects one raw day record into a DailyNote and,
// when the record carries a date, copies its habit maps into the
// date-keyed collections. Duplicate dates overwrite earlier entries.
func normalizeDailyNote(rec RawRecord, out *Normalized) (*model.DailyNote, error) {
	date, err := optionalStr(rec, "date")
	if err != nil {
		return nil, err
	}

	if date != "" {
		quantifiable, err := mapField(rec, "quantifiableHabits")
		if err != nil {
			return nil, goerr.Wrap(err, "day record is unusable", goerr.V("date", date))
		}
		boolean, err := mapField(rec, "booleanHabits")
		if err != nil {
			return nil, goerr.Wrap(err, "day record is unusable", goerr.V("date", date))
		}
		out.QuantifiableHabits[date] = copyHabits(quantifiable)
		out.BooleanHabits[date] = copyHabits(boolean)
	}

	note := model.DailyNote{Date: date}
	if note.MorningComment, err = strField(rec, "morningComment"); err != nil {
		return nil, err
	}
	if note.Energy, err = numField(rec, "energy"); err != nil {
		return nil, err
	}
	if note.WakeHour, err = strField(rec, "wakeHour"); err != nil {
		return nil, err
	}
	if note.Success, err = strField(rec, "success"); err != nil {
		return nil, err
	}
	if note.BeBetter, err = strField(rec, "beBetter"); err != nil {
		return nil, err
	}
	if note.DayRating, err = numField(rec, "dayRating"); err != nil {
		return nil, err
	}
	if note.SleepTime, err = strField(rec, "sleepTime"); err != nil {
		return nil, err
	}
	return &note, nil
}

func normalizeTimeLog(rec RawRecord) (*model.TimeLog, error) {
	var entry model.TimeLog
	var err error
	if entry.Date, err = strField(rec, "date"); err != nil {
		return nil, err
	}
	if entry.Tag, err = strField(rec, "tag"); err != nil {
		return nil, err
	}
	if entry.Description, err = strField(rec, "description"); err != nil {
		return nil, err
	}
	if entry.Duration, err = numField(rec, "duration"); err != nil {
		return nil, err
	}
	if entry.StartTime, err = strField(rec, "startTime"); err != nil {
		return nil, err
	}
	if entry.EndTime, err = strField(rec, "endTime"); err != nil {
		return nil, err
	}
	return &entry, nil
}

func normalizeMoneyLog(rec RawRecord) (*model.MoneyLog, error) {
	var entry model.MoneyLog
	var err error
	if entry.Date, err = strField(rec, "date"); err != nil {
		return nil, err
	}
	if entry.Amount, err = numField(rec, "amount"); err != nil {
		return nil, err
	}
	if entry.Type, err = strField(rec, "type"); err != nil {
		return nil, err
	}
	if entry.Tag, err = strField(rec, "tag"); err != nil {
		return nil, err
	}
	if entry.Description, err = strField(rec, "description"); err != nil {
		return nil, err
	}
	return &entry, nil
}

func normalizeMoodLog(rec RawRecord) (*model.MoodLog, error) {
	var entry model.MoodLog
	var err error
	if entry.Date, err = strField(rec, "date"); err != nil {
		return nil, err
	}
	if entry.Rating, err = numField(rec, "rating"); err != nil {
		return nil, err
	}
	if entry.Comment, err = strField(rec, "comment"); err != nil {
		return nil, err
	}
	if entry.Tag, err = strField(rec, "tag"); err != nil {
		return nil, err
	}
	if entry.Description, err = strField(rec, "description"); err != nil {
		return nil, err
	}
	return &entry, nil
}

func copyHabits(src map[string]any) model.HabitMap {
	dst := make(model.HabitMap, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
