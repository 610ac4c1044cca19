package model

import (
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// WeekLabel converts a calendar date ("2006-01-02") into its ISO
// week-numbering label, e.g. "2024-W1". The year is the ISO
// week-numbering year, which can differ from the calendar year around
// New Year.
func WeekLabel(date string) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", goerr.Wrap(ErrParse, "invalid calendar date", goerr.V("date", date))
	}
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%d", year, week), nil
}
