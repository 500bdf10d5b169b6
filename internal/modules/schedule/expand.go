package schedule

import (
	"time"

	"clubadmin/internal/domain"
)

// Expand turns a closed date range into one commitment row per calendar
// day. Days that already have rows in previous keep them unchanged, so
// per-day slot and category choices survive a date-range edit; days new to
// the range get a single default row. Rows for days that fell out of the
// range are dropped. When forcedCategory is set (exclusive resources pin
// their event category) it overwrites the category of every row, carried
// or new. Output is ordered by date, insertion order within a day.
func Expand(start, end time.Time, previous []domain.CommitmentRow, defaultSlot domain.TimeSlot, defaultCategory, forcedCategory string) []domain.CommitmentRow {
	first := domain.Day(start)
	last := domain.Day(end)
	if last.Before(first) {
		return []domain.CommitmentRow{}
	}

	byDay := make(map[time.Time][]domain.CommitmentRow)
	for _, row := range previous {
		d := domain.Day(row.Date)
		byDay[d] = append(byDay[d], row)
	}

	out := make([]domain.CommitmentRow, 0, int(last.Sub(first).Hours()/24)+1)
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		rows, ok := byDay[day]
		if !ok {
			rows = []domain.CommitmentRow{{Date: day, Slot: defaultSlot, Category: defaultCategory}}
		}
		for _, row := range rows {
			row.Date = day
			if forcedCategory != "" {
				row.Category = forcedCategory
			}
			out = append(out, row)
		}
	}
	return out
}
