package schedule

import (
	"testing"
	"time"

	"clubadmin/internal/domain"

	"github.com/stretchr/testify/assert"
)

func d(day int) time.Time {
	return time.Date(2026, 11, day, 0, 0, 0, 0, time.UTC)
}

func TestExpand_FreshRange(t *testing.T) {
	rows := Expand(d(10), d(12), nil, domain.SlotDay, "reception", "")

	assert.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, d(10+i), row.Date)
		assert.Equal(t, domain.SlotDay, row.Slot)
		assert.Equal(t, "reception", row.Category)
	}
}

func TestExpand_SingleDay(t *testing.T) {
	rows := Expand(d(10), d(10), nil, domain.SlotNight, "", "")

	assert.Len(t, rows, 1)
	assert.Equal(t, d(10), rows[0].Date)
}

func TestExpand_EndBeforeStart(t *testing.T) {
	rows := Expand(d(12), d(10), nil, domain.SlotDay, "", "")

	assert.Empty(t, rows)
}

func TestExpand_PreservesCustomizedDays(t *testing.T) {
	prev := []domain.CommitmentRow{
		{Date: d(10), Slot: domain.SlotDay, Category: "mehndi"},
		{Date: d(11), Slot: domain.SlotDay, Category: "reception"},
		{Date: d(11), Slot: domain.SlotNight, Category: "reception"},
		{Date: d(12), Slot: domain.SlotNight, Category: "walima"},
	}

	// extend the range by one day: day 11 keeps both its rows, day 13 is new
	rows := Expand(d(10), d(13), prev, domain.SlotDay, "reception", "")

	assert.Len(t, rows, 5)
	assert.Equal(t, prev[0], rows[0])
	assert.Equal(t, prev[1], rows[1])
	assert.Equal(t, prev[2], rows[2])
	assert.Equal(t, prev[3], rows[3])
	assert.Equal(t, domain.CommitmentRow{Date: d(13), Slot: domain.SlotDay, Category: "reception"}, rows[4])
}

func TestExpand_DropsOutOfRangeRows(t *testing.T) {
	prev := []domain.CommitmentRow{
		{Date: d(9), Slot: domain.SlotNight, Category: "setup"},
		{Date: d(10), Slot: domain.SlotDay, Category: "reception"},
		{Date: d(14), Slot: domain.SlotDay, Category: "teardown"},
	}

	rows := Expand(d(10), d(11), prev, domain.SlotDay, "reception", "")

	assert.Len(t, rows, 2)
	assert.Equal(t, d(10), rows[0].Date)
	assert.Equal(t, "reception", rows[0].Category)
	assert.Equal(t, d(11), rows[1].Date)
}

func TestExpand_ForcedCategoryOverwritesAll(t *testing.T) {
	prev := []domain.CommitmentRow{
		{Date: d(10), Slot: domain.SlotNight, Category: "mehndi"},
	}

	rows := Expand(d(10), d(11), prev, domain.SlotDay, "reception", "wedding")

	assert.Len(t, rows, 2)
	assert.Equal(t, "wedding", rows[0].Category)
	assert.Equal(t, domain.SlotNight, rows[0].Slot, "carried row keeps its slot")
	assert.Equal(t, "wedding", rows[1].Category)
}

func TestExpand_SortedByDate(t *testing.T) {
	prev := []domain.CommitmentRow{
		{Date: d(12), Slot: domain.SlotNight},
		{Date: d(10), Slot: domain.SlotNight},
	}

	rows := Expand(d(10), d(12), prev, domain.SlotDay, "", "")

	for i := 1; i < len(rows); i++ {
		assert.False(t, rows[i].Date.Before(rows[i-1].Date))
	}
}

func TestExpand_NormalizesTimestamps(t *testing.T) {
	start := time.Date(2026, 11, 10, 18, 30, 0, 0, time.UTC)
	end := time.Date(2026, 11, 11, 9, 0, 0, 0, time.UTC)

	rows := Expand(start, end, nil, domain.SlotDay, "", "")

	assert.Len(t, rows, 2)
	assert.Equal(t, d(10), rows[0].Date)
	assert.Equal(t, d(11), rows[1].Date)
}
