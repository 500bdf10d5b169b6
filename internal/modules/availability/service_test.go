package availability

import (
	"testing"
	"time"

	"clubadmin/internal/domain"

	"github.com/stretchr/testify/assert"
)

func testHall() domain.Resource {
	return domain.Resource{
		ID:       1,
		Name:     "Crystal Hall",
		Category: domain.CategoryHall,
		IsActive: true,
	}
}

func day(d int) time.Time {
	return time.Date(2026, 11, d, 0, 0, 0, 0, time.UTC)
}

func rows(d int, slots ...domain.TimeSlot) []domain.CommitmentRow {
	out := make([]domain.CommitmentRow, 0, len(slots))
	for _, s := range slots {
		out = append(out, domain.CommitmentRow{Date: day(d), Slot: s})
	}
	return out
}

func TestCheckConflict_NoCommitments(t *testing.T) {
	res := testHall()

	result := CheckConflict(res, rows(10, domain.SlotDay), Snapshot{}, 0)

	assert.False(t, result.HasConflict())
	assert.Equal(t, SeverityNone, result.Severity)
	assert.False(t, result.Blocks(false))
}

func TestCheckConflict_Maintenance_Hard(t *testing.T) {
	res := testHall()
	snap := Snapshot{
		Maintenance: []domain.MaintenancePeriod{
			{ID: 1, ResourceID: res.ID, StartDate: day(9), EndDate: day(11), Reason: "floor repair"},
		},
	}

	result := CheckConflict(res, rows(10, domain.SlotDay), snap, 0)

	assert.Equal(t, SeverityHard, result.Severity)
	assert.Contains(t, result.Message, "maintenance")
	assert.True(t, result.Blocks(true), "maintenance is never overridable")
}

func TestCheckConflict_SameSlotBooking_Hard(t *testing.T) {
	res := testHall()
	snap := Snapshot{
		Bookings: []BookingCommitment{
			{BookingID: 7, ResourceID: res.ID, Rows: rows(10, domain.SlotNight)},
		},
	}

	// same day, other slot: free
	result := CheckConflict(res, rows(10, domain.SlotDay), snap, 0)
	assert.Equal(t, SeverityNone, result.Severity)

	// same day, same slot: hard
	result = CheckConflict(res, rows(10, domain.SlotNight), snap, 0)
	assert.Equal(t, SeverityHard, result.Severity)
	assert.True(t, result.Blocks(true))
}

func TestCheckConflict_Exclusive_BlocksWholeDay(t *testing.T) {
	res := testHall()
	res.IsExclusive = true
	snap := Snapshot{
		Bookings: []BookingCommitment{
			{BookingID: 7, ResourceID: res.ID, Rows: rows(10, domain.SlotNight)},
		},
	}

	result := CheckConflict(res, rows(10, domain.SlotDay), snap, 0)

	assert.Equal(t, SeverityHard, result.Severity, "exclusive resource blocks every slot on a committed day")
}

func TestCheckConflict_Exclusive_HoldIsHard(t *testing.T) {
	res := testHall()
	res.IsExclusive = true
	snap := Snapshot{
		Holds: []domain.Hold{
			{ID: 3, ResourceID: res.ID, StartDate: day(10), EndDate: day(10), Slot: domain.SlotNight},
		},
	}

	result := CheckConflict(res, rows(10, domain.SlotDay), snap, 0)

	assert.Equal(t, SeverityHard, result.Severity)
	assert.True(t, result.Blocks(true), "holds on exclusive resources cannot be forced past")
}

func TestCheckConflict_Hold_SoftAndForceable(t *testing.T) {
	res := testHall()
	snap := Snapshot{
		Holds: []domain.Hold{
			{ID: 3, ResourceID: res.ID, StartDate: day(9), EndDate: day(11), Slot: domain.SlotDay},
		},
	}

	result := CheckConflict(res, rows(10, domain.SlotDay), snap, 0)

	assert.Equal(t, SeveritySoft, result.Severity)
	assert.Contains(t, result.Message, "held")
	assert.True(t, result.Blocks(false))
	assert.False(t, result.Blocks(true), "force overrides a soft conflict")
}

func TestCheckConflict_SelfExclusion(t *testing.T) {
	res := testHall()
	snap := Snapshot{
		Bookings: []BookingCommitment{
			{BookingID: 42, ResourceID: res.ID, Rows: rows(10, domain.SlotDay)},
		},
	}

	// editing booking 42 against its own unchanged rows
	result := CheckConflict(res, rows(10, domain.SlotDay), snap, 42)

	assert.False(t, result.HasConflict())
}

func TestCheckConflict_OtherResourceIgnored(t *testing.T) {
	res := testHall()
	snap := Snapshot{
		Bookings: []BookingCommitment{
			{BookingID: 7, ResourceID: 99, Rows: rows(10, domain.SlotDay)},
		},
		Holds: []domain.Hold{
			{ID: 3, ResourceID: 99, StartDate: day(10), EndDate: day(10), Slot: domain.SlotDay},
		},
	}

	result := CheckConflict(res, rows(10, domain.SlotDay), snap, 0)

	assert.False(t, result.HasConflict())
}

func TestCheckConflict_MaxSeverity_FirstMessage(t *testing.T) {
	res := testHall()
	snap := Snapshot{
		Holds: []domain.Hold{
			{ID: 3, ResourceID: res.ID, StartDate: day(10), EndDate: day(10), Slot: domain.SlotDay},
		},
		Bookings: []BookingCommitment{
			{BookingID: 7, ResourceID: res.ID, Rows: rows(11, domain.SlotDay)},
		},
	}

	reqRows := append(rows(10, domain.SlotDay), rows(11, domain.SlotDay)...)
	result := CheckConflict(res, reqRows, snap, 0)

	assert.Equal(t, SeverityHard, result.Severity, "severity is the max across rows")
	assert.Contains(t, result.Message, "held", "message comes from the first conflicting row")
	assert.Equal(t, day(10), result.Date)
}

func TestCheckConflict_OutOfService(t *testing.T) {
	res := testHall()
	res.OutOfService = true

	result := CheckConflict(res, rows(10, domain.SlotDay), Snapshot{}, 0)

	assert.Equal(t, SeverityHard, result.Severity)
}

func TestAvailableSlots_SubsetOfFree(t *testing.T) {
	res := testHall()
	snap := Snapshot{
		Bookings: []BookingCommitment{
			{BookingID: 7, ResourceID: res.ID, Rows: rows(10, domain.SlotDay)},
		},
	}

	free := AvailableSlots(res, day(10), domain.SlotsFor(res.Category), snap)

	assert.Equal(t, []domain.TimeSlot{domain.SlotNight}, free)
}

func TestAvailableSlots_HoldBlocksToo(t *testing.T) {
	res := testHall()
	snap := Snapshot{
		Holds: []domain.Hold{
			{ID: 3, ResourceID: res.ID, StartDate: day(10), EndDate: day(10), Slot: domain.SlotNight},
		},
	}

	free := AvailableSlots(res, day(10), domain.SlotsFor(res.Category), snap)

	assert.Equal(t, []domain.TimeSlot{domain.SlotDay}, free, "soft-held slots are not offered")
}

// Every slot AvailableSlots returns must classify as NONE for the same
// snapshot, never as a hard conflict.
func TestAvailableSlots_ConsistentWithCheckConflict(t *testing.T) {
	res := testHall()
	snap := Snapshot{
		Bookings: []BookingCommitment{
			{BookingID: 7, ResourceID: res.ID, Rows: rows(10, domain.SlotDay)},
		},
		Holds: []domain.Hold{
			{ID: 3, ResourceID: res.ID, StartDate: day(10), EndDate: day(10), Slot: domain.SlotNight},
		},
		Maintenance: []domain.MaintenancePeriod{
			{ID: 1, ResourceID: res.ID, StartDate: day(12), EndDate: day(12), Reason: "paint"},
		},
	}

	for d := 9; d <= 13; d++ {
		free := AvailableSlots(res, day(d), domain.SlotsFor(res.Category), snap)
		for _, slot := range free {
			result := CheckConflict(res, []domain.CommitmentRow{{Date: day(d), Slot: slot}}, snap, 0)
			assert.Equal(t, SeverityNone, result.Severity,
				"slot %s on day %d was offered but conflicts", slot, d)
		}
	}
}

func TestAvailableSlots_OutOfService_Empty(t *testing.T) {
	res := testHall()
	res.OutOfService = true

	free := AvailableSlots(res, day(10), domain.SlotsFor(res.Category), Snapshot{})

	assert.Empty(t, free)
}
