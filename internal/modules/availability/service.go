package availability

import (
	"fmt"
	"time"

	"clubadmin/internal/domain"
)

type Severity int

const (
	SeverityNone Severity = iota
	SeveritySoft
	SeverityHard
)

func (s Severity) String() string {
	switch s {
	case SeverityHard:
		return "hard"
	case SeveritySoft:
		return "soft"
	default:
		return "none"
	}
}

// BookingCommitment is the slice of an existing booking the resolver needs:
// which booking, which resource, which date+slot rows.
type BookingCommitment struct {
	BookingID  int64
	ResourceID int64
	Rows       []domain.CommitmentRow
}

// Snapshot is a consistent read of everything committed on a resource.
// The resolver is pure: the same snapshot always classifies the same way,
// and serializing concurrent booking attempts is the caller's problem.
type Snapshot struct {
	Bookings    []BookingCommitment
	Holds       []domain.Hold
	Maintenance []domain.MaintenancePeriod
}

type Result struct {
	Severity Severity
	Message  string
	Date     time.Time
	Slot     domain.TimeSlot
}

func (r Result) HasConflict() bool { return r.Severity != SeverityNone }

// Blocks reports whether the result stops a submission. A force flag gets
// past a soft conflict (overriding holds) but never past a hard one.
func (r Result) Blocks(force bool) bool {
	if r.Severity == SeverityHard {
		return true
	}
	return r.Severity == SeveritySoft && !force
}

// CheckConflict classifies the requested rows against the snapshot.
// Severity across rows is the maximum found; the message, date and slot
// are taken from the first conflicting row.
func CheckConflict(res domain.Resource, rows []domain.CommitmentRow, snap Snapshot, excludeBookingID int64) Result {
	out := Result{Severity: SeverityNone}

	if res.OutOfService {
		out.Severity = SeverityHard
		out.Message = fmt.Sprintf("%s is out of service", res.Name)
		return out
	}

	for _, row := range rows {
		sev, msg := classify(res, row.Date, row.Slot, snap, excludeBookingID)
		if sev == SeverityNone {
			continue
		}
		if !out.HasConflict() {
			out.Message = msg
			out.Date = domain.Day(row.Date)
			out.Slot = row.Slot
		}
		if sev > out.Severity {
			out.Severity = sev
		}
		if out.Severity == SeverityHard {
			// nothing outranks hard; message is already the first conflict's
			break
		}
	}
	return out
}

// AvailableSlots returns the slots of slotSet that are neither hard- nor
// soft-blocked on the given date. It runs the same classification as
// CheckConflict, so a slot reported here can never come back as a hard
// conflict for the same snapshot.
func AvailableSlots(res domain.Resource, date time.Time, slotSet []domain.TimeSlot, snap Snapshot) []domain.TimeSlot {
	free := make([]domain.TimeSlot, 0, len(slotSet))
	if res.OutOfService {
		return free
	}
	for _, slot := range slotSet {
		if sev, _ := classify(res, date, slot, snap, 0); sev == SeverityNone {
			free = append(free, slot)
		}
	}
	return free
}

func classify(res domain.Resource, date time.Time, slot domain.TimeSlot, snap Snapshot, excludeBookingID int64) (Severity, string) {
	for _, m := range snap.Maintenance {
		if m.ResourceID == res.ID && m.Covers(date) {
			return SeverityHard, fmt.Sprintf("%s is under maintenance (%s)", res.Name, m.Reason)
		}
	}

	if res.IsExclusive {
		// one party owns the whole day: any commitment on the date blocks
		// every slot, holds included
		for _, b := range snap.Bookings {
			if b.BookingID == excludeBookingID || b.ResourceID != res.ID {
				continue
			}
			for _, r := range b.Rows {
				if domain.SameDay(r.Date, date) {
					return SeverityHard, fmt.Sprintf("%s is already booked for %s", res.Name, domain.Day(date).Format("2006-01-02"))
				}
			}
		}
		for _, h := range snap.Holds {
			if h.ResourceID == res.ID && h.Covers(date) {
				return SeverityHard, fmt.Sprintf("%s is held for %s", res.Name, domain.Day(date).Format("2006-01-02"))
			}
		}
		return SeverityNone, ""
	}

	for _, b := range snap.Bookings {
		if b.BookingID == excludeBookingID || b.ResourceID != res.ID {
			continue
		}
		for _, r := range b.Rows {
			if r.Slot == slot && domain.SameDay(r.Date, date) {
				return SeverityHard, fmt.Sprintf("%s is already booked for %s (%s)", res.Name, domain.Day(date).Format("2006-01-02"), slot)
			}
		}
	}

	for _, h := range snap.Holds {
		if h.ResourceID == res.ID && h.Slot == slot && h.Covers(date) {
			return SeveritySoft, fmt.Sprintf("%s is currently held for %s (%s); proceeding will override the hold", res.Name, domain.Day(date).Format("2006-01-02"), slot)
		}
	}

	return SeverityNone, ""
}
