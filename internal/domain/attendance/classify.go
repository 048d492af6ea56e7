package attendance

import "time"

// ClassifyToday derives the display status for an employee's current day.
// Pure and read-only: reporting must never write state from classification.
//
// With a record, the stored status wins. Without one, the day is pending
// until an hour past the scheduled entry time, then absent.
func ClassifyToday(scheduledEntry time.Time, record *Attendance, now time.Time) Status {
	if record != nil {
		return record.Status
	}
	if now.Before(scheduledEntry.Add(AbsenceWindow)) {
		return StatusPending
	}
	return StatusAbsent
}
