package domain

import (
	"sync"
	"time"
)

// editorialTimezone is the fixed civil timezone for edition cutoffs.
const editorialTimezone = "Europe/Berlin"

// windowCutoverHour is the daily editorial publication cutoff (18:00 local).
const windowCutoverHour = 18

var (
	editorialLoc     *time.Location
	editorialLocOnce sync.Once
)

// EditorialLocation returns the fixed civil timezone used for all window math.
// Falls back to UTC if the zone database is unavailable.
func EditorialLocation() *time.Location {
	editorialLocOnce.Do(func() {
		loc, err := time.LoadLocation(editorialTimezone)
		if err != nil {
			loc = time.UTC
		}
		editorialLoc = loc
	})

	return editorialLoc
}

// IngestionWindow is the time span one pipeline run harvests.
// Start is yesterday's editorial cutoff, End is the moment the run began.
type IngestionWindow struct {
	Start time.Time
	End   time.Time
}

// ComputeIngestionWindow derives the window from the current wall clock.
// Editorial batches follow a fixed daily 18:00 cutoff rather than midnight,
// so a run started at any time of day captures a stable editorial day.
func ComputeIngestionWindow(now time.Time) IngestionWindow {
	local := now.In(EditorialLocation())
	yesterday := local.AddDate(0, 0, -1)

	return IngestionWindow{
		Start: time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(),
			windowCutoverHour, 0, 0, 0, EditorialLocation()),
		End: local,
	}
}

// Contains reports whether t falls inside the window, inclusive at both ends.
func (w IngestionWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// EditionDate returns the calendar date (at midnight, editorial timezone) the
// window's scoops are attached to.
func (w IngestionWindow) EditionDate() time.Time {
	end := w.End.In(EditorialLocation())
	return time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, EditorialLocation())
}
