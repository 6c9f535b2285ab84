package domain

import "time"

// DayOf truncates t to midnight of its calendar date in loc.
func DayOf(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}

// DayAvailability is the bookable-gap report for one vehicle and date. It is
// advisory: readers tolerate a slightly stale snapshot, admission re-checks
// under the vehicle lock.
type DayAvailability struct {
	VehicleID   string     `json:"vehicle_id"`
	Day         time.Time  `json:"day"`
	Gaps        []Interval `json:"gaps"`
	FullyBooked bool       `json:"fully_booked"`
}

// ConsecutiveRun returns the length in days of the maximal unbroken run of
// calendar dates through candidate, given the member's existing reservation
// dates. The candidate counts as already held, so a member with days 1 and 2
// asking for day 3 gets a run of 3. Dates must be midnight-truncated in the
// same location; duplicates are harmless.
func ConsecutiveRun(dates []time.Time, candidate time.Time) int {
	held := make(map[time.Time]struct{}, len(dates)+1)
	for _, d := range dates {
		held[d] = struct{}{}
	}
	held[candidate] = struct{}{}

	run := 1
	for d := candidate.AddDate(0, 0, -1); ; d = d.AddDate(0, 0, -1) {
		if _, ok := held[d]; !ok {
			break
		}
		run++
	}
	for d := candidate.AddDate(0, 0, 1); ; d = d.AddDate(0, 0, 1) {
		if _, ok := held[d]; !ok {
			break
		}
		run++
	}
	return run
}
