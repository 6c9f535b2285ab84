package domain

import (
	"sort"
	"time"
)

// Interval is a half-open time window [Start, End). Half-open endpoints let
// back-to-back bookings share a boundary without overlapping.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

func (i Interval) Empty() bool {
	return !i.Start.Before(i.End)
}

type OccupancyKind string

const (
	OccupancyReservation OccupancyKind = "reservation"
	OccupancyBlackout    OccupancyKind = "blackout"
)

// Occupancy is a slot-holding window on a vehicle's schedule: an active or
// pending reservation, or a blackout.
type Occupancy struct {
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	Kind     OccupancyKind `json:"kind"`
	HolderID string        `json:"holder_id,omitempty"`
	Detail   string        `json:"detail,omitempty"`
}

func (o Occupancy) Interval() Interval {
	return Interval{Start: o.Start, End: o.End}
}

// MergeIntervals collapses overlapping and touching intervals into a sorted,
// disjoint set. The input is not modified.
func MergeIntervals(in []Interval) []Interval {
	if len(in) == 0 {
		return nil
	}
	sorted := make([]Interval, len(in))
	copy(sorted, in)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start.Before(sorted[j].Start) })

	merged := []Interval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if !iv.Start.After(last.End) {
			if iv.End.After(last.End) {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// FreeGaps subtracts the occupied intervals from the operating window and
// clamps every gap inward to whole multiples of grain, measured from the
// window start. Gaps shorter than grain after clamping are dropped.
//
// This works on the merged occupancy set rather than counting rows:
// back-to-back short bookings can leave fragments no reservation fits into.
func FreeGaps(window Interval, occupied []Interval, grain time.Duration) []Interval {
	if window.Empty() {
		return nil
	}

	var clipped []Interval
	for _, iv := range occupied {
		if !iv.Overlaps(window) {
			continue
		}
		if iv.Start.Before(window.Start) {
			iv.Start = window.Start
		}
		if iv.End.After(window.End) {
			iv.End = window.End
		}
		clipped = append(clipped, iv)
	}

	var gaps []Interval
	cursor := window.Start
	for _, iv := range MergeIntervals(clipped) {
		if iv.Start.After(cursor) {
			gaps = append(gaps, Interval{Start: cursor, End: iv.Start})
		}
		if iv.End.After(cursor) {
			cursor = iv.End
		}
	}
	if cursor.Before(window.End) {
		gaps = append(gaps, Interval{Start: cursor, End: window.End})
	}

	var snapped []Interval
	for _, g := range gaps {
		g = snapInward(window.Start, g, grain)
		if !g.Empty() && g.Duration() >= grain {
			snapped = append(snapped, g)
		}
	}
	return snapped
}

// snapInward rounds the gap start up and the gap end down to grain boundaries
// relative to origin.
func snapInward(origin time.Time, g Interval, grain time.Duration) Interval {
	if grain <= 0 {
		return g
	}
	startOff := g.Start.Sub(origin)
	if rem := startOff % grain; rem != 0 {
		g.Start = g.Start.Add(grain - rem)
	}
	endOff := g.End.Sub(origin)
	if rem := endOff % grain; rem != 0 {
		g.End = g.End.Add(-rem)
	}
	return g
}

// FullyBooked reports whether no free gap can hold a reservation of minDur.
func FullyBooked(gaps []Interval, minDur time.Duration) bool {
	for _, g := range gaps {
		if g.Duration() >= minDur {
			return false
		}
	}
	return true
}
