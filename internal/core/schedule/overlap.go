// Package schedule checks and summarizes weekly ad-delivery windows.
package schedule

import (
	"errors"
	"fmt"
	"sort"

	"adpaas/internal/core/domain"
)

var (
	ErrBadDay    = errors.New("day of week must be between 0 and 6")
	ErrBadMinute = errors.New("minutes must be within the day")
	ErrEmpty     = errors.New("start must be before end")
)

// CheckRange reports a format error in r. Ranges that fail this check must
// not be passed to Conflicts.
func CheckRange(r domain.ScheduleRange) error {
	if !r.Day.Valid() {
		return ErrBadDay
	}
	if r.StartMinute < 0 || r.StartMinute >= domain.MinutesPerDay ||
		r.EndMinute < 0 || r.EndMinute >= domain.MinutesPerDay {
		return ErrBadMinute
	}
	if r.StartMinute >= r.EndMinute {
		return ErrEmpty
	}
	return nil
}

// Conflict collects the overlapping pairs found on one day.
type Conflict struct {
	Day   domain.Weekday
	Pairs [][2]domain.ScheduleRange
}

// Message is the human-readable description shown to the requester.
func (c Conflict) Message() string {
	return fmt.Sprintf("schedule ranges overlap on %s", c.Day)
}

// Conflicts groups ranges by day, sorts each group by start and walks it
// pairwise. Ranges are half-open, so one ending exactly when the next starts
// does not conflict. A range overlaps when it starts before the furthest end
// seen so far that day. The result holds at most one Conflict per day, in day
// order, and is empty when nothing overlaps.
func Conflicts(ranges []domain.ScheduleRange) []Conflict {
	byDay := make(map[domain.Weekday][]domain.ScheduleRange)
	for _, r := range ranges {
		byDay[r.Day] = append(byDay[r.Day], r)
	}
	days := make([]domain.Weekday, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	var out []Conflict
	for _, d := range days {
		group := byDay[d]
		sort.SliceStable(group, func(i, j int) bool { return group[i].StartMinute < group[j].StartMinute })

		var pairs [][2]domain.ScheduleRange
		reach := group[0]
		for _, cur := range group[1:] {
			if cur.StartMinute < reach.EndMinute {
				pairs = append(pairs, [2]domain.ScheduleRange{reach, cur})
			}
			if cur.EndMinute > reach.EndMinute {
				reach = cur
			}
		}
		if len(pairs) > 0 {
			out = append(out, Conflict{Day: d, Pairs: pairs})
		}
	}
	return out
}
