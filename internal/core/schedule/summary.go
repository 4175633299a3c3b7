package schedule

import (
	"fmt"
	"slices"
	"strings"

	"adpaas/internal/core/domain"
)

// Placeholder is rendered for an empty schedule.
const Placeholder = "—"

// FormatMinutes renders minutes after midnight as HH:MM.
func FormatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Window renders a start/end pair as "HH:MM–HH:MM".
func Window(start, end int) string {
	return FormatMinutes(start) + "–" + FormatMinutes(end)
}

// CompressDays sorts the distinct days and merges consecutive ones into
// runs. A lone day renders as its label, a run of two or more as
// "first–last". Runs are joined with ", ".
func CompressDays(days []domain.Weekday) string {
	if len(days) == 0 {
		return ""
	}
	sorted := slices.Clone(days)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	parts := make([]string, 0, len(sorted))
	start, prev := sorted[0], sorted[0]
	flush := func() {
		if start == prev {
			parts = append(parts, start.String())
		} else {
			parts = append(parts, start.String()+"–"+prev.String())
		}
	}
	for _, d := range sorted[1:] {
		if d == prev+1 {
			prev = d
			continue
		}
		flush()
		start, prev = d, d
	}
	flush()
	return strings.Join(parts, ", ")
}

// Summarize compresses a schedule for display: ranges sharing the same
// window are grouped in order of first appearance, and each group renders as
// its compressed days followed by the window, e.g. "Mon–Fri 08:00–16:00".
func Summarize(ranges []domain.ScheduleRange) string {
	if len(ranges) == 0 {
		return Placeholder
	}
	type window struct{ start, end int }
	var order []window
	days := make(map[window][]domain.Weekday)
	for _, r := range ranges {
		w := window{r.StartMinute, r.EndMinute}
		if _, ok := days[w]; !ok {
			order = append(order, w)
		}
		days[w] = append(days[w], r.Day)
	}
	groups := make([]string, 0, len(order))
	for _, w := range order {
		groups = append(groups, CompressDays(days[w])+" "+Window(w.start, w.end))
	}
	return strings.Join(groups, ", ")
}
