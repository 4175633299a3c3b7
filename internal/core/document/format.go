package document

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"adpaas/internal/core/domain"
)

// Dash fills any value that is not set.
const Dash = "—"

const (
	timestampLayout = "02 Jan 2006 15:04"
	dateLayout      = "02 Jan 2006"
)

var numbers = message.NewPrinter(language.AmericanEnglish)

// Money formats n with two decimals and thousands grouping, e.g. 1,000.00.
func Money(n float64) string {
	return numbers.Sprintf("%.2f", n)
}

// Timestamp renders t in loc, or Dash when t is nil.
func Timestamp(t *time.Time, loc *time.Location) string {
	if t == nil || t.IsZero() {
		return Dash
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(timestampLayout)
}

// Target renders a KPI target with the suffix of its unit.
func Target(k domain.KpiRow) string {
	if k.Target == nil {
		return Dash
	}
	v := Money(*k.Target)
	switch k.Unit {
	case domain.UnitPercent:
		return v + " %"
	case domain.UnitBaht:
		return v + " baht"
	}
	return v
}

var budgetUnitLabels = map[domain.BudgetUnit]string{
	domain.BudgetPerDay:       "day",
	domain.BudgetPerMonth:     "month",
	domain.BudgetTotalProject: "project",
}

// Budget renders "THB 1,000.00 / day" and appends the estimated project
// total when the budget is not already a project total.
func Budget(r domain.Request) string {
	if r.BudgetValue == nil {
		return Dash
	}
	s := "THB " + Money(*r.BudgetValue)
	if l, ok := budgetUnitLabels[r.BudgetUnit]; ok {
		s += " / " + l
	}
	if r.BudgetUnit != domain.BudgetTotalProject {
		if total, ok := r.EstimatedTotalBudget(); ok {
			s += fmt.Sprintf(" (est. total THB %s)", Money(total))
		}
	}
	return s
}

// Period renders "start – end (N days)".
func Period(r domain.Request) string {
	if r.ProjectStart == nil || r.ProjectEnd == nil {
		return Dash
	}
	s := r.ProjectStart.Format(dateLayout) + " – " + r.ProjectEnd.Format(dateLayout)
	switch n := r.ProjectDays(); n {
	case 0:
		return s
	case 1:
		return s + " (1 day)"
	default:
		return fmt.Sprintf("%s (%d days)", s, n)
	}
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return Dash
	}
	return s
}

func csv(items []string) string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	if len(out) == 0 {
		return Dash
	}
	return strings.Join(out, ", ")
}

func channels(cs []domain.Channel) string {
	labels := make([]string, 0, len(cs))
	for _, c := range cs {
		labels = append(labels, c.Label())
	}
	return csv(labels)
}
