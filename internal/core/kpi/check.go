package kpi

import (
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"adpaas/internal/core/domain"
)

// Check names one sub-check of a KPI row.
type Check string

const (
	CheckType     Check = "type"
	CheckLabel    Check = "label"
	CheckOperator Check = "operator"
	CheckTarget   Check = "target"
	CheckUnit     Check = "unit"
	CheckMethod   Check = "method"
)

const (
	minLabelLen  = 2
	minMethodLen = 5
)

// Result lists the sub-checks a row failed, in evaluation order.
type Result struct {
	Failed []Check
}

// Valid reports whether every sub-check passed.
func (r Result) Valid() bool { return len(r.Failed) == 0 }

// Has reports whether the named sub-check failed.
func (r Result) Has(c Check) bool { return slices.Contains(r.Failed, c) }

// CheckRow validates one row against the funnel and objective of its request.
func CheckRow(row domain.KpiRow, funnel domain.Funnel, objective string) Result {
	var res Result
	fail := func(c Check) { res.Failed = append(res.Failed, c) }

	if row.Type == "" || !slices.Contains(Allowed(funnel, objective), row.Type) {
		fail(CheckType)
	}
	if row.Type == domain.KpiOther && utf8.RuneCountInString(strings.TrimSpace(row.Label)) < minLabelLen {
		fail(CheckLabel)
	}
	if !slices.Contains(operators[row.Type], row.Operator) {
		fail(CheckOperator)
	}
	if row.Target == nil || math.IsNaN(*row.Target) || math.IsInf(*row.Target, 0) {
		fail(CheckTarget)
	}
	if !slices.Contains(units[row.Type], row.Unit) {
		fail(CheckUnit)
	}
	if utf8.RuneCountInString(strings.TrimSpace(row.Method)) < minMethodLen {
		fail(CheckMethod)
	}
	return res
}

// AnyValid reports whether at least one row passes every sub-check.
func AnyValid(rows []domain.KpiRow, funnel domain.Funnel, objective string) bool {
	for _, r := range rows {
		if CheckRow(r, funnel, objective).Valid() {
			return true
		}
	}
	return false
}

// Filter keeps only fully valid rows, re-indexed from zero with the first
// marked primary. Labels are cleared on non-OTHER rows.
func Filter(rows []domain.KpiRow, funnel domain.Funnel, objective string) []domain.KpiRow {
	out := make([]domain.KpiRow, 0, len(rows))
	for _, r := range rows {
		if !CheckRow(r, funnel, objective).Valid() {
			continue
		}
		r.Index = len(out)
		r.IsPrimary = r.Index == 0
		if r.Type != domain.KpiOther {
			r.Label = ""
		} else {
			r.Label = strings.TrimSpace(r.Label)
		}
		r.Method = strings.TrimSpace(r.Method)
		out = append(out, r)
	}
	return out
}
