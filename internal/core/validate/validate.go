// Package validate computes whether a campaign request is ready to submit.
package validate

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"adpaas/internal/core/domain"
	"adpaas/internal/core/kpi"
	"adpaas/internal/core/schedule"
)

const minCampaignNameLen = 3

// Messages shown for each failed requirement.
const (
	MsgCampaignName    = "campaign name is required (at least 3 characters)"
	MsgFunnel          = "select a funnel stage"
	MsgObjective       = "select an objective that belongs to the funnel stage"
	MsgKPI             = "at least one KPI must match the funnel and objective with a target, unit and measurement method"
	MsgChannel         = "select at least one advertising channel"
	MsgChannelName     = "custom channels need a name"
	MsgBudgetUnit      = "select a budget unit"
	MsgBudgetValue     = "budget value must be greater than 0"
	MsgLocation        = "add at least one ad location"
	MsgFinalURL        = "final URL is not a valid http/https URL"
	MsgAgeRange        = "minimum age must be less than or equal to maximum age"
	MsgProjectPeriod   = "project end date must be on or after the start date"
	msgDuplicateFormat = "custom channel %q is listed more than once"
	msgRangeFormat     = "schedule range on %s is invalid: %v"
)

// Report is the outcome of Request. An empty Missing list means ready.
type Report struct {
	Missing  []string
	FinalURL string
}

// Ready reports whether nothing is missing.
func (r Report) Ready() bool { return len(r.Missing) == 0 }

// Request runs every readiness check in display order. It is pure: the same
// input always produces the same messages in the same order.
func Request(req domain.Request) Report {
	var missing []string
	add := func(msg string) { missing = append(missing, msg) }

	if utf8.RuneCountInString(strings.TrimSpace(req.CampaignName)) < minCampaignNameLen {
		add(MsgCampaignName)
	}
	if !req.Funnel.Valid() {
		add(MsgFunnel)
	}
	objective := strings.TrimSpace(req.Objective)
	if objective == "" || !req.Funnel.AllowsObjective(objective) {
		add(MsgObjective)
	}
	if !kpi.AnyValid(req.KPIs, req.Funnel, objective) {
		add(MsgKPI)
	}
	missing = append(missing, channelProblems(req.Channels)...)
	if !req.BudgetUnit.Valid() {
		add(MsgBudgetUnit)
	}
	if req.BudgetValue == nil || !(*req.BudgetValue > 0) {
		add(MsgBudgetValue)
	}
	if !hasLocation(req.Locations) {
		add(MsgLocation)
	}
	final := FinalURL(req.URLProtocol, req.URLRest)
	if !IsHTTPURL(final) {
		add(MsgFinalURL)
	}
	missing = append(missing, scheduleProblems(req.Schedule)...)
	if a := req.Audience; a.AgeMin != nil && a.AgeMax != nil && *a.AgeMin > *a.AgeMax {
		add(MsgAgeRange)
	}
	if req.ProjectStart != nil && req.ProjectEnd != nil && req.ProjectEnd.Before(*req.ProjectStart) {
		add(MsgProjectPeriod)
	}
	return Report{Missing: missing, FinalURL: final}
}

// FinalURL joins the protocol selector with the rest of the URL, dropping
// leading slashes from the rest. An empty rest yields an empty URL.
func FinalURL(protocol, rest string) string {
	rest = strings.TrimLeft(strings.TrimSpace(rest), "/")
	if rest == "" {
		return ""
	}
	if protocol == "" {
		protocol = "https://"
	}
	return protocol + rest
}

// IsHTTPURL reports whether s parses as an absolute http or https URL with a host.
func IsHTTPURL(s string) bool {
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func channelProblems(channels []domain.Channel) []string {
	if len(channels) == 0 {
		return []string{MsgChannel}
	}
	var out []string
	unnamed := false
	seen := make(map[string]bool)
	reported := make(map[string]bool)
	for _, c := range channels {
		if c.Type != domain.ChannelOther {
			continue
		}
		name := strings.TrimSpace(c.CustomName)
		if name == "" {
			unnamed = true
			continue
		}
		key := strings.ToLower(name)
		if seen[key] && !reported[key] {
			out = append(out, fmt.Sprintf(msgDuplicateFormat, name))
			reported[key] = true
		}
		seen[key] = true
	}
	if unnamed {
		out = append([]string{MsgChannelName}, out...)
	}
	return out
}

func hasLocation(locations []string) bool {
	for _, l := range locations {
		if strings.TrimSpace(l) != "" {
			return true
		}
	}
	return false
}

func scheduleProblems(ranges []domain.ScheduleRange) []string {
	var (
		out  []string
		good = make([]domain.ScheduleRange, 0, len(ranges))
	)
	for _, r := range ranges {
		if err := schedule.CheckRange(r); err != nil {
			out = append(out, fmt.Sprintf(msgRangeFormat, r.Day, err))
			continue
		}
		good = append(good, r)
	}
	for _, c := range schedule.Conflicts(good) {
		out = append(out, c.Message())
	}
	return out
}
