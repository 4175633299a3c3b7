package domain

import (
	"math"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Funnel is the marketing-funnel stage a request targets. It constrains the
// objectives and KPI types a request may use.
type Funnel string

const (
	FunnelAwareness     Funnel = "Awareness"
	FunnelConsideration Funnel = "Consideration"
	FunnelConversion    Funnel = "Conversion"
	FunnelLoyalty       Funnel = "Loyalty"
	FunnelAdvocacy      Funnel = "Advocacy"
)

// Funnels lists every stage in display order.
var Funnels = []Funnel{FunnelAwareness, FunnelConsideration, FunnelConversion, FunnelLoyalty, FunnelAdvocacy}

var objectives = map[Funnel][]string{
	FunnelAwareness:     {"Reach", "Impressions", "Video Views"},
	FunnelConsideration: {"Website Traffic", "Engagement", "Content Views"},
	FunnelConversion:    {"Leads", "Sales"},
	FunnelLoyalty:       {"Repeat Purchase", "Reactivation", "Retention"},
	FunnelAdvocacy:      {"Referral", "Review/Rating", "UGC"},
}

// ObjectiveSales narrows the Conversion KPI set.
const ObjectiveSales = "Sales"

// Valid reports whether f is one of the five stages.
func (f Funnel) Valid() bool {
	_, ok := objectives[f]
	return ok
}

// Objectives returns the objectives allowed for the stage.
func (f Funnel) Objectives() []string {
	return slices.Clone(objectives[f])
}

// AllowsObjective reports whether objective belongs to the stage.
func (f Funnel) AllowsObjective(objective string) bool {
	return slices.Contains(objectives[f], objective)
}

// Status is the lifecycle state of a request.
type Status string

const (
	StatusDraft        Status = "draft"
	StatusSubmitted    Status = "submitted"
	StatusNeedsChanges Status = "needs_changes"
	StatusApproved     Status = "approved"
	StatusRejected     Status = "rejected"
)

// Editable reports whether the creator may still change the request.
func (s Status) Editable() bool {
	return s == StatusDraft || s == StatusNeedsChanges
}

// BudgetUnit qualifies the budget value.
type BudgetUnit string

const (
	BudgetPerDay       BudgetUnit = "PER_DAY"
	BudgetPerMonth     BudgetUnit = "PER_MONTH"
	BudgetTotalProject BudgetUnit = "TOTAL_PROJECT"
)

// BudgetUnits lists the budget units in display order.
var BudgetUnits = []BudgetUnit{BudgetPerDay, BudgetPerMonth, BudgetTotalProject}

// Valid reports whether u is a known unit.
func (u BudgetUnit) Valid() bool {
	switch u {
	case BudgetPerDay, BudgetPerMonth, BudgetTotalProject:
		return true
	}
	return false
}

// PlatformPresets are the platform labels offered besides free text.
var PlatformPresets = []string{"Search", "Performance Max", "Video"}

// Request is a campaign request with its child collections loaded.
type Request struct {
	ID        uuid.UUID
	OrgID     uuid.UUID
	CreatedBy uuid.UUID

	CampaignName string
	Platform     string
	Funnel       Funnel
	Objective    string

	BudgetValue *float64
	BudgetUnit  BudgetUnit

	ProjectStart *time.Time
	ProjectEnd   *time.Time

	Channels  []Channel
	Locations []string
	Languages []string
	Audience  Audience

	// URLProtocol and URLRest are the two halves of the landing URL as the
	// user entered them. FinalURL is their canonical concatenation.
	URLProtocol string
	URLRest     string
	FinalURL    string

	Notes  string
	Status Status

	KPIs     []KpiRow
	Schedule []ScheduleRange

	CreatedAt   time.Time
	SubmittedAt *time.Time
}

// ProjectDays returns the inclusive number of days between the project
// dates, or 0 when either date is missing or the range is inverted.
func (r Request) ProjectDays() int {
	if r.ProjectStart == nil || r.ProjectEnd == nil {
		return 0
	}
	s := truncateDay(*r.ProjectStart)
	e := truncateDay(*r.ProjectEnd)
	days := int(math.Floor(e.Sub(s).Hours()/24)) + 1
	if days < 1 {
		return 0
	}
	return days
}

// EstimatedTotalBudget projects the budget over the whole project. The
// second result is false when the estimate cannot be computed.
func (r Request) EstimatedTotalBudget() (float64, bool) {
	if r.BudgetValue == nil || *r.BudgetValue <= 0 {
		return 0, false
	}
	v := *r.BudgetValue
	days := r.ProjectDays()
	switch r.BudgetUnit {
	case BudgetTotalProject:
		return v, true
	case BudgetPerDay:
		if days == 0 {
			return 0, false
		}
		return v * float64(days), true
	case BudgetPerMonth:
		if days == 0 {
			return 0, false
		}
		return math.Ceil(float64(days)/30) * v, true
	}
	return 0, false
}

// SplitFinalURL breaks a stored URL back into the protocol selector and the
// remainder the user typed.
func SplitFinalURL(raw string) (protocol, rest string) {
	lower := strings.ToLower(raw)
	switch {
	case strings.HasPrefix(lower, "http://"):
		return "http://", strings.TrimLeft(raw[len("http://"):], "/")
	case strings.HasPrefix(lower, "https://"):
		return "https://", strings.TrimLeft(raw[len("https://"):], "/")
	}
	return "https://", strings.TrimLeft(raw, "/")
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
