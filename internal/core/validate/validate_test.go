package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpaas/internal/core/domain"
	"adpaas/internal/core/kpi"
)

func f64(v float64) *float64 { return &v }
func intp(v int) *int        { return &v }

// readyRequest is an Awareness/Reach request that passes every check.
func readyRequest() domain.Request {
	return domain.Request{
		CampaignName: "Cafe Ladprao opening",
		Funnel:       domain.FunnelAwareness,
		Objective:    "Reach",
		KPIs: []domain.KpiRow{{
			Type:     domain.KpiImpressions,
			Operator: domain.OpGreaterOrEqual,
			Target:   f64(50000),
			Unit:     domain.UnitPer7D,
			Method:   "ad platform report",
		}},
		Channels:    []domain.Channel{{Type: domain.ChannelFacebook}},
		BudgetValue: f64(1000),
		BudgetUnit:  domain.BudgetPerDay,
		Locations:   []string{"Bangkok"},
		URLProtocol: "https://",
		URLRest:     "example.com/landing",
	}
}

func TestReadyRequest(t *testing.T) {
	rep := Request(readyRequest())
	assert.True(t, rep.Ready(), "missing: %v", rep.Missing)
	assert.Empty(t, rep.Missing)
	assert.Equal(t, "https://example.com/landing", rep.FinalURL)
}

func TestMissingKPIs(t *testing.T) {
	req := readyRequest()
	req.KPIs = nil
	rep := Request(req)
	assert.False(t, rep.Ready())
	assert.Equal(t, []string{MsgKPI}, rep.Missing)
}

func TestEmptyRequestListsEveryRequirementInOrder(t *testing.T) {
	rep := Request(domain.Request{})
	assert.Equal(t, []string{
		MsgCampaignName,
		MsgFunnel,
		MsgObjective,
		MsgKPI,
		MsgChannel,
		MsgBudgetUnit,
		MsgBudgetValue,
		MsgLocation,
		MsgFinalURL,
	}, rep.Missing)
	assert.Empty(t, rep.FinalURL)
}

func TestDeterministic(t *testing.T) {
	req := readyRequest()
	req.CampaignName = "x"
	req.Schedule = []domain.ScheduleRange{{Day: 1, StartMinute: 480, EndMinute: 960}, {Day: 1, StartMinute: 900, EndMinute: 1020}}
	assert.Equal(t, Request(req), Request(req))
}

func TestIndividualChecks(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Request)
		want   []string
	}{
		{"short name", func(r *domain.Request) { r.CampaignName = "  ab  " }, []string{MsgCampaignName}},
		{"objective from another funnel", func(r *domain.Request) { r.Objective = "Sales" }, []string{MsgObjective}},
		{"kpi not allowed for funnel", func(r *domain.Request) { r.Funnel, r.Objective = domain.FunnelConsideration, "Engagement" }, []string{MsgKPI}},
		{"unnamed other channel", func(r *domain.Request) {
			r.Channels = append(r.Channels, domain.Channel{Type: domain.ChannelOther, CustomName: "  "})
		}, []string{MsgChannelName}},
		{"duplicate other channel", func(r *domain.Request) {
			r.Channels = append(r.Channels,
				domain.Channel{Type: domain.ChannelOther, CustomName: "Shopee"},
				domain.Channel{Type: domain.ChannelOther, CustomName: "shopee "},
				domain.Channel{Type: domain.ChannelOther, CustomName: "SHOPEE"},
			)
		}, []string{`custom channel "shopee" is listed more than once`}},
		{"zero budget", func(r *domain.Request) { r.BudgetValue = f64(0) }, []string{MsgBudgetValue}},
		{"negative budget", func(r *domain.Request) { r.BudgetValue = f64(-3) }, []string{MsgBudgetValue}},
		{"unknown budget unit", func(r *domain.Request) { r.BudgetUnit = "PER_WEEK" }, []string{MsgBudgetUnit}},
		{"blank locations", func(r *domain.Request) { r.Locations = []string{" ", ""} }, []string{MsgLocation}},
		{"ftp url", func(r *domain.Request) { r.URLProtocol, r.URLRest = "ftp://", "example.com" }, []string{MsgFinalURL}},
		{"url with space in host", func(r *domain.Request) { r.URLRest = "exa mple.com" }, []string{MsgFinalURL}},
		{"overlap", func(r *domain.Request) {
			r.Schedule = []domain.ScheduleRange{{Day: 1, StartMinute: 480, EndMinute: 960}, {Day: 1, StartMinute: 900, EndMinute: 1020}}
		}, []string{"schedule ranges overlap on Mon"}},
		{"malformed range", func(r *domain.Request) {
			r.Schedule = []domain.ScheduleRange{{Day: 2, StartMinute: 600, EndMinute: 600}}
		}, []string{"schedule range on Tue is invalid: start must be before end"}},
		{"age bounds", func(r *domain.Request) { r.Audience = domain.Audience{AgeMin: intp(40), AgeMax: intp(18)} }, []string{MsgAgeRange}},
		{"project period", func(r *domain.Request) {
			s := time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)
			e := s.AddDate(0, 0, -1)
			r.ProjectStart, r.ProjectEnd = &s, &e
		}, []string{MsgProjectPeriod}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := readyRequest()
			tt.mutate(&req)
			assert.Equal(t, tt.want, Request(req).Missing)
		})
	}
}

func TestEqualAgesAndSameDayProjectAreFine(t *testing.T) {
	req := readyRequest()
	req.Audience = domain.Audience{Gender: domain.GenderFemale, AgeMin: intp(25), AgeMax: intp(25)}
	d := time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)
	req.ProjectStart, req.ProjectEnd = &d, &d
	require.True(t, Request(req).Ready())
}

func TestFinalURL(t *testing.T) {
	assert.Equal(t, "https://example.com/a", FinalURL("https://", "///example.com/a"))
	assert.Equal(t, "http://example.com", FinalURL("http://", " example.com "))
	assert.Equal(t, "https://example.com", FinalURL("", "example.com"))
	assert.Equal(t, "", FinalURL("https://", "  "))

	assert.True(t, IsHTTPURL("http://localhost:8080/x?y=1"))
	assert.False(t, IsHTTPURL("https://"))
	assert.False(t, IsHTTPURL("mailto:a@b.c"))
	assert.False(t, IsHTTPURL(""))
}

func TestRecommendedKPIIsReadyForEveryObjective(t *testing.T) {
	for _, f := range domain.Funnels {
		for _, o := range f.Objectives() {
			t.Run(string(f)+"/"+o, func(t *testing.T) {
				rec := kpi.Recommended(f, o)
				require.NotEmpty(t, rec)
				op, unit := kpi.Defaults(rec[0])

				req := readyRequest()
				req.Funnel, req.Objective = f, o
				req.KPIs = []domain.KpiRow{{
					Type: rec[0], Operator: op, Target: f64(100), Unit: unit, Method: "platform report",
				}}
				rep := Request(req)
				assert.True(t, rep.Ready(), "missing: %v", rep.Missing)
			})
		}
	}
}

func TestObjectiveIsTrimmed(t *testing.T) {
	req := readyRequest()
	req.Funnel, req.Objective = domain.FunnelConversion, " Sales "
	req.KPIs = []domain.KpiRow{{
		Type: domain.KpiROAS, Operator: domain.OpGreaterOrEqual, Target: f64(300),
		Unit: domain.UnitPercent, Method: "GA4 purchase revenue",
	}}
	assert.True(t, Request(req).Ready())

	req.KPIs[0] = domain.KpiRow{
		Type: domain.KpiLeads, Operator: domain.OpGreaterOrEqual, Target: f64(100),
		Unit: domain.UnitCount, Method: "CRM lead export",
	}
	assert.Equal(t, []string{MsgKPI}, Request(req).Missing)
}
