package httpadapter

import (
	"time"

	"github.com/google/uuid"

	"adpaas/internal/core/domain"
	"adpaas/internal/core/port"
	"adpaas/internal/core/validate"
)

const dateLayout = "2006-01-02"

// requestBody is the JSON payload of save and submit. Tags check shape only;
// readiness is reported by the validator in the core.
type requestBody struct {
	ID           string         `json:"id,omitempty" validate:"omitempty,uuid"`
	CampaignName string         `json:"campaign_name" validate:"max=200"`
	Platform     string         `json:"platform" validate:"max=100"`
	Funnel       string         `json:"funnel" validate:"max=32"`
	Objective    string         `json:"objective" validate:"max=64"`
	BudgetValue  *float64       `json:"budget_value" validate:"omitempty,gte=0"`
	BudgetUnit   string         `json:"budget_unit" validate:"max=32"`
	ProjectStart string         `json:"project_start" validate:"omitempty,datetime=2006-01-02"`
	ProjectEnd   string         `json:"project_end" validate:"omitempty,datetime=2006-01-02"`
	Channels     []channelBody  `json:"channels" validate:"max=20,dive"`
	Locations    []string       `json:"locations" validate:"max=50,dive,max=200"`
	Languages    []string       `json:"languages" validate:"max=20,dive,max=64"`
	Audience     audienceBody   `json:"audience"`
	URLProtocol  string         `json:"url_protocol" validate:"omitempty,oneof=http:// https://"`
	URLRest      string         `json:"url_rest" validate:"max=2048"`
	Notes        string         `json:"notes" validate:"max=5000"`
	KPIs         []kpiBody      `json:"kpis" validate:"max=20,dive"`
	Schedule     []scheduleBody `json:"schedule" validate:"max=100,dive"`
}

type channelBody struct {
	Type   string `json:"type" validate:"required,max=32"`
	Custom string `json:"custom,omitempty" validate:"max=100"`
}

type audienceBody struct {
	Gender string `json:"gender" validate:"omitempty,oneof=All Male Female"`
	AgeMin *int   `json:"age_min" validate:"omitempty,gte=0,lte=120"`
	AgeMax *int   `json:"age_max" validate:"omitempty,gte=0,lte=120"`
}

type kpiBody struct {
	Type      string   `json:"type" validate:"max=32"`
	Label     string   `json:"label,omitempty" validate:"max=100"`
	Operator  string   `json:"operator" validate:"max=4"`
	Target    *float64 `json:"target"`
	Unit      string   `json:"unit" validate:"max=16"`
	Method    string   `json:"method" validate:"max=500"`
	IsPrimary bool     `json:"is_primary"`
}

type scheduleBody struct {
	Day         int `json:"day" validate:"gte=0,lte=6"`
	StartMinute int `json:"start_minute" validate:"gte=0,lte=1440"`
	EndMinute   int `json:"end_minute" validate:"gte=0,lte=1440"`
}

// toDomain converts the payload. Validation tags have already passed, so
// ids and dates parse.
func (b requestBody) toDomain() domain.Request {
	req := domain.Request{
		CampaignName: b.CampaignName,
		Platform:     b.Platform,
		Funnel:       domain.Funnel(b.Funnel),
		Objective:    b.Objective,
		BudgetValue:  b.BudgetValue,
		BudgetUnit:   domain.BudgetUnit(b.BudgetUnit),
		ProjectStart: parseDate(b.ProjectStart),
		ProjectEnd:   parseDate(b.ProjectEnd),
		Locations:    b.Locations,
		Languages:    b.Languages,
		Audience: domain.Audience{
			Gender: domain.Gender(b.Audience.Gender),
			AgeMin: b.Audience.AgeMin,
			AgeMax: b.Audience.AgeMax,
		},
		URLProtocol: b.URLProtocol,
		URLRest:     b.URLRest,
		Notes:       b.Notes,
	}
	if b.ID != "" {
		req.ID, _ = uuid.Parse(b.ID)
	}
	for _, c := range b.Channels {
		req.Channels = append(req.Channels, domain.Channel{Type: domain.ChannelType(c.Type), CustomName: c.Custom})
	}
	for i, k := range b.KPIs {
		req.KPIs = append(req.KPIs, domain.KpiRow{
			Index:     i,
			Type:      domain.KpiType(k.Type),
			Label:     k.Label,
			Operator:  domain.Operator(k.Operator),
			Target:    k.Target,
			Unit:      domain.Unit(k.Unit),
			Method:    k.Method,
			IsPrimary: k.IsPrimary,
		})
	}
	for _, s := range b.Schedule {
		req.Schedule = append(req.Schedule, domain.ScheduleRange{
			Day:         domain.Weekday(s.Day),
			StartMinute: s.StartMinute,
			EndMinute:   s.EndMinute,
		})
	}
	return req
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

type requestResponse struct {
	ID           string         `json:"id"`
	OrgID        string         `json:"org_id"`
	CreatedBy    string         `json:"created_by"`
	Status       string         `json:"status"`
	CampaignName string         `json:"campaign_name"`
	Platform     string         `json:"platform"`
	Funnel       string         `json:"funnel"`
	Objective    string         `json:"objective"`
	BudgetValue  *float64       `json:"budget_value"`
	BudgetUnit   string         `json:"budget_unit"`
	ProjectStart string         `json:"project_start,omitempty"`
	ProjectEnd   string         `json:"project_end,omitempty"`
	Channels     []channelBody  `json:"channels"`
	Locations    []string       `json:"locations"`
	Languages    []string       `json:"languages"`
	Audience     audienceBody   `json:"audience"`
	URLProtocol  string         `json:"url_protocol"`
	URLRest      string         `json:"url_rest"`
	FinalURL     string         `json:"final_url"`
	Notes        string         `json:"notes"`
	KPIs         []kpiBody      `json:"kpis"`
	Schedule     []scheduleBody `json:"schedule"`
	CreatedAt    time.Time      `json:"created_at"`
	SubmittedAt  *time.Time     `json:"submitted_at"`
}

func toResponse(r domain.Request) requestResponse {
	resp := requestResponse{
		ID:           r.ID.String(),
		OrgID:        r.OrgID.String(),
		CreatedBy:    r.CreatedBy.String(),
		Status:       string(r.Status),
		CampaignName: r.CampaignName,
		Platform:     r.Platform,
		Funnel:       string(r.Funnel),
		Objective:    r.Objective,
		BudgetValue:  r.BudgetValue,
		BudgetUnit:   string(r.BudgetUnit),
		ProjectStart: formatDate(r.ProjectStart),
		ProjectEnd:   formatDate(r.ProjectEnd),
		Channels:     make([]channelBody, 0, len(r.Channels)),
		Locations:    nonNil(r.Locations),
		Languages:    nonNil(r.Languages),
		Audience: audienceBody{
			Gender: string(r.Audience.Gender),
			AgeMin: r.Audience.AgeMin,
			AgeMax: r.Audience.AgeMax,
		},
		URLProtocol: r.URLProtocol,
		URLRest:     r.URLRest,
		FinalURL:    r.FinalURL,
		Notes:       r.Notes,
		KPIs:        make([]kpiBody, 0, len(r.KPIs)),
		Schedule:    make([]scheduleBody, 0, len(r.Schedule)),
		CreatedAt:   r.CreatedAt,
		SubmittedAt: r.SubmittedAt,
	}
	if resp.URLProtocol == "" && r.FinalURL != "" {
		resp.URLProtocol, resp.URLRest = domain.SplitFinalURL(r.FinalURL)
	}
	for _, c := range r.Channels {
		resp.Channels = append(resp.Channels, channelBody{Type: string(c.Type), Custom: c.CustomName})
	}
	for _, k := range r.KPIs {
		resp.KPIs = append(resp.KPIs, kpiBody{
			Type:      string(k.Type),
			Label:     k.Label,
			Operator:  string(k.Operator),
			Target:    k.Target,
			Unit:      string(k.Unit),
			Method:    k.Method,
			IsPrimary: k.IsPrimary,
		})
	}
	for _, s := range r.Schedule {
		resp.Schedule = append(resp.Schedule, scheduleBody{
			Day:         int(s.Day),
			StartMinute: s.StartMinute,
			EndMinute:   s.EndMinute,
		})
	}
	return resp
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

type readinessResponse struct {
	Ready    bool     `json:"ready"`
	Missing  []string `json:"missing"`
	FinalURL string   `json:"final_url"`
}

func toReadiness(rep validate.Report) readinessResponse {
	return readinessResponse{Ready: rep.Ready(), Missing: nonNil(rep.Missing), FinalURL: rep.FinalURL}
}

type eventResponse struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Actor     string    `json:"actor"`
	CreatedAt time.Time `json:"created_at"`
}

func toEvents(events []domain.AuditEvent) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, eventResponse{ID: e.ID, Type: string(e.Type), Actor: e.Actor.String(), CreatedAt: e.CreatedAt})
	}
	return out
}

type outsideResponse struct {
	Active                bool       `json:"active"`
	By                    string     `json:"by,omitempty"`
	At                    *time.Time `json:"at,omitempty"`
	ReviewerApprovedAfter bool       `json:"reviewer_approved_after"`
}

type viewResponse struct {
	Request         requestResponse   `json:"request"`
	Events          []eventResponse   `json:"events"`
	OutsideApproval outsideResponse   `json:"outside_approval"`
	Readiness       readinessResponse `json:"readiness"`
	ScheduleSummary string            `json:"schedule_summary"`
	EstimatedTotal  *float64          `json:"estimated_total_budget"`
	CanMutate       bool              `json:"can_mutate"`
	CanReview       bool              `json:"can_review"`
}

func toView(v *port.RequestView) viewResponse {
	out := viewResponse{
		Request:         toResponse(v.Request),
		Events:          toEvents(v.Events),
		Readiness:       toReadiness(v.Readiness),
		ScheduleSummary: v.ScheduleSummary,
		EstimatedTotal:  v.EstimatedTotal,
		CanMutate:       v.CanMutate,
		CanReview:       v.CanReview,
		OutsideApproval: outsideResponse{
			Active:                v.Outside.Active,
			ReviewerApprovedAfter: v.Outside.ReviewerApprovedAfter,
		},
	}
	if v.Outside.Active {
		at := v.Outside.At
		out.OutsideApproval.By, out.OutsideApproval.At = v.Outside.By.String(), &at
	}
	return out
}

type reviewBody struct {
	Action string `json:"action" validate:"required,oneof=approve reject ask_fix"`
}

type catalogFunnel struct {
	Funnel      string   `json:"funnel"`
	Objectives  []string `json:"objectives"`
	KPIs        []string `json:"kpis"`
	Recommended []string `json:"recommended"`
	SalesKPIs   []string `json:"sales_kpis,omitempty"`
}

type catalogKPI struct {
	Type            string   `json:"type"`
	Operators       []string `json:"operators"`
	Units           []string `json:"units"`
	DefaultOperator string   `json:"default_operator"`
	DefaultUnit     string   `json:"default_unit"`
}

type catalogChannel struct {
	Type  string `json:"type"`
	Label string `json:"label"`
}

type catalogResponse struct {
	Funnels     []catalogFunnel  `json:"funnels"`
	KPIs        []catalogKPI     `json:"kpis"`
	Channels    []catalogChannel `json:"channels"`
	Platforms   []string         `json:"platforms"`
	BudgetUnits []string         `json:"budget_units"`
	Genders     []string         `json:"genders"`
}

func toCatalog(c port.Catalog) catalogResponse {
	out := catalogResponse{
		Platforms:   c.Platforms,
		BudgetUnits: strs(c.BudgetUnits),
		Genders:     strs(c.Genders),
	}
	for _, f := range c.Funnels {
		out.Funnels = append(out.Funnels, catalogFunnel{
			Funnel:      string(f.Funnel),
			Objectives:  f.Objectives,
			KPIs:        strs(f.KPIs),
			Recommended: strs(f.Recommended),
			SalesKPIs:   strs(f.SalesKPIs),
		})
	}
	for _, k := range c.KPIs {
		out.KPIs = append(out.KPIs, catalogKPI{
			Type:            string(k.Type),
			Operators:       strs(k.Operators),
			Units:           strs(k.Units),
			DefaultOperator: string(k.DefaultOperator),
			DefaultUnit:     string(k.DefaultUnit),
		})
	}
	for _, t := range c.Channels {
		out.Channels = append(out.Channels, catalogChannel{Type: string(t), Label: channelLabel(t)})
	}
	return out
}

func strs[T ~string](in []T) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

func channelLabel(t domain.ChannelType) string {
	if t == domain.ChannelOther {
		return "Other"
	}
	return domain.Channel{Type: t}.Label()
}
