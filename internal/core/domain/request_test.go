package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func f64(v float64) *float64 { return &v }

func TestProjectDays(t *testing.T) {
	cases := []struct {
		name       string
		start, end *time.Time
		want       int
	}{
		{"october", date(2025, 10, 1), date(2025, 10, 31), 31},
		{"same day", date(2025, 10, 1), date(2025, 10, 1), 1},
		{"inverted", date(2025, 10, 2), date(2025, 10, 1), 0},
		{"missing end", date(2025, 10, 1), nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Request{ProjectStart: tc.start, ProjectEnd: tc.end}
			assert.Equal(t, tc.want, r.ProjectDays())
		})
	}
}

func TestEstimatedTotalBudget(t *testing.T) {
	october := Request{ProjectStart: date(2025, 10, 1), ProjectEnd: date(2025, 10, 31)}
	cases := []struct {
		name  string
		value *float64
		unit  BudgetUnit
		want  float64
		ok    bool
	}{
		{"per day", f64(1000), BudgetPerDay, 31000, true},
		{"per month rounds months up", f64(5000), BudgetPerMonth, 10000, true},
		{"total project", f64(20000), BudgetTotalProject, 20000, true},
		{"zero budget", f64(0), BudgetPerDay, 0, false},
		{"no budget", nil, BudgetPerDay, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := october
			r.BudgetValue, r.BudgetUnit = tc.value, tc.unit
			got, ok := r.EstimatedTotalBudget()
			assert.Equal(t, tc.ok, ok)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}

	undated := Request{BudgetValue: f64(1000), BudgetUnit: BudgetPerDay}
	_, ok := undated.EstimatedTotalBudget()
	assert.False(t, ok)
}

func TestSplitFinalURL(t *testing.T) {
	p, rest := SplitFinalURL("http://shop.example.com/a")
	assert.Equal(t, "http://", p)
	assert.Equal(t, "shop.example.com/a", rest)

	p, rest = SplitFinalURL("example.com")
	assert.Equal(t, "https://", p)
	assert.Equal(t, "example.com", rest)
}

func TestCleanChannels(t *testing.T) {
	got := CleanChannels([]Channel{
		{Type: ChannelFacebook, CustomName: "ignored"},
		{Type: ChannelOther, CustomName: "  Shopee "},
		{Type: ChannelOther, CustomName: "shopee"},
		{Type: ChannelOther, CustomName: " "},
		{Type: ChannelFacebook},
	})
	assert.Equal(t, []Channel{
		{Type: ChannelFacebook},
		{Type: ChannelOther, CustomName: "Shopee"},
	}, got)
	assert.Equal(t, "OTHER: Shopee", got[1].Label())
}

func TestFoldOutsideApproval(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	t1 := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	oa := FoldOutsideApproval([]AuditEvent{
		{Type: EventSubmitted, Actor: a},
		{Type: EventApproveOutside, Actor: a, CreatedAt: t1},
		{Type: EventRevokeOutside, Actor: a},
		{Type: EventApproveOutside, Actor: b, CreatedAt: t2},
	})
	assert.True(t, oa.Active)
	assert.Equal(t, b, oa.By)
	assert.Equal(t, t2, oa.At)
	assert.False(t, oa.ReviewerApprovedAfter)

	oa = FoldOutsideApproval([]AuditEvent{
		{Type: EventRevokeOutside},
		{Type: EventRevokeOutside},
		{Type: EventApproveOutside, Actor: a, CreatedAt: t1},
		{Type: EventApprove, Actor: b},
	})
	assert.True(t, oa.Active, "counter never goes below zero")
	assert.True(t, oa.ReviewerApprovedAfter)

	oa = FoldOutsideApproval([]AuditEvent{
		{Type: EventApproveOutside, Actor: a, CreatedAt: t1},
		{Type: EventRevokeOutside, Actor: a},
	})
	assert.False(t, oa.Active)
	assert.Equal(t, uuid.Nil, oa.By)
}
