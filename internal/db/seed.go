package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpaas/internal/core/domain"
	"adpaas/internal/core/port"
)

// Demo identities created by Seed. Tokens for local testing use these as
// the sub claim.
var (
	DemoOrgID      = uuid.MustParse("0b8e1f52-77a4-4f0b-8c1e-9d2a3b4c5d6e")
	DemoOwnerID    = uuid.MustParse("11111111-1111-4111-8111-111111111111")
	DemoApproverID = uuid.MustParse("22222222-2222-4222-8222-222222222222")
	DemoCreatorID  = uuid.MustParse("33333333-3333-4333-8333-333333333333")
	DemoRequestID  = uuid.MustParse("c3a9d1e0-5f2b-4a7c-8e6d-1b2c3d4e5f60")
)

// Seed inserts a demo organization with one member per role and a draft
// request owned by the creator. Running it again changes nothing.
func Seed(ctx context.Context, pool *pgxpool.Pool, repo port.RequestRepository) error {
	if _, err := pool.Exec(ctx, `INSERT INTO orgs (id, name) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		DemoOrgID, "Demo Coffee Co."); err != nil {
		return fmt.Errorf("seed org: %w", err)
	}
	members := []struct {
		user uuid.UUID
		role string
	}{
		{DemoOwnerID, "owner"},
		{DemoApproverID, "approver"},
		{DemoCreatorID, "creator"},
	}
	for _, m := range members {
		_, err := pool.Exec(ctx, `INSERT INTO org_members (org_id, user_id, role, status, is_default)
VALUES ($1, $2, $3, 'active', true) ON CONFLICT DO NOTHING`, DemoOrgID, m.user, m.role)
		if err != nil {
			return fmt.Errorf("seed member %s: %w", m.role, err)
		}
	}

	existing, err := repo.GetRequest(ctx, DemoRequestID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	req := demoRequest(time.Now().UTC())
	return repo.WithinTx(ctx, func(ctx context.Context, tx port.RequestTx) error {
		if err := tx.UpsertRequest(ctx, req); err != nil {
			return err
		}
		if err := tx.ReplaceKpis(ctx, req.ID, req.KPIs); err != nil {
			return err
		}
		if err := tx.ReplaceSchedule(ctx, req.ID, req.Schedule); err != nil {
			return err
		}
		if err := tx.UpsertAudience(ctx, req.ID, req.Audience); err != nil {
			return err
		}
		if err := tx.ReplaceChannels(ctx, req.ID, req.Channels); err != nil {
			return err
		}
		return tx.AppendEvent(ctx, domain.AuditEvent{
			RequestID: req.ID,
			Type:      domain.EventSaveDraft,
			Actor:     DemoCreatorID,
			CreatedAt: req.CreatedAt,
		})
	})
}

func demoRequest(now time.Time) domain.Request {
	budget := 1000.0
	target := 50000.0
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	end := start.AddDate(0, 1, -1)
	return domain.Request{
		ID:           DemoRequestID,
		OrgID:        DemoOrgID,
		CreatedBy:    DemoCreatorID,
		CampaignName: "Cafe Ladprao opening",
		Platform:     "Performance Max",
		Funnel:       domain.FunnelAwareness,
		Objective:    "Reach",
		BudgetValue:  &budget,
		BudgetUnit:   domain.BudgetPerDay,
		ProjectStart: &start,
		ProjectEnd:   &end,
		Channels:     []domain.Channel{{Type: domain.ChannelFacebook}, {Type: domain.ChannelLine}},
		Locations:    []string{"Bangkok"},
		Languages:    []string{"Thai", "English"},
		Audience:     domain.Audience{Gender: domain.GenderAll},
		URLProtocol:  "https://",
		URLRest:      "example.com/ladprao",
		FinalURL:     "https://example.com/ladprao",
		Status:       domain.StatusDraft,
		KPIs: []domain.KpiRow{{
			Index:     0,
			Type:      domain.KpiImpressions,
			Operator:  domain.OpGreaterOrEqual,
			Target:    &target,
			Unit:      domain.UnitPer7D,
			Method:    "ad platform report",
			IsPrimary: true,
		}},
		Schedule: []domain.ScheduleRange{
			{Day: domain.Weekday(1), StartMinute: 9 * 60, EndMinute: 18 * 60},
			{Day: domain.Weekday(2), StartMinute: 9 * 60, EndMinute: 18 * 60},
			{Day: domain.Weekday(3), StartMinute: 9 * 60, EndMinute: 18 * 60},
		},
		CreatedAt: now,
	}
}
