package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpaas/internal/core/domain"
	"adpaas/internal/core/port"
)

// querier is the part of pgx shared by the pool and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// RequestRepository implements port.RequestRepository using pgxpool for PostgreSQL.
type RequestRepository struct {
	pool *pgxpool.Pool
}

// NewRequestRepository returns a new repository instance.
func NewRequestRepository(pool *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{pool: pool}
}

var _ port.RequestRepository = (*RequestRepository)(nil)

// GetRequest returns a request with its children, or nil when absent.
func (r *RequestRepository) GetRequest(ctx context.Context, id uuid.UUID) (*domain.Request, error) {
	return loadRequest(ctx, r.pool, id, false)
}

// ListEvents returns the audit log of a request.
func (r *RequestRepository) ListEvents(ctx context.Context, id uuid.UUID) ([]domain.AuditEvent, error) {
	return listEvents(ctx, r.pool, id)
}

// WithinTx runs fn in a read-committed transaction. Row locks taken with
// LockRequest serialize concurrent writers of the same request.
func (r *RequestRepository) WithinTx(ctx context.Context, fn func(ctx context.Context, tx port.RequestTx) error) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else if err = tx.Commit(ctx); err != nil {
			err = fmt.Errorf("commit tx: %w", err)
		}
	}()
	return fn(ctx, &requestTx{tx: tx})
}

type requestTx struct {
	tx pgx.Tx
}

var _ port.RequestTx = (*requestTx)(nil)

func (t *requestTx) LockRequest(ctx context.Context, id uuid.UUID) (*domain.Request, error) {
	return loadRequest(ctx, t.tx, id, true)
}

func (t *requestTx) ListEvents(ctx context.Context, id uuid.UUID) ([]domain.AuditEvent, error) {
	return listEvents(ctx, t.tx, id)
}

func (t *requestTx) UpsertRequest(ctx context.Context, req domain.Request) error {
	locations, languages := req.Locations, req.Languages
	if locations == nil {
		locations = []string{}
	}
	if languages == nil {
		languages = []string{}
	}
	_, err := t.tx.Exec(ctx, `
        INSERT INTO ad_requests
            (id, org_id, created_by, campaign_name, platform, funnel_stage, objective,
             budget_value, budget_unit, project_start, project_end, locations, languages,
             final_url, notes, status, created_at, updated_at, submitted_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,now(),$18)
        ON CONFLICT (id) DO UPDATE SET
            campaign_name = EXCLUDED.campaign_name,
            platform      = EXCLUDED.platform,
            funnel_stage  = EXCLUDED.funnel_stage,
            objective     = EXCLUDED.objective,
            budget_value  = EXCLUDED.budget_value,
            budget_unit   = EXCLUDED.budget_unit,
            project_start = EXCLUDED.project_start,
            project_end   = EXCLUDED.project_end,
            locations     = EXCLUDED.locations,
            languages     = EXCLUDED.languages,
            final_url     = EXCLUDED.final_url,
            notes         = EXCLUDED.notes,
            status        = EXCLUDED.status,
            updated_at    = now(),
            submitted_at  = COALESCE(ad_requests.submitted_at, EXCLUDED.submitted_at)`,
		req.ID, req.OrgID, req.CreatedBy, req.CampaignName, req.Platform, string(req.Funnel), req.Objective,
		req.BudgetValue, string(req.BudgetUnit), req.ProjectStart, req.ProjectEnd, locations, languages,
		req.FinalURL, req.Notes, string(req.Status), req.CreatedAt, req.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert request: %w", err)
	}
	return nil
}

func (t *requestTx) ReplaceKpis(ctx context.Context, requestID uuid.UUID, rows []domain.KpiRow) error {
	if _, err := t.tx.Exec(ctx, `DELETE FROM ad_request_kpis WHERE request_id = $1`, requestID); err != nil {
		return fmt.Errorf("delete kpis: %w", err)
	}
	batch := &pgx.Batch{}
	for _, k := range rows {
		var label *string
		if k.Type == domain.KpiOther {
			label = &k.Label
		}
		batch.Queue(`INSERT INTO ad_request_kpis (request_id, idx, type, label, operator, target, unit, method, is_primary)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
			requestID, k.Index, string(k.Type), label, string(k.Operator), k.Target, string(k.Unit), k.Method, k.IsPrimary)
	}
	return sendBatch(ctx, t.tx, batch, "insert kpis")
}

func (t *requestTx) ReplaceSchedule(ctx context.Context, requestID uuid.UUID, ranges []domain.ScheduleRange) error {
	if _, err := t.tx.Exec(ctx, `DELETE FROM ad_request_schedules WHERE request_id = $1`, requestID); err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	batch := &pgx.Batch{}
	for _, s := range ranges {
		batch.Queue(`INSERT INTO ad_request_schedules (request_id, day_of_week, start_minute, end_minute) VALUES ($1,$2,$3,$4)`,
			requestID, int(s.Day), s.StartMinute, s.EndMinute)
	}
	return sendBatch(ctx, t.tx, batch, "insert schedule")
}

func (t *requestTx) UpsertAudience(ctx context.Context, requestID uuid.UUID, a domain.Audience) error {
	gender := a.Gender
	if gender == "" {
		gender = domain.GenderAll
	}
	_, err := t.tx.Exec(ctx, `
        INSERT INTO ad_request_audience (request_id, gender, age_min, age_max) VALUES ($1,$2,$3,$4)
        ON CONFLICT (request_id) DO UPDATE SET gender = EXCLUDED.gender, age_min = EXCLUDED.age_min, age_max = EXCLUDED.age_max`,
		requestID, string(gender), a.AgeMin, a.AgeMax)
	if err != nil {
		return fmt.Errorf("upsert audience: %w", err)
	}
	return nil
}

func (t *requestTx) ReplaceChannels(ctx context.Context, requestID uuid.UUID, channels []domain.Channel) error {
	if _, err := t.tx.Exec(ctx, `DELETE FROM ad_request_channels WHERE request_id = $1`, requestID); err != nil {
		return fmt.Errorf("delete channels: %w", err)
	}
	batch := &pgx.Batch{}
	for i, c := range channels {
		batch.Queue(`INSERT INTO ad_request_channels (request_id, position, channel_type, custom_name) VALUES ($1,$2,$3,$4)`,
			requestID, i, string(c.Type), c.CustomName)
	}
	return sendBatch(ctx, t.tx, batch, "insert channels")
}

func (t *requestTx) UpdateStatus(ctx context.Context, requestID uuid.UUID, status domain.Status) error {
	tag, err := t.tx.Exec(ctx, `UPDATE ad_requests SET status = $2, updated_at = now() WHERE id = $1`, requestID, string(status))
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (t *requestTx) AppendEvent(ctx context.Context, e domain.AuditEvent) error {
	_, err := t.tx.Exec(ctx, `INSERT INTO ad_request_events (request_id, event_type, actor, created_at) VALUES ($1,$2,$3,$4)`,
		e.RequestID, string(e.Type), e.Actor, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

func sendBatch(ctx context.Context, tx pgx.Tx, batch *pgx.Batch, op string) error {
	if batch.Len() == 0 {
		return nil
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func loadRequest(ctx context.Context, q querier, id uuid.UUID, forUpdate bool) (*domain.Request, error) {
	query := `
        SELECT id, org_id, created_by, campaign_name, platform, funnel_stage, objective,
               budget_value, budget_unit, project_start, project_end, locations, languages,
               final_url, notes, status, created_at, submitted_at
        FROM ad_requests WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var (
		req                  domain.Request
		funnel, unit, status string
	)
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.OrgID, &req.CreatedBy, &req.CampaignName, &req.Platform, &funnel, &req.Objective,
		&req.BudgetValue, &unit, &req.ProjectStart, &req.ProjectEnd, &req.Locations, &req.Languages,
		&req.FinalURL, &req.Notes, &status, &req.CreatedAt, &req.SubmittedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load request: %w", err)
	}
	req.Funnel, req.BudgetUnit, req.Status = domain.Funnel(funnel), domain.BudgetUnit(unit), domain.Status(status)
	req.URLProtocol, req.URLRest = domain.SplitFinalURL(req.FinalURL)

	if req.KPIs, err = listKpis(ctx, q, id); err != nil {
		return nil, err
	}
	if req.Schedule, err = listSchedule(ctx, q, id); err != nil {
		return nil, err
	}
	if req.Channels, err = listChannels(ctx, q, id); err != nil {
		return nil, err
	}
	if req.Audience, err = getAudience(ctx, q, id); err != nil {
		return nil, err
	}
	return &req, nil
}

func listKpis(ctx context.Context, q querier, id uuid.UUID) ([]domain.KpiRow, error) {
	rows, err := q.Query(ctx, `SELECT idx, type, label, operator, target, unit, method, is_primary
FROM ad_request_kpis WHERE request_id = $1 ORDER BY idx`, id)
	if err != nil {
		return nil, fmt.Errorf("list kpis: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.KpiRow, error) {
		var (
			k             domain.KpiRow
			typ, op, unit string
			label         *string
			target        float64
		)
		err := row.Scan(&k.Index, &typ, &label, &op, &target, &unit, &k.Method, &k.IsPrimary)
		k.Type, k.Operator, k.Unit, k.Target = domain.KpiType(typ), domain.Operator(op), domain.Unit(unit), &target
		if label != nil {
			k.Label = *label
		}
		return k, err
	})
}

func listSchedule(ctx context.Context, q querier, id uuid.UUID) ([]domain.ScheduleRange, error) {
	rows, err := q.Query(ctx, `SELECT day_of_week, start_minute, end_minute
FROM ad_request_schedules WHERE request_id = $1 ORDER BY day_of_week, start_minute, id`, id)
	if err != nil {
		return nil, fmt.Errorf("list schedule: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ScheduleRange, error) {
		var (
			s   domain.ScheduleRange
			day int16
		)
		err := row.Scan(&day, &s.StartMinute, &s.EndMinute)
		s.Day = domain.Weekday(day)
		return s, err
	})
}

func listChannels(ctx context.Context, q querier, id uuid.UUID) ([]domain.Channel, error) {
	rows, err := q.Query(ctx, `SELECT channel_type, custom_name
FROM ad_request_channels WHERE request_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("list channels: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Channel, error) {
		var (
			c   domain.Channel
			typ string
		)
		err := row.Scan(&typ, &c.CustomName)
		c.Type = domain.ChannelType(typ)
		return c, err
	})
}

func getAudience(ctx context.Context, q querier, id uuid.UUID) (domain.Audience, error) {
	var (
		a      domain.Audience
		gender string
	)
	err := q.QueryRow(ctx, `SELECT gender, age_min, age_max FROM ad_request_audience WHERE request_id = $1`, id).
		Scan(&gender, &a.AgeMin, &a.AgeMax)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Audience{Gender: domain.GenderAll}, nil
	}
	if err != nil {
		return a, fmt.Errorf("get audience: %w", err)
	}
	a.Gender = domain.Gender(gender)
	return a, nil
}

func listEvents(ctx context.Context, q querier, id uuid.UUID) ([]domain.AuditEvent, error) {
	rows, err := q.Query(ctx, `SELECT id, request_id, event_type, actor, created_at
FROM ad_request_events WHERE request_id = $1 ORDER BY created_at, id`, id)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AuditEvent, error) {
		var (
			e   domain.AuditEvent
			typ string
		)
		err := row.Scan(&e.ID, &e.RequestID, &typ, &e.Actor, &e.CreatedAt)
		e.Type = domain.EventType(typ)
		return e, err
	})
}
