package pgdb

import (
	"context"
	"time"

	"dealership-api/internal/entity"
	"dealership-api/pkg/postgres"
)

type LeadRepo struct {
	*postgres.Postgres
}

func NewLeadRepo(pgdb *postgres.Postgres) *LeadRepo {
	return &LeadRepo{pgdb}
}

// CreateLead relies on the UNIQUE(session_id, intent) constraint: the same
// conversation intent never produces a second row, even when the fast-path
// session cache was lost.
func (r *LeadRepo) CreateLead(ctx context.Context, input *entity.CreateLeadInput) (bool, error) {
	createLeadSql, args, _ := r.SqlBuilder.
		Insert("lead").
		Columns("session_id", "intent", "name", "phone", "interest").
		Values(input.SessionId, input.Intent, input.Name, input.Phone, input.Interest).
		Suffix("ON CONFLICT (session_id, intent) DO NOTHING").
		ToSql()

	result, err := r.Database.ExecContext(ctx, createLeadSql, args...)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *LeadRepo) GetLeads(ctx context.Context, pg *entity.PaginationInput) ([]entity.Lead, error) {
	getLeadsSql, args, _ := r.SqlBuilder.
		Select("id, session_id, intent, name, phone, interest, created_at").
		From("lead").
		OrderBy("created_at DESC").
		Limit(uint64(pg.Limit)).
		Offset(uint64(pg.Offset)).
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getLeadsSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := make([]entity.Lead, 0)
	for rows.Next() {
		var l entity.Lead
		var createdAt time.Time
		if err := rows.Scan(&l.Id, &l.SessionId, &l.Intent, &l.Name, &l.Phone, &l.Interest, &createdAt); err != nil {
			return nil, err
		}
		l.CreatedAt = createdAt.Format(time.RFC3339)
		leads = append(leads, l)
	}

	return leads, rows.Err()
}
