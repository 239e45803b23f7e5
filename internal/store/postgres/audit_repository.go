package postgres

import (
	"context"

	"linkboard/internal/domain/audit"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AuditRepository implements repositories.AuditRepository backed by Postgres.
type AuditRepository struct {
	db *pgxpool.Pool
}

func NewAuditRepository(db *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{db: db}
}

// EnsureSchema creates the audit table if it does not exist yet.
func (r *AuditRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS audit_log (
			id          BIGSERIAL PRIMARY KEY,
			actor_id    BIGINT NOT NULL,
			actor_name  TEXT NOT NULL,
			role        TEXT NOT NULL,
			action      TEXT NOT NULL,
			record_id   BIGINT NOT NULL DEFAULT 0,
			outcome     TEXT NOT NULL,
			detail      TEXT NOT NULL DEFAULT '',
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	return err
}

func (r *AuditRepository) Record(ctx context.Context, e *audit.Entry) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO audit_log (actor_id, actor_name, role, action, record_id, outcome, detail)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id, created_at`,
		e.ActorID, e.ActorName, e.Role, e.Action, e.RecordID, string(e.Outcome), e.Detail,
	).Scan(&e.ID, &e.CreatedAt)
}

func (r *AuditRepository) List(ctx context.Context, limit, offset int) ([]audit.Entry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, actor_id, actor_name, role, action, record_id, outcome, detail, created_at
		  FROM audit_log
		 ORDER BY id DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []audit.Entry
	for rows.Next() {
		var e audit.Entry
		var outcome string
		if err := rows.Scan(&e.ID, &e.ActorID, &e.ActorName, &e.Role, &e.Action, &e.RecordID, &outcome, &e.Detail, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Outcome = audit.Outcome(outcome)
		out = append(out, e)
	}
	return out, rows.Err()
}
