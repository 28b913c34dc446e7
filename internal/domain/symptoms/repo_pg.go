package symptoms

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cardiowell/cardiowell/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const cols = `id, user_id, type, severity, duration, notes, occurred_at, created_at, updated_at`

func (r *repoPG) scan(row pgx.Row) (*Symptom, error) {
	var s Symptom
	err := row.Scan(&s.ID, &s.UserID, &s.Type, &s.Severity, &s.Duration, &s.Notes,
		&s.Timestamp, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &s, err
}

func (r *repoPG) Create(ctx context.Context, s *Symptom) error {
	s.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO symptom (id, user_id, type, severity, duration, notes, occurred_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at, updated_at`,
		s.ID, s.UserID, s.Type, s.Severity, s.Duration, s.Notes, s.Timestamp).
		Scan(&s.CreatedAt, &s.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, userID string, id uuid.UUID) (*Symptom, error) {
	return r.scan(r.conn(ctx).QueryRow(ctx,
		`SELECT `+cols+` FROM symptom WHERE id = $1 AND user_id = $2`, id, userID))
}

func (r *repoPG) List(ctx context.Context, userID string, limit, offset int) ([]*Symptom, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM symptom WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+cols+` FROM symptom WHERE user_id = $1 ORDER BY occurred_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	items, err := r.collect(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *repoPG) ListByType(ctx context.Context, userID, typ string, limit, offset int) ([]*Symptom, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM symptom WHERE user_id = $1 AND type = $2`, userID, typ).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+cols+` FROM symptom WHERE user_id = $1 AND type = $2 ORDER BY occurred_at DESC LIMIT $3 OFFSET $4`,
		userID, typ, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	items, err := r.collect(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *repoPG) ListAll(ctx context.Context, userID string) ([]*Symptom, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+cols+` FROM symptom WHERE user_id = $1 ORDER BY occurred_at ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *repoPG) ListRecentByType(ctx context.Context, userID, typ string, limit int) ([]*Symptom, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+cols+` FROM symptom WHERE user_id = $1 AND type = $2 ORDER BY occurred_at DESC LIMIT $3`,
		userID, typ, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *repoPG) Update(ctx context.Context, s *Symptom) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE symptom SET type=$3, severity=$4, duration=$5, notes=$6, occurred_at=$7, updated_at=NOW()
		WHERE id = $1 AND user_id = $2`,
		s.ID, s.UserID, s.Type, s.Severity, s.Duration, s.Notes, s.Timestamp)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, userID string, id uuid.UUID) (bool, error) {
	tag, err := r.conn(ctx).Exec(ctx,
		`DELETE FROM symptom WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *repoPG) collect(rows pgx.Rows) ([]*Symptom, error) {
	var items []*Symptom
	for rows.Next() {
		s, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}
