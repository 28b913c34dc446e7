package labresults

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

const cols = `id, user_id, type, systolic, diastolic, total_cholesterol, ldl, hdl,
	triglycerides, hba1c, recorded_at, notes, created_at, updated_at`

func (r *repoPG) scan(row pgx.Row) (*LabResult, error) {
	var lr LabResult
	err := row.Scan(&lr.ID, &lr.UserID, &lr.Type, &lr.Systolic, &lr.Diastolic,
		&lr.TotalCholesterol, &lr.LDL, &lr.HDL,
		&lr.Triglycerides, &lr.HbA1c, &lr.Date, &lr.Notes, &lr.CreatedAt, &lr.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &lr, err
}

func (r *repoPG) Create(ctx context.Context, lr *LabResult) error {
	lr.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO lab_result (id, user_id, type, systolic, diastolic, total_cholesterol,
			ldl, hdl, triglycerides, hba1c, recorded_at, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING created_at, updated_at`,
		lr.ID, lr.UserID, lr.Type, lr.Systolic, lr.Diastolic, lr.TotalCholesterol,
		lr.LDL, lr.HDL, lr.Triglycerides, lr.HbA1c, lr.Date, lr.Notes).
		Scan(&lr.CreatedAt, &lr.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, userID string, id uuid.UUID) (*LabResult, error) {
	return r.scan(r.conn(ctx).QueryRow(ctx,
		`SELECT `+cols+` FROM lab_result WHERE id = $1 AND user_id = $2`, id, userID))
}

func (r *repoPG) List(ctx context.Context, userID string, limit, offset int) ([]*LabResult, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM lab_result WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+cols+` FROM lab_result WHERE user_id = $1 ORDER BY recorded_at DESC LIMIT $2 OFFSET $3`,
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

func (r *repoPG) ListByType(ctx context.Context, userID, typ string, limit, offset int) ([]*LabResult, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM lab_result WHERE user_id = $1 AND type = $2`, userID, typ).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+cols+` FROM lab_result WHERE user_id = $1 AND type = $2 ORDER BY recorded_at DESC LIMIT $3 OFFSET $4`,
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

func (r *repoPG) ListAll(ctx context.Context, userID string) ([]*LabResult, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+cols+` FROM lab_result WHERE user_id = $1 ORDER BY recorded_at ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *repoPG) ListRecentByType(ctx context.Context, userID, typ string, limit int) ([]*LabResult, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+cols+` FROM lab_result WHERE user_id = $1 AND type = $2 ORDER BY recorded_at DESC LIMIT $3`,
		userID, typ, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *repoPG) Update(ctx context.Context, lr *LabResult) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE lab_result SET type=$3, systolic=$4, diastolic=$5, total_cholesterol=$6,
			ldl=$7, hdl=$8, triglycerides=$9, hba1c=$10, recorded_at=$11, notes=$12,
			updated_at=NOW()
		WHERE id = $1 AND user_id = $2`,
		lr.ID, lr.UserID, lr.Type, lr.Systolic, lr.Diastolic, lr.TotalCholesterol,
		lr.LDL, lr.HDL, lr.Triglycerides, lr.HbA1c, lr.Date, lr.Notes)
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
		`DELETE FROM lab_result WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *repoPG) collect(rows pgx.Rows) ([]*LabResult, error) {
	var items []*LabResult
	for rows.Next() {
		lr, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, lr)
	}
	return items, rows.Err()
}
