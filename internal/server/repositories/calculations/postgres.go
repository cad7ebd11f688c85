// Package calculations provides PostgreSQL-backed persistence for
// calculation records.
package calculations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/calckeeper/internal/common"
	"github.com/dmitrijs2005/calckeeper/internal/dbx"
	"github.com/dmitrijs2005/calckeeper/internal/server/models"
)

// PostgresRepository implements calculation storage over a dbx.DBTX
// (*sql.DB or *sql.Tx). Ownership checks belong to the caller.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts calc and sets its ID. CreatedAt is taken from calc.
func (r *PostgresRepository) Create(ctx context.Context, calc *models.Calculation) (*models.Calculation, error) {
	query := `
		INSERT INTO calculations (user_id, operation, operand1, operand2, result, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		calc.UserID, calc.Operation, calc.Operand1, calc.Operand2, calc.Result, calc.CreatedAt).Scan(&calc.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return calc, nil
}

// FindByID returns the calculation with the given id regardless of owner,
// or common.ErrorNotFound.
func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (*models.Calculation, error) {
	query := `
		SELECT id, user_id, operation, operand1, operand2, result, created_at
		FROM calculations
		WHERE id = $1
	`
	var c models.Calculation
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.UserID, &c.Operation, &c.Operand1, &c.Operand2, &c.Result, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &c, nil
}

// ListByOwner returns every calculation of userID ordered by id. An owner
// without records gets an empty, non-nil slice.
func (r *PostgresRepository) ListByOwner(ctx context.Context, userID int64) ([]*models.Calculation, error) {
	query := `
		SELECT id, user_id, operation, operand1, operand2, result, created_at
		FROM calculations
		WHERE user_id = $1
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select calculations: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Calculation, 0)
	for rows.Next() {
		var c models.Calculation
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.Operation, &c.Operand1, &c.Operand2, &c.Result, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update replaces operation, operands and result of calc.ID in a single
// statement; created_at and user_id are left untouched.
func (r *PostgresRepository) Update(ctx context.Context, calc *models.Calculation) (*models.Calculation, error) {
	query := `
		UPDATE calculations
		SET operation = $2, operand1 = $3, operand2 = $4, result = $5
		WHERE id = $1
		RETURNING user_id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		calc.ID, calc.Operation, calc.Operand1, calc.Operand2, calc.Result).Scan(&calc.UserID, &calc.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return calc, nil
}

// Delete removes the calculation with the given id. Returns
// common.ErrorNotFound when nothing was deleted.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM calculations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
