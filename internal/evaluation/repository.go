package evaluation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Repository handles evaluation data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new evaluation repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const evalColumns = `id, trainee_id, evaluator_id, skill_id, level, comment,
	evaluation_date, period, created_at, updated_at`

func scanEvaluation(row interface{ Scan(...interface{}) error }) (*Evaluation, error) {
	e := &Evaluation{}
	err := row.Scan(
		&e.ID,
		&e.TraineeID,
		&e.EvaluatorID,
		&e.SkillID,
		&e.Level,
		&e.Comment,
		&e.EvaluationDate,
		&e.Period,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Create inserts a new evaluation
func (r *Repository) Create(ctx context.Context, evaluatorID uuid.UUID, req *CreateEvaluationRequest) (*Evaluation, error) {
	query := `
		INSERT INTO evaluations (trainee_id, evaluator_id, skill_id, level, comment, evaluation_date, period)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + evalColumns

	e, err := scanEvaluation(r.db.QueryRowContext(ctx, query,
		req.TraineeID, evaluatorID, req.SkillID, req.Level, req.Comment,
		req.EvaluationDate, req.Period,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create evaluation: %w", err)
	}

	return e, nil
}

// GetByID retrieves an evaluation by its ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Evaluation, error) {
	query := `SELECT ` + evalColumns + ` FROM evaluations WHERE id = $1`

	e, err := scanEvaluation(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get evaluation: %w", err)
	}

	return e, nil
}

// ListByTraineeID retrieves all evaluations for a trainee with skill and
// evaluator details joined, newest evaluation date first.
func (r *Repository) ListByTraineeID(ctx context.Context, traineeID uuid.UUID) ([]*Evaluation, error) {
	query := `
		SELECT e.id, e.trainee_id, e.evaluator_id, e.skill_id, e.level,
		       e.comment, e.evaluation_date, e.period, e.created_at,
		       e.updated_at, s.name, s.category, u.name
		FROM evaluations e
		JOIN skill_masters s ON e.skill_id = s.id
		JOIN users u ON e.evaluator_id = u.id
		WHERE e.trainee_id = $1
		ORDER BY e.evaluation_date DESC, s.category, s.name
	`

	rows, err := r.db.QueryContext(ctx, query, traineeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	defer rows.Close()

	var evaluations []*Evaluation
	for rows.Next() {
		e := &Evaluation{}
		if err := rows.Scan(
			&e.ID,
			&e.TraineeID,
			&e.EvaluatorID,
			&e.SkillID,
			&e.Level,
			&e.Comment,
			&e.EvaluationDate,
			&e.Period,
			&e.CreatedAt,
			&e.UpdatedAt,
			&e.SkillName,
			&e.SkillCategory,
			&e.EvaluatorName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan evaluation: %w", err)
		}
		evaluations = append(evaluations, e)
	}

	return evaluations, nil
}

// Update modifies an existing evaluation
func (r *Repository) Update(ctx context.Context, id uuid.UUID, req *UpdateEvaluationRequest) (*Evaluation, error) {
	query := `
		UPDATE evaluations
		SET level = COALESCE($2, level),
		    comment = COALESCE($3, comment),
		    evaluation_date = COALESCE($4, evaluation_date),
		    period = COALESCE($5, period),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + evalColumns

	e, err := scanEvaluation(r.db.QueryRowContext(ctx, query, id,
		req.Level, req.Comment, req.EvaluationDate, req.Period,
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update evaluation: %w", err)
	}

	return e, nil
}

// Delete removes an evaluation
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM evaluations WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete evaluation: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrEvaluationNotFound
	}

	return nil
}
