package skill

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Repository handles skill master data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new skill repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const skillColumns = `id, category, name, description, created_at, updated_at`

func scanSkill(row interface{ Scan(...interface{}) error }) (*SkillMaster, error) {
	s := &SkillMaster{}
	err := row.Scan(&s.ID, &s.Category, &s.Name, &s.Description, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts a new skill master record
func (r *Repository) Create(ctx context.Context, req *CreateSkillRequest) (*SkillMaster, error) {
	query := `
		INSERT INTO skill_masters (category, name, description)
		VALUES ($1, $2, $3)
		RETURNING ` + skillColumns

	s, err := scanSkill(r.db.QueryRowContext(ctx, query, req.Category, req.Name, req.Description))
	if err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}

	return s, nil
}

// GetByID retrieves a skill by its ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*SkillMaster, error) {
	query := `SELECT ` + skillColumns + ` FROM skill_masters WHERE id = $1`

	s, err := scanSkill(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}

	return s, nil
}

// List retrieves the full skill catalogue ordered by category then name
func (r *Repository) List(ctx context.Context) ([]*SkillMaster, error) {
	query := `
		SELECT ` + skillColumns + `
		FROM skill_masters
		ORDER BY category, name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	var skills []*SkillMaster
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}

	return skills, nil
}

// Update modifies an existing skill
func (r *Repository) Update(ctx context.Context, id uuid.UUID, req *UpdateSkillRequest) (*SkillMaster, error) {
	query := `
		UPDATE skill_masters
		SET category = COALESCE($2, category),
		    name = COALESCE($3, name),
		    description = COALESCE($4, description),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + skillColumns

	s, err := scanSkill(r.db.QueryRowContext(ctx, query, id, req.Category, req.Name, req.Description))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update skill: %w", err)
	}

	return s, nil
}

// Delete removes a skill from the catalogue
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM skill_masters WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrSkillNotFound
	}

	return nil
}
