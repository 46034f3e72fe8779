package organization

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Repository handles organization data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new organization repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const orgColumns = `id, name, code, is_active, created_at, updated_at`

func scanOrganization(row interface{ Scan(...interface{}) error }) (*Organization, error) {
	o := &Organization{}
	err := row.Scan(&o.ID, &o.Name, &o.Code, &o.IsActive, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// Create inserts a new organization
func (r *Repository) Create(ctx context.Context, req *CreateOrganizationRequest) (*Organization, error) {
	query := `
		INSERT INTO organizations (name, code)
		VALUES ($1, $2)
		RETURNING ` + orgColumns

	o, err := scanOrganization(r.db.QueryRowContext(ctx, query, req.Name, req.Code))
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrCodeAlreadyInUse
		}
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	return o, nil
}

// GetByID retrieves an organization by its ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Organization, error) {
	query := `SELECT ` + orgColumns + ` FROM organizations WHERE id = $1`

	o, err := scanOrganization(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return o, nil
}

// List retrieves all active organizations
func (r *Repository) List(ctx context.Context) ([]*Organization, error) {
	query := `
		SELECT ` + orgColumns + `
		FROM organizations
		WHERE is_active = true
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	defer rows.Close()

	var orgs []*Organization
	for rows.Next() {
		o, err := scanOrganization(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan organization: %w", err)
		}
		orgs = append(orgs, o)
	}

	return orgs, nil
}

// ListByUserID retrieves the organizations a user belongs to
func (r *Repository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*Organization, error) {
	query := `
		SELECT o.id, o.name, o.code, o.is_active, o.created_at, o.updated_at
		FROM organizations o
		JOIN user_organizations uo ON o.id = uo.organization_id
		WHERE uo.user_id = $1
		ORDER BY o.name
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user organizations: %w", err)
	}
	defer rows.Close()

	var orgs []*Organization
	for rows.Next() {
		o, err := scanOrganization(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan organization: %w", err)
		}
		orgs = append(orgs, o)
	}

	return orgs, nil
}

// Update modifies an existing organization
func (r *Repository) Update(ctx context.Context, id uuid.UUID, req *UpdateOrganizationRequest) (*Organization, error) {
	query := `
		UPDATE organizations
		SET name = COALESCE($2, name),
		    code = COALESCE($3, code),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + orgColumns

	o, err := scanOrganization(r.db.QueryRowContext(ctx, query, id, req.Name, req.Code))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrCodeAlreadyInUse
		}
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	return o, nil
}

// Deactivate soft-deletes an organization by clearing the active flag
func (r *Repository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE organizations SET is_active = false, updated_at = NOW() WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate organization: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrOrganizationNotFound
	}

	return nil
}
