package certificate

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Repository handles certificate data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new certificate repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const certColumns = `id, trainee_id, name, issuing_body, issue_date, expiry_date,
	file_path, document_type, is_active, created_at, updated_at`

func scanCertificate(row interface{ Scan(...interface{}) error }) (*Certificate, error) {
	c := &Certificate{}
	err := row.Scan(
		&c.ID,
		&c.TraineeID,
		&c.Name,
		&c.IssuingBody,
		&c.IssueDate,
		&c.ExpiryDate,
		&c.FilePath,
		&c.DocumentType,
		&c.IsActive,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a new certificate
func (r *Repository) Create(ctx context.Context, req *CreateCertificateRequest) (*Certificate, error) {
	query := `
		INSERT INTO certificates (trainee_id, name, issuing_body, issue_date, expiry_date, file_path, document_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + certColumns

	c, err := scanCertificate(r.db.QueryRowContext(ctx, query,
		req.TraineeID, req.Name, req.IssuingBody, req.IssueDate, req.ExpiryDate,
		req.FilePath, req.DocumentType,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create certificate: %w", err)
	}

	return c, nil
}

// GetByID retrieves a certificate by its ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Certificate, error) {
	query := `SELECT ` + certColumns + ` FROM certificates WHERE id = $1`

	c, err := scanCertificate(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get certificate: %w", err)
	}

	return c, nil
}

// ListByTraineeID retrieves all active certificates for a trainee
func (r *Repository) ListByTraineeID(ctx context.Context, traineeID uuid.UUID) ([]*Certificate, error) {
	query := `
		SELECT ` + certColumns + `
		FROM certificates
		WHERE trainee_id = $1 AND is_active = true
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, traineeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list certificates: %w", err)
	}
	defer rows.Close()

	var certs []*Certificate
	for rows.Next() {
		c, err := scanCertificate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan certificate: %w", err)
		}
		certs = append(certs, c)
	}

	return certs, nil
}

// Update modifies an existing certificate
func (r *Repository) Update(ctx context.Context, id uuid.UUID, req *UpdateCertificateRequest) (*Certificate, error) {
	query := `
		UPDATE certificates
		SET name = COALESCE($2, name),
		    issuing_body = COALESCE($3, issuing_body),
		    issue_date = COALESCE($4, issue_date),
		    expiry_date = COALESCE($5, expiry_date),
		    file_path = COALESCE($6, file_path),
		    document_type = COALESCE($7, document_type),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + certColumns

	c, err := scanCertificate(r.db.QueryRowContext(ctx, query, id,
		req.Name, req.IssuingBody, req.IssueDate, req.ExpiryDate,
		req.FilePath, req.DocumentType,
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update certificate: %w", err)
	}

	return c, nil
}

// Deactivate soft-deletes a certificate
func (r *Repository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE certificates SET is_active = false, updated_at = NOW() WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate certificate: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrCertificateNotFound
	}

	return nil
}
