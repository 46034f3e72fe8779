package trainee

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Repository handles trainee data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new trainee repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const traineeColumns = `id, organization_id, trainee_id, first_name, last_name,
	first_name_kana, last_name_kana, nationality, passport_number, visa_type,
	visa_expiry_date, entry_date, departure_date, department, position,
	phone_number, email, address, emergency_contact, emergency_phone,
	supervising_organization, monthly_rent, management_company,
	electric_provider, gas_provider, water_provider, move_in_date, batch_period,
	residence_address, residence_card_number, date_of_birth, is_active,
	created_at, updated_at`

func scanTrainee(row interface{ Scan(...interface{}) error }) (*Trainee, error) {
	t := &Trainee{}
	err := row.Scan(
		&t.ID,
		&t.OrganizationID,
		&t.Code,
		&t.FirstName,
		&t.LastName,
		&t.FirstNameKana,
		&t.LastNameKana,
		&t.Nationality,
		&t.PassportNumber,
		&t.VisaType,
		&t.VisaExpiryDate,
		&t.EntryDate,
		&t.DepartureDate,
		&t.Department,
		&t.Position,
		&t.PhoneNumber,
		&t.Email,
		&t.Address,
		&t.EmergencyContact,
		&t.EmergencyPhone,
		&t.SupervisingOrganization,
		&t.MonthlyRent,
		&t.ManagementCompany,
		&t.ElectricProvider,
		&t.GasProvider,
		&t.WaterProvider,
		&t.MoveInDate,
		&t.BatchPeriod,
		&t.ResidenceAddress,
		&t.ResidenceCardNumber,
		&t.DateOfBirth,
		&t.IsActive,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Create inserts a new trainee record
func (r *Repository) Create(ctx context.Context, req *CreateTraineeRequest) (*Trainee, error) {
	query := `
		INSERT INTO trainees (
			organization_id, trainee_id, first_name, last_name,
			first_name_kana, last_name_kana, nationality, passport_number,
			visa_type, visa_expiry_date, entry_date, departure_date,
			department, position, phone_number, email, address,
			emergency_contact, emergency_phone, supervising_organization,
			monthly_rent, management_company, electric_provider, gas_provider,
			water_provider, move_in_date, batch_period, residence_address,
			residence_card_number, date_of_birth
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27,
			$28, $29, $30)
		RETURNING ` + traineeColumns

	t, err := scanTrainee(r.db.QueryRowContext(ctx, query,
		req.OrganizationID, req.Code, req.FirstName, req.LastName,
		req.FirstNameKana, req.LastNameKana, req.Nationality, req.PassportNumber,
		req.VisaType, req.VisaExpiryDate, req.EntryDate, req.DepartureDate,
		req.Department, req.Position, req.PhoneNumber, req.Email, req.Address,
		req.EmergencyContact, req.EmergencyPhone, req.SupervisingOrganization,
		req.MonthlyRent, req.ManagementCompany, req.ElectricProvider,
		req.GasProvider, req.WaterProvider, req.MoveInDate, req.BatchPeriod,
		req.ResidenceAddress, req.ResidenceCardNumber, req.DateOfBirth,
	))
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrCodeAlreadyInUse
		}
		return nil, fmt.Errorf("failed to create trainee: %w", err)
	}

	return t, nil
}

// GetByID retrieves a trainee by their ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Trainee, error) {
	query := `SELECT ` + traineeColumns + ` FROM trainees WHERE id = $1`

	t, err := scanTrainee(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get trainee: %w", err)
	}

	return t, nil
}

// Exists reports whether a trainee record exists
func (r *Repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM trainees WHERE id = $1)`
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check trainee: %w", err)
	}
	return exists, nil
}

// ListSummaries retrieves compact rows for all active trainees, ordered
// by trainee code.
func (r *Repository) ListSummaries(ctx context.Context) ([]*TraineeSummary, error) {
	query := `
		SELECT id, trainee_id, first_name, last_name, email, is_active
		FROM trainees
		WHERE is_active = true
		ORDER BY trainee_id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list trainees: %w", err)
	}
	defer rows.Close()

	var trainees []*TraineeSummary
	for rows.Next() {
		t := &TraineeSummary{}
		if err := rows.Scan(&t.ID, &t.Code, &t.FirstName, &t.LastName, &t.Email, &t.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan trainee: %w", err)
		}
		trainees = append(trainees, t)
	}

	return trainees, nil
}

// ListActive retrieves all active trainees with full attributes, newest first.
// Used by the export endpoints.
func (r *Repository) ListActive(ctx context.Context) ([]*Trainee, error) {
	query := `
		SELECT ` + traineeColumns + `
		FROM trainees
		WHERE is_active = true
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list trainees: %w", err)
	}
	defer rows.Close()

	var trainees []*Trainee
	for rows.Next() {
		t, err := scanTrainee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trainee: %w", err)
		}
		trainees = append(trainees, t)
	}

	return trainees, nil
}

// ListActiveByVisaExpiryBetween retrieves active trainees whose visa expiry
// date falls within [from, to], bounds inclusive.
func (r *Repository) ListActiveByVisaExpiryBetween(ctx context.Context, from, to time.Time) ([]*Trainee, error) {
	query := `
		SELECT ` + traineeColumns + `
		FROM trainees
		WHERE is_active = true
		  AND visa_expiry_date >= $1
		  AND visa_expiry_date <= $2
		ORDER BY visa_expiry_date
	`

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list trainees by visa expiry: %w", err)
	}
	defer rows.Close()

	var trainees []*Trainee
	for rows.Next() {
		t, err := scanTrainee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trainee: %w", err)
		}
		trainees = append(trainees, t)
	}

	return trainees, nil
}

// Update modifies an existing trainee. Nil request fields are left unchanged.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, req *UpdateTraineeRequest) (*Trainee, error) {
	query := `
		UPDATE trainees
		SET first_name = COALESCE($2, first_name),
		    last_name = COALESCE($3, last_name),
		    first_name_kana = COALESCE($4, first_name_kana),
		    last_name_kana = COALESCE($5, last_name_kana),
		    nationality = COALESCE($6, nationality),
		    passport_number = COALESCE($7, passport_number),
		    visa_type = COALESCE($8, visa_type),
		    visa_expiry_date = COALESCE($9, visa_expiry_date),
		    entry_date = COALESCE($10, entry_date),
		    departure_date = COALESCE($11, departure_date),
		    department = COALESCE($12, department),
		    position = COALESCE($13, position),
		    phone_number = COALESCE($14, phone_number),
		    email = COALESCE($15, email),
		    address = COALESCE($16, address),
		    emergency_contact = COALESCE($17, emergency_contact),
		    emergency_phone = COALESCE($18, emergency_phone),
		    supervising_organization = COALESCE($19, supervising_organization),
		    monthly_rent = COALESCE($20, monthly_rent),
		    management_company = COALESCE($21, management_company),
		    electric_provider = COALESCE($22, electric_provider),
		    gas_provider = COALESCE($23, gas_provider),
		    water_provider = COALESCE($24, water_provider),
		    move_in_date = COALESCE($25, move_in_date),
		    batch_period = COALESCE($26, batch_period),
		    residence_address = COALESCE($27, residence_address),
		    residence_card_number = COALESCE($28, residence_card_number),
		    date_of_birth = COALESCE($29, date_of_birth),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + traineeColumns

	t, err := scanTrainee(r.db.QueryRowContext(ctx, query, id,
		req.FirstName, req.LastName, req.FirstNameKana, req.LastNameKana,
		req.Nationality, req.PassportNumber, req.VisaType, req.VisaExpiryDate,
		req.EntryDate, req.DepartureDate, req.Department, req.Position,
		req.PhoneNumber, req.Email, req.Address, req.EmergencyContact,
		req.EmergencyPhone, req.SupervisingOrganization, req.MonthlyRent,
		req.ManagementCompany, req.ElectricProvider, req.GasProvider,
		req.WaterProvider, req.MoveInDate, req.BatchPeriod,
		req.ResidenceAddress, req.ResidenceCardNumber, req.DateOfBirth,
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update trainee: %w", err)
	}

	return t, nil
}

// Deactivate soft-deletes a trainee by clearing the active flag
func (r *Repository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE trainees SET is_active = false, updated_at = NOW() WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate trainee: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrTraineeNotFound
	}

	return nil
}
