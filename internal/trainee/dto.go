package trainee

import (
	"time"

	"github.com/google/uuid"
)

// CreateTraineeRequest represents the request body for registering a trainee
type CreateTraineeRequest struct {
	OrganizationID uuid.UUID  `json:"organization_id" validate:"required"`
	Code           string     `json:"trainee_id" validate:"required,max=50"`
	FirstName      string     `json:"first_name" validate:"required,max=100"`
	LastName       string     `json:"last_name" validate:"required,max=100"`
	FirstNameKana  *string    `json:"first_name_kana,omitempty"`
	LastNameKana   *string    `json:"last_name_kana,omitempty"`
	Nationality    string     `json:"nationality" validate:"required,max=100"`
	PassportNumber string     `json:"passport_number" validate:"required,max=50"`
	VisaType       string     `json:"visa_type" validate:"required,max=100"`
	VisaExpiryDate *time.Time `json:"visa_expiry_date,omitempty"`
	EntryDate      *time.Time `json:"entry_date,omitempty"`
	DepartureDate  *time.Time `json:"departure_date,omitempty"`
	Department     string     `json:"department" validate:"required,max=100"`
	Position       *string    `json:"position,omitempty"`
	PhoneNumber    *string    `json:"phone_number,omitempty"`
	Email          *string    `json:"email,omitempty" validate:"omitempty,email"`
	Address        *string    `json:"address,omitempty"`
	EmergencyContact *string  `json:"emergency_contact,omitempty"`
	EmergencyPhone   *string  `json:"emergency_phone,omitempty"`

	SupervisingOrganization *string    `json:"supervising_organization,omitempty"`
	MonthlyRent             *int       `json:"monthly_rent,omitempty"`
	ManagementCompany       *string    `json:"management_company,omitempty"`
	ElectricProvider        *string    `json:"electric_provider,omitempty"`
	GasProvider             *string    `json:"gas_provider,omitempty"`
	WaterProvider           *string    `json:"water_provider,omitempty"`
	MoveInDate              *time.Time `json:"move_in_date,omitempty"`
	BatchPeriod             *string    `json:"batch_period,omitempty"`
	ResidenceAddress        *string    `json:"residence_address,omitempty"`
	ResidenceCardNumber     *string    `json:"residence_card_number,omitempty"`

	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
}

// UpdateTraineeRequest represents the request body for updating a trainee.
// Nil fields are left unchanged.
type UpdateTraineeRequest struct {
	FirstName      *string    `json:"first_name,omitempty"`
	LastName       *string    `json:"last_name,omitempty"`
	FirstNameKana  *string    `json:"first_name_kana,omitempty"`
	LastNameKana   *string    `json:"last_name_kana,omitempty"`
	Nationality    *string    `json:"nationality,omitempty"`
	PassportNumber *string    `json:"passport_number,omitempty"`
	VisaType       *string    `json:"visa_type,omitempty"`
	VisaExpiryDate *time.Time `json:"visa_expiry_date,omitempty"`
	EntryDate      *time.Time `json:"entry_date,omitempty"`
	DepartureDate  *time.Time `json:"departure_date,omitempty"`
	Department     *string    `json:"department,omitempty"`
	Position       *string    `json:"position,omitempty"`
	PhoneNumber    *string    `json:"phone_number,omitempty"`
	Email          *string    `json:"email,omitempty"`
	Address        *string    `json:"address,omitempty"`
	EmergencyContact *string  `json:"emergency_contact,omitempty"`
	EmergencyPhone   *string  `json:"emergency_phone,omitempty"`

	SupervisingOrganization *string    `json:"supervising_organization,omitempty"`
	MonthlyRent             *int       `json:"monthly_rent,omitempty"`
	ManagementCompany       *string    `json:"management_company,omitempty"`
	ElectricProvider        *string    `json:"electric_provider,omitempty"`
	GasProvider             *string    `json:"gas_provider,omitempty"`
	WaterProvider           *string    `json:"water_provider,omitempty"`
	MoveInDate              *time.Time `json:"move_in_date,omitempty"`
	BatchPeriod             *string    `json:"batch_period,omitempty"`
	ResidenceAddress        *string    `json:"residence_address,omitempty"`
	ResidenceCardNumber     *string    `json:"residence_card_number,omitempty"`

	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
}

// TraineeSummary is the compact listing row used by pickers and search
type TraineeSummary struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"trainee_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     *string   `json:"email,omitempty"`
	IsActive  bool      `json:"is_active"`
}
