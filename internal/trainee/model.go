package trainee

import (
	"time"

	"github.com/google/uuid"
)

// Trainee represents a technical intern training program participant.
// Housing and residence fields track company dormitory arrangements.
type Trainee struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	// Code is the human-assigned trainee identifier (実習生ID), unique per tenant.
	Code           string     `json:"trainee_id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	FirstNameKana  *string    `json:"first_name_kana,omitempty"`
	LastNameKana   *string    `json:"last_name_kana,omitempty"`
	Nationality    string     `json:"nationality"`
	PassportNumber string     `json:"passport_number"`
	VisaType       string     `json:"visa_type"`
	VisaExpiryDate *time.Time `json:"visa_expiry_date,omitempty"`
	EntryDate      *time.Time `json:"entry_date,omitempty"`
	DepartureDate  *time.Time `json:"departure_date,omitempty"`
	Department     string     `json:"department"`
	Position       *string    `json:"position,omitempty"`
	PhoneNumber    *string    `json:"phone_number,omitempty"`
	Email          *string    `json:"email,omitempty"`
	Address        *string    `json:"address,omitempty"`
	EmergencyContact *string  `json:"emergency_contact,omitempty"`
	EmergencyPhone   *string  `json:"emergency_phone,omitempty"`

	// 社宅・管理関連情報
	SupervisingOrganization *string    `json:"supervising_organization,omitempty"` // 監理団体
	MonthlyRent             *int       `json:"monthly_rent,omitempty"`
	ManagementCompany       *string    `json:"management_company,omitempty"`
	ElectricProvider        *string    `json:"electric_provider,omitempty"`
	GasProvider             *string    `json:"gas_provider,omitempty"`
	WaterProvider           *string    `json:"water_provider,omitempty"`
	MoveInDate              *time.Time `json:"move_in_date,omitempty"`
	BatchPeriod             *string    `json:"batch_period,omitempty"` // 期
	ResidenceAddress        *string    `json:"residence_address,omitempty"`
	ResidenceCardNumber     *string    `json:"residence_card_number,omitempty"`

	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// FullName returns the trainee's name in Japanese order (surname first).
func (t *Trainee) FullName() string {
	return t.LastName + " " + t.FirstName
}
