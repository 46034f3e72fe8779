package certificate

import (
	"time"

	"github.com/google/uuid"
)

// DocumentType classifies uploaded trainee documents
type DocumentType string

const (
	DocumentTypeCertificate          DocumentType = "CERTIFICATE"
	DocumentTypeEmploymentConditions DocumentType = "EMPLOYMENT_CONDITIONS"
	DocumentTypeMinorChange          DocumentType = "MINOR_CHANGE"
	DocumentTypeTrainingPlanCert     DocumentType = "TRAINING_PLAN_CERT"
)

// Valid reports whether the document type is a known value
func (d DocumentType) Valid() bool {
	switch d {
	case DocumentTypeCertificate, DocumentTypeEmploymentConditions,
		DocumentTypeMinorChange, DocumentTypeTrainingPlanCert:
		return true
	}
	return false
}

// Certificate represents a qualification or document attached to a trainee.
// FilePath references an object in external blob storage; the file itself
// is not handled here.
type Certificate struct {
	ID           uuid.UUID     `json:"id"`
	TraineeID    uuid.UUID     `json:"trainee_id"`
	Name         string        `json:"name"`
	IssuingBody  *string       `json:"issuing_body,omitempty"`
	IssueDate    *time.Time    `json:"issue_date,omitempty"`
	ExpiryDate   *time.Time    `json:"expiry_date,omitempty"`
	FilePath     string        `json:"file_path"`
	DocumentType *DocumentType `json:"document_type,omitempty"`
	IsActive     bool          `json:"is_active"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
