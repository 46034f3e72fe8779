package certificate

import (
	"time"

	"github.com/google/uuid"
)

// CreateCertificateRequest represents the request to attach a certificate
type CreateCertificateRequest struct {
	TraineeID    uuid.UUID     `json:"trainee_id" validate:"required"`
	Name         string        `json:"name" validate:"required,max=200"`
	IssuingBody  *string       `json:"issuing_body,omitempty"`
	IssueDate    *time.Time    `json:"issue_date,omitempty"`
	ExpiryDate   *time.Time    `json:"expiry_date,omitempty"`
	FilePath     string        `json:"file_path" validate:"required"`
	DocumentType *DocumentType `json:"document_type,omitempty"`
}

// UpdateCertificateRequest represents the request to update a certificate
type UpdateCertificateRequest struct {
	Name         *string       `json:"name,omitempty" validate:"omitempty,max=200"`
	IssuingBody  *string       `json:"issuing_body,omitempty"`
	IssueDate    *time.Time    `json:"issue_date,omitempty"`
	ExpiryDate   *time.Time    `json:"expiry_date,omitempty"`
	FilePath     *string       `json:"file_path,omitempty"`
	DocumentType *DocumentType `json:"document_type,omitempty"`
}
