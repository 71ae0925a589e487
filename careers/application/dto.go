package application

import (
	"io"

	"github.com/Abraxas-365/careers/pkg/kernel"
)

// ApplyRequest - DTO for the public application form
type ApplyRequest struct {
	CandidateName  string `json:"candidate_name" form:"candidate_name" validate:"required,min=2,max=120"`
	CandidateEmail string `json:"candidate_email" form:"candidate_email" validate:"required,email"`
	CandidatePhone string `json:"candidate_phone,omitempty" form:"candidate_phone" validate:"max=40"`
	CoverLetter    string `json:"cover_letter,omitempty" form:"cover_letter" validate:"max=5000"`
}

// Resume is an uploaded resume file
type Resume struct {
	ContentType string
	Size        int64
	Body        io.Reader
}

// UpdateStatusRequest - DTO for moving an application through review
type UpdateStatusRequest struct {
	Status Status `json:"status" validate:"required"`
}

// Response type alias for paginated applications
type PaginatedApplicationsResponse = kernel.Paginated[Application]
