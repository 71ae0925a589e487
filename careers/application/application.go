package application

import (
	"path"
	"slices"
	"strings"
	"time"

	"github.com/Abraxas-365/careers/pkg/kernel"
	"github.com/google/uuid"
)

// Status is the review state of an application
type Status string

const (
	StatusNew         Status = "new"
	StatusReviewing   Status = "reviewing"
	StatusShortlisted Status = "shortlisted"
	StatusAccepted    Status = "accepted"
	StatusRejected    Status = "rejected"
)

// transitions lists the statuses reachable from each non-terminal status
var transitions = map[Status][]Status{
	StatusNew:         {StatusReviewing, StatusRejected},
	StatusReviewing:   {StatusReviewing, StatusShortlisted, StatusRejected},
	StatusShortlisted: {StatusReviewing, StatusAccepted, StatusRejected},
}

// IsValid checks if the status is known
func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusReviewing, StatusShortlisted, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed
func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// Application is a candidate's application to a job
type Application struct {
	ID              kernel.ApplicationID `json:"id"`
	JobID           kernel.JobID         `json:"job_id"`
	CompanyID       kernel.CompanyID     `json:"company_id"`
	CandidateName   string               `json:"candidate_name"`
	CandidateEmail  kernel.Email         `json:"candidate_email"`
	CandidatePhone  kernel.Phone         `json:"candidate_phone,omitempty"`
	ResumeURL       string               `json:"resume_url,omitempty"`
	CoverLetter     string               `json:"cover_letter,omitempty"`
	Status          Status               `json:"status"`
	StatusChangedAt *time.Time           `json:"status_changed_at,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// NewApplication creates a new application in StatusNew
func NewApplication(jobID kernel.JobID, companyID kernel.CompanyID, req ApplyRequest) *Application {
	now := time.Now()
	return &Application{
		ID:             kernel.NewApplicationID(uuid.NewString()),
		JobID:          jobID,
		CompanyID:      companyID,
		CandidateName:  strings.TrimSpace(req.CandidateName),
		CandidateEmail: kernel.Email(req.CandidateEmail).Normalize(),
		CandidatePhone: kernel.Phone(strings.TrimSpace(req.CandidatePhone)),
		CoverLetter:    strings.TrimSpace(req.CoverLetter),
		Status:         StatusNew,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// ============================================================================
// Domain Methods
// ============================================================================

// CanTransitionTo checks the transition table
func (a *Application) CanTransitionTo(next Status) bool {
	return slices.Contains(transitions[a.Status], next)
}

// UpdateStatus moves the application to next
func (a *Application) UpdateStatus(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus().WithDetail("status", next)
	}
	if !a.CanTransitionTo(next) {
		return ErrInvalidStatusTransition().
			WithDetail("current_status", a.Status).
			WithDetail("new_status", next)
	}

	now := time.Now()
	a.Status = next
	a.StatusChangedAt = &now
	a.UpdatedAt = now
	return nil
}

// ============================================================================
// Resumes
// ============================================================================

const MaxResumeSize = 10 << 20

var resumeContentTypes = map[string]string{
	"application/pdf":    ".pdf",
	"application/msword": ".doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
}

// ValidateResume checks size and content type and returns the file extension
func ValidateResume(contentType string, size int64) (string, error) {
	if size <= 0 || size > MaxResumeSize {
		return "", ErrFileSizeTooLarge().
			WithDetail("file_size", size).
			WithDetail("max_size", MaxResumeSize)
	}
	ct := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	ext, ok := resumeContentTypes[ct]
	if !ok {
		return "", ErrInvalidFileType().
			WithDetail("content_type", contentType).
			WithDetail("allowed_types", "pdf, doc, docx")
	}
	return ext, nil
}

// ResumePath is the storage path of an application's resume
func ResumePath(a *Application, ext string) string {
	return path.Join("resumes", a.CompanyID.String(), a.ID.String()+ext)
}
