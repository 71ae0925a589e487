package job

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Abraxas-365/careers/pkg/kernel"
	"github.com/google/uuid"
)

const (
	DefaultJobType  = "Full-time"
	DefaultCurrency = "USD"
)

// Job is a posting on a company's careers page
type Job struct {
	ID               kernel.JobID     `json:"id"`
	CompanyID        kernel.CompanyID `json:"company_id"`
	Title            string           `json:"title"`
	Department       string           `json:"department,omitempty"`
	Location         string           `json:"location"`
	JobType          string           `json:"job_type"`
	ExperienceLevel  string           `json:"experience_level,omitempty"`
	LocationType     string           `json:"location_type,omitempty"`
	Description      string           `json:"description,omitempty"`
	Responsibilities []string         `json:"responsibilities"`
	Qualifications   []string         `json:"qualifications"`
	Benefits         []string         `json:"benefits"`
	SalaryMin        *int             `json:"salary_min,omitempty"`
	SalaryMax        *int             `json:"salary_max,omitempty"`
	SalaryCurrency   string           `json:"salary_currency"`
	ApplicationURL   string           `json:"application_url,omitempty"`
	IsActive         bool             `json:"is_active"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// NewJob builds a job for companyID from a draft. Missing job type and
// currency take their defaults; activity comes from the draft, which
// starts active (see NewDraft).
func NewJob(companyID kernel.CompanyID, d Draft) *Job {
	now := time.Now()
	j := &Job{
		ID:        kernel.NewJobID(uuid.NewString()),
		CompanyID: companyID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	d.withDefaults().applyTo(j)
	return j
}

// ============================================================================
// Domain Methods
// ============================================================================

// Activate makes the job visible on the public page
func (j *Job) Activate() {
	j.IsActive = true
	j.UpdatedAt = time.Now()
}

// Deactivate hides the job from the public page
func (j *Job) Deactivate() {
	j.IsActive = false
	j.UpdatedAt = time.Now()
}

// BelongsTo checks if the job is posted under companyID
func (j *Job) BelongsTo(companyID kernel.CompanyID) bool {
	return j.CompanyID == companyID
}

// HasSalary reports whether any salary bound is set
func (j *Job) HasSalary() bool {
	return j.SalaryMin != nil || j.SalaryMax != nil
}

// SalaryLabel renders the salary range for display, e.g. "USD 100,000 - 150,000"
func (j *Job) SalaryLabel() string {
	switch {
	case j.SalaryMin != nil && j.SalaryMax != nil:
		return fmt.Sprintf("%s %s - %s", j.SalaryCurrency, groupThousands(*j.SalaryMin), groupThousands(*j.SalaryMax))
	case j.SalaryMin != nil:
		return fmt.Sprintf("From %s %s", j.SalaryCurrency, groupThousands(*j.SalaryMin))
	case j.SalaryMax != nil:
		return fmt.Sprintf("Up to %s %s", j.SalaryCurrency, groupThousands(*j.SalaryMax))
	default:
		return ""
	}
}

// Draft returns the editable attributes of the job
func (j *Job) Draft() Draft {
	return Draft{
		Title:            j.Title,
		Department:       j.Department,
		Location:         j.Location,
		JobType:          j.JobType,
		ExperienceLevel:  j.ExperienceLevel,
		LocationType:     j.LocationType,
		Description:      j.Description,
		Responsibilities: cloneStrings(j.Responsibilities),
		Qualifications:   cloneStrings(j.Qualifications),
		Benefits:         cloneStrings(j.Benefits),
		SalaryMin:        cloneInt(j.SalaryMin),
		SalaryMax:        cloneInt(j.SalaryMax),
		SalaryCurrency:   j.SalaryCurrency,
		ApplicationURL:   j.ApplicationURL,
		IsActive:         j.IsActive,
	}
}

// ============================================================================
// Helper Methods
// ============================================================================

func groupThousands(n int) string {
	s := strconv.Itoa(n)
	neg := n < 0
	if neg {
		s = s[1:]
	}
	var out []byte
	for i := range len(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

func cloneStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return append([]string{}, s...)
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
