package job

import (
	"time"

	"github.com/Abraxas-365/careers/pkg/kernel"
)

// CreateJobRequest - DTO for creating a job. Omitted optional fields take
// the defaults of an empty job form.
type CreateJobRequest struct {
	Title            string   `json:"title"`
	Department       string   `json:"department,omitempty"`
	Location         string   `json:"location"`
	JobType          string   `json:"job_type,omitempty"`
	ExperienceLevel  string   `json:"experience_level,omitempty"`
	LocationType     string   `json:"location_type,omitempty"`
	Description      string   `json:"description,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Qualifications   []string `json:"qualifications,omitempty"`
	Benefits         []string `json:"benefits,omitempty"`
	SalaryMin        *int     `json:"salary_min,omitempty"`
	SalaryMax        *int     `json:"salary_max,omitempty"`
	SalaryCurrency   string   `json:"salary_currency,omitempty"`
	ApplicationURL   string   `json:"application_url,omitempty"`
	IsActive         *bool    `json:"is_active,omitempty"`
}

// ToDraft overlays the request on NewDraft
func (r CreateJobRequest) ToDraft() Draft {
	d := NewDraft()
	d.Title = r.Title
	d.Department = r.Department
	d.Location = r.Location
	if r.JobType != "" {
		d.JobType = r.JobType
	}
	d.ExperienceLevel = r.ExperienceLevel
	d.LocationType = r.LocationType
	d.Description = r.Description
	if r.Responsibilities != nil {
		d.Responsibilities = r.Responsibilities
	}
	if r.Qualifications != nil {
		d.Qualifications = r.Qualifications
	}
	if r.Benefits != nil {
		d.Benefits = r.Benefits
	}
	d.SalaryMin = r.SalaryMin
	d.SalaryMax = r.SalaryMax
	if r.SalaryCurrency != "" {
		d.SalaryCurrency = r.SalaryCurrency
	}
	d.ApplicationURL = r.ApplicationURL
	if r.IsActive != nil {
		d.IsActive = *r.IsActive
	}
	return d
}

// SetActiveRequest - DTO for toggling a job's visibility
type SetActiveRequest struct {
	IsActive bool `json:"is_active"`
}

// JobResponse - DTO for returning job data
type JobResponse struct {
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
	SalaryLabel      string           `json:"salary_label,omitempty"`
	ApplicationURL   string           `json:"application_url,omitempty"`
	IsActive         bool             `json:"is_active"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// ToResponse converts a job to its response DTO
func (j *Job) ToResponse() JobResponse {
	return JobResponse{
		ID:               j.ID,
		CompanyID:        j.CompanyID,
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
		SalaryMin:        j.SalaryMin,
		SalaryMax:        j.SalaryMax,
		SalaryCurrency:   j.SalaryCurrency,
		SalaryLabel:      j.SalaryLabel(),
		ApplicationURL:   j.ApplicationURL,
		IsActive:         j.IsActive,
		CreatedAt:        j.CreatedAt,
		UpdatedAt:        j.UpdatedAt,
	}
}

// Response type alias for paginated jobs
type PaginatedJobsResponse = kernel.Paginated[JobResponse]

// ListingResponse - DTO for a filtered job listing
type ListingResponse struct {
	Jobs             []JobResponse `json:"jobs"`
	Facets           Facets        `json:"facets"`
	Criteria         Criteria      `json:"criteria"`
	FilteredCount    int           `json:"filtered_count"`
	TotalCount       int           `json:"total_count"`
	HasActiveFilters bool          `json:"has_active_filters"`
}

// ToResponse converts a listing to its response DTO
func (l Listing) ToResponse() ListingResponse {
	jobs := make([]JobResponse, 0, len(l.Jobs))
	for i := range l.Jobs {
		jobs = append(jobs, l.Jobs[i].ToResponse())
	}
	return ListingResponse{
		Jobs:             jobs,
		Facets:           l.Facets,
		Criteria:         l.Criteria,
		FilteredCount:    l.FilteredCount,
		TotalCount:       l.TotalCount,
		HasActiveFilters: l.HasActiveFilters,
	}
}
