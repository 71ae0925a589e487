package company

// CreateCompanyRequest - DTO for creating a company. The slug is derived
// from the name when omitted.
type CreateCompanyRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=120"`
	Slug        string `json:"slug,omitempty"`
	Tagline     string `json:"tagline,omitempty" validate:"max=200"`
	Description string `json:"description,omitempty"`
}

// UpdateContentRequest - DTO for saving the content tab
type UpdateContentRequest struct {
	ContentSections []ContentSection `json:"content_sections"`
}

// DashboardItem - a company card on the owner dashboard
type DashboardItem struct {
	Company        Company `json:"company"`
	JobCount       int     `json:"job_count"`
	ActiveJobCount int     `json:"active_job_count"`
}

// AssetResponse - DTO returned after an upload
type AssetResponse struct {
	Kind AssetKind `json:"kind"`
	URL  string    `json:"url"`
}
