package careerspage

import (
	"strings"
	"time"

	"github.com/Abraxas-365/careers/careers/company"
	"github.com/Abraxas-365/careers/careers/job"
	"github.com/Abraxas-365/careers/pkg/kernel"
)

// Mode tells the client how the page was produced
type Mode string

const (
	ModeLive    Mode = "live"
	ModePreview Mode = "preview"
	ModeDemo    Mode = "demo"
)

// Snapshot is the cached state a careers page is rendered from. Filtering
// runs on every request over Jobs.
type Snapshot struct {
	Company  company.Company `json:"company"`
	Jobs     []job.Job       `json:"jobs"`
	CachedAt time.Time       `json:"cached_at"`
}

// FindJob returns the job with id
func (s *Snapshot) FindJob(id kernel.JobID) (*job.Job, bool) {
	for i := range s.Jobs {
		if s.Jobs[i].ID == id {
			return &s.Jobs[i], true
		}
	}
	return nil, false
}

// PublicCompany is the branding a visitor sees
type PublicCompany struct {
	ID              kernel.CompanyID `json:"id"`
	Slug            string           `json:"slug"`
	Name            string           `json:"name"`
	Tagline         string           `json:"tagline,omitempty"`
	Description     string           `json:"description,omitempty"`
	LogoURL         string           `json:"logo_url,omitempty"`
	BannerURL       string           `json:"banner_url,omitempty"`
	CultureVideoURL string           `json:"culture_video_url,omitempty"`
	PrimaryColor    kernel.HexColor  `json:"primary_color"`
	SecondaryColor  kernel.HexColor  `json:"secondary_color"`
}

// Meta carries the document title and description of the page
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Page is a rendered careers page
type Page struct {
	Mode     Mode                     `json:"mode"`
	Company  PublicCompany            `json:"company"`
	Meta     Meta                     `json:"meta"`
	Sections []company.ContentSection `json:"sections"`
	Listing  job.ListingResponse      `json:"listing"`
}

// JobDetail is a single job as shown on the careers page
type JobDetail struct {
	Company PublicCompany   `json:"company"`
	Job     job.JobResponse `json:"job"`
}

// NewPage renders snap filtered by criteria
func NewPage(snap *Snapshot, criteria job.Criteria, mode Mode) *Page {
	co := &snap.Company
	return &Page{
		Mode:     mode,
		Company:  Public(co),
		Meta:     PageMeta(co, mode),
		Sections: co.SortedSections(),
		Listing:  job.Browse(snap.Jobs, criteria).ToResponse(),
	}
}

// Public strips owner data from a company
func Public(c *company.Company) PublicCompany {
	return PublicCompany{
		ID:              c.ID,
		Slug:            c.Slug,
		Name:            c.Name,
		Tagline:         c.Tagline,
		Description:     c.Description,
		LogoURL:         c.LogoURL,
		BannerURL:       c.BannerURL,
		CultureVideoURL: c.CultureVideoURL,
		PrimaryColor:    c.PrimaryColor,
		SecondaryColor:  c.SecondaryColor,
	}
}

// PageMeta builds the title and description. The description falls back
// from tagline to description to a generic invitation.
func PageMeta(c *company.Company, mode Mode) Meta {
	title := "Careers at " + c.Name
	if mode == ModeDemo {
		title = "Demo: " + title
	}

	description := strings.TrimSpace(c.Tagline)
	if description == "" {
		description = strings.TrimSpace(c.Description)
	}
	if description == "" {
		description = "Join the team at " + c.Name
	}

	return Meta{Title: title, Description: description}
}

// NormalizeSlug lowercases and trims a slug taken from a URL
func NormalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}
