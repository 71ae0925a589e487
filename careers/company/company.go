package company

import (
	"sort"
	"time"

	"github.com/Abraxas-365/careers/pkg/kernel"
	"github.com/google/uuid"
)

const (
	DefaultPrimaryColor   kernel.HexColor = "#0f172a"
	DefaultSecondaryColor kernel.HexColor = "#6366f1"
)

// Company owns a branded public careers page
type Company struct {
	ID              kernel.CompanyID `json:"id"`
	UserID          kernel.UserID    `json:"user_id"`
	Slug            string           `json:"slug"`
	Name            string           `json:"name"`
	Tagline         string           `json:"tagline,omitempty"`
	Description     string           `json:"description,omitempty"`
	LogoURL         string           `json:"logo_url,omitempty"`
	BannerURL       string           `json:"banner_url,omitempty"`
	CultureVideoURL string           `json:"culture_video_url,omitempty"`
	PrimaryColor    kernel.HexColor  `json:"primary_color"`
	SecondaryColor  kernel.HexColor  `json:"secondary_color"`
	ContentSections []ContentSection `json:"content_sections"`
	IsPublished     bool             `json:"is_published"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// NewCompany creates an unpublished company with default colors and the
// starter About and Culture sections
func NewCompany(userID kernel.UserID, name, slug, tagline, description string) *Company {
	now := time.Now()
	return &Company{
		ID:              kernel.NewCompanyID(uuid.NewString()),
		UserID:          userID,
		Slug:            slug,
		Name:            name,
		Tagline:         tagline,
		Description:     description,
		PrimaryColor:    DefaultPrimaryColor,
		SecondaryColor:  DefaultSecondaryColor,
		ContentSections: DefaultSections(name, description),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsOwnedBy checks if userID manages the company
func (c *Company) IsOwnedBy(userID kernel.UserID) bool {
	return !userID.IsEmpty() && c.UserID == userID
}

// Publish makes the careers page public
func (c *Company) Publish() {
	c.IsPublished = true
	c.UpdatedAt = time.Now()
}

// Unpublish hides the careers page
func (c *Company) Unpublish() {
	c.IsPublished = false
	c.UpdatedAt = time.Now()
}

// SortedSections returns the content sections ordered by Order. Sections
// with the same order keep their stored position.
func (c *Company) SortedSections() []ContentSection {
	out := append([]ContentSection{}, c.ContentSections...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

// Branding returns the editable branding attributes
func (c *Company) Branding() Branding {
	return Branding{
		Name:            c.Name,
		Tagline:         c.Tagline,
		Description:     c.Description,
		LogoURL:         c.LogoURL,
		BannerURL:       c.BannerURL,
		CultureVideoURL: c.CultureVideoURL,
		PrimaryColor:    c.PrimaryColor,
		SecondaryColor:  c.SecondaryColor,
		IsPublished:     c.IsPublished,
	}
}
