package company

import (
	"time"

	"github.com/Abraxas-365/careers/pkg/changeset"
	"github.com/Abraxas-365/careers/pkg/errx"
	"github.com/Abraxas-365/careers/pkg/kernel"
	"github.com/Abraxas-365/careers/pkg/sanitize"
	"github.com/Abraxas-365/careers/pkg/validatex"
)

// Branding is the editable look of a careers page as submitted by the
// branding form. JSON names double as column names.
type Branding struct {
	Name            string          `json:"name" validate:"required,min=2,max=120"`
	Tagline         string          `json:"tagline" validate:"max=200"`
	Description     string          `json:"description"`
	LogoURL         string          `json:"logo_url" validate:"omitempty,url"`
	BannerURL       string          `json:"banner_url" validate:"omitempty,url"`
	CultureVideoURL string          `json:"culture_video_url" validate:"omitempty,url"`
	PrimaryColor    kernel.HexColor `json:"primary_color" validate:"required"`
	SecondaryColor  kernel.HexColor `json:"secondary_color" validate:"required"`
	IsPublished     bool            `json:"is_published"`
}

// Validate checks field rules and color formats
func (b Branding) Validate() error {
	if err := validatex.Struct(b); err != nil {
		e := ErrInvalidBranding().WithCause(err)
		if ve, ok := errx.As(err); ok {
			e = e.WithDetails(ve.Details)
		}
		return e
	}
	if !b.PrimaryColor.IsValid() {
		return ErrInvalidColor().WithDetail("primary_color", b.PrimaryColor)
	}
	if !b.SecondaryColor.IsValid() {
		return ErrInvalidColor().WithDetail("secondary_color", b.SecondaryColor)
	}
	return nil
}

// Sanitize strips markup from plain fields
func (b Branding) Sanitize(s *sanitize.Sanitizer) Branding {
	b.Name = s.Plain(b.Name)
	b.Tagline = s.Plain(b.Tagline)
	b.Description = s.Rich(b.Description)
	b.LogoURL = s.Plain(b.LogoURL)
	b.BannerURL = s.Plain(b.BannerURL)
	b.CultureVideoURL = s.Plain(b.CultureVideoURL)
	return b
}

// BrandingChanges holds one optional slot per branding attribute
type BrandingChanges struct {
	Name            *string
	Tagline         *string
	Description     *string
	LogoURL         *string
	BannerURL       *string
	CultureVideoURL *string
	PrimaryColor    *kernel.HexColor
	SecondaryColor  *kernel.HexColor
	IsPublished     *bool
}

// DiffBranding compares two brandings field by field
func DiffBranding(original, current Branding) BrandingChanges {
	return BrandingChanges{
		Name:            changeset.Field(original.Name, current.Name),
		Tagline:         changeset.Field(original.Tagline, current.Tagline),
		Description:     changeset.Field(original.Description, current.Description),
		LogoURL:         changeset.Field(original.LogoURL, current.LogoURL),
		BannerURL:       changeset.Field(original.BannerURL, current.BannerURL),
		CultureVideoURL: changeset.Field(original.CultureVideoURL, current.CultureVideoURL),
		PrimaryColor:    changeset.Field(original.PrimaryColor, current.PrimaryColor),
		SecondaryColor:  changeset.Field(original.SecondaryColor, current.SecondaryColor),
		IsPublished:     changeset.Field(original.IsPublished, current.IsPublished),
	}
}

func (c BrandingChanges) IsEmpty() bool {
	return c == BrandingChanges{}
}

// Columns flattens the changes into a column → value payload
func (c BrandingChanges) Columns() changeset.ChangeSet {
	cs := changeset.ChangeSet{}
	changeset.Collect(cs, "name", c.Name)
	changeset.Collect(cs, "tagline", c.Tagline)
	changeset.Collect(cs, "description", c.Description)
	changeset.Collect(cs, "logo_url", c.LogoURL)
	changeset.Collect(cs, "banner_url", c.BannerURL)
	changeset.Collect(cs, "culture_video_url", c.CultureVideoURL)
	if c.PrimaryColor != nil {
		cs["primary_color"] = string(*c.PrimaryColor)
	}
	if c.SecondaryColor != nil {
		cs["secondary_color"] = string(*c.SecondaryColor)
	}
	changeset.Collect(cs, "is_published", c.IsPublished)
	return cs
}

// ApplyTo writes the changed attributes onto co
func (c BrandingChanges) ApplyTo(co *Company) {
	if c.Name != nil {
		co.Name = *c.Name
	}
	if c.Tagline != nil {
		co.Tagline = *c.Tagline
	}
	if c.Description != nil {
		co.Description = *c.Description
	}
	if c.LogoURL != nil {
		co.LogoURL = *c.LogoURL
	}
	if c.BannerURL != nil {
		co.BannerURL = *c.BannerURL
	}
	if c.CultureVideoURL != nil {
		co.CultureVideoURL = *c.CultureVideoURL
	}
	if c.PrimaryColor != nil {
		co.PrimaryColor = *c.PrimaryColor
	}
	if c.SecondaryColor != nil {
		co.SecondaryColor = *c.SecondaryColor
	}
	if c.IsPublished != nil {
		co.IsPublished = *c.IsPublished
	}
	if !c.IsEmpty() {
		co.UpdatedAt = time.Now()
	}
}
