package company

import (
	"strings"

	"github.com/Abraxas-365/careers/pkg/changeset"
	"github.com/Abraxas-365/careers/pkg/sanitize"
	"github.com/google/uuid"
)

type SectionType string

const (
	SectionAbout    SectionType = "about"
	SectionCulture  SectionType = "culture"
	SectionBenefits SectionType = "benefits"
	SectionValues   SectionType = "values"
	SectionTeam     SectionType = "team"
	SectionCustom   SectionType = "custom"
)

// IsValid checks if the section type is known
func (t SectionType) IsValid() bool {
	switch t {
	case SectionAbout, SectionCulture, SectionBenefits, SectionValues, SectionTeam, SectionCustom:
		return true
	}
	return false
}

// ContentSection is a block of rich text on the careers page
type ContentSection struct {
	ID      string      `json:"id"`
	Type    SectionType `json:"type"`
	Title   string      `json:"title"`
	Content string      `json:"content"`
	Order   int         `json:"order"`
}

// NewSection creates a section with a fresh id
func NewSection(t SectionType, title, content string, order int) ContentSection {
	return ContentSection{
		ID:      "section-" + uuid.NewString(),
		Type:    t,
		Title:   title,
		Content: content,
		Order:   order,
	}
}

// DefaultSections are the starter sections of a new company page
func DefaultSections(name, description string) []ContentSection {
	about := description
	if strings.TrimSpace(about) == "" {
		about = "We are building something great."
	}
	return []ContentSection{
		{ID: "about", Type: SectionAbout, Title: "About Us", Content: about, Order: 0},
		{ID: "culture", Type: SectionCulture, Title: "Life at " + name, Content: "Join our team and make an impact.", Order: 1},
	}
}

// ValidateSections checks titles, contents, types and id uniqueness
func ValidateSections(sections []ContentSection) error {
	seen := make(map[string]struct{}, len(sections))
	for i, s := range sections {
		switch {
		case strings.TrimSpace(s.ID) == "":
			return ErrInvalidSections().WithDetail("index", i).WithDetail("field", "id")
		case !s.Type.IsValid():
			return ErrInvalidSections().WithDetail("index", i).WithDetail("field", "type")
		case strings.TrimSpace(s.Title) == "":
			return ErrInvalidSections().WithDetail("index", i).WithDetail("field", "title")
		case strings.TrimSpace(s.Content) == "":
			return ErrInvalidSections().WithDetail("index", i).WithDetail("field", "content")
		}
		if _, dup := seen[s.ID]; dup {
			return ErrInvalidSections().WithDetail("index", i).WithDetail("duplicate_id", s.ID)
		}
		seen[s.ID] = struct{}{}
	}
	return nil
}

// SanitizeSections cleans titles as plain text and contents as rich text
func SanitizeSections(s *sanitize.Sanitizer, sections []ContentSection) []ContentSection {
	out := make([]ContentSection, 0, len(sections))
	for _, sec := range sections {
		sec.Title = s.Plain(sec.Title)
		sec.Content = s.Rich(sec.Content)
		out = append(out, sec)
	}
	return out
}

// DiffSections reports content_sections when any section differs
// structurally. Reordering counts as a change.
func DiffSections(original, current []ContentSection) changeset.ChangeSet {
	return changeset.Diff(
		map[string]any{"content_sections": original},
		map[string]any{"content_sections": current},
	)
}
