package company

import (
	"regexp"
	"strings"
)

const maxSlugLength = 63

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	notSlugChar   = regexp.MustCompile(`[^a-z0-9-]`)
	slugPattern   = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]*[a-z0-9])?$`)
)

// Routes that live next to /:slug/careers
var reservedSlugs = map[string]struct{}{
	"api":       {},
	"auth":      {},
	"dashboard": {},
	"demo":      {},
	"health":    {},
}

// Slugify derives a page slug from a company name: lowercase, whitespace
// runs become "-", anything outside [a-z0-9-] is dropped.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = notSlugChar.ReplaceAllString(s, "")
	return strings.Trim(s, "-")
}

// ValidateSlug checks that slug is usable in a page URL
func ValidateSlug(slug string) error {
	if len(slug) > maxSlugLength || !slugPattern.MatchString(slug) {
		return ErrInvalidSlug().WithDetail("slug", slug)
	}
	if _, ok := reservedSlugs[slug]; ok {
		return ErrInvalidSlug().WithDetail("slug", slug).WithDetail("reason", "reserved")
	}
	return nil
}
