package company

import (
	"testing"

	"github.com/Abraxas-365/careers/pkg/kernel"
	"github.com/Abraxas-365/careers/pkg/sanitize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Acme Corp!  Inc":   "acme-corp-inc",
		"  Globex  ":        "globex",
		"Café Zürich":       "caf-zrich",
		"R&D Labs":          "rd-labs",
		"already-a-slug":    "already-a-slug",
		"Tabs\tand\nlines": "tabs-and-lines",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestValidateSlug(t *testing.T) {
	for _, ok := range []string{"acme", "acme-corp", "a", "a1-b2"} {
		assert.NoError(t, ValidateSlug(ok), ok)
	}
	for _, bad := range []string{"", "-acme", "acme-", "Acme", "acme corp", "dashboard", string(make([]byte, 64))} {
		assert.ErrorIs(t, ValidateSlug(bad), ErrInvalidSlug(), bad)
	}
}

func TestNewCompany_Defaults(t *testing.T) {
	c := NewCompany("user-1", "Acme", "acme", "We build", "")

	assert.Equal(t, DefaultPrimaryColor, c.PrimaryColor)
	assert.Equal(t, DefaultSecondaryColor, c.SecondaryColor)
	assert.False(t, c.IsPublished)
	require.Len(t, c.ContentSections, 2)
	assert.Equal(t, "About Us", c.ContentSections[0].Title)
	assert.Equal(t, "We are building something great.", c.ContentSections[0].Content)
	assert.Equal(t, "Life at Acme", c.ContentSections[1].Title)
	assert.True(t, c.IsOwnedBy("user-1"))
	assert.False(t, c.IsOwnedBy("user-2"))
	assert.False(t, c.IsOwnedBy(""))
}

func TestSortedSections(t *testing.T) {
	c := &Company{ContentSections: []ContentSection{
		{ID: "c", Order: 2},
		{ID: "a", Order: 0},
		{ID: "b1", Order: 1},
		{ID: "b2", Order: 1},
	}}

	var got []string
	for _, s := range c.SortedSections() {
		got = append(got, s.ID)
	}

	assert.Equal(t, []string{"a", "b1", "b2", "c"}, got)
	assert.Equal(t, "c", c.ContentSections[0].ID)
}

func TestValidateSections(t *testing.T) {
	valid := DefaultSections("Acme", "desc")
	assert.NoError(t, ValidateSections(valid))

	dup := append(DefaultSections("Acme", "desc"), ContentSection{ID: "about", Type: SectionCustom, Title: "x", Content: "y"})
	assert.ErrorIs(t, ValidateSections(dup), ErrInvalidSections())

	badType := []ContentSection{{ID: "x", Type: "video", Title: "t", Content: "c"}}
	assert.ErrorIs(t, ValidateSections(badType), ErrInvalidSections())

	noContent := []ContentSection{NewSection(SectionCustom, "Perks", " ", 0)}
	assert.ErrorIs(t, ValidateSections(noContent), ErrInvalidSections())
}

func TestDiffSections(t *testing.T) {
	original := DefaultSections("Acme", "desc")

	t.Run("identical copy", func(t *testing.T) {
		assert.True(t, DiffSections(original, DefaultSections("Acme", "desc")).IsEmpty())
	})

	t.Run("edited content", func(t *testing.T) {
		current := DefaultSections("Acme", "desc")
		current[1].Content = "Remote first."

		cs := DiffSections(original, current)
		require.True(t, cs.Has("content_sections"))
		assert.Equal(t, current, cs["content_sections"])
	})

	t.Run("reordered", func(t *testing.T) {
		current := []ContentSection{original[1], original[0]}
		assert.False(t, DiffSections(original, current).IsEmpty())
	})
}

func TestSanitizeSections(t *testing.T) {
	out := SanitizeSections(sanitize.New(), []ContentSection{
		{ID: "a", Type: SectionAbout, Title: "<h1>About</h1>", Content: `<p onclick="x()">Hi</p>`},
	})

	assert.Equal(t, "About", out[0].Title)
	assert.Equal(t, "<p>Hi</p>", out[0].Content)
}

func TestBranding(t *testing.T) {
	c := NewCompany("user-1", "Acme", "acme", "", "")
	original := c.Branding()

	t.Run("no change", func(t *testing.T) {
		assert.True(t, DiffBranding(original, c.Branding()).IsEmpty())
	})

	t.Run("changed fields only", func(t *testing.T) {
		current := c.Branding()
		current.Tagline = "Build with us"
		current.PrimaryColor = "#112233"

		changes := DiffBranding(original, current)
		assert.Equal(t, []string{"primary_color", "tagline"}, changes.Columns().Keys())
		assert.Equal(t, "#112233", changes.Columns()["primary_color"])

		changes.ApplyTo(c)
		assert.Equal(t, "Build with us", c.Tagline)
		assert.Equal(t, kernel.HexColor("#112233"), c.PrimaryColor)
	})

	t.Run("validate", func(t *testing.T) {
		b := original
		assert.NoError(t, b.Validate())

		b.PrimaryColor = "blue"
		assert.ErrorIs(t, b.Validate(), ErrInvalidColor())

		b = original
		b.LogoURL = "not a url"
		assert.ErrorIs(t, b.Validate(), ErrInvalidBranding())

		b = original
		b.Name = "A"
		assert.ErrorIs(t, b.Validate(), ErrInvalidBranding())
	})
}

func TestValidateAsset(t *testing.T) {
	ext, err := ValidateAsset(AssetLogo, "image/png", 1024)
	require.NoError(t, err)
	assert.Equal(t, ".png", ext)

	ext, err = ValidateAsset(AssetBanner, "image/jpeg; charset=binary", 1024)
	require.NoError(t, err)
	assert.Equal(t, ".jpg", ext)

	_, err = ValidateAsset("favicon", "image/png", 1024)
	assert.ErrorIs(t, err, ErrInvalidAsset())

	_, err = ValidateAsset(AssetLogo, "application/pdf", 1024)
	assert.ErrorIs(t, err, ErrInvalidAsset())

	_, err = ValidateAsset(AssetLogo, "image/png", MaxAssetSize+1)
	assert.ErrorIs(t, err, ErrInvalidAsset())

	c := &Company{ID: "c-1"}
	assert.Equal(t, "companies/c-1/logo/abc.png", AssetPath(c, AssetLogo, "abc", ".png"))
}
