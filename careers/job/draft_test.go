package job

import (
	"encoding/json"
	"testing"

	"github.com/Abraxas-365/careers/pkg/errx"
	"github.com/Abraxas-365/careers/pkg/sanitize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func validDraft() Draft {
	d := NewDraft()
	d.Title = "Backend Engineer"
	d.Location = "Austin"
	d.Responsibilities = []string{"x", "y"}
	d.SalaryMin = intPtr(100)
	return d
}

func TestDiff_IdenticalDraftsAreEmpty(t *testing.T) {
	a := validDraft()
	b := validDraft()

	changes := Diff(a, b)

	assert.True(t, changes.IsEmpty())
	assert.Empty(t, changes.Columns())
}

func TestDiff_SalaryChange(t *testing.T) {
	original := validDraft()
	current := validDraft()
	current.SalaryMin = intPtr(120)

	cols := Diff(original, current).Columns()

	require.Equal(t, []string{"salary_min"}, cols.Keys())
	assert.Equal(t, 120, *cols["salary_min"].(*int))
}

func TestDiff_SameListNewInstance(t *testing.T) {
	original := validDraft()
	current := validDraft()
	current.Responsibilities = append([]string{}, "x", "y")

	assert.True(t, Diff(original, current).IsEmpty())
}

func TestDiff_Minimality(t *testing.T) {
	original := validDraft()
	current := validDraft()
	current.Title = "Staff Engineer"
	current.Benefits = []string{"Remote"}
	current.SalaryMin = nil

	cols := Diff(original, current).Columns()

	assert.Equal(t, []string{"benefits", "salary_min", "title"}, cols.Keys())
	assert.Nil(t, cols["salary_min"].(*int))
}

func TestChanges_ApplyTo(t *testing.T) {
	j := NewJob("c-1", validDraft())
	current := j.Draft()
	current.Location = "Remote"
	current.IsActive = false

	Diff(j.Draft(), current).ApplyTo(j)

	assert.Equal(t, "Remote", j.Location)
	assert.False(t, j.IsActive)
	assert.Equal(t, "Backend Engineer", j.Title)
}

func TestDraft_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validDraft().Validate())
	})

	t.Run("short title", func(t *testing.T) {
		d := validDraft()
		d.Title = "A"

		err := d.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidDraft())

		e, ok := errx.As(err)
		require.True(t, ok)
		assert.Contains(t, e.Details["fields"], "title")
	})

	t.Run("bad application url", func(t *testing.T) {
		d := validDraft()
		d.ApplicationURL = "not a url"
		assert.ErrorIs(t, d.Validate(), ErrInvalidDraft())
	})

	t.Run("empty list item", func(t *testing.T) {
		d := validDraft()
		d.Benefits = []string{""}
		assert.ErrorIs(t, d.Validate(), ErrInvalidDraft())
	})

	t.Run("salary range", func(t *testing.T) {
		d := validDraft()
		d.SalaryMin = intPtr(200)
		d.SalaryMax = intPtr(100)
		assert.ErrorIs(t, d.Validate(), ErrInvalidSalaryRange())
	})
}

func TestDraft_Sanitize(t *testing.T) {
	d := validDraft()
	d.Title = "<b>Backend</b> Engineer"
	d.Description = `<p>Hi</p><script>alert(1)</script>`
	d.Benefits = []string{" Equity ", "<i></i>"}

	clean := d.Sanitize(sanitize.New())

	assert.Equal(t, "Backend Engineer", clean.Title)
	assert.Equal(t, "<p>Hi</p>", clean.Description)
	assert.Equal(t, []string{"Equity"}, clean.Benefits)
}

func TestDecodeDraft(t *testing.T) {
	var values map[string]any
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Designer","location":"Remote","job_type":"Contract","salary_currency":"EUR","salary_max":90000,"is_active":true}`), &values))

	d, err := DecodeDraft(values)
	require.NoError(t, err)
	assert.Equal(t, "Designer", d.Title)
	require.NotNil(t, d.SalaryMax)
	assert.Equal(t, 90000, *d.SalaryMax)

	t.Run("unknown key", func(t *testing.T) {
		_, err := DecodeDraft(map[string]any{"title": "x", "company_id": "other"})
		assert.ErrorIs(t, err, ErrUnknownField())
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := DecodeDraft(map[string]any{"title": 5})
		assert.ErrorIs(t, err, ErrInvalidDraft())
	})
}

func TestDraft_ValuesRoundTrip(t *testing.T) {
	d := validDraft()

	back, err := DecodeDraft(d.Values())
	require.NoError(t, err)

	assert.True(t, Diff(d, back).IsEmpty())
}
