package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewJob_Defaults(t *testing.T) {
	j := NewJob("c-1", Draft{Title: "Designer", Location: "Remote"})

	assert.NotEmpty(t, j.ID)
	assert.Equal(t, DefaultJobType, j.JobType)
	assert.Equal(t, DefaultCurrency, j.SalaryCurrency)
	assert.NotNil(t, j.Responsibilities)
	assert.True(t, j.BelongsTo("c-1"))
}

func TestCreateJobRequest_DefaultsToActive(t *testing.T) {
	d := CreateJobRequest{Title: "Designer", Location: "Remote"}.ToDraft()
	assert.True(t, d.IsActive)
	assert.Equal(t, DefaultJobType, d.JobType)

	inactive := false
	d = CreateJobRequest{Title: "Designer", Location: "Remote", IsActive: &inactive}.ToDraft()
	assert.False(t, d.IsActive)
}

func TestJob_ActivateDeactivate(t *testing.T) {
	j := NewJob("c-1", validDraft())

	j.Deactivate()
	assert.False(t, j.IsActive)

	j.Activate()
	assert.True(t, j.IsActive)
}

func TestJob_SalaryLabel(t *testing.T) {
	tests := []struct {
		name     string
		min, max *int
		want     string
	}{
		{"range", intPtr(100000), intPtr(150000), "USD 100,000 - 150,000"},
		{"min only", intPtr(900), nil, "From USD 900"},
		{"max only", nil, intPtr(1234567), "Up to USD 1,234,567"},
		{"none", nil, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := &Job{SalaryCurrency: "USD", SalaryMin: tt.min, SalaryMax: tt.max}
			assert.Equal(t, tt.want, j.SalaryLabel())
			assert.Equal(t, tt.min != nil || tt.max != nil, j.HasSalary())
		})
	}
}

func TestJob_DraftIsDetached(t *testing.T) {
	j := NewJob("c-1", validDraft())

	d := j.Draft()
	d.Responsibilities[0] = "changed"
	*d.SalaryMin = 1

	assert.Equal(t, "x", j.Responsibilities[0])
	assert.Equal(t, 100, *j.SalaryMin)
}
