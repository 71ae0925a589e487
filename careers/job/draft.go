package job

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/Abraxas-365/careers/pkg/changeset"
	"github.com/Abraxas-365/careers/pkg/errx"
	"github.com/Abraxas-365/careers/pkg/sanitize"
	"github.com/Abraxas-365/careers/pkg/validatex"
)

// Draft is the editable attribute set of a job as submitted by the job form.
// JSON names double as column names.
type Draft struct {
	Title            string   `json:"title" validate:"required,min=2,max=200"`
	Department       string   `json:"department" validate:"max=100"`
	Location         string   `json:"location" validate:"required,min=2,max=200"`
	JobType          string   `json:"job_type" validate:"required,max=50"`
	ExperienceLevel  string   `json:"experience_level" validate:"max=50"`
	LocationType     string   `json:"location_type" validate:"max=50"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities" validate:"dive,required"`
	Qualifications   []string `json:"qualifications" validate:"dive,required"`
	Benefits         []string `json:"benefits" validate:"dive,required"`
	SalaryMin        *int     `json:"salary_min" validate:"omitempty,gte=0"`
	SalaryMax        *int     `json:"salary_max" validate:"omitempty,gte=0"`
	SalaryCurrency   string   `json:"salary_currency" validate:"required,len=3"`
	ApplicationURL   string   `json:"application_url" validate:"omitempty,url"`
	IsActive         bool     `json:"is_active"`
}

// NewDraft returns the values of an empty job form
func NewDraft() Draft {
	return Draft{
		JobType:          DefaultJobType,
		SalaryCurrency:   DefaultCurrency,
		Responsibilities: []string{},
		Qualifications:   []string{},
		Benefits:         []string{},
		IsActive:         true,
	}
}

// Validate checks field rules and the salary range
func (d Draft) Validate() error {
	if err := validatex.Struct(d); err != nil {
		e := ErrInvalidDraft().WithCause(err)
		if ve, ok := errx.As(err); ok {
			e = e.WithDetails(ve.Details)
		}
		return e
	}
	if d.SalaryMin != nil && d.SalaryMax != nil && *d.SalaryMin > *d.SalaryMax {
		return ErrInvalidSalaryRange().
			WithDetail("salary_min", *d.SalaryMin).
			WithDetail("salary_max", *d.SalaryMax)
	}
	return nil
}

// Sanitize strips markup from plain fields and unsafe markup from the
// description
func (d Draft) Sanitize(s *sanitize.Sanitizer) Draft {
	d.Title = s.Plain(d.Title)
	d.Department = s.Plain(d.Department)
	d.Location = s.Plain(d.Location)
	d.JobType = s.Plain(d.JobType)
	d.ExperienceLevel = s.Plain(d.ExperienceLevel)
	d.LocationType = s.Plain(d.LocationType)
	d.Description = s.Rich(d.Description)
	d.Responsibilities = s.PlainList(d.Responsibilities)
	d.Qualifications = s.PlainList(d.Qualifications)
	d.Benefits = s.PlainList(d.Benefits)
	d.SalaryCurrency = s.Plain(d.SalaryCurrency)
	d.ApplicationURL = s.Plain(d.ApplicationURL)
	return d
}

// Values renders the draft as JSON-shaped form values
func (d Draft) Values() map[string]any {
	v := map[string]any{
		"title":            d.Title,
		"department":       d.Department,
		"location":         d.Location,
		"job_type":         d.JobType,
		"experience_level": d.ExperienceLevel,
		"location_type":    d.LocationType,
		"description":      d.Description,
		"responsibilities": cloneStrings(d.Responsibilities),
		"qualifications":   cloneStrings(d.Qualifications),
		"benefits":         cloneStrings(d.Benefits),
		"salary_min":       nil,
		"salary_max":       nil,
		"salary_currency":  d.SalaryCurrency,
		"application_url":  d.ApplicationURL,
		"is_active":        d.IsActive,
	}
	if d.SalaryMin != nil {
		v["salary_min"] = *d.SalaryMin
	}
	if d.SalaryMax != nil {
		v["salary_max"] = *d.SalaryMax
	}
	return v
}

// DecodeDraft reads form values back into a draft. Keys that are not job
// attributes are rejected.
func DecodeDraft(values map[string]any) (Draft, error) {
	known := NewDraft().Values()
	for k := range values {
		if _, ok := known[k]; !ok {
			return Draft{}, ErrUnknownField().WithDetail("field", k)
		}
	}

	raw, err := json.Marshal(values)
	if err != nil {
		return Draft{}, ErrInvalidDraft().WithCause(err)
	}

	var d Draft
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return Draft{}, ErrInvalidDraft().WithCause(err).WithDetail("decode_error", err.Error())
	}
	return d, nil
}

func (d Draft) withDefaults() Draft {
	if d.JobType == "" {
		d.JobType = DefaultJobType
	}
	if d.SalaryCurrency == "" {
		d.SalaryCurrency = DefaultCurrency
	}
	return d
}

func (d Draft) applyTo(j *Job) {
	j.Title = d.Title
	j.Department = d.Department
	j.Location = d.Location
	j.JobType = d.JobType
	j.ExperienceLevel = d.ExperienceLevel
	j.LocationType = d.LocationType
	j.Description = d.Description
	j.Responsibilities = cloneStrings(d.Responsibilities)
	j.Qualifications = cloneStrings(d.Qualifications)
	j.Benefits = cloneStrings(d.Benefits)
	j.SalaryMin = cloneInt(d.SalaryMin)
	j.SalaryMax = cloneInt(d.SalaryMax)
	j.SalaryCurrency = d.SalaryCurrency
	j.ApplicationURL = d.ApplicationURL
	j.IsActive = d.IsActive
}

// ============================================================================
// Change Set
// ============================================================================

// Changes holds one optional slot per job attribute. A nil slot means the
// attribute is unchanged.
type Changes struct {
	Title            *string
	Department       *string
	Location         *string
	JobType          *string
	ExperienceLevel  *string
	LocationType     *string
	Description      *string
	Responsibilities *[]string
	Qualifications   *[]string
	Benefits         *[]string
	SalaryMin        **int
	SalaryMax        **int
	SalaryCurrency   *string
	ApplicationURL   *string
	IsActive         *bool
}

// Diff compares two drafts field by field
func Diff(original, current Draft) Changes {
	return Changes{
		Title:            changeset.Field(original.Title, current.Title),
		Department:       changeset.Field(original.Department, current.Department),
		Location:         changeset.Field(original.Location, current.Location),
		JobType:          changeset.Field(original.JobType, current.JobType),
		ExperienceLevel:  changeset.Field(original.ExperienceLevel, current.ExperienceLevel),
		LocationType:     changeset.Field(original.LocationType, current.LocationType),
		Description:      changeset.Field(original.Description, current.Description),
		Responsibilities: changeset.Slice(original.Responsibilities, current.Responsibilities),
		Qualifications:   changeset.Slice(original.Qualifications, current.Qualifications),
		Benefits:         changeset.Slice(original.Benefits, current.Benefits),
		SalaryMin:        changeset.Ptr(original.SalaryMin, current.SalaryMin),
		SalaryMax:        changeset.Ptr(original.SalaryMax, current.SalaryMax),
		SalaryCurrency:   changeset.Field(original.SalaryCurrency, current.SalaryCurrency),
		ApplicationURL:   changeset.Field(original.ApplicationURL, current.ApplicationURL),
		IsActive:         changeset.Field(original.IsActive, current.IsActive),
	}
}

// IsEmpty reports whether no attribute changed
func (c Changes) IsEmpty() bool {
	return c == Changes{}
}

// Columns flattens the changes into a column → value payload
func (c Changes) Columns() changeset.ChangeSet {
	cs := changeset.ChangeSet{}
	changeset.Collect(cs, "title", c.Title)
	changeset.Collect(cs, "department", c.Department)
	changeset.Collect(cs, "location", c.Location)
	changeset.Collect(cs, "job_type", c.JobType)
	changeset.Collect(cs, "experience_level", c.ExperienceLevel)
	changeset.Collect(cs, "location_type", c.LocationType)
	changeset.Collect(cs, "description", c.Description)
	changeset.Collect(cs, "responsibilities", c.Responsibilities)
	changeset.Collect(cs, "qualifications", c.Qualifications)
	changeset.Collect(cs, "benefits", c.Benefits)
	changeset.Collect(cs, "salary_min", c.SalaryMin)
	changeset.Collect(cs, "salary_max", c.SalaryMax)
	changeset.Collect(cs, "salary_currency", c.SalaryCurrency)
	changeset.Collect(cs, "application_url", c.ApplicationURL)
	changeset.Collect(cs, "is_active", c.IsActive)
	return cs
}

// ApplyTo writes the changed attributes onto j
func (c Changes) ApplyTo(j *Job) {
	setIf(&j.Title, c.Title)
	setIf(&j.Department, c.Department)
	setIf(&j.Location, c.Location)
	setIf(&j.JobType, c.JobType)
	setIf(&j.ExperienceLevel, c.ExperienceLevel)
	setIf(&j.LocationType, c.LocationType)
	setIf(&j.Description, c.Description)
	setIf(&j.Responsibilities, c.Responsibilities)
	setIf(&j.Qualifications, c.Qualifications)
	setIf(&j.Benefits, c.Benefits)
	setIf(&j.SalaryMin, c.SalaryMin)
	setIf(&j.SalaryMax, c.SalaryMax)
	setIf(&j.SalaryCurrency, c.SalaryCurrency)
	setIf(&j.ApplicationURL, c.ApplicationURL)
	setIf(&j.IsActive, c.IsActive)
	if !c.IsEmpty() {
		j.UpdatedAt = time.Now()
	}
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
