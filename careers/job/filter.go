package job

import (
	"sort"
	"strings"
)

// AllValue is the facet value meaning "no constraint"
const AllValue = "all"

// Facets are the distinct filter choices present in a job collection
type Facets struct {
	Locations []string `json:"locations"`
	JobTypes  []string `json:"job_types"`
}

// DeriveFacets collects the distinct locations and job types of jobs in
// ascending byte order. Blank values are missing data, not categories, and
// are left out.
func DeriveFacets(jobs []Job) Facets {
	return Facets{
		Locations: distinct(jobs, func(j *Job) string { return j.Location }),
		JobTypes:  distinct(jobs, func(j *Job) string { return j.JobType }),
	}
}

func distinct(jobs []Job, value func(*Job) string) []string {
	seen := make(map[string]struct{}, len(jobs))
	out := make([]string, 0, len(jobs))
	for i := range jobs {
		v := value(&jobs[i])
		if strings.TrimSpace(v) == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Criteria are the visitor's filter choices
type Criteria struct {
	SearchText string `json:"search" query:"search"`
	Location   string `json:"location" query:"location"`
	JobType    string `json:"job_type" query:"job_type"`
}

// NoFilter matches every active job
func NoFilter() Criteria {
	return Criteria{Location: AllValue, JobType: AllValue}
}

// Normalize trims the search text and turns empty facet values into AllValue
func (c Criteria) Normalize() Criteria {
	c.SearchText = strings.TrimSpace(c.SearchText)
	if strings.TrimSpace(c.Location) == "" {
		c.Location = AllValue
	}
	if strings.TrimSpace(c.JobType) == "" {
		c.JobType = AllValue
	}
	return c
}

// HasActiveFilters reports whether any constraint is set
func (c Criteria) HasActiveFilters() bool {
	return c.SearchText != "" || c.Location != AllValue || c.JobType != AllValue
}

// Matches reports whether j passes every predicate: text in title or
// department, location, job type, and active flag.
func (c Criteria) Matches(j *Job) bool {
	return c.matchesText(j) &&
		(c.Location == AllValue || j.Location == c.Location) &&
		(c.JobType == AllValue || j.JobType == c.JobType) &&
		j.IsActive
}

func (c Criteria) matchesText(j *Job) bool {
	if c.SearchText == "" {
		return true
	}
	needle := strings.ToLower(c.SearchText)
	if strings.Contains(strings.ToLower(j.Title), needle) {
		return true
	}
	return j.Department != "" && strings.Contains(strings.ToLower(j.Department), needle)
}

// Filter returns the jobs matching criteria in their original order. The
// input slice is not modified.
func Filter(jobs []Job, criteria Criteria) []Job {
	out := make([]Job, 0, len(jobs))
	for i := range jobs {
		if criteria.Matches(&jobs[i]) {
			out = append(out, jobs[i])
		}
	}
	return out
}

// Listing is a filtered view over a job collection
type Listing struct {
	Jobs             []Job    `json:"jobs"`
	Facets           Facets   `json:"facets"`
	Criteria         Criteria `json:"criteria"`
	FilteredCount    int      `json:"filtered_count"`
	TotalCount       int      `json:"total_count"`
	HasActiveFilters bool     `json:"has_active_filters"`
}

// Browse filters jobs and reports the facets of the whole collection
// alongside "showing X of Y" counts
func Browse(jobs []Job, criteria Criteria) Listing {
	criteria = criteria.Normalize()
	filtered := Filter(jobs, criteria)
	return Listing{
		Jobs:             filtered,
		Facets:           DeriveFacets(jobs),
		Criteria:         criteria,
		FilteredCount:    len(filtered),
		TotalCount:       len(jobs),
		HasActiveFilters: criteria.HasActiveFilters(),
	}
}
