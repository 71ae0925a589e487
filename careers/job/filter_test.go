package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleJobs() []Job {
	return []Job{
		{ID: "1", Title: "Backend Engineer", Department: "Platform", Location: "Austin", JobType: "Full-time", IsActive: true},
		{ID: "2", Title: "Designer", Location: "Remote", JobType: "Contract", IsActive: false},
		{ID: "3", Title: "Frontend Engineer", Department: "Web", Location: "Remote", JobType: "Full-time", IsActive: true},
		{ID: "4", Title: "Data Analyst", Department: "Engineering", Location: "Austin", JobType: "Part-time", IsActive: true},
		{ID: "5", Title: "Recruiter", Location: " ", JobType: "", IsActive: true},
	}
}

func ids(jobs []Job) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID.String())
	}
	return out
}

func TestDeriveFacets(t *testing.T) {
	facets := DeriveFacets(sampleJobs())

	assert.Equal(t, []string{"Austin", "Remote"}, facets.Locations)
	assert.Equal(t, []string{"Contract", "Full-time", "Part-time"}, facets.JobTypes)

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, facets, DeriveFacets(sampleJobs()))
	})

	t.Run("byte order", func(t *testing.T) {
		jobs := []Job{{Location: "berlin"}, {Location: "Zurich"}, {Location: "Austin"}}
		assert.Equal(t, []string{"Austin", "Zurich", "berlin"}, DeriveFacets(jobs).Locations)
	})

	t.Run("empty collection", func(t *testing.T) {
		f := DeriveFacets(nil)
		assert.Empty(t, f.Locations)
		assert.Empty(t, f.JobTypes)
	})

	t.Run("inactive jobs still contribute", func(t *testing.T) {
		assert.Contains(t, facets.JobTypes, "Contract")
	})
}

func TestFilter_ScenarioA_InactiveExcluded(t *testing.T) {
	jobs := []Job{
		{ID: "1", Title: "Backend Engineer", Location: "Austin", JobType: "Full-time", IsActive: true},
		{ID: "2", Title: "Designer", Location: "Remote", JobType: "Contract", IsActive: false},
	}

	got := Filter(jobs, NoFilter())

	assert.Equal(t, []string{"1"}, ids(got))
}

func TestFilter_ScenarioB_TextMatchButInactive(t *testing.T) {
	jobs := []Job{
		{ID: "1", Title: "Backend Engineer", Location: "Austin", JobType: "Full-time", IsActive: true},
		{ID: "2", Title: "Designer", Location: "Remote", JobType: "Contract", IsActive: false},
	}

	got := Filter(jobs, Criteria{SearchText: "design", Location: AllValue, JobType: AllValue})

	assert.Empty(t, got)
}

func TestFilter_NoOpCriteriaKeepsActiveSubsetInOrder(t *testing.T) {
	jobs := sampleJobs()

	var active []Job
	for _, j := range jobs {
		if j.IsActive {
			active = append(active, j)
		}
	}

	assert.Equal(t, active, Filter(jobs, NoFilter()))
}

func TestFilter_Predicates(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{"title or department case-insensitive", Criteria{SearchText: "ENGINEER", Location: AllValue, JobType: AllValue}, []string{"1", "3", "4"}},
		{"department match", Criteria{SearchText: "engineering", Location: AllValue, JobType: AllValue}, []string{"4"}},
		{"location", Criteria{Location: "Austin", JobType: AllValue}, []string{"1", "4"}},
		{"job type", Criteria{Location: AllValue, JobType: "Full-time"}, []string{"1", "3"}},
		{"conjunction", Criteria{SearchText: "engineer", Location: "Remote", JobType: "Full-time"}, []string{"3"}},
		{"unknown facet value", Criteria{Location: "Mars", JobType: AllValue}, []string{}},
		{"facet match is exact", Criteria{Location: "austin", JobType: AllValue}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(sampleJobs(), tt.criteria)))
		})
	}
}

func TestFilter_ConjunctionProperty(t *testing.T) {
	jobs := sampleJobs()
	criteria := []Criteria{
		NoFilter(),
		{SearchText: "e", Location: "Austin", JobType: AllValue},
		{SearchText: "", Location: "Remote", JobType: "Contract"},
		{SearchText: "web", Location: AllValue, JobType: AllValue},
	}

	for _, c := range criteria {
		got := Filter(jobs, c)
		kept := map[string]bool{}
		for i := range got {
			require.True(t, c.Matches(&got[i]))
			kept[got[i].ID.String()] = true
		}
		for i := range jobs {
			if c.Matches(&jobs[i]) {
				assert.True(t, kept[jobs[i].ID.String()], "job %s should be kept", jobs[i].ID)
			}
		}
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	jobs := sampleJobs()
	before := sampleJobs()

	_ = Filter(jobs, Criteria{SearchText: "engineer", Location: "Remote", JobType: AllValue})

	assert.Equal(t, before, jobs)
}

func TestCriteria(t *testing.T) {
	c := Criteria{SearchText: "  ops "}.Normalize()

	assert.Equal(t, Criteria{SearchText: "ops", Location: AllValue, JobType: AllValue}, c)
	assert.True(t, c.HasActiveFilters())
	assert.False(t, NoFilter().HasActiveFilters())
	assert.True(t, Criteria{Location: "Austin", JobType: AllValue}.HasActiveFilters())
}

func TestBrowse(t *testing.T) {
	listing := Browse(sampleJobs(), Criteria{Location: "Austin"})

	assert.Equal(t, []string{"1", "4"}, ids(listing.Jobs))
	assert.Equal(t, 2, listing.FilteredCount)
	assert.Equal(t, 5, listing.TotalCount)
	assert.True(t, listing.HasActiveFilters)
	assert.Equal(t, []string{"Austin", "Remote"}, listing.Facets.Locations)
	assert.Equal(t, AllValue, listing.Criteria.JobType)
}
