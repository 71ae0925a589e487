package sqlpatch

import (
	"errors"
	"testing"

	"github.com/Abraxas-365/careers/pkg/changeset"
	"github.com/Abraxas-365/careers/pkg/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	allowed := NewColumns("title", "salary_min", "location")

	stmt, err := Build("jobs", allowed, "job-1", changeset.ChangeSet{"title": "A", "salary_min": 120}, nil)

	require.NoError(t, err)
	assert.Equal(t, "UPDATE jobs SET salary_min = $1, title = $2, updated_at = $3 WHERE id = $4", stmt.Query)
	require.Len(t, stmt.Args, 4)
	assert.Equal(t, 120, stmt.Args[0])
	assert.Equal(t, "A", stmt.Args[1])
	assert.Equal(t, "job-1", stmt.Args[3])
}

func TestBuild_Convert(t *testing.T) {
	allowed := NewColumns("tags")

	stmt, err := Build("jobs", allowed, "job-1", changeset.ChangeSet{"tags": []string{"a"}}, func(col string, v any) (any, error) {
		return col + ":converted", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "tags:converted", stmt.Args[0])

	_, err = Build("jobs", allowed, "job-1", changeset.ChangeSet{"tags": 1}, func(string, any) (any, error) {
		return nil, errors.New("boom")
	})
	assert.Error(t, err)
}

func TestBuild_Rejects(t *testing.T) {
	allowed := NewColumns("title")

	_, err := Build("jobs", allowed, "job-1", changeset.ChangeSet{"id": "other"}, nil)
	assert.True(t, errx.IsType(err, errx.TypeValidation))

	_, err = Build("jobs", allowed, "job-1", changeset.ChangeSet{}, nil)
	assert.Error(t, err)
}
