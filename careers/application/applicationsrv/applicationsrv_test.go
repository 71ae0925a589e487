package applicationsrv

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Abraxas-365/careers/careers/application"
	"github.com/Abraxas-365/careers/careers/company"
	"github.com/Abraxas-365/careers/careers/job"
	"github.com/Abraxas-365/careers/pkg/changeset"
	"github.com/Abraxas-365/careers/pkg/fsx/fsxmem"
	"github.com/Abraxas-365/careers/pkg/kernel"
	"github.com/Abraxas-365/careers/pkg/sanitize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Fakes
// ============================================================================

type fakeApplicationRepo struct {
	apps       map[kernel.ApplicationID]*application.Application
	patches    []changeset.ChangeSet
	failCreate bool
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: map[kernel.ApplicationID]*application.Application{}}
}

func (r *fakeApplicationRepo) Create(_ context.Context, a *application.Application) error {
	if r.failCreate {
		return errors.New("db down")
	}
	cp := *a
	r.apps[a.ID] = &cp
	return nil
}

func (r *fakeApplicationRepo) GetByID(_ context.Context, id kernel.ApplicationID) (*application.Application, error) {
	a, ok := r.apps[id]
	if !ok {
		return nil, application.ErrApplicationNotFound()
	}
	cp := *a
	return &cp, nil
}

func (r *fakeApplicationRepo) ExistsByJobAndEmail(_ context.Context, jobID kernel.JobID, email kernel.Email) (bool, error) {
	for _, a := range r.apps {
		if a.JobID == jobID && a.CandidateEmail == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) ListByJob(_ context.Context, jobID kernel.JobID, opts application.ListOptions) (*kernel.Paginated[application.Application], error) {
	var out []application.Application
	for _, a := range r.apps {
		if a.JobID == jobID && (opts.Status == "" || a.Status == opts.Status) {
			out = append(out, *a)
		}
	}
	return kernel.NewPaginated(out, opts.Pagination, len(out)), nil
}

func (r *fakeApplicationRepo) Patch(_ context.Context, id kernel.ApplicationID, cs changeset.ChangeSet) error {
	r.patches = append(r.patches, cs)
	return nil
}

type fakeJobRepo struct {
	job.Repository
	jobs map[kernel.JobID]*job.Job
}

func (r *fakeJobRepo) GetByID(_ context.Context, id kernel.JobID) (*job.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, job.ErrJobNotFound()
	}
	return j, nil
}

type fakeCompanyRepo struct {
	company.Repository
	co *company.Company
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id kernel.CompanyID) (*company.Company, error) {
	if r.co.ID != id {
		return nil, company.ErrCompanyNotFound()
	}
	return r.co, nil
}

type fakeRecorder struct{ clicks int }

func (r *fakeRecorder) RecordPageView(context.Context, kernel.CompanyID, string) error { return nil }
func (r *fakeRecorder) RecordJobView(context.Context, kernel.CompanyID, kernel.JobID) error {
	return nil
}
func (r *fakeRecorder) RecordApplicationClick(context.Context, kernel.CompanyID, kernel.JobID) error {
	r.clicks++
	return nil
}

type fixture struct {
	svc      *ApplicationService
	apps     *fakeApplicationRepo
	files    *fsxmem.MemFileSystem
	recorder *fakeRecorder
	co       *company.Company
	open     *job.Job
	closed   *job.Job
}

func newFixture() *fixture {
	co := company.NewCompany("owner", "Acme", "acme", "", "")
	co.Publish()

	open := &job.Job{ID: "open", CompanyID: co.ID, Title: "Engineer", IsActive: true}
	closed := &job.Job{ID: "closed", CompanyID: co.ID, Title: "Old", IsActive: false}

	f := &fixture{
		apps:     newFakeApplicationRepo(),
		files:    fsxmem.New("https://cdn.test"),
		recorder: &fakeRecorder{},
		co:       co,
		open:     open,
		closed:   closed,
	}
	f.svc = NewApplicationService(
		f.apps,
		&fakeJobRepo{jobs: map[kernel.JobID]*job.Job{open.ID: open, closed.ID: closed}},
		&fakeCompanyRepo{co: co},
		f.files,
		f.recorder,
		sanitize.New(),
	)
	return f
}

func validRequest() application.ApplyRequest {
	return application.ApplyRequest{
		CandidateName:  "Ada Lovelace",
		CandidateEmail: "ada@example.com",
		CoverLetter:    "<b>Hello</b>",
	}
}

func pdf(body string) *application.Resume {
	return &application.Resume{ContentType: "application/pdf", Size: int64(len(body)), Body: strings.NewReader(body)}
}

// ============================================================================
// Tests
// ============================================================================

func TestApply(t *testing.T) {
	f := newFixture()

	app, err := f.svc.Apply(context.Background(), "acme", "open", validRequest(), pdf("%PDF-1.7"))
	require.NoError(t, err)

	assert.Equal(t, application.StatusNew, app.Status)
	assert.Equal(t, f.co.ID, app.CompanyID)
	assert.Equal(t, "Hello", app.CoverLetter)
	assert.Equal(t, "https://cdn.test/"+application.ResumePath(app, ".pdf"), app.ResumeURL)
	assert.Equal(t, []string{application.ResumePath(app, ".pdf")}, f.files.Paths())
	assert.Equal(t, 1, f.recorder.clicks)
	assert.Contains(t, f.apps.apps, app.ID)
}

func TestApply_WithoutResume(t *testing.T) {
	f := newFixture()

	app, err := f.svc.Apply(context.Background(), "acme", "open", validRequest(), nil)
	require.NoError(t, err)
	assert.Empty(t, app.ResumeURL)
	assert.Empty(t, f.files.Paths())
}

func TestApply_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid form", func(t *testing.T) {
		f := newFixture()
		req := validRequest()
		req.CandidateEmail = "not-an-email"

		_, err := f.svc.Apply(ctx, "acme", "open", req, nil)
		assert.Error(t, err)
		assert.Empty(t, f.apps.apps)
	})

	t.Run("inactive job", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.Apply(ctx, "acme", "closed", validRequest(), nil)
		assert.ErrorIs(t, err, application.ErrJobNotOpen())
	})

	t.Run("wrong slug", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.Apply(ctx, "other", "open", validRequest(), nil)
		assert.ErrorIs(t, err, job.ErrJobNotFound())
	})

	t.Run("unpublished company", func(t *testing.T) {
		f := newFixture()
		f.co.Unpublish()
		_, err := f.svc.Apply(ctx, "acme", "open", validRequest(), nil)
		assert.ErrorIs(t, err, company.ErrNotPublished())
	})

	t.Run("duplicate", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.Apply(ctx, "acme", "open", validRequest(), nil)
		require.NoError(t, err)

		req := validRequest()
		req.CandidateEmail = "ADA@example.com"
		_, err = f.svc.Apply(ctx, "acme", "open", req, nil)
		assert.ErrorIs(t, err, application.ErrAlreadyApplied())
	})

	t.Run("bad resume type", func(t *testing.T) {
		f := newFixture()
		resume := &application.Resume{ContentType: "image/png", Size: 10, Body: strings.NewReader("x")}
		_, err := f.svc.Apply(ctx, "acme", "open", validRequest(), resume)
		assert.ErrorIs(t, err, application.ErrInvalidFileType())
		assert.Empty(t, f.files.Paths())
	})

	t.Run("create failure removes resume", func(t *testing.T) {
		f := newFixture()
		f.apps.failCreate = true
		_, err := f.svc.Apply(ctx, "acme", "open", validRequest(), pdf("%PDF"))
		assert.Error(t, err)
		assert.Empty(t, f.files.Paths())
		assert.Zero(t, f.recorder.clicks)
	})
}

func TestListByJob(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.Apply(ctx, "acme", "open", validRequest(), nil)
	require.NoError(t, err)

	page, err := f.svc.ListByJob(ctx, "open", application.ListOptions{}, "owner")
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, kernel.DefaultPageSize, page.Page.Size)

	_, err = f.svc.ListByJob(ctx, "open", application.ListOptions{}, "intruder")
	assert.ErrorIs(t, err, company.ErrNotOwner())

	_, err = f.svc.ListByJob(ctx, "open", application.ListOptions{Status: "hired"}, "owner")
	assert.ErrorIs(t, err, application.ErrInvalidStatus())
}

func TestUpdateStatus(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	app, err := f.svc.Apply(ctx, "acme", "open", validRequest(), nil)
	require.NoError(t, err)

	updated, err := f.svc.UpdateStatus(ctx, app.ID, application.StatusReviewing, "owner")
	require.NoError(t, err)
	assert.Equal(t, application.StatusReviewing, updated.Status)
	require.Len(t, f.apps.patches, 1)
	assert.Equal(t, "reviewing", f.apps.patches[0]["status"])
	assert.Contains(t, f.apps.patches[0], "status_changed_at")

	_, err = f.svc.UpdateStatus(ctx, app.ID, application.StatusAccepted, "owner")
	assert.ErrorIs(t, err, application.ErrInvalidStatusTransition())
	assert.Len(t, f.apps.patches, 1)

	_, err = f.svc.UpdateStatus(ctx, app.ID, application.StatusRejected, "intruder")
	assert.ErrorIs(t, err, company.ErrNotOwner())
}
