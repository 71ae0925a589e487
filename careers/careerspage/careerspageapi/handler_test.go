package careerspageapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Abraxas-365/careers/careers/careerspage"
	"github.com/Abraxas-365/careers/careers/careerspage/careerspagesrv"
	"github.com/Abraxas-365/careers/careers/company"
	"github.com/Abraxas-365/careers/careers/job"
	"github.com/Abraxas-365/careers/pkg/auth"
	"github.com/Abraxas-365/careers/pkg/errx"
	"github.com/Abraxas-365/careers/pkg/kernel"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompanies struct {
	company.Repository
	co *company.Company
}

func (s *stubCompanies) GetBySlug(_ context.Context, slug string) (*company.Company, error) {
	if s.co.Slug != slug {
		return nil, company.ErrCompanyNotFound()
	}
	return s.co, nil
}

type stubJobs struct {
	job.Repository
	jobs []job.Job
}

func (s *stubJobs) ListActiveByCompany(context.Context, kernel.CompanyID) ([]job.Job, error) {
	return s.jobs, nil
}

func (s *stubJobs) ListAllByCompany(context.Context, kernel.CompanyID) ([]job.Job, error) {
	return s.jobs, nil
}

type noCache struct{}

func (noCache) Get(context.Context, string) (*careerspage.Snapshot, bool, error) {
	return nil, false, nil
}
func (noCache) Set(context.Context, string, *careerspage.Snapshot) error { return nil }
func (noCache) Invalidate(context.Context, string) error                 { return nil }

type visitors struct{ seen []string }

func (v *visitors) RecordPageView(_ context.Context, _ kernel.CompanyID, visitor string) error {
	v.seen = append(v.seen, visitor)
	return nil
}
func (v *visitors) RecordJobView(context.Context, kernel.CompanyID, kernel.JobID) error { return nil }
func (v *visitors) RecordApplicationClick(context.Context, kernel.CompanyID, kernel.JobID) error {
	return nil
}

func setup(t *testing.T) (*fiber.App, *visitors, *auth.JWTService) {
	t.Helper()

	co := company.NewCompany("owner", "Acme", "acme", "", "")
	co.Publish()
	jobs := []job.Job{
		{ID: "1", CompanyID: co.ID, Title: "Engineer", Location: "Remote", JobType: "Full-time", IsActive: true},
		{ID: "2", CompanyID: co.ID, Title: "Designer", Location: "NYC", JobType: "Contract", IsActive: true},
	}

	rec := &visitors{}
	svc := careerspagesrv.NewPageService(&stubCompanies{co: co}, &stubJobs{jobs: jobs}, noCache{}, rec)
	tokens := auth.NewJWTService("test-secret", "", "")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := errx.As(err); ok {
				return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
			}
			return c.SendStatus(http.StatusInternalServerError)
		},
	})
	RegisterRoutes(app, NewHandlers(svc), auth.NewMiddleware(tokens))
	return app, rec, tokens
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestGetPageHandler(t *testing.T) {
	app, rec, _ := setup(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/careers/acme?location=NYC", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page careerspage.Page
	decode(t, resp, &page)
	assert.Equal(t, 1, page.Listing.FilteredCount)
	assert.Equal(t, 2, page.Listing.TotalCount)
	assert.Equal(t, "Designer", page.Listing.Jobs[0].Title)

	require.Len(t, rec.seen, 1)
	assert.NotEmpty(t, rec.seen[0])
	var issued bool
	for _, ck := range resp.Cookies() {
		if ck.Name == visitorCookie {
			issued = ck.Value == rec.seen[0]
		}
	}
	assert.True(t, issued)
}

func TestGetPageHandler_ReusesVisitorCookie(t *testing.T) {
	app, rec, _ := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/api/careers/acme", nil)
	req.AddCookie(&http.Cookie{Name: visitorCookie, Value: "returning"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, []string{"returning"}, rec.seen)
}

func TestGetPageHandler_SignedInVisitor(t *testing.T) {
	app, rec, tokens := setup(t)
	token, err := tokens.Issue("user-7", "", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/careers/acme", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, []string{"user:user-7"}, rec.seen)
}

func TestGetPageHandler_NotFound(t *testing.T) {
	app, _, _ := setup(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/careers/unknown", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetJobHandler(t *testing.T) {
	app, _, _ := setup(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/careers/acme/jobs/2", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var detail careerspage.JobDetail
	decode(t, resp, &detail)
	assert.Equal(t, "Designer", detail.Job.Title)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/careers/acme/jobs/9", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPreviewHandler_RequiresToken(t *testing.T) {
	app, _, tokens := setup(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/preview/acme", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token, err := tokens.Issue("owner", "", time.Hour)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/preview/acme", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDemoHandler(t *testing.T) {
	app, rec, _ := setup(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/demo/techcorp/careers?job_type=Full-time", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page careerspage.Page
	decode(t, resp, &page)
	assert.Equal(t, careerspage.ModeDemo, page.Mode)
	assert.Equal(t, 5, page.Listing.FilteredCount)
	assert.Empty(t, rec.seen)
}
