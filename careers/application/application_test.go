package application

import (
	"testing"

	"github.com/Abraxas-365/careers/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplication(t *testing.T) {
	app := NewApplication("j-1", "c-1", ApplyRequest{
		CandidateName:  "  Ada Lovelace ",
		CandidateEmail: " Ada@Example.COM ",
		CandidatePhone: " +1 555 ",
	})

	assert.NotEmpty(t, app.ID)
	assert.Equal(t, StatusNew, app.Status)
	assert.Equal(t, "Ada Lovelace", app.CandidateName)
	assert.Equal(t, kernel.Email("ada@example.com"), app.CandidateEmail)
	assert.Equal(t, kernel.Phone("+1 555"), app.CandidatePhone)
	assert.Nil(t, app.StatusChangedAt)
}

func TestStatusTransitions(t *testing.T) {
	all := []Status{StatusNew, StatusReviewing, StatusShortlisted, StatusAccepted, StatusRejected}

	allowed := map[Status][]Status{
		StatusNew:         {StatusReviewing, StatusRejected},
		StatusReviewing:   {StatusReviewing, StatusShortlisted, StatusRejected},
		StatusShortlisted: {StatusReviewing, StatusAccepted, StatusRejected},
		StatusAccepted:    {},
		StatusRejected:    {},
	}

	for _, from := range all {
		for _, to := range all {
			app := &Application{Status: from}
			want := false
			for _, s := range allowed[from] {
				if s == to {
					want = true
				}
			}

			err := app.UpdateStatus(to)
			if want {
				require.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, app.Status)
				assert.NotNil(t, app.StatusChangedAt)
			} else {
				assert.ErrorIs(t, err, ErrInvalidStatusTransition(), "%s -> %s", from, to)
				assert.Equal(t, from, app.Status)
			}
		}
	}
}

func TestUpdateStatus_Unknown(t *testing.T) {
	app := &Application{Status: StatusNew}

	assert.ErrorIs(t, app.UpdateStatus("hired"), ErrInvalidStatus())
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, StatusAccepted.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.False(t, StatusShortlisted.IsTerminal())
}

func TestValidateResume(t *testing.T) {
	ext, err := ValidateResume("application/pdf", 1024)
	require.NoError(t, err)
	assert.Equal(t, ".pdf", ext)

	ext, err = ValidateResume("application/vnd.openxmlformats-officedocument.wordprocessingml.document; charset=binary", 1024)
	require.NoError(t, err)
	assert.Equal(t, ".docx", ext)

	_, err = ValidateResume("image/png", 1024)
	assert.ErrorIs(t, err, ErrInvalidFileType())

	_, err = ValidateResume("application/pdf", MaxResumeSize+1)
	assert.ErrorIs(t, err, ErrFileSizeTooLarge())

	_, err = ValidateResume("application/pdf", 0)
	assert.ErrorIs(t, err, ErrFileSizeTooLarge())
}

func TestResumePath(t *testing.T) {
	app := &Application{ID: "a-1", CompanyID: "c-1"}

	assert.Equal(t, "resumes/c-1/a-1.pdf", ResumePath(app, ".pdf"))
}
