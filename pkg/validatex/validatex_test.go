package validatex

import (
	"testing"

	"github.com/Abraxas-365/careers/pkg/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
	URL   string `json:"url" validate:"omitempty,url"`
}

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, Struct(signup{Name: "Acme", Email: "hr@acme.io"}))
}

func TestStruct_ReportsJSONFieldNames(t *testing.T) {
	err := Struct(signup{Name: "A", Email: "nope", URL: "not a url"})
	require.Error(t, err)

	e, ok := errx.As(err)
	require.True(t, ok)
	assert.Equal(t, string(CodeValidationFailed), e.Code)

	fields, ok := e.Details["fields"].(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "min=2", fields["name"])
	assert.Equal(t, "email", fields["email"])
	assert.Equal(t, "url", fields["url"])
}
