package job

import (
	"net/http"

	"github.com/Abraxas-365/careers/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("JOB")

// Error codes
var (
	CodeJobNotFound        = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job not found")
	CodeInvalidDraft       = ErrRegistry.Register("INVALID_DRAFT", errx.TypeValidation, http.StatusBadRequest, "Job details are invalid")
	CodeInvalidSalaryRange = ErrRegistry.Register("INVALID_SALARY_RANGE", errx.TypeValidation, http.StatusBadRequest, "Minimum salary cannot exceed maximum salary")
	CodeUnknownField       = ErrRegistry.Register("UNKNOWN_FIELD", errx.TypeValidation, http.StatusBadRequest, "Unknown job field")
	CodeNotOwner           = ErrRegistry.Register("NOT_OWNER", errx.TypeAuthorization, http.StatusForbidden, "You do not manage this job")
	CodeJobInactive        = ErrRegistry.Register("INACTIVE", errx.TypeBusiness, http.StatusConflict, "Job is not accepting applications")
)

func ErrJobNotFound() *errx.Error {
	return ErrRegistry.New(CodeJobNotFound)
}

func ErrInvalidDraft() *errx.Error {
	return ErrRegistry.New(CodeInvalidDraft)
}

func ErrInvalidSalaryRange() *errx.Error {
	return ErrRegistry.New(CodeInvalidSalaryRange)
}

func ErrUnknownField() *errx.Error {
	return ErrRegistry.New(CodeUnknownField)
}

func ErrNotOwner() *errx.Error {
	return ErrRegistry.New(CodeNotOwner)
}

func ErrJobInactive() *errx.Error {
	return ErrRegistry.New(CodeJobInactive)
}
