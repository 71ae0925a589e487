package analytics

import (
	"net/http"

	"github.com/Abraxas-365/careers/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("ANALYTICS")

// Error codes
var (
	CodeInvalidRange = ErrRegistry.Register("INVALID_RANGE", errx.TypeValidation, http.StatusBadRequest, "Invalid analytics range")
	CodeRecordFailed = ErrRegistry.Register("RECORD_FAILED", errx.TypeExternal, http.StatusBadGateway, "Failed to record analytics event")
)

func ErrInvalidRange() *errx.Error {
	return ErrRegistry.New(CodeInvalidRange)
}

func ErrRecordFailed() *errx.Error {
	return ErrRegistry.New(CodeRecordFailed)
}
