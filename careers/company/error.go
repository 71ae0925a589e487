package company

import (
	"net/http"

	"github.com/Abraxas-365/careers/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("COMPANY")

// Error codes
var (
	CodeCompanyNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Company not found")
	CodeSlugTaken       = ErrRegistry.Register("SLUG_TAKEN", errx.TypeConflict, http.StatusConflict, "This URL is already taken. Please choose a different one.")
	CodeInvalidSlug     = ErrRegistry.Register("INVALID_SLUG", errx.TypeValidation, http.StatusBadRequest, "Page URL may only contain lowercase letters, numbers and hyphens")
	CodeNotOwner        = ErrRegistry.Register("NOT_OWNER", errx.TypeAuthorization, http.StatusForbidden, "You do not manage this company")
	CodeNotPublished    = ErrRegistry.Register("NOT_PUBLISHED", errx.TypeNotFound, http.StatusNotFound, "Careers page not found")
	CodeInvalidColor    = ErrRegistry.Register("INVALID_COLOR", errx.TypeValidation, http.StatusBadRequest, "Invalid color format")
	CodeInvalidAsset    = ErrRegistry.Register("INVALID_ASSET", errx.TypeValidation, http.StatusBadRequest, "Invalid image upload")
	CodeInvalidBranding = ErrRegistry.Register("INVALID_BRANDING", errx.TypeValidation, http.StatusBadRequest, "Branding details are invalid")
	CodeInvalidSections = ErrRegistry.Register("INVALID_SECTIONS", errx.TypeValidation, http.StatusBadRequest, "Content sections are invalid")
)

func ErrCompanyNotFound() *errx.Error {
	return ErrRegistry.New(CodeCompanyNotFound)
}

func ErrSlugTaken() *errx.Error {
	return ErrRegistry.New(CodeSlugTaken)
}

func ErrInvalidSlug() *errx.Error {
	return ErrRegistry.New(CodeInvalidSlug)
}

func ErrNotOwner() *errx.Error {
	return ErrRegistry.New(CodeNotOwner)
}

func ErrNotPublished() *errx.Error {
	return ErrRegistry.New(CodeNotPublished)
}

func ErrInvalidColor() *errx.Error {
	return ErrRegistry.New(CodeInvalidColor)
}

func ErrInvalidAsset() *errx.Error {
	return ErrRegistry.New(CodeInvalidAsset)
}

func ErrInvalidBranding() *errx.Error {
	return ErrRegistry.New(CodeInvalidBranding)
}

func ErrInvalidSections() *errx.Error {
	return ErrRegistry.New(CodeInvalidSections)
}
