package lospec

import (
	"fmt"
	"strings"
)

// ValidationReason identifies why a DownloadRequest is invalid.
type ValidationReason string

// Validation error reasons.
const (
	ErrEmptySlug     ValidationReason = "empty_slug"
	ErrInvalidSlug   ValidationReason = "invalid_slug"
	ErrUnknownFormat ValidationReason = "unknown_format"
	ErrInvalidSize   ValidationReason = "invalid_size"
	ErrEmptyPath     ValidationReason = "empty_path"
)

// ValidationError describes a single validation failure in a download request.
type ValidationError struct {
	Field  string           // Request field, e.g. "slug"
	Value  string           // The rejected value
	Reason ValidationReason // Why the value is invalid
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	switch e.Reason {
	case ErrEmptySlug:
		return "slug is required"
	case ErrInvalidSlug:
		return fmt.Sprintf("slug %q must not contain path separators or whitespace", e.Value)
	case ErrUnknownFormat:
		return fmt.Sprintf("unknown format %q (want one of %s)", e.Value, strings.Join(FormatNames(), ", "))
	case ErrInvalidSize:
		return fmt.Sprintf("size %s must not be negative", e.Value)
	case ErrEmptyPath:
		return "destination path is required"
	default:
		return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
	}
}

// ValidateDownloadRequest checks req before anything is fetched. Returns a
// slice of validation errors in field order, or nil if req is valid.
func ValidateDownloadRequest(req DownloadRequest) []ValidationError {
	var errs []ValidationError

	switch {
	case req.Slug == "":
		errs = append(errs, ValidationError{Field: "slug", Reason: ErrEmptySlug})
	case req.Slug == "." || req.Slug == ".." || strings.ContainsAny(req.Slug, "/\\ \t\r\n"):
		errs = append(errs, ValidationError{Field: "slug", Value: req.Slug, Reason: ErrInvalidSlug})
	}

	if _, ok := LookupFormat(req.Format); !ok {
		errs = append(errs, ValidationError{Field: "format", Value: string(req.Format), Reason: ErrUnknownFormat})
	}

	if req.Size < 0 {
		errs = append(errs, ValidationError{Field: "size", Value: fmt.Sprint(req.Size), Reason: ErrInvalidSize})
	}

	if req.Path == "" {
		errs = append(errs, ValidationError{Field: "path", Reason: ErrEmptyPath})
	}

	return errs
}
