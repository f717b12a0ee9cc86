package domain

import (
	perr "paperwork/internal/platform/errors"
	pstrings "paperwork/internal/platform/strings"
)

// UploadField is the multipart field carrying the export
const UploadField = "file"

// UploadExt is the only accepted file extension
const UploadExt = ".csv"

var (
	// ErrMissingUpload means the request carried no file part
	ErrMissingUpload = perr.WithField(perr.New(perr.ErrorCodeValidation, "No file part"), UploadField)

	// ErrInvalidUpload means the file part has no name or is not a .csv
	ErrInvalidUpload = perr.WithField(perr.New(perr.ErrorCodeValidation, "Invalid file"), UploadField)
)

// CheckFileName accepts a non-empty name ending in .csv, any case
func CheckFileName(name string) error {
	if name == "" || !pstrings.HasSuffixFold(name, UploadExt) {
		return ErrInvalidUpload
	}
	return nil
}
