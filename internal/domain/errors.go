package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrStudentNotFound     = errors.New("student not found")
	ErrDonorNotFound       = errors.New("donor not found")
	ErrPreferencesNotSet   = errors.New("donor preferences not set")
	ErrDuplicateEmail      = errors.New("email already registered")
	ErrInvalidRole         = errors.New("invalid role")
	ErrInvalidPreferences  = errors.New("invalid donor preferences")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrEmptyFile           = errors.New("file is empty")
	ErrUploadFailed        = errors.New("file upload to storage failed")
	ErrUnsupportedExport   = errors.New("unsupported export format")
)
