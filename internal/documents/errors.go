package documents

import "errors"

var (
	ErrNotFound            = errors.New("document not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileMissing         = errors.New("stored file missing")
	ErrNoAnalysis          = errors.New("no analysis available")
	ErrConsultantNotFound  = errors.New("consultant not found")
)
