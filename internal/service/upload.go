package service

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"scholarlink/internal/domain"
)

// DocumentUpload is a file received from a client.
type DocumentUpload struct {
	File     io.Reader
	FileName string
	Size     int64
}

// UploadLimits bounds what uploads are accepted.
type UploadLimits struct {
	MaxBytes int64
}

// DefaultMaxUploadBytes is used when no limit is configured.
const DefaultMaxUploadBytes = 10 * 1024 * 1024

type acceptedDocument struct {
	data        []byte
	fileType    domain.FileType
	contentType string
	fileName    string
}

// readDocument validates the extension, size and magic bytes of an upload
// and returns its contents.
func readDocument(input DocumentUpload, limits UploadLimits) (*acceptedDocument, error) {
	maxBytes := limits.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.FileName), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	if input.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}
	if input.File == nil {
		return nil, domain.ErrEmptyFile
	}

	// Read one byte past the limit so oversize bodies with a lying Size are caught.
	data, err := io.ReadAll(io.LimitReader(input.File, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if len(data) == 0 {
		return nil, domain.ErrEmptyFile
	}
	if int64(len(data)) > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	detected := http.DetectContentType(data)
	if i := strings.IndexByte(detected, ';'); i >= 0 {
		detected = detected[:i]
	}
	if detectedType, valid := domain.AllowedContentTypes[detected]; !valid || detectedType != fileType {
		return nil, domain.ErrUnsupportedFileType
	}

	return &acceptedDocument{
		data:        data,
		fileType:    fileType,
		contentType: domain.AllowedFileTypes[fileType],
		fileName:    filepath.Base(input.FileName),
	}, nil
}

func (d *acceptedDocument) request() domain.VerificationRequest {
	return domain.VerificationRequest{
		FileBytes:   d.data,
		ContentType: d.contentType,
		FileName:    d.fileName,
	}
}

func (d *acceptedDocument) reader() io.Reader {
	return bytes.NewReader(d.data)
}
