package validators

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MKhiriev/go-campus-assistant/models"
)

const (
	FieldQuestion  = "question"
	FieldQuery     = "query"
	FieldTopK      = "top_k"
	FieldKeyword   = "keyword"
	FieldTop       = "top"
	FieldFilename  = "filename"
	FieldExtension = "extension"
	FieldSize      = "size"
)

// MaxUploadSize is the largest document the backend accepts.
const MaxUploadSize = 10 << 20

// AllowedExtensions lists the document types the backend can index.
var AllowedExtensions = []string{"pdf", "docx", "txt"}

type InputValidator struct {
}

func NewInputValidator() Validator {
	return &InputValidator{}
}

func (v *InputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ChatQuery:
		return v.validateChatQuery(ctx, value, fields...)
	case *models.ChatQuery:
		return v.validateChatQuery(ctx, *value, fields...)

	case models.SearchRequest:
		return v.validateSearchRequest(ctx, value, fields...)
	case *models.SearchRequest:
		return v.validateSearchRequest(ctx, *value, fields...)

	case models.EmailSearchRequest:
		return v.validateEmailSearchRequest(ctx, value, fields...)
	case *models.EmailSearchRequest:
		return v.validateEmailSearchRequest(ctx, *value, fields...)

	case models.DocumentUpload:
		return v.validateDocumentUpload(ctx, value, fields...)
	case *models.DocumentUpload:
		return v.validateDocumentUpload(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func (v *InputValidator) validateChatQuery(_ context.Context, query models.ChatQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldQuestion}
	}

	for _, f := range fields {
		switch f {
		case FieldQuestion:
			if isBlank(query.Question) {
				return ErrEmptyQuestion
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InputValidator) validateSearchRequest(_ context.Context, request models.SearchRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldQuery, FieldTopK}
	}

	for _, f := range fields {
		switch f {
		case FieldQuery:
			if isBlank(request.Query) {
				return ErrEmptyQuery
			}
		case FieldTopK:
			if request.TopK < 0 {
				return ErrInvalidTopK
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InputValidator) validateEmailSearchRequest(_ context.Context, request models.EmailSearchRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKeyword, FieldTop}
	}

	for _, f := range fields {
		switch f {
		case FieldKeyword:
			if isBlank(request.Keyword) {
				return ErrEmptyKeyword
			}
		case FieldTop:
			if request.Top < 0 {
				return ErrInvalidTopK
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InputValidator) validateDocumentUpload(_ context.Context, upload models.DocumentUpload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFilename, FieldExtension, FieldSize}
	}

	for _, f := range fields {
		switch f {
		case FieldFilename:
			if isBlank(upload.Filename) {
				return ErrEmptyFilename
			}
		case FieldExtension:
			ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(upload.Filename), "."))
			if !slices.Contains(AllowedExtensions, ext) {
				return fmt.Errorf("%w: %q, allowed: %s", ErrUnsupportedExtension, ext, strings.Join(AllowedExtensions, ", "))
			}
		case FieldSize:
			if upload.Size <= 0 {
				return ErrEmptyFile
			}
			if upload.Size > MaxUploadSize {
				return fmt.Errorf("%w: %d bytes, limit %d", ErrFileTooLarge, upload.Size, MaxUploadSize)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
