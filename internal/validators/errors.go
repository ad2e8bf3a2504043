package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyQuestion        = errors.New("question is empty")
	ErrEmptyQuery           = errors.New("search query is empty")
	ErrEmptyKeyword         = errors.New("search keyword is empty")
	ErrInvalidTopK          = errors.New("result limit must not be negative")
	ErrEmptyFilename        = errors.New("file name is empty")
	ErrUnsupportedExtension = errors.New("unsupported file type")
	ErrEmptyFile            = errors.New("file is empty")
	ErrFileTooLarge         = errors.New("file is too large")
)
