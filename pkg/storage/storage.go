package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

var (
	ErrFileTooLarge = errors.New("file exceeds the allowed size")
	ErrWrongType    = errors.New("file type is not allowed")
)

// Constraints bound an upload at the storage boundary. Violations surface
// as field-level validation problems to the caller, not generic failures.
type Constraints struct {
	MaxSize     int64
	AllowedExts []string
}

// Upload constraint presets for the files this system accepts. Receipt
// and resume presets document the storage contract for document uploads;
// no route accepts them yet.
var (
	ImageConstraints = Constraints{
		MaxSize:     5 << 20,
		AllowedExts: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp"},
	}
	ReceiptConstraints = Constraints{
		MaxSize:     5 << 20,
		AllowedExts: []string{".jpg", ".jpeg", ".png", ".pdf"},
	}
	ResumeConstraints = Constraints{
		MaxSize:     5 << 20,
		AllowedExts: []string{".pdf", ".doc", ".docx"},
	}
)

// Check validates size and extension against the constraints.
func (c Constraints) Check(size int64, fileName string) error {
	if c.MaxSize > 0 && size > c.MaxSize {
		return fmt.Errorf("%w: %s is larger than %d bytes", ErrFileTooLarge, fileName, c.MaxSize)
	}
	ext := strings.ToLower(filepath.Ext(fileName))
	for _, allowed := range c.AllowedExts {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrWrongType, fileName)
}

// FileStorage is the file-storage collaborator contract.
type FileStorage interface {
	// Upload stores the file and returns its URL. The constraints are
	// checked before any bytes leave the process.
	Upload(ctx context.Context, r io.Reader, size int64, folder, fileName string, c Constraints) (string, error)
	// Delete removes a stored file by its URL.
	Delete(ctx context.Context, fileURL string) error
}
