// Package upload validates resume files and materializes them on disk under
// generated names, so client-supplied filenames are never trusted for storage.
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxResumeBytes is the upload size ceiling.
const MaxResumeBytes = 10 << 20 // 10 MiB

// Validation failures abort the whole submission; no record is written.
var (
	ErrDisallowedType = errors.New("only .pdf, .doc, .docx, .txt, .rtf files are allowed")
	ErrTooLarge       = errors.New("resume exceeds the 10 MB size limit")
)

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
	".rtf":  true,
}

// Saver writes accepted resumes into Dir and reports them by their
// public-servable path.
type Saver struct {
	Dir string
}

// NewSaver builds a saver rooted at dir.
func NewSaver(dir string) *Saver {
	return &Saver{Dir: dir}
}

// Save validates the uploaded resume and writes it under a fresh uuid-based
// filename. It returns the public path ("/uploads/<generated>") and the
// original client filename for display. The generated name keeps the original
// extension; an existing file is never overwritten.
func (s *Saver) Save(file *multipart.FileHeader) (publicPath, originalName string, err error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", "", ErrDisallowedType
	}
	if file.Size > MaxResumeBytes {
		return "", "", ErrTooLarge
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", "", fmt.Errorf("create upload directory: %w", err)
	}

	generated := uuid.New().String() + ext
	destPath := filepath.Join(s.Dir, generated)

	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", "", fmt.Errorf("create resume file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(destPath)
		return "", "", fmt.Errorf("write resume file: %w", err)
	}

	return "/uploads/" + generated, filepath.Base(file.Filename), nil
}

// IsValidationError reports whether err is a client-side rejection rather
// than a server failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrDisallowedType) || errors.Is(err, ErrTooLarge)
}
