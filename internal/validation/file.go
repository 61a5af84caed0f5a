package validation

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
)

// FileConstraints defines validation rules for file uploads
type FileConstraints struct {
	Name              string
	AllowedMimeTypes  map[string]bool
	AllowedExtensions map[string]bool
	MaxSize           int64
}

var (
	// ImageConstraints covers cover images and the profile photo
	ImageConstraints = FileConstraints{
		Name: "image",
		AllowedMimeTypes: map[string]bool{
			"image/jpeg": true,
			"image/png":  true,
			"image/webp": true,
			"image/gif":  true,
		},
		AllowedExtensions: map[string]bool{
			".jpg":  true,
			".jpeg": true,
			".png":  true,
			".webp": true,
			".gif":  true,
		},
		MaxSize: 5 << 20, // 5MB
	}

	// DocumentConstraints covers certification documents and the CV
	DocumentConstraints = FileConstraints{
		Name: "document",
		AllowedMimeTypes: map[string]bool{
			"application/pdf": true,
		},
		AllowedExtensions: map[string]bool{
			".pdf": true,
		},
		MaxSize: 10 << 20, // 10MB
	}
)

// ValidateFile validates a file upload against one or more constraint sets
// If multiple constraints are provided, file must match at least one (OR logic)
// Example: ValidateFile(header, DocumentConstraints, ImageConstraints) allows PDFs OR images
func ValidateFile(header *multipart.FileHeader, constraints ...FileConstraints) error {
	if header == nil {
		return Errorf("file", "file is required")
	}
	if len(constraints) == 0 {
		return fmt.Errorf("no file constraints provided")
	}

	var lastErr error
	for _, constraint := range constraints {
		err := validateAgainstConstraint(header, constraint)
		if err == nil {
			return nil
		}
		lastErr = err
	}

	return lastErr
}

// ValidatePDF enforces a PDF upload: the declared Content-Type must be exactly
// application/pdf and the content must sniff as PDF.
func ValidatePDF(header *multipart.FileHeader) error {
	if header == nil {
		return Errorf("cv", "CV file is required")
	}
	if header.Header.Get("Content-Type") != "application/pdf" {
		return Errorf("cv", "only PDF files are allowed")
	}
	err := ValidateFile(header, DocumentConstraints)
	if err != nil {
		return Errorf("cv", "only PDF files are allowed: %v", err)
	}
	return nil
}

func validateAgainstConstraint(header *multipart.FileHeader, constraints FileConstraints) error {
	// Check file size first (before reading content)
	if header.Size > constraints.MaxSize {
		maxMB := constraints.MaxSize / (1 << 20)
		return Errorf("file", "file too large: maximum %s size is %d MB", constraints.Name, maxMB)
	}

	file, err := header.Open()
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// http.DetectContentType reads max 512 bytes to determine MIME type
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file: %w", err)
	}

	// Detect actual content type from magic numbers, not the client header
	detectedType := http.DetectContentType(buffer[:n])
	if !constraints.AllowedMimeTypes[detectedType] {
		return Errorf("file", "invalid %s type (detected: %s)", constraints.Name, detectedType)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !constraints.AllowedExtensions[ext] {
		return Errorf("file", "invalid %s extension: %q", constraints.Name, ext)
	}

	return nil
}
