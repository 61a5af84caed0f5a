package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"path"
	"strings"
	"time"
	"unicode"

	"github.com/cheickthiam/portfolio/internal/storage"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrUploadFailed         = errors.New("upload failed")
	ErrStorageNotConfigured = storage.ErrNotConfigured
)

// Upload folders in the public bucket.
const (
	FolderProjects           = "projects"
	FolderCertificationCover = "certifications/covers"
	FolderProfile            = "profile"
	FolderCV                 = "cv"
)

// FileService puts uploads into the object store. A nil storage means
// uploads are disabled and every upload reports storage.ErrNotConfigured.
type FileService struct {
	storage       storage.Storage
	privateExpiry time.Duration
	now           func() time.Time
}

func NewFileService(st storage.Storage, privateExpiry time.Duration) *FileService {
	return &FileService{
		storage:       st,
		privateExpiry: privateExpiry,
		now:           time.Now,
	}
}

func (s *FileService) Configured() bool {
	return s.storage != nil
}

// UploadPublic stores a file under folder in the public bucket and
// returns its URL.
func (s *FileService) UploadPublic(ctx context.Context, folder string, header *multipart.FileHeader) (string, error) {
	key := path.Join(folder, ObjectKey(header.Filename, s.now()))
	err := s.upload(ctx, storage.Public, key, header)
	if err != nil {
		return "", err
	}
	return s.storage.PublicURL(key), nil
}

// UploadPrivate stores a file in the private bucket and returns its key.
func (s *FileService) UploadPrivate(ctx context.Context, header *multipart.FileHeader) (string, error) {
	key := ObjectKey(header.Filename, s.now())
	err := s.upload(ctx, storage.Private, key, header)
	if err != nil {
		return "", err
	}
	return key, nil
}

func (s *FileService) upload(ctx context.Context, vis storage.Visibility, key string, header *multipart.FileHeader) error {
	if s.storage == nil {
		return ErrStorageNotConfigured
	}

	file, err := header.Open()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	defer func() { _ = file.Close() }()

	err = s.storage.Save(ctx, vis, key, file, header.Header.Get("Content-Type"))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	slog.Info("file uploaded", "key", key, "size", header.Size)
	return nil
}

// SignedURL mints a download URL for a private object.
func (s *FileService) SignedURL(ctx context.Context, key string) (string, time.Duration, error) {
	if s.storage == nil {
		return "", 0, ErrStorageNotConfigured
	}
	url, err := s.storage.SignedURL(ctx, key, s.privateExpiry)
	if err != nil {
		return "", 0, err
	}
	return url, s.privateExpiry, nil
}

// DeletePrivate removes a private object. Failures are logged only.
func (s *FileService) DeletePrivate(ctx context.Context, key string) {
	if s.storage == nil || key == "" {
		return
	}
	err := s.storage.Delete(ctx, storage.Private, key)
	if err != nil {
		slog.Error("failed to delete file from storage", "error", err, "key", key)
	}
}

// DeletePublic removes the object behind a public URL. URLs that do not
// point into the public bucket are left alone.
func (s *FileService) DeletePublic(ctx context.Context, url string) {
	if s.storage == nil {
		return
	}
	key := s.publicKey(url)
	if key == "" {
		return
	}
	err := s.storage.Delete(ctx, storage.Public, key)
	if err != nil {
		slog.Error("failed to delete file from storage", "error", err, "key", key)
	}
}

func (s *FileService) publicKey(url string) string {
	if url == "" {
		return ""
	}
	base := s.storage.PublicURL("")
	if !strings.HasPrefix(url, base) {
		return ""
	}
	return strings.TrimPrefix(url, base)
}

// ObjectKey names an upload {unix-millis}-{filename}, where the filename is
// folded to ASCII letters, digits and dots.
func ObjectKey(filename string, t time.Time) string {
	// A transform chain holds buffers and is not safe for concurrent use.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, path.Base(filename))
	if err != nil {
		folded = filename
	}

	var b strings.Builder
	for _, r := range folded {
		if r == '.' || (r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))) {
			b.WriteRune(r)
		}
	}

	name := b.String()
	if strings.Trim(name, ".") == "" {
		name = "file"
	}
	return fmt.Sprintf("%d-%s", t.UnixMilli(), name)
}
