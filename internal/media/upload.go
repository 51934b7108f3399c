package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"vidtube/internal/common"
	"vidtube/internal/logging"
)

// Spooler copies multipart parts to local temp files before they are
// forwarded to object storage.
type Spooler struct {
	TempDir string
}

func NewSpooler(tempDir string) *Spooler {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &Spooler{TempDir: tempDir}
}

// ParseForm caps the request body at maxBytes and parses a multipart form,
// keeping at most 32MB of it in memory.
func ParseForm(w http.ResponseWriter, r *http.Request, maxBytes int64) error {
	if maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return common.ErrValidation("Upload is too large")
		}
		if errors.Is(err, http.ErrNotMultipart) {
			return common.ErrValidation("Request must be multipart/form-data")
		}
		return common.ErrValidation("Malformed multipart form", err.Error())
	}
	return nil
}

// SpoolFormFile copies the multipart field into a temp file. A missing field
// returns (nil, nil) unless required. The request must already be parsed
// with ParseMultipartForm.
func (s *Spooler) SpoolFormFile(r *http.Request, field string, required bool) (*common.LocalFile, error) {
	part, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			if required {
				return nil, common.ErrValidation(field + " file is required")
			}
			return nil, nil
		}
		return nil, common.ErrValidation("Invalid "+field+" upload", err.Error())
	}
	defer part.Close()

	path := filepath.Join(s.TempDir, uuid.NewString()+filepath.Ext(header.Filename))
	dst, err := os.Create(path)
	if err != nil {
		return nil, common.ErrInternal("Failed to receive upload", err)
	}

	size, err := io.Copy(dst, part)
	closeErr := dst.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return nil, common.ErrInternal("Failed to receive upload", err)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = common.ContentTypeFor(header.Filename)
	}

	return &common.LocalFile{
		Path:        path,
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        size,
	}, nil
}

// Forward stores file and removes the local copy whatever the outcome.
func Forward(ctx context.Context, storage common.ObjectStorage, file *common.LocalFile) (string, error) {
	if file == nil {
		return "", nil
	}
	defer Discard(ctx, file)

	url, err := storage.Store(ctx, file)
	if err != nil {
		return "", fmt.Errorf("store %s: %w", file.Filename, err)
	}
	return url, nil
}

// Discard removes spooled files that will not be forwarded.
func Discard(ctx context.Context, files ...*common.LocalFile) {
	for _, f := range files {
		if f == nil {
			continue
		}
		if err := os.Remove(f.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
			logging.FromContext(ctx).Warn("failed to remove temp upload", "path", f.Path, "error", err)
		}
	}
}
