package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"patients-care-api/pkg/apperror"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// MaxPhotoSize is the largest accepted upload, 1 MiB
const MaxPhotoSize = 1 << 20

// PublicPrefix is the path prefix stored in photo fields and served statically
const PublicPrefix = "uploads/"

// allowedPhotoTypes are raster formats only; uploads are served from the API origin
var allowedPhotoTypes = []string{"image/png", "image/jpeg", "image/gif", "image/webp"}

type PhotoStorage interface {
	// Save validates an image upload and returns its public path
	Save(r io.Reader) (string, error)
	// Remove deletes a file previously returned by Save; a missing file is not an error
	Remove(publicPath string) error
}

type localPhotoStorage struct {
	dir string
}

func NewLocalPhotoStorage(dir string) (PhotoStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &localPhotoStorage{dir: dir}, nil
}

func (s *localPhotoStorage) Save(r io.Reader) (string, error) {
	// read one byte past the limit to detect oversize files
	data, err := io.ReadAll(io.LimitReader(r, MaxPhotoSize+1))
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", apperror.BadRequest(apperror.KeyNoFileUploaded)
	}
	if len(data) > MaxPhotoSize {
		return "", apperror.BadRequest(apperror.KeyImageTooLarge)
	}

	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), allowedPhotoTypes...) {
		return "", apperror.BadRequest(apperror.KeyNotAnImage)
	}

	name := uuid.NewString() + mtype.Extension()
	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, bytes.NewReader(data)); err != nil {
		return "", err
	}
	return PublicPrefix + name, nil
}

func (s *localPhotoStorage) Remove(publicPath string) error {
	name := filepath.Base(strings.TrimPrefix(publicPath, PublicPrefix))
	if name == "." || name == "/" {
		return nil
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
