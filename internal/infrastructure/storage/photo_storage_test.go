package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"patients-care-api/pkg/apperror"
)

// minimal 1x1 PNG
var pngBytes = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func TestSaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalPhotoStorage(dir)
	if err != nil {
		t.Fatal(err)
	}

	path, err := s.Save(bytes.NewReader(pngBytes))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !strings.HasPrefix(path, PublicPrefix) || !strings.HasSuffix(path, ".png") {
		t.Errorf("unexpected public path %q", path)
	}

	onDisk := filepath.Join(dir, strings.TrimPrefix(path, PublicPrefix))
	if _, err := os.Stat(onDisk); err != nil {
		t.Fatalf("file not written: %v", err)
	}

	if err := s.Remove(path); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, err := os.Stat(onDisk); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("file still present after Remove")
	}
	if err := s.Remove(path); err != nil {
		t.Errorf("second Remove() error = %v, want nil", err)
	}
}

func TestSaveRejects(t *testing.T) {
	s, err := NewLocalPhotoStorage(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		payload []byte
		wantKey string
	}{
		{"empty", nil, apperror.KeyNoFileUploaded},
		{"text", []byte("just some plain text"), apperror.KeyNotAnImage},
		{"svg", []byte(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`), apperror.KeyNotAnImage},
		{"too large", append(append([]byte{}, pngBytes...), make([]byte, MaxPhotoSize)...), apperror.KeyImageTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Save(bytes.NewReader(tt.payload))
			appErr, ok := apperror.As(err)
			if !ok {
				t.Fatalf("expected app error, got %v", err)
			}
			if appErr.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", appErr.Key, tt.wantKey)
			}
		})
	}
}
