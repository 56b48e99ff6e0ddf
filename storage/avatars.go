package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// AvatarStore keeps uploaded profile images on local disk and hands back
// the public URL they are served under.
type AvatarStore struct {
	dir     string
	baseURL string // e.g. http://localhost:8080
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

var ErrUnsupportedType = errors.New("unsupported image type (allowed: jpg, jpeg, png, webp)")

func NewAvatarStore(dir, baseURL string) (*AvatarStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &AvatarStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save writes the image under a fresh uuid name and returns its public URL
func (s *AvatarStore) Save(src io.Reader, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedType
	}

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return s.baseURL + "/uploads/" + name, nil
}
