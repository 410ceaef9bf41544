package upload

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNotImage = errors.New("only image files are allowed")
	ErrTooLarge = errors.New("file too large (max 5 MB)")
)

// MaxProofSize is the upper bound for proof-of-completion images.
const MaxProofSize = 5 * 1024 * 1024

// Storage writes proof images to a local directory and returns the URL
// path they are served under.
type Storage struct {
	dir     string
	baseURL string
}

// New creates a Storage rooted at dir; files are addressed as
// baseURL/<name>. The directory is created if missing.
func New(dir, baseURL string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Storage{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Dir returns the directory files are stored in, for static serving.
func (s *Storage) Dir() string {
	return s.dir
}

// SaveProof validates and stores an uploaded proof image, returning the
// URL it will be served from.
func (s *Storage) SaveProof(data []byte, contentType string) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotImage
	}
	if len(data) > MaxProofSize {
		return "", ErrTooLarge
	}

	name := uuid.NewString() + extensionFor(contentType)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write proof image: %w", err)
	}

	return s.baseURL + "/" + name, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
