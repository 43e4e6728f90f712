// Package storage persists uploaded media (CVs, images, favicons).
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type Uploader interface {
	// Upload stores r under objectName and returns the public URL.
	Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (storedPath string, err error)
}

// Kind groups uploads by purpose; each kind accepts a fixed set of extensions.
type Kind string

const (
	KindCV           Kind = "cv"
	KindProfileImage Kind = "image"
	KindFavicon      Kind = "favicon"
	KindProject      Kind = "project"
)

var ErrUnsupportedKind = errors.New("unsupported upload kind")

var ErrUnsupportedType = errors.New("unsupported file type")

var allowed = map[Kind]map[string]bool{
	KindCV:           {".pdf": true, ".doc": true, ".docx": true},
	KindProfileImage: {".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true},
	KindFavicon:      {".ico": true, ".png": true, ".svg": true},
	KindProject:      {".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true},
}

var folders = map[Kind]string{
	KindCV:           "cv",
	KindProfileImage: "profiles",
	KindFavicon:      "favicons",
	KindProject:      "projects",
}

// ParseKind validates a kind taken from a URL parameter.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(s))
	if _, ok := allowed[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedKind, s)
	}
	return k, nil
}

// ObjectName builds a collision-free object path such as
// "projects/3f2a...9c.png" from the original filename.
func ObjectName(kind Kind, filename string) (string, error) {
	folder, ok := folders[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedKind, kind)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowed[kind][ext] {
		return "", fmt.Errorf("%w: %q for %s", ErrUnsupportedType, ext, kind)
	}
	return path.Join(folder, uuid.NewString()+ext), nil
}
