package media

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"sproutly/internal/models"
)

// ImageTypes are the extensions offered by the file picker
var ImageTypes = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp"}

var ErrNotAFile = errors.New("not a regular file")

// Resolve turns a picked path into an image reference. The file must exist;
// its contents are never read.
func Resolve(path string) (models.ImageRef, error) {
	if strings.TrimSpace(path) == "" {
		return models.ImageRef{}, fmt.Errorf("resolve image: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return models.ImageRef{}, fmt.Errorf("resolve image path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return models.ImageRef{}, fmt.Errorf("stat image: %w", err)
	}
	if info.IsDir() {
		return models.ImageRef{}, fmt.Errorf("resolve image %s: %w", abs, ErrNotAFile)
	}
	return models.ImageRef{
		Path: abs,
		Name: info.Name(),
		Size: info.Size(),
	}, nil
}

// Describe renders a one-line preview of a reference
func Describe(ref models.ImageRef) string {
	if ref.Path == "" {
		return ""
	}
	return fmt.Sprintf("%s · %s", ref.Name, humanize.Bytes(uint64(max(ref.Size, 0))))
}
