// Package corpus discovers the image files of a labeling project.
package corpus

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// ErrEmptyCorpus indicates the folder tree contains no supported images.
var ErrEmptyCorpus = errors.New("no supported image files found")

// supportedExtensions is the fixed allow-list of image formats, matched
// case-insensitively against file extensions.
var supportedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".gif":  true,
	".tiff": true,
	".webp": true,
}

// IsSupportedFormat reports whether the path has a supported image extension.
func IsSupportedFormat(path string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}

// SupportedExtensions returns the allow-list sorted, with the leading dot.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(supportedExtensions))
	for ext := range supportedExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Scan recursively enumerates supported image files under root and returns
// their absolute paths in lexicographic order, so navigation order is
// reproducible across runs. File contents are never opened here; decode
// failures are handled at display time.
func Scan(root string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve folder: %w", err)
	}

	var images []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && IsSupportedFormat(path) {
			images = append(images, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", absRoot, err)
	}

	if len(images) == 0 {
		return nil, fmt.Errorf("%s: %w", absRoot, ErrEmptyCorpus)
	}

	sort.Strings(images)
	return images, nil
}
