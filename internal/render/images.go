package render

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"
	"path/filepath"
	"sort"
)

// ImageSource serves pre-scanned page image files as document pages.
// Pages are ordered by file name.
type ImageSource struct {
	paths []string
}

// OpenImages builds a source from image files. Each path may be a file or a
// directory; directories contribute their image files (by extension) in
// lexical order. Files are decoded lazily at render time.
func OpenImages(paths ...string) (*ImageSource, error) {
	var pages []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", p, err)
		}
		if !info.IsDir() {
			pages = append(pages, p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", p, err)
		}
		for _, e := range entries {
			if e.IsDir() || !isImageFile(e.Name()) {
				continue
			}
			pages = append(pages, filepath.Join(p, e.Name()))
		}
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no page images found in %v", paths)
	}
	sort.Strings(pages)
	return &ImageSource{paths: pages}, nil
}

// PageCount returns the number of page images.
func (s *ImageSource) PageCount() int {
	return len(s.paths)
}

// Render decodes page index. The dpi argument is ignored; scanned images
// are used at their native resolution.
func (s *ImageSource) Render(index int, dpi int) (image.Image, error) {
	if err := checkIndex(index, len(s.paths)); err != nil {
		return nil, err
	}

	f, err := os.Open(s.paths[index])
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.paths[index], err)
	}
	return img, nil
}

// Close is a no-op; image files are opened per render.
func (s *ImageSource) Close() error {
	return nil
}

func isImageFile(name string) bool {
	switch filepath.Ext(name) {
	case ".png", ".jpg", ".jpeg", ".gif":
		return true
	}
	return false
}
