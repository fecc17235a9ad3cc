package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode %s: %v", path, err)
	}
}

func TestOpenImages_Directory(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "page-2.png"), 30, 40)
	writeTestPNG(t, filepath.Join(dir, "page-1.png"), 10, 20)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	src, err := OpenImages(dir)
	if err != nil {
		t.Fatalf("OpenImages failed: %v", err)
	}
	defer src.Close()

	if src.PageCount() != 2 {
		t.Fatalf("expected 2 pages (non-image file skipped), got %d", src.PageCount())
	}

	// Lexical order: page-1 first.
	img, err := src.Render(0, DefaultDPI)
	if err != nil {
		t.Fatalf("Render(0) failed: %v", err)
	}
	if img.Bounds().Dx() != 10 {
		t.Errorf("first page width %d, want 10 (page-1.png)", img.Bounds().Dx())
	}
}

func TestOpenImages_Empty(t *testing.T) {
	if _, err := OpenImages(t.TempDir()); err == nil {
		t.Error("expected error for directory without images")
	}
}

func TestImageSource_IndexOutOfRange(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "page.png"), 10, 10)

	src, err := OpenImages(dir)
	if err != nil {
		t.Fatalf("OpenImages failed: %v", err)
	}
	if _, err := src.Render(5, DefaultDPI); err == nil {
		t.Error("expected error for out-of-range page index")
	}
	if _, err := src.Render(-1, DefaultDPI); err == nil {
		t.Error("expected error for negative page index")
	}
}
