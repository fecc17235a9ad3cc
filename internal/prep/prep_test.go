package prep

import (
	"image"
	"image/color"
	"testing"
)

func fillImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestAssess_FlatImageHasNoContrast(t *testing.T) {
	img := fillImage(100, 100, color.Gray{Y: 128})

	q := Assess(img)
	if q.Contrast > 0.01 {
		t.Errorf("flat image contrast = %.3f, want ~0", q.Contrast)
	}
	if q.MeanLuminance <= 0 || q.MeanLuminance >= 1 {
		t.Errorf("mean luminance %.3f out of (0,1)", q.MeanLuminance)
	}
}

func TestAssess_TextLikeImageHasContrast(t *testing.T) {
	// Half white paper, half black ink: strongly bimodal.
	img := fillImage(100, 100, color.White)
	for y := 0; y < 100; y++ {
		for x := 0; x < 50; x++ {
			img.Set(x, y, color.Black)
		}
	}

	q := Assess(img)
	if q.Contrast < 0.3 {
		t.Errorf("bimodal image contrast = %.3f, want >= 0.3", q.Contrast)
	}
}

func TestPrepare_PreservesDimensions(t *testing.T) {
	img := fillImage(120, 80, color.White)

	opts := DefaultOptions()
	opts.Sharpen = true
	out, _ := Prepare(img, opts)

	if out.Bounds().Dx() != 120 || out.Bounds().Dy() != 80 {
		t.Errorf("prepared image bounds %v, want 120x80", out.Bounds())
	}
}

func TestPrepare_NoOpOptions(t *testing.T) {
	img := fillImage(10, 10, color.White)

	out, q := Prepare(img, Options{})
	if out != image.Image(img) {
		t.Error("no-op options should return the input image unchanged")
	}
	if q.MeanLuminance < 0.9 {
		t.Errorf("white page mean luminance %.3f, want near 1", q.MeanLuminance)
	}
}
