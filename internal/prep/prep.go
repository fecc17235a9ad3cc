// Package prep conditions scanned page images before OCR.
//
// Order-sheet scans vary a lot in exposure: faxes and re-photographed sheets
// come in washed out, while clean exports need no help. The package measures
// page luminance, boosts contrast only when the measurement says the scan is
// flat, and optionally sharpens. Over-processing a clean scan hurts
// Tesseract more than it helps, so every step is gated or opt-in.
package prep

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Options control preprocessing.
type Options struct {
	// Grayscale converts the page before OCR. Tesseract binarizes
	// internally, but a controlled grayscale conversion beats its handling
	// of colored letterheads.
	Grayscale bool `yaml:"grayscale"`

	// MinContrast is the luminance spread below which the page is
	// considered washed out and contrast is boosted.
	MinContrast float64 `yaml:"min_contrast"`

	// ContrastBoost is the adjustment applied to washed-out pages
	// (0 disables boosting).
	ContrastBoost float64 `yaml:"contrast_boost"`

	// Sharpen applies a sharpening filter after the other steps. Helps
	// slightly blurred photographs of sheets, harmful on clean renders.
	Sharpen bool `yaml:"sharpen"`
}

// DefaultOptions returns the preprocessing used for typical order-sheet
// scans.
func DefaultOptions() Options {
	return Options{
		Grayscale:     true,
		MinContrast:   0.18,
		ContrastBoost: 0.25,
		Sharpen:       false,
	}
}

// Quality summarizes sampled page luminance.
type Quality struct {
	// MeanLuminance is the average CIE L* of the sampled pixels, 0 to 1.
	MeanLuminance float64 `json:"mean_luminance"`

	// Contrast is the standard deviation of sampled luminance. Text pages
	// are bimodal (dark ink on light paper), so healthy scans measure well
	// above 0.2.
	Contrast float64 `json:"contrast"`
}

// Assess samples the image on a coarse grid and reports its luminance
// statistics.
func Assess(img image.Image) Quality {
	bounds := img.Bounds()
	stepX := bounds.Dx() / 64
	if stepX < 1 {
		stepX = 1
	}
	stepY := bounds.Dy() / 64
	if stepY < 1 {
		stepY = 1
	}

	var values []float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y += stepY {
		for x := bounds.Min.X; x < bounds.Max.X; x += stepX {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				continue
			}
			l, _, _ := c.Lab()
			values = append(values, l)
		}
	}
	if len(values) == 0 {
		return Quality{}
	}

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))

	return Quality{MeanLuminance: mean, Contrast: math.Sqrt(variance)}
}

// Prepare applies the configured preprocessing and returns the conditioned
// image along with the quality measured before conditioning.
func Prepare(img image.Image, opts Options) (image.Image, Quality) {
	q := Assess(img)

	out := img
	if opts.Grayscale {
		out = imaging.Grayscale(out)
	}
	if opts.ContrastBoost > 0 && q.Contrast < opts.MinContrast {
		out = adjust.Contrast(out, opts.ContrastBoost)
	}
	if opts.Sharpen {
		out = effect.Sharpen(out)
	}
	return out, q
}
