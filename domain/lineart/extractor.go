package lineart

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"

	"github.com/soocke/autodraw-go/config"
)

// Options tunes the edge extraction pipeline.
type Options struct {
	Low          float64 // Canny low threshold (0..1020 L1 gradient scale)
	High         float64 // Canny high threshold
	BlurSigma    float64 // Gaussian sigma; 0 disables blurring
	DilateRadius float64 // bild radius; 0.5 gives a 2x2 window, 0 disables dilation
}

// OptionsFromConfig copies the extraction fields out of cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return Options{
		Low:          cfg.CannyLow,
		High:         cfg.CannyHigh,
		BlurSigma:    cfg.BlurSigma,
		DilateRadius: cfg.DilateRadius,
	}
}

// Extractor converts colour bitmaps into binary line-art masks.
type Extractor struct {
	opts   Options
	logger *slog.Logger
}

// NewExtractor builds an extractor from configuration.
func NewExtractor(cfg *config.Config, logger *slog.Logger) *Extractor {
	return &Extractor{opts: OptionsFromConfig(cfg), logger: logger}
}

// NewExtractorWithOptions builds an extractor from explicit options.
func NewExtractorWithOptions(opts Options, logger *slog.Logger) *Extractor {
	return &Extractor{opts: opts, logger: logger}
}

// Extract returns a 0/255 mask of the same size as img where 255 marks line pixels.
// Steps: luminance, Gaussian blur, Canny, one dilation pass.
func (e *Extractor) Extract(img image.Image) (*image.Gray, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	start := time.Now()
	gray := imaging.Grayscale(img)
	smoothed := gray
	if e.opts.BlurSigma > 0 {
		smoothed = imaging.Blur(gray, e.opts.BlurSigma)
	}
	if e.opts.Low > e.opts.High {
		return nil, fmt.Errorf("lineart: canny low %.1f above high %.1f", e.opts.Low, e.opts.High)
	}
	edges := Canny(smoothed, e.opts.Low, e.opts.High)
	mask := edges
	if e.opts.DilateRadius > 0 {
		mask = segment.Threshold(effect.Dilate(edges, e.opts.DilateRadius), 128)
	}
	if e.logger != nil {
		e.logger.Debug("line art extracted",
			"width", mask.Bounds().Dx(),
			"height", mask.Bounds().Dy(),
			"on_pixels", CountOn(mask),
			"elapsed", time.Since(start),
		)
	}
	return mask, nil
}

// CountOn returns the number of non-zero pixels in mask.
func CountOn(mask *image.Gray) int {
	if mask == nil {
		return 0
	}
	n := 0
	b := mask.Bounds()
	for y := 0; y < b.Dy(); y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+b.Dx()]
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}
