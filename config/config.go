package config

import (
	"encoding/json"
	"math"
	"os"
	"strings"
)

// Trace modes select the contour extractor.
const (
	TraceBorder  = "border"
	TraceIsoline = "isoline"
)

// Approximation modes for border tracing.
const (
	ApproxNone   = "none"
	ApproxSimple = "simple"
)

// Draw orderings.
const (
	OrderArea    = "area"
	OrderTopDown = "topdown"
)

// Config holds runtime configuration for line-art extraction, stroke planning
// and pointer pacing. Fields may be loaded from a JSON file; nothing is written back.
type Config struct {
	Debug bool `json:"debug"`

	// Edge extraction
	CannyLow     float64 `json:"canny_low"`
	CannyHigh    float64 `json:"canny_high"`
	BlurSigma    float64 `json:"blur_sigma"`
	DilateRadius float64 `json:"dilate_radius"`

	// Stroke planning
	Trace          string  `json:"trace"`
	Approx         string  `json:"approx"`
	MinContourArea float64 `json:"min_contour_area"`
	Order          string  `json:"order"`

	// Draw parameters (initial slider values)
	Speed     float64 `json:"speed"`
	Precision int     `json:"precision"`
	SettleMs  int     `json:"settle_ms"`
	StepMs    int     `json:"step_ms"`

	// Interaction
	StopKey      string `json:"stop_key"`
	PreviewTTLMs int    `json:"preview_ttl_ms"`
	PreviewColor string `json:"preview_color"`
}

// Parameter ranges exposed in the UI.
const (
	MinSpeed     = 0.1
	MaxSpeed     = 10.0
	MinPrecision = 1
	MaxPrecision = 10
)

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:          false,
		CannyLow:       30,
		CannyHigh:      100,
		BlurSigma:      1.1,
		DilateRadius:   0.5,
		Trace:          TraceBorder,
		Approx:         ApproxSimple,
		MinContourArea: 15,
		Order:          OrderArea,
		Speed:          1,
		Precision:      5,
		SettleMs:       100,
		StepMs:         50,
		StopKey:        "SPACE",
		PreviewTTLMs:   100,
		PreviewColor:   "#d62828",
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.CannyLow < 0 {
		c.CannyLow = 30
	}
	if c.CannyHigh <= 0 {
		c.CannyHigh = 100
	}
	if c.CannyLow > c.CannyHigh {
		c.CannyLow, c.CannyHigh = c.CannyHigh, c.CannyLow
	}
	if c.BlurSigma < 0 {
		c.BlurSigma = 1.1
	}
	if c.DilateRadius < 0 {
		c.DilateRadius = 0
	}
	c.Trace = strings.ToLower(strings.TrimSpace(c.Trace))
	if c.Trace != TraceBorder && c.Trace != TraceIsoline {
		c.Trace = TraceBorder
	}
	c.Approx = strings.ToLower(strings.TrimSpace(c.Approx))
	if c.Approx != ApproxNone && c.Approx != ApproxSimple {
		c.Approx = ApproxSimple
	}
	if c.MinContourArea < 0 {
		c.MinContourArea = 0
	}
	c.Order = strings.ToLower(strings.TrimSpace(c.Order))
	if c.Order != OrderArea && c.Order != OrderTopDown {
		c.Order = OrderArea
	}
	c.Speed = ClampSpeed(c.Speed)
	c.Precision = ClampPrecision(c.Precision)
	if c.SettleMs < 0 {
		c.SettleMs = 100
	}
	if c.StepMs < 0 {
		c.StepMs = 50
	}
	if strings.TrimSpace(c.StopKey) == "" {
		c.StopKey = "SPACE"
	}
	if c.PreviewTTLMs <= 0 {
		c.PreviewTTLMs = 100
	}
	if strings.TrimSpace(c.PreviewColor) == "" {
		c.PreviewColor = "#d62828"
	}
	return nil
}

// ClampSpeed limits a speed multiplier to [MinSpeed, MaxSpeed]. NaN becomes
// the default speed of 1.
func ClampSpeed(v float64) float64 {
	if math.IsNaN(v) {
		return 1
	}
	if v < MinSpeed {
		return MinSpeed
	}
	if v > MaxSpeed {
		return MaxSpeed
	}
	return v
}

// ClampPrecision limits a point stride to [MinPrecision, MaxPrecision].
func ClampPrecision(v int) int {
	if v < MinPrecision {
		return MinPrecision
	}
	if v > MaxPrecision {
		return MaxPrecision
	}
	return v
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}
