package gesture

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is returned by Config.Validate and NewRecognizer.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the thresholds used by the detectors. Distances are in the
// host's pointer units; converting them from physical size is up to the
// caller.
type Config struct {
	TapSlop          float64       `toml:"tap_slop"`
	DoubleTapSlop    float64       `toml:"double_tap_slop"`
	DoubleTapTimeout time.Duration `toml:"double_tap_timeout"`
	DragSlop         float64       `toml:"drag_slop"`
	MinFlingVelocity float64       `toml:"min_fling_velocity"` // units per second
	MaxFlingVelocity float64       `toml:"max_fling_velocity"` // units per second
	ScaleSpanSlop    float64       `toml:"scale_span_slop"`
	RotationSlop     float64       `toml:"rotation_slop"` // radians

	// Gestures lists the kinds enabled when the recognizer is created.
	Gestures []Kind `toml:"gestures"`

	// NewVelocityTracker creates the tracker used by fling detection.
	// Nil means NewVelocityTracker.
	NewVelocityTracker func() VelocityTracker `toml:"-"`
}

const defaultTouchSlop = 8

// DefaultConfig returns thresholds matching common touch-screen defaults at
// a density of one unit per pixel.
func DefaultConfig() Config {
	return Config{
		TapSlop:          defaultTouchSlop,
		DoubleTapSlop:    100,
		DoubleTapTimeout: 300 * time.Millisecond,
		DragSlop:         defaultTouchSlop,
		MinFlingVelocity: 50,
		MaxFlingVelocity: 8000,
		ScaleSpanSlop:    defaultTouchSlop * 2,
		RotationSlop:     math.Pi / 18,
		Gestures:         []Kind{KindDoubleTap, KindDrag, KindScale, KindRotate},
	}
}

// ParseConfig decodes TOML on top of DefaultConfig, so missing keys keep
// their defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("gesture: parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("gesture: parse config: %w: unknown key %q", ErrInvalidConfig, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a TOML config file. See ParseConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("gesture: load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("gesture: load config %s: %w: unknown key %q", path, ErrInvalidConfig, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode writes the config as TOML.
func (c Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("gesture: encode config: %w", err)
	}
	return nil
}

// Validate reports the first inconsistent threshold.
func (c Config) Validate() error {
	slops := []struct {
		name string
		v    float64
	}{
		{"tap_slop", c.TapSlop},
		{"double_tap_slop", c.DoubleTapSlop},
		{"drag_slop", c.DragSlop},
		{"min_fling_velocity", c.MinFlingVelocity},
		{"max_fling_velocity", c.MaxFlingVelocity},
		{"scale_span_slop", c.ScaleSpanSlop},
		{"rotation_slop", c.RotationSlop},
	}
	for _, s := range slops {
		if s.v < 0 || math.IsNaN(s.v) {
			return fmt.Errorf("gesture: %w: %s must be >= 0, got %v", ErrInvalidConfig, s.name, s.v)
		}
	}
	if c.DoubleTapTimeout <= 0 {
		return fmt.Errorf("gesture: %w: double_tap_timeout must be > 0, got %v", ErrInvalidConfig, c.DoubleTapTimeout)
	}
	if c.MaxFlingVelocity < c.MinFlingVelocity {
		return fmt.Errorf("gesture: %w: max_fling_velocity %v is below min_fling_velocity %v",
			ErrInvalidConfig, c.MaxFlingVelocity, c.MinFlingVelocity)
	}
	for _, k := range c.Gestures {
		if k >= kindCount {
			return fmt.Errorf("gesture: %w: %w: %d", ErrInvalidConfig, ErrUnknownKind, uint8(k))
		}
	}
	return nil
}
