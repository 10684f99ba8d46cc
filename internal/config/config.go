package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/olivier-w/cord/internal/sim"
)

// Config is everything the program needs to start a simulation.
type Config struct {
	Sim sim.Params

	// World size in simulation units; the cord hangs AnchorHeight of the
	// way down, AnchorInset in from either side.
	Width, Height float64
	AnchorInset   float64
	AnchorHeight  float64

	Sound  bool
	Tone   float64 // Hz
	Volume float64 // 0..1

	SnapshotDir string
	SnapshotDPI float64 // pixels per world unit for PNG output
	LogFile     string
}

// Default is the classic 300x600 scene.
func Default() Config {
	return Config{
		Sim:          sim.DefaultParams(),
		Width:        300,
		Height:       600,
		AnchorInset:  10,
		AnchorHeight: 0.2,
		Tone:         220,
		Volume:       0.5,
		SnapshotDPI:  2,
	}
}

// Anchors returns the two fixed endpoints of the cord.
func (c Config) Anchors() (x1, y1, x2, y2 float64) {
	y := c.Height * c.AnchorHeight
	return c.AnchorInset, y, c.Width - c.AnchorInset, y
}

// NewCord builds a cord at rest between the configured anchors.
func (c Config) NewCord() *sim.Cord {
	x1, y1, x2, y2 := c.Anchors()
	return sim.New(c.Sim, x1, y1, x2, y2)
}

// Load reads overrides from the .env file at path (missing file is fine) and
// from the process environment. Environment variables win over the file.
func Load(path string) (Config, error) {
	vars := map[string]string{}
	if path != "" {
		fileVars, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read %s: %w", path, err)
		}
		for k, v := range fileVars {
			vars[k] = v
		}
	}
	for _, kv := range os.Environ() {
		k, v, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(k, envPrefix) {
			vars[k] = v
		}
	}
	return FromMap(vars)
}

const envPrefix = "CORD_"

// FromMap applies CORD_* overrides on top of Default and validates the result.
func FromMap(vars map[string]string) (Config, error) {
	c := Default()

	floats := map[string]*float64{
		"CORD_FPS":           &c.Sim.FrameRate,
		"CORD_SCALE":         &c.Sim.Scale,
		"CORD_GRAVITY":       &c.Sim.Gravity,
		"CORD_MASS":          &c.Sim.Mass,
		"CORD_STIFFNESS":     &c.Sim.Stiffness,
		"CORD_DAMPING":       &c.Sim.Damping,
		"CORD_MAX_SPEED":     &c.Sim.MaxSpeed,
		"CORD_TOLERANCE":     &c.Sim.Tolerance,
		"CORD_TOUCH_RADIUS":  &c.Sim.TouchRadius,
		"CORD_POINT_RADIUS":  &c.Sim.PointRadius,
		"CORD_WIDTH":         &c.Width,
		"CORD_HEIGHT":        &c.Height,
		"CORD_ANCHOR_INSET":  &c.AnchorInset,
		"CORD_ANCHOR_HEIGHT": &c.AnchorHeight,
		"CORD_TONE":          &c.Tone,
		"CORD_VOLUME":        &c.Volume,
		"CORD_SNAPSHOT_DPI":  &c.SnapshotDPI,
	}
	for _, key := range slices.Sorted(maps.Keys(floats)) {
		dst := floats[key]
		raw, ok := vars[key]
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", key, err)
		}
		*dst = v
	}

	if raw, ok := vars["CORD_SOUND"]; ok && raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("CORD_SOUND: %w", err)
		}
		c.Sound = v
	}
	if v, ok := vars["CORD_SNAPSHOT_DIR"]; ok {
		c.SnapshotDir = v
	}
	if v, ok := vars["CORD_LOG"]; ok {
		c.LogFile = v
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects constants the integrator cannot work with.
func (c Config) Validate() error {
	p := c.Sim
	switch {
	case p.FrameRate <= 0:
		return fmt.Errorf("frame rate must be positive, got %v", p.FrameRate)
	case p.Mass <= 0:
		return fmt.Errorf("mass must be positive, got %v", p.Mass)
	case p.Tolerance <= 0:
		return fmt.Errorf("tolerance must be positive, got %v", p.Tolerance)
	case p.Damping <= 0 || p.Damping > 1:
		return fmt.Errorf("damping must be in (0, 1], got %v", p.Damping)
	case p.MaxSpeed <= 0:
		return fmt.Errorf("max speed must be positive, got %v", p.MaxSpeed)
	case p.Stiffness < 0 || p.TouchRadius < 0 || p.PointRadius < 0:
		return errors.New("stiffness, touch radius and point radius must not be negative")
	case c.Width <= 2*c.AnchorInset || c.Height <= 0:
		return fmt.Errorf("world %vx%v too small for anchor inset %v", c.Width, c.Height, c.AnchorInset)
	case c.AnchorHeight < 0 || c.AnchorHeight > 1:
		return fmt.Errorf("anchor height must be a fraction of the world height, got %v", c.AnchorHeight)
	case c.Volume < 0 || c.Volume > 1:
		return fmt.Errorf("volume must be in [0, 1], got %v", c.Volume)
	case c.Sound && c.Tone <= 0:
		return fmt.Errorf("tone must be positive, got %v", c.Tone)
	case c.SnapshotDPI <= 0:
		return fmt.Errorf("snapshot dpi must be positive, got %v", c.SnapshotDPI)
	}
	return nil
}
