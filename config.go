package silk

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by LoadConfig for unsupported file extensions.
var ErrUnknownFormat = errors.New("silk: unknown config format")

// Format identifies a config file encoding.
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
)

// FormatForPath picks a Format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// WindowConfig controls the window and the presentation layer.
type WindowConfig struct {
	Title  string `toml:"title" yaml:"title"`
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	// RenderMode is "shaded", "wireframe" or "points".
	RenderMode    string `toml:"render_mode" yaml:"render_mode"`
	ShowHUD       bool   `toml:"show_hud" yaml:"show_hud"`
	ScreenshotDir string `toml:"screenshot_dir" yaml:"screenshot_dir"`
	Debug         bool   `toml:"debug" yaml:"debug"`
}

// SimConfig controls fixed-step timing.
type SimConfig struct {
	PhysicsStep float32 `toml:"physics_step" yaml:"physics_step"`
	MaxFrame    float32 `toml:"max_frame" yaml:"max_frame"`
}

// WindConfig controls the gust behavior of the demo wind.
type WindConfig struct {
	GustPower    float32 `toml:"gust_power" yaml:"gust_power"`
	GustDuration float32 `toml:"gust_duration" yaml:"gust_duration"`
	Paused       bool    `toml:"paused" yaml:"paused"`
}

// Config is the complete application configuration.
type Config struct {
	// Preset names a material preset applied before the cloth.material
	// table, so individual coefficients can be overridden.
	Preset string       `toml:"preset" yaml:"preset"`
	Window WindowConfig `toml:"window" yaml:"window"`
	Cloth  ClothConfig  `toml:"cloth" yaml:"cloth"`
	Sim    SimConfig    `toml:"sim" yaml:"sim"`
	Wind   WindConfig   `toml:"wind" yaml:"wind"`
	Camera CameraConfig `toml:"camera" yaml:"camera"`
}

// DefaultConfig returns the settings of the stock silk demo.
func DefaultConfig() Config {
	return Config{
		Preset: Silk.Name,
		Window: WindowConfig{
			Title:         "Silk Simulation",
			Width:         1280,
			Height:        720,
			RenderMode:    "shaded",
			ShowHUD:       true,
			ScreenshotDir: "screenshots",
		},
		Cloth: DefaultClothConfig(),
		Sim: SimConfig{
			PhysicsStep: DefaultPhysicsStep,
			MaxFrame:    DefaultMaxFrame,
		},
		Wind: WindConfig{
			GustPower:    DefaultGustPower,
			GustDuration: DefaultGustDuration,
		},
		Camera: DefaultCameraConfig(),
	}
}

// Validate checks every section.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if _, ok := ParseRenderMode(c.Window.RenderMode); !ok {
		return fmt.Errorf("%w: render mode %q", ErrInvalidConfig, c.Window.RenderMode)
	}
	if c.Sim.PhysicsStep <= 0 {
		return fmt.Errorf("%w: physics step %v must be positive", ErrInvalidConfig, c.Sim.PhysicsStep)
	}
	if c.Sim.MaxFrame < c.Sim.PhysicsStep {
		return fmt.Errorf("%w: max frame %v shorter than physics step %v",
			ErrInvalidConfig, c.Sim.MaxFrame, c.Sim.PhysicsStep)
	}
	return c.Cloth.Validate()
}

// LoadConfig reads and validates a TOML or YAML config file. Keys missing
// from the file keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("silk: read config: %w", err)
	}
	cfg, err := ParseConfig(data, format)
	if err != nil {
		return Config{}, fmt.Errorf("silk: %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes data on top of DefaultConfig and validates the result.
// Unknown keys are rejected.
func ParseConfig(data []byte, format Format) (Config, error) {
	cfg := DefaultConfig()

	// The preset must be known before the material table is decoded over it.
	var head struct {
		Preset string `toml:"preset" yaml:"preset"`
	}
	if err := decode(data, format, &head, false); err != nil {
		return Config{}, err
	}
	if head.Preset != "" {
		m, err := MaterialByName(head.Preset)
		if err != nil {
			return Config{}, err
		}
		cfg.Cloth.Material = m
	}

	if err := decode(data, format, &cfg, true); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(data []byte, format Format, v any, strict bool) error {
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		if strict {
			dec.DisallowUnknownFields()
		}
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("decode toml: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(strict)
		// An empty document decodes to io.EOF; keep the defaults.
		if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return fmt.Errorf("%w: format %d", ErrUnknownFormat, format)
	}
	return nil
}

// MarshalConfig encodes cfg in the given format.
func MarshalConfig(cfg Config, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		return toml.Marshal(cfg)
	case FormatYAML:
		return yaml.Marshal(cfg)
	default:
		return nil, fmt.Errorf("%w: format %d", ErrUnknownFormat, format)
	}
}
