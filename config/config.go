// Package config loads the editor configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/phanxgames/bezier"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth         = 800
	DefaultHeight        = 600
	DefaultTitle         = "Cubic Bezier Curve"
	DefaultTPS           = 60
	DefaultScreenshotDir = "screenshots"
)

type Config struct {
	Window        WindowConfig      `yaml:"window"`
	Curve         CurveConfig       `yaml:"curve"`
	Interaction   InteractionConfig `yaml:"interaction"`
	Animation     AnimationConfig   `yaml:"animation"`
	Style         StyleConfig       `yaml:"style"`
	ScreenshotDir string            `yaml:"screenshot_dir"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type CurveConfig struct {
	ControlPoints []Point `yaml:"control_points"`
	Samples       int     `yaml:"samples"`
}

type InteractionConfig struct {
	HitRadius float64 `yaml:"hit_radius"`
}

type AnimationConfig struct {
	Enabled       bool    `yaml:"enabled"`
	Speed         float64 `yaml:"speed"`
	Bound         float64 `yaml:"bound"`
	ResetDuration float64 `yaml:"reset_duration"`
}

type Color struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
	A float64 `yaml:"a"`
}

type StyleConfig struct {
	CurveColor Color   `yaml:"curve_color"`
	PointColor Color   `yaml:"point_color"`
	ClearColor Color   `yaml:"clear_color"`
	CurveWidth float64 `yaml:"curve_width"`
	PointSize  float64 `yaml:"point_size"`
}

func DefaultConfig() *Config {
	points := make([]Point, 0, bezier.NumControlPoints)
	for _, p := range bezier.DefaultControlPoints {
		points = append(points, Point{X: p.X, Y: p.Y})
	}
	st := bezier.DefaultStyle()
	return &Config{
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  DefaultTitle,
			TPS:    DefaultTPS,
		},
		Curve: CurveConfig{
			ControlPoints: points,
			Samples:       bezier.DefaultSamples,
		},
		Interaction: InteractionConfig{HitRadius: bezier.DefaultHitRadius},
		Animation: AnimationConfig{
			Speed:         bezier.DefaultAnimationSpeed,
			Bound:         bezier.DefaultAnimationBound,
			ResetDuration: bezier.DefaultResetDuration,
		},
		Style: StyleConfig{
			CurveColor: fromColor(st.CurveColor),
			PointColor: fromColor(st.PointColor),
			ClearColor: fromColor(st.ClearColor),
			CurveWidth: st.CurveWidth,
			PointSize:  st.PointSize,
		},
		ScreenshotDir: DefaultScreenshotDir,
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values. The result is validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d: must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("window tps %d: must be positive", c.Window.TPS))
	}
	if n := len(c.Curve.ControlPoints); n != bezier.NumControlPoints {
		errs = append(errs, fmt.Errorf("curve control_points: got %d, want %d", n, bezier.NumControlPoints))
	}
	for i, p := range c.Curve.ControlPoints {
		if p.X < -1 || p.X > 1 || p.Y < -1 || p.Y > 1 {
			errs = append(errs, fmt.Errorf("curve control_points[%d] (%v, %v): outside [-1, 1]", i, p.X, p.Y))
		}
	}
	if c.Curve.Samples < 2 {
		errs = append(errs, fmt.Errorf("curve samples %d: must be at least 2", c.Curve.Samples))
	}
	if c.Interaction.HitRadius <= 0 {
		errs = append(errs, fmt.Errorf("interaction hit_radius %v: must be positive", c.Interaction.HitRadius))
	}
	if c.Animation.Speed < 0 {
		errs = append(errs, fmt.Errorf("animation speed %v: must not be negative", c.Animation.Speed))
	}
	if c.Animation.Bound <= 0 || c.Animation.Bound > 1 {
		errs = append(errs, fmt.Errorf("animation bound %v: must be in (0, 1]", c.Animation.Bound))
	}
	if c.Style.CurveWidth <= 0 || c.Style.PointSize <= 0 {
		errs = append(errs, errors.New("style curve_width and point_size: must be positive"))
	}
	return errors.Join(errs...)
}

// EditorConfig converts the file layout into the editor's configuration.
// Call Validate first; extra control points are ignored.
func (c *Config) EditorConfig() bezier.EditorConfig {
	var points [bezier.NumControlPoints]bezier.Vec2
	for i := 0; i < len(points) && i < len(c.Curve.ControlPoints); i++ {
		p := c.Curve.ControlPoints[i]
		points[i] = bezier.Vec2{X: p.X, Y: p.Y}
	}
	return bezier.EditorConfig{
		ControlPoints:  points,
		Samples:        c.Curve.Samples,
		HitRadius:      c.Interaction.HitRadius,
		AnimationSpeed: c.Animation.Speed,
		AnimationBound: c.Animation.Bound,
		Animate:        c.Animation.Enabled,
		ResetDuration:  float32(c.Animation.ResetDuration),
		Width:          c.Window.Width,
		Height:         c.Window.Height,
		Style: bezier.Style{
			CurveColor: c.Style.CurveColor.toColor(),
			PointColor: c.Style.PointColor.toColor(),
			ClearColor: c.Style.ClearColor.toColor(),
			CurveWidth: c.Style.CurveWidth,
			PointSize:  c.Style.PointSize,
		},
	}
}

func fromColor(c bezier.Color) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (c Color) toColor() bezier.Color {
	return bezier.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
