// Package config reads the optional elastic.yaml file that tunes the
// elastic list engine without recompiling the embedding app.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-elastic/elasticlist/pkg/animation"
	"github.com/go-elastic/elasticlist/pkg/elastic"
)

// Config represents the optional elastic.yaml configuration.
type Config struct {
	Gesture GestureConfig `yaml:"gesture"`
	Header  HeaderConfig  `yaml:"header"`
	Footer  FooterConfig  `yaml:"footer"`
}

// GestureConfig contains drag and springback settings.
type GestureConfig struct {
	Damping      float64 `yaml:"damping,omitempty"`
	SpringbackMS int     `yaml:"springback_ms,omitempty"`
	Curve        string  `yaml:"curve,omitempty"`
}

// HeaderConfig contains update header settings.
type HeaderConfig struct {
	Enabled   *bool  `yaml:"enabled,omitempty"`
	Alignment string `yaml:"alignment,omitempty"`
}

// FooterConfig contains load footer settings.
type FooterConfig struct {
	Enabled   *bool  `yaml:"enabled,omitempty"`
	Alignment string `yaml:"alignment,omitempty"`
	Action    string `yaml:"action,omitempty"`
}

// LoadOptional reads elastic.yaml from dir if present. A missing file
// is not an error and yields the zero Config.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "elastic.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read elastic.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse elastic.yaml: %w", err)
	}

	return &cfg, nil
}

// Options converts the gesture section into controller options.
func (c *Config) Options() (*elastic.Options, error) {
	if c.Gesture.Damping < 0 || c.Gesture.Damping > 1 {
		return nil, fmt.Errorf("gesture.damping must be in [0, 1], got %v", c.Gesture.Damping)
	}
	if c.Gesture.SpringbackMS < 0 {
		return nil, fmt.Errorf("gesture.springback_ms must not be negative, got %d", c.Gesture.SpringbackMS)
	}
	curve, err := parseCurve(c.Gesture.Curve)
	if err != nil {
		return nil, fmt.Errorf("gesture.curve: %w", err)
	}
	return &elastic.Options{
		Damping:            c.Gesture.Damping,
		SpringbackDuration: time.Duration(c.Gesture.SpringbackMS) * time.Millisecond,
		SpringbackCurve:    curve,
	}, nil
}

// Apply pushes the header and footer sections onto a controller.
func (c *Config) Apply(ctrl *elastic.Controller) error {
	if c.Header.Enabled != nil {
		if err := ctrl.EnableUpdateHeader(*c.Header.Enabled); err != nil {
			return err
		}
	}
	if c.Header.Alignment != "" {
		align, err := parseAlignment(c.Header.Alignment)
		if err != nil {
			return fmt.Errorf("header.alignment: %w", err)
		}
		ctrl.UpdateHeader().SetAlignment(align)
	}

	if c.Footer.Enabled != nil {
		ctrl.EnableLoadFooter(*c.Footer.Enabled)
	}
	if c.Footer.Alignment != "" {
		align, err := parseAlignment(c.Footer.Alignment)
		if err != nil {
			return fmt.Errorf("footer.alignment: %w", err)
		}
		ctrl.LoadFooter().SetAlignment(align)
	}
	if c.Footer.Action != "" {
		action, err := parseAction(c.Footer.Action)
		if err != nil {
			return fmt.Errorf("footer.action: %w", err)
		}
		if err := ctrl.LoadFooter().SetLoadAction(action); err != nil {
			return err
		}
	}
	return nil
}

func parseAlignment(s string) (elastic.VerticalAlignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return elastic.AlignTop, nil
	case "center":
		return elastic.AlignCenter, nil
	case "bottom":
		return elastic.AlignBottom, nil
	}
	return 0, fmt.Errorf("unknown alignment %q (want top, center or bottom)", s)
}

func parseCurve(s string) (animation.Curve, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "decelerate":
		return animation.DecelerateCurve, nil
	case "linear":
		return animation.LinearCurve, nil
	case "ease-in-out":
		return animation.EaseInOutCurve, nil
	}
	return nil, fmt.Errorf("unknown curve %q (want decelerate, linear or ease-in-out)", s)
}

func parseAction(s string) (elastic.LoadAction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return elastic.AutoLoad, nil
	case "release":
		return elastic.ReleaseToLoad, nil
	case "click":
		return elastic.ClickToLoad, nil
	}
	return 0, fmt.Errorf("unknown load action %q (want auto, release or click)", s)
}
