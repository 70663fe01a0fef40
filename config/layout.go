package config

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
)

//go:embed layout.toml
var defaultLayout string

// Layout describes the dashboard controls
type Layout struct {
	Title  string       `toml:"title"`
	Sites  []SiteOption `toml:"sites"`
	Slider Slider       `toml:"slider"`
}

// SiteOption is one entry of the launch site dropdown
type SiteOption struct {
	Label string `toml:"label" json:"label"`
	Value string `toml:"value" json:"value"`
}

// Slider describes the payload range control
type Slider struct {
	Min   float64   `toml:"min"`
	Max   float64   `toml:"max"`
	Step  float64   `toml:"step"`
	Marks []float64 `toml:"-"`
}

// DefaultLayout returns the built-in layout
func DefaultLayout() Layout {
	layout, err := decodeLayout(defaultLayout)
	if err != nil {
		panic(fmt.Sprintf("embedded layout: %v", err))
	}
	return layout
}

// LoadLayout reads a TOML layout from path. An empty path returns the built-in layout.
func LoadLayout(path string) (Layout, error) {
	if path == "" {
		return DefaultLayout(), nil
	}
	var layout Layout
	if _, err := toml.DecodeFile(path, &layout); err != nil {
		return Layout{}, fmt.Errorf("failed to decode layout: %w", err)
	}
	if err := layout.finish(); err != nil {
		return Layout{}, err
	}
	return layout, nil
}

func decodeLayout(data string) (Layout, error) {
	var layout Layout
	if _, err := toml.Decode(data, &layout); err != nil {
		return Layout{}, fmt.Errorf("failed to decode layout: %w", err)
	}
	if err := layout.finish(); err != nil {
		return Layout{}, err
	}
	return layout, nil
}

// finish validates the slider and derives its marks
func (l *Layout) finish() error {
	if len(l.Sites) == 0 {
		return fmt.Errorf("layout has no site options")
	}
	s := &l.Slider
	if s.Max < s.Min {
		return fmt.Errorf("slider max %v below min %v", s.Max, s.Min)
	}
	if s.Step <= 0 {
		return fmt.Errorf("slider step must be positive, got %v", s.Step)
	}

	s.Marks = s.Marks[:0]
	for v := s.Min; v < s.Max; v += s.Step {
		s.Marks = append(s.Marks, v)
	}
	s.Marks = append(s.Marks, s.Max)
	return nil
}
