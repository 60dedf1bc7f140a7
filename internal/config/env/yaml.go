package env

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type rangeYAML struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type fileYAML struct {
	Generator struct {
		Slope                     rangeYAML `yaml:"slope"`
		Intercept                 rangeYAML `yaml:"intercept"`
		Coord                     rangeYAML `yaml:"coord"`
		Offset                    rangeYAML `yaml:"offset"`
		OnLineProbability         float64   `yaml:"on_line_probability"`
		NegativeOffsetProbability float64   `yaml:"negative_offset_probability"`
		ClampMode                 string    `yaml:"clamp_mode"`
		MaxAttempts               int       `yaml:"max_attempts"`
	} `yaml:"generator"`

	Graph struct {
		Size        int       `yaml:"size"`
		Padding     float64   `yaml:"padding"`
		Window      rangeYAML `yaml:"window"`
		GridStep    int       `yaml:"grid_step"`
		TickLength  float64   `yaml:"tick_length"`
		PointRadius float64   `yaml:"point_radius"`
		ShadowBlur  float64   `yaml:"shadow_blur"`

		Colors struct {
			Axis    string `yaml:"axis"`
			Grid    string `yaml:"grid"`
			Line    string `yaml:"line"`
			Point   string `yaml:"point"`
			Outline string `yaml:"outline"`
		} `yaml:"colors"`

		Widths struct {
			Grid    float64 `yaml:"grid"`
			Axis    float64 `yaml:"axis"`
			Line    float64 `yaml:"line"`
			Outline float64 `yaml:"outline"`
		} `yaml:"widths"`
	} `yaml:"graph"`

	Session struct {
		MaxSessions int `yaml:"max_sessions"`
	} `yaml:"session"`
}

func readYAML(path string) (*fileYAML, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var file fileYAML
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &file, nil
}

// parseHexColor разбирает цвета вида #rgb и #rrggbb
func parseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}

func (r rangeYAML) valid() bool {
	return r.Min < r.Max
}
