package env

import (
	"errors"
	"fmt"
	"image/color"
	"linecheck/internal/config"
)

type graphConfig struct {
	size        int
	padding     float64
	window      rangeYAML
	gridStep    int
	tickLength  float64
	pointRadius float64
	shadowBlur  float64

	axisColor, gridColor, lineColor, pointColor, outlineColor color.RGBA

	gridWidth, axisWidth, lineWidth, outlineWidth float64
}

func NewGraphConfigFromYAML(path string) (config.GraphConfig, error) {
	file, err := readYAML(path)
	if err != nil {
		return nil, err
	}
	g := file.Graph

	if g.Size <= 0 {
		return nil, errors.New("graph.size must be positive")
	}
	if g.Padding < 0 || 2*g.Padding >= float64(g.Size) {
		return nil, fmt.Errorf("graph.padding %v does not fit size %d", g.Padding, g.Size)
	}
	if !g.Window.valid() {
		return nil, errors.New("graph.window: min must be less than max")
	}
	if g.GridStep <= 0 {
		return nil, errors.New("graph.grid_step must be positive")
	}

	cfg := &graphConfig{
		size:         g.Size,
		padding:      g.Padding,
		window:       g.Window,
		gridStep:     g.GridStep,
		tickLength:   g.TickLength,
		pointRadius:  g.PointRadius,
		shadowBlur:   g.ShadowBlur,
		gridWidth:    g.Widths.Grid,
		axisWidth:    g.Widths.Axis,
		lineWidth:    g.Widths.Line,
		outlineWidth: g.Widths.Outline,
	}

	colors := []struct {
		raw string
		dst *color.RGBA
	}{
		{g.Colors.Axis, &cfg.axisColor},
		{g.Colors.Grid, &cfg.gridColor},
		{g.Colors.Line, &cfg.lineColor},
		{g.Colors.Point, &cfg.pointColor},
		{g.Colors.Outline, &cfg.outlineColor},
	}
	for _, c := range colors {
		parsed, err := parseHexColor(c.raw)
		if err != nil {
			return nil, fmt.Errorf("graph.colors: %w", err)
		}
		*c.dst = parsed
	}

	return cfg, nil
}

func (cfg *graphConfig) Size() int { return cfg.size }
func (cfg *graphConfig) Padding() float64 { return cfg.padding }
func (cfg *graphConfig) Window() (float64, float64) { return cfg.window.Min, cfg.window.Max }
func (cfg *graphConfig) GridStep() int { return cfg.gridStep }
func (cfg *graphConfig) TickLength() float64 { return cfg.tickLength }
func (cfg *graphConfig) PointRadius() float64 { return cfg.pointRadius }
func (cfg *graphConfig) ShadowBlur() float64 { return cfg.shadowBlur }

func (cfg *graphConfig) AxisColor() color.RGBA { return cfg.axisColor }
func (cfg *graphConfig) GridColor() color.RGBA { return cfg.gridColor }
func (cfg *graphConfig) LineColor() color.RGBA { return cfg.lineColor }
func (cfg *graphConfig) PointColor() color.RGBA { return cfg.pointColor }
func (cfg *graphConfig) OutlineColor() color.RGBA { return cfg.outlineColor }

func (cfg *graphConfig) GridWidth() float64 { return cfg.gridWidth }
func (cfg *graphConfig) AxisWidth() float64 { return cfg.axisWidth }
func (cfg *graphConfig) LineWidth() float64 { return cfg.lineWidth }
func (cfg *graphConfig) OutlineWidth() float64 { return cfg.outlineWidth }
