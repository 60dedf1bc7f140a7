package env

import (
	"errors"
	"fmt"
	"linecheck/internal/config"
)

type generatorConfig struct {
	slope, intercept, coord, offset rangeYAML

	onLineProbability         float64
	negativeOffsetProbability float64
	clampMode                 string
	maxAttempts               int
}

func NewGeneratorConfigFromYAML(path string) (config.GeneratorConfig, error) {
	file, err := readYAML(path)
	if err != nil {
		return nil, err
	}
	g := file.Generator

	for name, r := range map[string]rangeYAML{
		"slope":     g.Slope,
		"intercept": g.Intercept,
		"coord":     g.Coord,
		"offset":    g.Offset,
	} {
		if !r.valid() {
			return nil, fmt.Errorf("generator.%s: min must be less than max", name)
		}
	}

	if g.OnLineProbability < 0 || g.OnLineProbability > 1 {
		return nil, errors.New("generator.on_line_probability must be within [0, 1]")
	}
	if g.NegativeOffsetProbability < 0 || g.NegativeOffsetProbability > 1 {
		return nil, errors.New("generator.negative_offset_probability must be within [0, 1]")
	}

	mode := g.ClampMode
	if mode == "" {
		mode = config.ClampStrict
	}
	if mode != config.ClampStrict && mode != config.ClampLegacy {
		return nil, fmt.Errorf("generator.clamp_mode: unknown mode %q", mode)
	}

	attempts := g.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	return &generatorConfig{
		slope:                     g.Slope,
		intercept:                 g.Intercept,
		coord:                     g.Coord,
		offset:                    g.Offset,
		onLineProbability:         g.OnLineProbability,
		negativeOffsetProbability: g.NegativeOffsetProbability,
		clampMode:                 mode,
		maxAttempts:               attempts,
	}, nil
}

func (cfg *generatorConfig) SlopeRange() (float64, float64) {
	return cfg.slope.Min, cfg.slope.Max
}

func (cfg *generatorConfig) InterceptRange() (float64, float64) {
	return cfg.intercept.Min, cfg.intercept.Max
}

func (cfg *generatorConfig) CoordRange() (float64, float64) {
	return cfg.coord.Min, cfg.coord.Max
}

func (cfg *generatorConfig) OffsetRange() (float64, float64) {
	return cfg.offset.Min, cfg.offset.Max
}

func (cfg *generatorConfig) OnLineProbability() float64 {
	return cfg.onLineProbability
}

func (cfg *generatorConfig) NegativeOffsetProbability() float64 {
	return cfg.negativeOffsetProbability
}

func (cfg *generatorConfig) ClampMode() string {
	return cfg.clampMode
}

func (cfg *generatorConfig) MaxAttempts() int {
	return cfg.maxAttempts
}
