package config

import (
	"image/color"
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// Режимы ограничения координат точки
const (
	ClampStrict = "strict"
	ClampLegacy = "legacy"
)

type GeneratorConfig interface {
	SlopeRange() (min, max float64)
	InterceptRange() (min, max float64)
	CoordRange() (min, max float64)
	OffsetRange() (min, max float64)
	OnLineProbability() float64
	NegativeOffsetProbability() float64
	ClampMode() string
	MaxAttempts() int
}

type GraphConfig interface {
	Size() int
	Padding() float64
	Window() (min, max float64)
	GridStep() int
	TickLength() float64
	PointRadius() float64
	ShadowBlur() float64

	AxisColor() color.RGBA
	GridColor() color.RGBA
	LineColor() color.RGBA
	PointColor() color.RGBA
	OutlineColor() color.RGBA

	GridWidth() float64
	AxisWidth() float64
	LineWidth() float64
	OutlineWidth() float64
}

type SessionConfig interface {
	TTL() time.Duration
	MaxSessions() int
}

type HTTPConfig interface {
	Address() string
	// CORSOrigins источники, которым JSON API доступен вместе с cookie сессии.
	// Пустой список: API только для той же страницы.
	CORSOrigins() []string
}
