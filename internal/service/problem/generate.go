package problem

import (
	"linecheck/internal/config"
	"linecheck/internal/model"
	"linecheck/pkg/random"
	"log"
	"math"
)

// Generate создаёт новую задачу.
// Прямая выбирается один раз, точка (x, y) - на прямой с вероятностью OnLineProbability,
// иначе со смещением по y. В строгом режиме точка перевыбирается, пока ограничение
// координат окном не перестанет менять ответ.
func (s *serv) Generate(useDecimals bool) model.Problem {
	slopeMin, slopeMax := s.cfg.SlopeRange()
	interceptMin, interceptMax := s.cfg.InterceptRange()

	p := model.Problem{
		Slope:       s.draw(useDecimals, slopeMin, slopeMax),
		Intercept:   s.draw(useDecimals, interceptMin, interceptMax),
		UseDecimals: useDecimals,
	}

	onLine := random.Chance(s.src, s.cfg.OnLineProbability())

	if s.cfg.ClampMode() == config.ClampLegacy {
		return s.placePoint(p, onLine)
	}

	attempts := s.cfg.MaxAttempts()
	for i := 0; i < attempts; i++ {
		candidate := s.placePoint(p, onLine)
		if s.Check(candidate).OnLine == onLine {
			return candidate
		}
		p = candidate
	}

	log.Printf("generator: no exact point after %d attempts for y = %vx + %v, keeping clamped point",
		attempts, p.Slope, p.Intercept)
	return p
}

// placePoint выбирает x, считает y и ограничивает обе координаты окном
func (s *serv) placePoint(p model.Problem, onLine bool) model.Problem {
	coordMin, coordMax := s.cfg.CoordRange()

	x := s.draw(p.UseDecimals, coordMin, coordMax)
	y := p.Slope*x + p.Intercept

	if !onLine {
		offMin, offMax := s.cfg.OffsetRange()
		offset := s.draw(p.UseDecimals, offMin, offMax)
		if random.Chance(s.src, s.cfg.NegativeOffsetProbability()) {
			offset = -offset
		}
		y += offset
	}

	if p.UseDecimals {
		y = random.Round1(y)
	}

	p.X = clamp(x, coordMin, coordMax)
	p.Y = clamp(y, coordMin, coordMax)
	return p
}

// draw равномерное значение из [min, max]: целое или с одним знаком после запятой
func (s *serv) draw(useDecimals bool, min, max float64) float64 {
	if useDecimals {
		return random.Tenth(s.src, min, max)
	}
	return float64(random.Int(s.src, int(min), int(max)))
}

func clamp(v, min, max float64) float64 {
	return math.Max(min, math.Min(max, v))
}
