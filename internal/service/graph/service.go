package graph

import (
	"bytes"
	"fmt"
	"linecheck/internal/config"
	"linecheck/internal/model"
	"linecheck/internal/service"
	"linecheck/internal/surface"
	"strconv"
)

const (
	// Смещения подписей делений относительно деления
	xLabelDX = -10
	xLabelDY = 26
	yLabelDX = -30
	yLabelDY = 5
)

type serv struct {
	cfg config.GraphConfig
}

// NewGraphService Создать сервис отрисовки графика
func NewGraphService(cfg config.GraphConfig) service.GraphService {
	return &serv{cfg: cfg}
}

func (s *serv) mapper(size int) Mapper {
	lo, hi := s.cfg.Window()
	return Mapper{
		Min:     lo,
		Max:     hi,
		Size:    float64(size),
		Padding: s.cfg.Padding(),
	}
}

// Render рисует сетку, оси, деления, прямую и точку задачи.
// Поверхность очищается перед рисованием, поэтому повторный вызов даёт ту же картинку.
func (s *serv) Render(p model.Problem, dst surface.Surface) {
	size, _ := dst.Size()
	m := s.mapper(size)
	lo, hi := s.cfg.Window()

	dst.Clear()

	s.drawGrid(dst, m, lo, hi)
	s.drawAxes(dst, m, lo, hi)
	s.drawTicks(dst, m, lo, hi)

	// Прямая через всё окно
	dst.StrokeLine(
		m.MapX(lo), m.MapY(p.Slope*lo+p.Intercept),
		m.MapX(hi), m.MapY(p.Slope*hi+p.Intercept),
		surface.Stroke{Color: s.cfg.LineColor(), Width: s.cfg.LineWidth()},
	)

	// Точка
	px, py := m.MapX(p.X), m.MapY(p.Y)
	dst.FillCircle(px, py, s.cfg.PointRadius(), s.cfg.PointColor(),
		surface.Shadow{Color: s.cfg.PointColor(), Blur: s.cfg.ShadowBlur()})
	dst.StrokeCircle(px, py, s.cfg.PointRadius(),
		surface.Stroke{Color: s.cfg.OutlineColor(), Width: s.cfg.OutlineWidth()})
}

// RenderPNG рисует график на новой растровой поверхности и кодирует его в PNG
func (s *serv) RenderPNG(p model.Problem) ([]byte, error) {
	r := surface.NewRaster(s.cfg.Size(), s.cfg.Size())
	s.Render(p, r)

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode graph: %w", err)
	}
	return buf.Bytes(), nil
}

// marks значения сетки: кратные шагу, кроме нуля
func (s *serv) marks(lo, hi float64) []float64 {
	step := s.cfg.GridStep()
	var res []float64
	for i := int(lo); float64(i) <= hi; i++ {
		if i%step == 0 && i != 0 {
			res = append(res, float64(i))
		}
	}
	return res
}

func (s *serv) drawGrid(dst surface.Surface, m Mapper, lo, hi float64) {
	st := surface.Stroke{Color: s.cfg.GridColor(), Width: s.cfg.GridWidth()}
	for _, v := range s.marks(lo, hi) {
		// Вертикальная
		dst.StrokeLine(m.MapX(v), m.MapY(lo), m.MapX(v), m.MapY(hi), st)
		// Горизонтальная
		dst.StrokeLine(m.MapX(lo), m.MapY(v), m.MapX(hi), m.MapY(v), st)
	}
}

func (s *serv) drawAxes(dst surface.Surface, m Mapper, lo, hi float64) {
	st := surface.Stroke{Color: s.cfg.AxisColor(), Width: s.cfg.AxisWidth()}
	dst.StrokeLine(m.MapX(lo), m.MapY(0), m.MapX(hi), m.MapY(0), st)
	dst.StrokeLine(m.MapX(0), m.MapY(lo), m.MapX(0), m.MapY(hi), st)
}

func (s *serv) drawTicks(dst surface.Surface, m Mapper, lo, hi float64) {
	st := surface.Stroke{Color: s.cfg.AxisColor(), Width: s.cfg.AxisWidth()}
	tick := s.cfg.TickLength()

	for _, v := range s.marks(lo, hi) {
		label := strconv.FormatFloat(v, 'f', -1, 64)

		// Ось x
		x, y := m.MapX(v), m.MapY(0)
		dst.StrokeLine(x, y-tick, x, y+tick, st)
		dst.FillText(label, x+xLabelDX, y+xLabelDY, s.cfg.AxisColor())

		// Ось y
		x, y = m.MapX(0), m.MapY(v)
		dst.StrokeLine(x-tick, y, x+tick, y, st)
		dst.FillText(label, x+yLabelDX, y+yLabelDY, s.cfg.AxisColor())
	}
}
