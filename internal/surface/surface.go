// Package surface описывает поверхность для рисования графика и две её реализации:
// Raster (PNG) и Recorder (журнал операций для тестов).
package surface

import "image/color"

// Stroke параметры линии
type Stroke struct {
	Color color.Color
	Width float64
}

// Shadow размытая тень под фигурой. Нулевое значение - без тени.
type Shadow struct {
	Color color.Color
	Blur  float64
}

// Surface квадратная область с примитивами рисования.
// Координаты в пикселях, ось y направлена вниз.
type Surface interface {
	Size() (w, h int)
	Clear()
	StrokeLine(x0, y0, x1, y1 float64, st Stroke)
	FillCircle(cx, cy, r float64, c color.Color, sh Shadow)
	StrokeCircle(cx, cy, r float64, st Stroke)
	// FillText рисует текст, y - базовая линия
	FillText(text string, x, y float64, c color.Color)
}
