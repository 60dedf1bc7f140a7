package surface

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const (
	// kappa контрольная точка кубической кривой для четверти окружности
	kappa = 0.5522847498

	// clipMargin запас за краем поверхности, чтобы концы толстых линий не обрезались
	clipMargin = 16
)

// Raster поверхность поверх image.RGBA со сглаживанием
type Raster struct {
	img  *image.RGBA
	rast *vector.Rasterizer
	face font.Face
}

// NewRaster создаёт прозрачную поверхность w x h
func NewRaster(w, h int) *Raster {
	return &Raster{
		img:  image.NewRGBA(image.Rect(0, 0, w, h)),
		rast: vector.NewRasterizer(w, h),
		face: basicfont.Face7x13,
	}
}

func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image возвращает нарисованное изображение
func (r *Raster) Image() *image.RGBA {
	return r.img
}

func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

// StrokeLine рисует отрезок с плоскими концами
func (r *Raster) StrokeLine(x0, y0, x1, y1 float64, st Stroke) {
	w, h := r.Size()
	x0, y0, x1, y1, ok := clipLine(x0, y0, x1, y1,
		-clipMargin, -clipMargin, float64(w+clipMargin), float64(h+clipMargin))
	if !ok {
		return
	}

	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 || st.Width <= 0 {
		return
	}
	// Нормаль к отрезку длиной в половину толщины
	nx, ny := -dy/length*st.Width/2, dx/length*st.Width/2

	r.begin()
	r.moveTo(x0+nx, y0+ny)
	r.lineTo(x1+nx, y1+ny)
	r.lineTo(x1-nx, y1-ny)
	r.lineTo(x0-nx, y0-ny)
	r.rast.ClosePath()
	r.fill(st.Color)
}

// FillCircle закрашивает круг, при необходимости с тенью под ним
func (r *Raster) FillCircle(cx, cy, radius float64, c color.Color, sh Shadow) {
	if sh.Blur > 0 && sh.Color != nil {
		r.shadow(cx, cy, radius, sh)
	}

	r.begin()
	r.circle(cx, cy, radius, false)
	r.fill(c)
}

func (r *Raster) StrokeCircle(cx, cy, radius float64, st Stroke) {
	if st.Width <= 0 {
		return
	}
	inner := radius - st.Width/2
	if inner < 0 {
		inner = 0
	}

	// Внутренняя окружность в обратном направлении образует дырку
	r.begin()
	r.circle(cx, cy, radius+st.Width/2, false)
	if inner > 0 {
		r.circle(cx, cy, inner, true)
	}
	r.fill(st.Color)
}

func (r *Raster) FillText(text string, x, y float64, c color.Color) {
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: r.face,
		Dot:  fixed.P(int(math.Round(x)), int(math.Round(y))),
	}
	d.DrawString(text)
}

// EncodePNG кодирует текущее изображение в PNG
func (r *Raster) EncodePNG(w io.Writer) error {
	return png.Encode(w, r.img)
}

// shadow приближает размытие набором полупрозрачных концентрических кругов
func (r *Raster) shadow(cx, cy, radius float64, sh Shadow) {
	steps := int(math.Ceil(sh.Blur))
	cr, cg, cb, ca := sh.Color.RGBA()
	layerAlpha := float64(ca) / float64(steps+1) / 0xffff

	for i := 0; i < steps; i++ {
		rr := radius + sh.Blur*float64(steps-i)/float64(steps)
		c := color.NRGBA{
			R: uint8(cr >> 8),
			G: uint8(cg >> 8),
			B: uint8(cb >> 8),
			A: uint8(math.Round(layerAlpha * 0xff)),
		}
		r.begin()
		r.circle(cx, cy, rr, false)
		r.fill(c)
	}
}

func (r *Raster) begin() {
	w, h := r.Size()
	r.rast.Reset(w, h)
	r.rast.DrawOp = draw.Over
}

func (r *Raster) fill(c color.Color) {
	if c == nil {
		return
	}
	r.rast.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{})
}

func (r *Raster) moveTo(x, y float64) {
	r.rast.MoveTo(float32(x), float32(y))
}

func (r *Raster) lineTo(x, y float64) {
	r.rast.LineTo(float32(x), float32(y))
}

// circle добавляет окружность из четырёх кубических кривых.
// reverse меняет направление обхода.
func (r *Raster) circle(cx, cy, radius float64, reverse bool) {
	k := radius * kappa
	dir := 1.0
	if reverse {
		dir = -1
	}

	r.moveTo(cx+radius, cy)
	r.cubeTo(cx+radius, cy+dir*k, cx+k, cy+dir*radius, cx, cy+dir*radius)
	r.cubeTo(cx-k, cy+dir*radius, cx-radius, cy+dir*k, cx-radius, cy)
	r.cubeTo(cx-radius, cy-dir*k, cx-k, cy-dir*radius, cx, cy-dir*radius)
	r.cubeTo(cx+k, cy-dir*radius, cx+radius, cy-dir*k, cx+radius, cy)
	r.rast.ClosePath()
}

func (r *Raster) cubeTo(bx, by, cx, cy, dx, dy float64) {
	r.rast.CubeTo(float32(bx), float32(by), float32(cx), float32(cy), float32(dx), float32(dy))
}

// clipLine обрезает отрезок прямоугольником (алгоритм Лианга-Барски)
func clipLine(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	dx, dy := x1-x0, y1-y0
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - xmin, xmax - x0, y0 - ymin, ymax - y0}

	u1, u2 := 0.0, 1.0
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > u2 {
				return 0, 0, 0, 0, false
			}
			if t > u1 {
				u1 = t
			}
		} else {
			if t < u1 {
				return 0, 0, 0, 0, false
			}
			if t < u2 {
				u2 = t
			}
		}
	}

	return x0 + u1*dx, y0 + u1*dy, x0 + u2*dx, y0 + u2*dy, true
}
