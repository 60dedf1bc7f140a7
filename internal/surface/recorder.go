package surface

import (
	"fmt"
	"image/color"
)

// Recorder записывает вызовы вместо рисования
type Recorder struct {
	w, h int
	Ops  []string
}

func NewRecorder(w, h int) *Recorder {
	return &Recorder{w: w, h: h}
}

func (r *Recorder) Size() (int, int) {
	return r.w, r.h
}

// Clear сбрасывает журнал, как очистка настоящей поверхности
func (r *Recorder) Clear() {
	r.Ops = append(r.Ops[:0], "clear")
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1 float64, st Stroke) {
	r.add("line %.2f,%.2f %.2f,%.2f %s w=%g", x0, y0, x1, y1, hex(st.Color), st.Width)
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c color.Color, sh Shadow) {
	r.add("fill-circle %.2f,%.2f r=%g %s shadow=%s/%g", cx, cy, radius, hex(c), hex(sh.Color), sh.Blur)
}

func (r *Recorder) StrokeCircle(cx, cy, radius float64, st Stroke) {
	r.add("stroke-circle %.2f,%.2f r=%g %s w=%g", cx, cy, radius, hex(st.Color), st.Width)
}

func (r *Recorder) FillText(text string, x, y float64, c color.Color) {
	r.add("text %q %.2f,%.2f %s", text, x, y, hex(c))
}

func (r *Recorder) add(format string, args ...interface{}) {
	r.Ops = append(r.Ops, fmt.Sprintf(format, args...))
}

func hex(c color.Color) string {
	if c == nil {
		return "none"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
