package surface

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.RGBA{R: 0xff, A: 0xff}

func TestRasterStrokeLinePaintsPixels(t *testing.T) {
	r := NewRaster(50, 50)
	r.Clear()
	r.StrokeLine(0, 25, 50, 25, Stroke{Color: red, Width: 4})

	_, _, _, a := r.Image().At(25, 25).RGBA()
	assert.InDelta(t, 0xffff, a, 0x100)

	_, _, _, a = r.Image().At(25, 5).RGBA()
	assert.Equal(t, uint32(0), a)
}

func TestRasterClipsLinesFarOutside(t *testing.T) {
	r := NewRaster(50, 50)
	r.Clear()
	// Отрезок с огромными координатами не должен паниковать
	r.StrokeLine(-1e6, -1e6, 1e6, 1e6, Stroke{Color: red, Width: 2})

	_, _, _, a := r.Image().At(25, 25).RGBA()
	assert.NotZero(t, a)
}

func TestRasterStrokeCircleLeavesHole(t *testing.T) {
	r := NewRaster(50, 50)
	r.Clear()
	r.StrokeCircle(25, 25, 10, Stroke{Color: red, Width: 2})

	_, _, _, center := r.Image().At(25, 25).RGBA()
	assert.Zero(t, center)

	_, _, _, edge := r.Image().At(35, 25).RGBA()
	assert.NotZero(t, edge)
}

func TestRasterFillCircleWithShadow(t *testing.T) {
	r := NewRaster(50, 50)
	r.Clear()
	r.FillCircle(25, 25, 7, red, Shadow{Color: red, Blur: 8})

	_, _, _, center := r.Image().At(25, 25).RGBA()
	assert.InDelta(t, 0xffff, center, 0x100)

	// Тень выходит за радиус, но полупрозрачная
	_, _, _, halo := r.Image().At(25+9, 25).RGBA()
	assert.NotZero(t, halo)
	assert.Less(t, halo, uint32(0xffff))
}

func TestRasterClearIsIdempotent(t *testing.T) {
	draw := func(r *Raster) []byte {
		r.Clear()
		r.StrokeLine(0, 0, 49, 49, Stroke{Color: red, Width: 2})
		r.FillText("5", 10, 20, red)
		var buf bytes.Buffer
		require.NoError(t, r.EncodePNG(&buf))
		return buf.Bytes()
	}

	r := NewRaster(50, 50)
	first := draw(r)
	second := draw(r)
	assert.Equal(t, first, second)

	img, err := png.Decode(bytes.NewReader(first))
	require.NoError(t, err)
	assert.Equal(t, 50, img.Bounds().Dx())
}

func TestClipLine(t *testing.T) {
	x0, y0, x1, y1, ok := clipLine(-10, 5, 20, 5, 0, 0, 10, 10)
	require.True(t, ok)
	assert.InDelta(t, 0.0, x0, 1e-9)
	assert.InDelta(t, 5.0, y0, 1e-9)
	assert.InDelta(t, 10.0, x1, 1e-9)
	assert.InDelta(t, 5.0, y1, 1e-9)

	_, _, _, _, ok = clipLine(-10, -5, 20, -5, 0, 0, 10, 10)
	assert.False(t, ok)
}

func TestRecorderClearResetsOps(t *testing.T) {
	r := NewRecorder(10, 10)
	r.StrokeLine(0, 0, 1, 1, Stroke{Color: red, Width: 1})
	r.Clear()
	r.FillText("x", 1, 2, red)

	assert.Equal(t, []string{"clear", `text "x" 1.00,2.00 #ff0000`}, r.Ops)
}
