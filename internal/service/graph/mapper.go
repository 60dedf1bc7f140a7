package graph

// Mapper переводит координаты окна [Min, Max] x [Min, Max] в пиксели квадратной поверхности
type Mapper struct {
	Min, Max float64
	Size     float64
	Padding  float64
}

// MapX координата x в пикселях
func (m Mapper) MapX(v float64) float64 {
	return m.Padding + (v-m.Min)/(m.Max-m.Min)*(m.Size-2*m.Padding)
}

// MapY координата y в пикселях. Пиксели растут вниз, поэтому ось отражена.
func (m Mapper) MapY(v float64) float64 {
	return m.Size - m.Padding - (v-m.Min)/(m.Max-m.Min)*(m.Size-2*m.Padding)
}
