package model

// Problem одно упражнение: прямая y = Slope*x + Intercept и точка (X, Y)
type Problem struct {
	Slope       float64
	Intercept   float64
	X           float64
	Y           float64
	UseDecimals bool // Значения с одним знаком после запятой
}

// Solution результат проверки точки
type Solution struct {
	OnLine      bool
	CalculatedY float64 // Slope*X + Intercept
	Verdict     string
}
