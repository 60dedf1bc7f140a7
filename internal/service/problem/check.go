package problem

import (
	"fmt"
	"linecheck/internal/model"
	"math"
	"strconv"
)

// epsilon допуск сравнения вычисленного y с y точки
const epsilon = 1e-9

// Check проверяет, лежит ли точка задачи на прямой
func (s *serv) Check(p model.Problem) model.Solution {
	return Check(p)
}

// Check проверяет, лежит ли точка задачи на прямой, и формирует вердикт
func Check(p model.Problem) model.Solution {
	yCalc := p.Slope*p.X + p.Intercept
	onLine := math.Abs(yCalc-p.Y) < epsilon

	var verdict string
	if onLine {
		verdict = fmt.Sprintf("The point %s lies on the line %s.", Point(p), Equation(p))
	} else {
		verdict = fmt.Sprintf("The point %s does not lie on the line %s. Calculated y for x=%s: %s",
			Point(p), Equation(p), FormatNumber(p.X), FormatNumber(yCalc))
	}

	return model.Solution{
		OnLine:      onLine,
		CalculatedY: yCalc,
		Verdict:     verdict,
	}
}

// Equation текст уравнения вида "y = 2x + 3"
func Equation(p model.Problem) string {
	return fmt.Sprintf("y = %sx + %s", FormatNumber(p.Slope), FormatNumber(p.Intercept))
}

// Point текст точки вида "(4, 11)"
func Point(p model.Problem) string {
	return fmt.Sprintf("(%s, %s)", FormatNumber(p.X), FormatNumber(p.Y))
}

// FormatNumber кратчайшая десятичная запись числа: 2, -3.5, 0.30000000000000004
func FormatNumber(v float64) string {
	if v == 0 {
		// -0 выводим как 0
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
