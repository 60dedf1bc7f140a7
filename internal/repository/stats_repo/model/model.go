package model

// Статистика генератора задач
type GeneratorStats struct {
	TotalProblems int // Сколько всего задач создано
	OnLine        int // Из них точка на прямой
	Decimals      int // Из них в десятичных дробях

	OnLineShare float64 // Доля задач с точкой на прямой за всё время
	Target      float64 // Ожидаемая доля (on_line_probability)

	Window      []bool  // Окно последних задач: true - точка на прямой
	WindowShare float64 // Доля задач с точкой на прямой в окне
	WindowSize  int     // Размер окна

	Drifting bool // Доля в окне отклонилась от ожидаемой больше допустимого
}
