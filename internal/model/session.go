package model

import "time"

// Session состояние виджета для одного браузера
type Session struct {
	ID              string
	Problem         Problem
	SolutionVisible bool
	Solution        Solution
	Graph           []byte // PNG последней отрисовки, nil пока решение скрыто
	UpdatedAt       time.Time
}
