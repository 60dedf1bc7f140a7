package stats_repo

import (
	"linecheck/internal/repository"
	repoModel "linecheck/internal/repository/stats_repo/model"
	"log"
	"math"
	"sync"
)

const (
	// defaultWindowSize размер окна последних задач
	defaultWindowSize = 500
	// minProblemsToCheck сколько задач нужно, прежде чем проверять отклонение
	minProblemsToCheck = 100
	// maxAllowedDeviation допустимое отклонение доли в окне от ожидаемой
	maxAllowedDeviation = 0.1
)

// Реализация хранилища статистики генератора в памяти
type StatsRepo struct {
	mtx   sync.RWMutex
	state repoModel.GeneratorStats
}

// NewStatsRepository Конструктор хранилища с ожидаемой долей задач "на прямой"
func NewStatsRepository(target float64) repository.StatsRepository {
	return newStatsRepo(target, defaultWindowSize)
}

func newStatsRepo(target float64, windowSize int) *StatsRepo {
	return &StatsRepo{
		state: repoModel.GeneratorStats{
			Target:     target,
			Window:     make([]bool, 0, windowSize),
			WindowSize: windowSize,
		},
	}
}

// Stats Получение копии текущей статистики
func (r *StatsRepo) Stats() repoModel.GeneratorStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	res := r.state
	res.Window = append([]bool(nil), r.state.Window...)
	return res
}

// Record Обновление статистики после генерации задачи
func (r *StatsRepo) Record(onLine, decimals bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalProblems++
	if onLine {
		r.state.OnLine++
	}
	if decimals {
		r.state.Decimals++
	}
	r.state.OnLineShare = float64(r.state.OnLine) / float64(r.state.TotalProblems)

	// Поддерживаем размер окна
	r.state.Window = append(r.state.Window, onLine)
	if len(r.state.Window) > r.state.WindowSize {
		r.state.Window = r.state.Window[1:]
	}

	var windowOnLine int
	for _, v := range r.state.Window {
		if v {
			windowOnLine++
		}
	}
	r.state.WindowShare = float64(windowOnLine) / float64(len(r.state.Window))

	r.checkDrift()
}

// checkDrift отмечает и логирует отклонение доли в окне от ожидаемой
func (r *StatsRepo) checkDrift() {
	if r.state.TotalProblems < minProblemsToCheck {
		return
	}

	drifting := math.Abs(r.state.WindowShare-r.state.Target) > maxAllowedDeviation
	if drifting && !r.state.Drifting {
		log.Printf("[GENERATOR] on-line share in window %.3f, expected %.3f", r.state.WindowShare, r.state.Target)
	}
	r.state.Drifting = drifting
}
