package problem

import (
	"linecheck/internal/config"
	"linecheck/internal/service"
	"linecheck/pkg/random"
)

type serv struct {
	cfg config.GeneratorConfig
	src random.Source
}

// NewProblemService Создать генератор задач
func NewProblemService(cfg config.GeneratorConfig, src random.Source) service.ProblemService {
	return &serv{
		cfg: cfg,
		src: src,
	}
}
