package app

import (
	pageAPI "linecheck/internal/api/page"
	problemAPI "linecheck/internal/api/problem"
	"linecheck/internal/config"
	"linecheck/internal/config/env"
	"linecheck/internal/middleware"
	"linecheck/internal/repository"
	"linecheck/internal/repository/session_repo"
	"linecheck/internal/repository/stats_repo"
	"linecheck/internal/service"
	"linecheck/internal/service/graph"
	"linecheck/internal/service/problem"
	"linecheck/internal/service/widget"
	"linecheck/pkg/random"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const configPath = "config.yaml"

type ServiceProvider struct {
	configPath string

	// Problem bits
	generatorCfg config.GeneratorConfig
	randSource   random.Source
	problemServ  service.ProblemService

	// Graph bits
	graphCfg  config.GraphConfig
	graphServ service.GraphService

	// Session bits
	sessionCfg  config.SessionConfig
	sessionRepo repository.SessionRepository
	statsRepo   repository.StatsRepository

	// Widget bits
	widgetServ  service.WidgetService
	problemHand *problemAPI.Handler
	pageHand    *pageAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider(configPath string) *ServiceProvider {
	return &ServiceProvider{configPath: configPath}
}

func (sp *ServiceProvider) GeneratorCfg() config.GeneratorConfig {
	if sp.generatorCfg == nil {
		cfg, err := env.NewGeneratorConfigFromYAML(sp.configPath)
		if err != nil {
			panic("failed to get generator config: " + err.Error())
		}
		sp.generatorCfg = cfg
	}
	return sp.generatorCfg
}

func (sp *ServiceProvider) RandSource() random.Source {
	if sp.randSource == nil {
		sp.randSource = random.Global()
	}
	return sp.randSource
}

func (sp *ServiceProvider) ProblemService() service.ProblemService {
	if sp.problemServ == nil {
		sp.problemServ = problem.NewProblemService(sp.GeneratorCfg(), sp.RandSource())
	}
	return sp.problemServ
}

func (sp *ServiceProvider) GraphCfg() config.GraphConfig {
	if sp.graphCfg == nil {
		cfg, err := env.NewGraphConfigFromYAML(sp.configPath)
		if err != nil {
			panic("failed to get graph config: " + err.Error())
		}
		sp.graphCfg = cfg
	}
	return sp.graphCfg
}

func (sp *ServiceProvider) GraphService() service.GraphService {
	if sp.graphServ == nil {
		sp.graphServ = graph.NewGraphService(sp.GraphCfg())
	}
	return sp.graphServ
}

func (sp *ServiceProvider) SessionCfg() config.SessionConfig {
	if sp.sessionCfg == nil {
		cfg, err := env.NewSessionConfig(sp.configPath)
		if err != nil {
			panic("failed to get session config: " + err.Error())
		}
		sp.sessionCfg = cfg
	}
	return sp.sessionCfg
}

func (sp *ServiceProvider) SessionRepository() repository.SessionRepository {
	if sp.sessionRepo == nil {
		sp.sessionRepo = session_repo.NewSessionRepository(sp.SessionCfg().TTL(), sp.SessionCfg().MaxSessions())
	}
	return sp.sessionRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(sp.GeneratorCfg().OnLineProbability())
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) WidgetService() service.WidgetService {
	if sp.widgetServ == nil {
		sp.widgetServ = widget.NewWidgetService(
			sp.ProblemService(),
			sp.GraphService(),
			sp.SessionRepository(),
			sp.StatsRepository(),
		)
	}
	return sp.widgetServ
}

func (sp *ServiceProvider) ProblemHandler() *problemAPI.Handler {
	if sp.problemHand == nil {
		sp.problemHand = problemAPI.NewHandler(problemAPI.HandlerDeps{
			Serv: sp.WidgetService(),
		})
	}
	return sp.problemHand
}

func (sp *ServiceProvider) PageHandler() *pageAPI.Handler {
	if sp.pageHand == nil {
		sp.pageHand = pageAPI.NewHandler(pageAPI.HandlerDeps{
			Serv:      sp.WidgetService(),
			GraphSize: sp.GraphCfg().Size(),
		})
	}
	return sp.pageHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router() chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.Logger)
		r.Use(chimw.Recoverer)

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})

		problemHandler := sp.ProblemHandler()
		pageHandler := sp.PageHandler()

		// Страница виджета
		r.Group(func(rr chi.Router) {
			rr.Use(middleware.Session)
			rr.Get("/", pageHandler.Index)
			rr.Post("/regenerate", pageHandler.Regenerate)
			rr.Post("/decimals", pageHandler.ToggleDecimals)
			rr.Post("/solution", pageHandler.ToggleSolution)
			rr.Get(pageAPI.GraphPath, problemHandler.Graph)
		})

		// JSON API
		r.Route("/api", func(rr chi.Router) {
			// CORS middleware. Задача хранится в сессии, поэтому чужим источникам
			// нужна cookie: разрешаем только явно перечисленные.
			if origins := sp.HTTPCfg().CORSOrigins(); len(origins) > 0 {
				rr.Use(cors.Handler(cors.Options{
					AllowedOrigins:   origins,
					AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
					AllowedHeaders:   []string{"Accept", "Content-Type"},
					AllowCredentials: true,
					MaxAge:           60 * 15,
				}))
			}
			rr.Use(middleware.Session)

			rr.Get("/problem", problemHandler.Get)
			rr.Post("/problem", problemHandler.Generate)
			rr.Post("/solution", problemHandler.ToggleSolution)
			rr.Get("/graph.png", problemHandler.Graph)
			rr.Get("/stats", problemHandler.Stats)
		})

		sp.router = r
	}

	return sp.router
}
