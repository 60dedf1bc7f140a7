package page

import (
	"embed"
	"html/template"
	"linecheck/internal/middleware"
	"linecheck/internal/model"
	"linecheck/internal/service"
	"linecheck/internal/service/problem"
	"log"
	"net/http"
	"strconv"
)

const GraphPath = "/graph.png"

//go:embed templates/index.html
var templatesFS embed.FS

var indexTmpl = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

type HandlerDeps struct {
	Serv      service.WidgetService
	GraphSize int
}

type Handler struct {
	serv      service.WidgetService
	graphSize int
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:      deps.Serv,
		graphSize: deps.GraphSize,
	}
}

type indexView struct {
	Equation    string
	Point       string
	UseDecimals bool
	Visible     bool
	OnLine      bool
	X           string
	CalculatedY string
	GraphURL    string
	GraphSize   int
}

// Index страница виджета. При первом заходе создаётся задача в целых числах.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no session", http.StatusInternalServerError)
		return
	}

	session, err := h.serv.Current(r.Context(), sessionID)
	if err != nil {
		log.Println("Index error:", err)
		http.Error(w, "page failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, h.view(session)); err != nil {
		log.Println("Index render error:", err)
	}
}

// Regenerate новая задача в текущем режиме
func (h *Handler) Regenerate(w http.ResponseWriter, r *http.Request) {
	var useDecimals bool
	if raw := r.PostFormValue("use_decimals"); len(raw) != 0 {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			http.Error(w, "invalid use_decimals: "+raw, http.StatusBadRequest)
			return
		}
		useDecimals = v
	}

	h.action(w, r, func(sessionID string) error {
		_, err := h.serv.Generate(r.Context(), sessionID, useDecimals)
		return err
	})
}

// ToggleDecimals переключает режим десятичных дробей
func (h *Handler) ToggleDecimals(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, func(sessionID string) error {
		_, err := h.serv.ToggleDecimals(r.Context(), sessionID)
		return err
	})
}

// ToggleSolution показывает или скрывает решение
func (h *Handler) ToggleSolution(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, func(sessionID string) error {
		_, err := h.serv.ToggleSolution(r.Context(), sessionID)
		return err
	})
}

// action выполняет действие и возвращает пользователя на страницу (POST-redirect-GET)
func (h *Handler) action(w http.ResponseWriter, r *http.Request, do func(sessionID string) error) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no session", http.StatusInternalServerError)
		return
	}

	if err := do(sessionID); err != nil {
		log.Printf("%s %s error: %v", r.Method, r.URL.Path, err)
		http.Error(w, "action failed", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) view(s *model.Session) indexView {
	return indexView{
		Equation:    problem.Equation(s.Problem),
		Point:       problem.Point(s.Problem),
		UseDecimals: s.Problem.UseDecimals,
		Visible:     s.SolutionVisible,
		OnLine:      s.Solution.OnLine,
		X:           problem.FormatNumber(s.Problem.X),
		CalculatedY: problem.FormatNumber(s.Solution.CalculatedY),
		GraphURL:    GraphPath,
		GraphSize:   h.graphSize,
	}
}
