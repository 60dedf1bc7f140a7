package problem

import (
	"errors"
	dto "linecheck/internal/api/dto/problem"
	"linecheck/internal/converter"
	"linecheck/internal/middleware"
	"linecheck/internal/service"
	"linecheck/pkg/req"
	"linecheck/pkg/resp"
	"log"
	"net/http"
)

const GraphPath = "/api/graph.png"

type HandlerDeps struct {
	Serv service.WidgetService
}

type Handler struct {
	serv service.WidgetService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Get возвращает текущую задачу сессии
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no session", http.StatusInternalServerError)
		return
	}

	session, err := h.serv.Current(r.Context(), sessionID)
	if err != nil {
		log.Println("Get problem error:", err)
		http.Error(w, "get problem failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToProblemResponse(session.Problem))
}

// Generate создаёт новую задачу и скрывает решение
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.GenerateRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no session", http.StatusInternalServerError)
		return
	}

	session, err := h.serv.Generate(r.Context(), sessionID, payload.UseDecimals)
	if err != nil {
		log.Println("Generate error:", err)
		http.Error(w, "generate failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToProblemResponse(session.Problem))
}

// ToggleSolution показывает или скрывает решение
func (h *Handler) ToggleSolution(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no session", http.StatusInternalServerError)
		return
	}

	session, err := h.serv.ToggleSolution(r.Context(), sessionID)
	if err != nil {
		log.Println("Toggle solution error:", err)
		http.Error(w, "solution failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSolutionResponse(*session, GraphPath))
}

// Graph отдаёт PNG графика, пока решение открыто
func (h *Handler) Graph(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no session", http.StatusInternalServerError)
		return
	}

	data, err := h.serv.Graph(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, service.ErrGraphHidden) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Println("Graph error:", err)
		http.Error(w, "graph failed", http.StatusInternalServerError)
		return
	}

	resp.WritePNG(w, data)
}

// Stats отдаёт статистику генератора задач
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}
