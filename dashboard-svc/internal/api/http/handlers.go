package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"cantina-feedback/dashboard-svc/internal/domain"
	"cantina-feedback/dashboard-svc/internal/service"
	"cantina-feedback/logger"

	"github.com/gorilla/mux"
)

type Handler struct {
	Dashboard service.DashboardInterface
	Metrics   http.Handler
}

func NewHandler(dashboard service.DashboardInterface, metrics http.Handler) *Handler {
	return &Handler{Dashboard: dashboard, Metrics: metrics}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	if h.Metrics != nil {
		r.Handle("/metrics", h.Metrics).Methods("GET")
	}

	r.HandleFunc("/api/overview", h.getOverview).Methods("GET")
	r.HandleFunc("/api/comparison", h.getComparison).Methods("GET")
	r.HandleFunc("/api/canteens", h.getCanteens).Methods("GET")
	r.HandleFunc("/api/canteens/{canteen}", h.getCanteenDetail).Methods("GET")
	r.HandleFunc("/api/canteens/{canteen}/qrcode", h.getCanteenQRCode).Methods("GET")

	r.HandleFunc("/api/sessions", h.createSession).Methods("POST")
	r.HandleFunc("/api/sessions/{id}", h.getSession).Methods("GET")
	r.HandleFunc("/api/sessions/{id}/events", h.applyEvent).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "dashboard-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getOverview(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Dashboard.Overview())
}

func (h *Handler) getComparison(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Dashboard.Comparison())
}

func (h *Handler) getCanteens(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"canteens": h.Dashboard.Canteens(),
	})
}

func (h *Handler) getCanteenDetail(w http.ResponseWriter, r *http.Request) {
	filter, err := domain.ParseFilter(r.URL.Query().Get("filter"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	canteen, err := pathVar(r, "canteen")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	detail, err := h.Dashboard.Detail(canteen, filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *Handler) getCanteenQRCode(w http.ResponseWriter, r *http.Request) {
	canteen, err := pathVar(r, "canteen")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	png, err := h.Dashboard.ShareCode(canteen)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Dashboard.NewSession(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	id, err := pathVar(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.Dashboard.Session(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) applyEvent(w http.ResponseWriter, r *http.Request) {
	id, err := pathVar(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var event domain.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "Invalid event payload", http.StatusBadRequest)
		return
	}

	resp, err := h.Dashboard.Apply(r.Context(), id, event)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// pathVar decodes a route variable. Routes match on the escaped path, so a
// canteen name with "/" in it stays one segment.
func pathVar(r *http.Request, name string) (string, error) {
	return url.PathUnescape(mux.Vars(r)[name])
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrUnknownCanteen):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrUnknownView),
		errors.Is(err, domain.ErrUnknownFilter),
		errors.Is(err, domain.ErrUnknownEvent):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		logger.Get().Error().Err(err).Msg("request failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
