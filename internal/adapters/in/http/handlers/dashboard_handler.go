// internal/adapters/in/http/handlers/dashboard_handler.go
package handlers

import (
	"log"
	"net/http"

	usecase "github.com/Fizxxc/digital-store/internal/application/usecase"
)

// DashboardHandler serves GET /dashboard for the console landing page.
type DashboardHandler struct {
	uc *usecase.DashboardUsecase
}

func NewDashboardHandler(uc *usecase.DashboardUsecase) http.Handler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	log.Printf("[DashboardHandler] method=%s path=%s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet || pathTail(r.URL.Path, "/dashboard") != "" {
		notFoundRoute(w)
		return
	}

	if _, ok := usecase.IdentityFrom(r.Context()); !ok {
		writeErrorMsg(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if !usecase.CapabilitiesFrom(r.Context()).ViewDashboard {
		forbidden(w, "admin role required")
		return
	}

	summary, err := h.uc.Summary(r.Context())
	if err != nil {
		log.Printf("[DashboardHandler] summary failed: %v", err)
		writeErrorMsg(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
