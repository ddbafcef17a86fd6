package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hirefusion/hirefusion-go/internal/middleware"
	"github.com/hirefusion/hirefusion-go/internal/service"
)

// ApplicationHandler handles HTTP requests for job applications.
type ApplicationHandler struct {
	service *service.ApplicationService
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(svc *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: svc}
}

// HandleSubmit handles POST /api/v1/applied requests.
func (h *ApplicationHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	doc, ok := decodeDocument(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Submit(r.Context(), doc)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleListMine handles GET /api/v1/applied requests.
func (h *ApplicationHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Unauthorized"))
		return
	}

	docs, err := h.service.ListMine(r.Context(), identity, r.URL.Query().Get("email"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

// HandleGet handles GET /api/v1/applied/{id} requests.
func (h *ApplicationHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	doc, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}
