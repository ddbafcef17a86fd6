package handler

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hirefusion/hirefusion-go/internal/middleware"
	"github.com/hirefusion/hirefusion-go/internal/model"
	"github.com/hirefusion/hirefusion-go/internal/service"
)

// JobHandler handles HTTP requests for job postings.
type JobHandler struct {
	service *service.JobService
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(svc *service.JobService) *JobHandler {
	return &JobHandler{service: svc}
}

// HandleCount handles GET /api/v1/jobsdataCount requests.
func (h *JobHandler) HandleCount(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Count(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleList handles GET /api/v1/jobsdata requests.
func (h *JobHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := service.ParseJobFilter(q.Get("Category"), q.Get("page"), q.Get("size"))

	docs, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

// HandleListMine handles GET /api/v1/jobsdata/myJobs requests.
func (h *JobHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
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

// HandleGet handles GET /api/v1/jobsdata/{id} requests.
func (h *JobHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	doc, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// HandleCreate handles POST /api/v1/jobsdata requests.
func (h *JobHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	doc, ok := decodeDocument(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Create(r.Context(), doc)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleReplace handles PUT /api/v1/jobsdata/{id} requests.
func (h *JobHandler) HandleReplace(w http.ResponseWriter, r *http.Request) {
	var update model.JobUpdate
	if err := decodeBody(w, r, &update); err != nil {
		writeBodyError(w, err)
		return
	}

	resp, err := h.service.Replace(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleIncrementApplied handles PATCH /api/v1/jobsdata/{id} requests.
// Any AppliedCount in the body is ignored.
func (h *JobHandler) HandleIncrementApplied(w http.ResponseWriter, r *http.Request) {
	io.Copy(io.Discard, http.MaxBytesReader(w, r.Body, maxBodyBytes))

	resp, err := h.service.RecordApplication(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleDelete handles DELETE /api/v1/jobsdata/{id} requests.
func (h *JobHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
