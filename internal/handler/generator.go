package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rngenius/rngenius-go/internal/middleware"
	"github.com/rngenius/rngenius-go/internal/model"
	"github.com/rngenius/rngenius-go/internal/service"
)

// GeneratorHandler handles HTTP requests for generators and their options.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGetGenerator handles GET /generator/{id} requests.
func (h *GeneratorHandler) HandleGetGenerator(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.RequesterIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Field: "authorization", Message: "Unauthorized"})
		return
	}

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	gen, err := h.service.GetGeneratorByID(r.Context(), id, requesterID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, gen)
}

// HandleMyGenerators handles GET /generator/myGenerators requests.
func (h *GeneratorHandler) HandleMyGenerators(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.RequesterIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Field: "authorization", Message: "Unauthorized"})
		return
	}

	generators, err := h.service.GetMyGenerators(r.Context(), requesterID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, generators)
}

// HandleAddGenerator handles POST /generator/add requests.
func (h *GeneratorHandler) HandleAddGenerator(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.RequesterIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Field: "authorization", Message: "Unauthorized"})
		return
	}

	var req model.AddGeneratorRequest
	if !decodeBody(w, r, &req) {
		return
	}

	gen, err := h.service.AddGenerator(r.Context(), &req, requesterID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, gen)
}

// HandleDeleteGenerator handles DELETE /generator/delete/{id} requests.
func (h *GeneratorHandler) HandleDeleteGenerator(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.RequesterIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Field: "authorization", Message: "Unauthorized"})
		return
	}

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteGeneratorByID(r.Context(), id, requesterID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleAddOption handles PUT /generator/addOption/{generatorId} requests.
func (h *GeneratorHandler) HandleAddOption(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.RequesterIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Field: "authorization", Message: "Unauthorized"})
		return
	}

	generatorID, ok := pathID(w, r, "generatorId")
	if !ok {
		return
	}

	var req model.AddOptionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	opt, err := h.service.AddGeneratorOption(r.Context(), generatorID, req, requesterID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, opt)
}

// HandleDeleteOption handles PUT /generator/deleteOption/{optionId}?category= requests.
func (h *GeneratorHandler) HandleDeleteOption(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.RequesterIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Field: "authorization", Message: "Unauthorized"})
		return
	}

	optionID, ok := pathID(w, r, "optionId")
	if !ok {
		return
	}

	category := r.URL.Query().Get("category")
	if category == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Field: "category", Message: "Option category is required"})
		return
	}

	if err := h.service.DeleteCategorizedGeneratorOption(r.Context(), optionID, category, requesterID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleGenerate handles GET /generator/generate/{id} requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.RequesterIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Field: "authorization", Message: "Unauthorized"})
		return
	}

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	opt, err := h.service.GenerateOption(r.Context(), id, requesterID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, opt)
}

// pathID parses a numeric chi URL parameter, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Field: name, Message: "Invalid id"})
		return 0, false
	}
	return id, true
}
