package handler

import (
	"net/http"

	"github.com/rngenius/rngenius-go/internal/middleware"
	"github.com/rngenius/rngenius-go/internal/model"
	"github.com/rngenius/rngenius-go/internal/service"
)

// UserHandler handles HTTP requests for user accounts and authentication.
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// HandleSignUp handles POST /user/signup requests.
func (h *UserHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	var req model.SignUpRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user := &model.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	}

	if err := h.service.AddUser(r.Context(), user); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// HandleLogin handles POST /user/login requests.
func (h *UserHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleRefresh handles POST /user/refresh requests.
func (h *UserHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	var req model.RefreshRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Refresh(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleChangePassword handles PUT /user/changePassword requests.
func (h *UserHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.RequesterIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Field: "authorization", Message: "Unauthorized"})
		return
	}

	var req model.ChangePasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.service.ChangePassword(r.Context(), requesterID, req.OldPassword, req.NewPassword); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleMe handles GET /user/me requests.
func (h *UserHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.RequesterIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Field: "authorization", Message: "Unauthorized"})
		return
	}

	user, err := h.service.GetUserByID(r.Context(), requesterID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
