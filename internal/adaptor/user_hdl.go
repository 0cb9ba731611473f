package adaptor

import (
	"encoding/json"
	"net/http"

	"stayease/internal/dto/request"
	"stayease/internal/usecase"
	"stayease/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetAllUsers handles GET /users
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	req := request.PaginatedRequest{
		Page:    utils.ParseInt(r.URL.Query().Get("page"), 1),
		PerPage: utils.ParseInt(r.URL.Query().Get("per_page"), 10),
	}

	resp, err := h.service.GetAllUsers(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Users retrieved", resp)
}

// GetUser handles GET /users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	resp, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "User retrieved", resp)
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("Failed to decode create user request", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.CreateUser(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "User created", resp)
}

// UpdateUser handles PUT /users/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	var req request.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("Failed to decode update user request", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.UpdateUser(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "User updated", resp)
}

// DeleteUser handles DELETE /users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	if err := h.service.DeleteUser(r.Context(), userID); err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "User deleted", nil)
}
