package adaptor

import (
	"encoding/json"
	"net/http"

	"stayease/internal/dto/request"
	"stayease/internal/usecase"
	"stayease/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("Failed to decode register request", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Registration successful", resp)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("Failed to decode login request", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Login successful", resp)
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Logout successful", nil)
}

// Profile handles GET /auth/profile
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.Profile(r.Context(), userID.String())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved", resp)
}
