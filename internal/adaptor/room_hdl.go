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

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "room")),
	}
}

// GetAllRooms handles GET /rooms
func (h *RoomHandler) GetAllRooms(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetAllRooms(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Rooms retrieved", resp)
}

// GetRoom handles GET /rooms/{id}
func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")

	resp, err := h.service.GetRoom(r.Context(), roomID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Room retrieved", resp)
}

// CreateRoom handles POST /rooms
func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("Failed to decode create room request", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Room created", resp)
}

// UpdateRoom handles PUT /rooms/{id}
func (h *RoomHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")

	var req request.UpdateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("Failed to decode update room request", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.UpdateRoom(r.Context(), roomID, &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Room updated", resp)
}

// DeleteRoom handles DELETE /rooms/{id}
func (h *RoomHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")

	if err := h.service.DeleteRoom(r.Context(), roomID); err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Room deleted", nil)
}
