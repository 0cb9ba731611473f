package adaptor

import (
	"encoding/json"
	"net/http"

	"stayease/internal/data/entity"
	"stayease/internal/dto/request"
	"stayease/internal/usecase"
	"stayease/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// Quote handles POST /bookings/quote
func (h *BookingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.QuoteReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("Failed to decode quote request", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Quote(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Reservation priced", resp)
}

// Create handles POST /bookings
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("Failed to decode create booking request", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Create(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Booking created", resp)
}

// GetAllBookings handles GET /bookings
func (h *BookingHandler) GetAllBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	role, _ := utils.GetRoleFromContext(r.Context())

	req := request.ListBookingsRequest{
		PaginatedRequest: request.PaginatedRequest{
			Page:    utils.ParseInt(r.URL.Query().Get("page"), 1),
			PerPage: utils.ParseInt(r.URL.Query().Get("per_page"), 10),
		},
		Query: r.URL.Query().Get("q"),
	}

	resp, err := h.service.GetAllBookings(r.Context(), userID.String(), entity.UserRole(role), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved", resp)
}

// GetBooking handles GET /bookings/{id}
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	role, _ := utils.GetRoleFromContext(r.Context())
	bookingID := chi.URLParam(r, "id")

	resp, err := h.service.GetBooking(r.Context(), bookingID, userID.String(), entity.UserRole(role))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Booking retrieved", resp)
}

// Approve handles POST /bookings/{id}/approve
func (h *BookingHandler) Approve(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	resp, err := h.service.Approve(r.Context(), bookingID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Booking approved", resp)
}

// Reject handles POST /bookings/{id}/reject
func (h *BookingHandler) Reject(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	var req request.RejectBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("Failed to decode reject request", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Reject(r.Context(), bookingID, &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Booking rejected", resp)
}

// CheckIn handles POST /bookings/{id}/check-in
func (h *BookingHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	resp, err := h.service.CheckIn(r.Context(), bookingID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Guest checked in", resp)
}

// CheckOut handles POST /bookings/{id}/check-out
func (h *BookingHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	resp, err := h.service.CheckOut(r.Context(), bookingID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Guest checked out", resp)
}
