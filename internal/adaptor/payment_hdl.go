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

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// GetAllPayments handles GET /payments
func (h *PaymentHandler) GetAllPayments(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetAllPayments(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Payments retrieved", resp)
}

// CreatePayment handles POST /payments
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("Failed to decode create payment request", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.CreatePayment(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Payment created", resp)
}

// ConfirmPayment handles PUT /payments/{id}
func (h *PaymentHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "id")

	resp, err := h.service.ConfirmPayment(r.Context(), paymentID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Payment confirmed", resp)
}
