package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sporthub/sporthub-api/internal/domain"
	"github.com/sporthub/sporthub-api/internal/dto"
	"github.com/sporthub/sporthub-api/internal/service"
	"github.com/sporthub/sporthub-api/pkg/middleware"
	"github.com/sporthub/sporthub-api/pkg/response"
)

// PaymentHandler handles payment HTTP requests
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// Create handles POST /payments - charges the fee for a registration
func (h *PaymentHandler) Create(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Authentication required"))
		return
	}
	req.UserID = userID

	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	payment, err := h.paymentService.Pay(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRegistrationNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Registration not found"))
		case errors.Is(err, domain.ErrEventNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Event not found"))
		case errors.Is(err, domain.ErrPaymentAlreadyMade):
			c.JSON(http.StatusConflict, response.Conflict("Registration is already paid"))
		case errors.Is(err, domain.ErrPaymentDeclined):
			// The failed attempt is recorded, return it with the decline
			resp := response.Error(response.ErrCodePaymentDeclined, "Payment was declined")
			if payment != nil {
				resp.Data = toPaymentResponse(payment)
			}
			c.JSON(http.StatusPaymentRequired, resp)
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError("Failed to process payment"))
		}
		return
	}

	c.JSON(http.StatusCreated, response.Success(toPaymentResponse(payment)))
}

// GetByRegistration handles GET /registrations/:id/payment
func (h *PaymentHandler) GetByRegistration(c *gin.Context) {
	registrationID := c.Param("id")
	if registrationID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Registration ID is required"))
		return
	}

	payment, err := h.paymentService.GetByRegistration(c.Request.Context(), registrationID)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Payment not found"))
			return
		}
		if errors.Is(err, domain.ErrRegistrationNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Registration not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to get payment"))
		return
	}

	c.JSON(http.StatusOK, response.Success(toPaymentResponse(payment)))
}

func toPaymentResponse(p *domain.Payment) *dto.PaymentResponse {
	resp := &dto.PaymentResponse{
		ID:             p.ID,
		RegistrationID: p.RegistrationID,
		Amount:         p.Amount,
		Method:         p.Method,
		Status:         p.Status,
		TransactionID:  p.TransactionID,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
	}
	if p.PaymentDate != nil {
		formatted := p.PaymentDate.Format(time.RFC3339)
		resp.PaymentDate = &formatted
	}
	return resp
}
