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

// RegistrationHandler handles registration HTTP requests
type RegistrationHandler struct {
	regService service.RegistrationService
}

// NewRegistrationHandler creates a new RegistrationHandler
func NewRegistrationHandler(regService service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		regService: regService,
	}
}

// Create handles POST /registrations - registers for an event
func (h *RegistrationHandler) Create(c *gin.Context) {
	var req dto.CreateRegistrationRequest
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

	reg, err := h.regService.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEventNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Event not found"))
		case errors.Is(err, domain.ErrTeamNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Team not found"))
		case errors.Is(err, domain.ErrRegistrationClosed):
			c.JSON(http.StatusBadRequest, response.BadRequest("Registration deadline has passed"))
		case errors.Is(err, domain.ErrEventFull):
			c.JSON(http.StatusConflict, response.Conflict("Event has reached its participant limit"))
		case errors.Is(err, domain.ErrAlreadyRegistered):
			c.JSON(http.StatusConflict, response.Conflict("Already registered for this event"))
		case errors.Is(err, domain.ErrNotTeamManager):
			c.JSON(http.StatusForbidden, response.Forbidden("Only the team manager can register the team"))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError("Failed to register"))
		}
		return
	}

	c.JSON(http.StatusCreated, response.Success(toRegistrationResponse(reg)))
}

// My handles GET /registrations/my - the aggregated per-user view
func (h *RegistrationHandler) My(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Authentication required"))
		return
	}

	views, err := h.regService.MyRegistrations(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to list registrations"))
		return
	}

	viewResponses := make([]*dto.RegistrationViewResponse, len(views))
	for i, view := range views {
		viewResponses[i] = toRegistrationViewResponse(view)
	}

	c.JSON(http.StatusOK, response.Success(viewResponses))
}

// ListByEvent handles GET /events/:id/registrations (admin or organizer)
func (h *RegistrationHandler) ListByEvent(c *gin.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Event ID is required"))
		return
	}

	regs, err := h.regService.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Event not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to list registrations"))
		return
	}

	regResponses := make([]*dto.RegistrationResponse, len(regs))
	for i, reg := range regs {
		regResponses[i] = toRegistrationResponse(reg)
	}

	c.JSON(http.StatusOK, response.Success(regResponses))
}

// UpdateStatus handles PUT /registrations/:id/status (admin or organizer)
func (h *RegistrationHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	var req dto.UpdateRegistrationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	userID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)

	reg, err := h.regService.UpdateStatus(c.Request.Context(), id, req.Status, userID, domain.Role(role))
	if err != nil {
		if errors.Is(err, domain.ErrRegistrationNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Registration not found"))
			return
		}
		if errors.Is(err, domain.ErrEventNotEditable) {
			c.JSON(http.StatusForbidden, response.Forbidden("Only the event organizer can update this registration"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to update registration"))
		return
	}

	c.JSON(http.StatusOK, response.Success(toRegistrationResponse(reg)))
}

func toRegistrationResponse(reg *domain.Registration) *dto.RegistrationResponse {
	return &dto.RegistrationResponse{
		ID:               reg.ID,
		EventID:          reg.EventID,
		UserID:           reg.UserID,
		TeamID:           reg.TeamID,
		Status:           reg.Status,
		RegistrationDate: reg.RegistrationDate.Format(time.RFC3339),
	}
}

func toRegistrationViewResponse(view *domain.RegistrationView) *dto.RegistrationViewResponse {
	resp := &dto.RegistrationViewResponse{
		ID:               view.Registration.ID,
		Type:             string(view.Type),
		Status:           view.Status,
		RegistrationDate: view.Registration.RegistrationDate.Format(time.RFC3339),
	}
	if view.Event != nil {
		resp.Event = toEventResponse(view.Event)
	}
	if view.Team != nil {
		resp.Team = &dto.TeamSummary{ID: view.Team.ID, Name: view.Team.Name}
	}
	if view.Payment != nil {
		resp.Payment = &dto.PaymentSummary{
			ID:     view.Payment.ID,
			Amount: view.Payment.Amount,
			Status: view.Payment.Status,
		}
	}
	return resp
}
