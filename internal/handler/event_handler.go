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

// EventHandler handles event-related HTTP requests
type EventHandler struct {
	eventService service.EventService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// List handles GET /events - lists events with pagination and filters
func (h *EventHandler) List(c *gin.Context) {
	var filter dto.EventListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid query parameters"))
		return
	}

	events, total, err := h.eventService.ListEvents(c.Request.Context(), &filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to list events"))
		return
	}

	eventResponses := make([]*dto.EventResponse, len(events))
	for i, event := range events {
		eventResponses[i] = toEventResponse(event)
	}

	filter.SetDefaults()
	c.JSON(http.StatusOK, response.Paginated(eventResponses, filter.Offset/filter.Limit+1, filter.Limit, int64(total)))
}

// Get handles GET /events/:id - retrieves an event, enriched with the
// caller's registration state when authenticated
func (h *EventHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	userID, _ := middleware.GetUserID(c)

	event, registered, err := h.eventService.GetEventForUser(c.Request.Context(), id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Event not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to get event"))
		return
	}

	c.JSON(http.StatusOK, response.Success(&dto.EventDetailResponse{
		Event:             toEventResponse(event),
		AlreadyRegistered: registered,
	}))
}

// RegistrationStatus handles GET /events/:id/registration - reports whether
// the caller already holds a registration for the event, directly or through
// a team they created
func (h *EventHandler) RegistrationStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Authentication required"))
		return
	}

	_, registered, err := h.eventService.GetEventForUser(c.Request.Context(), id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Event not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to check registration"))
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"registered": registered}))
}

// Create handles POST /events - creates a new event (admin or organizer)
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Authentication required"))
		return
	}
	req.OrganizerID = userID

	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to create event"))
		return
	}

	c.JSON(http.StatusCreated, response.Success(toEventResponse(event)))
}

// Update handles PUT /events/:id - updates an event
func (h *EventHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	var req dto.UpdateEventRequest
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

	event, err := h.eventService.UpdateEvent(c.Request.Context(), id, &req, userID, domain.Role(role))
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Event not found"))
			return
		}
		if errors.Is(err, domain.ErrEventNotEditable) {
			c.JSON(http.StatusForbidden, response.Forbidden("Event can only be modified by its organizer"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to update event"))
		return
	}

	c.JSON(http.StatusOK, response.Success(toEventResponse(event)))
}

// Delete handles DELETE /events/:id - soft deletes an event
func (h *EventHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	userID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)

	if err := h.eventService.DeleteEvent(c.Request.Context(), id, userID, domain.Role(role)); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Event not found"))
			return
		}
		if errors.Is(err, domain.ErrEventNotEditable) {
			c.JSON(http.StatusForbidden, response.Forbidden("Event can only be deleted by its organizer"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to delete event"))
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"deleted": true}))
}

func toEventResponse(event *domain.Event) *dto.EventResponse {
	return &dto.EventResponse{
		ID:                   event.ID,
		Name:                 event.Name,
		Description:          event.Description,
		Category:             event.Category,
		Venue:                event.Venue,
		EventDate:            event.EventDate.Format(time.RFC3339),
		RegistrationDeadline: event.RegistrationDeadline.Format(time.RFC3339),
		Fee:                  event.Fee,
		MaxParticipants:      event.MaxParticipants,
		OrganizerID:          event.OrganizerID,
		Status:               event.Status,
		RegistrationOpen:     event.RegistrationOpen(time.Now()),
		CreatedAt:            event.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            event.UpdatedAt.Format(time.RFC3339),
	}
}
