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

// FeedbackHandler handles event feedback and result HTTP requests
type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

// NewFeedbackHandler creates a new FeedbackHandler
func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
	}
}

// CreateFeedback handles POST /events/:id/feedback
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	var req dto.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}
	req.EventID = c.Param("id")

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

	feedback, err := h.feedbackService.CreateFeedback(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Event not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to create feedback"))
		return
	}

	c.JSON(http.StatusCreated, response.Success(toFeedbackResponse(feedback)))
}

// ListFeedback handles GET /events/:id/feedback
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Event ID is required"))
		return
	}

	feedbacks, err := h.feedbackService.ListFeedback(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Event not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to list feedback"))
		return
	}

	feedbackResponses := make([]*dto.FeedbackResponse, len(feedbacks))
	for i, f := range feedbacks {
		feedbackResponses[i] = toFeedbackResponse(f)
	}

	c.JSON(http.StatusOK, response.Success(feedbackResponses))
}

// CreateResult handles POST /events/:id/results (admin or organizer)
func (h *FeedbackHandler) CreateResult(c *gin.Context) {
	var req dto.CreateResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}
	req.EventID = c.Param("id")

	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	result, err := h.feedbackService.CreateResult(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Event not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to create result"))
		return
	}

	c.JSON(http.StatusCreated, response.Success(toResultResponse(result)))
}

// ListResults handles GET /events/:id/results
func (h *FeedbackHandler) ListResults(c *gin.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Event ID is required"))
		return
	}

	results, err := h.feedbackService.ListResults(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Event not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to list results"))
		return
	}

	resultResponses := make([]*dto.ResultResponse, len(results))
	for i, r := range results {
		resultResponses[i] = toResultResponse(r)
	}

	c.JSON(http.StatusOK, response.Success(resultResponses))
}

func toFeedbackResponse(f *domain.Feedback) *dto.FeedbackResponse {
	return &dto.FeedbackResponse{
		ID:        f.ID,
		EventID:   f.EventID,
		UserID:    f.UserID,
		Rating:    f.Rating,
		Comment:   f.Comment,
		CreatedAt: f.CreatedAt.Format(time.RFC3339),
	}
}

func toResultResponse(r *domain.Result) *dto.ResultResponse {
	return &dto.ResultResponse{
		ID:       r.ID,
		EventID:  r.EventID,
		UserID:   r.UserID,
		TeamID:   r.TeamID,
		Position: r.Position,
		Score:    r.Score,
	}
}
