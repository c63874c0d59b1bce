package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sporthub/sporthub-api/internal/domain"
	"github.com/sporthub/sporthub-api/internal/dto"
	"github.com/sporthub/sporthub-api/internal/service"
	"github.com/sporthub/sporthub-api/pkg/middleware"
	"github.com/sporthub/sporthub-api/pkg/response"
)

// TeamHandler handles team HTTP requests
type TeamHandler struct {
	teamService service.TeamService
}

// NewTeamHandler creates a new TeamHandler
func NewTeamHandler(teamService service.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// Create handles POST /teams (team_manager or admin)
func (h *TeamHandler) Create(c *gin.Context) {
	var req dto.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Authentication required"))
		return
	}
	req.CreatedBy = userID

	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	team, err := h.teamService.CreateTeam(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Event not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to create team"))
		return
	}

	c.JSON(http.StatusCreated, response.Success(toTeamResponse(team)))
}

// Get handles GET /teams/:id - team detail with member list
func (h *TeamHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	team, members, err := h.teamService.GetTeam(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Team not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to get team"))
		return
	}

	memberResponses := make([]*dto.TeamMemberResponse, len(members))
	for i, m := range members {
		memberResponses[i] = toTeamMemberResponse(m)
	}

	c.JSON(http.StatusOK, response.Success(&dto.TeamDetailResponse{
		Team:    toTeamResponse(team),
		Members: memberResponses,
	}))
}

// Members handles GET /teams/:id/members
func (h *TeamHandler) Members(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	_, members, err := h.teamService.GetTeam(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Team not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to list members"))
		return
	}

	memberResponses := make([]*dto.TeamMemberResponse, len(members))
	for i, m := range members {
		memberResponses[i] = toTeamMemberResponse(m)
	}

	c.JSON(http.StatusOK, response.Success(memberResponses))
}

// List handles GET /teams
func (h *TeamHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	teams, total, err := h.teamService.ListTeams(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to list teams"))
		return
	}

	teamResponses := make([]*dto.TeamResponse, len(teams))
	for i, team := range teams {
		teamResponses[i] = toTeamResponse(team)
	}

	c.JSON(http.StatusOK, response.Paginated(teamResponses, offset/limit+1, limit, int64(total)))
}

// My handles GET /teams/my - teams managed by the caller
func (h *TeamHandler) My(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Authentication required"))
		return
	}

	teams, err := h.teamService.MyTeams(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to list teams"))
		return
	}

	teamResponses := make([]*dto.TeamResponse, len(teams))
	for i, team := range teams {
		teamResponses[i] = toTeamResponse(team)
	}

	c.JSON(http.StatusOK, response.Success(teamResponses))
}

// Update handles PUT /teams/:id
func (h *TeamHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	var req dto.UpdateTeamRequest
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

	team, err := h.teamService.UpdateTeam(c.Request.Context(), id, &req, userID, domain.Role(role))
	if err != nil {
		if errors.Is(err, domain.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Team not found"))
			return
		}
		if errors.Is(err, domain.ErrNotTeamManager) {
			c.JSON(http.StatusForbidden, response.Forbidden("Only the team manager can update this team"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to update team"))
		return
	}

	c.JSON(http.StatusOK, response.Success(toTeamResponse(team)))
}

// Delete handles DELETE /teams/:id
func (h *TeamHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	userID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)

	if err := h.teamService.DeleteTeam(c.Request.Context(), id, userID, domain.Role(role)); err != nil {
		if errors.Is(err, domain.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Team not found"))
			return
		}
		if errors.Is(err, domain.ErrNotTeamManager) {
			c.JSON(http.StatusForbidden, response.Forbidden("Only the team manager can delete this team"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to delete team"))
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"message": "Team deleted"}))
}

// AddMember handles POST /teams/:id/members
func (h *TeamHandler) AddMember(c *gin.Context) {
	teamID := c.Param("id")
	if teamID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	var req dto.AddTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	callerID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)

	if err := h.teamService.AddMember(c.Request.Context(), teamID, req.UserID, callerID, domain.Role(role)); err != nil {
		switch {
		case errors.Is(err, domain.ErrTeamNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Team not found"))
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("User not found"))
		case errors.Is(err, domain.ErrNotTeamManager):
			c.JSON(http.StatusForbidden, response.Forbidden("Only the team manager can add members"))
		case errors.Is(err, domain.ErrAlreadyTeamMember):
			c.JSON(http.StatusConflict, response.Conflict("User is already a member of this team"))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError("Failed to add member"))
		}
		return
	}

	c.JSON(http.StatusCreated, response.Success(gin.H{"message": "Member added"}))
}

// RemoveMember handles DELETE /teams/:id/members/:user_id
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	teamID := c.Param("id")
	userID := c.Param("user_id")
	if teamID == "" || userID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Team ID and user ID are required"))
		return
	}

	callerID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)

	if err := h.teamService.RemoveMember(c.Request.Context(), teamID, userID, callerID, domain.Role(role)); err != nil {
		switch {
		case errors.Is(err, domain.ErrTeamNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Team not found"))
		case errors.Is(err, domain.ErrNotTeamMember):
			c.JSON(http.StatusNotFound, response.NotFound("User is not a member of this team"))
		case errors.Is(err, domain.ErrNotTeamManager):
			c.JSON(http.StatusForbidden, response.Forbidden("Only the team manager can remove members"))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError("Failed to remove member"))
		}
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"message": "Member removed"}))
}

func toTeamResponse(team *domain.Team) *dto.TeamResponse {
	return &dto.TeamResponse{
		ID:        team.ID,
		Name:      team.Name,
		Sport:     team.Sport,
		EventID:   team.EventID,
		CreatedBy: team.CreatedBy,
		CreatedAt: team.CreatedAt.Format(time.RFC3339),
	}
}

func toTeamMemberResponse(m *domain.TeamMember) *dto.TeamMemberResponse {
	return &dto.TeamMemberResponse{
		TeamID:   m.TeamID,
		UserID:   m.UserID,
		JoinedAt: m.JoinedAt.Format(time.RFC3339),
	}
}
