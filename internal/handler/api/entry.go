package api

import (
	"errors"
	"net/http"

	reqdto "raffle-engine/internal/handler/dto/request"
	resdto "raffle-engine/internal/handler/dto/response"
	"raffle-engine/internal/handler/httperr"
	"raffle-engine/internal/handler/middleware"
	"raffle-engine/internal/pkg/jwt"
	"raffle-engine/internal/usecase/commands"
	"raffle-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EntryHandler struct {
	cmds commands.EntryCommands
	q    queries.TicketQueries
}

func NewEntryHandler(cmds commands.EntryCommands, q queries.TicketQueries) *EntryHandler {
	return &EntryHandler{cmds: cmds, q: q}
}

// @Summary Issue tickets
// @Description Issue raffle tickets after payment confirmation
// @Tags entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Raffle ID"
// @Param request body reqdto.CreateEntriesRequest true "Issue tickets request"
// @Success 201 {array} resdto.TicketResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /raffles/{id}/entries [post]
func (h *EntryHandler) Create(c *gin.Context) {
	raffleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.CreateEntriesRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	tickets, err := h.cmds.IssueTickets(c.Request.Context(), raffleID, req.UserID, req.Quantity)
	if err != nil {
		abortWithCommandError(c, err, "Ticket issuance failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"tickets": resdto.FromTicketViews(tickets)})
}

// @Summary List entries
// @Description List a user's tickets for a raffle
// @Tags entries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Raffle ID"
// @Param userId query string false "User ID (admin/service only; defaults to caller)"
// @Success 200 {array} resdto.TicketResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /raffles/{id}/entries [get]
func (h *EntryHandler) List(c *gin.Context) {
	raffleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing authenticated user"), "Unauthorized", nil)
		return
	}
	userID := actorID
	if v := c.Query("userId"); v != "" {
		parsed, parseErr := uuid.Parse(v)
		if parseErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, parseErr, "Invalid userId", nil)
			return
		}
		role, _ := middleware.GetUserRole(c)
		if parsed != actorID && role != jwt.RoleAdmin && role != jwt.RoleService {
			httperr.AbortWithError(c, http.StatusForbidden, errors.New("cross-user ticket access"), "Access denied", nil)
			return
		}
		userID = parsed
	}

	tickets, err := h.q.ListByRaffleAndUser(c.Request.Context(), raffleID, userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load tickets", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickets": resdto.FromTicketViews(tickets)})
}
