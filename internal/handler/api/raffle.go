package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"raffle-engine/internal/domain/raffle"
	reqdto "raffle-engine/internal/handler/dto/request"
	resdto "raffle-engine/internal/handler/dto/response"
	"raffle-engine/internal/handler/httperr"
	"raffle-engine/internal/usecase/commands"
	"raffle-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RaffleHandler struct {
	cmds    commands.RaffleCommands
	draws   commands.DrawCommands
	q       queries.RaffleQueries
	winners queries.WinnerQueries
}

func NewRaffleHandler(
	cmds commands.RaffleCommands,
	draws commands.DrawCommands,
	q queries.RaffleQueries,
	winners queries.WinnerQueries,
) *RaffleHandler {
	return &RaffleHandler{cmds: cmds, draws: draws, q: q, winners: winners}
}

// @Summary Create raffle
// @Description Create a new raffle in DRAFT
// @Tags raffles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRaffleRequest true "Create raffle request"
// @Success 201 {object} resdto.RaffleResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /raffles [post]
func (h *RaffleHandler) Create(c *gin.Context) {
	var req reqdto.CreateRaffleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.CreateRaffle(c.Request.Context(), req.ToSpec())
	if err != nil {
		abortWithCommandError(c, err, "Create raffle failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load raffle", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRaffleView(view))
}

// @Summary Update raffle
// @Description Update an existing DRAFT raffle
// @Tags raffles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Raffle ID"
// @Param request body reqdto.UpdateRaffleRequest true "Update raffle request"
// @Success 200 {object} resdto.RaffleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /raffles/{id} [patch]
func (h *RaffleHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateRaffleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateRaffle(c.Request.Context(), id, req.ToSpec()); err != nil {
		abortWithCommandError(c, err, "Update raffle failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load raffle", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRaffleView(view))
}

// @Summary Publish raffle
// @Description Move a DRAFT raffle to READY and register the delayed draw
// @Tags raffles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Raffle ID"
// @Success 200 {object} resdto.RaffleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /raffles/{id}/publish [post]
func (h *RaffleHandler) Publish(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.PublishRaffle(c.Request.Context(), id); err != nil {
		abortWithCommandError(c, err, "Publish raffle failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load raffle", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRaffleView(view))
}

// @Summary Cancel raffle
// @Description Cancel a raffle from any non-terminal state
// @Tags raffles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Raffle ID"
// @Success 200 {object} resdto.RaffleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /raffles/{id}/cancel [post]
func (h *RaffleHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.CancelRaffle(c.Request.Context(), id); err != nil {
		abortWithCommandError(c, err, "Cancel raffle failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load raffle", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRaffleView(view))
}

// @Summary Execute drawing
// @Description Manually trigger winner selection for a raffle
// @Tags raffles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Raffle ID"
// @Success 200 {array} resdto.WinnerResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /raffles/{id}/draw [post]
func (h *RaffleHandler) Draw(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.draws.ExecuteDrawing(c.Request.Context(), id); err != nil {
		abortWithCommandError(c, err, "Drawing failed")
		return
	}
	views, err := h.winners.ListByRaffle(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load winners", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"winners": resdto.FromWinnerViews(views)})
}

// @Summary Get raffle
// @Description Get a raffle by ID
// @Tags raffles
// @Produce json
// @Param id path string true "Raffle ID"
// @Success 200 {object} resdto.RaffleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /raffles/{id} [get]
func (h *RaffleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRaffleView(view))
}

// @Summary List raffles
// @Description List raffles with optional status filter and keyset pagination
// @Tags raffles
// @Produce json
// @Param status query string false "Status filter"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.RaffleResponse
// @Failure 400 {object} map[string]string
// @Router /raffles [get]
func (h *RaffleHandler) List(c *gin.Context) {
	var statusPtr *string
	if v := c.Query("status"); v != "" {
		if !raffle.Status(v).IsValid() {
			httperr.AbortWithError(c, http.StatusBadRequest, errors.New("unknown status"), "Invalid status", nil)
			return
		}
		statusPtr = &v
	}
	limit := 20
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		decoded, err := queries.DecodeCursor(after)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		cursor = decoded
	}
	items, next, err := h.q.List(c.Request.Context(), statusPtr, limit, cursor)
	if err != nil {
		slog.Error("list raffles failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	resp := gin.H{"raffles": resdto.FromRaffleList(items)}
	if next != nil {
		resp["next_cursor"] = queries.EncodeCursor(*next)
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List winners
// @Description List winners of a raffle in rank order
// @Tags raffles
// @Produce json
// @Param id path string true "Raffle ID"
// @Success 200 {array} resdto.WinnerResponse
// @Failure 400 {object} map[string]string
// @Router /raffles/{id}/winners [get]
func (h *RaffleHandler) ListWinners(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	views, err := h.winners.ListByRaffle(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load winners", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"winners": resdto.FromWinnerViews(views)})
}

// abortWithCommandError maps command-side sentinel errors onto HTTP statuses.
func abortWithCommandError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, commands.ErrRaffleNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Raffle not found", nil)
	case errors.Is(err, commands.ErrRaffleConflict),
		errors.Is(err, commands.ErrNotDrawable),
		errors.Is(err, commands.ErrNoEntrants):
		httperr.AbortWithError(c, http.StatusConflict, err, msg, nil)
	case errors.Is(err, raffle.ErrEntryLimitExceeded):
		httperr.AbortWithError(c, http.StatusConflict, err, "Entry limit exceeded", nil)
	case errors.Is(err, commands.ErrEntryRejected),
		errors.Is(err, commands.ErrDomainValidation),
		errors.Is(err, commands.ErrDrawRejected):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, msg, nil)
	default:
		slog.Error("command failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
