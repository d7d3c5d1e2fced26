package api

import (
	"net/http"
	"strings"

	reqdto "hotel-kiosk/internal/handler/dto/request"
	resdto "hotel-kiosk/internal/handler/dto/response"
	"hotel-kiosk/internal/handler/httperr"
	"hotel-kiosk/internal/handler/middleware"
	"hotel-kiosk/internal/pkg/errs"
	"hotel-kiosk/internal/usecase/commands"
	"hotel-kiosk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

type LoyaltyHandler struct {
	cmds commands.LoyaltyCommands
	q    queries.HotelQueries
}

func NewLoyaltyHandler(cmds commands.LoyaltyCommands, q queries.HotelQueries) *LoyaltyHandler {
	return &LoyaltyHandler{cmds: cmds, q: q}
}

func (h *LoyaltyHandler) Enroll(c *gin.Context) {
	var req reqdto.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Enroll(c.Request.Context(), req.ToDetails())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *LoyaltyHandler) Get(c *gin.Context) {
	view, err := h.q.GetLoyaltyAccount(c.Request.Context(), memberNumberParam(c))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type historyQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1"`
}

func (h *LoyaltyHandler) Transactions(c *gin.Context) {
	var q historyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	limit := q.Limit
	switch {
	case limit == 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}

	number := memberNumberParam(c)
	items, err := h.q.LoyaltyHistory(c.Request.Context(), number, limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLoyaltyHistory(number, items))
}

// Adjust applies a signed manual correction. Staff only.
func (h *LoyaltyHandler) Adjust(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithDomainError(c, errs.ErrStaffRequired)
		return
	}
	var req reqdto.AdjustPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Adjust(c.Request.Context(), memberNumberParam(c), req.Points, req.TrimmedReason(), actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Redeem burns points outside of a booking. Staff only.
func (h *LoyaltyHandler) Redeem(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithDomainError(c, errs.ErrStaffRequired)
		return
	}
	var req reqdto.RedeemPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Redeem(c.Request.Context(), memberNumberParam(c), req.Points, actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRedeemResult(result))
}

func memberNumberParam(c *gin.Context) string {
	return strings.ToUpper(strings.TrimSpace(c.Param("number")))
}
