package api

import (
	"context"
	"net/http"
	"strings"

	"hotel-kiosk/internal/domain/staff"
	reqdto "hotel-kiosk/internal/handler/dto/request"
	resdto "hotel-kiosk/internal/handler/dto/response"
	"hotel-kiosk/internal/handler/httperr"
	"hotel-kiosk/internal/handler/middleware"
	"hotel-kiosk/internal/pkg/errs"
	"hotel-kiosk/internal/usecase/commands"
	"hotel-kiosk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.HotelQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.HotelQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// Create books rooms for a guest. A discount in the body requires a staff token.
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	var actor *staff.Actor
	if a, ok := middleware.GetActor(c); ok {
		actor = &a
	}
	cmd, err := req.ToCommand(actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	view, err := h.cmds.CreateReservation(c.Request.Context(), cmd)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *ReservationHandler) Get(c *gin.Context) {
	view, err := h.q.GetReservation(c.Request.Context(), confirmationParam(c))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ReservationHandler) CheckIn(c *gin.Context) {
	h.transition(c, h.cmds.CheckIn)
}

func (h *ReservationHandler) CheckOut(c *gin.Context) {
	h.transition(c, h.cmds.CheckOut)
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cmds.Cancel)
}

func (h *ReservationHandler) RecordPayment(c *gin.Context) {
	var req reqdto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.RecordPayment(c.Request.Context(), confirmationParam(c), req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPaymentResult(result))
}

func (h *ReservationHandler) ApplyDiscount(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithDomainError(c, errs.ErrStaffRequired)
		return
	}
	var req reqdto.ApplyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.ApplyDiscount(c.Request.Context(), confirmationParam(c), *req.Percentage, actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ReservationHandler) MarkNoShow(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithDomainError(c, errs.ErrStaffRequired)
		return
	}
	view, err := h.cmds.MarkNoShow(c.Request.Context(), confirmationParam(c), actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ReservationHandler) transition(c *gin.Context, fn func(ctx context.Context, confirmation string) (*queries.ReservationView, error)) {
	view, err := fn(c.Request.Context(), confirmationParam(c))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Kiosk keyboards send whatever case the guest typed.
func confirmationParam(c *gin.Context) string {
	return strings.ToUpper(strings.TrimSpace(c.Param("confirmation")))
}
