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

type RoomHandler struct {
	cmds commands.RoomCommands
	q    queries.HotelQueries
}

func NewRoomHandler(cmds commands.RoomCommands, q queries.HotelQueries) *RoomHandler {
	return &RoomHandler{cmds: cmds, q: q}
}

func (h *RoomHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithDomainError(c, errs.ErrStaffRequired)
		return
	}
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.CreateRoom(c.Request.Context(), req.ToCommand(), actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.q.ListRooms(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRooms(rooms))
}

// ChangeStatus moves a room in or out of service.
func (h *RoomHandler) ChangeStatus(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithDomainError(c, errs.ErrStaffRequired)
		return
	}
	var req reqdto.ChangeRoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	number := strings.TrimSpace(c.Param("number"))
	view, err := h.cmds.ChangeRoomStatus(c.Request.Context(), number, req.ToStatus(), actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
