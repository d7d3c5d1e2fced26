package api

import (
	"net/http"
	"strings"

	"hotel-kiosk/internal/domain/catalog"
	reqdto "hotel-kiosk/internal/handler/dto/request"
	resdto "hotel-kiosk/internal/handler/dto/response"
	"hotel-kiosk/internal/handler/httperr"
	"hotel-kiosk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.HotelQueries
}

func NewCatalogHandler(q queries.HotelQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

func (h *CatalogHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.q.Catalog(c.Request.Context()))
}

type availabilityQuery struct {
	RoomType string `form:"room_type" binding:"required"`
	CheckIn  string `form:"check_in" binding:"required"`
	CheckOut string `form:"check_out" binding:"required"`
}

// Availability lists free rooms of one type for a stay.
func (h *CatalogHandler) Availability(c *gin.Context) {
	var q availabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	checkIn, err := reqdto.ParseDate(q.CheckIn)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	checkOut, err := reqdto.ParseDate(q.CheckOut)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	roomType := catalog.RoomTypeCode(strings.ToUpper(q.RoomType))
	rooms, err := h.q.FindAvailableRooms(c.Request.Context(), roomType, checkIn, checkOut)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailableRooms(string(roomType), q.CheckIn, q.CheckOut, rooms))
}

// Quote prices a prospective stay without holding any inventory.
func (h *CatalogHandler) Quote(c *gin.Context) {
	var req reqdto.StayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	query, err := req.ToQuery()
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	view, err := h.q.Quote(c.Request.Context(), query)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
