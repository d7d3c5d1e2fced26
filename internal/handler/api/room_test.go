//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-kiosk/internal/domain/catalog"
	"hotel-kiosk/internal/domain/room"
	"hotel-kiosk/internal/domain/staff"
	"hotel-kiosk/internal/handler/api"
	resdto "hotel-kiosk/internal/handler/dto/response"
	"hotel-kiosk/internal/pkg/errs"
	"hotel-kiosk/internal/pkg/money"
	"hotel-kiosk/internal/usecase/commands"
	"hotel-kiosk/internal/usecase/queries"
	"hotel-kiosk/tests/common/httptest"
	commandsmock "hotel-kiosk/tests/mock/commands"
	queriesmock "hotel-kiosk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRoomCommands
	mockQueries  *queriesmock.MockHotelQueries
	auth         staffAuth
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRoomCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockHotelQueries(s.mockCtrl)
	s.auth = newStaffAuth()
	h := api.NewRoomHandler(s.mockCommands, s.mockQueries)

	staffOnly := s.auth.middleware.RequireStaff()
	s.router.GET("/rooms", h.List)
	s.router.POST("/rooms", staffOnly, h.Create)
	s.router.PATCH("/rooms/:number/status", staffOnly, h.ChangeStatus)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func (s *RoomHandlerTestSuite) TestList() {
	s.mockQueries.EXPECT().ListRooms(gomock.Any()).
		Return([]queries.RoomView{{Number: "101", RoomType: "SINGLE", Status: "AVAILABLE"}}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "")

	var body resdto.RoomListResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body.Rooms, 1)
	s.Equal("101", body.Rooms[0].Number)
}

func (s *RoomHandlerTestSuite) TestCreate() {
	token, actor := s.auth.token(s.T(), staff.RoleManager)

	s.Run("success: type code is normalised", func() {
		override := money.FromDollars(80)
		want := commands.CreateRoomRequest{Number: "305", RoomType: catalog.RoomTypeDeluxe, Floor: 3, PriceOverride: &override}
		s.mockCommands.EXPECT().CreateRoom(gomock.Any(), want, actor).
			Return(&queries.RoomView{Number: "305", RoomType: "DELUXE", Floor: 3}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms",
			map[string]any{"number": " 305 ", "room_type": "deluxe", "floor": 3, "price_override": "80.00"}, token)
		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	})

	s.Run("error: duplicate number is 409", func() {
		s.mockCommands.EXPECT().CreateRoom(gomock.Any(), gomock.Any(), actor).Return(nil, errs.ErrRoomNumberTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms",
			map[string]any{"number": "101", "room_type": "SINGLE", "floor": 1}, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: anonymous is 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms",
			map[string]any{"number": "101", "room_type": "SINGLE", "floor": 1}, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *RoomHandlerTestSuite) TestChangeStatus() {
	token, actor := s.auth.token(s.T(), staff.RoleAdmin)
	url := "/rooms/101/status"

	s.Run("success: out for maintenance", func() {
		s.mockCommands.EXPECT().ChangeRoomStatus(gomock.Any(), "101", room.StatusMaintenance, actor).
			Return(&queries.RoomView{Number: "101", Status: "MAINTENANCE"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "maintenance"}, token)

		var body queries.RoomView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("MAINTENANCE", body.Status)
	})

	s.Run("error: unknown status is 400", func() {
		s.mockCommands.EXPECT().ChangeRoomStatus(gomock.Any(), "101", room.Status("PAINTED"), actor).
			Return(nil, room.ErrInvalidStatus).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "painted"}, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, room.ErrInvalidStatus.Error())
	})

	s.Run("error: occupied room is 409", func() {
		s.mockCommands.EXPECT().ChangeRoomStatus(gomock.Any(), "101", room.StatusMaintenance, actor).
			Return(nil, room.ErrIllegalStatusTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "MAINTENANCE"}, token)
		s.Equal(http.StatusConflict, rec.Code)
	})
}
