//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-kiosk/internal/domain/catalog"
	"hotel-kiosk/internal/domain/reservation"
	"hotel-kiosk/internal/handler/api"
	resdto "hotel-kiosk/internal/handler/dto/response"
	"hotel-kiosk/internal/pkg/money"
	"hotel-kiosk/internal/usecase/queries"
	"hotel-kiosk/tests/common/builder"
	"hotel-kiosk/tests/common/httptest"
	"hotel-kiosk/tests/common/testutil"
	queriesmock "hotel-kiosk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockHotelQueries
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockHotelQueries(s.mockCtrl)
	h := api.NewCatalogHandler(s.mockQueries)

	s.router.GET("/catalog", h.Catalog)
	s.router.GET("/availability", h.Availability)
	s.router.POST("/quotes", h.Quote)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestCatalog() {
	s.mockQueries.EXPECT().Catalog(gomock.Any()).Return(queries.CatalogView{
		RoomTypes: []queries.RoomTypeView{{Code: "SINGLE", Name: "Single", MaxOccupancy: 2, BasePrice: money.FromDollars(100)}},
	}).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/catalog", nil, "")

	var body queries.CatalogView
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	httptest.AssertHeaders(s.T(), rec, map[string]string{"Content-Type": "application/json; charset=utf-8"})
	s.Require().Len(body.RoomTypes, 1)
	s.Equal("100.00", body.RoomTypes[0].BasePrice.String())
}

func (s *CatalogHandlerTestSuite) TestAvailability() {
	checkIn := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)

	s.Run("success: lists free rooms", func() {
		s.mockQueries.EXPECT().FindAvailableRooms(gomock.Any(), catalog.RoomTypeDouble, checkIn, checkOut).
			Return([]queries.RoomView{{Number: "201", RoomType: "DOUBLE"}, {Number: "202", RoomType: "DOUBLE"}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/availability?room_type=double&check_in=2026-01-10&check_out=2026-01-12", nil, "")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2, body.Available)
		s.Equal("DOUBLE", body.RoomType)
	})

	s.Run("success: nothing free is an empty list", func() {
		s.mockQueries.EXPECT().FindAvailableRooms(gomock.Any(), catalog.RoomTypePenthouse, checkIn, checkOut).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/availability?room_type=PENTHOUSE&check_in=2026-01-10&check_out=2026-01-12", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"room_type":"PENTHOUSE","check_in":"2026-01-10","check_out":"2026-01-12","available":0,"rooms":[]}`, rec.Body.String())
	})

	cases := []struct {
		name  string
		query string
		code  int
	}{
		{"missing room type", "check_in=2026-01-10&check_out=2026-01-12", http.StatusBadRequest},
		{"malformed date", "room_type=SINGLE&check_in=10-01-2026&check_out=2026-01-12", http.StatusBadRequest},
	}
	for _, tc := range cases {
		s.Run("error: "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?"+tc.query, nil, "")
			s.Equal(tc.code, rec.Code)
		})
	}

	s.Run("error: inverted range is 400", func() {
		s.mockQueries.EXPECT().FindAvailableRooms(gomock.Any(), catalog.RoomTypeSingle, checkOut, checkIn).
			Return(nil, reservation.ErrInvalidDateRange).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/availability?room_type=SINGLE&check_in=2026-01-12&check_out=2026-01-10", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, reservation.ErrInvalidDateRange.Error())
	})
}

func (s *CatalogHandlerTestSuite) TestQuote() {
	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO(builder.NewGuestBuilder().BuildDetails()).StayRequest

	s.Run("success: prices the stay", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, q queries.QuoteRequest) (*queries.QuoteView, error) {
				s.Equal(1, q.Adults)
				s.Equal(int64(0), q.RedeemPoints)
				return &queries.QuoteView{Nights: 2, Charges: queries.ChargesView{Total: money.FromDollars(226)}}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotes", reqBody, "")

		var body queries.QuoteView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("226.00", body.Charges.Total.String())
	})

	s.Run("error: negative redemption is 400", func() {
		m := testutil.DtoMap(s.T(), reqBody, testutil.Field("redeem_points", -1))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotes", m, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
