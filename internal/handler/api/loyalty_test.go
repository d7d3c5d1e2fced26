//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"hotel-kiosk/internal/domain/loyalty"
	"hotel-kiosk/internal/domain/staff"
	"hotel-kiosk/internal/handler/api"
	resdto "hotel-kiosk/internal/handler/dto/response"
	"hotel-kiosk/internal/pkg/errs"
	"hotel-kiosk/internal/usecase/commands"
	"hotel-kiosk/internal/usecase/queries"
	"hotel-kiosk/tests/common/builder"
	"hotel-kiosk/tests/common/httptest"
	commandsmock "hotel-kiosk/tests/mock/commands"
	queriesmock "hotel-kiosk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LoyaltyHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockLoyaltyCommands
	mockQueries  *queriesmock.MockHotelQueries
	auth         staffAuth
}

func (s *LoyaltyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockLoyaltyCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockHotelQueries(s.mockCtrl)
	s.auth = newStaffAuth()
	h := api.NewLoyaltyHandler(s.mockCommands, s.mockQueries)

	staffOnly := s.auth.middleware.RequireStaff()
	s.router.POST("/accounts", h.Enroll)
	s.router.GET("/accounts/:number", h.Get)
	s.router.GET("/accounts/:number/transactions", h.Transactions)
	s.router.POST("/accounts/:number/adjustments", staffOnly, h.Adjust)
	s.router.POST("/accounts/:number/redemptions", staffOnly, h.Redeem)
}

func (s *LoyaltyHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLoyaltyHandlerSuite(t *testing.T) {
	suite.Run(t, new(LoyaltyHandlerTestSuite))
}

func accountView(balance int64) *queries.LoyaltyAccountView {
	return &queries.LoyaltyAccountView{ID: uuid.New(), Number: "LY00000042", GuestID: uuid.New(), Balance: balance, Tier: "BRONZE"}
}

func (s *LoyaltyHandlerTestSuite) TestEnroll() {
	details := builder.NewGuestBuilder().BuildDetails()
	body := map[string]any{"name": details.Name, "email": details.Email, "phone": details.Phone}

	s.Run("success: returns 201 with the welcome balance", func() {
		s.mockCommands.EXPECT().Enroll(gomock.Any(), details).Return(accountView(500), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/accounts", body, "")

		var got queries.LoyaltyAccountView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal(int64(500), got.Balance)
		s.Equal("LY00000042", got.Number)
	})

	s.Run("error: already enrolled is 409", func() {
		s.mockCommands.EXPECT().Enroll(gomock.Any(), details).Return(nil, loyalty.ErrAlreadyEnrolled).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/accounts", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, loyalty.ErrAlreadyEnrolled.Error())
	})

	s.Run("error: missing email is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/accounts", map[string]any{"name": "Ada"}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *LoyaltyHandlerTestSuite) TestGet() {
	s.mockQueries.EXPECT().GetLoyaltyAccount(gomock.Any(), "LY00000042").Return(accountView(120), nil).Times(1)
	s.mockQueries.EXPECT().GetLoyaltyAccount(gomock.Any(), "LY99999999").Return(nil, errs.ErrLoyaltyAccountNotFound).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/accounts/ly00000042", nil, "")
	s.Equal(http.StatusOK, rec.Code)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/accounts/LY99999999", nil, "")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
}

func (s *LoyaltyHandlerTestSuite) TestTransactions() {
	cases := []struct {
		name      string
		query     string
		wantLimit int
	}{
		{"default limit", "", 50},
		{"explicit limit", "?limit=10", 10},
		{"limit is capped", "?limit=1000", 200},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockQueries.EXPECT().LoyaltyHistory(gomock.Any(), "LY00000042", tc.wantLimit).
				Return([]queries.LoyaltyTransactionView{{Type: "BONUS", Points: 500, BalanceAfter: 500}}, nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/accounts/LY00000042/transactions"+tc.query, nil, "")

			var body resdto.LoyaltyHistoryResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
			s.Len(body.Transactions, 1)
		})
	}

	s.Run("error: negative limit is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/accounts/LY00000042/transactions?limit=-1", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *LoyaltyHandlerTestSuite) TestAdjust() {
	url := "/accounts/LY00000042/adjustments"

	s.Run("error: requires staff", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"points": 10, "reason": "goodwill"}, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("success: reason is trimmed", func() {
		token, actor := s.auth.token(s.T(), staff.RoleAdmin)
		s.mockCommands.EXPECT().Adjust(gomock.Any(), "LY00000042", int64(-50), "billing fix", actor).
			Return(accountView(450), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"points": -50, "reason": "  billing fix "}, token)
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("error: zero points is 400", func() {
		token, _ := s.auth.token(s.T(), staff.RoleAdmin)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"points": 0, "reason": "noop"}, token)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: reason too long is 400", func() {
		token, _ := s.auth.token(s.T(), staff.RoleAdmin)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"points": 5, "reason": strings.Repeat("x", 201)}, token)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: overdrawing is 422", func() {
		token, _ := s.auth.token(s.T(), staff.RoleManager)
		s.mockCommands.EXPECT().Adjust(gomock.Any(), "LY00000042", int64(-9999), "oops", gomock.Any()).
			Return(nil, loyalty.ErrNegativeBalance).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"points": -9999, "reason": "oops"}, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, loyalty.ErrNegativeBalance.Error())
	})
}

func (s *LoyaltyHandlerTestSuite) TestRedeem() {
	url := "/accounts/LY00000042/redemptions"
	token, actor := s.auth.token(s.T(), staff.RoleManager)

	s.Run("success", func() {
		s.mockCommands.EXPECT().Redeem(gomock.Any(), "LY00000042", int64(200), actor).
			Return(&commands.RedeemResult{Account: accountView(300), PointsRedeemed: 200}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"points": 200}, token)

		var body resdto.RedemptionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(200), body.PointsRedeemed)
		s.Equal(int64(300), body.Account.Balance)
	})

	s.Run("error: below minimum is 422", func() {
		s.mockCommands.EXPECT().Redeem(gomock.Any(), "LY00000042", int64(50), actor).
			Return(nil, loyalty.ErrRedemptionBelowMinimum).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"points": 50}, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})
}
