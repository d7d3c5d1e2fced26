//go:build e2e

package booking_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"
	"time"

	"hotel-kiosk/internal/domain/catalog"
	"hotel-kiosk/internal/domain/reservation"
	"hotel-kiosk/internal/domain/staff"
	reqdto "hotel-kiosk/internal/handler/dto/request"
	"hotel-kiosk/internal/usecase/queries"
	"hotel-kiosk/tests/common/builder"
	"hotel-kiosk/tests/common/dbtest"
	"hotel-kiosk/tests/common/httptest"
	"hotel-kiosk/tests/e2e"
	"hotel-kiosk/tests/e2e/common/helper"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BookingE2ESuite struct {
	e2e.SharedSuite
	tokens *helper.StaffTokens
}

func TestBookingE2ESuite(t *testing.T) {
	suite.Run(t, new(BookingE2ESuite))
}

func (s *BookingE2ESuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.tokens = helper.NewStaffTokens(s.Config.JWT)
}

func (s *BookingE2ESuite) addRoom(number, roomType string) {
	token, _ := s.tokens.Token(s.T(), staff.RoleManager)
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/rooms",
		reqdto.CreateRoomRequest{Number: number, RoomType: roomType, Floor: 2}, token)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
}

// stay returns a booking a month out so the real clock never makes it stale.
func (s *BookingE2ESuite) stay(email string) reqdto.CreateReservationRequest {
	checkIn := time.Now().UTC().AddDate(0, 1, 0).Truncate(24 * time.Hour)
	return builder.NewBookingBuilder().
		WithStay(checkIn, checkIn.AddDate(0, 0, 2)).
		WithParty(2, 0).
		WithRooms(reservation.RoomRequest{RoomType: catalog.RoomTypeDouble, Guests: 2}).
		BuildCreateRequestDTO(builder.NewGuestBuilder().WithEmail(email).BuildDetails())
}

func (s *BookingE2ESuite) TestFullStay() {
	s.addRoom("201", "DOUBLE")

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations", s.stay("ada@example.com"), "")
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var created queries.ReservationView
	s.Require().NoError(httptest.DecodeResponseBody(s.T(), w.Body, &created))
	s.Equal("CONFIRMED", created.Status)
	s.Require().Len(created.Rooms, 1)
	s.Equal("201", created.Rooms[0].RoomNumber)
	// Future stays hold inventory through the assignment, not the room status.
	s.Equal("AVAILABLE", dbtest.RoomStatus(s.T(), s.DB, "201"))
	s.Equal(1, dbtest.CountActiveAssignments(s.T(), s.DB, "201"))

	base := "/api/reservations/" + created.ConfirmationNumber

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, base+"/check-in", nil, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Equal("OCCUPIED", dbtest.RoomStatus(s.T(), s.DB, "201"))

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, base+"/check-out", nil, "")
	s.Equal(http.StatusConflict, w.Code, "checkout must wait for payment")

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, base+"/payments", map[string]any{
		"amount": created.Charges.Total.String(),
		"method": "CREDIT_CARD",
	}, "")
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, base+"/check-out", nil, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var done queries.ReservationView
	s.Require().NoError(httptest.DecodeResponseBody(s.T(), w.Body, &done))
	s.Equal("CHECKED_OUT", done.Status)
	s.True(done.OutstandingBalance.IsZero())
	s.Equal("CLEANING", dbtest.RoomStatus(s.T(), s.DB, "201"))
	s.Equal(0, dbtest.CountActiveAssignments(s.T(), s.DB, "201"))
}

func (s *BookingE2ESuite) TestCancelReleasesRoom() {
	s.addRoom("202", "DOUBLE")

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations", s.stay("first@example.com"), "")
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var first queries.ReservationView
	s.Require().NoError(httptest.DecodeResponseBody(s.T(), w.Body, &first))

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations", s.stay("second@example.com"), "")
	s.Require().Equal(http.StatusConflict, w.Code, w.Body.String())

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations/"+first.ConfirmationNumber+"/cancel", nil, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Equal(0, dbtest.CountActiveAssignments(s.T(), s.DB, "202"))

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations", s.stay("second@example.com"), "")
	s.Equal(http.StatusCreated, w.Code, w.Body.String())
}

func (s *BookingE2ESuite) TestConcurrentBookingsForLastRoom() {
	s.addRoom("203", "DOUBLE")

	const attempts = 8
	bodies := make([][]byte, attempts)
	for i := range bodies {
		b, err := json.Marshal(s.stay(fmt.Sprintf("racer%d@example.com", i)))
		s.Require().NoError(err)
		bodies[i] = b
	}

	codes := make([]int, attempts)
	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
	)
	for i := range attempts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			req := nethttptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(bodies[i]))
			req.Header.Set("Content-Type", "application/json")
			w := nethttptest.NewRecorder()
			s.Router.ServeHTTP(w, req)
			codes[i] = w.Code
		}(i)
	}
	close(start)
	wg.Wait()

	created := 0
	for _, code := range codes {
		switch code {
		case http.StatusCreated:
			created++
		default:
			assert.Equal(s.T(), http.StatusConflict, code)
		}
	}
	require.Equal(s.T(), 1, created, "exactly one booking may win the last room: %v", codes)
	s.Equal(1, dbtest.CountActiveAssignments(s.T(), s.DB, "203"))
}

func (s *BookingE2ESuite) TestStaffDiscount() {
	s.addRoom("204", "DOUBLE")

	req := s.stay("vip@example.com")
	pct := decimal.NewFromInt(25)
	req.DiscountPercentage = &pct

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations", req, "")
	s.Equal(http.StatusUnauthorized, w.Code, "guests cannot discount")

	admin, _ := s.tokens.Token(s.T(), staff.RoleAdmin)
	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations", req, admin)
	s.Equal(http.StatusForbidden, w.Code, "admin discounts are capped below 25 percent")

	manager, actor := s.tokens.Token(s.T(), staff.RoleManager)
	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations", req, manager)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var view queries.ReservationView
	s.Require().NoError(httptest.DecodeResponseBody(s.T(), w.Body, &view))
	s.Require().NotNil(view.DiscountedBy)
	s.Equal(actor.ID, *view.DiscountedBy)
	s.Equal("25", view.Charges.DiscountPercentage.String())

	expired := s.tokens.ExpiredToken(s.T(), staff.RoleManager)
	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations/"+view.ConfirmationNumber+"/no-show", nil, expired)
	s.Equal(http.StatusUnauthorized, w.Code)
}
