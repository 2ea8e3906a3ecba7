package http_test

import (
	"context"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpapi "seatsafe-backend/internal/api/http"
	"seatsafe-backend/internal/domain"
	"seatsafe-backend/internal/security"
	"seatsafe-backend/internal/service"
)

type mockRentalService struct{ mock.Mock }

func (m *mockRentalService) PreviewQuote(ctx context.Context, equipmentID int32, startDate, endDate time.Time) (*domain.RentalQuote, error) {
	args := m.Called(ctx, equipmentID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalQuote), args.Error(1)
}

func (m *mockRentalService) RequestRental(ctx context.Context, renterID, equipmentID int32, startDate, endDate time.Time, note string) (*domain.Reservation, error) {
	args := m.Called(ctx, renterID, equipmentID, startDate, endDate, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *mockRentalService) ChangeDates(ctx context.Context, renterID, reservationID int32, startDate, endDate time.Time) (*domain.Reservation, error) {
	args := m.Called(ctx, renterID, reservationID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *mockRentalService) ApproveRental(ctx context.Context, providerID, reservationID int32, pickupNote string) (*domain.Reservation, error) {
	args := m.Called(ctx, providerID, reservationID, pickupNote)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *mockRentalService) RejectRental(ctx context.Context, providerID, reservationID int32, reason string) (*domain.Reservation, error) {
	args := m.Called(ctx, providerID, reservationID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *mockRentalService) CancelRental(ctx context.Context, renterID, reservationID int32) (*domain.Reservation, error) {
	args := m.Called(ctx, renterID, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *mockRentalService) CompleteRental(ctx context.Context, providerID, reservationID int32) (*domain.Reservation, error) {
	args := m.Called(ctx, providerID, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *mockRentalService) GetRental(ctx context.Context, userID, reservationID int32) (*domain.Reservation, error) {
	args := m.Called(ctx, userID, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *mockRentalService) ListByRenter(ctx context.Context, renterID int32, status string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	args := m.Called(ctx, renterID, status, page, pageSize)
	return args.Get(0).([]domain.Reservation), args.Get(1).(int32), args.Error(2)
}

func (m *mockRentalService) ListByProvider(ctx context.Context, providerID int32, status string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	args := m.Called(ctx, providerID, status, page, pageSize)
	return args.Get(0).([]domain.Reservation), args.Get(1).(int32), args.Error(2)
}

type mockBookingService struct{ mock.Mock }

func (m *mockBookingService) AvailableSlots(ctx context.Context, serviceID int32, date time.Time) ([]domain.TimeSlot, error) {
	args := m.Called(ctx, serviceID, date)
	return args.Get(0).([]domain.TimeSlot), args.Error(1)
}

func (m *mockBookingService) CreateBooking(ctx context.Context, customerID, serviceID int32, date time.Time, startTime, note string) (*domain.Booking, error) {
	args := m.Called(ctx, customerID, serviceID, date, startTime, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingService) CancelBooking(ctx context.Context, customerID, bookingID int32) (*domain.Booking, error) {
	args := m.Called(ctx, customerID, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingService) CompleteBooking(ctx context.Context, providerID, bookingID int32) (*domain.Booking, error) {
	args := m.Called(ctx, providerID, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingService) GetBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error) {
	args := m.Called(ctx, userID, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingService) ListByCustomer(ctx context.Context, customerID int32, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, customerID, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}

type routerFixture struct {
	rentals  *mockRentalService
	bookings *mockBookingService
	tokens   security.TokenManager
	router   *mux.Router
}

func newRouterFixture() *routerFixture {
	f := &routerFixture{
		rentals:  &mockRentalService{},
		bookings: &mockBookingService{},
		tokens:   security.NewTokenManager("0123456789abcdef0123456789abcdef", 60, 120),
	}
	h := httpapi.NewHandler(nil, f.rentals, f.bookings, nil, nil, nil, nil, f.tokens)
	f.router = h.NewRouter()
	return f
}

// bearerFor signs a real access token so requests exercise the auth
// middleware end to end.
func bearerFor(t *testing.T, tokens security.TokenManager, user *domain.User) string {
	t.Helper()
	token, err := tokens.GenerateAccessToken(user)
	require.NoError(t, err)
	return "Bearer " + token
}

func parent() *domain.User {
	return &domain.User{ID: 3, Email: "dana@example.com", Role: domain.UserRoleParent}
}

func providerAdmin() *domain.User {
	providerID := int32(5)
	return &domain.User{ID: 8, Email: "admin@safestart.example", Role: domain.UserRoleProviderAdmin, ProviderID: &providerID}
}

func onDay(y int, m time.Month, d int) interface{} {
	want := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return mock.MatchedBy(func(got time.Time) bool { return got.Equal(want) })
}

var _ service.RentalService = (*mockRentalService)(nil)
var _ service.BookingService = (*mockBookingService)(nil)
