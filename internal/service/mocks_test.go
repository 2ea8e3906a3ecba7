package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"seatsafe-backend/internal/domain"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

type mockProviderRepo struct{ mock.Mock }

func (m *mockProviderRepo) Create(ctx context.Context, p *domain.Provider) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProviderRepo) GetByID(ctx context.Context, id int32) (*domain.Provider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

func (m *mockProviderRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Provider, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Provider), args.Get(1).(int32), args.Error(2)
}

func (m *mockProviderRepo) Search(ctx context.Context, name, metro string) ([]domain.Provider, error) {
	args := m.Called(ctx, name, metro)
	return args.Get(0).([]domain.Provider), args.Error(1)
}

func (m *mockProviderRepo) Update(ctx context.Context, p *domain.Provider) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProviderRepo) UpdateTier(ctx context.Context, id int32, tier domain.SubscriptionTier) error {
	return m.Called(ctx, id, tier).Error(0)
}

type mockEquipmentRepo struct{ mock.Mock }

func (m *mockEquipmentRepo) Create(ctx context.Context, eq *domain.Equipment) error {
	return m.Called(ctx, eq).Error(0)
}

func (m *mockEquipmentRepo) GetByID(ctx context.Context, id int32) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *mockEquipmentRepo) Update(ctx context.Context, eq *domain.Equipment) error {
	return m.Called(ctx, eq).Error(0)
}

func (m *mockEquipmentRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockEquipmentRepo) ListByProvider(ctx context.Context, providerID int32, page, pageSize int32) ([]domain.Equipment, int32, error) {
	args := m.Called(ctx, providerID, page, pageSize)
	return args.Get(0).([]domain.Equipment), args.Get(1).(int32), args.Error(2)
}

func (m *mockEquipmentRepo) Search(ctx context.Context, query string, category string, maxDailyRate float64, page, pageSize int32) ([]domain.Equipment, int32, error) {
	args := m.Called(ctx, query, category, maxDailyRate, page, pageSize)
	return args.Get(0).([]domain.Equipment), args.Get(1).(int32), args.Error(2)
}

type mockServiceRepo struct{ mock.Mock }

func (m *mockServiceRepo) Create(ctx context.Context, svc *domain.Service) error {
	return m.Called(ctx, svc).Error(0)
}

func (m *mockServiceRepo) GetByID(ctx context.Context, id int32) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *mockServiceRepo) Update(ctx context.Context, svc *domain.Service) error {
	return m.Called(ctx, svc).Error(0)
}

func (m *mockServiceRepo) ListByProvider(ctx context.Context, providerID int32) ([]domain.Service, error) {
	args := m.Called(ctx, providerID)
	return args.Get(0).([]domain.Service), args.Error(1)
}

type mockReservationRepo struct{ mock.Mock }

func (m *mockReservationRepo) Create(ctx context.Context, r *domain.Reservation) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockReservationRepo) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *mockReservationRepo) Update(ctx context.Context, r *domain.Reservation) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockReservationRepo) UpdateDates(ctx context.Context, r *domain.Reservation) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockReservationRepo) ListActiveByEquipment(ctx context.Context, equipmentID int32) ([]domain.Reservation, error) {
	args := m.Called(ctx, equipmentID)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *mockReservationRepo) ListByRenter(ctx context.Context, renterID int32, status string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	args := m.Called(ctx, renterID, status, page, pageSize)
	return args.Get(0).([]domain.Reservation), args.Get(1).(int32), args.Error(2)
}

func (m *mockReservationRepo) ListByProvider(ctx context.Context, providerID int32, status string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	args := m.Called(ctx, providerID, status, page, pageSize)
	return args.Get(0).([]domain.Reservation), args.Get(1).(int32), args.Error(2)
}

func (m *mockReservationRepo) ListActiveEndingOn(ctx context.Context, date string) ([]domain.Reservation, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *mockReservationRepo) MarkOverdue(ctx context.Context, asOf string) (int64, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockReservationRepo) ExpirePending(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) Update(ctx context.Context, b *domain.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBookingRepo) ListByServiceAndDate(ctx context.Context, serviceID int32, date string) ([]domain.Booking, error) {
	args := m.Called(ctx, serviceID, date)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) ListByCustomer(ctx context.Context, customerID int32, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, customerID, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}

func (m *mockBookingRepo) ListByProvider(ctx context.Context, providerID int32, date string) ([]domain.Booking, error) {
	args := m.Called(ctx, providerID, date)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type mockLedgerRepo struct{ mock.Mock }

func (m *mockLedgerRepo) CreateEntry(ctx context.Context, e *domain.LedgerEntry) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockLedgerRepo) ListByProvider(ctx context.Context, providerID int32, page, pageSize int32) ([]domain.LedgerEntry, int32, error) {
	args := m.Called(ctx, providerID, page, pageSize)
	return args.Get(0).([]domain.LedgerEntry), args.Get(1).(int32), args.Error(2)
}

func (m *mockLedgerRepo) GetSummary(ctx context.Context, providerID int32) (*domain.LedgerSummary, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerSummary), args.Error(1)
}

type mockNotificationRepo struct{ mock.Mock }

func (m *mockNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *mockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}

func (m *mockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	return m.Called(ctx, id, userID).Error(0)
}

// mockEmailService records sends without talking to SendGrid.
type mockEmailService struct{ mock.Mock }

func (m *mockEmailService) SendRentalRequestNotification(ctx context.Context, providerEmail, renterName, equipmentName string) error {
	return m.Called(ctx, providerEmail, renterName, equipmentName).Error(0)
}

func (m *mockEmailService) SendRentalApprovalNotification(ctx context.Context, renterEmail, equipmentName, providerName, pickupNote string) error {
	return m.Called(ctx, renterEmail, equipmentName, providerName, pickupNote).Error(0)
}

func (m *mockEmailService) SendRentalRejectionNotification(ctx context.Context, renterEmail, equipmentName, providerName, reason string) error {
	return m.Called(ctx, renterEmail, equipmentName, providerName, reason).Error(0)
}

func (m *mockEmailService) SendRentalCancellationNotification(ctx context.Context, providerEmail, renterName, equipmentName string) error {
	return m.Called(ctx, providerEmail, renterName, equipmentName).Error(0)
}

func (m *mockEmailService) SendRentalCompletionNotification(ctx context.Context, email, equipmentName string, netPayout float64) error {
	return m.Called(ctx, email, equipmentName, netPayout).Error(0)
}

func (m *mockEmailService) SendReturnReminder(ctx context.Context, renterEmail, equipmentName, endDate string) error {
	return m.Called(ctx, renterEmail, equipmentName, endDate).Error(0)
}

func (m *mockEmailService) SendBookingConfirmation(ctx context.Context, customerEmail, serviceName, providerName, date, startTime, referenceCode string) error {
	return m.Called(ctx, customerEmail, serviceName, providerName, date, startTime, referenceCode).Error(0)
}

func (m *mockEmailService) SendBookingCancellationNotification(ctx context.Context, providerEmail, customerName, serviceName, date, startTime string) error {
	return m.Called(ctx, providerEmail, customerName, serviceName, date, startTime).Error(0)
}
