package service

import (
	"context"
	"time"

	"seatsafe-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, phone, password string) (*domain.User, string, string, error) // user, access, refresh
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type RentalService interface {
	// PreviewQuote prices a prospective rental without touching storage
	// beyond loading the equipment and its provider's tier. A nil quote
	// means the dates are insufficient, not an error.
	PreviewQuote(ctx context.Context, equipmentID int32, startDate, endDate time.Time) (*domain.RentalQuote, error)
	RequestRental(ctx context.Context, renterID, equipmentID int32, startDate, endDate time.Time, note string) (*domain.Reservation, error)
	ChangeDates(ctx context.Context, renterID, reservationID int32, startDate, endDate time.Time) (*domain.Reservation, error)
	ApproveRental(ctx context.Context, providerID, reservationID int32, pickupNote string) (*domain.Reservation, error)
	RejectRental(ctx context.Context, providerID, reservationID int32, reason string) (*domain.Reservation, error)
	CancelRental(ctx context.Context, renterID, reservationID int32) (*domain.Reservation, error)
	CompleteRental(ctx context.Context, providerID, reservationID int32) (*domain.Reservation, error)
	GetRental(ctx context.Context, userID, reservationID int32) (*domain.Reservation, error)
	ListByRenter(ctx context.Context, renterID int32, status string, page, pageSize int32) ([]domain.Reservation, int32, error)
	ListByProvider(ctx context.Context, providerID int32, status string, page, pageSize int32) ([]domain.Reservation, int32, error)
}

type BookingService interface {
	AvailableSlots(ctx context.Context, serviceID int32, date time.Time) ([]domain.TimeSlot, error)
	CreateBooking(ctx context.Context, customerID, serviceID int32, date time.Time, startTime, note string) (*domain.Booking, error)
	CancelBooking(ctx context.Context, customerID, bookingID int32) (*domain.Booking, error)
	CompleteBooking(ctx context.Context, providerID, bookingID int32) (*domain.Booking, error)
	GetBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID int32, page, pageSize int32) ([]domain.Booking, int32, error)
}

type ProviderService interface {
	CreateProvider(ctx context.Context, ownerUserID int32, p *domain.Provider) error
	GetProvider(ctx context.Context, id int32) (*domain.Provider, error)
	ListProviders(ctx context.Context, page, pageSize int32) ([]domain.Provider, int32, error)
	SearchProviders(ctx context.Context, name, metro string) ([]domain.Provider, error)
	UpdateProvider(ctx context.Context, p *domain.Provider) error
	UpdateHours(ctx context.Context, providerID int32, hours domain.WeekSchedule) error
	// UpdateTier is invoked by the external billing workflow; the tier is
	// never mutated from rental or booking flows.
	UpdateTier(ctx context.Context, providerID int32, tier domain.SubscriptionTier) error
	ListServices(ctx context.Context, providerID int32) ([]domain.Service, error)
	CreateService(ctx context.Context, svc *domain.Service) error
	UpdateService(ctx context.Context, svc *domain.Service) error
}

type EquipmentService interface {
	AddEquipment(ctx context.Context, eq *domain.Equipment) error
	GetEquipment(ctx context.Context, id int32) (*domain.Equipment, error)
	UpdateEquipment(ctx context.Context, eq *domain.Equipment) error
	RemoveEquipment(ctx context.Context, providerID, equipmentID int32) error
	ListByProvider(ctx context.Context, providerID int32, page, pageSize int32) ([]domain.Equipment, int32, error)
	Search(ctx context.Context, query, category string, maxDailyRate float64, page, pageSize int32) ([]domain.Equipment, int32, error)
}

type LedgerService interface {
	ListEntries(ctx context.Context, providerID int32, page, pageSize int32) ([]domain.LedgerEntry, int32, error)
	GetSummary(ctx context.Context, providerID int32) (*domain.LedgerSummary, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

type EmailService interface {
	SendRentalRequestNotification(ctx context.Context, providerEmail, renterName, equipmentName string) error
	SendRentalApprovalNotification(ctx context.Context, renterEmail, equipmentName, providerName, pickupNote string) error
	SendRentalRejectionNotification(ctx context.Context, renterEmail, equipmentName, providerName, reason string) error
	SendRentalCancellationNotification(ctx context.Context, providerEmail, renterName, equipmentName string) error
	SendRentalCompletionNotification(ctx context.Context, email, equipmentName string, netPayout float64) error
	SendReturnReminder(ctx context.Context, renterEmail, equipmentName, endDate string) error
	SendBookingConfirmation(ctx context.Context, customerEmail, serviceName, providerName, date, startTime, referenceCode string) error
	SendBookingCancellationNotification(ctx context.Context, providerEmail, customerName, serviceName, date, startTime string) error
}
