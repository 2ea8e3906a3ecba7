package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"seatsafe-backend/internal/domain"
	"seatsafe-backend/internal/repository"
	"seatsafe-backend/internal/schedule"
)

var (
	ErrServiceInactive = errors.New("service is not accepting bookings")
	// ErrSlotUnavailable means the requested start time is not among the
	// open slots for that day, either because the provider is closed or
	// because another booking took it.
	ErrSlotUnavailable = errors.New("requested time slot is not available")
	ErrNotCancellable  = errors.New("booking can no longer be cancelled")
)

type bookingService struct {
	bookingRepo  repository.BookingRepository
	serviceRepo  repository.ServiceRepository
	providerRepo repository.ProviderRepository
	userRepo     repository.UserRepository
	noteRepo     repository.NotificationRepository
	emailSvc     EmailService
	slots        *schedule.SlotResolver
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	serviceRepo repository.ServiceRepository,
	providerRepo repository.ProviderRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
	slotStepMinutes int,
) BookingService {
	return &bookingService{
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		providerRepo: providerRepo,
		userRepo:     userRepo,
		noteRepo:     noteRepo,
		emailSvc:     emailSvc,
		slots:        schedule.NewSlotResolver(slotStepMinutes),
	}
}

func (s *bookingService) AvailableSlots(ctx context.Context, serviceID int32, date time.Time) ([]domain.TimeSlot, error) {
	svc, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if !svc.Active {
		return []domain.TimeSlot{}, nil
	}
	provider, err := s.providerRepo.GetByID(ctx, svc.ProviderID)
	if err != nil {
		return nil, err
	}
	booked, err := s.bookingRepo.ListByServiceAndDate(ctx, serviceID, date.Format(dateLayout))
	if err != nil {
		return nil, err
	}
	return s.slots.AvailableSlots(provider.Hours, int(svc.DurationMinutes), date, booked), nil
}

func (s *bookingService) CreateBooking(ctx context.Context, customerID, serviceID int32, date time.Time, startTime, note string) (*domain.Booking, error) {
	svc, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if !svc.Active {
		return nil, ErrServiceInactive
	}
	provider, err := s.providerRepo.GetByID(ctx, svc.ProviderID)
	if err != nil {
		return nil, err
	}

	// Re-resolve the open slots right before writing. The set could have
	// shrunk since the customer fetched it.
	booked, err := s.bookingRepo.ListByServiceAndDate(ctx, serviceID, date.Format(dateLayout))
	if err != nil {
		return nil, err
	}
	open := s.slots.AvailableSlots(provider.Hours, int(svc.DurationMinutes), date, booked)
	if !slotOffered(open, startTime) {
		return nil, ErrSlotUnavailable
	}

	b := &domain.Booking{
		ServiceID:       serviceID,
		ProviderID:      svc.ProviderID,
		CustomerID:      customerID,
		ReferenceCode:   newReferenceCode(),
		Date:            date.Format(dateLayout),
		StartTime:       startTime,
		DurationMinutes: svc.DurationMinutes,
		Price:           svc.Price,
		Status:          domain.BookingStatusConfirmed,
		Note:            note,
	}
	if err := s.bookingRepo.Create(ctx, b); err != nil {
		return nil, err
	}

	customer, _ := s.userRepo.GetByID(ctx, customerID)
	if customer != nil {
		_ = s.emailSvc.SendBookingConfirmation(ctx, customer.Email, svc.Name, provider.Name, b.Date, b.StartTime, b.ReferenceCode)
	}
	return b, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, customerID, bookingID int32) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.CustomerID != customerID {
		return nil, ErrUnauthorized
	}
	if b.Status != domain.BookingStatusPending && b.Status != domain.BookingStatusConfirmed {
		return nil, ErrNotCancellable
	}

	b.Status = domain.BookingStatusCancelled
	if err := s.bookingRepo.Update(ctx, b); err != nil {
		return nil, err
	}

	svc, _ := s.serviceRepo.GetByID(ctx, b.ServiceID)
	provider, _ := s.providerRepo.GetByID(ctx, b.ProviderID)
	customer, _ := s.userRepo.GetByID(ctx, customerID)
	if svc != nil && provider != nil && customer != nil {
		_ = s.emailSvc.SendBookingCancellationNotification(ctx, provider.Email, customer.Name, svc.Name, b.Date, b.StartTime)
	}
	return b, nil
}

func (s *bookingService) CompleteBooking(ctx context.Context, providerID, bookingID int32) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.ProviderID != providerID {
		return nil, ErrUnauthorized
	}
	if b.Status != domain.BookingStatusConfirmed {
		return nil, errors.New("only confirmed bookings can be completed")
	}

	b.Status = domain.BookingStatusCompleted
	if err := s.bookingRepo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *bookingService) GetBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.CustomerID != userID {
		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil || user.ProviderID == nil || *user.ProviderID != b.ProviderID {
			return nil, ErrUnauthorized
		}
	}
	return b, nil
}

func (s *bookingService) ListByCustomer(ctx context.Context, customerID int32, page, pageSize int32) ([]domain.Booking, int32, error) {
	return s.bookingRepo.ListByCustomer(ctx, customerID, page, pageSize)
}

func slotOffered(slots []domain.TimeSlot, start string) bool {
	for _, sl := range slots {
		if sl.Start == start {
			return true
		}
	}
	return false
}

// newReferenceCode returns a short human-readable code like "SB-1A2B3C4D"
// for confirmation emails and front-desk lookup.
func newReferenceCode() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "SB-" + id[:8]
}
