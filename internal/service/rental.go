package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"seatsafe-backend/internal/domain"
	"seatsafe-backend/internal/pricing"
	"seatsafe-backend/internal/repository"
	"seatsafe-backend/internal/schedule"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidDateRange means the caller has not supplied a usable date
	// range yet (missing dates or start >= end). It maps to "don't show a
	// total", not to a server fault.
	ErrInvalidDateRange = errors.New("start and end dates do not form a valid range")
	// ErrUnavailable is the advisory rejection: the requested range
	// overlaps an existing active reservation.
	ErrUnavailable       = errors.New("equipment is not available for the requested dates")
	ErrNotPending        = errors.New("reservation is not pending")
	ErrNotActive         = errors.New("reservation is not active")
	ErrEquipmentUnlisted = errors.New("equipment is not listed for rental")
)

const dateLayout = "2006-01-02"

type rentalService struct {
	reservationRepo repository.ReservationRepository
	equipmentRepo   repository.EquipmentRepository
	providerRepo    repository.ProviderRepository
	userRepo        repository.UserRepository
	ledgerRepo      repository.LedgerRepository
	noteRepo        repository.NotificationRepository
	emailSvc        EmailService
	quotes          *pricing.QuoteEngine
	fees            *pricing.FeeCalculator
}

func NewRentalService(
	reservationRepo repository.ReservationRepository,
	equipmentRepo repository.EquipmentRepository,
	providerRepo repository.ProviderRepository,
	userRepo repository.UserRepository,
	ledgerRepo repository.LedgerRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
	fees *pricing.FeeCalculator,
) RentalService {
	return &rentalService{
		reservationRepo: reservationRepo,
		equipmentRepo:   equipmentRepo,
		providerRepo:    providerRepo,
		userRepo:        userRepo,
		ledgerRepo:      ledgerRepo,
		noteRepo:        noteRepo,
		emailSvc:        emailSvc,
		quotes:          pricing.NewQuoteEngine(fees),
		fees:            fees,
	}
}

func (s *rentalService) PreviewQuote(ctx context.Context, equipmentID int32, startDate, endDate time.Time) (*domain.RentalQuote, error) {
	eq, err := s.equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	provider, err := s.providerRepo.GetByID(ctx, eq.ProviderID)
	if err != nil {
		return nil, err
	}
	// A nil quote is a valid outcome: the UI keeps the total hidden until
	// the renter picks a complete range.
	return s.quotes.Quote(eq.DailyRate, startDate, endDate, eq.DepositAmount, provider.Tier), nil
}

func (s *rentalService) RequestRental(ctx context.Context, renterID, equipmentID int32, startDate, endDate time.Time, note string) (*domain.Reservation, error) {
	eq, err := s.equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	if eq.Status != domain.EquipmentStatusListed {
		return nil, ErrEquipmentUnlisted
	}
	provider, err := s.providerRepo.GetByID(ctx, eq.ProviderID)
	if err != nil {
		return nil, err
	}

	quote := s.quotes.Quote(eq.DailyRate, startDate, endDate, eq.DepositAmount, provider.Tier)
	if quote == nil {
		return nil, ErrInvalidDateRange
	}

	// Advisory fast-fail; the exclusion constraint on insert is what
	// actually prevents a double booking.
	existing, err := s.reservationRepo.ListActiveByEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	if !schedule.IsAvailable(equipmentID, startDate, endDate, existing, 0) {
		return nil, ErrUnavailable
	}

	rt := &domain.Reservation{
		EquipmentID:   equipmentID,
		ProviderID:    eq.ProviderID,
		RenterID:      renterID,
		StartDate:     startDate.Format(dateLayout),
		EndDate:       endDate.Format(dateLayout),
		DailyRate:     quote.DailyRate,
		TotalDays:     quote.TotalDays,
		Subtotal:      quote.Subtotal,
		PlatformFee:   quote.PlatformFee,
		DepositAmount: quote.DepositAmount,
		TotalDue:      quote.TotalDue,
		Status:        domain.ReservationStatusPending,
		PickupNote:    note,
	}
	if err := s.reservationRepo.Create(ctx, rt); err != nil {
		if errors.Is(err, repository.ErrDatesConflict) {
			return nil, ErrUnavailable
		}
		return nil, err
	}

	renter, _ := s.userRepo.GetByID(ctx, renterID)
	if renter != nil {
		_ = s.emailSvc.SendRentalRequestNotification(ctx, provider.Email, renter.Name, eq.Name)
	}
	s.notifyProviderAdmins(ctx, provider.ID, "New Rental Request",
		fmt.Sprintf("New request for %s, %s to %s", eq.Name, rt.StartDate, rt.EndDate),
		map[string]string{"type": "RENTAL_REQUEST", "reservation_id": fmt.Sprintf("%d", rt.ID)})

	return rt, nil
}

// ChangeDates reprices and moves a pending reservation. The reservation's
// own id is excluded from the conflict set so an unchanged or slightly
// shifted range is not falsely rejected as overlapping itself.
func (s *rentalService) ChangeDates(ctx context.Context, renterID, reservationID int32, startDate, endDate time.Time) (*domain.Reservation, error) {
	rt, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if rt.RenterID != renterID {
		return nil, ErrUnauthorized
	}
	if rt.Status != domain.ReservationStatusPending {
		return nil, ErrNotPending
	}

	provider, err := s.providerRepo.GetByID(ctx, rt.ProviderID)
	if err != nil {
		return nil, err
	}

	// Reprice with the snapshotted daily rate and deposit, not the live
	// equipment values.
	quote := s.quotes.Quote(rt.DailyRate, startDate, endDate, rt.DepositAmount, provider.Tier)
	if quote == nil {
		return nil, ErrInvalidDateRange
	}

	existing, err := s.reservationRepo.ListActiveByEquipment(ctx, rt.EquipmentID)
	if err != nil {
		return nil, err
	}
	if !schedule.IsAvailable(rt.EquipmentID, startDate, endDate, existing, rt.ID) {
		return nil, ErrUnavailable
	}

	rt.StartDate = startDate.Format(dateLayout)
	rt.EndDate = endDate.Format(dateLayout)
	rt.TotalDays = quote.TotalDays
	rt.Subtotal = quote.Subtotal
	rt.PlatformFee = quote.PlatformFee
	rt.TotalDue = quote.TotalDue

	if err := s.reservationRepo.UpdateDates(ctx, rt); err != nil {
		if errors.Is(err, repository.ErrDatesConflict) {
			return nil, ErrUnavailable
		}
		return nil, err
	}
	return rt, nil
}

func (s *rentalService) ApproveRental(ctx context.Context, providerID, reservationID int32, pickupNote string) (*domain.Reservation, error) {
	rt, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if rt.ProviderID != providerID {
		return nil, ErrUnauthorized
	}
	if rt.Status != domain.ReservationStatusPending {
		return nil, ErrNotPending
	}

	rt.Status = domain.ReservationStatusActive
	rt.PickupNote = pickupNote
	if err := s.reservationRepo.Update(ctx, rt); err != nil {
		return nil, err
	}

	renter, _ := s.userRepo.GetByID(ctx, rt.RenterID)
	eq, _ := s.equipmentRepo.GetByID(ctx, rt.EquipmentID)
	provider, _ := s.providerRepo.GetByID(ctx, providerID)
	if renter != nil && eq != nil && provider != nil {
		_ = s.emailSvc.SendRentalApprovalNotification(ctx, renter.Email, eq.Name, provider.Name, pickupNote)
		notif := &domain.Notification{
			UserID:  renter.ID,
			Title:   "Rental Approved",
			Message: fmt.Sprintf("Your rental of %s from %s was approved", eq.Name, provider.Name),
			Attributes: map[string]string{
				"type":           "RENTAL_APPROVED",
				"reservation_id": fmt.Sprintf("%d", rt.ID),
			},
		}
		_ = s.noteRepo.Create(ctx, notif)
	}
	return rt, nil
}

func (s *rentalService) RejectRental(ctx context.Context, providerID, reservationID int32, reason string) (*domain.Reservation, error) {
	rt, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if rt.ProviderID != providerID {
		return nil, ErrUnauthorized
	}
	if rt.Status != domain.ReservationStatusPending {
		return nil, ErrNotPending
	}

	rt.Status = domain.ReservationStatusRejected
	rt.RejectionReason = reason
	if err := s.reservationRepo.Update(ctx, rt); err != nil {
		return nil, err
	}

	renter, _ := s.userRepo.GetByID(ctx, rt.RenterID)
	eq, _ := s.equipmentRepo.GetByID(ctx, rt.EquipmentID)
	provider, _ := s.providerRepo.GetByID(ctx, providerID)
	if renter != nil && eq != nil && provider != nil {
		_ = s.emailSvc.SendRentalRejectionNotification(ctx, renter.Email, eq.Name, provider.Name, reason)
	}
	return rt, nil
}

func (s *rentalService) CancelRental(ctx context.Context, renterID, reservationID int32) (*domain.Reservation, error) {
	rt, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if rt.RenterID != renterID {
		return nil, ErrUnauthorized
	}
	if rt.Status != domain.ReservationStatusPending && rt.Status != domain.ReservationStatusActive {
		return nil, fmt.Errorf("reservation in status %s cannot be cancelled", rt.Status)
	}

	rt.Status = domain.ReservationStatusCancelled
	if err := s.reservationRepo.Update(ctx, rt); err != nil {
		return nil, err
	}

	renter, _ := s.userRepo.GetByID(ctx, renterID)
	eq, _ := s.equipmentRepo.GetByID(ctx, rt.EquipmentID)
	provider, _ := s.providerRepo.GetByID(ctx, rt.ProviderID)
	if renter != nil && eq != nil && provider != nil {
		_ = s.emailSvc.SendRentalCancellationNotification(ctx, provider.Email, renter.Name, eq.Name)
	}
	return rt, nil
}

// CompleteRental closes out an active or overdue rental and records the
// provider payout: gross is the reservation subtotal, the platform fee was
// snapshotted at quote time, and the net is recomputed through the fee
// calculator so ledger rows always satisfy gross = fee + net.
func (s *rentalService) CompleteRental(ctx context.Context, providerID, reservationID int32) (*domain.Reservation, error) {
	rt, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if rt.ProviderID != providerID {
		return nil, ErrUnauthorized
	}
	if rt.Status != domain.ReservationStatusActive && rt.Status != domain.ReservationStatusOverdue {
		return nil, ErrNotActive
	}

	provider, err := s.providerRepo.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}

	net := s.fees.NetPayout(rt.Subtotal, provider.Tier)
	entry := &domain.LedgerEntry{
		ProviderID:    providerID,
		Type:          domain.LedgerEntryTypeRentalPayout,
		ReservationID: &rt.ID,
		GrossAmount:   rt.Subtotal,
		PlatformFee:   rt.PlatformFee,
		NetAmount:     net,
		Description:   fmt.Sprintf("Payout for reservation %d", rt.ID),
	}
	if err := s.ledgerRepo.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}

	rt.Status = domain.ReservationStatusCompleted
	if err := s.reservationRepo.Update(ctx, rt); err != nil {
		return nil, err
	}

	eq, _ := s.equipmentRepo.GetByID(ctx, rt.EquipmentID)
	if eq != nil {
		_ = s.emailSvc.SendRentalCompletionNotification(ctx, provider.Email, eq.Name, net)
	}
	return rt, nil
}

func (s *rentalService) GetRental(ctx context.Context, userID, reservationID int32) (*domain.Reservation, error) {
	rt, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if rt.RenterID != userID {
		// Provider admins access through their provider id.
		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil || user.ProviderID == nil || *user.ProviderID != rt.ProviderID {
			return nil, ErrUnauthorized
		}
	}
	return rt, nil
}

func (s *rentalService) ListByRenter(ctx context.Context, renterID int32, status string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	return s.reservationRepo.ListByRenter(ctx, renterID, status, page, pageSize)
}

func (s *rentalService) ListByProvider(ctx context.Context, providerID int32, status string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	return s.reservationRepo.ListByProvider(ctx, providerID, status, page, pageSize)
}

// notifyProviderAdmins writes an in-app notification for the provider's
// contact user. Notification failures are deliberately swallowed: a missed
// bell icon must never fail a rental request.
func (s *rentalService) notifyProviderAdmins(ctx context.Context, providerID int32, title, message string, attrs map[string]string) {
	provider, err := s.providerRepo.GetByID(ctx, providerID)
	if err != nil {
		return
	}
	admin, err := s.userRepo.GetByEmail(ctx, provider.Email)
	if err != nil {
		return
	}
	_ = s.noteRepo.Create(ctx, &domain.Notification{
		UserID:     admin.ID,
		Title:      title,
		Message:    message,
		Attributes: attrs,
	})
}
