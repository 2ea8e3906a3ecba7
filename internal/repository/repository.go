package repository

import (
	"context"
	"errors"
	"time"

	"seatsafe-backend/internal/domain"
)

// ErrDatesConflict is returned by ReservationRepository.Create and
// UpdateDates when the database's exclusion constraint rejects an
// overlapping active reservation. The advisory availability check can pass
// and the insert still lose the race; callers surface this as "no longer
// available".
var ErrDatesConflict = errors.New("requested dates are no longer available")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type ProviderRepository interface {
	Create(ctx context.Context, p *domain.Provider) error
	GetByID(ctx context.Context, id int32) (*domain.Provider, error)
	List(ctx context.Context, page, pageSize int32) ([]domain.Provider, int32, error)
	Search(ctx context.Context, name, metro string) ([]domain.Provider, error)
	Update(ctx context.Context, p *domain.Provider) error
	UpdateTier(ctx context.Context, id int32, tier domain.SubscriptionTier) error
}

type EquipmentRepository interface {
	Create(ctx context.Context, eq *domain.Equipment) error
	GetByID(ctx context.Context, id int32) (*domain.Equipment, error)
	Update(ctx context.Context, eq *domain.Equipment) error
	Delete(ctx context.Context, id int32) error
	ListByProvider(ctx context.Context, providerID int32, page, pageSize int32) ([]domain.Equipment, int32, error)
	Search(ctx context.Context, query string, category string, maxDailyRate float64, page, pageSize int32) ([]domain.Equipment, int32, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.Service) error
	GetByID(ctx context.Context, id int32) (*domain.Service, error)
	Update(ctx context.Context, svc *domain.Service) error
	ListByProvider(ctx context.Context, providerID int32) ([]domain.Service, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id int32) (*domain.Reservation, error)
	Update(ctx context.Context, r *domain.Reservation) error
	UpdateDates(ctx context.Context, r *domain.Reservation) error
	// ListActiveByEquipment returns every reservation whose status still
	// blocks the calendar for the given equipment.
	ListActiveByEquipment(ctx context.Context, equipmentID int32) ([]domain.Reservation, error)
	ListByRenter(ctx context.Context, renterID int32, status string, page, pageSize int32) ([]domain.Reservation, int32, error)
	ListByProvider(ctx context.Context, providerID int32, status string, page, pageSize int32) ([]domain.Reservation, int32, error)
	// ListActiveEndingOn returns active reservations whose end date equals
	// the given yyyy-mm-dd date. Used for return reminders.
	ListActiveEndingOn(ctx context.Context, date string) ([]domain.Reservation, error)
	// MarkOverdue flips active reservations past their end date to OVERDUE
	// and returns how many rows changed.
	MarkOverdue(ctx context.Context, asOf string) (int64, error)
	// ExpirePending cancels pending requests created before the cutoff.
	ExpirePending(ctx context.Context, cutoff time.Time) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int32) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	// ListByServiceAndDate returns non-cancelled bookings for the service
	// on a yyyy-mm-dd date.
	ListByServiceAndDate(ctx context.Context, serviceID int32, date string) ([]domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID int32, page, pageSize int32) ([]domain.Booking, int32, error)
	ListByProvider(ctx context.Context, providerID int32, date string) ([]domain.Booking, error)
}

type LedgerRepository interface {
	CreateEntry(ctx context.Context, e *domain.LedgerEntry) error
	ListByProvider(ctx context.Context, providerID int32, page, pageSize int32) ([]domain.LedgerEntry, int32, error)
	GetSummary(ctx context.Context, providerID int32) (*domain.LedgerSummary, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}
