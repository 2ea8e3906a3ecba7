package postgres

import (
	"database/sql"

	"seatsafe-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.ProviderRepository
	repository.EquipmentRepository
	repository.ServiceRepository
	repository.ReservationRepository
	repository.BookingRepository
	repository.LedgerRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		ProviderRepository:     NewProviderRepository(db),
		EquipmentRepository:    NewEquipmentRepository(db),
		ServiceRepository:      NewServiceRepository(db),
		ReservationRepository:  NewReservationRepository(db),
		BookingRepository:      NewBookingRepository(db),
		LedgerRepository:       NewLedgerRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
