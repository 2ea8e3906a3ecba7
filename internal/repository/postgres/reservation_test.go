package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"seatsafe-backend/internal/domain"
	"seatsafe-backend/internal/repository"
	"seatsafe-backend/internal/repository/postgres"
)

var reservationRows = []string{
	"id", "equipment_id", "provider_id", "renter_id", "start_date", "end_date",
	"daily_rate", "total_days", "subtotal", "platform_fee", "deposit_amount", "total_due",
	"status", "pickup_note", "rejection_reason", "created_on", "updated_on",
}

func pendingReservation() *domain.Reservation {
	return &domain.Reservation{
		EquipmentID:   10,
		ProviderID:    5,
		RenterID:      3,
		StartDate:     "2025-01-01",
		EndDate:       "2025-01-03",
		DailyRate:     50,
		TotalDays:     3,
		Subtotal:      150,
		PlatformFee:   4.5,
		DepositAmount: 20,
		TotalDue:      170,
		Status:        domain.ReservationStatusPending,
	}
}

func TestReservationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReservationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rt := pendingReservation()

		mock.ExpectQuery("INSERT INTO reservations").
			WithArgs(rt.EquipmentID, rt.ProviderID, rt.RenterID, rt.StartDate, rt.EndDate,
				rt.DailyRate, rt.TotalDays, rt.Subtotal, rt.PlatformFee, rt.DepositAmount, rt.TotalDue,
				rt.Status, rt.PickupNote, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		err := repo.Create(ctx, rt)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), rt.ID)
	})

	t.Run("OverlapMapsToDatesConflict", func(t *testing.T) {
		rt := pendingReservation()

		mock.ExpectQuery("INSERT INTO reservations").
			WillReturnError(&pq.Error{Code: "23P01", Constraint: "reservations_no_overlap"})

		err := repo.Create(ctx, rt)
		assert.ErrorIs(t, err, repository.ErrDatesConflict)
	})

	t.Run("OtherErrorsPassThrough", func(t *testing.T) {
		rt := pendingReservation()

		mock.ExpectQuery("INSERT INTO reservations").
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, rt)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrDatesConflict)
	})
}

func TestReservationRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReservationRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows(reservationRows).
		AddRow(7, 10, 5, 3, "2025-01-01", "2025-01-03", 50.0, 3, 150.0, 4.5, 20.0, 170.0,
			"PENDING", "", "", time.Now(), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM reservations WHERE id = \\$1").
		WithArgs(int32(7)).
		WillReturnRows(rows)

	rt, err := repo.GetByID(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, "2025-01-01", rt.StartDate)
	assert.Equal(t, "2025-01-03", rt.EndDate)
	assert.Equal(t, domain.ReservationStatusPending, rt.Status)
	assert.Equal(t, 170.0, rt.TotalDue)
}

func TestReservationRepository_UpdateDates(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReservationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rt := pendingReservation()
		rt.ID = 7

		mock.ExpectExec("UPDATE reservations SET start_date").
			WithArgs(rt.StartDate, rt.EndDate, rt.TotalDays, rt.Subtotal, rt.PlatformFee, rt.TotalDue, sqlmock.AnyArg(), rt.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateDates(ctx, rt)
		assert.NoError(t, err)
	})

	t.Run("OverlapMapsToDatesConflict", func(t *testing.T) {
		rt := pendingReservation()
		rt.ID = 7

		mock.ExpectExec("UPDATE reservations SET start_date").
			WillReturnError(&pq.Error{Code: "23P01"})

		err := repo.UpdateDates(ctx, rt)
		assert.ErrorIs(t, err, repository.ErrDatesConflict)
	})
}

func TestReservationRepository_ListActiveByEquipment(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReservationRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows(reservationRows).
		AddRow(7, 10, 5, 3, "2025-01-01", "2025-01-03", 50.0, 3, 150.0, 4.5, 20.0, 170.0,
			"PENDING", "", "", time.Now(), time.Now()).
		AddRow(8, 10, 5, 4, "2025-01-05", "2025-01-06", 50.0, 2, 100.0, 3.0, 20.0, 120.0,
			"ACTIVE", "", "", time.Now(), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM reservations WHERE equipment_id = \\$1 AND status IN").
		WithArgs(int32(10)).
		WillReturnRows(rows)

	reservations, err := repo.ListActiveByEquipment(ctx, 10)
	assert.NoError(t, err)
	assert.Len(t, reservations, 2)
	assert.Equal(t, domain.ReservationStatusPending, reservations[0].Status)
	assert.Equal(t, domain.ReservationStatusActive, reservations[1].Status)
}

func TestReservationRepository_MarkOverdue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReservationRepository(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE reservations SET status = 'OVERDUE'").
		WithArgs(sqlmock.AnyArg(), "2025-01-10").
		WillReturnResult(sqlmock.NewResult(0, 3))

	count, err := repo.MarkOverdue(ctx, "2025-01-10")
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestReservationRepository_ExpirePending(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReservationRepository(db)
	ctx := context.Background()

	cutoff := time.Date(2025, time.January, 7, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec("UPDATE reservations SET status = 'CANCELLED'").
		WithArgs(sqlmock.AnyArg(), cutoff).
		WillReturnResult(sqlmock.NewResult(0, 2))

	count, err := repo.ExpirePending(ctx, cutoff)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
