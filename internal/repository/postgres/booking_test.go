package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"seatsafe-backend/internal/domain"
	"seatsafe-backend/internal/repository/postgres"
)

var bookingRows = []string{
	"id", "service_id", "provider_id", "customer_id", "reference_code", "date", "start_time",
	"duration_minutes", "price", "status", "note", "created_on", "updated_on",
}

func TestBookingRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()

	b := &domain.Booking{
		ServiceID:       20,
		ProviderID:      5,
		CustomerID:      3,
		ReferenceCode:   "SB-1A2B3C4D",
		Date:            "2025-01-06",
		StartTime:       "09:30",
		DurationMinutes: 60,
		Price:           45,
		Status:          domain.BookingStatusConfirmed,
	}

	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(b.ServiceID, b.ProviderID, b.CustomerID, b.ReferenceCode, b.Date, b.StartTime,
			b.DurationMinutes, b.Price, b.Status, b.Note, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(30))

	err = repo.Create(ctx, b)
	assert.NoError(t, err)
	assert.Equal(t, int32(30), b.ID)
}

func TestBookingRepository_ListByServiceAndDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows(bookingRows).
		AddRow(30, 20, 5, 3, "SB-1A2B3C4D", "2025-01-06", "09:30", 60, 45.0, "CONFIRMED", "", time.Now(), time.Now()).
		AddRow(31, 20, 5, 4, "SB-5E6F7A8B", "2025-01-06", "11:00", 60, 45.0, "PENDING", "", time.Now(), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE service_id = \\$1 AND date = \\$2 AND status != 'CANCELLED'").
		WithArgs(int32(20), "2025-01-06").
		WillReturnRows(rows)

	bookings, err := repo.ListByServiceAndDate(ctx, 20, "2025-01-06")
	assert.NoError(t, err)
	assert.Len(t, bookings, 2)
	assert.Equal(t, "09:30", bookings[0].StartTime)
	assert.Equal(t, int32(60), bookings[0].DurationMinutes)
}

func TestBookingRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()

	b := &domain.Booking{ID: 30, Status: domain.BookingStatusCancelled}
	mock.ExpectExec("UPDATE bookings SET status").
		WithArgs(b.Status, b.Note, sqlmock.AnyArg(), b.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Update(ctx, b)
	assert.NoError(t, err)
}
