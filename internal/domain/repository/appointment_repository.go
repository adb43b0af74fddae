package repository

import (
	"context"

	"pawmart/internal/domain/entity"
	"pawmart/internal/errors"

	"github.com/google/uuid"
)

// ErrAppointmentNotFound is returned when no appointment matches the lookup.
var ErrAppointmentNotFound = errors.New("appointment not found")

// AppointmentRepository persists service bookings.
type AppointmentRepository interface {
	// CreateAppointment persists a new booking.
	CreateAppointment(ctx context.Context, appointment *entity.Appointment) error

	// FindAppointmentByID retrieves a booking by its unique ID.
	FindAppointmentByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)

	// FindAppointmentsByUser retrieves the user's bookings, newest first.
	FindAppointmentsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Appointment, error)

	// ListAppointments retrieves all bookings, newest first.
	ListAppointments(ctx context.Context) ([]*entity.Appointment, error)

	// UpdateAppointmentStatus sets the booking's status.
	UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) error

	// DeleteAppointment removes a booking.
	DeleteAppointment(ctx context.Context, id uuid.UUID) error
}
