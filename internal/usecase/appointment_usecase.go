package usecase

import (
	"context"
	"time"

	"pawmart/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentInput carries a booking request.
type AppointmentInput struct {
	ServiceID       uuid.UUID
	AppointmentDate time.Time
	Notes           string
}

// AppointmentUsecase defines the interface for service booking use cases
type AppointmentUsecase interface {
	// BookAppointment books a service offering at a future time.
	BookAppointment(ctx context.Context, userID uuid.UUID, input *AppointmentInput) (*entity.Appointment, error)

	// ListAppointments retrieves the actor's own bookings, or every
	// booking for an admin.
	ListAppointments(ctx context.Context, actor Actor) ([]*entity.Appointment, error)

	// UpdateAppointmentStatus sets the booking's status. Admin only.
	UpdateAppointmentStatus(ctx context.Context, actor Actor, appointmentID uuid.UUID, rawStatus string) (*entity.Appointment, error)

	// DeleteAppointment removes a booking. Admin only.
	DeleteAppointment(ctx context.Context, actor Actor, appointmentID uuid.UUID) error
}
