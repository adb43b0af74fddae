package impl

import (
	"context"
	"time"

	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/repository"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// appointmentStatuses lists the recognized booking states for validation.
var appointmentStatuses = []entity.AppointmentStatus{
	entity.AppointmentStatusScheduled,
	entity.AppointmentStatusApproved,
	entity.AppointmentStatusCompleted,
	entity.AppointmentStatusCancelled,
}

type appointmentService struct {
	appointmentRepo repository.AppointmentRepository
	serviceRepo     repository.ServiceRepository
}

// AppointmentServiceParams holds dependencies for AppointmentService, injected by Fx.
type AppointmentServiceParams struct {
	fx.In

	AppointmentRepo repository.AppointmentRepository
	ServiceRepo     repository.ServiceRepository
}

// NewAppointmentService creates a new appointment service instance
func NewAppointmentService(params AppointmentServiceParams) usecase.AppointmentUsecase {
	return &appointmentService{
		appointmentRepo: params.AppointmentRepo,
		serviceRepo:     params.ServiceRepo,
	}
}

// BookAppointment books a service offering at a future time
func (s *appointmentService) BookAppointment(ctx context.Context, userID uuid.UUID, input *usecase.AppointmentInput) (*entity.Appointment, error) {
	if input.AppointmentDate.Before(time.Now()) {
		return nil, domainerrors.ErrAppointmentInPast
	}

	if _, err := s.serviceRepo.FindServiceByID(ctx, input.ServiceID); err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("service offering not found")
		}

		return nil, errors.Wrap(err, "failed to find service offering by ID")
	}

	appointment := &entity.Appointment{
		ID:              uuid.New(),
		UserID:          userID,
		ServiceID:       input.ServiceID,
		AppointmentDate: input.AppointmentDate,
		Status:          entity.AppointmentStatusScheduled,
		Notes:           input.Notes,
		CreatedAt:       time.Now(),
	}

	if err := s.appointmentRepo.CreateAppointment(ctx, appointment); err != nil {
		return nil, errors.Wrap(err, "failed to create appointment")
	}

	return appointment, nil
}

// ListAppointments retrieves the actor's own bookings, or all for an admin
func (s *appointmentService) ListAppointments(ctx context.Context, actor usecase.Actor) ([]*entity.Appointment, error) {
	if actor.IsAdmin() {
		appointments, err := s.appointmentRepo.ListAppointments(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list appointments")
		}

		return appointments, nil
	}

	appointments, err := s.appointmentRepo.FindAppointmentsByUser(ctx, actor.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find appointments by user")
	}

	return appointments, nil
}

// UpdateAppointmentStatus sets the booking's status. Admin only.
func (s *appointmentService) UpdateAppointmentStatus(ctx context.Context, actor usecase.Actor, appointmentID uuid.UUID, rawStatus string) (*entity.Appointment, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	status, ok := parseAppointmentStatus(rawStatus)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			"status must be one of: Scheduled, Approved, Completed, Cancelled",
		)
	}

	appointment, err := s.appointmentRepo.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("appointment not found")
		}

		return nil, errors.Wrap(err, "failed to find appointment by ID")
	}

	if err := s.appointmentRepo.UpdateAppointmentStatus(ctx, appointmentID, status); err != nil {
		return nil, errors.Wrap(err, "failed to update appointment status")
	}

	appointment.Status = status

	return appointment, nil
}

// DeleteAppointment removes a booking. Admin only.
func (s *appointmentService) DeleteAppointment(ctx context.Context, actor usecase.Actor, appointmentID uuid.UUID) error {
	if !actor.IsAdmin() {
		return domainerrors.ErrForbidden
	}

	if err := s.appointmentRepo.DeleteAppointment(ctx, appointmentID); err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			return domainerrors.ErrNotFound.WithDetails("appointment not found")
		}

		return errors.Wrap(err, "failed to delete appointment")
	}

	return nil
}

func parseAppointmentStatus(raw string) (entity.AppointmentStatus, bool) {
	for _, status := range appointmentStatuses {
		if string(status) == raw {
			return status, true
		}
	}

	return "", false
}
