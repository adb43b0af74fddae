package impl

import (
	"context"
	"testing"
	"time"

	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/repository"
	mockRepo "pawmart/internal/mocks/repository"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAppointmentService(t *testing.T) (usecase.AppointmentUsecase, *mockRepo.MockAppointmentRepository, *mockRepo.MockServiceRepository) {
	appointmentRepo := mockRepo.NewMockAppointmentRepository(t)
	serviceRepo := mockRepo.NewMockServiceRepository(t)
	service := NewAppointmentService(AppointmentServiceParams{
		AppointmentRepo: appointmentRepo,
		ServiceRepo:     serviceRepo,
	})

	return service, appointmentRepo, serviceRepo
}

func TestAppointmentService_BookAppointment_Success(t *testing.T) {
	service, appointmentRepo, serviceRepo := newAppointmentService(t)

	ctx := context.Background()
	userID := uuid.New()
	serviceID := uuid.New()
	date := time.Now().Add(48 * time.Hour)

	serviceRepo.EXPECT().
		FindServiceByID(ctx, serviceID).
		Return(&entity.ServiceOffering{ID: serviceID, Name: "Grooming"}, nil)
	appointmentRepo.EXPECT().
		CreateAppointment(ctx, mock.AnythingOfType("*entity.Appointment")).
		Return(nil)

	appointment, err := service.BookAppointment(ctx, userID, &usecase.AppointmentInput{
		ServiceID:       serviceID,
		AppointmentDate: date,
		Notes:           "Nervous around clippers",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusScheduled, appointment.Status)
	assert.Equal(t, userID, appointment.UserID)
	assert.Equal(t, "Nervous around clippers", appointment.Notes)
}

func TestAppointmentService_BookAppointment_PastDate(t *testing.T) {
	service, _, _ := newAppointmentService(t)

	appointment, err := service.BookAppointment(context.Background(), uuid.New(), &usecase.AppointmentInput{
		ServiceID:       uuid.New(),
		AppointmentDate: time.Now().Add(-time.Hour),
	})
	assert.Nil(t, appointment)
	assert.ErrorIs(t, err, domainerrors.ErrAppointmentInPast)
}

func TestAppointmentService_BookAppointment_UnknownService(t *testing.T) {
	service, _, serviceRepo := newAppointmentService(t)

	ctx := context.Background()
	serviceID := uuid.New()

	serviceRepo.EXPECT().
		FindServiceByID(ctx, serviceID).
		Return(nil, repository.ErrServiceNotFound)

	appointment, err := service.BookAppointment(ctx, uuid.New(), &usecase.AppointmentInput{
		ServiceID:       serviceID,
		AppointmentDate: time.Now().Add(time.Hour),
	})
	assert.Nil(t, appointment)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.ErrorCode())
}

func TestAppointmentService_ListAppointments_CustomerSeesOwn(t *testing.T) {
	service, appointmentRepo, _ := newAppointmentService(t)

	ctx := context.Background()
	actor := customerActor()
	own := []*entity.Appointment{{ID: uuid.New(), UserID: actor.UserID}}

	appointmentRepo.EXPECT().
		FindAppointmentsByUser(ctx, actor.UserID).
		Return(own, nil)

	appointments, err := service.ListAppointments(ctx, actor)
	require.NoError(t, err)
	assert.Equal(t, own, appointments)
}

func TestAppointmentService_UpdateAppointmentStatus_Admin(t *testing.T) {
	service, appointmentRepo, _ := newAppointmentService(t)

	ctx := context.Background()
	appointmentID := uuid.New()

	appointmentRepo.EXPECT().
		FindAppointmentByID(ctx, appointmentID).
		Return(&entity.Appointment{ID: appointmentID, Status: entity.AppointmentStatusScheduled}, nil)
	appointmentRepo.EXPECT().
		UpdateAppointmentStatus(ctx, appointmentID, entity.AppointmentStatusApproved).
		Return(nil)

	appointment, err := service.UpdateAppointmentStatus(ctx, adminActor(), appointmentID, "Approved")
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusApproved, appointment.Status)
}

func TestAppointmentService_UpdateAppointmentStatus_CustomerForbidden(t *testing.T) {
	service, _, _ := newAppointmentService(t)

	appointment, err := service.UpdateAppointmentStatus(context.Background(), customerActor(), uuid.New(), "Approved")
	assert.Nil(t, appointment)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAppointmentService_UpdateAppointmentStatus_UnknownStatus(t *testing.T) {
	service, _, _ := newAppointmentService(t)

	appointment, err := service.UpdateAppointmentStatus(context.Background(), adminActor(), uuid.New(), "Postponed")
	assert.Nil(t, appointment)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestAppointmentService_DeleteAppointment_Admin(t *testing.T) {
	service, appointmentRepo, _ := newAppointmentService(t)

	ctx := context.Background()
	appointmentID := uuid.New()

	appointmentRepo.EXPECT().
		DeleteAppointment(ctx, appointmentID).
		Return(nil)

	assert.NoError(t, service.DeleteAppointment(ctx, adminActor(), appointmentID))
}
