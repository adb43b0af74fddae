package postgres

import (
	"context"

	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/repository"
	"pawmart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// appointmentRepository implements the repository.AppointmentRepository interface.
type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository is the constructor for appointmentRepository.
func NewAppointmentRepository(db *gorm.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (repo *appointmentRepository) CreateAppointment(ctx context.Context, appointment *entity.Appointment) error {
	appointmentM := fromAppointmentDomain(appointment)

	if err := repo.db.WithContext(ctx).Create(appointmentM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create appointment")
	}

	appointment.ID = appointmentM.ID
	appointment.CreatedAt = appointmentM.CreatedAt

	return nil
}

func (repo *appointmentRepository) FindAppointmentByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointmentM model.AppointmentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&appointmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAppointmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find appointment by ID")
	}

	return toAppointmentDomain(&appointmentM), nil
}

func (repo *appointmentRepository) FindAppointmentsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Appointment, error) {
	return repo.listAppointments(ctx, "user_id = ?", userID)
}

func (repo *appointmentRepository) ListAppointments(ctx context.Context) ([]*entity.Appointment, error) {
	return repo.listAppointments(ctx, "", nil)
}

func (repo *appointmentRepository) listAppointments(ctx context.Context, query string, arg any) ([]*entity.Appointment, error) {
	var appointmentModels []*model.AppointmentModel

	tx := repo.db.WithContext(ctx)
	if query != "" {
		tx = tx.Where(query, arg)
	}

	if err := tx.Order("appointment_date DESC").Find(&appointmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list appointments")
	}

	appointments := make([]*entity.Appointment, 0, len(appointmentModels))
	for _, appointmentM := range appointmentModels {
		appointments = append(appointments, toAppointmentDomain(appointmentM))
	}

	return appointments, nil
}

func (repo *appointmentRepository) UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AppointmentModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update appointment status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAppointmentNotFound
	}

	return nil
}

func (repo *appointmentRepository) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AppointmentModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete appointment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAppointmentNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAppointmentDomain(data *model.AppointmentModel) *entity.Appointment {
	if data == nil {
		return nil
	}

	return &entity.Appointment{
		ID:              data.ID,
		UserID:          data.UserID,
		ServiceID:       data.ServiceID,
		AppointmentDate: data.AppointmentDate,
		Status:          entity.AppointmentStatus(data.Status),
		Notes:           data.Notes,
		CreatedAt:       data.CreatedAt,
	}
}

func fromAppointmentDomain(data *entity.Appointment) *model.AppointmentModel {
	if data == nil {
		return nil
	}

	return &model.AppointmentModel{
		ID:              data.ID,
		UserID:          data.UserID,
		ServiceID:       data.ServiceID,
		AppointmentDate: data.AppointmentDate,
		Status:          string(data.Status),
		Notes:           data.Notes,
		CreatedAt:       data.CreatedAt,
	}
}
