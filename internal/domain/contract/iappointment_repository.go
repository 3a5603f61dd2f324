package contract

import (
	"context"

	"github.com/zeecare/hms-backend/internal/domain/entity"
)

// AppointmentUpdate holds the fields an admin may change on an appointment.
type AppointmentUpdate struct {
	Status     *entity.AppointmentStatus
	HasVisited *bool
}

type IAppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *entity.Appointment) error
	GetAppointmentByID(ctx context.Context, id string) (*entity.Appointment, error)
	ListAppointments(ctx context.Context) ([]*entity.Appointment, error)
	UpdateAppointment(ctx context.Context, id string, update AppointmentUpdate) (*entity.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
}
