package usecasecontract

import (
	"context"

	"github.com/zeecare/hms-backend/internal/domain/contract"
	"github.com/zeecare/hms-backend/internal/domain/entity"
)

// AppointmentInput is a patient's booking request.
type AppointmentInput struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	NIC             string
	DOB             string
	Gender          string
	AppointmentDate string
	Department      string
	DoctorFirstName string
	DoctorLastName  string
	HasVisited      bool
	Address         string
}

type IAppointmentUseCase interface {
	Book(ctx context.Context, patientID string, in AppointmentInput) (*entity.Appointment, error)
	ListAll(ctx context.Context) ([]*entity.Appointment, error)
	Update(ctx context.Context, id string, update contract.AppointmentUpdate) (*entity.Appointment, error)
	Delete(ctx context.Context, id string) error
}
