package mocks

import (
	"context"
	"errors"

	"github.com/zeecare/hms-backend/internal/domain/contract"
	"github.com/zeecare/hms-backend/internal/domain/entity"
	usecasecontract "github.com/zeecare/hms-backend/internal/usecase/contract"
)

type MockAppointmentUsecase struct {
	ShouldFailBook   bool
	ShouldFailList   bool
	ShouldFailUpdate bool
	ShouldFailDelete bool
	FailWith         error

	MockAppointment entity.Appointment

	LastPatientID string
	LastInput     usecasecontract.AppointmentInput
	LastUpdateID  string
	LastUpdate    contract.AppointmentUpdate
	DeletedID     string
}

var _ usecasecontract.IAppointmentUseCase = (*MockAppointmentUsecase)(nil)

func NewMockAppointmentUsecase() *MockAppointmentUsecase {
	return &MockAppointmentUsecase{
		MockAppointment: entity.Appointment{
			ID:         "mock-appointment-id",
			FirstName:  "Jane",
			LastName:   "Doe",
			Department: "Cardiology",
			Doctor:     entity.DoctorRef{FirstName: "Gregory", LastName: "House"},
			DoctorID:   "mock-doctor-id",
			PatientID:  "mock-user-id",
			Status:     entity.AppointmentPending,
		},
	}
}

func (m *MockAppointmentUsecase) fail(def string) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	return errors.New(def)
}

func (m *MockAppointmentUsecase) Book(ctx context.Context, patientID string, in usecasecontract.AppointmentInput) (*entity.Appointment, error) {
	m.LastPatientID = patientID
	m.LastInput = in
	if m.ShouldFailBook {
		return nil, m.fail("booking failed")
	}
	a := m.MockAppointment
	a.PatientID = patientID
	return &a, nil
}

func (m *MockAppointmentUsecase) ListAll(ctx context.Context) ([]*entity.Appointment, error) {
	if m.ShouldFailList {
		return nil, m.fail("list failed")
	}
	a := m.MockAppointment
	return []*entity.Appointment{&a}, nil
}

func (m *MockAppointmentUsecase) Update(ctx context.Context, id string, update contract.AppointmentUpdate) (*entity.Appointment, error) {
	m.LastUpdateID = id
	m.LastUpdate = update
	if m.ShouldFailUpdate {
		return nil, m.fail("update failed")
	}
	a := m.MockAppointment
	if update.Status != nil {
		a.Status = *update.Status
	}
	return &a, nil
}

func (m *MockAppointmentUsecase) Delete(ctx context.Context, id string) error {
	m.DeletedID = id
	if m.ShouldFailDelete {
		return m.fail("delete failed")
	}
	return nil
}
