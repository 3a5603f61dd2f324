package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zeecare/hms-backend/internal/domain/contract"
	"github.com/zeecare/hms-backend/internal/domain/entity"
	usecasecontract "github.com/zeecare/hms-backend/internal/usecase/contract"
)

const (
	errDoctorNotFound      = "Doctor not found!"
	errDoctorsConflict     = "Doctors Conflict! Please Contact Through Email Or Phone!"
	errAppointmentNotFound = "Appointment Not Found!"
	errNothingToUpdate     = "Nothing To Update!"
	errInvalidStatus       = "Status must be Pending, Accepted or Rejected!"
)

// AppointmentUsecase books and administers appointments.
type AppointmentUsecase struct {
	appointmentRepo contract.IAppointmentRepository
	userRepo        contract.IUserRepository
	mailService     contract.IEmailService
	logger          usecasecontract.IAppLogger
	validator       usecasecontract.IValidator
	uuidGenerator   contract.IUUIDGenerator
}

func NewAppointmentUsecase(
	appointmentRepo contract.IAppointmentRepository,
	userRepo contract.IUserRepository,
	logger usecasecontract.IAppLogger,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
) *AppointmentUsecase {
	return &AppointmentUsecase{
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
		logger:          logger,
		validator:       validator,
		uuidGenerator:   uuidGenerator,
	}
}

var _ usecasecontract.IAppointmentUseCase = (*AppointmentUsecase)(nil)

// SetMailService enables status-change notifications to patients.
func (uc *AppointmentUsecase) SetMailService(mailService contract.IEmailService) {
	uc.mailService = mailService
}

// Book creates a pending appointment for patientID with the single doctor
// matching the requested name and department.
func (uc *AppointmentUsecase) Book(ctx context.Context, patientID string, in usecasecontract.AppointmentInput) (*entity.Appointment, error) {
	dob, _ := entity.ParseDate(in.DOB)
	appointment := &entity.Appointment{
		ID:              uc.uuidGenerator.NewUUID(),
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Email:           in.Email,
		Phone:           in.Phone,
		NIC:             in.NIC,
		DOB:             dob,
		Gender:          entity.Gender(in.Gender),
		AppointmentDate: in.AppointmentDate,
		Department:      in.Department,
		Doctor:          entity.DoctorRef{FirstName: in.DoctorFirstName, LastName: in.DoctorLastName},
		HasVisited:      in.HasVisited,
		Address:         in.Address,
		PatientID:       patientID,
		Status:          entity.AppointmentPending,
		CreatedAt:       time.Now(),
	}

	verr := &entity.ValidationError{}
	if err := uc.validator.ValidateStruct(appointment); err != nil {
		if !errors.As(err, &verr) {
			return nil, entity.NewInternalError(errInternalServer, err)
		}
	}
	if in.DOB != "" {
		if _, ok := entity.ParseDate(in.DOB); !ok {
			verr.Set(fieldDOB, errInvalidDOB)
		}
	}
	// doctorId is resolved below, so its absence is not the caller's fault.
	verr = withoutField(verr, "doctorId")
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	doctors, err := uc.userRepo.FindUsers(ctx, contract.UserFilter{
		Role:       entity.UserRoleDoctor,
		FirstName:  in.DoctorFirstName,
		LastName:   in.DoctorLastName,
		Department: in.Department,
	})
	if err != nil {
		uc.logger.Errorf("failed to look up doctor for appointment: %v", err)
		return nil, entity.NewInternalError(errInternalServer, err)
	}
	switch {
	case len(doctors) == 0:
		return nil, entity.NewNotFoundError(errDoctorNotFound)
	case len(doctors) > 1:
		return nil, entity.NewConflictError(errDoctorsConflict)
	}
	appointment.DoctorID = doctors[0].ID

	if err := uc.appointmentRepo.CreateAppointment(ctx, appointment); err != nil {
		uc.logger.Errorf("failed to create appointment for patient %s: %v", patientID, err)
		return nil, entity.NewInternalError("failed to create appointment", err)
	}
	return appointment, nil
}

func (uc *AppointmentUsecase) ListAll(ctx context.Context) ([]*entity.Appointment, error) {
	appointments, err := uc.appointmentRepo.ListAppointments(ctx)
	if err != nil {
		uc.logger.Errorf("failed to list appointments: %v", err)
		return nil, entity.NewInternalError(errInternalServer, err)
	}
	return appointments, nil
}

// Update changes the status or visit flag of an appointment and tells the
// patient about a status change when mail is configured.
func (uc *AppointmentUsecase) Update(ctx context.Context, id string, update contract.AppointmentUpdate) (*entity.Appointment, error) {
	if update.Status == nil && update.HasVisited == nil {
		return nil, entity.NewBadRequestError(errNothingToUpdate)
	}
	if update.Status != nil {
		switch *update.Status {
		case entity.AppointmentPending, entity.AppointmentAccepted, entity.AppointmentRejected:
		default:
			return nil, entity.NewBadRequestError(errInvalidStatus)
		}
	}

	current, err := uc.appointmentRepo.GetAppointmentByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, entity.NewNotFoundError(errAppointmentNotFound)
		}
		uc.logger.Errorf("failed to retrieve appointment %s: %v", id, err)
		return nil, entity.NewInternalError(errInternalServer, err)
	}

	updated, err := uc.appointmentRepo.UpdateAppointment(ctx, id, update)
	if err != nil {
		if isNotFound(err) {
			return nil, entity.NewNotFoundError(errAppointmentNotFound)
		}
		uc.logger.Errorf("failed to update appointment %s: %v", id, err)
		return nil, entity.NewInternalError("failed to update appointment", err)
	}

	if uc.mailService != nil && update.Status != nil && *update.Status != current.Status {
		uc.notifyStatus(ctx, updated)
	}
	return updated, nil
}

func (uc *AppointmentUsecase) Delete(ctx context.Context, id string) error {
	if err := uc.appointmentRepo.DeleteAppointment(ctx, id); err != nil {
		if isNotFound(err) {
			return entity.NewNotFoundError(errAppointmentNotFound)
		}
		uc.logger.Errorf("failed to delete appointment %s: %v", id, err)
		return entity.NewInternalError("failed to delete appointment", err)
	}
	return nil
}

func (uc *AppointmentUsecase) notifyStatus(ctx context.Context, appointment *entity.Appointment) {
	subject := fmt.Sprintf("Your appointment is %s", appointment.Status)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour %s appointment on %s with Dr. %s %s is now %s.\n\nThanks,\nThe Hospital Team",
		appointment.FirstName, appointment.Department, appointment.AppointmentDate,
		appointment.Doctor.FirstName, appointment.Doctor.LastName, appointment.Status,
	)
	if err := uc.mailService.SendEmail(ctx, appointment.Email, subject, body); err != nil {
		uc.logger.Warnf("failed to notify %s about appointment %s: %v", appointment.Email, appointment.ID, err)
	}
}

func withoutField(verr *entity.ValidationError, field string) *entity.ValidationError {
	kept := verr.Violations[:0]
	for _, v := range verr.Violations {
		if v.Field != field {
			kept = append(kept, v)
		}
	}
	verr.Violations = kept
	return verr
}
