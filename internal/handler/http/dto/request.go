package dto

import (
	"github.com/zeecare/hms-backend/internal/domain/contract"
	"github.com/zeecare/hms-backend/internal/domain/entity"
	usecasecontract "github.com/zeecare/hms-backend/internal/usecase/contract"
)

// RegisterRequest is the body of patient, admin and doctor sign-up. Doctor
// sign-up arrives as a multipart form, the others as JSON.
type RegisterRequest struct {
	FirstName        string `json:"firstName" form:"firstName"`
	LastName         string `json:"lastName" form:"lastName"`
	Email            string `json:"email" form:"email"`
	Phone            string `json:"phone" form:"phone"`
	NIC              string `json:"nic" form:"nic"`
	DOB              string `json:"dob" form:"dob"`
	Gender           string `json:"gender" form:"gender"`
	Password         string `json:"password" form:"password"`
	DoctorDepartment string `json:"doctorDepartment" form:"doctorDepartment"`
}

func (r RegisterRequest) ToInput() usecasecontract.RegisterInput {
	return usecasecontract.RegisterInput{
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Email:            r.Email,
		Phone:            r.Phone,
		NIC:              r.NIC,
		DOB:              r.DOB,
		Gender:           r.Gender,
		Password:         r.Password,
		DoctorDepartment: r.DoctorDepartment,
	}
}

type LoginRequest struct {
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
	Role            string `json:"role" form:"role"`
}

// UpdateProfileRequest lists profile changes; absent fields keep their value.
type UpdateProfileRequest struct {
	FirstName        *string `json:"firstName" form:"firstName"`
	LastName         *string `json:"lastName" form:"lastName"`
	Email            *string `json:"email" form:"email"`
	Phone            *string `json:"phone" form:"phone"`
	NIC              *string `json:"nic" form:"nic"`
	DOB              *string `json:"dob" form:"dob"`
	Gender           *string `json:"gender" form:"gender"`
	Password         *string `json:"password" form:"password"`
	DoctorDepartment *string `json:"doctorDepartment" form:"doctorDepartment"`
}

func (r UpdateProfileRequest) ToPatch() usecasecontract.UserPatch {
	return usecasecontract.UserPatch{
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Email:            r.Email,
		Phone:            r.Phone,
		NIC:              r.NIC,
		DOB:              r.DOB,
		Gender:           r.Gender,
		Password:         r.Password,
		DoctorDepartment: r.DoctorDepartment,
	}
}

type AppointmentRequest struct {
	FirstName       string `json:"firstName" form:"firstName"`
	LastName        string `json:"lastName" form:"lastName"`
	Email           string `json:"email" form:"email"`
	Phone           string `json:"phone" form:"phone"`
	NIC             string `json:"nic" form:"nic"`
	DOB             string `json:"dob" form:"dob"`
	Gender          string `json:"gender" form:"gender"`
	AppointmentDate string `json:"appointment_date" form:"appointment_date"`
	Department      string `json:"department" form:"department"`
	DoctorFirstName string `json:"doctor_firstName" form:"doctor_firstName"`
	DoctorLastName  string `json:"doctor_lastName" form:"doctor_lastName"`
	HasVisited      bool   `json:"hasVisited" form:"hasVisited"`
	Address         string `json:"address" form:"address"`
}

func (r AppointmentRequest) ToInput() usecasecontract.AppointmentInput {
	return usecasecontract.AppointmentInput{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		NIC:             r.NIC,
		DOB:             r.DOB,
		Gender:          r.Gender,
		AppointmentDate: r.AppointmentDate,
		Department:      r.Department,
		DoctorFirstName: r.DoctorFirstName,
		DoctorLastName:  r.DoctorLastName,
		HasVisited:      r.HasVisited,
		Address:         r.Address,
	}
}

type UpdateAppointmentRequest struct {
	Status     *string `json:"status" form:"status"`
	HasVisited *bool   `json:"hasVisited" form:"hasVisited"`
}

func (r UpdateAppointmentRequest) ToUpdate() contract.AppointmentUpdate {
	var update contract.AppointmentUpdate
	if r.Status != nil {
		status := entity.AppointmentStatus(*r.Status)
		update.Status = &status
	}
	update.HasVisited = r.HasVisited
	return update
}

type MessageRequest struct {
	FirstName string `json:"firstName" form:"firstName"`
	LastName  string `json:"lastName" form:"lastName"`
	Email     string `json:"email" form:"email"`
	Phone     string `json:"phone" form:"phone"`
	Message   string `json:"message" form:"message"`
}

func (r MessageRequest) ToInput() usecasecontract.MessageInput {
	return usecasecontract.MessageInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Message:   r.Message,
	}
}
