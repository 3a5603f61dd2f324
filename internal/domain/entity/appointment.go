package entity

import "time"

type AppointmentStatus string

const (
	AppointmentPending  AppointmentStatus = "Pending"
	AppointmentAccepted AppointmentStatus = "Accepted"
	AppointmentRejected AppointmentStatus = "Rejected"
)

// DoctorRef names the doctor an appointment was booked with.
type DoctorRef struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

// Appointment is a patient's booking with a doctor of a department.
type Appointment struct {
	ID              string            `json:"_id"`
	FirstName       string            `json:"firstName" validate:"required,min=3"`
	LastName        string            `json:"lastName" validate:"required,min=3"`
	Email           string            `json:"email" validate:"required,email"`
	Phone           string            `json:"phone" validate:"required,len=10"`
	NIC             string            `json:"nic" validate:"required,len=5"`
	DOB             time.Time         `json:"dob" validate:"required"`
	Gender          Gender            `json:"gender" validate:"required,oneof=Male Female"`
	AppointmentDate string            `json:"appointment_date" validate:"required"`
	Department      string            `json:"department" validate:"required"`
	Doctor          DoctorRef         `json:"doctor"`
	HasVisited      bool              `json:"hasVisited"`
	Address         string            `json:"address" validate:"required"`
	DoctorID        string            `json:"doctorId" validate:"required"`
	PatientID       string            `json:"patientId" validate:"required"`
	Status          AppointmentStatus `json:"status" validate:"required,oneof=Pending Accepted Rejected"`
	CreatedAt       time.Time         `json:"createdAt"`
}
