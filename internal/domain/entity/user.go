package entity

import (
	"time"
)

// User is a registered account: an admin, a patient or a doctor.
type User struct {
	ID               string     `json:"_id"`
	FirstName        string     `json:"firstName" validate:"required,min=3"`
	LastName         string     `json:"lastName" validate:"required,min=3"`
	Email            string     `json:"email" validate:"required,email"`
	Phone            string     `json:"phone" validate:"required,len=10"`
	NIC              string     `json:"nic" validate:"required,len=5"`
	DOB              time.Time  `json:"dob" validate:"required"`
	Gender           Gender     `json:"gender" validate:"required,oneof=Male Female"`
	Password         string     `json:"-" validate:"required,min=8"`
	Role             UserRole   `json:"role" validate:"required,oneof=Admin Patient Doctor"`
	DoctorDepartment string     `json:"doctorDepartment,omitempty"`
	DocAvatar        *DocAvatar `json:"docAvatar,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// DocAvatar references a doctor's picture in the external asset store.
type DocAvatar struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleAdmin   UserRole = "Admin"
	UserRolePatient UserRole = "Patient"
	UserRoleDoctor  UserRole = "Doctor"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleAdmin, UserRolePatient, UserRoleDoctor:
		return true
	}
	return false
}

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// dateLayouts are the accepted encodings of a calendar date such as a date of birth.
var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05.000Z07:00", "01/02/2006"}

// ParseDate parses a date in any of the accepted layouts.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
