package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeecare/hms-backend/internal/domain/entity"
)

func validUser() entity.User {
	return entity.User{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Phone:     "0123456789",
		NIC:       "12345",
		DOB:       time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Gender:    entity.GenderFemale,
		Password:  "supersecret",
		Role:      entity.UserRolePatient,
	}
}

func violations(t *testing.T, err error) *entity.ValidationError {
	t.Helper()
	require.Error(t, err)
	verr, ok := err.(*entity.ValidationError)
	require.True(t, ok, "expected *entity.ValidationError, got %T", err)
	return verr
}

func TestValidateStruct_Valid(t *testing.T) {
	u := validUser()
	assert.NoError(t, NewValidator().ValidateStruct(&u))
}

func TestValidateStruct_ShortFirstName(t *testing.T) {
	u := validUser()
	u.FirstName = "Jo"

	verr := violations(t, NewValidator().ValidateStruct(&u))

	assert.Equal(t, []entity.FieldViolation{{Field: "firstName", Message: "First Name Must Contain At Least 3 Characters!"}}, verr.Violations)
}

func TestValidateStruct_ReportsEveryViolation(t *testing.T) {
	u := validUser()
	u.FirstName = "Jo"
	u.Phone = "12345"
	u.Email = "not-an-email"
	u.Password = "short"
	u.Gender = "Other"

	verr := violations(t, NewValidator().ValidateStruct(&u))

	assert.True(t, verr.Has("firstName"))
	assert.True(t, verr.Has("phone"))
	assert.True(t, verr.Has("email"))
	assert.True(t, verr.Has("password"))
	assert.True(t, verr.Has("gender"))
	assert.Contains(t, verr.Error(), "Phone Number Must Contain Exact 10 Digits!")
	assert.Contains(t, verr.Error(), "Password Must Contain At Least 8 Characters!")
	assert.Contains(t, verr.Error(), "Gender must be Male or Female!")
}

func TestValidateStruct_NestedPaths(t *testing.T) {
	a := entity.Appointment{
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane@example.com",
		Phone:           "0123456789",
		NIC:             "12345",
		DOB:             time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Gender:          entity.GenderFemale,
		AppointmentDate: "2026-11-02",
		Department:      "Cardiology",
		Address:         "1 Main St",
		DoctorID:        "d1",
		PatientID:       "p1",
		Status:          "Maybe",
	}

	verr := violations(t, NewValidator().ValidateStruct(&a))

	assert.True(t, verr.Has("doctor.firstName"))
	assert.True(t, verr.Has("status"))
	assert.Contains(t, verr.Error(), "Doctor Name Is Required!")
	assert.Contains(t, verr.Error(), "Status must be Pending, Accepted or Rejected!")
}

func TestValidateStruct_MessageLength(t *testing.T) {
	m := entity.Message{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Phone: "0123456789", Message: "too short"}

	verr := violations(t, NewValidator().ValidateStruct(&m))

	assert.Equal(t, "Message Must Contain At Least 10 Characters!", verr.Error())
}
