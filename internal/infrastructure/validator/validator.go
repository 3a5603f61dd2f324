package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/zeecare/hms-backend/internal/domain/entity"
	usecasecontract "github.com/zeecare/hms-backend/internal/usecase/contract"
)

// messages maps "<field path>.<tag>" to the message shown to users. Field
// paths use JSON names and are relative to the validated struct.
var messages = map[string]string{
	"firstName.required":        "First Name Is Required!",
	"firstName.min":             "First Name Must Contain At Least 3 Characters!",
	"lastName.required":         "Last Name Is Required!",
	"lastName.min":              "Last Name Must Contain At Least 3 Characters!",
	"email.required":            "Email Is Required!",
	"email.email":               "Please Provide A Valid Email!",
	"phone.required":            "Phone Is Required!",
	"phone.len":                 "Phone Number Must Contain Exact 10 Digits!",
	"nic.required":              "NIC Is Required!",
	"nic.len":                   "NIC Must Contain Exact 5 Digits!",
	"dob.required":              "DOB is required!",
	"gender.required":           "Gender Is Required!",
	"gender.oneof":              "Gender must be Male or Female!",
	"password.required":         "Password Is Required!",
	"password.min":              "Password Must Contain At Least 8 Characters!",
	"role.required":             "Role Is Required!",
	"role.oneof":                "Role must be Admin, Patient or Doctor!",
	"message.required":          "Message Is Required!",
	"message.min":               "Message Must Contain At Least 10 Characters!",
	"appointment_date.required": "Appointment Date Is Required!",
	"department.required":       "Department Name Is Required!",
	"doctor.firstName.required": "Doctor Name Is Required!",
	"doctor.lastName.required":  "Doctor Name Is Required!",
	"address.required":          "Address Is Required!",
	"doctorId.required":         "Doctor Id Is Required!",
	"patientId.required":        "Patient Id Is Required!",
	"status.oneof":              "Status must be Pending, Accepted or Rejected!",
}

// AppValidator implements the usecasecontract.IValidator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a validator that reports fields by their JSON names.
func NewValidator() usecasecontract.IValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	return &AppValidator{validate: v}
}

// ValidateStruct checks every constraint of s and returns all violations at once.
func (av *AppValidator) ValidateStruct(s interface{}) error {
	err := av.validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate %T: %w", s, err)
	}

	verr := &entity.ValidationError{}
	for _, fe := range fieldErrs {
		field := relativePath(fe.Namespace())
		if verr.Has(field) {
			continue
		}
		verr.Set(field, messageFor(field, fe))
	}
	return verr
}

func messageFor(field string, fe validator.FieldError) string {
	if msg, ok := messages[field+"."+fe.Tag()]; ok {
		return msg
	}
	if fe.Param() != "" {
		return fmt.Sprintf("%s failed the %s=%s constraint!", field, fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s failed the %s constraint!", field, fe.Tag())
}

// relativePath drops the root struct name: "User.firstName" -> "firstName".
func relativePath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return strings.ToLower(fld.Name[:1]) + fld.Name[1:]
	case "":
		return fld.Name
	}
	return name
}
