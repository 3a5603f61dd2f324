package dto

import (
	"github.com/zeecare/hms-backend/internal/domain/entity"
)

// MessageResponse is a generic success acknowledgement.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UserResponse carries a single user; the password hash never serialises.
type UserResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	User    *entity.User `json:"user"`
}

// AuthResponse is returned by sign-up and login together with the session cookie.
type AuthResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *entity.User `json:"user"`
	Token   string       `json:"token"`
}

type DoctorsResponse struct {
	Success bool           `json:"success"`
	Doctors []*entity.User `json:"doctors"`
}

type AppointmentResponse struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message"`
	Appointment *entity.Appointment `json:"appointment"`
}

type AppointmentsResponse struct {
	Success      bool                  `json:"success"`
	Appointments []*entity.Appointment `json:"appointments"`
}

type MessagesResponse struct {
	Success  bool              `json:"success"`
	Messages []*entity.Message `json:"messages"`
}

func Ack(message string) MessageResponse {
	return MessageResponse{Success: true, Message: message}
}
