package entity

import "time"

// Message is a note sent through the public contact form.
type Message struct {
	ID        string    `json:"_id"`
	FirstName string    `json:"firstName" validate:"required,min=3"`
	LastName  string    `json:"lastName" validate:"required,min=3"`
	Email     string    `json:"email" validate:"required,email"`
	Phone     string    `json:"phone" validate:"required,len=10"`
	Message   string    `json:"message" validate:"required,min=10"`
	CreatedAt time.Time `json:"createdAt"`
}
