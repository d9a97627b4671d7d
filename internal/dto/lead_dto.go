package dto

import "time"

type RegisterLeadRequest struct {
	Name  string `json:"name"  validate:"required,min=2"`
	Phone string `json:"phone" validate:"required,min=8"`
}

type LoginLeadRequest struct {
	Phone string `json:"phone" validate:"required,min=8"`
}

// LeadResponse is what the client persists locally as its "session".
type LeadResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}
