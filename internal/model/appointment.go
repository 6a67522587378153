package model

import (
	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "Scheduled"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

// Appointment is a farmer-booked visit. Date and Time are kept as the
// client-supplied strings ("2025-01-31", "14:30"); the store sorts on them
// lexicographically, which is correct for these formats.
type Appointment struct {
	Base
	Title      string            `json:"title" db:"title"`
	Date       string            `json:"date" db:"date"`
	Time       string            `json:"time" db:"time"`
	ClientName string            `json:"clientName" db:"client_name"`
	UserID     uuid.UUID         `json:"userId" db:"user_id"`
	VetID      *uuid.UUID        `json:"vetId,omitempty" db:"vet_id"`
	Status     AppointmentStatus `json:"status" db:"status"`
}

// CreateAppointmentRequest represents booking parameters
type CreateAppointmentRequest struct {
	Title      string     `json:"title" binding:"required"`
	Date       string     `json:"date" binding:"required"`
	Time       string     `json:"time" binding:"required"`
	ClientName string     `json:"clientName" binding:"required"`
	VetID      *uuid.UUID `json:"vetId"`
}
