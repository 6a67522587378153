package model

import (
	"time"

	"github.com/google/uuid"
)

// Patient is an animal under a vet's care, owned by a farmer.
type Patient struct {
	Base
	Name      string     `json:"name" db:"name"`
	Species   string     `json:"species" db:"species"`
	Breed     *string    `json:"breed,omitempty" db:"breed"`
	Age       *int       `json:"age,omitempty" db:"age"`
	OwnerID   uuid.UUID  `json:"owner" db:"owner_id"`
	VetID     uuid.UUID  `json:"vet" db:"vet_id"`
	LastVisit *time.Time `json:"lastVisit,omitempty" db:"last_visit"`
}

// CreatePatientRequest represents patient registration parameters.
// The owner reference is not checked against the users table; the store
// carries whatever the vet submits.
type CreatePatientRequest struct {
	Name      string     `json:"name" binding:"required"`
	Species   string     `json:"species" binding:"required"`
	Breed     *string    `json:"breed"`
	Age       *int       `json:"age"`
	OwnerID   uuid.UUID  `json:"owner" binding:"required"`
	LastVisit *time.Time `json:"lastVisit"`
}
