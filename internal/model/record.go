package model

import (
	"github.com/google/uuid"
)

type RecordKind string

// The store carries one record entity for the two historical shapes:
// farmer-facing treatment records and vet-authored clinical records.
const (
	RecordKindTreatment RecordKind = "treatment"
	RecordKindClinical  RecordKind = "clinical"
)

// Record is a veterinary record. Treatment records identify the animal by
// PetName/AnimalType and belong to a farmer (OwnerID); clinical records
// reference a registered Patient instead.
type Record struct {
	Base
	Kind         RecordKind `json:"kind" db:"kind"`
	VetID        uuid.UUID  `json:"vetId" db:"vet_id"`
	OwnerID      *uuid.UUID `json:"userId,omitempty" db:"owner_id"`
	PatientID    *uuid.UUID `json:"patient,omitempty" db:"patient_id"`
	PetName      string     `json:"petName,omitempty" db:"pet_name"`
	AnimalType   string     `json:"animalType,omitempty" db:"animal_type"`
	Diagnosis    string     `json:"diagnosis" db:"diagnosis"`
	Treatment    string     `json:"treatment" db:"treatment"`
	Medications  *string    `json:"medications,omitempty" db:"medications"`
	VisitDate    string     `json:"visitDate,omitempty" db:"visit_date"`
	FollowUpDate *string    `json:"followUpDate,omitempty" db:"follow_up_date"`
}

// CreateRecordRequest represents treatment record parameters
type CreateRecordRequest struct {
	PetName    string     `json:"petName" binding:"required"`
	AnimalType string     `json:"animalType" binding:"required"`
	Diagnosis  string     `json:"diagnosis" binding:"required"`
	Treatment  string     `json:"treatment" binding:"required"`
	VisitDate  string     `json:"visitDate" binding:"required"`
	VetID      *uuid.UUID `json:"vetId"`
	OwnerID    *uuid.UUID `json:"userId"`
}

// CreateClinicalRecordRequest represents clinical record parameters
type CreateClinicalRecordRequest struct {
	PatientID    uuid.UUID `json:"patient" binding:"required"`
	Diagnosis    string    `json:"diagnosis" binding:"required"`
	Treatment    string    `json:"treatment" binding:"required"`
	Medications  *string   `json:"medications"`
	FollowUpDate *string   `json:"followUpDate"`
}
