package model

import (
	"time"

	"bedboard/shared/model"
)

const (
	TableName  = "beds"
	EntityName = "bed"

	FieldID                        = "id"
	FieldBedCode                   = "bed_code"
	FieldWard                      = "ward"
	FieldStatus                    = "status"
	FieldPatientName               = "patient_name"
	FieldPatientID                 = "patient_id"
	FieldEstimatedDischargeTime    = "estimated_discharge_time"
	FieldDischargeNotes            = "discharge_notes"
	FieldCleaningStartTime         = "cleaning_start_time"
	FieldEstimatedCleaningDuration = "estimated_cleaning_duration"
	FieldEstimatedCleaningEndTime  = "estimated_cleaning_end_time"
	FieldNotes                     = "notes"
	FieldVersion                   = "version"
)

const (
	StatusAvailable = "available"
	StatusCleaning  = "cleaning"
	StatusOccupied  = "occupied"
)

// ValidStatus reports whether s is one of the three bed statuses.
func ValidStatus(s string) bool {
	return s == StatusAvailable || s == StatusCleaning || s == StatusOccupied
}

type Bed struct {
	ID                        string     `db:"id"`
	BedCode                   string     `db:"bed_code"`
	Ward                      string     `db:"ward"`
	Status                    string     `db:"status"`
	PatientName               *string    `db:"patient_name"`
	PatientID                 *string    `db:"patient_id"`
	EstimatedDischargeTime    *time.Time `db:"estimated_discharge_time"`
	DischargeNotes            *string    `db:"discharge_notes"`
	CleaningStartTime         *time.Time `db:"cleaning_start_time"`
	EstimatedCleaningDuration *int       `db:"estimated_cleaning_duration"`
	EstimatedCleaningEndTime  *time.Time `db:"estimated_cleaning_end_time"`
	Notes                     *string    `db:"notes"`
	Version                   int        `db:"version"`
	model.Metadata
}

// ClearOccupancyFields nulls every field that is only valid while the bed is
// occupied.
func (b *Bed) ClearOccupancyFields() {
	b.PatientName = nil
	b.PatientID = nil
	b.EstimatedDischargeTime = nil
	b.DischargeNotes = nil
}

// ClearCleaningFields nulls every field that is only valid while the bed is
// in cleaning.
func (b *Bed) ClearCleaningFields() {
	b.CleaningStartTime = nil
	b.EstimatedCleaningDuration = nil
	b.EstimatedCleaningEndTime = nil
}
