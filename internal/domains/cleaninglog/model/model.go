package model

import (
	"time"

	"bedboard/shared/model"
	"bedboard/shared/timezone"
)

const (
	TableName  = "cleaning_logs"
	EntityName = "cleaning_log"

	FieldID                = "id"
	FieldBedID             = "bed_id"
	FieldWard              = "ward"
	FieldStartTime         = "start_time"
	FieldEndTime           = "end_time"
	FieldEstimatedDuration = "estimated_duration"
	FieldActualDuration    = "actual_duration"
	FieldStatus            = "status"
	FieldAssignedTo        = "assigned_to"
	FieldCompletedBy       = "completed_by"
	FieldNotes             = "notes"
)

const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusOverdue    = "overdue"
)

type CleaningLog struct {
	ID                string     `db:"id"`
	BedID             string     `db:"bed_id"`
	Ward              string     `db:"ward"`
	StartTime         time.Time  `db:"start_time"`
	EndTime           *time.Time `db:"end_time"`
	EstimatedDuration int        `db:"estimated_duration"`
	ActualDuration    *int       `db:"actual_duration"`
	Status            string     `db:"status"`
	AssignedTo        *string    `db:"assigned_to"`
	CompletedBy       *string    `db:"completed_by"`
	Notes             *string    `db:"notes"`
	model.Metadata
}

// Open reports whether the episode still occupies the bed's single open slot.
func (c *CleaningLog) Open() bool {
	return c.Status == StatusInProgress || c.Status == StatusOverdue
}

// EffectiveStatus escalates in_progress to overdue once the elapsed time
// passes the estimate. The escalation is evaluated lazily on read; the stored
// status only catches up when the row is next saved or swept.
func (c *CleaningLog) EffectiveStatus() string {
	if c.Status == StatusInProgress && timezone.Now().After(c.StartTime.Add(time.Duration(c.EstimatedDuration)*time.Minute)) {
		return StatusOverdue
	}

	return c.Status
}

// Progress returns elapsed time as a fraction of the estimate, capped at 1.
func (c *CleaningLog) Progress() float64 {
	if c.EstimatedDuration <= 0 {
		return 1
	}

	elapsed := timezone.Now().Sub(c.StartTime).Minutes()
	progress := elapsed / float64(c.EstimatedDuration)

	if progress > 1 {
		return 1
	}

	if progress < 0 {
		return 0
	}

	return progress
}
