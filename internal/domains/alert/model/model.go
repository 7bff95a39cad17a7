package model

import (
	"time"

	"bedboard/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "alerts"
	EntityName = "alert"

	FieldID          = "id"
	FieldType        = "type"
	FieldSeverity    = "severity"
	FieldMessage     = "message"
	FieldWard        = "ward"
	FieldRelatedBed  = "related_bed"
	FieldTargetRoles = "target_roles"
	FieldRaisedAt    = "raised_at"
)

const (
	DismissalTableName = "alert_dismissals"

	FieldDismissalAlertID = "alert_id"
	FieldDismissalUserID  = "user_id"
)

const (
	TypeOccupancyHigh = "occupancy_high"
)

const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

type Alert struct {
	ID          string         `db:"id"`
	Type        string         `db:"type"`
	Severity    string         `db:"severity"`
	Message     string         `db:"message"`
	Ward        *string        `db:"ward"`
	RelatedBed  *string        `db:"related_bed"`
	TargetRoles pq.StringArray `db:"target_roles"`
	RaisedAt    time.Time      `db:"raised_at"`
	model.Metadata
}

type Dismissal struct {
	AlertID     string    `db:"alert_id"`
	UserID      string    `db:"user_id"`
	DismissedAt time.Time `db:"dismissed_at"`
}
