package model

import (
	"time"

	"bedboard/shared/model"
)

const (
	TableName  = "occupancy_logs"
	EntityName = "occupancy_log"

	FieldID           = "id"
	FieldBedID        = "bed_id"
	FieldUserID       = "user_id"
	FieldStatusChange = "status_change"
	FieldOccurredAt   = "occurred_at"
)

const (
	StatusChangeAssigned             = "assigned"
	StatusChangeReleased             = "released"
	StatusChangeMaintenanceStart     = "maintenance_start"
	StatusChangeMaintenanceEnd       = "maintenance_end"
	StatusChangeReserved             = "reserved"
	StatusChangeReservationCancelled = "reservation_cancelled"
)

type OccupancyLog struct {
	ID           string    `db:"id"`
	BedID        string    `db:"bed_id"`
	UserID       string    `db:"user_id"`
	StatusChange string    `db:"status_change"`
	OccurredAt   time.Time `db:"occurred_at"`
	model.Metadata
}
