package dto

import (
	"time"

	"bedboard/internal/domains/occupancylog/model"
	"bedboard/shared"
	gDto "bedboard/shared/dto"
)

type OccupancyLogResponse struct {
	ID           string    `json:"id"`
	BedID        string    `json:"bed_id"`
	UserID       string    `json:"user_id"`
	StatusChange string    `json:"status_change"`
	OccurredAt   time.Time `json:"occurred_at"`
	gDto.Metadata
}

func (r *OccupancyLogResponse) FromModel(entry model.OccupancyLog) {
	r.ID = entry.ID
	r.BedID = entry.BedID
	r.UserID = entry.UserID
	r.StatusChange = entry.StatusChange
	r.OccurredAt = entry.OccurredAt
	r.Metadata.FromModel(entry.Metadata)
}

type GetOccupancyLogsResponse struct {
	Logs      []OccupancyLogResponse `json:"logs"`
	TotalPage int                    `json:"total_page"`
	TotalData int                    `json:"total_data"`
}

func (r *GetOccupancyLogsResponse) FromModels(models []model.OccupancyLog, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Logs = make([]OccupancyLogResponse, len(models))
	for i, mod := range models {
		r.Logs[i].FromModel(mod)
	}
}

// OccupantPeriod is one stay derived from the ledger: an assignment entry
// paired with the next release for the same bed. ReleasedAt is nil while the
// stay is ongoing.
type OccupantPeriod struct {
	UserID     string     `json:"user_id"`
	AssignedAt time.Time  `json:"assigned_at"`
	ReleasedAt *time.Time `json:"released_at,omitempty"`
	Hours      *float64   `json:"hours,omitempty"`
}

type GetOccupantHistoryResponse struct {
	BedID   string           `json:"bed_id"`
	Periods []OccupantPeriod `json:"periods"`
}
