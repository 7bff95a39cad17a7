package dto

import (
	"time"

	"bedboard/internal/domains/cleaninglog/model"
	"bedboard/shared"
	gDto "bedboard/shared/dto"
)

type CleaningLogResponse struct {
	ID                string     `json:"id"`
	BedID             string     `json:"bed_id"`
	Ward              string     `json:"ward"`
	StartTime         time.Time  `json:"start_time"`
	EndTime           *time.Time `json:"end_time,omitempty"`
	EstimatedDuration int        `json:"estimated_duration"`
	ActualDuration    *int       `json:"actual_duration,omitempty"`
	Status            string     `json:"status"`
	AssignedTo        *string    `json:"assigned_to,omitempty"`
	CompletedBy       *string    `json:"completed_by,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *CleaningLogResponse) FromModel(entry model.CleaningLog) {
	r.ID = entry.ID
	r.BedID = entry.BedID
	r.Ward = entry.Ward
	r.StartTime = entry.StartTime
	r.EndTime = entry.EndTime
	r.EstimatedDuration = entry.EstimatedDuration
	r.ActualDuration = entry.ActualDuration
	r.Status = entry.EffectiveStatus()
	r.AssignedTo = entry.AssignedTo
	r.CompletedBy = entry.CompletedBy
	r.Notes = entry.Notes
	r.Metadata.FromModel(entry.Metadata)
}

type GetCleaningLogsResponse struct {
	Logs      []CleaningLogResponse `json:"logs"`
	TotalPage int                   `json:"total_page"`
	TotalData int                   `json:"total_data"`
}

func (r *GetCleaningLogsResponse) FromModels(models []model.CleaningLog, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Logs = make([]CleaningLogResponse, len(models))
	for i, mod := range models {
		r.Logs[i].FromModel(mod)
	}
}

// QueueItem is one open episode in the cleaning queue, with read-side
// progress and overdue evaluation.
type QueueItem struct {
	CleaningLogResponse
	Progress float64 `json:"progress"`
	Overdue  bool    `json:"overdue"`
}

type GetCleaningQueueResponse struct {
	Queue     []QueueItem `json:"queue"`
	TotalData int         `json:"total_data"`
}

func (r *GetCleaningQueueResponse) FromModels(models []model.CleaningLog) {
	r.TotalData = len(models)

	r.Queue = make([]QueueItem, len(models))
	for i, mod := range models {
		r.Queue[i].FromModel(mod)
		r.Queue[i].Progress = mod.Progress()
		r.Queue[i].Overdue = mod.EffectiveStatus() == model.StatusOverdue
	}
}
