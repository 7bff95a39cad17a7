package dto

import (
	"time"

	"bedboard/internal/domains/alert/model"
	gDto "bedboard/shared/dto"
)

type AlertResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Severity    string    `json:"severity"`
	Message     string    `json:"message"`
	Ward        *string   `json:"ward,omitempty"`
	RelatedBed  *string   `json:"related_bed,omitempty"`
	TargetRoles []string  `json:"target_roles"`
	RaisedAt    time.Time `json:"raised_at"`
	gDto.Metadata
}

func (r *AlertResponse) FromModel(alert model.Alert) {
	r.ID = alert.ID
	r.Type = alert.Type
	r.Severity = alert.Severity
	r.Message = alert.Message
	r.Ward = alert.Ward
	r.RelatedBed = alert.RelatedBed
	r.TargetRoles = alert.TargetRoles
	r.RaisedAt = alert.RaisedAt
	r.Metadata.FromModel(alert.Metadata)
}

type GetAlertsResponse struct {
	Alerts    []AlertResponse `json:"alerts"`
	TotalData int             `json:"total_data"`
}

func (r *GetAlertsResponse) FromModels(models []model.Alert) {
	r.TotalData = len(models)

	r.Alerts = make([]AlertResponse, len(models))
	for i, mod := range models {
		r.Alerts[i].FromModel(mod)
	}
}

// CheckResult reports what a ward occupancy check observed and whether it
// raised a new alert.
type CheckResult struct {
	Ward          string  `json:"ward"`
	TotalBeds     int     `json:"total_beds"`
	OccupiedBeds  int     `json:"occupied_beds"`
	OccupancyRate float64 `json:"occupancy_rate"`
	AlertRaised   bool    `json:"alert_raised"`
	Severity      string  `json:"severity,omitempty"`
}
