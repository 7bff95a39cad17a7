package dto

import (
	"time"

	"bedboard/internal/domains/bed/model"
	cleaningDto "bedboard/internal/domains/cleaninglog/model/dto"
	"bedboard/shared"
	gDto "bedboard/shared/dto"
	gModel "bedboard/shared/model"
	"bedboard/shared/timezone"

	"github.com/google/uuid"
)

type CreateBedRequest struct {
	BedCode string  `json:"bed_code"        validate:"required,bedcode,max=32"`
	Ward    string  `json:"ward"            validate:"required,oneof=ICU General Emergency"`
	Status  string  `json:"status"          validate:"omitempty,oneof=available cleaning occupied"`
	Notes   *string `json:"notes,omitempty"`
}

func (r *CreateBedRequest) ToModel(username string) model.Bed {
	status := r.Status
	if status == "" {
		status = model.StatusAvailable
	}

	return model.Bed{
		ID:      uuid.NewString(),
		BedCode: r.BedCode,
		Ward:    r.Ward,
		Status:  status,
		Notes:   r.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

// TransitionRequest carries a requested status change for a bed. Patient
// fields are required only when requesting occupied, the cleaning duration
// only applies when requesting cleaning.
type TransitionRequest struct {
	Status                  string  `json:"status"                             validate:"required"`
	PatientName             *string `json:"patient_name,omitempty"`
	PatientID               *string `json:"patient_id,omitempty"`
	CleaningDurationMinutes *int    `json:"cleaning_duration_minutes,omitempty"`
	Notes                   *string `json:"notes,omitempty"`
}

type CompleteCleaningRequest struct {
	Notes *string `json:"notes,omitempty"`
}

type UpdateDischargeRequest struct {
	EstimatedDischargeTime time.Time `json:"estimated_discharge_time" validate:"required"`
	DischargeNotes         *string   `json:"discharge_notes,omitempty"`
}

type BedResponse struct {
	ID                        string     `json:"id"`
	BedCode                   string     `json:"bed_code"`
	Ward                      string     `json:"ward"`
	Status                    string     `json:"status"`
	PatientName               *string    `json:"patient_name,omitempty"`
	PatientID                 *string    `json:"patient_id,omitempty"`
	EstimatedDischargeTime    *time.Time `json:"estimated_discharge_time,omitempty"`
	DischargeNotes            *string    `json:"discharge_notes,omitempty"`
	CleaningStartTime         *time.Time `json:"cleaning_start_time,omitempty"`
	EstimatedCleaningDuration *int       `json:"estimated_cleaning_duration,omitempty"`
	EstimatedCleaningEndTime  *time.Time `json:"estimated_cleaning_end_time,omitempty"`
	Notes                     *string    `json:"notes,omitempty"`
	Version                   int        `json:"version"`
	gDto.Metadata
}

func (r *BedResponse) FromModel(bed model.Bed) {
	r.ID = bed.ID
	r.BedCode = bed.BedCode
	r.Ward = bed.Ward
	r.Status = bed.Status
	r.PatientName = bed.PatientName
	r.PatientID = bed.PatientID
	r.EstimatedDischargeTime = bed.EstimatedDischargeTime
	r.DischargeNotes = bed.DischargeNotes
	r.CleaningStartTime = bed.CleaningStartTime
	r.EstimatedCleaningDuration = bed.EstimatedCleaningDuration
	r.EstimatedCleaningEndTime = bed.EstimatedCleaningEndTime
	r.Notes = bed.Notes
	r.Version = bed.Version
	r.Metadata.FromModel(bed.Metadata)
}

type TransitionResponse struct {
	Bed            BedResponse `json:"bed"`
	PreviousStatus string      `json:"previous_status"`
}

type CompleteCleaningResponse struct {
	Bed         BedResponse                     `json:"bed"`
	CleaningLog cleaningDto.CleaningLogResponse `json:"cleaning_log"`
}

type GetBedsResponse struct {
	Beds      []BedResponse `json:"beds"`
	TotalPage int           `json:"total_page"`
	TotalData int           `json:"total_data"`
}

func (r *GetBedsResponse) FromModels(models []model.Bed, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Beds = make([]BedResponse, len(models))
	for i, mod := range models {
		r.Beds[i].FromModel(mod)
	}
}

// OccupiedBedResponse enriches a bed with the time the current patient has
// spent in it, measured from the assignment ledger entry.
type OccupiedBedResponse struct {
	BedResponse
	TimeInBedHours *float64 `json:"time_in_bed_hours,omitempty"`
}

type GetOccupiedBedsResponse struct {
	Beds        []OccupiedBedResponse `json:"beds"`
	WardSummary map[string]int        `json:"ward_summary"`
	TotalData   int                   `json:"total_data"`
}

type DischargePredictionResponse struct {
	Ward                string  `json:"ward"`
	HoursUntilDischarge float64 `json:"hours_until_discharge"`
	Source              string  `json:"source"`
}

type CleaningPredictionResponse struct {
	Ward            string `json:"ward"`
	DurationMinutes int    `json:"duration_minutes"`
	Source          string `json:"source"`
}
