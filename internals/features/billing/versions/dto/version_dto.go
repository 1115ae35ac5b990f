package dto

import (
	"time"

	"github.com/google/uuid"

	model "fbofuel_backend/internals/features/billing/versions/model"
	service "fbofuel_backend/internals/features/billing/versions/service"
)

////////////////////////////////////////////////////////////////////////////////
// FEE SCHEDULE VERSIONS — DTO
////////////////////////////////////////////////////////////////////////////////

type FeeScheduleVersionCreateDTO struct {
	FeeScheduleVersionName        string  `json:"fee_schedule_version_name" validate:"required,max=120"`
	FeeScheduleVersionDescription *string `json:"fee_schedule_version_description,omitempty" validate:"omitempty,max=1000"`
}

// Listing omits the configuration payload; it can run to megabytes.
type FeeScheduleVersionListItemDTO struct {
	FeeScheduleVersionID              uuid.UUID `json:"fee_schedule_version_id"`
	FeeScheduleVersionFBOLocationID   uuid.UUID `json:"fee_schedule_version_fbo_location_id"`
	FeeScheduleVersionName            string    `json:"fee_schedule_version_name"`
	FeeScheduleVersionDescription     *string   `json:"fee_schedule_version_description,omitempty"`
	FeeScheduleVersionCreatedByUserID uuid.UUID `json:"fee_schedule_version_created_by_user_id"`
	FeeScheduleVersionCreatedAt       time.Time `json:"fee_schedule_version_created_at"`
}

type RestoreResultDTO struct {
	Restored bool           `json:"restored"`
	Created  map[string]int `json:"created"`
	Updated  map[string]int `json:"updated"`
	Deleted  map[string]int `json:"deleted"`
}

func ToVersionListItem(m model.FeeScheduleVersion) FeeScheduleVersionListItemDTO {
	return FeeScheduleVersionListItemDTO{
		FeeScheduleVersionID:              m.FeeScheduleVersionID,
		FeeScheduleVersionFBOLocationID:   m.FeeScheduleVersionFBOLocationID,
		FeeScheduleVersionName:            m.FeeScheduleVersionName,
		FeeScheduleVersionDescription:     m.FeeScheduleVersionDescription,
		FeeScheduleVersionCreatedByUserID: m.FeeScheduleVersionCreatedByUserID,
		FeeScheduleVersionCreatedAt:       m.FeeScheduleVersionCreatedAt,
	}
}

func ToRestoreResult(diff service.ConfigDiff) RestoreResultDTO {
	out := RestoreResultDTO{
		Restored: !diff.IsEmpty(),
		Created:  map[string]int{},
		Updated:  map[string]int{},
		Deleted:  map[string]int{},
	}
	for name, cs := range diff {
		if n := len(cs.Create); n > 0 {
			out.Created[name] = n
		}
		if n := len(cs.Update); n > 0 {
			out.Updated[name] = n
		}
		if n := len(cs.Delete); n > 0 {
			out.Deleted[name] = n
		}
	}
	return out
}
