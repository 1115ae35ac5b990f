package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	model "fbofuel_backend/internals/features/billing/versions/model"
)

// SnapshotService builds fee-configuration snapshots and restores them via
// diff-and-apply, so unchanged rows keep their timestamps and foreign keys.
type SnapshotService struct {
	DB *gorm.DB
}

func NewSnapshotService(db *gorm.DB) *SnapshotService {
	return &SnapshotService{DB: db}
}

// fboScopeColumn maps a snapshot collection to the column that scopes it to
// one FBO. Overrides are scoped through their fee rule.
var fboScopeColumn = map[string]string{
	"classifications":       "aircraft_classification_fbo_location_id",
	"aircraft_types":        "aircraft_type_fbo_location_id",
	"aircraft_type_configs": "fbo_aircraft_type_config_fbo_location_id",
	"fee_rules":             "fee_rule_fbo_location_id",
	"waiver_tiers":          "waiver_tier_fbo_location_id",
}

// BuildConfigurationSnapshot reads the live fee configuration for one FBO
// into a ConfigurationData payload. Rows are canonicalized through a JSON
// round-trip so diffing always sees plain JSON types.
func (s *SnapshotService) BuildConfigurationSnapshot(ctx context.Context, fboLocationID uuid.UUID) (ConfigurationData, error) {
	data := make(ConfigurationData, len(collectionOrder))

	for _, desc := range collectionOrder {
		var rows []map[string]any
		q := s.DB.WithContext(ctx).Table(desc.Table)

		if scope, ok := fboScopeColumn[desc.Key]; ok {
			q = q.Where(scope+" = ?", fboLocationID)
		} else {
			// overrides: scope through the owning fee rule
			q = q.Where(
				"fee_rule_override_fee_rule_id IN (SELECT fee_rule_id FROM fee_rules WHERE fee_rule_fbo_location_id = ? AND fee_rule_deleted_at IS NULL)",
				fboLocationID,
			)
		}
		q = q.Where(desc.Table + "." + deletedAtColumn(desc.PKColumn) + " IS NULL")

		if err := q.Find(&rows).Error; err != nil {
			return nil, err
		}
		data[desc.Key] = canonicalizeRows(rows)
	}

	return data, nil
}

func deletedAtColumn(pkColumn string) string {
	// pk columns are "<prefix>_id"; deleted-at follows "<prefix>_deleted_at"
	return pkColumn[:len(pkColumn)-len("_id")] + "_deleted_at"
}

// canonicalizeRows normalizes driver types (time.Time, []byte, pq arrays)
// into JSON types via a marshal/unmarshal round-trip.
func canonicalizeRows(rows []map[string]any) []map[string]any {
	if rows == nil {
		return []map[string]any{}
	}
	for _, row := range rows {
		for k, v := range row {
			switch t := v.(type) {
			case time.Time:
				row[k] = t.UTC().Format(time.RFC3339Nano)
			case []byte:
				row[k] = string(t)
			}
		}
	}
	raw, err := json.Marshal(rows)
	if err != nil {
		return rows
	}
	var out []map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return rows
	}
	return out
}

// CreateVersion snapshots the current configuration as a named restore point.
func (s *SnapshotService) CreateVersion(ctx context.Context, fboLocationID uuid.UUID, name string, description *string, userID uuid.UUID) (*model.FeeScheduleVersion, error) {
	data, err := s.BuildConfigurationSnapshot(ctx, fboLocationID)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	version := model.FeeScheduleVersion{
		FeeScheduleVersionFBOLocationID:     fboLocationID,
		FeeScheduleVersionName:              name,
		FeeScheduleVersionDescription:       description,
		FeeScheduleVersionConfigurationData: datatypes.JSON(raw),
		FeeScheduleVersionCreatedByUserID:   userID,
	}
	if err := s.DB.WithContext(ctx).Create(&version).Error; err != nil {
		return nil, err
	}
	return &version, nil
}

// RestoreFromVersion reverts the live configuration to a stored version by
// diffing and applying only the changes, inside one transaction: creates
// parents-first, deletes children-first, full rollback on any failure.
//
// Readers under read-committed may observe pre- or post-restore state while
// this runs, but never a partially applied row mix.
func (s *SnapshotService) RestoreFromVersion(ctx context.Context, fboLocationID, versionID uuid.UUID) (ConfigDiff, error) {
	var version model.FeeScheduleVersion
	if err := s.DB.WithContext(ctx).
		First(&version, "fee_schedule_version_id = ? AND fee_schedule_version_fbo_location_id = ?",
			versionID, fboLocationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "fee schedule version not found")
		}
		return nil, err
	}

	var backup ConfigurationData
	if err := json.Unmarshal(version.FeeScheduleVersionConfigurationData, &backup); err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "stored configuration snapshot is unreadable")
	}

	current, err := s.BuildConfigurationSnapshot(ctx, fboLocationID)
	if err != nil {
		return nil, err
	}

	diff := DiffConfigurations(current, backup)
	if diff.IsEmpty() {
		return diff, nil
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// deletes: children before parents
		for i := len(collectionOrder) - 1; i >= 0; i-- {
			desc := collectionOrder[i]
			for _, id := range diff[desc.Key].Delete {
				if err := tx.Exec(
					"DELETE FROM "+desc.Table+" WHERE "+desc.PKColumn+" = ?", id,
				).Error; err != nil {
					return err
				}
			}
		}
		// creates: parents before children
		for _, desc := range collectionOrder {
			for _, rec := range diff[desc.Key].Create {
				if err := tx.Table(desc.Table).Create(map[string]any(rec)).Error; err != nil {
					return err
				}
			}
		}
		// updates
		for _, desc := range collectionOrder {
			for _, rec := range diff[desc.Key].Update {
				updates := make(map[string]any, len(rec))
				for k, v := range rec {
					if k == desc.PKColumn {
						continue
					}
					updates[k] = v
				}
				if len(updates) == 0 {
					continue
				}
				if err := tx.Table(desc.Table).
					Where(desc.PKColumn+" = ?", rec[desc.PKColumn]).
					Updates(updates).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return diff, nil
}

// ListVersions returns the restore points for an FBO, newest first.
func (s *SnapshotService) ListVersions(ctx context.Context, fboLocationID uuid.UUID, offset, limit int) ([]model.FeeScheduleVersion, int64, error) {
	var total int64
	q := s.DB.WithContext(ctx).Model(&model.FeeScheduleVersion{}).
		Where("fee_schedule_version_fbo_location_id = ?", fboLocationID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var versions []model.FeeScheduleVersion
	if err := q.Order("fee_schedule_version_created_at DESC").
		Offset(offset).Limit(limit).
		Find(&versions).Error; err != nil {
		return nil, 0, err
	}
	return versions, total, nil
}
