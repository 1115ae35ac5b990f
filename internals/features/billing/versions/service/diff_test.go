package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func feeRuleRecord(id string, fields map[string]any) map[string]any {
	rec := map[string]any{
		"fee_rule_id":         id,
		"fee_rule_fee_code":   "RAMP",
		"fee_rule_amount":     "75.00",
		"fee_rule_created_at": "2024-03-15T10:00:00Z",
		"fee_rule_updated_at": "2024-03-15T10:00:00Z",
	}
	for k, v := range fields {
		rec[k] = v
	}
	return rec
}

// TestDiffIdenticalConfigurations checks a fresh snapshot diffs empty against
// itself, so restore can short-circuit.
func TestDiffIdenticalConfigurations(t *testing.T) {
	cfg := ConfigurationData{
		"fee_rules": {feeRuleRecord("a", nil)},
	}
	diff := DiffConfigurations(cfg, cfg)
	require.True(t, diff.IsEmpty())
}

// TestDiffIgnoresTimestamps checks created_at/updated_at churn never produces
// phantom updates.
func TestDiffIgnoresTimestamps(t *testing.T) {
	current := ConfigurationData{
		"fee_rules": {feeRuleRecord("a", map[string]any{"fee_rule_updated_at": "2024-03-16T09:00:00Z"})},
	}
	backup := ConfigurationData{
		"fee_rules": {feeRuleRecord("a", nil)},
	}
	require.True(t, DiffConfigurations(current, backup).IsEmpty())
}

// TestDiffDetectsUpdate checks a changed field lands in Update with the
// timestamp fields stripped from the payload.
func TestDiffDetectsUpdate(t *testing.T) {
	current := ConfigurationData{
		"fee_rules": {feeRuleRecord("a", map[string]any{"fee_rule_amount": "75.00"})},
	}
	backup := ConfigurationData{
		"fee_rules": {feeRuleRecord("a", map[string]any{"fee_rule_amount": "90.00"})},
	}

	diff := DiffConfigurations(current, backup)
	cs := diff["fee_rules"]
	require.Len(t, cs.Update, 1)
	require.Empty(t, cs.Create)
	require.Empty(t, cs.Delete)

	require.Equal(t, "90.00", cs.Update[0]["fee_rule_amount"])
	_, hasTimestamp := cs.Update[0]["fee_rule_created_at"]
	require.False(t, hasTimestamp)
}

// TestDiffDetectsCreateAndDelete checks rows only in the backup become
// creates and rows only in the current state become deletes.
func TestDiffDetectsCreateAndDelete(t *testing.T) {
	current := ConfigurationData{
		"fee_rules": {feeRuleRecord("current-only", nil)},
	}
	backup := ConfigurationData{
		"fee_rules": {feeRuleRecord("backup-only", nil)},
	}

	diff := DiffConfigurations(current, backup)
	cs := diff["fee_rules"]
	require.Len(t, cs.Create, 1)
	require.Equal(t, "backup-only", cs.Create[0]["fee_rule_id"])
	require.Len(t, cs.Delete, 1)
	require.Equal(t, "current-only", cs.Delete[0])
}

// TestDiffNumericTolerance checks numbers compare within tolerance across
// representations, including the numeric strings postgres hands back.
func TestDiffNumericTolerance(t *testing.T) {
	require.True(t, valuesEqual(75.0, "75.00"))
	require.True(t, valuesEqual("75.0000001", 75.0))
	require.False(t, valuesEqual("75.01", 75.0))
	require.False(t, valuesEqual("75", "seventy-five"))
}

// TestDiffNilVersusZero checks nil and zero stay distinct states: clearing an
// override amount is a real change.
func TestDiffNilVersusZero(t *testing.T) {
	require.False(t, valuesEqual(nil, 0.0))
	require.False(t, valuesEqual(0.0, nil))
	require.True(t, valuesEqual(nil, nil))

	current := ConfigurationData{
		"overrides": {{"fee_rule_override_id": "a", "fee_rule_override_amount": nil}},
	}
	backup := ConfigurationData{
		"overrides": {{"fee_rule_override_id": "a", "fee_rule_override_amount": "0"}},
	}
	require.False(t, DiffConfigurations(current, backup).IsEmpty())
}

// TestDiffUnorderedLists checks array-typed fields (waiver tier fee codes)
// compare as multisets.
func TestDiffUnorderedLists(t *testing.T) {
	current := ConfigurationData{
		"waiver_tiers": {{
			"waiver_tier_id":                "t",
			"waiver_tier_fees_waived_codes": []any{"RAMP", "HANGAR"},
		}},
	}
	backup := ConfigurationData{
		"waiver_tiers": {{
			"waiver_tier_id":                "t",
			"waiver_tier_fees_waived_codes": []any{"HANGAR", "RAMP"},
		}},
	}
	require.True(t, DiffConfigurations(current, backup).IsEmpty())

	backup["waiver_tiers"][0]["waiver_tier_fees_waived_codes"] = []any{"HANGAR"}
	require.False(t, DiffConfigurations(current, backup).IsEmpty())
}

// TestDiffMissingCollection checks a collection absent from one side reads as
// empty, not as an error.
func TestDiffMissingCollection(t *testing.T) {
	backup := ConfigurationData{
		"fee_rules": {feeRuleRecord("a", nil)},
	}
	diff := DiffConfigurations(ConfigurationData{}, backup)
	require.Len(t, diff["fee_rules"].Create, 1)

	diff = DiffConfigurations(backup, ConfigurationData{})
	require.Len(t, diff["fee_rules"].Delete, 1)
}
