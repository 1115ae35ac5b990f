package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ConfigurationData is the snapshot payload: entity-collection key → list of
// flat field maps (raw column names, JSON-typed values). Missing collections
// read as empty lists, never as errors.
type ConfigurationData map[string][]map[string]any

// Changeset is the per-collection outcome of a diff.
type Changeset struct {
	Create []map[string]any `json:"create"`
	Update []map[string]any `json:"update"`
	Delete []any            `json:"delete"`
}

// ConfigDiff maps collection key → changeset.
type ConfigDiff map[string]Changeset

// collectionDescriptor wires a snapshot key to its table and primary-key
// column. Order matters for restore: parents precede children.
type collectionDescriptor struct {
	Key      string
	Table    string
	PKColumn string
}

// restore creates in this order and deletes in reverse, so foreign keys
// always see their parents.
var collectionOrder = []collectionDescriptor{
	{Key: "classifications", Table: "aircraft_classifications", PKColumn: "aircraft_classification_id"},
	{Key: "aircraft_types", Table: "aircraft_types", PKColumn: "aircraft_type_id"},
	{Key: "aircraft_type_configs", Table: "fbo_aircraft_type_configs", PKColumn: "fbo_aircraft_type_config_id"},
	{Key: "fee_rules", Table: "fee_rules", PKColumn: "fee_rule_id"},
	{Key: "overrides", Table: "fee_rule_overrides", PKColumn: "fee_rule_override_id"},
	{Key: "waiver_tiers", Table: "waiver_tiers", PKColumn: "waiver_tier_id"},
}

// numericTolerance soaks up serialization round-trip noise in float-sourced
// fields so a save/restore cycle does not produce phantom updates.
const numericTolerance = 1e-6

// DiffConfigurations computes the create/update/delete changesets that turn
// `current` into `backup`, per entity collection independently.
//
// Comparison rules: created_at/updated_at/deleted_at fields are ignored;
// numbers compare within numericTolerance; lists compare by content
// regardless of element order; nil and zero are distinct states.
func DiffConfigurations(current, backup ConfigurationData) ConfigDiff {
	diff := make(ConfigDiff, len(collectionOrder))

	for _, desc := range collectionOrder {
		currentByID := indexByID(current[desc.Key], desc.PKColumn)
		backupByID := indexByID(backup[desc.Key], desc.PKColumn)

		cs := Changeset{}
		for _, rec := range backup[desc.Key] {
			id := recordID(rec, desc.PKColumn)
			if id == "" {
				continue
			}
			cur, exists := currentByID[id]
			if !exists {
				cs.Create = append(cs.Create, stripTimestamps(rec))
				continue
			}
			if !recordsEqual(cur, rec) {
				cs.Update = append(cs.Update, stripTimestamps(rec))
			}
		}
		for _, rec := range current[desc.Key] {
			id := recordID(rec, desc.PKColumn)
			if id == "" {
				continue
			}
			if _, exists := backupByID[id]; !exists {
				cs.Delete = append(cs.Delete, rec[desc.PKColumn])
			}
		}
		diff[desc.Key] = cs
	}

	return diff
}

// IsEmpty reports whether the diff contains no changes at all.
func (d ConfigDiff) IsEmpty() bool {
	for _, cs := range d {
		if len(cs.Create) > 0 || len(cs.Update) > 0 || len(cs.Delete) > 0 {
			return false
		}
	}
	return true
}

func indexByID(records []map[string]any, pk string) map[string]map[string]any {
	out := make(map[string]map[string]any, len(records))
	for _, rec := range records {
		if id := recordID(rec, pk); id != "" {
			out[id] = rec
		}
	}
	return out
}

func recordID(rec map[string]any, pk string) string {
	v, ok := rec[pk]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func isTimestampField(name string) bool {
	return strings.HasSuffix(name, "created_at") ||
		strings.HasSuffix(name, "updated_at") ||
		strings.HasSuffix(name, "deleted_at")
}

func stripTimestamps(rec map[string]any) map[string]any {
	out := make(map[string]any, len(rec))
	for k, v := range rec {
		if isTimestampField(k) {
			continue
		}
		out[k] = v
	}
	return out
}

func recordsEqual(a, b map[string]any) bool {
	keys := make(map[string]bool, len(a)+len(b))
	for k := range a {
		keys[k] = true
	}
	for k := range b {
		keys[k] = true
	}
	for k := range keys {
		if isTimestampField(k) {
			continue
		}
		if !valuesEqual(a[k], b[k]) {
			return false
		}
	}
	return true
}

// valuesEqual compares two JSON-typed values. Numeric values (including
// numeric strings, which is how postgres returns numeric columns through a
// raw map scan) compare within tolerance; nil never equals a number.
func valuesEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if fa, aOK := asFloat(a); aOK {
		if fb, bOK := asFloat(b); bOK {
			return math.Abs(fa-fb) < numericTolerance
		}
		return false
	}

	switch av := a.(type) {
	case []any:
		bv, ok := b.([]any)
		if !ok {
			return false
		}
		return listsEqualUnordered(av, bv)
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok {
			return false
		}
		return recordsEqual(av, bv)
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	}

	return fmt.Sprint(a) == fmt.Sprint(b)
}

// listsEqualUnordered treats lists as multisets: same elements, any order.
func listsEqualUnordered(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, av := range a {
		found := false
		for i, bv := range b {
			if used[i] {
				continue
			}
			if valuesEqual(av, bv) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// asFloat coerces JSON numbers and numeric strings; booleans and UUID-ish
// strings fail the parse and fall through to exact comparison.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}
