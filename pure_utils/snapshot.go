package pure_utils

import (
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// SnapshotJSON renders the given columns of a row as a flat JSON document,
// one key per column. Missing values are serialized as null so that two
// snapshots of the same mapping always carry the same keys.
func SnapshotJSON(columns []string, values map[string]any) (string, error) {
	doc := "{}"
	for _, col := range columns {
		var err error
		doc, err = sjson.Set(doc, col, values[col])
		if err != nil {
			return "", errors.Wrapf(err, "could not snapshot column %q", col)
		}
	}
	return doc, nil
}

// ChangedFields compares two row snapshots produced by SnapshotJSON and
// returns the sorted list of keys whose value differs.
func ChangedFields(oldSnapshot, newSnapshot string) []string {
	keys := make(map[string]struct{})
	gjson.Parse(oldSnapshot).ForEach(func(key, _ gjson.Result) bool {
		keys[key.String()] = struct{}{}
		return true
	})
	gjson.Parse(newSnapshot).ForEach(func(key, _ gjson.Result) bool {
		keys[key.String()] = struct{}{}
		return true
	})

	changed := make([]string, 0, len(keys))
	for key := range keys {
		if gjson.Get(oldSnapshot, key).Raw != gjson.Get(newSnapshot, key).Raw {
			changed = append(changed, key)
		}
	}
	sort.Strings(changed)
	return changed
}
