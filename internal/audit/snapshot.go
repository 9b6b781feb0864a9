package audit

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm/schema"
)

// Columns ignored when computing changed fields.
var ignoredChanges = map[string]bool{
	"updated_at": true,
}

var stringArrayType = reflect.TypeOf(pq.StringArray{})

// normalizeRow converts a row scanned into a map by gorm into values that
// serialize the same way as the stored column: jsonb columns become raw
// JSON, text[] columns become string slices, timestamps are UTC.
func normalizeRow(sch *schema.Schema, row map[string]any) map[string]any {
	out := make(map[string]any, len(row))
	for col, v := range row {
		var field *schema.Field
		if sch != nil {
			field = sch.LookUpField(col)
		}
		out[col] = normalizeStored(field, v)
	}
	return out
}

func normalizeStored(field *schema.Field, v any) any {
	if text, ok := asText(v); ok && field != nil {
		switch {
		case field.FieldType == stringArrayType:
			var arr pq.StringArray
			if err := arr.Scan(text); err == nil {
				return []string(arr)
			}
		case isJSONField(field):
			if json.Valid([]byte(text)) {
				return json.RawMessage(text)
			}
		}
	}
	return normalizeValue(v)
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case time.Time:
		return t.UTC().Truncate(time.Microsecond)
	case []byte:
		return string(t)
	case pq.StringArray:
		return []string(t)
	case json.RawMessage:
		return t
	case driver.Valuer:
		val, err := t.Value()
		if err != nil {
			return fmt.Sprint(v)
		}
		if text, ok := asText(val); ok && json.Valid([]byte(text)) {
			return json.RawMessage(text)
		}
		return normalizeValue(val)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		return normalizeValue(rv.Elem().Interface())
	}
	return v
}

func asText(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case []byte:
		return string(t), true
	}
	return "", false
}

func isJSONField(f *schema.Field) bool {
	if strings.Contains(strings.ToLower(string(f.DataType)), "json") {
		return true
	}
	return strings.Contains(strings.ToLower(f.TagSettings["TYPE"]), "json")
}

// ChangedFields lists, sorted, the columns whose values differ between
// two snapshots.
func ChangedFields(oldRow, newRow map[string]any) []string {
	keys := make(map[string]struct{}, len(oldRow)+len(newRow))
	for k := range oldRow {
		keys[k] = struct{}{}
	}
	for k := range newRow {
		keys[k] = struct{}{}
	}

	var changed []string
	for k := range keys {
		if ignoredChanges[k] {
			continue
		}
		if canonical(oldRow[k]) != canonical(newRow[k]) {
			changed = append(changed, k)
		}
	}
	sort.Strings(changed)
	return changed
}

// canonical renders v as JSON with object keys sorted, so jsonb values
// compare equal regardless of key order and spacing.
func canonical(v any) string {
	b, err := json.Marshal(normalizeValue(v))
	if err != nil {
		return fmt.Sprint(v)
	}
	var generic any
	if err := json.Unmarshal(b, &generic); err != nil {
		return string(b)
	}
	b, err = json.Marshal(generic)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
