package utils

import (
	"reflect"
)

// ColumnList returns the "db" tags of T's fields, in declaration order.
// Embedded structs are flattened, untagged fields are skipped.
func ColumnList[T any]() []string {
	var model T
	return columnsOfType(reflect.TypeOf(model))
}

func columnsOfType(t reflect.Type) []string {
	columns := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, columnsOfType(field.Type)...)
			continue
		}
		tag, ok := field.Tag.Lookup("db")
		if !ok || tag == "-" {
			continue
		}
		columns = append(columns, tag)
	}
	return columns
}
