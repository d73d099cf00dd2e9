// Package reflect_util backs the settings service, which walks the
// AllSetting struct to map json tags onto stored key/value rows.
package reflect_util

import "reflect"

// GetFields returns the struct fields of t in declaration order.
func GetFields(t reflect.Type) []reflect.StructField {
	num := t.NumField()
	fields := make([]reflect.StructField, 0, num)
	for i := 0; i < num; i++ {
		fields = append(fields, t.Field(i))
	}
	return fields
}
