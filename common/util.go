package common

import (
	"fmt"
	"reflect"
)

// Stringify renders a flat config struct field by field, one line per
// field, nested structs inline.
func Stringify(v interface{}) string {
	t, val := reflect.TypeOf(v), reflect.ValueOf(v)
	s := "\n" + t.Name()
	for i := 0; i < t.NumField(); i++ {
		switch val.Field(i).Kind() {
		case reflect.Struct, reflect.Interface:
			s += Stringify(val.Field(i).Interface())
		default:
			s += fmt.Sprintf("\n\t%s: %v", t.Field(i).Name, val.Field(i).Interface())
		}
	}
	return s
}

func IsIn(k string, arr []string) bool {
	for _, v := range arr {
		if v == k {
			return true
		}
	}
	return false
}
