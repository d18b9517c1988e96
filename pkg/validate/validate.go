// Package validate provides struct-tag validation.
//
// Supported rules (comma-separated in the `validate` tag):
//
//	required            field must not be zero/empty
//	nullable            if empty, skip all remaining rules for this field
//	email               valid email address
//	url                 valid URL (http/https)
//	numeric             any number
//	integer             whole number
//	min=N               string: min char length | number: min value
//	max=N               string: max char length | number: max value
//	gte=N               number >= N
//	lte=N               number <= N
//	in=a,b,c            value must be one of the listed items
//
// Example:
//
//	type SignupInput struct {
//	    Name  string `json:"name"  validate:"required"`
//	    Email string `json:"email" validate:"required,email"`
//	}
package validate

import (
	"fmt"
	"net/mail"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Struct validates v (a struct or pointer to struct) against its `validate`
// tags. Returns a map of field name → first failing rule message.
// A nil/empty map means the value is valid.
func Struct(v interface{}) map[string]string {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	errs := map[string]string{}
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		tag := field.Tag.Get("validate")
		if tag == "" || tag == "-" {
			continue
		}

		name := fieldName(field)
		value := rv.Field(i)

		for _, rule := range strings.Split(tag, ",") {
			rule = strings.TrimSpace(rule)
			if rule == "" {
				continue
			}
			if rule == "nullable" {
				if isZero(value) {
					break
				}
				continue
			}
			if msg := applyRule(rule, name, value); msg != "" {
				errs[name] = msg
				break
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// HasErrors reports whether the error map contains any failures.
func HasErrors(errs map[string]string) bool {
	return len(errs) > 0
}

func fieldName(field reflect.StructField) string {
	if tag := field.Tag.Get("json"); tag != "" && tag != "-" {
		if idx := strings.IndexByte(tag, ','); idx >= 0 {
			tag = tag[:idx]
		}
		if tag != "" {
			return tag
		}
	}
	return field.Name
}

func applyRule(rule, field string, v reflect.Value) string {
	name, arg, _ := strings.Cut(rule, "=")

	switch name {
	case "required":
		if isZero(v) {
			return fmt.Sprintf("The %s field is required", field)
		}
	case "email":
		if _, err := mail.ParseAddress(asString(v)); err != nil {
			return fmt.Sprintf("The %s field must be a valid email address", field)
		}
	case "url":
		u, err := url.Parse(asString(v))
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Sprintf("The %s field must be a valid URL", field)
		}
	case "numeric":
		if _, ok := asFloat(v); !ok {
			return fmt.Sprintf("The %s field must be a number", field)
		}
	case "integer":
		f, ok := asFloat(v)
		if !ok || f != float64(int64(f)) {
			return fmt.Sprintf("The %s field must be an integer", field)
		}
	case "min":
		if !compare(v, arg, func(have, want float64) bool { return have >= want }) {
			return fmt.Sprintf("The %s field must be at least %s", field, arg)
		}
	case "max":
		if !compare(v, arg, func(have, want float64) bool { return have <= want }) {
			return fmt.Sprintf("The %s field must be at most %s", field, arg)
		}
	case "gte":
		if !compareNum(v, arg, func(have, want float64) bool { return have >= want }) {
			return fmt.Sprintf("The %s field must be greater than or equal to %s", field, arg)
		}
	case "lte":
		if !compareNum(v, arg, func(have, want float64) bool { return have <= want }) {
			return fmt.Sprintf("The %s field must be less than or equal to %s", field, arg)
		}
	case "in":
		allowed := strings.Split(arg, ",")
		have := asString(v)
		for _, item := range allowed {
			if have == item {
				return ""
			}
		}
		return fmt.Sprintf("The %s field must be one of: %s", field, arg)
	}

	return ""
}

// compare treats strings by length and numbers by value.
func compare(v reflect.Value, arg string, cmp func(have, want float64) bool) bool {
	want, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return false
	}

	if v.Kind() == reflect.String {
		return cmp(float64(len(v.String())), want)
	}
	return compareNum(v, arg, cmp)
}

func compareNum(v reflect.Value, arg string, cmp func(have, want float64) bool) bool {
	want, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return false
	}
	have, ok := asFloat(v)
	if !ok {
		return false
	}
	return cmp(have, want)
}

func asString(v reflect.Value) string {
	if v.Kind() == reflect.String {
		return v.String()
	}
	return fmt.Sprintf("%v", v.Interface())
}

func asFloat(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	case reflect.String:
		f, err := strconv.ParseFloat(v.String(), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}
