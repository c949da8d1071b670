package query

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"parttimejobs/internal/apperr"
)

// Apply filters, orders and pages the slice according to opts. Field names
// are matched case-insensitively against the json tags of T; referencing a
// field T does not have is a validation error.
func Apply[T any](items []T, opts *Options) ([]T, error) {
	if opts == nil {
		return items, nil
	}

	out := items

	if opts.Filter != nil {
		idx, err := fieldIndex[T](opts.Filter.Field)
		if err != nil {
			return nil, err
		}
		filtered := make([]T, 0, len(out))
		for _, item := range out {
			match, err := matches(reflect.ValueOf(item).Field(idx), opts.Filter)
			if err != nil {
				return nil, err
			}
			if match {
				filtered = append(filtered, item)
			}
		}
		out = filtered
	}

	if opts.OrderBy != nil {
		idx, err := fieldIndex[T](opts.OrderBy.Field)
		if err != nil {
			return nil, err
		}
		desc := opts.OrderBy.Desc
		sortSlice(out, func(a, b T) bool {
			av := reflect.ValueOf(a).Field(idx)
			bv := reflect.ValueOf(b).Field(idx)
			less := lessValue(av, bv)
			if desc {
				return lessValue(bv, av)
			}
			return less
		})
	}

	return Page(out, opts), nil
}

// fieldIndex resolves a query field name to a struct field index on T,
// matching the json tag first and the Go name as a fallback.
func fieldIndex[T any](name string) (int, error) {
	t := reflect.TypeOf(*new(T))
	if t.Kind() != reflect.Struct {
		return 0, apperr.Internal("query options require a struct element type", nil)
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := strings.Split(f.Tag.Get("json"), ",")[0]
		if strings.EqualFold(tag, name) || strings.EqualFold(f.Name, name) {
			return i, nil
		}
	}
	return 0, apperr.Validation(fmt.Sprintf("unknown field: %q", name))
}

// matches evaluates a single filter term against one field value. Nil
// pointer fields never match comparison operators; they match "ne" only.
func matches(v reflect.Value, f *Filter) (bool, error) {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return f.Op == OpNe, nil
		}
		v = v.Elem()
	}

	if f.Op == OpContains {
		if v.Kind() != reflect.String {
			return false, apperr.Validation(fmt.Sprintf("contains requires a string field, got %s", v.Kind()))
		}
		return strings.Contains(strings.ToLower(v.String()), strings.ToLower(f.Value)), nil
	}

	cmp, err := compare(v, f.Value)
	if err != nil {
		return false, err
	}
	switch f.Op {
	case OpEq:
		return cmp == 0, nil
	case OpNe:
		return cmp != 0, nil
	case OpGt:
		return cmp > 0, nil
	case OpGe:
		return cmp >= 0, nil
	case OpLt:
		return cmp < 0, nil
	case OpLe:
		return cmp <= 0, nil
	}
	return false, apperr.Validation(fmt.Sprintf("unsupported filter operator: %q", f.Op))
}

// compare returns -1, 0 or 1 for the field value against the literal.
func compare(v reflect.Value, raw string) (int, error) {
	if t, ok := v.Interface().(time.Time); ok {
		lit, err := parseTimeLiteral(raw)
		if err != nil {
			return 0, err
		}
		switch {
		case t.Before(lit):
			return -1, nil
		case t.After(lit):
			return 1, nil
		}
		return 0, nil
	}

	switch v.Kind() {
	case reflect.String:
		return strings.Compare(v.String(), raw), nil
	case reflect.Bool:
		lit, err := strconv.ParseBool(raw)
		if err != nil {
			return 0, apperr.Validation(fmt.Sprintf("invalid boolean literal: %q", raw))
		}
		if v.Bool() == lit {
			return 0, nil
		}
		return 1, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		lit, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, apperr.Validation(fmt.Sprintf("invalid numeric literal: %q", raw))
		}
		return compareFloat(float64(v.Int()), lit), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		lit, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, apperr.Validation(fmt.Sprintf("invalid numeric literal: %q", raw))
		}
		return compareFloat(float64(v.Uint()), lit), nil
	case reflect.Float32, reflect.Float64:
		lit, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, apperr.Validation(fmt.Sprintf("invalid numeric literal: %q", raw))
		}
		return compareFloat(v.Float(), lit), nil
	}
	return 0, apperr.Validation(fmt.Sprintf("field kind %s is not filterable", v.Kind()))
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func parseTimeLiteral(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperr.Validation(fmt.Sprintf("invalid date literal: %q", raw))
}

// lessValue orders two field values of the same type. Nil pointers sort
// first; unsupported kinds keep the existing order.
func lessValue(a, b reflect.Value) bool {
	if a.Kind() == reflect.Pointer {
		if a.IsNil() {
			return !b.IsNil()
		}
		if b.IsNil() {
			return false
		}
		a, b = a.Elem(), b.Elem()
	}

	if at, ok := a.Interface().(time.Time); ok {
		return at.Before(b.Interface().(time.Time))
	}

	switch a.Kind() {
	case reflect.String:
		return a.String() < b.String()
	case reflect.Bool:
		return !a.Bool() && b.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() < b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return a.Uint() < b.Uint()
	case reflect.Float32, reflect.Float64:
		return a.Float() < b.Float()
	}
	return false
}
