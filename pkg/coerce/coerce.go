// Package coerce converts the string-typed values a token.Item carries into
// the concrete Go type a formal parameter (command argument or option
// field) declares, per the type-coercion rules: strings pass through,
// numeric/bool/date/enum types parse from their single literal, pointer
// types are nullable-of-U, and string-slice types accumulate every bound
// occurrence in order.
package coerce

import (
	"encoding"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/aiseeq/cmdsh/pkg/cmderr"
	"github.com/aiseeq/cmdsh/pkg/token"
)

var (
	timeType          = reflect.TypeOf(time.Time{})
	textUnmarshalerTy = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// Coerce converts item (nil if the formal parameter was never bound) to t.
// hasDefault/def describe an explicit default supplied at registration
// time; paramName is used only to build error messages.
//
// A parameter is required iff it has no explicit default, is not a
// pointer type (nullable-of-U) and is not a string slice (which always
// has an implicit empty-slice default).
func Coerce(item *token.Item, t reflect.Type, hasDefault bool, def any, paramName string) (reflect.Value, error) {
	if t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.String {
		return coerceStringSlice(item, t, hasDefault, def), nil
	}

	required := !hasDefault && t.Kind() != reflect.Ptr

	if item == nil {
		if required {
			return reflect.Value{}, cmderr.MissingRequiredArgument(paramName)
		}
		return defaultValue(t, hasDefault, def), nil
	}

	if t.Kind() == reflect.Ptr {
		s := item.String()
		if s == nil || *s == "" {
			return reflect.Zero(t), nil
		}
		elem, err := coerceScalar(*s, t.Elem(), paramName)
		if err != nil {
			return reflect.Value{}, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elem)
		return ptr, nil
	}

	s := item.String()
	literal := ""
	switch {
	case s != nil:
		literal = *s
	case t.Kind() == reflect.Bool:
		literal = "true" // a bare flag with no value sets a bool true
	}

	return coerceScalar(literal, t, paramName)
}

func coerceStringSlice(item *token.Item, t reflect.Type, hasDefault bool, def any) reflect.Value {
	if item == nil {
		return defaultValue(t, hasDefault, def)
	}
	arr := item.Array()
	out := reflect.MakeSlice(t, len(arr), len(arr))
	for i, v := range arr {
		out.Index(i).SetString(v)
	}
	return out
}

func defaultValue(t reflect.Type, hasDefault bool, def any) reflect.Value {
	if hasDefault && def != nil {
		dv := reflect.ValueOf(def)
		if dv.Type().ConvertibleTo(t) {
			return dv.Convert(t)
		}
	}
	return reflect.Zero(t)
}

func coerceScalar(literal string, t reflect.Type, paramName string) (reflect.Value, error) {
	switch t.Kind() {
	case reflect.String:
		return reflect.ValueOf(literal).Convert(t), nil

	case reflect.Bool:
		b, err := parseBool(literal)
		if err != nil {
			return reflect.Value{}, cmderr.InvalidArgumentValue(paramName, literal, err)
		}
		return reflect.ValueOf(b), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(literal, 10, 64)
		if err != nil {
			return reflect.Value{}, cmderr.InvalidArgumentValue(paramName, literal, err)
		}
		v := reflect.New(t).Elem()
		v.SetInt(n)
		return v, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(literal, 10, 64)
		if err != nil {
			return reflect.Value{}, cmderr.InvalidArgumentValue(paramName, literal, err)
		}
		v := reflect.New(t).Elem()
		v.SetUint(n)
		return v, nil

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return reflect.Value{}, cmderr.InvalidArgumentValue(paramName, literal, err)
		}
		v := reflect.New(t).Elem()
		v.SetFloat(f)
		return v, nil
	}

	if t == timeType {
		tm, err := time.Parse(time.RFC3339, literal)
		if err != nil {
			return reflect.Value{}, cmderr.InvalidArgumentValue(paramName, literal, err)
		}
		return reflect.ValueOf(tm), nil
	}

	// Named enum-like types parse through encoding.TextUnmarshaler, the
	// idiomatic Go equivalent of a case-insensitive enum-name lookup: the
	// handler author implements UnmarshalText once per enum type instead
	// of this package guessing at declared constant names via reflection.
	if reflect.PointerTo(t).Implements(textUnmarshalerTy) {
		ptr := reflect.New(t)
		if err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(literal)); err != nil {
			return reflect.Value{}, cmderr.InvalidArgumentValue(paramName, literal, err)
		}
		return ptr.Elem(), nil
	}

	return reflect.Value{}, cmderr.InvalidArgumentValue(paramName, literal, unsupportedTypeError{t})
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "yes", "1":
		return true, nil
	case "false", "no", "0":
		return false, nil
	}
	return false, strconv.ErrSyntax
}

type unsupportedTypeError struct{ t reflect.Type }

func (e unsupportedTypeError) Error() string {
	return "unsupported argument type " + e.t.String()
}
