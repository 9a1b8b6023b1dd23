package feeders

import (
	"fmt"
	"os"
	"reflect"

	"github.com/golobby/cast"
)

// EnvFeeder populates a struct's fields from environment variables named
// by each field's `env` struct tag. Nested structs are walked recursively.
type EnvFeeder struct{}

// NewEnvFeeder creates a new EnvFeeder that reads from environment variables.
func NewEnvFeeder() EnvFeeder {
	return EnvFeeder{}
}

func (EnvFeeder) Feed(structure interface{}) error {
	return feedStruct(structure, "env", os.LookupEnv)
}

// feedStruct walks structure looking for fields tagged with tagName and
// sets them from lookup, coercing the raw string with golobby/cast.
func feedStruct(structure interface{}, tagName string, lookup func(key string) (string, bool)) error {
	rv := reflect.ValueOf(structure)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return ErrFeedTargetNotPointer
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return ErrFeedTargetNotStruct
	}
	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		ft := rt.Field(i)
		if !field.CanSet() {
			continue
		}
		if field.Kind() == reflect.Struct {
			if err := feedStruct(field.Addr().Interface(), tagName, lookup); err != nil {
				return err
			}
			continue
		}
		key := ft.Tag.Get(tagName)
		if key == "" {
			continue
		}
		raw, ok := lookup(key)
		if !ok || raw == "" {
			continue
		}
		if err := assignString(field, raw); err != nil {
			return fmt.Errorf("%s %s: %w", tagName, key, err)
		}
	}
	return nil
}

// assignString coerces raw into field using golobby/cast, the loosely-typed
// conversion helper the teacher already depends on for feeder field
// assignment.
func assignString(field reflect.Value, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := cast.ToInt64(raw)
		if err != nil {
			return err
		}
		field.SetInt(v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := cast.ToUint64(raw)
		if err != nil {
			return err
		}
		field.SetUint(v)
	case reflect.Float32, reflect.Float64:
		v, err := cast.ToFloat64(raw)
		if err != nil {
			return err
		}
		field.SetFloat(v)
	case reflect.Bool:
		v, err := cast.ToBool(raw)
		if err != nil {
			return err
		}
		field.SetBool(v)
	default:
		return fmt.Errorf("unsupported field kind %s", field.Kind())
	}
	return nil
}
