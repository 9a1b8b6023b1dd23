package config

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

var (
	ErrConfigCannotBeNil   = errors.New("config: section target cannot be nil")
	ErrRequiredFieldNotSet = errors.New("config: required field is not set")
	ErrUnsupportedField    = errors.New("config: unsupported field type for default value")
)

// Loader feeds a set of registered Sections from its Feeders, then applies
// `default` struct tags to any field a feeder left at its zero value, then
// checks `required` struct tags. This mirrors the teacher's config loader
// shape (feeders -> defaults -> validation) trimmed to drop hot-reload and
// field-provenance tracking, neither of which PicoFramework needs.
type Loader struct {
	feeders []Feeder
}

// NewLoader creates a Loader that applies the given feeders, in order, to
// every section passed to Load.
func NewLoader(feeders ...Feeder) *Loader {
	return &Loader{feeders: feeders}
}

// AddFeeder appends a feeder to the end of the loader's feed order.
func (l *Loader) AddFeeder(f Feeder) {
	l.feeders = append(l.feeders, f)
}

// Load feeds and validates every section. It stops at the first error.
func (l *Loader) Load(sections ...*Section) error {
	for _, section := range sections {
		if section == nil || section.Target == nil {
			return ErrConfigCannotBeNil
		}
		for _, f := range l.feeders {
			if err := f.Feed(section.Target); err != nil {
				return fmt.Errorf("config: feeding section %q: %w", section.Name, err)
			}
		}
		if err := applyDefaults(section.Target); err != nil {
			return fmt.Errorf("config: defaults for section %q: %w", section.Name, err)
		}
		if err := validateRequired(section.Target); err != nil {
			return fmt.Errorf("config: section %q: %w", section.Name, err)
		}
	}
	return nil
}

func applyDefaults(v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		ft := rt.Field(i)
		if !field.CanSet() {
			continue
		}
		if def := ft.Tag.Get("default"); def != "" && field.IsZero() {
			if err := setFieldValue(field, def); err != nil {
				return err
			}
		}
		if field.Kind() == reflect.Struct {
			if err := applyDefaults(field.Addr().Interface()); err != nil {
				return err
			}
		} else if field.Kind() == reflect.Ptr && !field.IsNil() && field.Type().Elem().Kind() == reflect.Struct {
			if err := applyDefaults(field.Interface()); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateRequired(v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		ft := rt.Field(i)
		if ft.Tag.Get("required") == "true" && field.IsZero() {
			return fmt.Errorf("%w: %s", ErrRequiredFieldNotSet, ft.Name)
		}
		if field.Kind() == reflect.Struct {
			if err := validateRequired(field.Addr().Interface()); err != nil {
				return err
			}
		} else if field.Kind() == reflect.Ptr && !field.IsNil() && field.Type().Elem().Kind() == reflect.Struct {
			if err := validateRequired(field.Interface()); err != nil {
				return err
			}
		}
	}
	return nil
}

func setFieldValue(field reflect.Value, raw string) error {
	if field.Type() == reflect.TypeOf(time.Duration(0)) {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("parsing duration default %q: %w", raw, err)
		}
		field.SetInt(int64(d))
		return nil
	}
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("parsing int default %q: %w", raw, err)
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("parsing uint default %q: %w", raw, err)
		}
		field.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("parsing float default %q: %w", raw, err)
		}
		field.SetFloat(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("parsing bool default %q: %w", raw, err)
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedField, field.Kind())
	}
	return nil
}
