// Package config parses configuration structs from defaults and
// environment variables with a fixed precedence: environment variables
// override struct-tag defaults. Field names are mapped to environment
// variable names with casing.ToScreamingSnake unless an explicit env
// tag is given.
package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Config tag constants.
const (
	configTag   = "config"   // "-" skips the field entirely
	envTag      = "env"      // explicit environment variable name
	defaultTag  = "default"  // default value, applied before env
	optionalTag = "optional" // marks a field as allowed to stay unset
)

var durationType = reflect.TypeOf(time.Duration(0))

// Options holds options for the Parse function.
type Options struct {
	// EnvPrefix is prefixed to derived (non-explicit) environment
	// variable names.
	EnvPrefix string
	// SkipEnv disables the environment variable pass, leaving only
	// struct-tag defaults applied.
	SkipEnv bool
}

// DefaultConfigOptions returns the default configuration options.
func DefaultConfigOptions() Options {
	return Options{}
}

// Parse populates cfg (a pointer to a struct) from struct-tag defaults
// and then, unless Options.SkipEnv is set, from environment variables,
// which take precedence over defaults. Fields tagged `config:"-"` are
// skipped; this is how non-primitive fields like injected loggers or
// callbacks opt out.
func Parse(cfg any, options Options) (map[string]configField, error) {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return nil, errors.New("config: cfg must be a pointer to a struct")
	}
	v = v.Elem()

	structMap := walkStruct(v, "")

	if err := applyDefaults(structMap); err != nil {
		return structMap, err
	}

	if !options.SkipEnv {
		if err := applyEnvs(structMap, options.EnvPrefix); err != nil {
			return structMap, err
		}
	}

	return structMap, nil
}

type configField struct {
	Path        string
	Value       reflect.Value
	Kind        reflect.Kind
	Name        string
	StructField reflect.StructField
	Tag         reflect.StructTag
}

func walkStruct(v reflect.Value, currPath string) map[string]configField {
	fields := map[string]configField{}

	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		structField := t.Field(i)
		tag := structField.Tag

		if structField.PkgPath != "" {
			continue // unexported
		}
		if tag.Get(configTag) == "-" {
			continue
		}

		name := structField.Name
		kind := field.Kind()

		path := name
		if currPath != "" {
			path = strings.Join([]string{currPath, name}, ".")
		}

		if kind == reflect.Struct && field.Type() != durationType {
			nestedFields := walkStruct(field, path)
			maps.Copy(fields, nestedFields)
			continue
		}

		fields[path] = configField{
			Path: path, Value: field, Kind: kind, Name: name, StructField: structField, Tag: tag,
		}
	}
	return fields
}

func applyDefaults(fields map[string]configField) error {
	var allErrs MultiError

	for _, field := range fields {
		def, ok := field.Tag.Lookup(defaultTag)
		if !ok {
			continue
		}
		if err := setFieldValue(field, def); err != nil {
			allErrs.Errors = append(allErrs.Errors, err)
		}
	}
	if len(allErrs.Errors) > 0 {
		return &allErrs
	}
	return nil
}

func applyEnvs(fields map[string]configField, prefix string) error {
	var allErrs MultiError

	for _, field := range fields {
		envName, explicit := field.Tag.Lookup(envTag)
		if !explicit {
			envName = toScreamingSnakeCase(field.Path)
			if prefix != "" {
				envName = prefix + "_" + envName
			}
		}

		val, ok := os.LookupEnv(envName)
		if !ok {
			continue
		}
		if err := setFieldValue(field, val); err != nil {
			allErrs.Errors = append(allErrs.Errors, err)
		}
	}

	if len(allErrs.Errors) > 0 {
		return &allErrs
	}
	return nil
}

// setFieldValue parses raw into field's type and assigns it. It
// supports string, bool, int/int64, float32/64, time.Duration, and
// []string (comma-separated).
func setFieldValue(field configField, raw string) error {
	if field.Value.Type() == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return &ValidationError{Field: field.Path, Value: raw, Reason: err.Error()}
		}
		field.Value.SetInt(int64(d))
		return nil
	}

	switch field.Kind {
	case reflect.String:
		field.Value.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return &ValidationError{Field: field.Path, Value: raw, Reason: err.Error()}
		}
		field.Value.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return &ValidationError{Field: field.Path, Value: raw, Reason: err.Error()}
		}
		field.Value.SetInt(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return &ValidationError{Field: field.Path, Value: raw, Reason: err.Error()}
		}
		field.Value.SetFloat(f)
	case reflect.Slice:
		if field.Value.Type().Elem().Kind() != reflect.String {
			return &ValidationError{Field: field.Path, Value: raw, Reason: fmt.Sprintf("unsupported slice element kind %s", field.Value.Type().Elem().Kind())}
		}
		parts := strings.Split(raw, ",")
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
		field.Value.Set(reflect.ValueOf(parts))
	default:
		return &ValidationError{Field: field.Path, Value: raw, Reason: fmt.Sprintf("unsupported kind %s", field.Kind)}
	}
	return nil
}
