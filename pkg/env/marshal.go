package env

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var durationType = reflect.TypeOf(time.Duration(0))

// Map collects the env-tagged fields of every config struct pointer into a
// key/value map. Empty strings and zero numbers are left out; bools are
// always written so that a false overrides a true default.
func Map(cfgs ...any) (map[string]string, error) {
	out := make(map[string]string)
	for _, c := range cfgs {
		v := reflect.ValueOf(c)
		if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
			return nil, fmt.Errorf("env: expected pointer to struct, got %T", c)
		}
		v = v.Elem()
		t := v.Type()

		for i := 0; i < v.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}

			// Tag forms: "KEY", "KEY,required,notEmpty"
			key, _, _ := strings.Cut(field.Tag.Get("env"), ",")
			if key == "" {
				continue
			}

			val := v.Field(i)
			if val.Kind() != reflect.Bool && val.IsZero() {
				continue
			}
			out[key] = formatValue(val)
		}
	}
	return out, nil
}

// Write renders cfgs as a .env file at path.
func Write(path string, cfgs ...any) error {
	m, err := Map(cfgs...)
	if err != nil {
		return err
	}
	if err := godotenv.Write(m, path); err != nil {
		return fmt.Errorf("env: write %s: %w", path, err)
	}
	return nil
}

func formatValue(v reflect.Value) string {
	if v.Type() == durationType {
		return time.Duration(v.Int()).String()
	}

	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}
