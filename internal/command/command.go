// Package command binds option structs to cobra flags. Each field carries a
// flag tag naming the flag and optional short, default and usage tags:
//
//	type GenOptions struct {
//		Output string `flag:"output" short:"o" usage:"Output file"`
//		Format string `flag:"format" default:"go" usage:"Output format: [go, yaml]"`
//	}
package command

import (
	"reflect"
	"strconv"

	"github.com/mangohow/specification/internal/errors"
	"github.com/spf13/cobra"
)

// BindCommand declares a flag on cmd for every tagged field of obj.
func BindCommand(cmd *cobra.Command, obj any) (err error) {
	rt := reflect.TypeOf(obj)
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		flag := field.Tag.Get("flag")
		if flag == "" {
			continue
		}
		shorthand := field.Tag.Get("short")
		defaultValue := field.Tag.Get("default")
		usage := field.Tag.Get("usage")

		switch field.Type.Kind() {
		case reflect.String:
			cmd.Flags().StringP(flag, shorthand, defaultValue, usage)
		case reflect.Bool:
			defVal := false
			if defaultValue != "" {
				defVal, err = strconv.ParseBool(defaultValue)
				if err != nil {
					return errors.Wrapf(err, "default of flag %s", flag)
				}
			}
			cmd.Flags().BoolP(flag, shorthand, defVal, usage)
		case reflect.Int:
			defVal := 0
			if defaultValue != "" {
				defVal, err = strconv.Atoi(defaultValue)
				if err != nil {
					return errors.Wrapf(err, "default of flag %s", flag)
				}
			}
			cmd.Flags().IntP(flag, shorthand, defVal, usage)
		default:
			return errors.Errorf("unsupported command flag type %s of flag %s", field.Type.Kind(), flag)
		}
	}

	return nil
}

// BindOptions copies the parsed flag values of cmd into options.
func BindOptions(cmd *cobra.Command, options any) error {
	rv := reflect.ValueOf(options)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.Errorf("options must be a non-nil pointer, got %T", options)
	}
	rv = rv.Elem()

	rt := rv.Type()
	var (
		value any
		err   error
	)
	for i := 0; i < rt.NumField(); i++ {
		fieldType := rt.Field(i)
		flag := fieldType.Tag.Get("flag")
		if flag == "" {
			continue
		}

		switch fieldType.Type.Kind() {
		case reflect.String:
			value, err = cmd.Flags().GetString(flag)
		case reflect.Bool:
			value, err = cmd.Flags().GetBool(flag)
		case reflect.Int:
			value, err = cmd.Flags().GetInt(flag)
		default:
			return errors.Errorf("unsupported type %s of flag %s", fieldType.Type.Kind(), flag)
		}
		if err != nil {
			return errors.Wrapf(err, "get flag %s", flag)
		}

		fieldValue := rv.Field(i)
		if fieldValue.CanSet() {
			fieldValue.Set(reflect.ValueOf(value).Convert(fieldType.Type))
		}
	}

	return nil
}
