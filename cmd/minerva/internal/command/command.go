package command

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/mangohow/minerva/cmd/minerva/internal/errors"
	"github.com/spf13/cobra"
)

type GenOptions struct {
	File       string `flag:"file" short:"f" usage:"Specify the model file to generate descriptors for"`
	OutPutPath string `flag:"output" short:"o" usage:"Specify the path of the generated code"`
	Package    string `flag:"package" short:"p" default:"field" usage:"Specify the package name of the generated code"`
	Types      string `flag:"types" short:"t" usage:"Only generate for the listed struct names, separated by commas"`
}

// BindCommand 根据结构体tag将字段注册为命令行flag
func BindCommand(cmd *cobra.Command, obj any) (err error) {
	rt := reflect.TypeOf(obj)
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		flag := field.Tag.Get("flag")
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
					return err
				}
			}

			cmd.Flags().BoolP(flag, shorthand, defVal, usage)
		case reflect.Int:
			defVal := 0
			if defaultValue != "" {
				defVal, err = strconv.Atoi(defaultValue)
				if err != nil {
					return err
				}
			}
			cmd.Flags().IntP(flag, shorthand, defVal, usage)
		case reflect.Uint:
			defVal := uint64(0)
			if defaultValue != "" {
				defVal, err = strconv.ParseUint(defaultValue, 10, 64)
				if err != nil {
					return err
				}
			}

			cmd.Flags().UintP(flag, shorthand, uint(defVal), usage)
		default:
			panic(fmt.Sprintf("unsupported command flag type: %s", field.Type.Kind()))
		}
	}

	return nil
}

// BindOptions 将命令行flag的值回填到结构体字段
func BindOptions(cmd *cobra.Command, options any) error {
	rv := reflect.ValueOf(options)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}

	rt := rv.Type()
	var (
		value any
		err   error
	)
	for i := 0; i < rt.NumField(); i++ {
		fieldType := rt.Field(i)
		flag := fieldType.Tag.Get("flag")
		switch fieldType.Type.Kind() {
		case reflect.String:
			value, err = cmd.Flags().GetString(flag)
		case reflect.Bool:
			value, err = cmd.Flags().GetBool(flag)
		case reflect.Int:
			value, err = cmd.Flags().GetInt(flag)
		case reflect.Uint:
			value, err = cmd.Flags().GetUint(flag)
		default:
			return errors.Errorf("unsupported type: %s", fieldType.Type.Kind())
		}
		if err != nil {
			return errors.Wrapf(err, "get flag %s error", flag)
		}
		fieldValue := rv.Field(i)
		if fieldValue.CanSet() {
			fieldValue.Set(reflect.ValueOf(value))
		}
	}

	return nil
}
