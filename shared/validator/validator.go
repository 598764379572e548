package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
	"travel/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func registerNotBlankValidation(field val.FieldLevel) bool {
	value := field.Field()

	switch value.Kind() {
	case reflect.String:
		return strings.TrimSpace(value.String()) != ""
	case reflect.Pointer:
		if value.IsNil() {
			return false
		}

		return value.Elem().Kind() != reflect.String || strings.TrimSpace(value.Elem().String()) != ""
	default:
		return !value.IsZero()
	}
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	err := validate.RegisterValidation("notblank", registerNotBlankValidation)
	if err != nil {
		panic(err)
	}
}

// Validate decodes a JSON request body into data and validates it. Unknown
// fields are rejected so typos in optional ids do not silently price as zero.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	err := decoder.Decode(data)
	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)
	if err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)
	if err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

// ValidateNamedVar is ValidateVar with the field name filled into the message.
func ValidateNamedVar(name string, field any, tag string) error {
	err := validate.Var(field, tag)
	if err != nil {
		return failure.BadRequestFromString(strings.TrimSpace(name + " " + strings.TrimSpace(message(err)))) //nolint:wrapcheck
	}

	return nil
}
