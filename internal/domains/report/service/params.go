package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"travel/internal/domains/report/model"
	"travel/shared/constant"
	"travel/shared/failure"
	"travel/shared/validator"
)

// bind resolves every declared parameter from input, falling back to its
// default, and converts it into a driver argument. Undeclared input keys
// are ignored.
func bind(report model.Report, input map[string]string) (map[string]string, map[string]any, error) {
	values := make(map[string]string, len(report.Params))
	args := make(map[string]any, len(report.Params))

	for _, param := range report.Params {
		raw := strings.TrimSpace(input[param.Name])
		if raw == "" {
			raw = param.Default
		}

		switch param.Kind {
		case model.ParamDate:
			date, err := time.Parse(constant.DateFormat, raw)
			if err != nil {
				return nil, nil, failure.BadRequestFromString(fmt.Sprintf("%s must match the format %s", param.Name, constant.DateFormat)) //nolint:wrapcheck
			}

			args[param.Name] = date
		case model.ParamInt:
			number, err := strconv.Atoi(raw)
			if err != nil {
				return nil, nil, failure.BadRequestFromString(param.Name + " must be a number") //nolint:wrapcheck
			}

			if param.Rules != "" {
				if err := validator.ValidateNamedVar(param.Name, number, param.Rules); err != nil {
					return nil, nil, err //nolint:wrapcheck
				}
			}

			args[param.Name] = number
		default:
			if param.Rules != "" {
				if err := validator.ValidateNamedVar(param.Name, raw, param.Rules); err != nil {
					return nil, nil, err //nolint:wrapcheck
				}
			}

			args[param.Name] = raw
		}

		values[param.Name] = raw
	}

	return values, args, nil
}
