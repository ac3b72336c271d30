// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/peregrine-app/peregrine/internal/models"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is a single field validation failure.
type FieldError struct {
	Field   string      `json:"field"`
	Tag     string      `json:"tag"`
	Param   string      `json:"param,omitempty"`
	Value   interface{} `json:"value,omitempty"`
	Message string      `json:"message"`
}

// RequestValidationError aggregates the field failures of one request.
type RequestValidationError struct {
	Fields []FieldError
}

// Error implements the error interface with all field messages joined.
func (ve *RequestValidationError) Error() string {
	if len(ve.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(ve.Fields))
	for i, f := range ve.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "; ")
}

// Details returns the failures in a shape suitable for the API error
// envelope's details map.
func (ve *RequestValidationError) Details() map[string]interface{} {
	fields := make([]map[string]interface{}, len(ve.Fields))
	for i, f := range ve.Fields {
		fields[i] = map[string]interface{}{
			"field":   f.Field,
			"tag":     f.Tag,
			"message": f.Message,
		}
	}
	return map[string]interface{}{"fields": fields}
}

// GetValidator returns the singleton validator, initializing it and
// registering the domain validators on first use.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		must := func(err error) {
			if err != nil {
				panic(fmt.Sprintf("validation: register validator: %v", err))
			}
		}

		must(validate.RegisterValidation("trip_timestamp", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			if s == "" {
				return true // pair with required when mandatory
			}
			_, ok := models.ParseTimestamp(s)
			return ok
		}))
		must(validate.RegisterValidation("transport_mode", func(fl validator.FieldLevel) bool {
			return models.TransportMode(fl.Field().String()).Valid()
		}))
		must(validate.RegisterValidation("leave_type", func(fl validator.FieldLevel) bool {
			return models.LeaveType(fl.Field().String()).Valid()
		}))
		must(validate.RegisterValidation("leave_status", func(fl validator.FieldLevel) bool {
			switch models.LeaveStatus(fl.Field().String()) {
			case models.LeaveStatusRequested, models.LeaveStatusApproved, models.LeaveStatusRejected:
				return true
			}
			return false
		}))
	})
	return validate
}

// ValidateStruct validates s with the singleton validator. Returns nil
// on success, or a *RequestValidationError carrying every field
// failure.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &RequestValidationError{Fields: []FieldError{{
			Field: "unknown", Tag: "unknown", Message: err.Error(),
		}}}
	}

	fields := make([]FieldError, len(fieldErrs))
	for i, fe := range fieldErrs {
		fields[i] = FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Value:   fe.Value(),
			Message: translate(fe),
		}
	}
	return &RequestValidationError{Fields: fields}
}

var messageTemplates = map[string]string{
	"required":       "%s is required",
	"email":          "%s must be a valid email address",
	"latitude":       "%s must be a valid latitude (-90 to 90)",
	"longitude":      "%s must be a valid longitude (-180 to 180)",
	"trip_timestamp": "%s must be an RFC3339 timestamp, date-time, or date",
	"transport_mode": "%s must be a known transport mode",
	"leave_type":     "%s must be a known leave type",
	"leave_status":   "%s must be a known leave status",
}

var messageTemplatesWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
	"gt":    "%s must be greater than %s",
	"lt":    "%s must be less than %s",
}

func translate(fe validator.FieldError) string {
	field, tag, param := fe.Field(), fe.Tag(), fe.Param()

	if tmpl, ok := messageTemplates[tag]; ok {
		return fmt.Sprintf(tmpl, field)
	}
	if tmpl, ok := messageTemplatesWithParam[tag]; ok {
		return fmt.Sprintf(tmpl, field, param)
	}

	isString := fe.Kind().String() == "string"
	switch tag {
	case "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if isString {
			return fmt.Sprintf("%s must be at most %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}
