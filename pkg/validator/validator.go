package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	// Report fields by their JSON name so messages match the request payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	// notblank also rejects whitespace-only strings.
	_ = v.RegisterValidation("notblank", validators.NotBlank)

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// Violation is one broken rule. Field is the JSON name of the offending field.
type Violation struct {
	Field   string
	Message string
}

// Messages runs Validate and returns every violated rule as a full sentence,
// in struct field order. A nil slice means the value is valid.
func (cv *CustomValidator) Messages(i interface{}) ([]string, error) {
	violations, err := cv.Violations(i)
	if err != nil || violations == nil {
		return nil, err
	}

	messages := make([]string, 0, len(violations))
	for _, v := range violations {
		messages = append(messages, v.Message)
	}
	return messages, nil
}

func (cv *CustomValidator) Violations(i interface{}) ([]Violation, error) {
	err := cv.Validate(i)
	if err == nil {
		return nil, nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, err
	}
	return cv.FormatValidationErrors(validationErrors), nil
}

func (cv *CustomValidator) FormatValidationErrors(err error) []Violation {
	var violations []Violation

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return violations
	}

	for _, e := range validationErrors {
		field := e.Field()
		var message string
		switch e.Tag() {
		case "required", "notblank":
			if strings.HasSuffix(field, "_id") {
				message = Humanize(strings.TrimSuffix(field, "_id")) + " must exist"
			} else {
				message = Humanize(field) + " can't be blank"
			}
		case "email":
			message = Humanize(field) + " is invalid"
		case "oneof":
			message = Humanize(field) + " is not included in the list"
		case "max":
			message = Humanize(field) + " is too long (maximum is " + e.Param() + " characters)"
		case "min":
			message = Humanize(field) + " is too short (minimum is " + e.Param() + " characters)"
		default:
			message = Humanize(field) + " is invalid"
		}
		violations = append(violations, Violation{Field: field, Message: message})
	}

	return violations
}

// Humanize turns a snake_case attribute into a sentence-case label,
// e.g. "appointment_date" becomes "Appointment date".
func Humanize(field string) string {
	label := strings.ReplaceAll(field, "_", " ")
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}
