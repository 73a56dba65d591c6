package usecase

import (
	"strings"
	"time"

	"clinic-records-api/pkg/validator"

	"github.com/google/uuid"
)

const birthDateLayout = "2006-01-02"

var appointmentDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// checks collects the violations of a single write so they are reported together.
type checks struct {
	violations []validator.Violation
}

func (c *checks) add(field, message string) {
	c.violations = append(c.violations, validator.Violation{Field: field, Message: message})
}

func (c *checks) has(field string) bool {
	for _, v := range c.violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

// rules runs the declarative struct rules, skipping fields that were already
// rejected while decoding the request.
func (c *checks) rules(v *validator.CustomValidator, i interface{}) error {
	violations, err := v.Violations(i)
	if err != nil {
		return err
	}
	for _, violation := range violations {
		if !c.has(violation.Field) {
			c.violations = append(c.violations, violation)
		}
	}
	return nil
}

// reference adds "<X> must exist" when id is set but does not resolve.
// A nil id is left to the required rule.
func (c *checks) reference(field string, id uuid.UUID, exists func(uuid.UUID) (bool, error)) error {
	if id == uuid.Nil || c.has(field) {
		return nil
	}
	ok, err := exists(id)
	if err != nil {
		return err
	}
	if !ok {
		c.add(field, validator.Humanize(strings.TrimSuffix(field, "_id"))+" must exist")
	}
	return nil
}

func (c *checks) err() error {
	if len(c.violations) == 0 {
		return nil
	}
	messages := make([]string, len(c.violations))
	for i, v := range c.violations {
		messages[i] = v.Message
	}
	return newValidationError(messages...)
}

// parseReference maps an unparseable id to uuid.Nil so it fails as a missing reference.
func parseReference(raw string) uuid.UUID {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil
	}
	return id
}

func parseAppointmentDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range appointmentDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func parseBirthDate(raw string) (*time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(birthDateLayout, raw)
	if err != nil {
		return nil, false
	}
	return &t, true
}
