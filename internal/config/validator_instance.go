package config

import (
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/inkui/internal/calendar"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern   = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	widgetIDPattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

	// A reference day whose fields are all distinct, so a format that drops or
	// confuses one of them fails to round-trip.
	formatProbe = calendar.New(2024, time.November, 27)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("widget_id", func(fl validator.FieldLevel) bool {
			return widgetIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("date_format", func(fl validator.FieldLevel) bool {
			return ValidDateFormat(fl.Field().String())
		})

		_ = v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
			_, ok := ParseWeekday(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// ValidDateFormat reports whether format can both render and strictly parse a full date.
func ValidDateFormat(format string) bool {
	if strings.TrimSpace(format) == "" {
		return false
	}
	rendered := calendar.Format(formatProbe, format)
	// a clock outside the probe year makes yearless formats fail the comparison
	parsed, err := calendar.CoerceAt(rendered, format, calendar.FixedClock(time.Date(1999, time.January, 1, 0, 0, 0, 0, time.Local)))
	return err == nil && parsed == formatProbe
}

// ParseWeekday accepts full or three-letter English day names in any case.
func ParseWeekday(name string) (time.Weekday, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) < 3 {
		return time.Sunday, false
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, true
		}
	}
	return time.Sunday, false
}
