package config

import (
	"errors"
	"fmt"
	"strings"

	cerrors "cloudeng.io/errors"
	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/inkui/internal/calendar"
	inkerrors "github.com/alexisbeaulieu97/inkui/pkg/errors"
)

// ValidateDocument performs schema and cross-field validation. Every problem found is
// reported; the result unwraps to the individual *errors.ValidationError values.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return inkerrors.NewValidationError("document", "document is nil", nil)
	}

	var errs cerrors.M
	errs.Append(convertValidationErrors(validatorInstance().Struct(doc))...)

	seen := make(map[string]int, len(doc.Widgets))
	for i, w := range doc.Widgets {
		if w.ID != "" {
			if first, dup := seen[w.ID]; dup {
				errs.Append(inkerrors.NewValidationError(fieldForWidget(i, "id"),
					fmt.Sprintf("duplicate widget id %q (first used by widgets[%d])", w.ID, first), nil))
			} else {
				seen[w.ID] = i
			}
		}
		errs.Append(validateWidget(doc.Settings, w, i)...)
	}

	return errs.Err()
}

func validateWidget(settings Settings, w Widget, index int) []error {
	var out []error
	fail := func(field, msg string) {
		out = append(out, inkerrors.NewValidationError(fieldForWidget(index, field), msg, nil))
	}

	if w.IsSelection() {
		if len(w.Options) == 0 {
			fail("options", fmt.Sprintf("%s needs at least one option", w.Type))
		}
		if w.Default.IsList && !w.IsMultiple() {
			fail("default", "a single-value widget takes a scalar default")
		}
	} else {
		if len(w.Options) > 0 {
			fail("options", fmt.Sprintf("%s does not take options", w.Type))
		}
		if w.SelectAll != "" || w.MaxOptions != 0 || w.ShowFooter {
			fail("type", fmt.Sprintf("selection settings are not valid for %s", w.Type))
		}
	}

	if w.Multiple && w.Type != WidgetAutocomplete {
		fail("multiple", "only autocomplete supports multiple")
	}

	switch w.Type {
	case WidgetDatePicker:
		if w.Default.IsList {
			fail("default", "a date picker takes a single date")
		} else if w.Default.Raw != "" {
			format := w.Format
			if format == "" {
				format = settings.DateFormat
			}
			if _, err := calendar.Coerce(w.Default.Raw, format); err != nil {
				out = append(out, inkerrors.NewValidationError(fieldForWidget(index, "default"), "default is not a date", err))
			}
		}
	case WidgetProgress:
		if !w.Default.IsZero() {
			fail("default", "progress uses percent, not default")
		}
	default:
		if w.Format != "" {
			fail("format", "format only applies to date pickers")
		}
	}

	return out
}

// convertValidationErrors normalizes validator errors into validation errors, one per
// failing field.
func convertValidationErrors(err error) []error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return []error{inkerrors.NewValidationError("document", err.Error(), err)}
	}

	out := make([]error, 0, len(ves))
	for _, ve := range ves {
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		out = append(out, inkerrors.NewValidationError(field, msg, ve))
	}
	return out
}

// yamlishFieldName turns "Document.Widgets[0].ID" into "widgets[0].id".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = toSnake(part)
	}
	return strings.Join(parts, ".")
}

func toSnake(s string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range s {
		isUpper := r >= 'A' && r <= 'Z'
		if isUpper && prevLower {
			b.WriteByte('_')
		}
		if isUpper {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
		prevLower = (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
	}
	return b.String()
}

func fieldForWidget(index int, field string) string {
	return fmt.Sprintf("widgets[%d].%s", index, field)
}
