package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/inkui/internal/options"
	inkerrors "github.com/alexisbeaulieu97/inkui/pkg/errors"
)

func validDocument() *Document {
	return &Document{
		Version: "1.0.0",
		Name:    "demo",
		Widgets: []Widget{
			{ID: "due", Type: WidgetDatePicker, Default: Default{Values: []options.Value{options.String("2024-03-15")}, Raw: "2024-03-15"}},
			{ID: "fruit", Type: WidgetCombobox, Options: OptionList(options.Primitives("a", "b"))},
		},
	}
}

func validationFields(t *testing.T, err error) []string {
	t.Helper()

	var multi interface{ Unwrap() []error }
	require.True(t, errors.As(err, &multi), "expected an aggregate error, got %v", err)

	var fields []string
	for _, e := range multi.Unwrap() {
		var ve *inkerrors.ValidationError
		require.ErrorAs(t, e, &ve)
		fields = append(fields, ve.Field)
	}
	return fields
}

func TestValidateDocumentAcceptsValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateDocument(validDocument()))
}

func TestValidateDocumentNil(t *testing.T) {
	t.Parallel()

	var ve *inkerrors.ValidationError
	require.ErrorAs(t, ValidateDocument(nil), &ve)
}

func TestValidateDocumentSchemaErrors(t *testing.T) {
	t.Parallel()

	doc := validDocument()
	doc.Version = "one"
	doc.Settings.WeekStart = "funday"
	doc.Settings.DateFormat = "MMM"
	doc.Widgets[1].ID = "Bad ID"
	doc.Widgets[1].MaxOptions = 1000

	fields := validationFields(t, ValidateDocument(doc))
	require.ElementsMatch(t, []string{
		"version",
		"settings.week_start",
		"settings.date_format",
		"widgets[1].id",
		"widgets[1].max_options",
	}, fields)
}

func TestValidateDocumentCrossFieldErrors(t *testing.T) {
	t.Parallel()

	doc := validDocument()
	doc.Widgets = append(doc.Widgets,
		Widget{ID: "fruit", Type: WidgetAutocomplete, Options: OptionList(options.Primitives("x"))},
		Widget{ID: "empty", Type: WidgetMultiSelect},
		Widget{ID: "single", Type: WidgetCombobox, Options: OptionList(options.Primitives("x")), Default: Default{IsList: true}},
		Widget{ID: "bar", Type: WidgetProgress, Options: OptionList(options.Primitives("x"))},
		Widget{ID: "multi", Type: WidgetCombobox, Multiple: true, Options: OptionList(options.Primitives("x"))},
	)
	doc.Widgets[0].Default = Default{Values: []options.Value{options.String("not a date")}, Raw: "not a date"}

	fields := validationFields(t, ValidateDocument(doc))
	require.ElementsMatch(t, []string{
		"widgets[0].default",
		"widgets[2].id",
		"widgets[3].options",
		"widgets[4].default",
		"widgets[5].options",
		"widgets[6].multiple",
	}, fields)
}

func TestValidateDocumentDateDefaultUsesFormat(t *testing.T) {
	t.Parallel()

	doc := validDocument()
	doc.Settings.DateFormat = "DD/MM/YYYY"
	doc.Widgets[0].Default = Default{Values: []options.Value{options.String("15/03/2024")}, Raw: "15/03/2024"}
	require.NoError(t, ValidateDocument(doc))
}

func TestValidDateFormat(t *testing.T) {
	t.Parallel()

	for _, format := range []string{"YYYY-MM-DD", "DD/MM/YYYY", "MMM D, YYYY", "dddd, MMMM D YYYY"} {
		require.True(t, ValidDateFormat(format), format)
	}
	for _, format := range []string{"", "MMM", "YYYY", "DD/MM"} {
		require.False(t, ValidDateFormat(format), format)
	}
}

func TestParseWeekday(t *testing.T) {
	t.Parallel()

	day, ok := ParseWeekday("Monday")
	require.True(t, ok)
	require.Equal(t, time.Monday, day)

	day, ok = ParseWeekday("sat")
	require.True(t, ok)
	require.Equal(t, time.Saturday, day)

	_, ok = ParseWeekday("mo")
	require.False(t, ok)
}

func TestDurationDecoding(t *testing.T) {
	t.Parallel()

	doc, err := DecodeDocument("doc.yaml", []byte(`version: "1.0"
name: x
widgets:
  - id: a
    type: progress
toasts:
  - message: hi
    duration: 1.5
`))
	require.NoError(t, err)
	require.Equal(t, Duration(1500*time.Millisecond), doc.Toasts[0].Duration)
}
