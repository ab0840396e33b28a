package selection

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/inkui/internal/logger"
	"github.com/alexisbeaulieu97/inkui/internal/options"
)

func fruit() []options.Item {
	return options.Primitives("apple", "cherry", "date")
}

func TestSingleControlledValueMissingFromOptionsSynthesizesLabel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	banana := options.String("banana")
	s := NewSingle(SingleOptions{Items: fruit(), Value: &banana, Logger: log})

	selected, ok := s.Selected()
	require.True(t, ok)
	require.Equal(t, "banana", selected.Label)
	require.Equal(t, banana, selected.Value)
	require.Equal(t, "banana", s.DisplayValue())
	require.Contains(t, buf.String(), "no option matches")
}

func TestSingleSelectLooksUpOptionAndCloses(t *testing.T) {
	t.Parallel()

	var changes []options.Value
	var selectedLabels []string
	s := NewSingle(SingleOptions{
		Items: []options.Item{options.Labeled("Cherry red", "cherry")},
		OnChange: func(v options.Value) {
			changes = append(changes, v)
		},
		OnSelectedOptionChange: func(o *options.Option) {
			if o == nil {
				selectedLabels = append(selectedLabels, "<nil>")
				return
			}
			selectedLabels = append(selectedLabels, o.Label)
		},
	})

	s.Open()
	require.True(t, s.IsOpen())
	require.True(t, s.SearchFocused())

	s.Select(options.String("cherry"))
	require.False(t, s.IsOpen())
	require.Equal(t, "Cherry red", s.DisplayValue())

	// Same value again is not a change.
	s.Select(options.String("cherry"))
	s.Clear()

	require.Equal(t, []options.Value{options.String("cherry"), {}}, changes)
	require.Equal(t, []string{"Cherry red", "<nil>"}, selectedLabels)
	_, ok := s.Selected()
	require.False(t, ok)
}

func TestSingleControlledIgnoresInternalCommit(t *testing.T) {
	t.Parallel()

	var notified options.Value
	apple := options.String("apple")
	s := NewSingle(SingleOptions{
		Items:    fruit(),
		Value:    &apple,
		OnChange: func(v options.Value) { notified = v },
	})

	s.Select(options.String("cherry"))
	require.Equal(t, options.String("cherry"), notified)
	require.Equal(t, apple, s.Value())

	cherry := options.String("cherry")
	s.SetValue(&cherry)
	require.Equal(t, cherry, s.Value())
}

func TestSingleComboboxTyping(t *testing.T) {
	t.Parallel()

	var changes []options.Value
	var queries []string
	s := NewSingle(SingleOptions{
		Items:         fruit(),
		DefaultValue:  options.String("apple"),
		OnChange:      func(v options.Value) { changes = append(changes, v) },
		OnQueryChange: func(q string) { queries = append(queries, q) },
	})

	require.Equal(t, "apple", s.Input())

	s.Type("ch")
	require.True(t, s.IsOpen())
	require.Equal(t, "ch", s.Input())
	require.Equal(t, []string{"cherry"}, options.Labels(s.Visible().Visible))
	require.Empty(t, changes, "typing must not commit")

	s.Type("")
	require.Equal(t, []options.Value{{}}, changes)
	require.True(t, s.Value().IsZero())

	s.Close()
	require.Equal(t, "", s.Input())
	require.Equal(t, []string{"ch", ""}, queries)
}

func TestSingleShowsAllOptionsUntilUserTypes(t *testing.T) {
	t.Parallel()

	s := NewSingle(SingleOptions{Items: fruit(), DefaultValue: options.String("date")})
	s.Open()

	require.Len(t, s.Visible().Visible, 3)
	highlighted, ok := s.Highlighted()
	require.True(t, ok)
	require.Equal(t, "date", highlighted.Label)
}

func TestSingleActionRows(t *testing.T) {
	t.Parallel()

	var created []string
	items := append(fruit(),
		options.ActionItem(options.Action{
			Key:   "create",
			Label: "Create",
			Condition: func(ctx options.ActionContext) bool {
				return ctx.SearchTerm != ""
			},
			OnClick: func(ctx options.ActionContext) {
				created = append(created, ctx.SearchTerm)
			},
		}),
		options.ActionItem(options.Action{Key: "refresh", Label: "Refresh list", KeepOpen: true}),
	)
	s := NewSingle(SingleOptions{Items: items})

	s.Type("kiwi")
	visible := s.Visible().Visible
	require.Len(t, visible, 1)
	require.True(t, visible[0].IsAction())

	s.ActivateHighlighted()
	require.Equal(t, []string{"kiwi"}, created)
	require.False(t, s.IsOpen())
	require.True(t, s.Value().IsZero())

	s.Type("refresh")
	s.MoveHighlight(1)
	highlighted, ok := s.Highlighted()
	require.True(t, ok)
	require.Equal(t, "Refresh list", highlighted.Label)
	s.ActivateHighlighted()
	require.True(t, s.IsOpen())
	require.Equal(t, []string{"kiwi"}, created)
}

func TestSingleHighlightSkipsDisabledAndWraps(t *testing.T) {
	t.Parallel()

	s := NewSingle(SingleOptions{Items: []options.Item{
		options.Primitive("a"),
		options.FromOption(options.Option{Label: "b", Value: options.String("b"), Disabled: true}),
		options.Primitive("c"),
	}})
	s.Open()

	s.MoveHighlight(1)
	require.Equal(t, 2, s.HighlightIndex())
	s.MoveHighlight(1)
	require.Equal(t, 0, s.HighlightIndex())
	s.MoveHighlight(-1)
	require.Equal(t, 2, s.HighlightIndex())

	s.Activate(options.Option{Label: "b", Value: options.String("b"), Disabled: true})
	require.True(t, s.Value().IsZero())
}

func TestSingleDisabledIgnoresInteraction(t *testing.T) {
	t.Parallel()

	s := NewSingle(SingleOptions{Items: fruit(), Disabled: true})
	s.Open()
	s.Type("a")
	require.False(t, s.IsOpen())
	require.Equal(t, "", s.Query())
}

func TestSingleFocusOpensWhenConfigured(t *testing.T) {
	t.Parallel()

	s := NewSingle(SingleOptions{Items: fruit()})
	s.Focus()
	require.False(t, s.IsOpen())

	s = NewSingle(SingleOptions{Items: fruit(), OpenOnFocus: true})
	s.Focus()
	require.True(t, s.IsOpen())
	s.ToggleOpen()
	require.False(t, s.IsOpen())
}

func TestSingleSetOptionsReResolvesSelection(t *testing.T) {
	t.Parallel()

	s := NewSingle(SingleOptions{Items: fruit(), DefaultValue: options.String("kiwi")})
	require.Equal(t, "kiwi", s.DisplayValue())

	s.SetOptions([]options.Item{options.Labeled("Kiwi fruit", "kiwi")})
	require.Equal(t, "Kiwi fruit", s.DisplayValue())
}

func TestMultiDoubleToggleIsIdempotent(t *testing.T) {
	t.Parallel()

	m := NewMulti(MultiOptions{Items: fruit(), DefaultValue: options.Strings("apple")})
	original := m.Values()

	m.Toggle(options.String("cherry"))
	require.Equal(t, options.Strings("apple", "cherry"), m.Values())
	m.Toggle(options.String("cherry"))
	require.Equal(t, original, m.Values())

	m.Toggle(options.String("apple"))
	m.Toggle(options.String("apple"))
	require.ElementsMatch(t, original, m.Values())
}

func TestMultiNeverDuplicates(t *testing.T) {
	t.Parallel()

	m := NewMulti(MultiOptions{Items: fruit(), DefaultValue: options.Strings("apple", "apple", "date")})
	require.Equal(t, options.Strings("apple", "date"), m.Values())

	dup := options.Strings("cherry", "cherry")
	m.SetValue(&dup)
	require.Equal(t, options.Strings("cherry"), m.Values())
}

func TestMultiControlledValueIsDeduplicated(t *testing.T) {
	t.Parallel()

	var changes [][]options.Value
	value := options.Strings("apple", "apple", "date")
	m := NewMulti(MultiOptions{
		Items:    fruit(),
		Value:    &value,
		OnChange: func(v []options.Value) { changes = append(changes, v) },
	})
	require.Equal(t, options.Strings("apple", "date"), m.Values())
	require.Equal(t, options.Strings("apple", "apple", "date"), value, "the host slice is left alone")

	m.Toggle(options.String("apple"))
	require.Equal(t, [][]options.Value{options.Strings("date")}, changes)
}

func TestMultiSelectAllThenClearAllIsEmpty(t *testing.T) {
	t.Parallel()

	for _, initial := range [][]options.Value{nil, options.Strings("apple"), options.Strings("apple", "cherry", "date")} {
		m := NewMulti(MultiOptions{Items: fruit(), DefaultValue: initial})
		m.SelectAll()
		require.True(t, m.AllSelected())
		m.ClearAll()
		require.Empty(t, m.Values())
	}
}

func TestMultiSelectAllScope(t *testing.T) {
	t.Parallel()

	visible := NewMulti(MultiOptions{Items: fruit()})
	visible.Type("e")
	visible.SelectAll()
	require.Equal(t, options.Strings("apple", "cherry", "date"), visible.Values())

	visible.ClearAll()
	visible.Type("ch")
	visible.SelectAll()
	require.Equal(t, options.Strings("cherry"), visible.Values())
	require.True(t, visible.IsOpen(), "multi select never closes on its own")

	all := NewMulti(MultiOptions{Items: fruit(), SelectAll: ScopeAll})
	all.Type("ch")
	all.SelectAll()
	require.Equal(t, options.Strings("apple", "cherry", "date"), all.Values())
	require.Equal(t, ScopeAll, all.Scope())
}

func TestMultiSelectAllSkipsDisabled(t *testing.T) {
	t.Parallel()

	m := NewMulti(MultiOptions{Items: []options.Item{
		options.Primitive("a"),
		options.FromOption(options.Option{Label: "b", Value: options.String("b"), Disabled: true}),
	}})
	m.SelectAll()
	require.Equal(t, options.Strings("a"), m.Values())
}

func TestMultiActivateKeepsOpenAndNotifies(t *testing.T) {
	t.Parallel()

	var changes [][]options.Value
	m := NewMulti(MultiOptions{
		Items:    fruit(),
		OnChange: func(v []options.Value) { changes = append(changes, v) },
	})

	m.Open()
	m.ActivateHighlighted()
	m.MoveHighlight(1)
	m.ActivateHighlighted()
	require.True(t, m.IsOpen())
	require.Equal(t, options.Strings("apple", "cherry"), m.Values())
	require.Equal(t, "apple, cherry", m.Summary())
	require.Len(t, changes, 2)

	m.ClearAll()
	m.ClearAll()
	require.Len(t, changes, 3)
}

func TestMultiControlledSynthesizesMissingValues(t *testing.T) {
	t.Parallel()

	value := []options.Value{options.String("banana"), options.Int(3)}
	m := NewMulti(MultiOptions{Items: fruit(), Value: &value})

	require.Equal(t, []string{"banana", "3"}, options.Labels(m.Selected()))
	require.True(t, m.IsSelected(options.Int(3)))
	require.False(t, m.IsSelected(options.String("3")))

	m.Toggle(options.String("apple"))
	require.Equal(t, value, m.Values())
}
