package autocomplete

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/inkui/internal/options"
	"github.com/alexisbeaulieu97/inkui/internal/selection"
)

func fruits() []options.Item {
	return []options.Item{
		options.Labeled("Apple", "apple"),
		options.Labeled("Banana", "banana"),
		options.Labeled("Cherry", "cherry"),
	}
}

func newAutocomplete(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.Items == nil {
		opts.Items = fruits()
	}
	m := New(opts)
	m.Focus()
	return m
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func press(m Model, keys ...tea.KeyType) Model {
	for _, k := range keys {
		m, _ = m.Update(tea.KeyMsg{Type: k})
	}
	return m
}

func TestSingleSearchAndSelect(t *testing.T) {
	t.Parallel()

	var got options.Value
	m := newAutocomplete(t, Options{Placeholder: "Pick a fruit", OnChange: func(v options.Value) { got = v }})
	require.Contains(t, m.View(), "Pick a fruit")

	m = press(m, tea.KeyEnter)
	require.True(t, m.IsOpen())

	m = typeText(m, "err")
	require.Equal(t, "err", m.Query())
	require.Equal(t, []string{"Cherry"}, options.Labels(m.Single().Visible().Visible))

	m = press(m, tea.KeyEnter)
	require.False(t, m.IsOpen(), "single selection closes the dropdown")
	require.Equal(t, options.String("cherry"), got)
	require.Equal(t, "Cherry", m.DisplayValue())
	require.Empty(t, m.Query())
	require.Contains(t, m.View(), "Cherry")
}

func TestMultipleStaysOpenAndSummarizes(t *testing.T) {
	t.Parallel()

	var changes [][]options.Value
	m := newAutocomplete(t, Options{
		Multiple:       true,
		OnValuesChange: func(v []options.Value) { changes = append(changes, v) },
	})
	require.Contains(t, m.View(), "Select option")

	m = press(m, tea.KeyDown)
	m = press(m, tea.KeyEnter)
	m = press(m, tea.KeyDown, tea.KeyDown, tea.KeyEnter)
	require.True(t, m.IsOpen())
	require.Equal(t, options.Strings("apple", "cherry"), m.Values())
	require.Equal(t, "Apple, Cherry", m.DisplayValue())
	require.Len(t, changes, 2)

	view := m.View()
	require.Contains(t, view, "[x] Apple")
	require.Contains(t, view, "[ ] Banana")
	require.Contains(t, view, "Select All")
}

func TestFooterSelectAllAndClear(t *testing.T) {
	t.Parallel()

	m := newAutocomplete(t, Options{Multiple: true, SelectAll: selection.ScopeAll})
	m = press(m, tea.KeyEnter)
	m = typeText(m, "an")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	require.Equal(t, options.Strings("apple", "banana", "cherry"), m.Values(), "scope all ignores the query")
	require.Contains(t, m.View(), "Clear All")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	require.Empty(t, m.Values())
}

func TestSingleFooterClear(t *testing.T) {
	t.Parallel()

	m := newAutocomplete(t, Options{DefaultValue: options.String("banana")})
	m = press(m, tea.KeyEnter)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	require.Equal(t, options.String("banana"), m.Value(), "no footer, no clear")

	m = newAutocomplete(t, Options{DefaultValue: options.String("banana"), ShowFooter: true})
	m = press(m, tea.KeyEnter)
	require.Contains(t, m.View(), "Clear")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	require.True(t, m.Value().IsZero())
}

func TestHideSearchUsesSpaceToPick(t *testing.T) {
	t.Parallel()

	m := newAutocomplete(t, Options{Multiple: true, HideSearch: true})
	m = press(m, tea.KeyEnter)
	m = typeText(m, "ch")
	require.Empty(t, m.Query(), "typing does not search")
	require.NotContains(t, m.View(), "Search")

	m = press(m, tea.KeySpace)
	require.Equal(t, options.Strings("apple"), m.Values())
}

func TestMaxOptionsCapsRows(t *testing.T) {
	t.Parallel()

	items := make([]options.Item, 0, 60)
	for i := range 60 {
		items = append(items, options.Primitive(fmt.Sprintf("item-%02d", i)))
	}
	m := newAutocomplete(t, Options{Items: items})
	m = press(m, tea.KeyEnter)
	view := m.View()
	require.Contains(t, view, "item-49")
	require.NotContains(t, view, "item-50")

	m = newAutocomplete(t, Options{Items: items, MaxOptions: 3})
	m = press(m, tea.KeyEnter)
	view = m.View()
	require.Contains(t, view, "item-02")
	require.NotContains(t, view, "item-03")
}

func TestGroupLabels(t *testing.T) {
	t.Parallel()

	m := newAutocomplete(t, Options{Items: []options.Item{
		options.Group("Fruit", fruits()...),
		{Kind: options.KindGroup, Label: "Veg", HideLabel: true, Items: options.Primitives("leek")},
	}})
	m = press(m, tea.KeyEnter)
	view := m.View()
	require.Contains(t, view, "Fruit")
	require.Contains(t, view, "leek")
	require.NotContains(t, view, "Veg")
}

func TestQueryCallbackAndEscape(t *testing.T) {
	t.Parallel()

	var queries []string
	m := newAutocomplete(t, Options{OnQueryChange: func(q string) { queries = append(queries, q) }})
	m = press(m, tea.KeyEnter)
	m = typeText(m, "ba")
	m = press(m, tea.KeyEsc)
	require.False(t, m.IsOpen())
	require.Equal(t, []string{"b", "ba", ""}, queries)
}

func TestLoadingSpinner(t *testing.T) {
	t.Parallel()

	m := newAutocomplete(t, Options{})
	require.Nil(t, m.Init())
	require.NotNil(t, m.SetLoading(true))
	require.Nil(t, m.SetLoading(true), "already loading")
	require.True(t, m.Loading())
	require.Nil(t, m.SetLoading(false))

	m = New(Options{Items: fruits(), Loading: true})
	require.NotNil(t, m.Init())
}

func TestDisabledNeverOpens(t *testing.T) {
	t.Parallel()

	m := newAutocomplete(t, Options{Disabled: true})
	m = press(m, tea.KeyEnter)
	require.False(t, m.IsOpen())
}

func TestOpenDefersBlinkUntilTeardown(t *testing.T) {
	t.Parallel()

	m := newAutocomplete(t, Options{})
	m = press(m, tea.KeyEnter)
	require.Equal(t, 1, m.sched.Pending())
	m.Teardown()
	require.Zero(t, m.sched.Pending())
}
