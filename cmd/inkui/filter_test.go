package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

const filterDocument = `version: "1.0"
name: Filtering
widgets:
  - id: fruit
    type: combobox
    options:
      - Apple
      - Banana
      - label: Cherry
        value: cherry
  - id: country
    type: autocomplete
    options:
      - group: Europe
        items:
          - label: Germany
            value: de
          - label: France
            value: fr
      - group: Asia
        hide_label: true
        items: [Japan, Korea]
  - id: due
    type: datepicker
`

func TestFilterPrintsMatches(t *testing.T) {
	path := writeDocument(t, filterDocument)

	output, err := execute(t, "filter", path, "fruit", "an")
	require.NoError(t, err)
	require.Equal(t, "Banana\n", output)

	output, err = execute(t, "filter", path, "fruit")
	require.NoError(t, err)
	require.Equal(t, "Apple\nBanana\nCherry (cherry)\n", output)
}

func TestFilterKeepsGroups(t *testing.T) {
	path := writeDocument(t, filterDocument)

	output, err := execute(t, "filter", path, "country", "an")
	require.NoError(t, err)
	require.Equal(t, "Europe\n  Germany (de)\n  France (fr)\nJapan\n", output)
}

func TestFilterNoResults(t *testing.T) {
	path := writeDocument(t, filterDocument)

	output, err := execute(t, "filter", path, "fruit", "kiwi")
	require.NoError(t, err)
	require.Equal(t, "No results found for \"kiwi\"\n", output)
}

func TestFilterJSON(t *testing.T) {
	path := writeDocument(t, filterDocument)

	output, err := execute(t, "filter", path, "country", "fr", "--json")
	require.NoError(t, err)

	var payload struct {
		Query  string        `json:"query"`
		Groups []filterGroup `json:"groups"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &payload))
	require.Equal(t, "fr", payload.Query)
	require.Len(t, payload.Groups, 1)
	require.Equal(t, "Europe", payload.Groups[0].Label)
	require.Equal(t, []filterEntry{{Label: "France", Value: "fr"}}, payload.Groups[0].Options)
}

func TestFilterRejectsUnknownAndNonSelectionWidgets(t *testing.T) {
	path := writeDocument(t, filterDocument)

	_, err := execute(t, "filter", path, "missing")
	require.Error(t, err)
	require.Contains(t, err.Error(), `no widget with id "missing"`)

	_, err = execute(t, "filter", path, "due")
	require.Error(t, err)
	require.Contains(t, err.Error(), "datepicker widgets have no options")
}
