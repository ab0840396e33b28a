package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTable(t *testing.T) {
	output, err := execute(t, "parse", "2024-03-05", "March 7 2024")
	require.NoError(t, err)
	require.Contains(t, output, "INPUT")
	require.Contains(t, output, "2024-03-05")
	require.Contains(t, output, "2024-03-07")
}

func TestParseUsesFormat(t *testing.T) {
	output, err := execute(t, "parse", "--format", "DD/MM/YYYY", "--json", "05/03/2024")
	require.NoError(t, err)

	var results []parseResult
	require.NoError(t, json.Unmarshal([]byte(output), &results))
	require.Equal(t, []parseResult{{Input: "05/03/2024", Value: "2024-03-05", Display: "05/03/2024"}}, results)
}

func TestParseReportsEveryFailure(t *testing.T) {
	output, err := execute(t, "parse", "2024-03-05", "garbage", "nope")
	require.Error(t, err)
	require.Contains(t, err.Error(), "2 of 3 inputs")
	require.Contains(t, output, "2024-03-05", "valid rows are still printed")
	require.Contains(t, output, "invalid")
}
