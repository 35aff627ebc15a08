package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/metaspace/smquery/v1/config"
	"github.com/metaspace/smquery/v1/query"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand(strings.NewReader(stdin), &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestTranslateDatasets(t *testing.T) {
	out, err := run(t, "", "translate", "datasets",
		"--criteria", `{"datasetFilter":{"institution":"EMBL"},"order":{"field":"name"},"offset":5,"limit":10}`)
	require.NoError(t, err)

	var got relationalOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, strings.HasSuffix(got.SQL, `ORDER BY "name" DESC OFFSET 5 LIMIT 10`), got.SQL)
	assert.Equal(t, []any{"EMBL"}, got.Args)
}

func TestTranslateDatasets_CountFromStdin(t *testing.T) {
	out, err := run(t, `{"name":"brain"}`, "translate", "datasets", "--count")
	require.NoError(t, err)

	var got relationalOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.NotContains(t, got.SQL, "LIMIT")
	assert.Equal(t, []any{"brain"}, got.Args)
}

func TestTranslateDatasets_InvalidCriteria(t *testing.T) {
	_, err := run(t, `{"limit":0}`, "translate", "datasets")
	require.Error(t, err)
	assert.True(t, errors.Is(err, query.ErrInvalidCriteria))

	_, err = run(t, `{"unknown":1}`, "translate", "datasets")
	assert.Error(t, err)
}

func TestTranslateAnnotations(t *testing.T) {
	out, err := run(t, `{"database":"HMDB","limit":20,"offset":40}`, "translate", "annotations")
	require.NoError(t, err)

	var got struct {
		From int            `json:"from"`
		Size int            `json:"size"`
		Body map[string]any `json:"body"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 40, got.From)
	assert.Equal(t, 20, got.Size)
	assert.Equal(t, []any{map[string]any{"msm": "desc"}}, got.Body["sort"])
}

func TestTranslateAnnotations_CountModernDialect(t *testing.T) {
	out, err := run(t, `{"database":"HMDB","datasetFilter":{"polarity":"positive"}}`,
		"translate", "annotations", "--count", "--dialect", "modern")
	require.NoError(t, err)

	assert.NotContains(t, out, `"sort"`)
	assert.NotContains(t, out, `"from"`)
	assert.Contains(t, out, `"match_phrase"`)
	assert.Contains(t, out, `"minimum_should_match"`)
}

func TestTranslateAnnotations_UnknownDialect(t *testing.T) {
	_, err := run(t, `{"database":"HMDB","limit":1}`, "translate", "annotations", "--dialect", "v1")
	assert.Error(t, err)
}

func TestTranslateSuggestions(t *testing.T) {
	out, err := run(t, "", "translate", "suggestions", "--field", "organism", "--query", "Mus")
	require.NoError(t, err)

	var got relationalOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, strings.HasPrefix(got.SQL, "SELECT DISTINCT "), got.SQL)
	assert.Equal(t, []any{"%Mus%"}, got.Args)
}

func TestNewApp_Wiring(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	// Validation only: no constructor connects to a backend.
	require.NoError(t, fx.ValidateApp(appOptions(cfg)...))
}
