package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestParseCmd_Args(t *testing.T) {
	out, err := execute(t, "", "parse", "2 Tbsp butter (softened)", "1 1/2 cups flour")
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)

	assert.Equal(t, "2 Tbsp butter (softened)", got[0]["line"])
	assert.Equal(t, "butter", got[0]["name"])
	assert.Equal(t, 2.0, got[0]["quantity"])
	assert.Equal(t, "tbsp", got[0]["unit"])
	assert.Equal(t, "softened", got[0]["notes"])
	assert.Equal(t, "dairy", got[0]["category"])

	assert.Equal(t, 1.5, got[1]["quantity"])
	assert.Equal(t, "cup", got[1]["unit"])
}

func TestParseCmd_Stdin(t *testing.T) {
	out, err := execute(t, "1 onion\n\n  \n3 cloves garlic\n", "parse")
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "onion", got[0]["name"])
	assert.Equal(t, "whole", got[0]["unit"])
}

func TestParseCmd_UnparseableLineHasNoCategory(t *testing.T) {
	out, err := execute(t, "", "parse", "2 cups")
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "", got[0]["name"])
	assert.NotContains(t, got[0], "category")
}

func TestExtractCmd_File(t *testing.T) {
	page := `<html><head><title>Soup</title>
<script type="application/ld+json">
{"@context": "https://schema.org", "@type": "Recipe", "name": "Onion Soup",
 "recipeIngredient": ["1 onion", "4 cups stock"], "recipeYield": "Serves 6",
 "cookTime": "PT1H", "recipeInstructions": "Simmer."}
</script></head><body></body></html>`
	path := filepath.Join(t.TempDir(), "soup.html")
	require.NoError(t, os.WriteFile(path, []byte(page), 0o600))

	out, err := execute(t, "", "extract", path)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Onion Soup", got["title"])
	assert.Equal(t, []any{"1 onion", "4 cups stock"}, got["ingredients"])
	assert.Equal(t, 6.0, got["servings"])
}

func TestExtractCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "missing argument", args: []string{"extract"}},
		{name: "missing file", args: []string{"extract", filepath.Join(t.TempDir(), "nope.html")}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, "", tc.args...)
			assert.Error(t, err)
		})
	}
}
