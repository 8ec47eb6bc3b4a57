package ingredientline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynonymsAreTotal(t *testing.T) {
	t.Parallel()

	for word, unit := range Synonyms() {
		assert.True(t, unit.Valid(), "%q maps to non-canonical %q", word, unit)

		got, ok := LookupUnit(word)
		require.True(t, ok, word)
		assert.Equal(t, unit, got, word)

		got, ok = LookupUnit(strings.ToUpper(word))
		require.True(t, ok, word)
		assert.Equal(t, unit, got, word)
	}
}

func TestLookupUnit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word   string
		want   Unit
		wantOK bool
	}{
		{word: "cups", want: Cup, wantOK: true},
		{word: "Tbsp", want: Tablespoon, wantOK: true},
		{word: "tbsps", want: Tablespoon, wantOK: true},
		{word: "tsp.", want: Teaspoon, wantOK: true},
		{word: "Pounds", want: Pound, wantOK: true},
		{word: "package", want: Package, wantOK: true},
		{word: "pkg", want: Package, wantOK: true},
		{word: "pinches", want: Pinch, wantOK: true},
		{word: "medium", want: Whole, wantOK: true},
		{word: "cloves", wantOK: false},
		{word: ".", wantOK: false},
		{word: "", wantOK: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.word, func(t *testing.T) {
			t.Parallel()
			got, ok := LookupUnit(tc.word)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseUnit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Unit
		wantErr bool
	}{
		{input: "", want: Whole},
		{input: "to_taste", want: ToTaste},
		{input: "pkg", want: Package},
		{input: "Tablespoons", want: Tablespoon},
		{input: "handful", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseUnit(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUnits(t *testing.T) {
	t.Parallel()

	units := Units()
	assert.Len(t, units, 15)
	for _, u := range units {
		assert.True(t, u.Valid(), u)
	}
	assert.False(t, Unit("handful").Valid())
}
