package ingredientline

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Line
	}{
		{
			name:  "integer quantity with unit",
			input: "1 cup flour",
			want:  Line{Name: "flour", Quantity: 1, Unit: Cup},
		},
		{
			name:  "plural unit synonym",
			input: "2 tablespoons sugar",
			want:  Line{Name: "sugar", Quantity: 2, Unit: Tablespoon},
		},
		{
			name:  "simple fraction",
			input: "1/2 teaspoon salt",
			want:  Line{Name: "salt", Quantity: 0.5, Unit: Teaspoon},
		},
		{
			name:  "package with trailing note",
			input: "1 package instant yeast (2 1/4 tsp)",
			want:  Line{Name: "instant yeast", Quantity: 1, Unit: Package, Notes: "2 1/4 tsp"},
		},
		{
			name:  "range keeps the lower mixed-number bound",
			input: "2 3/4 - 3 1/4 cups flour",
			want:  Line{Name: "flour", Quantity: 2.75, Unit: Cup},
		},
		{
			name:  "range with note",
			input: "2 3/4 - 3 1/4 cups unbleached all-purpose flour (sifted)",
			want:  Line{Name: "unbleached all-purpose flour", Quantity: 2.75, Unit: Cup, Notes: "sifted"},
		},
		{
			name:  "fraction range",
			input: "1/2 - 1 Tbsp ground cinnamon",
			want:  Line{Name: "ground cinnamon", Quantity: 0.5, Unit: Tablespoon},
		},
		{
			name:  "range written without spaces",
			input: "1/2-1 tsp vanilla",
			want:  Line{Name: "vanilla", Quantity: 0.5, Unit: Teaspoon},
		},
		{
			name:  "range with unknown unit word folds into name",
			input: "2 - 3 cloves garlic",
			want:  Line{Name: "cloves garlic", Quantity: 2, Unit: Whole},
		},
		{
			name:  "range with nothing after it",
			input: "1 - 2",
			want:  Line{Name: "", Quantity: 1, Unit: Whole},
		},
		{
			name:  "decimal range",
			input: "1.5 - 2 lb chicken thighs",
			want:  Line{Name: "chicken thighs", Quantity: 1.5, Unit: Pound},
		},
		{
			name:  "mixed case unit with mid-line note",
			input: "2 Tbsp butter (melted)",
			want:  Line{Name: "butter", Quantity: 2, Unit: Tablespoon, Notes: "melted"},
		},
		{
			name:  "mixed number",
			input: "2 3/4 cups unbleached all-purpose flour",
			want:  Line{Name: "unbleached all-purpose flour", Quantity: 2.75, Unit: Cup},
		},
		{
			name:  "decimal quantity",
			input: "0.25 kg rice",
			want:  Line{Name: "rice", Quantity: 0.25, Unit: Kilogram},
		},
		{
			name:  "size adjective maps to whole",
			input: "1 large egg",
			want:  Line{Name: "egg", Quantity: 1, Unit: Whole},
		},
		{
			name:  "unrecognized unit stays in name",
			input: "3 cloves garlic",
			want:  Line{Name: "cloves garlic", Quantity: 3, Unit: Whole},
		},
		{
			name:  "no quantity but leading unit",
			input: "pinch of salt",
			want:  Line{Name: "of salt", Quantity: 1, Unit: Pinch},
		},
		{
			name:  "no quantity and no unit",
			input: "Salt and Pepper",
			want:  Line{Name: "salt and pepper", Quantity: 1, Unit: Whole},
		},
		{
			name:  "number later in the line is not a quantity",
			input: "eggs 2",
			want:  Line{Name: "eggs 2", Quantity: 1, Unit: Whole},
		},
		{
			name:  "note as prefix",
			input: "(optional) 1 cup walnuts",
			want:  Line{Name: "walnuts", Quantity: 1, Unit: Cup, Notes: "optional"},
		},
		{
			name:  "note in the middle",
			input: "1 (14 oz) can coconut milk",
			want:  Line{Name: "can coconut milk", Quantity: 1, Unit: Whole, Notes: "14 oz"},
		},
		{
			name:  "multiple notes joined in order",
			input: "2 cups spinach (fresh) (chopped)",
			want:  Line{Name: "spinach", Quantity: 2, Unit: Cup, Notes: "fresh, chopped"},
		},
		{
			name:  "empty parentheses are ignored",
			input: "1 cup milk ()",
			want:  Line{Name: "milk", Quantity: 1, Unit: Cup},
		},
		{
			name:  "bullet markers stripped",
			input: "  * - 1 cup flour  ",
			want:  Line{Name: "flour", Quantity: 1, Unit: Cup},
		},
		{
			name:  "unicode bullet stripped",
			input: "• 2 tsp salt",
			want:  Line{Name: "salt", Quantity: 2, Unit: Teaspoon},
		},
		{
			name:  "unicode vulgar fraction",
			input: "½ cup water",
			want:  Line{Name: "water", Quantity: 0.5, Unit: Cup},
		},
		{
			name:  "unicode mixed number",
			input: "1½ cups milk",
			want:  Line{Name: "milk", Quantity: 1.5, Unit: Cup},
		},
		{
			name:  "en dash range",
			input: "2–3 tbsp olive oil",
			want:  Line{Name: "olive oil", Quantity: 2, Unit: Tablespoon},
		},
		{
			name:  "abbreviated unit with period",
			input: "8 oz. cream cheese",
			want:  Line{Name: "cream cheese", Quantity: 8, Unit: Ounce},
		},
		{
			name:  "malformed fraction leaves defaults",
			input: "1/0 cup sugar",
			want:  Line{Name: "1/0 cup sugar", Quantity: 1, Unit: Whole},
		},
		{
			name:  "malformed decimal leaves defaults",
			input: "1.2.3 cups sugar",
			want:  Line{Name: "1.2.3 cups sugar", Quantity: 1, Unit: Whole},
		},
		{
			name:  "malformed mixed fraction aborts",
			input: "1 1/0 cup sugar",
			want:  Line{Name: "1 1/0 cup sugar", Quantity: 1, Unit: Whole},
		},
		{
			name:  "numeric word with letters is a name",
			input: "7up soda",
			want:  Line{Name: "7up soda", Quantity: 1, Unit: Whole},
		},
		{
			name:  "only a note",
			input: "(to serve)",
			want:  Line{Name: "", Quantity: 1, Unit: Whole, Notes: "to serve"},
		},
		{
			name:  "empty string",
			input: "",
			want:  Line{Name: "", Quantity: 1, Unit: Whole},
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  Line{Name: "", Quantity: 1, Unit: Whole},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Parse(tc.input)
			assert.Equal(t, tc.want.Name, got.Name)
			assert.InDelta(t, tc.want.Quantity, got.Quantity, 1e-9)
			assert.Equal(t, tc.want.Unit, got.Unit)
			assert.Equal(t, tc.want.Notes, got.Notes)
		})
	}
}

func TestParse_ExactMixedNumberArithmetic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2.75, Parse("2 3/4 - 3 1/4 cups flour").Quantity)
	assert.Equal(t, 1.0/3.0, Parse("1/3 cup oil").Quantity)
	assert.Equal(t, 1+2.0/3.0, Parse("1 2/3 cups oats").Quantity)
}

func TestParse_NameIsFixedPoint(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"1 cup flour",
		"2 tablespoons sugar",
		"1/2 teaspoon salt",
		"1 package instant yeast (2 1/4 tsp)",
		"2 3/4 - 3 1/4 cups unbleached all-purpose flour",
		"2 Tbsp butter (melted)",
		"1/4 cup almond milk",
		"3 cloves garlic",
	}

	for _, in := range inputs {
		first := Parse(in)
		require.NotEmpty(t, first.Name, in)

		again := Parse(first.Name)
		assert.Equal(t, first.Name, again.Name, in)
		assert.Equal(t, 1.0, again.Quantity, in)
		assert.Equal(t, Whole, again.Unit, in)
		assert.Empty(t, again.Notes, in)
	}
}

func TestParse_Deterministic(t *testing.T) {
	t.Parallel()

	const in = "2 3/4 - 3 1/4 cups flour (sifted)"
	want := Parse(in)

	var wg sync.WaitGroup
	got := make([]Line, 32)
	for i := range got {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			got[idx] = Parse(in)
		}(i)
	}
	wg.Wait()

	for i := range got {
		assert.Equal(t, want, got[i], "goroutine %d", i)
	}
}

func TestParse_NeverDegradesBelowDefaults(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"(", ")", "()", "((a))", "- - -", "/", "1/", "/2", "1//2", "...",
		"999999999999999999999999999999 g salt",
		"1/999999999999999999999999999999999 cup",
		"\t\n", "🍕 2 slices", "1 - ", "- 1", "1 -- 2 cups",
	}

	for _, in := range inputs {
		got := Parse(in)
		assert.GreaterOrEqual(t, got.Quantity, 0.0, in)
		assert.True(t, got.Unit.Valid(), in)
	}
}
