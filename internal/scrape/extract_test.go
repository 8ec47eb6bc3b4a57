package scrape

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cinnamonRollsPage = `<!DOCTYPE html>
<html>
<head>
  <title>The World's Easiest Cinnamon Rolls | Minimalist Baker Recipes</title>
  <script type="application/ld+json">{"@context": "https://schema.org", "@type": "WebSite", "name": "Minimalist Baker"}</script>
  <script type="application/ld+json">
  {
    "@context": "http://schema.org/",
    "@type": "Recipe",
    "name": "The World&#39;s Easiest Cinnamon Rolls",
    "description": "The easiest cinnamon rolls you'll ever make.",
    "prepTime": "PT15M",
    "cookTime": "PT25M",
    "recipeYield": ["7", "7 rolls"],
    "recipeIngredient": [
      "2 3/4 - 3 1/4 cups unbleached all-purpose flour",
      "3 Tbsp granulated sugar",
      "1 tsp salt",
      "1 package instant yeast (2 1/4 tsp)",
      "1/2 cup water",
      "1/4 cup almond milk",
      "2 Tbsp butter",
      "1 large egg"
    ],
    "recipeInstructions": [
      {"@type": "HowToStep", "text": "In a large mixing bowl, combine 2 cups flour, sugar, salt, and yeast."},
      {"@type": "HowToStep", "text": "Microwave water, almond milk, and butter until warm."}
    ]
  }
  </script>
</head>
<body><h1>Cinnamon Rolls</h1></body>
</html>`

func TestExtract_Recipe(t *testing.T) {
	t.Parallel()

	r, err := Extract([]byte(cinnamonRollsPage))
	require.NoError(t, err)

	assert.Equal(t, "The World's Easiest Cinnamon Rolls", r.Title)
	assert.Equal(t, "The easiest cinnamon rolls you'll ever make.", r.Description)
	assert.Equal(t, 15*time.Minute, r.PrepTime)
	assert.Equal(t, 25*time.Minute, r.CookTime)
	assert.Equal(t, "7", r.Yield)
	assert.Len(t, r.Ingredients, 8)
	assert.Equal(t, "2 3/4 - 3 1/4 cups unbleached all-purpose flour", r.Ingredients[0])
	assert.Equal(t, "1 large egg", r.Ingredients[7])
	assert.Equal(t, []string{
		"In a large mixing bowl, combine 2 cups flour, sugar, salt, and yeast.",
		"Microwave water, almond milk, and butter until warm.",
	}, r.Instructions)
}

func TestExtract_GraphAndSections(t *testing.T) {
	t.Parallel()

	page := `<html><head><title>Soup</title>
<script type="application/ld+json">
{"@context": "https://schema.org", "@graph": [
  {"@type": "Organization", "name": "Site"},
  {"@type": ["Recipe", "NewsArticle"],
   "recipeIngredient": ["1 onion", "4 cups stock"],
   "recipeYield": 6,
   "cookTime": "PT1H10M",
   "recipeInstructions": [
     {"@type": "HowToSection", "name": "Prep", "itemListElement": [
       {"@type": "HowToStep", "text": "Chop the onion."}
     ]},
     "Simmer &amp; serve."
   ]}
]}
</script></head><body></body></html>`

	r, err := Extract([]byte(page))
	require.NoError(t, err)

	assert.Equal(t, "Soup", r.Title, "falls back to <title>")
	assert.Equal(t, "6", r.Yield)
	assert.Equal(t, 70*time.Minute, r.CookTime)
	assert.Equal(t, []string{"1 onion", "4 cups stock"}, r.Ingredients)
	assert.Equal(t, []string{"Chop the onion.", "Simmer & serve."}, r.Instructions)
}

func TestExtract_StringInstructions(t *testing.T) {
	t.Parallel()

	page := `<script type="application/ld+json">
{"@type": "Recipe", "name": "Toast", "recipeIngredient": "1 slice bread",
 "recipeInstructions": "Toast the bread.\n\nButter it."}
</script>`

	r, err := Extract([]byte(page))
	require.NoError(t, err)
	assert.Equal(t, []string{"1 slice bread"}, r.Ingredients)
	assert.Equal(t, []string{"Toast the bread.", "Butter it."}, r.Instructions)
}

func TestExtract_NoRecipe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		page string
	}{
		{name: "no scripts", page: `<html><head><title>Hi</title></head></html>`},
		{name: "broken json", page: `<script type="application/ld+json">{"@type": "Recipe",</script>`},
		{name: "other type", page: `<script type="application/ld+json">{"@type": "Article"}</script>`},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Extract([]byte(tc.page))
			assert.True(t, errors.Is(err, ErrNoRecipe))
		})
	}
}
