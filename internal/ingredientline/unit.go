package ingredientline

import (
	"fmt"
	"strings"
)

// Unit is the canonical unit of a recipe ingredient quantity.
type Unit string

const (
	Gram       Unit = "g"
	Kilogram   Unit = "kg"
	Ounce      Unit = "oz"
	Pound      Unit = "lb"
	Cup        Unit = "cup"
	Tablespoon Unit = "tbsp"
	Teaspoon   Unit = "tsp"
	Milliliter Unit = "ml"
	Liter      Unit = "l"
	Piece      Unit = "piece"
	Pinch      Unit = "pinch"
	Whole      Unit = "whole"
	Package    Unit = "pkg"
	Slice      Unit = "slice"
	ToTaste    Unit = "to_taste"
)

var allUnits = []Unit{
	Gram, Kilogram, Ounce, Pound, Cup, Tablespoon, Teaspoon,
	Milliliter, Liter, Piece, Pinch, Whole, Package, Slice, ToTaste,
}

// synonyms maps lowercase surface forms to their canonical unit.
var synonyms = map[string]Unit{
	"cup": Cup, "cups": Cup,

	"tablespoon": Tablespoon, "tablespoons": Tablespoon,
	"tbsp": Tablespoon, "tbsps": Tablespoon,

	"teaspoon": Teaspoon, "teaspoons": Teaspoon,
	"tsp": Teaspoon, "tsps": Teaspoon,

	"ounce": Ounce, "ounces": Ounce, "oz": Ounce,
	"pound": Pound, "pounds": Pound, "lb": Pound,

	"gram": Gram, "grams": Gram, "g": Gram,
	"kilogram": Kilogram, "kilograms": Kilogram, "kg": Kilogram,

	"milliliter": Milliliter, "milliliters": Milliliter, "ml": Milliliter,
	"liter": Liter, "liters": Liter, "l": Liter,

	"piece": Piece, "pieces": Piece,
	"pinch": Pinch, "pinches": Pinch,
	"package": Package, "packages": Package, "pkg": Package,
	"slice": Slice, "slices": Slice,

	"whole": Whole, "large": Whole, "medium": Whole, "small": Whole,
}

// Valid reports whether u is one of the canonical units.
func (u Unit) Valid() bool {
	for _, c := range allUnits {
		if u == c {
			return true
		}
	}
	return false
}

func (u Unit) String() string { return string(u) }

// Units returns the canonical units in a stable order.
func Units() []Unit {
	out := make([]Unit, len(allUnits))
	copy(out, allUnits)
	return out
}

// Synonyms returns a copy of the surface form table.
func Synonyms() map[string]Unit {
	out := make(map[string]Unit, len(synonyms))
	for k, v := range synonyms {
		out[k] = v
	}
	return out
}

// LookupUnit maps a surface word such as "Tablespoons" or "tbsp." to its
// canonical unit. A single trailing period is ignored.
func LookupUnit(word string) (Unit, bool) {
	w := strings.ToLower(strings.TrimSpace(word))
	if u, ok := synonyms[w]; ok {
		return u, true
	}
	if trimmed, found := strings.CutSuffix(w, "."); found && trimmed != "" {
		u, ok := synonyms[trimmed]
		return u, ok
	}
	return "", false
}

// ParseUnit validates a unit supplied by a client. Canonical values and
// surface synonyms are both accepted; an empty string yields Whole.
func ParseUnit(s string) (Unit, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Whole, nil
	}
	if u := Unit(s); u.Valid() {
		return u, nil
	}
	if u, ok := LookupUnit(s); ok {
		return u, nil
	}
	return "", fmt.Errorf("unknown unit %q", s)
}
