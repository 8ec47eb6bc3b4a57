package ingredientline

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokWord tokenKind = iota
	tokInteger
	tokDecimal
	tokFraction
	tokDash
)

type token struct {
	text string
	kind tokenKind
}

func (t token) numeric() bool {
	return t.kind == tokInteger || t.kind == tokDecimal || t.kind == tokFraction
}

// glyphs rewrites unicode fractions and dashes into the ASCII forms the
// tokenizer understands. Fractions are padded so "1½" becomes "1 1/2".
var glyphs = strings.NewReplacer(
	"½", " 1/2 ", "⅓", " 1/3 ", "⅔", " 2/3 ",
	"¼", " 1/4 ", "¾", " 3/4 ",
	"⅕", " 1/5 ", "⅖", " 2/5 ", "⅗", " 3/5 ", "⅘", " 4/5 ",
	"⅙", " 1/6 ", "⅚", " 5/6 ",
	"⅛", " 1/8 ", "⅜", " 3/8 ", "⅝", " 5/8 ", "⅞", " 7/8 ",
	"⁄", "/",
	"–", "-", "—", "-",
)

// tokenize lowercases s and splits it into classified tokens. A token shaped
// like "1/2-1" is split around the dash so ranges written without spaces are
// seen the same way as "1/2 - 1".
func tokenize(s string) []token {
	fields := strings.Fields(glyphs.Replace(strings.ToLower(s)))
	toks := make([]token, 0, len(fields))
	for _, f := range fields {
		if left, right, ok := strings.Cut(f, "-"); ok && left != "" && right != "" {
			l, r := classify(left), classify(right)
			if l.numeric() && r.numeric() {
				toks = append(toks, l, token{text: "-", kind: tokDash}, r)
				continue
			}
		}
		toks = append(toks, classify(f))
	}
	return toks
}

func classify(s string) token {
	if s == "-" {
		return token{text: s, kind: tokDash}
	}
	var digits, dots, slashes int
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		case r == '/':
			slashes++
		default:
			return token{text: s, kind: tokWord}
		}
	}
	switch {
	case digits == 0:
		return token{text: s, kind: tokWord}
	case slashes > 0:
		return token{text: s, kind: tokFraction}
	case dots > 0:
		return token{text: s, kind: tokDecimal}
	default:
		return token{text: s, kind: tokInteger}
	}
}

// value evaluates a numeric token exactly. Malformed numerics such as
// "1.2.3", "1/0" or "/2" report false.
func value(t token) (*big.Rat, bool) {
	switch t.kind {
	case tokInteger, tokDecimal:
		f, err := strconv.ParseFloat(t.text, 64)
		if err != nil || math.IsInf(f, 0) {
			return nil, false
		}
		if t.kind == tokInteger {
			n, ok := new(big.Int).SetString(t.text, 10)
			if !ok {
				return nil, false
			}
			return new(big.Rat).SetInt(n), true
		}
		return new(big.Rat).SetFloat64(f), true
	case tokFraction:
		num, den, _ := strings.Cut(t.text, "/")
		if num == "" || den == "" || strings.Contains(den, "/") ||
			strings.Contains(num, ".") || strings.Contains(den, ".") {
			return nil, false
		}
		n, ok := new(big.Int).SetString(num, 10)
		if !ok {
			return nil, false
		}
		d, ok := new(big.Int).SetString(den, 10)
		if !ok || d.Sign() == 0 {
			return nil, false
		}
		return new(big.Rat).SetFrac(n, d), true
	}
	return nil, false
}

// sum adds the exact values of toks and converts the result to float64.
func sum(toks []token) (float64, bool) {
	total := new(big.Rat)
	for _, t := range toks {
		v, ok := value(t)
		if !ok {
			return 0, false
		}
		total.Add(total, v)
	}
	f, _ := total.Float64()
	if math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// numericRun counts consecutive numeric tokens starting at toks[start].
func numericRun(toks []token, start int) int {
	n := 0
	for i := start; i < len(toks) && toks[i].numeric(); i++ {
		n++
	}
	return n
}
