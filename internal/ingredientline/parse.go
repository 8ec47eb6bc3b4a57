// Package ingredientline turns a free-text recipe ingredient line such as
// "2 3/4 - 3 1/4 cups flour (sifted)" into a quantity, a canonical unit, an
// ingredient name and the parenthetical notes.
//
// Parsing never fails. Anything the parser does not understand degrades to
// the defaults: quantity 1, unit Whole, and the remaining words as the name.
// Parse holds no state and is safe for concurrent use.
package ingredientline

import (
	"regexp"
	"strings"
)

// Line is one parsed ingredient line.
type Line struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     Unit    `json:"unit"`
	Notes    string  `json:"notes"`
}

const bullets = "*-•·‣◦⁃"

var notesRe = regexp.MustCompile(`\(([^)]*)\)`)

// Parse parses a single ingredient line.
func Parse(line string) Line {
	line = strings.TrimSpace(line)
	line = strings.TrimSpace(strings.TrimLeft(line, bullets+" \t"))

	line, notes := extractNotes(line)

	m := machine{
		toks: tokenize(line),
		line: Line{Quantity: 1, Unit: Whole, Notes: notes},
	}
	if len(m.toks) == 0 {
		return m.line
	}
	m.run()
	return m.line
}

// extractNotes removes every parenthesized group from s and returns the
// remaining text with the group contents joined by ", " in order.
func extractNotes(s string) (string, string) {
	if !strings.Contains(s, "(") {
		return s, ""
	}
	var parts []string
	for _, m := range notesRe.FindAllStringSubmatch(s, -1) {
		if inner := strings.TrimSpace(m[1]); inner != "" {
			parts = append(parts, inner)
		}
	}
	rest := strings.TrimSpace(notesRe.ReplaceAllString(s, " "))
	return rest, strings.Join(parts, ", ")
}

type state int

const (
	scanQuantity state = iota
	scanUnit
	collectName
	done
)

// machine walks the token stream once: quantity, then unit, then name.
type machine struct {
	toks []token
	pos  int
	line Line
}

func (m *machine) run() {
	for st := scanQuantity; st != done; {
		switch st {
		case scanQuantity:
			st = m.scanQuantity()
		case scanUnit:
			st = m.scanUnit()
		case collectName:
			st = m.collectName()
		}
	}
}

func (m *machine) scanQuantity() state {
	if m.scanRange() {
		return scanUnit
	}

	first := m.toks[0]
	if first.kind == tokInteger && len(m.toks) > 1 && m.toks[1].kind == tokFraction {
		// Mixed number. A bad fraction aborts with the defaults rather than
		// falling back to the whole part alone.
		if q, ok := sum(m.toks[:2]); ok {
			m.line.Quantity = q
			m.pos = 2
		}
		return scanUnit
	}
	if first.numeric() {
		if q, ok := sum(m.toks[:1]); ok {
			m.line.Quantity = q
			m.pos = 1
		}
	}
	return scanUnit
}

// scanRange matches "<number-expr> - <number-expr>" at the start of the line
// and keeps the lower bound. The upper bound is consumed and discarded.
func (m *machine) scanRange() bool {
	low := numericRun(m.toks, 0)
	if low == 0 || low >= len(m.toks) || m.toks[low].kind != tokDash {
		return false
	}
	high := numericRun(m.toks, low+1)
	if high == 0 {
		return false
	}
	q, ok := sum(m.toks[:low])
	if !ok {
		return false
	}
	m.line.Quantity = q
	m.pos = low + 1 + high
	return true
}

func (m *machine) scanUnit() state {
	if m.pos < len(m.toks) {
		if u, ok := LookupUnit(m.toks[m.pos].text); ok {
			m.line.Unit = u
			m.pos++
		}
	}
	return collectName
}

func (m *machine) collectName() state {
	words := make([]string, 0, len(m.toks)-m.pos)
	for _, t := range m.toks[m.pos:] {
		words = append(words, t.text)
	}
	m.line.Name = strings.TrimSpace(strings.Join(words, " "))
	return done
}
